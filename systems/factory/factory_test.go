package factory

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func kinds(reg *effects.Registry) []effects.Kind {
	var out []effects.Kind
	reg.Each(func(e effects.Effect) { out = append(out, e.Kind()) })
	return out
}

func TestCreateSessionDefaults(t *testing.T) {
	w := donburi.NewWorld()
	e := CreateSession(w, "abc", 1000, 9000)

	combo := components.Combo.Get(e)
	assert.Equal(t, 1.0, combo.Multiplier)
	assert.Equal(t, -1, combo.LastInstrument)
	assert.Equal(t, int64(9000), components.BossSkill.Get(e).NextTriggerMs)
	assert.Equal(t, cfg.QualityHigh, components.Quality.Get(e).Level)
	assert.Equal(t, 1.0, components.ScreenFX.Get(e).SlowFactor)
	assert.NotNil(t, components.Effects.Get(e).Registry)
	assert.Equal(t, "abc", components.Progress.Get(e).SessionID)
}

func TestCreateBosses(t *testing.T) {
	w := donburi.NewWorld()
	bosses := CreateBosses(w)
	require.Len(t, bosses, len(cfg.Bosses))
	for i, id := range bosses {
		e := w.Entry(id)
		assert.Equal(t, i, components.Boss.Get(e).Index)
		h := components.Health.Get(e)
		assert.Equal(t, h.Max, h.Current)
		assert.Equal(t, cfg.Bosses[i].MaxHealth, h.Max)
	}
}

func TestSpawnUltimatePicksFinale(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	a := Arena{W: 900, H: 700}

	tests := []struct {
		instrument int
		want       effects.Kind
	}{
		{0, effects.KindFullScreenRipple},
		{1, effects.KindSuperFirework},
	}
	for _, tt := range tests {
		reg := effects.NewRegistry()
		SpawnUltimate(reg, rng, a, tt.instrument, 1)
		assert.Equal(t, []effects.Kind{effects.KindUltimateOverlay, effects.KindHackOverlay, tt.want}, kinds(reg))
	}
}

func TestSpawnSkillTelegraph(t *testing.T) {
	a := Arena{W: 900, H: 700}

	reg := effects.NewRegistry()
	SpawnSkillTelegraph(reg, a, cfg.Bosses[0])
	assert.Equal(t, []effects.Kind{effects.KindBlurTelegraph}, kinds(reg))

	reg = effects.NewRegistry()
	SpawnSkillTelegraph(reg, a, cfg.Bosses[2])
	assert.Equal(t, []effects.Kind{effects.KindCorePulse, effects.KindBlurTelegraph}, kinds(reg))
}

func TestBrighter(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 142, B: 3, A: 9}, Brighter(color.RGBA{R: 200, G: 100, B: 0, A: 9}))
}

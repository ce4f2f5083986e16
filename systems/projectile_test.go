package systems

import (
	"testing"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/effects"
	"github.com/automoto/codesymphony/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestProjectileHitsExactlyOnce(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()
	hp := h.BossHealth()

	factory.CreateProjectile(h.World, math.Vec2{X: 450, Y: 200}, math.Vec2{X: 450, Y: 195}, 600, 1000, cfg.Red, 0)
	require.Equal(t, 1, h.ProjectileCount())

	h.step(16)
	assert.Equal(t, hp.Max-1000, hp.Current)
	assert.Equal(t, 0, h.ProjectileCount(), "purged in the same tick")
	assert.Equal(t, 1, countKind(h.Effects(), effects.KindSuperFirework))
	assert.InDelta(t, 6.5*0.6, h.Combo().SkillCharge, 1e-9)
	assert.Equal(t, int64(1000), h.Progress().TotalScore)
	assert.NotEmpty(t, h.saves.got)

	h.step(16)
	h.step(16)
	assert.Equal(t, hp.Max-1000, hp.Current)
}

func TestProjectileFlightAndTrail(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()

	factory.CreateProjectile(h.World, math.Vec2{X: 0, Y: 0}, math.Vec2{X: 0, Y: 1000}, 600, 1, cfg.Red, 0)
	h.step(100)

	var p *components.ProjectileData
	h.EachProjectile(func(pd *components.ProjectileData) { p = pd })
	require.NotNil(t, p)
	assert.InDelta(t, 60, p.Position.Y, 1e-9)
	require.Len(t, p.Trail, 1)

	for i := 0; i < 20; i++ {
		h.step(16)
	}
	assert.Len(t, p.Trail, 12)
	assert.Equal(t, p.Position, p.Trail[0], "newest first")
	assert.Greater(t, p.Trail[0].Y, p.Trail[11].Y)

	setQuality(h.Context, cfg.QualityLow)
	assert.Len(t, p.Trail, 5)
}

func TestLowQualityMovesProjectilesEveryOtherTick(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()
	setQuality(h.Context, cfg.QualityLow)

	factory.CreateProjectile(h.World, math.Vec2{X: 0, Y: 0}, math.Vec2{X: 0, Y: 1000}, 600, 1, cfg.Red, 0)
	var p *components.ProjectileData
	h.EachProjectile(func(pd *components.ProjectileData) { p = pd })

	h.step(16)
	assert.Equal(t, 0.0, p.Position.Y, "odd tick skipped")
	h.step(16)
	assert.InDelta(t, 600*0.032, p.Position.Y, 1e-9, "skipped time carried over")
}

func TestLowQualityProjectileCap(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()
	setQuality(h.Context, cfg.QualityLow)
	hp := h.BossHealth()

	for i := 0; i < 40; i++ {
		require.True(t, h.TriggerInstrument(0))
		h.mock.AdvanceMs(10)
	}
	assert.Equal(t, cfg.Quality.LowProjectileCap+1, h.ProjectileCount())
	assert.Less(t, hp.Current, hp.Max, "every other trigger lands directly")
	assert.LessOrEqual(t, h.Effects().Len(), cfg.Quality.LowEffectCap)
}

func TestPushTrail(t *testing.T) {
	var trail []math.Vec2
	for i := 1; i <= 4; i++ {
		trail = pushTrail(trail, math.Vec2{X: float64(i)}, 3)
	}
	assert.Equal(t, []math.Vec2{{X: 4}, {X: 3}, {X: 2}}, trail)
}

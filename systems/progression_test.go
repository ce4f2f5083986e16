package systems

import (
	"testing"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossDefeatAdvancesGauntlet(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()
	for i := 0; i < 3; i++ {
		h.TriggerInstrument(1)
	}
	addCharge(h.Context, 100)
	h.ScreenFX().SlowFactor = 0.5
	h.BossHealth().Current = 5

	applyBossDamage(h.Context, 16_000)
	require.Equal(t, cfg.BattleSwitching, h.Progress().State)
	assert.False(t, h.TriggerInstrument(0), "no input while switching")
	applyBossDamage(h.Context, 16_000)
	assert.Equal(t, int64(16_000), h.Progress().TotalScore, "damage is ignored while switching")

	h.step(16)
	pr := h.Progress()
	assert.Equal(t, cfg.BattlePlaying, pr.State)
	assert.Equal(t, 1, pr.CurrentBoss)
	assert.Equal(t, 1, pr.Defeated)
	assert.Equal(t, int64(0), pr.Score)
	assert.Equal(t, "Matrix Warden", h.Boss().Name)
	assert.Equal(t, 0, h.Combo().Count)
	assert.Equal(t, 0.0, h.Combo().SkillCharge)
	assert.Equal(t, 1.0, h.ScreenFX().SlowFactor)
	assert.Equal(t, 0, h.Phase().Phase)
	assert.False(t, h.Phase().CounterActive)
	assert.Equal(t, 1, h.saves.last().CurrentBossIndex)
	assert.Contains(t, h.audio.calls, "stinger")

	assert.True(t, h.TriggerInstrument(0))
}

func TestLastBossRaisesVictoryAndRestart(t *testing.T) {
	h := newHarness(t)
	h.ApplySnapshot(&persistence.Snapshot{
		CurrentBossIndex: 2,
		TotalScore:       30_000_000,
		BossHealths:      []float64{0, 0, 10},
	})
	h.holdSkills()

	h.TriggerInstrument(4)
	h.TriggerInstrument(4)
	h.run(2000)
	require.Equal(t, cfg.BattleVictory, h.Progress().State)
	assert.False(t, h.TriggerInstrument(0))
	assert.False(t, h.AttemptCounterResolve())

	h.Restart()
	pr := h.Progress()
	assert.Equal(t, cfg.BattlePlaying, pr.State)
	assert.Equal(t, 0, pr.CurrentBoss)
	assert.Equal(t, int64(0), pr.TotalScore)
	assert.Equal(t, 0, h.ProjectileCount())
	assert.Equal(t, 0, h.Effects().Len())
	for i := 0; i < h.BossCount(); i++ {
		hp := h.BossHealthAt(i)
		assert.Equal(t, hp.Max, hp.Current)
	}
	assert.Equal(t, 0, h.saves.last().CurrentBossIndex)
}

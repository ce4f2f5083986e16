package systems

import (
	"testing"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{1, 0},
		{0.71, 0},
		{0.7, 1},
		{0.41, 1},
		{0.4, 2},
		{0.16, 2},
		{0.15, 3},
		{0, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, phaseFor(tt.ratio), "ratio %v", tt.ratio)
	}
}

func TestPhaseIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()

	h.setRatio(0.5)
	h.step(16)
	assert.Equal(t, 1, h.Phase().Phase)
	assert.Equal(t, 1, h.Phase().Opened)

	h.step(16)
	h.step(16)
	assert.Equal(t, 1, h.Phase().Opened, "same ratio must not reopen the window")

	// Healing back over a threshold is a transition too
	h.setRatio(0.9)
	h.step(16)
	assert.Equal(t, 0, h.Phase().Phase)
	assert.Equal(t, 2, h.Phase().Opened)
}

func TestCounterTimeoutScenario(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()

	h.setRatio(0.71)
	for i := 0; i < 4; i++ {
		h.TriggerInstrument(0)
		h.step(16)
	}
	require.Equal(t, 0, h.Phase().Phase)
	require.Equal(t, 4, h.Combo().Count)

	h.setRatio(0.69)
	h.step(16)
	opened := h.Now()
	require.Equal(t, 1, h.Phase().Phase)
	require.Equal(t, components.CounterActive, h.Phase().State())
	assert.Equal(t, 1, countKind(h.Effects(), effects.KindShockwave))
	assert.Equal(t, 1, countKind(h.Effects(), effects.KindCircleTelegraph))

	h.run(1500)
	assert.Equal(t, components.CounterInactive, h.Phase().State())
	assert.Equal(t, 1, h.Phase().Failed)
	assert.Equal(t, 0, h.Phase().Resolved)
	assert.Equal(t, 0, h.Combo().Count)
	assert.Equal(t, 1.0, h.Combo().Multiplier)
	assert.Equal(t, 0.0, h.Combo().SkillCharge)
	assert.Equal(t, 0.5, h.ScreenFX().SlowFactor)
	assert.Equal(t, opened+1504+4000, h.ScreenFX().SlowEndMs)
	assert.Greater(t, h.ScreenFX().DarkAlpha, 0.0)
	assert.Contains(t, h.audio.calls, "stinger")

	// The window expires exactly once
	h.run(1000)
	assert.Equal(t, 1, h.Phase().Failed)

	h.run(3100)
	assert.Equal(t, 1.0, h.ScreenFX().SlowFactor)
}

func TestCounterResolve(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()

	assert.False(t, h.AttemptCounterResolve(), "no window open")

	h.setRatio(0.6)
	h.step(16)
	require.Equal(t, components.CounterActive, h.Phase().State())

	require.True(t, h.AttemptCounterResolve())
	assert.Equal(t, components.CounterResolved, h.Phase().State())
	assert.Equal(t, cfg.Counter.ResolveCharge, h.Combo().SkillCharge)
	assert.InDelta(t, cfg.Counter.ResolveShake, h.ScreenFX().Shake, 1e-9)
	assert.False(t, h.AttemptCounterResolve(), "already resolved")

	h.step(16)
	assert.Equal(t, components.CounterInactive, h.Phase().State())

	h.run(2000)
	assert.Equal(t, 1, h.Phase().Resolved)
	assert.Equal(t, 0, h.Phase().Failed)
	assert.Equal(t, 1.0, h.ScreenFX().SlowFactor)
	assert.Equal(t, 0, countKind(h.Effects(), effects.KindCircleTelegraph))
}

func TestPenaltyUnreadiesSpentSkill(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()
	addCharge(h.Context, cfg.Combo.SkillThreshold)
	require.True(t, h.Combo().SkillReady)

	h.setRatio(0.3)
	h.step(16)
	h.run(1600)
	assert.Equal(t, cfg.Combo.SkillThreshold-cfg.Counter.PenaltyCharge, h.Combo().SkillCharge)
	assert.False(t, h.Combo().SkillReady)
}

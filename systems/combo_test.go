package systems

import (
	"testing"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComboFiveQuickTriggers(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()

	for i := 0; i < 5; i++ {
		require.True(t, h.TriggerInstrument(0))
		h.mock.AdvanceMs(100)
	}
	assert.Equal(t, 5, h.Combo().Count)
	assert.InDelta(t, 1.25, h.Combo().Multiplier, 1e-9)
}

func TestComboWindow(t *testing.T) {
	tests := []struct {
		name string
		gap  int64
		want int
	}{
		{"inside window", 800, 2},
		{"just past window", 801, 1},
		{"long pause", 5000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.holdSkills()
			h.TriggerInstrument(1)
			h.mock.AdvanceMs(tt.gap)
			h.TriggerInstrument(1)
			assert.Equal(t, tt.want, h.Combo().Count)
		})
	}
}

func TestComboStrictlyIncreasesWithinWindow(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()

	prev := 0
	for i := 0; i < 30; i++ {
		h.TriggerInstrument(i % len(cfg.Instruments))
		assert.Greater(t, h.Combo().Count, prev)
		prev = h.Combo().Count
		h.mock.AdvanceMs(700)
	}
}

func TestMultiplierBounds(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()

	for i := 0; i < 60; i++ {
		h.TriggerInstrument(0)
		m := h.Combo().Multiplier
		assert.GreaterOrEqual(t, m, 1.0)
		assert.LessOrEqual(t, m, 1.5)
		h.mock.AdvanceMs(10)
	}
	assert.Equal(t, 1.5, h.Combo().Multiplier)

	h.Combo().BoostActive = true
	h.Combo().BoostEndMs = h.Now() + 10_000
	h.TriggerInstrument(0)
	assert.Equal(t, 3.0, h.Combo().Multiplier)

	h.mock.AdvanceMs(10_000)
	h.TriggerInstrument(0)
	assert.False(t, h.Combo().BoostActive)
	assert.Equal(t, 1, h.Combo().Count, "the long gap also broke the streak")
	assert.InDelta(t, 1.05, h.Combo().Multiplier, 1e-9)
}

func TestSkillChargeClampedAndReady(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()

	h.TriggerInstrument(0)
	assert.InDelta(t, (6.5+0.25)*0.4, h.Combo().SkillCharge, 1e-9)
	assert.False(t, h.Combo().SkillReady)

	addCharge(h.Context, 1000)
	assert.Equal(t, cfg.Combo.SkillThreshold, h.Combo().SkillCharge)
	assert.True(t, h.Combo().SkillReady)

	addCharge(h.Context, -5000)
	assert.Equal(t, 0.0, h.Combo().SkillCharge)
}

func TestTriggerOrderAndSideEffects(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()

	assert.False(t, h.TriggerInstrument(-1))
	assert.False(t, h.TriggerInstrument(len(cfg.Instruments)))
	assert.Empty(t, h.audio.calls)

	require.True(t, h.TriggerInstrument(3))
	assert.Equal(t, []string{"hit", "pattern"}, h.audio.calls)
	assert.Equal(t, 1, h.ProjectileCount())
	assert.Equal(t, 1, h.Effects().Len())
	assert.Equal(t, 3, h.Combo().LastInstrument)
	assert.Equal(t, 1.0, h.ScreenFX().BassPulse)
	require.Len(t, h.saves.got, 1)
	assert.Equal(t, 1, h.saves.last().ComboCount)

	var dmg int
	h.EachProjectile(func(p *components.ProjectileData) { dmg = p.Damage })
	assert.Equal(t, 25200, dmg, "24000 * 1.05")
}

func TestSlowFactorScalesDamage(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()
	h.ScreenFX().SlowFactor = 0.5
	h.ScreenFX().SlowEndMs = h.Now() + 4000

	h.TriggerInstrument(0)
	var dmg int
	h.EachProjectile(func(p *components.ProjectileData) { dmg = p.Damage })
	assert.Equal(t, 5250, dmg)

	h.mock.AdvanceMs(4001)
	h.TriggerInstrument(0)
	assert.Equal(t, 1.0, h.ScreenFX().SlowFactor)
}

func TestChangeBpm(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 124, h.ChangeBpm(4))
	assert.Equal(t, 124, h.audio.Bpm())

	for i := 0; i < 40; i++ {
		h.ChangeBpm(4)
	}
	assert.Equal(t, cfg.Audio.DefaultBPMMax, h.audio.Bpm())

	for i := 0; i < 80; i++ {
		h.ChangeBpm(-4)
	}
	assert.Equal(t, cfg.Audio.MinBPM, h.audio.Bpm())

	h.audio.SetBpm(170)
	h.SetBPMMax(150)
	assert.Equal(t, 150, h.audio.Bpm())
	h.SetBPMMax(999)
	assert.Equal(t, cfg.Audio.BPMMaxCeil, h.AudioSettings().BPMMax)

	h.SetVolume(130)
	assert.Equal(t, 100, h.audio.Volume())
	assert.Equal(t, 100, h.saves.last().Volume)
}

func TestChargeGainPathsUnderLowQuality(t *testing.T) {
	gain := func(count int) float64 { return cfg.Combo.GainPerHit + float64(count)*cfg.Combo.ComboBonus }

	tests := []struct {
		name        string
		skipCounter int
		start       float64
		afterFire   float64
		afterLand   float64
		projectile  bool
	}{
		{
			name:       "projectile splits the gain between spawn and hit",
			afterFire:  gain(1) * 0.4,
			afterLand:  gain(1),
			projectile: true,
		},
		{
			name:        "direct landing grants only the pre-applied share",
			skipCounter: 1,
			afterFire:   gain(1) * 0.4,
			afterLand:   gain(1) * 0.4,
		},
		{
			name:       "clamped at the threshold",
			start:      cfg.Combo.SkillThreshold - 1,
			afterFire:  cfg.Combo.SkillThreshold,
			afterLand:  cfg.Combo.SkillThreshold,
			projectile: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.holdSkills()
			setQuality(h.Context, cfg.QualityLow)
			h.Combo().LowSkipCounter = tt.skipCounter
			h.Combo().SkillCharge = tt.start
			hp := h.BossHealth()

			require.True(t, h.TriggerInstrument(0))
			assert.InDelta(t, tt.afterFire, h.Combo().SkillCharge, 1e-9)
			if tt.projectile {
				require.Equal(t, 1, h.ProjectileCount())
				assert.Equal(t, hp.Max, hp.Current)
			} else {
				require.Equal(t, 0, h.ProjectileCount())
				assert.Equal(t, hp.Max-10500, hp.Current, "10000 * 1.05")
			}

			for i := 0; i < 200 && h.ProjectileCount() > 0; i++ {
				h.step(16)
			}
			require.Equal(t, 0, h.ProjectileCount())
			assert.InDelta(t, tt.afterLand, h.Combo().SkillCharge, 1e-9)
			assert.Equal(t, hp.Max-10500, hp.Current)
			assert.Equal(t, tt.afterLand >= cfg.Combo.SkillThreshold, h.Combo().SkillReady)
		})
	}
}

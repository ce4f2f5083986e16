package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	h := newHarness(t)
	h.holdSkills()
	h.ChangeBpm(8)
	h.SetVolume(55)
	h.SetBPMMax(200)
	for i := 0; i < 3; i++ {
		h.TriggerInstrument(2)
	}
	h.Combo().BoostActive = true
	h.Combo().BoostEndMs = h.Now() + 2500
	h.BossHealth().Current = 8_000_000
	h.Progress().TotalScore = 3_000_000

	snap := h.Snapshot()
	assert.Equal(t, 0, snap.CurrentBossIndex)
	assert.Equal(t, 128, snap.BPM)
	assert.Equal(t, 55, snap.Volume)
	assert.Equal(t, 200, snap.BPMMax)
	assert.Equal(t, 3, snap.ComboCount)
	assert.Equal(t, int64(2500), snap.UltimateComboRemainMs)
	assert.Equal(t, []float64{8_000_000, 18_000_000, 25_000_000}, snap.BossHealths)

	restored := newHarness(t)
	restored.ApplySnapshot(&snap)
	assert.Equal(t, 8_000_000, restored.BossHealth().Current)
	assert.Equal(t, int64(3_000_000), restored.Progress().TotalScore)
	assert.Equal(t, 128, restored.audio.Bpm())
	assert.Equal(t, 55, restored.audio.Volume())
	assert.Equal(t, 200, restored.AudioSettings().BPMMax)
	assert.Equal(t, snap.SkillCharge, restored.Combo().SkillCharge)
	assert.True(t, restored.Combo().BoostActive)
	assert.Equal(t, restored.Now()+2500, restored.Combo().BoostEndMs)
	assert.Equal(t, 1, restored.Phase().Phase)
	assert.Equal(t, 0, restored.Phase().Opened, "restoring never opens a counter")
}

func TestApplySnapshotClamps(t *testing.T) {
	tests := []struct {
		name  string
		snap  persistence.Snapshot
		check func(t *testing.T, h *harness)
	}{
		{
			name: "boss index too high",
			snap: persistence.Snapshot{CurrentBossIndex: 7},
			check: func(t *testing.T, h *harness) {
				assert.Equal(t, 0, h.Progress().CurrentBoss)
				assert.Equal(t, cfg.Bosses[0].Name, h.Boss().Name)
			},
		},
		{
			name: "last boss index kept",
			snap: persistence.Snapshot{CurrentBossIndex: 2},
			check: func(t *testing.T, h *harness) {
				assert.Equal(t, 2, h.Progress().CurrentBoss)
				assert.Equal(t, cfg.Bosses[2].Name, h.Boss().Name)
			},
		},
		{
			name: "negative boss index",
			snap: persistence.Snapshot{CurrentBossIndex: -3},
			check: func(t *testing.T, h *harness) {
				assert.Equal(t, 0, h.Progress().CurrentBoss)
			},
		},
		{
			name: "missing and invalid healths",
			snap: persistence.Snapshot{BossHealths: []float64{math.NaN(), -5}},
			check: func(t *testing.T, h *harness) {
				for i := 0; i < h.BossCount(); i++ {
					hp := h.BossHealthAt(i)
					assert.Equal(t, hp.Max, hp.Current, "boss %d", i)
				}
			},
		},
		{
			name: "health above max",
			snap: persistence.Snapshot{BossHealths: []float64{99_000_000}},
			check: func(t *testing.T, h *harness) {
				assert.Equal(t, h.BossHealth().Max, h.BossHealth().Current)
			},
		},
		{
			name: "tempo and volume out of range",
			snap: persistence.Snapshot{BPM: 400, BPMMax: 500, Volume: 180},
			check: func(t *testing.T, h *harness) {
				assert.Equal(t, cfg.Audio.BPMMaxCeil, h.AudioSettings().BPMMax)
				assert.Equal(t, cfg.Audio.BPMMaxCeil, h.audio.Bpm())
				assert.Equal(t, 100, h.audio.Volume())
			},
		},
		{
			name: "tempo missing",
			snap: persistence.Snapshot{BPM: 0, BPMMax: 0, Volume: -4},
			check: func(t *testing.T, h *harness) {
				assert.Equal(t, cfg.Audio.DefaultBPMMax, h.AudioSettings().BPMMax)
				assert.Equal(t, cfg.Audio.DefaultBPM, h.audio.Bpm())
				assert.Equal(t, 0, h.audio.Volume())
			},
		},
		{
			name: "charge over threshold",
			snap: persistence.Snapshot{SkillCharge: 1e6, ComboCount: -2},
			check: func(t *testing.T, h *harness) {
				assert.Equal(t, cfg.Combo.SkillThreshold, h.Combo().SkillCharge)
				assert.True(t, h.Combo().SkillReady)
				assert.Equal(t, 0, h.Combo().Count)
				assert.Equal(t, 1.0, h.Combo().Multiplier)
			},
		},
		{
			name: "no boost left",
			snap: persistence.Snapshot{UltimateComboRemainMs: -100},
			check: func(t *testing.T, h *harness) {
				assert.False(t, h.Combo().BoostActive)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.ApplySnapshot(&tt.snap)
			tt.check(t, h)
		})
	}
}

func TestApplyNilSnapshotKeepsDefaults(t *testing.T) {
	h := newHarness(t)
	h.ApplySnapshot(nil)
	assert.Equal(t, cfg.Audio.DefaultBPM, h.audio.Bpm())
	assert.Equal(t, 0, h.Progress().CurrentBoss)
}

func TestSavesGoThroughStore(t *testing.T) {
	store := persistence.NewMemoryStore()
	saver := persistence.NewSaver(store)

	h := newHarness(t)
	h.Saver = saver
	h.holdSkills()
	h.TriggerInstrument(0)
	h.mock.AdvanceMs(100)
	h.TriggerInstrument(0)
	saver.Close()

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ComboCount)
}

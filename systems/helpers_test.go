package systems

import (
	"testing"
	"time"

	"github.com/automoto/codesymphony/clock"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/effects"
	"github.com/automoto/codesymphony/persistence"
)

// recordingAudio remembers every call the simulation makes
type recordingAudio struct {
	*SilentAudio
	calls []string
}

func (r *recordingAudio) PlayHitNote(int) { r.calls = append(r.calls, "hit") }
func (r *recordingAudio) PlayPattern(int) { r.calls = append(r.calls, "pattern") }
func (r *recordingAudio) PlayUltimateSequence() { r.calls = append(r.calls, "ultimate") }
func (r *recordingAudio) PlayStinger(id cfg.SoundID) {
	r.calls = append(r.calls, "stinger")
}

// snapshots collects save requests
type snapshots struct {
	got []persistence.Snapshot
}

func (s *snapshots) Request(snap persistence.Snapshot) {
	s.got = append(s.got, snap)
}

func (s *snapshots) last() persistence.Snapshot {
	return s.got[len(s.got)-1]
}

type harness struct {
	*Context
	mock  *clock.Mock
	audio *recordingAudio
	saves *snapshots
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mock := clock.NewMock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	audio := &recordingAudio{SilentAudio: NewSilentAudio()}
	saves := &snapshots{}
	ctx := NewContext(
		WithClock(mock),
		WithSeed(42),
		WithAudio(audio),
		WithSaver(saves),
		WithSessionID("test"),
	)
	return &harness{Context: ctx, mock: mock, audio: audio, saves: saves}
}

// step moves the clock and runs one tick of the same length
func (h *harness) step(ms int64) {
	h.mock.AdvanceMs(ms)
	h.Advance(float64(ms))
}

// run ticks in 16ms steps until at least total ms have passed
func (h *harness) run(total int64) {
	for elapsed := int64(0); elapsed < total; elapsed += 16 {
		h.step(16)
	}
}

// setRatio puts the current boss at the given share of its health
func (h *harness) setRatio(r float64) {
	hp := h.BossHealth()
	hp.Current = int(float64(hp.Max) * r)
}

// holdSkills pushes the boss skill schedule out of the test's way
func (h *harness) holdSkills() {
	h.Skill().NextTriggerMs = h.Now() + 1_000_000
}

func countKind(reg *effects.Registry, k effects.Kind) int {
	n := 0
	reg.Each(func(e effects.Effect) {
		if e.Kind() == k {
			n++
		}
	})
	return n
}

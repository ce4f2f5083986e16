package core

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/automoto/codesymphony/clock"
	"github.com/automoto/codesymphony/systems"
	"github.com/yohamta/donburi"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func noSync(donburi.World, *donburi.Entity, donburi.IComponentType, bool) error {
	return nil
}

func failNotes(_ donburi.World, _ *donburi.Entity, _ donburi.IComponentType, interp bool) error {
	if interp {
		return errors.New("no transport")
	}
	return nil
}

// fakeBeat is a beat grid the test moves by hand
type fakeBeat struct {
	beat     int64
	progress float64
	toNext   int64
}

func (f *fakeBeat) Beat() int64                 { return f.beat }
func (f *fakeBeat) ProgressToNextBeat() float64 { return f.progress }
func (f *fakeBeat) MsToNextBeat() int64         { return f.toNext }

func newSim(t *testing.T) (*systems.Context, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	sim := systems.NewContext(
		systems.WithClock(mock),
		systems.WithSeed(9),
		systems.WithSessionID("core-test"),
	)
	sim.Skill().NextTriggerMs = sim.Now() + 1_000_000
	return sim, mock
}

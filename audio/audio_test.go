package audio

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/codesymphony/clock"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestBeatClock(t *testing.T) {
	mock := clock.NewMock(epoch)
	b := NewBeatClock(mock, 120)

	assert.Equal(t, int64(500), b.BeatLengthMs())
	assert.Equal(t, 0.0, b.ProgressToNextBeat())
	assert.Equal(t, int64(500), b.MsToNextBeat())

	mock.AdvanceMs(250)
	assert.InDelta(t, 0.5, b.ProgressToNextBeat(), 1e-9)
	assert.Equal(t, int64(250), b.MsToNextBeat())

	mock.AdvanceMs(1125)
	assert.Equal(t, int64(2), b.Beat())
	assert.InDelta(t, 0.75, b.ProgressToNextBeat(), 1e-9)

	b.SetBpm(60)
	assert.Equal(t, 0.0, b.ProgressToNextBeat(), "tempo change restarts the grid")
	assert.Equal(t, int64(1000), b.BeatLengthMs())

	b.SetBpm(0)
	assert.Equal(t, 1, b.Bpm())
}

// streamLen drains s and returns the number of samples it produced
func streamLen(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never ended")
	return 0
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestVoicesEnd(t *testing.T) {
	rate := beep.SampleRate(44100)
	e := &Engine{rate: rate, rng: newTestRand()}

	tests := []struct {
		name string
		s    beep.Streamer
		want int
	}{
		{"tone", tone(60, 100*time.Millisecond, WaveSine, rate, e.rng), rate.N(100 * time.Millisecond)},
		{"kick", drum(35, 50*time.Millisecond, rate, e.rng), rate.N(50 * time.Millisecond)},
		{"hat", drum(42, 20*time.Millisecond, rate, e.rng), rate.N(20 * time.Millisecond)},
		{"hit note", e.hitNote(1), rate.N(180 * time.Millisecond)},
		{"drum pattern", e.pattern(0, 120), rate.N(250*time.Millisecond) * 4},
		{"bass pattern", e.pattern(4, 120), rate.N(time.Second)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, streamLen(t, tt.s))
		})
	}

	assert.Nil(t, e.hitNote(-1))
	assert.Nil(t, e.pattern(len(cfg.Instruments), 120))
}

func TestNoteFreq(t *testing.T) {
	assert.InDelta(t, 440.0, noteFreq(69), 1e-9)
	assert.InDelta(t, 880.0, noteFreq(81), 1e-9)
	assert.InDelta(t, 261.63, noteFreq(60), 0.01)
}

// recorder captures streamers handed to the output
type recorder struct {
	played chan beep.Streamer
}

func (r *recorder) Play(s beep.Streamer) {
	r.played <- s
}

func TestEngineDeliversCues(t *testing.T) {
	mock := clock.NewMock(epoch)
	rec := &recorder{played: make(chan beep.Streamer, 8)}
	e := NewEngine(rec, mock, 7)
	defer e.Close()

	e.PlayHitNote(2)
	select {
	case s := <-rec.played:
		assert.Equal(t, e.SampleRate().N(180*time.Millisecond), streamLen(t, s))
	case <-time.After(2 * time.Second):
		t.Fatal("hit note never reached the output")
	}

	// 100ms into a 500ms beat the pattern waits 400ms of silence
	mock.AdvanceMs(100)
	e.PlayPattern(0)
	select {
	case s := <-rec.played:
		rate := e.SampleRate()
		assert.Equal(t, rate.N(400*time.Millisecond)+rate.N(250*time.Millisecond)*4, streamLen(t, s))
	case <-time.After(2 * time.Second):
		t.Fatal("pattern never reached the output")
	}

	e.PlayUltimateSequence()
	select {
	case s := <-rec.played:
		rate := e.SampleRate()
		assert.Equal(t, rate.N(400*time.Millisecond)+rate.N(5*time.Second), streamLen(t, s))
	case <-time.After(5 * time.Second):
		t.Fatal("ultimate never reached the output")
	}
}

func TestEngineSettings(t *testing.T) {
	e := NewEngine(nil, clock.NewMock(epoch), 1)
	defer e.Close()

	assert.Equal(t, cfg.Audio.DefaultVolume, e.Volume())
	e.SetVolume(150)
	assert.Equal(t, 100, e.Volume())
	e.SetVolume(-5)
	assert.Equal(t, 0, e.Volume())

	assert.Equal(t, cfg.Audio.DefaultBPM, e.Bpm())
	e.SetBpm(140)
	assert.Equal(t, 140, e.Bpm())
}

func TestEngineCloseIgnoresLateCues(t *testing.T) {
	rec := &recorder{played: make(chan beep.Streamer, 8)}
	e := NewEngine(rec, clock.NewMock(epoch), 1)
	e.Close()
	e.Close()

	require.NotPanics(t, func() {
		e.PlayHitNote(0)
		e.PlayUltimateSequence()
	})
	select {
	case <-rec.played:
		t.Fatal("closed engine played a cue")
	case <-time.After(50 * time.Millisecond):
	}
}

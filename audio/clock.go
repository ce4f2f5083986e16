package audio

import (
	"sync/atomic"

	"github.com/automoto/codesymphony/clock"
)

// BeatClock tracks tempo. BPM is read from the tick thread and written from
// input handlers, so both it and the beat anchor are atomics.
type BeatClock struct {
	clock    clock.Provider
	bpm      atomic.Int32
	anchorMs atomic.Int64 // start of a beat
}

func NewBeatClock(c clock.Provider, bpm int) *BeatClock {
	b := &BeatClock{clock: c}
	b.SetBpm(bpm)
	return b
}

// SetBpm changes tempo and restarts the beat grid at now
func (b *BeatClock) SetBpm(bpm int) {
	if bpm < 1 {
		bpm = 1
	}
	b.bpm.Store(int32(bpm))
	b.anchorMs.Store(clock.Millis(b.clock))
}

func (b *BeatClock) Bpm() int {
	return int(b.bpm.Load())
}

// BeatLengthMs is the duration of one beat
func (b *BeatClock) BeatLengthMs() int64 {
	return 60000 / int64(b.Bpm())
}

// ProgressToNextBeat is how far through the current beat we are, in [0,1]
func (b *BeatClock) ProgressToNextBeat() float64 {
	beat := b.BeatLengthMs()
	elapsed := clock.Millis(b.clock) - b.anchorMs.Load()
	if elapsed < 0 {
		return 0
	}
	p := float64(elapsed%beat) / float64(beat)
	return min(1, max(0, p))
}

// MsToNextBeat is how long until the next beat starts
func (b *BeatClock) MsToNextBeat() int64 {
	beat := b.BeatLengthMs()
	elapsed := clock.Millis(b.clock) - b.anchorMs.Load()
	if elapsed < 0 {
		return -elapsed
	}
	return beat - elapsed%beat
}

// Beat returns the index of the current beat since the last tempo change
func (b *BeatClock) Beat() int64 {
	elapsed := clock.Millis(b.clock) - b.anchorMs.Load()
	if elapsed < 0 {
		return 0
	}
	return elapsed / b.BeatLengthMs()
}

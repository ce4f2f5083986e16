package audio

import (
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/codesymphony/clock"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/gopxl/beep"
)

// Output receives finished streamers. The speaker device implements it;
// Discard drops everything.
type Output interface {
	Play(s beep.Streamer)
}

type discard struct{}

func (discard) Play(beep.Streamer) {}

// Discard is an Output that plays nothing
var Discard Output = discard{}

type cueKind int

const (
	cueHitNote cueKind = iota
	cuePattern
	cueUltimate
	cueStinger
)

type cue struct {
	kind       cueKind
	instrument int
	delayMs    int64
	bpm        int
	sound      cfg.SoundID
}

// Engine is the audio collaborator. Every Play call only queues a cue;
// synthesis happens on the engine's own goroutine.
type Engine struct {
	rate    beep.SampleRate
	out     Output
	beat    *BeatClock
	volume  atomic.Int32
	dropped atomic.Int64
	cues    chan cue
	done    chan struct{}
	once    sync.Once
	rng     *rand.Rand
}

// NewEngine starts the synthesis worker. Close it when the session ends.
func NewEngine(out Output, c clock.Provider, seed uint64) *Engine {
	if out == nil {
		out = Discard
	}
	e := &Engine{
		rate: beep.SampleRate(cfg.Audio.SampleRate),
		out:  out,
		beat: NewBeatClock(c, cfg.Audio.DefaultBPM),
		cues: make(chan cue, 32),
		done: make(chan struct{}),
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	e.volume.Store(int32(cfg.Audio.DefaultVolume))
	go e.run()
	return e
}

// SampleRate is the rate streamers are synthesized at
func (e *Engine) SampleRate() beep.SampleRate {
	return e.rate
}

func (e *Engine) PlayHitNote(instrument int) {
	e.enqueue(cue{kind: cueHitNote, instrument: instrument})
}

// PlayPattern queues the instrument's two-beat backing pattern, starting on the next beat
func (e *Engine) PlayPattern(instrument int) {
	e.enqueue(cue{kind: cuePattern, instrument: instrument, delayMs: e.beat.MsToNextBeat(), bpm: e.beat.Bpm()})
}

func (e *Engine) PlayUltimateSequence() {
	e.enqueue(cue{kind: cueUltimate, delayMs: e.beat.MsToNextBeat(), bpm: e.beat.Bpm()})
}

// PlayStinger queues the short cue for a battle event
func (e *Engine) PlayStinger(id cfg.SoundID) {
	e.enqueue(cue{kind: cueStinger, sound: id})
}

func (e *Engine) Bpm() int { return e.beat.Bpm() }
func (e *Engine) SetBpm(bpm int) { e.beat.SetBpm(bpm) }
func (e *Engine) ProgressToNextBeat() float64 { return e.beat.ProgressToNextBeat() }
func (e *Engine) Volume() int { return int(e.volume.Load()) }

func (e *Engine) SetVolume(percent int) {
	e.volume.Store(int32(min(100, max(0, percent))))
}

// Dropped counts cues discarded because the worker fell behind
func (e *Engine) Dropped() int64 {
	return e.dropped.Load()
}

func (e *Engine) enqueue(c cue) {
	select {
	case <-e.done:
		return
	default:
	}
	select {
	case e.cues <- c:
	default:
		if e.dropped.Add(1)%100 == 1 {
			log.Printf("Warning: audio queue full, dropping cues")
		}
	}
}

// Close stops the worker. Cues queued afterwards are ignored.
func (e *Engine) Close() {
	e.once.Do(func() {
		close(e.done)
	})
}

func (e *Engine) run() {
	for {
		select {
		case <-e.done:
			return
		case c := <-e.cues:
			s := e.render(c)
			if s == nil {
				continue
			}
			e.out.Play(withVolume(s, e.Volume()))
		}
	}
}

func (e *Engine) render(c cue) beep.Streamer {
	var s beep.Streamer
	switch c.kind {
	case cueHitNote:
		s = e.hitNote(c.instrument)
	case cuePattern:
		s = e.pattern(c.instrument, c.bpm)
	case cueUltimate:
		s = e.ultimate(c.bpm)
	case cueStinger:
		s = e.stinger(c.sound)
	}
	if s == nil {
		return nil
	}
	if c.delayMs > 0 {
		s = beep.Seq(beep.Silence(e.rate.N(time.Duration(c.delayMs)*time.Millisecond)), s)
	}
	return s
}

func (e *Engine) instrument(id int) (cfg.InstrumentConfig, bool) {
	if id < 0 || id >= len(cfg.Instruments) {
		return cfg.InstrumentConfig{}, false
	}
	return cfg.Instruments[id], true
}

func (e *Engine) hitNote(id int) beep.Streamer {
	inst, ok := e.instrument(id)
	if !ok {
		return nil
	}
	if inst.Channel == cfg.Audio.DrumChannel {
		return drum(38, 180*time.Millisecond, e.rate, e.rng)
	}
	return tone(inst.RootNote+12, 180*time.Millisecond, waveForProgram(inst.Program), e.rate, e.rng)
}

func beatDuration(bpm int) time.Duration {
	return time.Duration(60000/max(bpm, 1)) * time.Millisecond
}

// pattern is two beats: a kick/snare bar for the drum, a held root for the rest
func (e *Engine) pattern(id int, bpm int) beep.Streamer {
	inst, ok := e.instrument(id)
	if !ok {
		return nil
	}
	half := beatDuration(bpm) / 2
	if inst.Channel == cfg.Audio.DrumChannel {
		return beep.Seq(
			e.mix(half, drum(35, half, e.rate, e.rng), drum(42, half, e.rate, e.rng)),
			drum(42, half, e.rate, e.rng),
			e.mix(half, drum(38, half, e.rate, e.rng), drum(46, half, e.rate, e.rng)),
			drum(42, half, e.rate, e.rng),
		)
	}
	root := 36 + (inst.Channel*2)%12
	return tone(root, beatDuration(bpm)*time.Duration(max(inst.PatternLen, 1)), waveForProgram(inst.Program), e.rate, e.rng)
}

// ultimate is a climbing lead over a held power chord and bass note
func (e *Engine) ultimate(bpm int) beep.Streamer {
	total := time.Duration(cfg.Audio.UltimateMs) * time.Millisecond
	step := beatDuration(bpm) / 8
	if step <= 0 {
		step = 10 * time.Millisecond
	}

	var lead []beep.Streamer
	note := 72
	for played := time.Duration(0); played < total; played += step {
		lead = append(lead, tone(note, step, WaveSquare, e.rate, e.rng))
		if e.rng.Float64() > 0.6 {
			note += 2
		} else {
			note++
		}
		if note > 84 {
			note = 72 + e.rng.IntN(4)
		}
	}

	return e.mix(total,
		beep.Seq(lead...),
		chord([]int{52, 59, 64}, total, WaveSaw, e.rate, e.rng),
		gain(tone(40, total, WaveSine, e.rate, e.rng), 1.5),
	)
}

func (e *Engine) stinger(id cfg.SoundID) beep.Streamer {
	switch id {
	case cfg.SoundCounterResolved:
		return beep.Seq(
			tone(76, 90*time.Millisecond, WaveTriangle, e.rate, e.rng),
			tone(83, 160*time.Millisecond, WaveTriangle, e.rate, e.rng),
		)
	case cfg.SoundCounterFailed:
		return tone(40, 400*time.Millisecond, WaveSaw, e.rate, e.rng)
	case cfg.SoundBossDefeated:
		return chord([]int{60, 64, 67, 72}, 900*time.Millisecond, WaveTriangle, e.rate, e.rng)
	default:
		return nil
	}
}

// mix layers streamers and cuts the result at d
func (e *Engine) mix(d time.Duration, s ...beep.Streamer) beep.Streamer {
	return beep.Take(e.rate.N(d), beep.Mix(s...))
}

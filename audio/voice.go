package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveForProgram picks a timbre for a MIDI-style program number
func waveForProgram(program int) WaveType {
	switch {
	case program >= 64 && program < 72: // reeds
		return WaveSquare
	case program >= 40 && program < 48: // strings
		return WaveSaw
	case program >= 32 && program < 40: // bass
		return WaveSine
	default:
		return WaveTriangle
	}
}

// noteFreq converts a MIDI note number to Hz
func noteFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay shapes a stream with a short linear attack and an exponential tail
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	rate     beep.SampleRate
	tau      float64 // seconds
}

func newDecay(s beep.Streamer, attack time.Duration, tau float64, rate beep.SampleRate) *decay {
	return &decay{streamer: s, attack: rate.N(attack), rate: rate, tau: tau}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if d.position < d.attack && d.attack > 0 {
			vol = float64(d.position) / float64(d.attack)
		}
		t := float64(d.position) / float64(d.rate)
		vol *= math.Exp(-t / d.tau)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// gain scales a stream by a linear factor
func gain(s beep.Streamer, g float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: g - 1}
}

// withVolume applies a 0..100 percent volume. Zero is silent rather than -Inf.
func withVolume(s beep.Streamer, percent int) beep.Streamer {
	if percent <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(float64(percent) / 100), Silent: false}
}

// tone is one enveloped note
func tone(note int, dur time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	osc := newOscillator(noteFreq(note), dur, wave, rate, rng)
	return gain(newDecay(osc, 5*time.Millisecond, dur.Seconds()/2.5, rate), 0.25)
}

// chord mixes several notes of equal length
func chord(notes []int, dur time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		voices = append(voices, gain(tone(n, dur, wave, rate, rng), 0.6))
	}
	return beep.Mix(voices...)
}

// drum synthesizes one percussion hit named by its General MIDI note
func drum(note int, dur time.Duration, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch note {
	case 35, 36: // kick: low sine with fast decay
		return gain(newDecay(newOscillator(55, dur, WaveSine, rate, rng), time.Millisecond, 0.08, rate), 0.6)
	case 38, 40: // snare: noise over a body tone
		body := newDecay(newOscillator(190, dur, WaveTriangle, rate, rng), time.Millisecond, 0.05, rate)
		snap := newDecay(newOscillator(0, dur, WaveNoise, rate, rng), time.Millisecond, 0.06, rate)
		return gain(beep.Mix(body, snap), 0.35)
	default: // hats and cymbals: short noise
		return gain(newDecay(newOscillator(0, dur, WaveNoise, rate, rng), time.Millisecond, 0.02, rate), 0.15)
	}
}

package core

import (
	"github.com/automoto/codesymphony/audio"
	"github.com/automoto/codesymphony/clock"
	cfg "github.com/automoto/codesymphony/config"
)

// Metronome is the server's audio collaborator. It keeps the beat grid the
// bot plays against and the volume setting, and makes no sound.
type Metronome struct {
	*audio.BeatClock
	volume int
}

func NewMetronome(c clock.Provider) *Metronome {
	return &Metronome{
		BeatClock: audio.NewBeatClock(c, cfg.Audio.DefaultBPM),
		volume:    cfg.Audio.DefaultVolume,
	}
}

func (m *Metronome) PlayHitNote(int)       {}
func (m *Metronome) PlayPattern(int)       {}
func (m *Metronome) PlayUltimateSequence() {}
func (m *Metronome) Volume() int           { return m.volume }
func (m *Metronome) SetVolume(percent int) { m.volume = percent }

package systems

import (
	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
)

func queueSound(c *Context, id cfg.SoundID, instrument int) {
	a := c.AudioSettings()
	a.PendingSFX = append(a.PendingSFX, components.SoundCue{ID: id, Instrument: instrument})
}

// UpdateAudio hands queued cues to the audio collaborator in order
func UpdateAudio(c *Context) {
	a := c.AudioSettings()
	for _, cue := range a.PendingSFX {
		switch cue.ID {
		case cfg.SoundHitNote:
			c.Audio.PlayHitNote(cue.Instrument)
		case cfg.SoundPattern:
			c.Audio.PlayPattern(cue.Instrument)
		case cfg.SoundUltimate:
			c.Audio.PlayUltimateSequence()
		default:
			if st, ok := c.Audio.(Stinger); ok {
				st.PlayStinger(cue.ID)
			}
		}
	}
	a.PendingSFX = a.PendingSFX[:0]
}

// SilentAudio keeps tempo and volume but makes no sound. Headless sessions use it.
type SilentAudio struct {
	bpm    int
	volume int
}

func NewSilentAudio() *SilentAudio {
	return &SilentAudio{bpm: cfg.Audio.DefaultBPM, volume: cfg.Audio.DefaultVolume}
}

func (s *SilentAudio) PlayHitNote(int) {}
func (s *SilentAudio) PlayPattern(int) {}
func (s *SilentAudio) PlayUltimateSequence() {}
func (s *SilentAudio) Bpm() int { return s.bpm }
func (s *SilentAudio) SetBpm(bpm int) { s.bpm = bpm }
func (s *SilentAudio) ProgressToNextBeat() float64 { return 0 }
func (s *SilentAudio) Volume() int { return s.volume }
func (s *SilentAudio) SetVolume(percent int) { s.volume = percent }

package components

import (
	cfg "github.com/automoto/codesymphony/config"
	"github.com/yohamta/donburi"
)

// SoundCue is one request for the audio collaborator
type SoundCue struct {
	ID         cfg.SoundID
	Instrument int
}

// AudioData stores the session's audio settings and the cue queue (singleton).
// Cues are queued on the tick thread and handed off by the audio system.
type AudioData struct {
	Volume     int // percent
	BPMMax     int
	PendingSFX []SoundCue
}

var Audio = donburi.NewComponentType[AudioData]()

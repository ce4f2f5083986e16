package config

// SoundID represents a logical sound cue queued by the simulation
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHitNote
	SoundPattern
	SoundUltimate
	SoundCounterResolved
	SoundCounterFailed
	SoundBossDefeated
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	BufferMs      int
	DefaultVolume int // percent
	DefaultBPM    int
	MinBPM        int
	BPMStep       int
	DefaultBPMMax int
	BPMMaxFloor   int
	BPMMaxCeil    int
	UltimateMs    int
	DrumChannel   int
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		BufferMs:      100,
		DefaultVolume: 80,
		DefaultBPM:    120,
		MinBPM:        60,
		BPMStep:       4,
		DefaultBPMMax: 180,
		BPMMaxFloor:   120,
		BPMMaxCeil:    240,
		UltimateMs:    5000,
		DrumChannel:   9,
	}
}

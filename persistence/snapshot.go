package persistence

// Snapshot is the flat save record. The battle core owns its meaning;
// this package only moves the bytes.
type Snapshot struct {
	CurrentBossIndex      int       `json:"currentBossIndex"`
	TotalScore            int64     `json:"totalScore"`
	BPM                   int       `json:"bpm"`
	SkillCharge           float64   `json:"skillCharge"`
	ComboCount            int       `json:"comboCount"`
	UltimateComboRemainMs int64     `json:"ultimateComboRemainMs"`
	BossHealths           []float64 `json:"bossHealths"`
	Volume                int       `json:"volume"`
	BPMMax                int       `json:"bpmMax"`
}

// Store persists snapshots. Load returns nil, nil when nothing was saved.
type Store interface {
	Load() (*Snapshot, error)
	Save(s *Snapshot) error
	Clear() error
}

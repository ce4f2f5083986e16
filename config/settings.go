package config

// SettingsMenuConfig contains settings overlay configuration
type SettingsMenuConfig struct {
	VolumeStep int
	BPMMaxStep int
	Items      []string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

// PersistenceConfig names the storage slots
type PersistenceConfig struct {
	AppName     string
	ProgressKey string
	QueueSize   int
}

var Persistence PersistenceConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeStep: 10,
		BPMMaxStep: 10,
		Items:      []string{"Volume", "Max BPM", "Back"},
	}

	Persistence = PersistenceConfig{
		AppName:     "codesymphony",
		ProgressKey: "progress",
		QueueSize:   1,
	}
}

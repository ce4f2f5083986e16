package components

import "github.com/yohamta/donburi"

// ComboData is the combo and skill-charge state machine (singleton).
// Multiplier is derived from Count and the boost window and is never saved.
type ComboData struct {
	Count          int
	LastTriggerMs  int64
	HasTriggered   bool
	Multiplier     float64
	SkillCharge    float64
	SkillReady     bool
	BoostActive    bool
	BoostEndMs     int64
	LastInstrument int // -1 until the first trigger
	LowSkipCounter int
}

var Combo = donburi.NewComponentType[ComboData]()

package config

// ActionID represents a logical battle action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionInstrument0
	ActionInstrument1
	ActionInstrument2
	ActionInstrument3
	ActionInstrument4
	ActionSuperSkill
	ActionCounter
	ActionBPMUp
	ActionBPMDown
	ActionDebug
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InstrumentAction maps an instrument index to its action
func InstrumentAction(id int) ActionID {
	return ActionInstrument0 + ActionID(id)
}

// InputConfig holds held-key auto-repeat timing
type InputConfig struct {
	RepeatIntervalMs   float64
	InitialDelayFactor float64
	QueueSize          int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		RepeatIntervalMs:   160,
		InitialDelayFactor: 1.6,
		QueueSize:          64,
	}
}

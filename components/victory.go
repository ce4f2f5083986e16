package components

import "github.com/yohamta/donburi"

// VictoryOption represents the available victory screen selections
type VictoryOption int

const (
	VictoryRestart VictoryOption = iota
	VictoryMenu
)

// VictoryData stores the victory screen state
type VictoryData struct {
	SelectedOption VictoryOption
	TotalScore     int64
	ElapsedMs      float64
}

// Victory is the component type for victory screen state
var Victory = donburi.NewComponentType[VictoryData]()

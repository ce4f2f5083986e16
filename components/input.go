package components

import (
	cfg "github.com/automoto/codesymphony/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action computes the temporal state of one action
func (in *InputData) Action(a cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[a],
		JustPressed:  in.Current[a] && !in.Previous[a],
		JustReleased: !in.Current[a] && in.Previous[a],
	}
}

var Input = donburi.NewComponentType[InputData]()

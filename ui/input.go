package ui

import (
	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Bindings maps every action to the keys that trigger it
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionInstrument0: {ebiten.KeyA},
	cfg.ActionInstrument1: {ebiten.KeyS},
	cfg.ActionInstrument2: {ebiten.KeyD},
	cfg.ActionInstrument3: {ebiten.KeyF},
	cfg.ActionInstrument4: {ebiten.KeyG},
	cfg.ActionSuperSkill:  {ebiten.KeyQ},
	cfg.ActionCounter:     {ebiten.KeySpace},
	cfg.ActionBPMUp:       {ebiten.KeyUp},
	cfg.ActionBPMDown:     {ebiten.KeyDown},
	cfg.ActionDebug:       {ebiten.KeyF3},
	cfg.ActionPause:       {ebiten.KeyEscape},
	cfg.ActionMenuUp:      {ebiten.KeyUp, ebiten.KeyW},
	cfg.ActionMenuDown:    {ebiten.KeyDown},
	cfg.ActionMenuLeft:    {ebiten.KeyLeft},
	cfg.ActionMenuRight:   {ebiten.KeyRight},
	cfg.ActionMenuSelect:  {ebiten.KeyEnter, ebiten.KeySpace},
}

// UpdateInput polls the keyboard into the Input singleton.
// Must run before every system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}

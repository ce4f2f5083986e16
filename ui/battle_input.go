package ui

import (
	"log"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/input"
	"github.com/automoto/codesymphony/systems"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateBattleInput turns the polled actions into battle commands.
// A pressed instrument fires at once and keeps firing through the repeater
// while held; fires queued by the repeater are drained here, on the tick thread.
func NewUpdateBattleInput(sim *systems.Context, rep *input.Repeater) ecs.System {
	return func(e *ecs.ECS) {
		in := getOrCreateInput(e)

		if GetAction(in, cfg.ActionDebug).JustPressed {
			cfg.Debug.ShowHUD = !cfg.Debug.ShowHUD
		}

		rep.SetSlowFactor(sim.ScreenFX().SlowFactor)
		for id := range cfg.Instruments {
			a := GetAction(in, cfg.InstrumentAction(id))
			switch {
			case a.JustPressed:
				sim.TriggerInstrument(id)
				rep.Press(id)
			case a.JustReleased:
				rep.Release(id)
			}
		}
		rep.Drain(func(id int) {
			sim.TriggerInstrument(id)
		})

		if GetAction(in, cfg.ActionSuperSkill).JustPressed {
			sim.TriggerSuperSkill()
		}
		if GetAction(in, cfg.ActionCounter).JustPressed {
			if sim.AttemptCounterResolve() {
				log.Printf("[counter] resolved")
			}
		}
		if GetAction(in, cfg.ActionBPMUp).JustPressed {
			sim.ChangeBpm(cfg.Audio.BPMStep)
		}
		if GetAction(in, cfg.ActionBPMDown).JustPressed {
			sim.ChangeBpm(-cfg.Audio.BPMStep)
		}
	}
}

// ReleaseAll cancels every held repeat, used when the battle stops taking input
func ReleaseAll(rep *input.Repeater) {
	for id := range cfg.Instruments {
		rep.Release(id)
	}
}

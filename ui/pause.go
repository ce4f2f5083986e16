package ui

import (
	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/fonts"
	"github.com/automoto/codesymphony/input"
	"github.com/automoto/codesymphony/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause handles the pause toggle and menu navigation.
// Runs after UpdateInput and before the battle systems.
func NewUpdatePause(sim *systems.Context, rep *input.Repeater, onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		in := getOrCreateInput(e)

		if IsSettingsOpen(e) {
			return
		}

		if GetAction(in, cfg.ActionPause).JustPressed {
			if pause.IsPaused {
				pause.IsPaused = false
				return
			}
			pause.Open()
			ReleaseAll(rep)
			return
		}

		if !pause.IsPaused {
			return
		}

		if GetAction(in, cfg.ActionMenuUp).JustPressed {
			pause.Move(-1)
		}
		if GetAction(in, cfg.ActionMenuDown).JustPressed {
			pause.Move(1)
		}

		if GetAction(in, cfg.ActionMenuSelect).JustPressed {
			switch pause.SelectedOption {
			case components.MenuResume:
				pause.IsPaused = false
			case components.MenuSettings:
				OpenSettings(e)
			case components.MenuRestart:
				sim.Restart()
				pause.IsPaused = false
			case components.MenuExit:
				onExit()
			}
		}
	}
}

// DrawPause renders the pause overlay and menu
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused || IsSettingsOpen(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	face := fonts.Bold.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		drawCentered(screen, option, face, width/2, y+cfg.Pause.MenuItemHeight, textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.Pause.TextColorNormal)
}

// WithPauseCheck wraps a system to skip execution when paused
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// IsPaused reports whether the pause menu is up
func IsPaused(e *ecs.ECS) bool {
	return GetOrCreatePause(e).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

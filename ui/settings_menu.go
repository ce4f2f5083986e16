package ui

import (
	"fmt"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/fonts"
	"github.com/automoto/codesymphony/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// NewUpdateSettingsMenu handles settings navigation and value changes.
// Changed values go through the battle so they are clamped and saved.
func NewUpdateSettingsMenu(sim *systems.Context) ecs.System {
	return func(e *ecs.ECS) {
		settings := GetOrCreateSettingsMenu(e)
		if !settings.IsOpen {
			return
		}
		in := getOrCreateInput(e)

		if GetAction(in, cfg.ActionMenuUp).JustPressed {
			settings.SelectedOption = components.SettingsMenuOption(
				(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
			)
		}
		if GetAction(in, cfg.ActionMenuDown).JustPressed {
			settings.SelectedOption = components.SettingsMenuOption(
				(int(settings.SelectedOption) + 1) % numSettingsOptions,
			)
		}
		if GetAction(in, cfg.ActionMenuLeft).JustPressed {
			adjustValue(sim, settings, -1)
		}
		if GetAction(in, cfg.ActionMenuRight).JustPressed {
			adjustValue(sim, settings, +1)
		}

		if GetAction(in, cfg.ActionMenuSelect).JustPressed && settings.SelectedOption == components.SettingsOptBack {
			settings.IsOpen = false
			return
		}
		if GetAction(in, cfg.ActionPause).JustPressed {
			settings.IsOpen = false
		}
	}
}

// adjustValue changes the value for the selected option
func adjustValue(sim *systems.Context, s *components.SettingsMenuData, direction int) {
	a := sim.AudioSettings()
	switch s.SelectedOption {
	case components.SettingsOptVolume:
		sim.SetVolume(a.Volume + direction*cfg.SettingsMenu.VolumeStep)
	case components.SettingsOptBPMMax:
		sim.SetBPMMax(a.BPMMax + direction*cfg.SettingsMenu.BPMMaxStep)
	}
}

// NewDrawSettingsMenu renders the settings overlay on top of the pause screen
func NewDrawSettingsMenu(sim *systems.Context) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		settings := GetOrCreateSettingsMenu(e)
		if !settings.IsOpen {
			return
		}

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

		a := sim.AudioSettings()
		values := []string{
			fmt.Sprintf("< %d%% >", a.Volume),
			fmt.Sprintf("< %d >", a.BPMMax),
			"",
		}

		face := fonts.Bold.Get()
		drawCentered(screen, "SETTINGS", fonts.Title.Get(), width/2, height/4, cfg.Menu.TitleColor)

		rowH := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
		startY := height/2 - rowH
		for i, label := range cfg.SettingsMenu.Items {
			y := startY + float64(i)*rowH
			c := cfg.Pause.TextColorNormal
			if components.SettingsMenuOption(i) == settings.SelectedOption {
				c = cfg.Pause.TextColorSelected
			}
			if i < len(values) && values[i] != "" {
				drawRight(screen, label, face, width/2-20, y, c)
				drawText(screen, values[i], face, width/2+20, y, c)
				continue
			}
			drawCentered(screen, label, face, width/2, y, c)
		}

		hint := "Up/Down: Navigate   Left/Right: Change   Enter: Back"
		drawCentered(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.Pause.TextColorNormal)
	}
}

// OpenSettings shows the settings overlay with the first option selected
func OpenSettings(e *ecs.ECS) {
	s := GetOrCreateSettingsMenu(e)
	s.IsOpen = true
	s.SelectedOption = components.SettingsOptVolume
}

// IsSettingsOpen reports whether the settings overlay is showing
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
	}
	return components.SettingsMenu.Get(entry)
}

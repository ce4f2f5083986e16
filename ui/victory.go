package ui

import (
	"fmt"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateVictory handles the victory screen menu
func NewUpdateVictory(onRestart, onTitle func()) ecs.System {
	return func(e *ecs.ECS) {
		v := GetOrCreateVictory(e)
		v.ElapsedMs += 1000 / float64(ebiten.TPS())
		in := getOrCreateInput(e)

		n := len(cfg.Victory.MenuOptions)
		if GetAction(in, cfg.ActionMenuUp).JustPressed || GetAction(in, cfg.ActionMenuLeft).JustPressed {
			v.SelectedOption = components.VictoryOption((int(v.SelectedOption) - 1 + n) % n)
		}
		if GetAction(in, cfg.ActionMenuDown).JustPressed || GetAction(in, cfg.ActionMenuRight).JustPressed {
			v.SelectedOption = components.VictoryOption((int(v.SelectedOption) + 1) % n)
		}
		// Ignore the key that finished the last boss
		if v.ElapsedMs < 600 || !GetAction(in, cfg.ActionMenuSelect).JustPressed {
			return
		}
		switch v.SelectedOption {
		case components.VictoryRestart:
			onRestart()
		case components.VictoryMenu:
			onTitle()
		}
	}
}

// DrawVictory renders the victory screen
func DrawVictory(e *ecs.ECS, screen *ebiten.Image) {
	v := GetOrCreateVictory(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Victory.OverlayColor, false)
	drawCentered(screen, "SYMPHONY COMPLETE", fonts.Title.Get(), width/2, height/3, cfg.Victory.TitleColor)
	drawCentered(screen, fmt.Sprintf("total score %d", v.TotalScore), fonts.Bold.Get(), width/2, height/3+48, cfg.Menu.TextColorNormal)

	for i, label := range cfg.Victory.MenuOptions {
		c := cfg.Menu.TextColorNormal
		if components.VictoryOption(i) == v.SelectedOption {
			c = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, label, fonts.Bold.Get(), width/2, height/2+60+float64(i)*40, c)
	}
}

// GetOrCreateVictory returns the singleton Victory component, creating if needed
func GetOrCreateVictory(e *ecs.ECS) *components.VictoryData {
	entry, ok := components.Victory.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Victory))
	}
	return components.Victory.Get(entry)
}

package ui

import (
	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var menuLabels = map[components.MainMenuOption]string{
	components.MainMenuStart:    "New Game",
	components.MainMenuContinue: "Continue",
	components.MainMenuExit:     "Exit",
}

// NewUpdateMenu creates the title menu system. onStart receives true when a
// fresh game was chosen, false to continue from the save.
func NewUpdateMenu(onStart func(fresh bool), onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		in := getOrCreateInput(e)

		if menu.ShowingConfirmDialog {
			if GetAction(in, cfg.ActionMenuLeft).JustPressed || GetAction(in, cfg.ActionMenuRight).JustPressed {
				menu.ConfirmSelection = 1 - menu.ConfirmSelection
			}
			if GetAction(in, cfg.ActionPause).JustPressed {
				menu.ShowingConfirmDialog = false
				return
			}
			if GetAction(in, cfg.ActionMenuSelect).JustPressed {
				menu.ShowingConfirmDialog = false
				if menu.ConfirmSelection == 1 {
					onStart(true)
				}
			}
			return
		}

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}
		if GetAction(in, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(in, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(in, cfg.ActionMenuSelect).JustPressed {
			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuStart:
				if menu.HasSaveGame {
					menu.ShowingConfirmDialog = true
					menu.ConfirmSelection = 0
					return
				}
				onStart(true)
			case components.MainMenuContinue:
				onStart(false)
			case components.MainMenuExit:
				onExit()
			}
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	screen.Fill(cfg.Menu.BackgroundColor)
	drawGrid(screen, 0)
	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), width/2, height/3, cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.Subtitle, fonts.Regular.Get(), width/2, height/3+34, cfg.Menu.TextColorNormal)

	face := fonts.Bold.Get()
	startY := height / 2
	for i, opt := range menu.VisibleOptions {
		c := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			c = cfg.Menu.TextColorSelected
		}
		y := startY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)
		drawCentered(screen, menuLabels[opt], face, width/2, y+cfg.Menu.MenuItemHeight, c)
	}

	hint := "A S D F G play   Q ultimate   SPACE counter   Up/Down tempo   Esc pause"
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-16, cfg.Menu.TextColorNormal)

	if menu.ShowingConfirmDialog {
		drawConfirm(screen, menu, width, height)
	}
}

func drawConfirm(screen *ebiten.Image, menu *components.MenuData, width, height float64) {
	const boxW, boxH = 420.0, 140.0
	x, y := (width-boxW)/2, (height-boxH)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), boxW, boxH, cfg.Pause.OverlayColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), boxW, boxH, 2, cfg.Menu.TitleColor, false)
	drawCentered(screen, "Overwrite saved progress?", fonts.Bold.Get(), width/2, y+50, cfg.Menu.TextColorNormal)

	for i, label := range []string{"No", "Yes"} {
		c := cfg.Menu.TextColorNormal
		if i == menu.ConfirmSelection {
			c = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, label, fonts.Bold.Get(), width/2+float64(i*2-1)*70, y+105, c)
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating it with the
// options that fit the save state
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(entry, components.MenuData{
		VisibleOptions: []components.MainMenuOption{components.MainMenuStart, components.MainMenuExit},
	})
	return components.Menu.Get(entry)
}

// SetHasSave shows or hides Continue, selecting it when a save exists
func SetHasSave(e *ecs.ECS, has bool) {
	menu := GetOrCreateMenu(e)
	menu.HasSaveGame = has
	menu.SelectedIndex = 0
	if has {
		menu.VisibleOptions = []components.MainMenuOption{
			components.MainMenuContinue, components.MainMenuStart, components.MainMenuExit,
		}
		return
	}
	menu.VisibleOptions = []components.MainMenuOption{components.MainMenuStart, components.MainMenuExit}
}

package components

import "github.com/yohamta/donburi"

// PauseMenuOption is a pause menu row, in display order
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuSettings
	MenuRestart
	MenuExit
	pauseOptionCount
)

// PauseData is the pause overlay (singleton). Battle time is frozen while
// IsPaused is set.
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
}

// Open shows the menu with the cursor on Resume
func (p *PauseData) Open() {
	p.IsPaused = true
	p.SelectedOption = MenuResume
}

// Move shifts the cursor by delta rows, wrapping at both ends
func (p *PauseData) Move(delta int) {
	n := int(pauseOptionCount)
	p.SelectedOption = PauseMenuOption(((int(p.SelectedOption)+delta)%n + n) % n)
}

var Pause = donburi.NewComponentType[PauseData]()

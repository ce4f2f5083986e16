package components

import (
	cfg "github.com/automoto/codesymphony/config"
	"github.com/yohamta/donburi"
)

// ProgressData tracks the boss gauntlet and scoring (singleton)
type ProgressData struct {
	SessionID   string
	CurrentBoss int
	Score       int64 // damage dealt to the current boss
	TotalScore  int64
	State       cfg.BattleState
	Defeated    int
}

var Progress = donburi.NewComponentType[ProgressData]()

package components

import (
	cfg "github.com/automoto/codesymphony/config"
	"github.com/yohamta/donburi"
)

// BossSkillData is the boss special-skill scheduler (singleton)
type BossSkillData struct {
	Kind          cfg.SkillKind
	EndMs         int64
	AbsorbAccum   float64
	NextTriggerMs int64

	// Lifetime totals for the HUD and tests
	TotalAbsorbed float64
	TotalHealed   int
	Activations   int
}

// Active reports whether a skill window is open
func (s *BossSkillData) Active() bool {
	return s.Kind != cfg.SkillNone
}

var BossSkill = donburi.NewComponentType[BossSkillData]()

package netcomponents

import "github.com/yohamta/donburi"

// NetBattleStateData is the spectator view of one battle session. One entity
// carries it for the lifetime of the server.
type NetBattleStateData struct {
	SessionID string
	Tick      uint64

	BossIndex  int
	BossName   string
	BossHealth int
	BossMax    int
	Phase      int

	CounterState  string
	Skill         string
	SkillRemainMs int64

	Combo       int
	Multiplier  float64
	SkillCharge float64
	SkillReady  bool
	Boosted     bool
	Ultimate    bool

	Quality     string
	Projectiles int
	TotalScore  int64
	Defeated    int
	State       string

	Bpm          int
	BeatProgress float64
	Spectators   int
}

var NetBattleState = donburi.NewComponentType[NetBattleStateData]()

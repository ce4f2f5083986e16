package config

// BattleState is the coarse state of a battle session
type BattleState int

const (
	BattlePlaying BattleState = iota
	BattleSwitching
	BattleVictory
)

func (s BattleState) String() string {
	switch s {
	case BattleSwitching:
		return "switching"
	case BattleVictory:
		return "victory"
	default:
		return "playing"
	}
}

// QualityLevel is the discrete render/simulation cost tier
type QualityLevel int

const (
	QualityHigh QualityLevel = iota
	QualityMed
	QualityLow
)

func (q QualityLevel) String() string {
	switch q {
	case QualityMed:
		return "MED"
	case QualityLow:
		return "LOW"
	default:
		return "HIGH"
	}
}

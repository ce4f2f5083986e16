package components

import (
	"github.com/automoto/codesymphony/effects"
	"github.com/yohamta/donburi"
)

// CounterState is the externally visible state of the counter window
type CounterState int

const (
	CounterInactive CounterState = iota
	CounterActive
	CounterResolved
)

func (s CounterState) String() string {
	switch s {
	case CounterActive:
		return "ACTIVE"
	case CounterResolved:
		return "RESOLVED"
	default:
		return "INACTIVE"
	}
}

// BossPhaseData tracks the health-derived phase and its counter window (singleton)
type BossPhaseData struct {
	Phase           int
	CounterActive   bool
	CounterResolved bool
	CounterEndMs    int64
	// Telegraph is the pending "press SPACE" ring, killed when the window resolves
	Telegraph effects.Killer

	// Window counters, only ever incremented
	Opened   int
	Resolved int
	Failed   int
}

// State folds the two flags into one value
func (p *BossPhaseData) State() CounterState {
	switch {
	case p.CounterActive && p.CounterResolved:
		return CounterResolved
	case p.CounterActive:
		return CounterActive
	default:
		return CounterInactive
	}
}

var BossPhase = donburi.NewComponentType[BossPhaseData]()

package components

import (
	cfg "github.com/automoto/codesymphony/config"
	"github.com/yohamta/donburi"
)

// QualityData is the adaptive quality controller state (singleton)
type QualityData struct {
	Level        cfg.QualityLevel
	AvgFrameMs   float64
	LastAdjustMs int64
	// Forced pins Level to HIGH while an ultimate runs; PriorLevel is restored afterwards
	Forced     bool
	PriorLevel cfg.QualityLevel

	Ticks             uint64
	DeferredProjectMs float64 // projectile time not yet simulated under LOW
	Transitions       int
}

// TrailLength is the projectile trail bound for the current level
func (q *QualityData) TrailLength() int {
	return cfg.Quality.TrailLengths[q.Level]
}

// Density scales particle counts for the current level
func (q *QualityData) Density() float64 {
	return cfg.Quality.EffectDensity[q.Level]
}

var Quality = donburi.NewComponentType[QualityData]()

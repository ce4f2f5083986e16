package components

import (
	"github.com/automoto/codesymphony/effects"
	"github.com/yohamta/donburi"
)

// ScreenFXData holds the shared full-screen feedback values (singleton)
type ScreenFXData struct {
	Shake     float64 // 0..1, scaled to pixels by the renderer
	BassPulse float64
	DarkAlpha float64

	// SlowFactor scales damage and auto-repeat cadence until SlowEndMs
	SlowFactor float64
	SlowEndMs  int64
}

var ScreenFX = donburi.NewComponentType[ScreenFXData]()

// EffectsData owns the effect registry (singleton)
type EffectsData struct {
	Registry *effects.Registry
}

var Effects = donburi.NewComponentType[EffectsData]()

package components

import "github.com/yohamta/donburi"

// UltimateData tracks the super skill overlay window (singleton)
type UltimateData struct {
	Active bool
	EndMs  int64
	Uses   int
}

var Ultimate = donburi.NewComponentType[UltimateData]()

package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is a note fired at the boss. It flies in a straight line and
// records its recent positions, newest first.
type ProjectileData struct {
	Position   math.Vec2
	Target     math.Vec2
	Speed      float64 // px per second
	Damage     int
	Color      color.RGBA
	Instrument int
	Hit        bool
	Trail      []math.Vec2
}

var Projectile = donburi.NewComponentType[ProjectileData]()

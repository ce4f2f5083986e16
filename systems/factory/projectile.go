package factory

import (
	"image/color"

	"github.com/automoto/codesymphony/archetypes"
	"github.com/automoto/codesymphony/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a note flying from origin to target with an empty trail
func CreateProjectile(w donburi.World, origin, target math.Vec2, speed float64, damage int, c color.RGBA, instrument int) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)
	components.Projectile.SetValue(p, components.ProjectileData{
		Position:   origin,
		Target:     target,
		Speed:      speed,
		Damage:     damage,
		Color:      c,
		Instrument: instrument,
	})
	return p
}

package systems

import (
	"math"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateProjectiles moves every projectile toward its target. Under LOW only
// every other tick simulates, with the skipped time carried over.
func UpdateProjectiles(c *Context, dtMs float64) {
	q := c.Quality()
	q.DeferredProjectMs += dtMs
	if q.Level == cfg.QualityLow && q.Ticks%2 == 1 {
		return
	}
	dt := q.DeferredProjectMs
	q.DeferredProjectMs = 0

	trail := q.TrailLength()
	var done []donburi.Entity

	projectileQuery.Each(c.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Hit {
			done = append(done, e.Entity())
			return
		}

		dx := p.Target.X - p.Position.X
		dy := p.Target.Y - p.Position.Y
		dist := math.Hypot(dx, dy)
		step := p.Speed * dt / 1000

		if step >= dist {
			p.Position = p.Target
			p.Hit = true
			components.ProjectileHit.Publish(c.World, components.ProjectileHitEvent{
				Damage:     p.Damage,
				Instrument: p.Instrument,
				Color:      p.Color,
				X:          p.Position.X,
				Y:          p.Position.Y,
			})
			done = append(done, e.Entity())
		} else {
			p.Position.X += dx / dist * step
			p.Position.Y += dy / dist * step
		}
		p.Trail = pushTrail(p.Trail, p.Position, trail)
	})

	components.ProjectileHit.ProcessEvents(c.World)
	for _, id := range done {
		if c.World.Valid(id) {
			c.World.Remove(id)
		}
	}
}

// pushTrail records pos as the newest point and drops the oldest beyond limit
func pushTrail(trail []dmath.Vec2, pos dmath.Vec2, limit int) []dmath.Vec2 {
	trail = append(trail, dmath.Vec2{})
	copy(trail[1:], trail)
	trail[0] = pos
	if len(trail) > limit {
		trail = trail[:limit]
	}
	return trail
}

func trimTrails(c *Context, limit int) {
	projectileQuery.Each(c.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if len(p.Trail) > limit {
			p.Trail = p.Trail[:limit]
		}
	})
}

// spawnProjectile launches a note from below the arena at the boss. Under LOW
// the spawn is dropped once too many are in flight.
func spawnProjectile(c *Context, instrument, damage int) bool {
	if c.Quality().Level == cfg.QualityLow && c.ProjectileCount() > cfg.Quality.LowProjectileCap {
		return false
	}
	w, h := float64(c.Arena.W), float64(c.Arena.H)
	pc := cfg.Projectile
	origin := dmath.Vec2{
		X: pc.SideMargin + c.Rand.Float64()*(w-2*pc.SideMargin),
		Y: h + pc.SpawnBelow,
	}
	target := dmath.Vec2{
		X: w/2 + (c.Rand.Float64()-0.5)*pc.TargetSpread,
		Y: h/3 - pc.TargetLift,
	}
	factory.CreateProjectile(c.World, origin, target, pc.Speed, damage, cfg.InstrumentColor(instrument), instrument)
	return true
}

// onProjectileHit lands the remaining share of the skill charge and the damage
func (c *Context) onProjectileHit(w donburi.World, ev components.ProjectileHitEvent) {
	factory.SpawnHitFirework(c.Effects(), c.Rand, c.Arena, ev.Color, c.Quality().Density())
	addCharge(c, skillGain(c.Combo())*cfg.Combo.ProjectileShare)
	applyBossDamage(c, ev.Damage)
	c.requestSave()
}

package components

import (
	"image/color"

	"github.com/yohamta/donburi/features/events"
)

// ProjectileHitEvent is published when a projectile reaches its target
type ProjectileHitEvent struct {
	Damage     int
	Instrument int
	Color      color.RGBA
	X, Y       float64
}

var ProjectileHit = events.NewEventType[ProjectileHitEvent]()

// BossDefeatedEvent is published when the current boss reaches zero health
type BossDefeatedEvent struct {
	Index int
	Name  string
}

var BossDefeated = events.NewEventType[BossDefeatedEvent]()

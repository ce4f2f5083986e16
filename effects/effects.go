// Package effects holds the timed visual actors spawned by the battle and the
// registry that owns them.
package effects

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Kind identifies an effect variant for the renderer
type Kind int

const (
	KindFirework Kind = iota
	KindRipple
	KindSuperFirework
	KindFullScreenRipple
	KindShockwave
	KindCorePulse
	KindUltimateOverlay
	KindHackOverlay
	KindCircleTelegraph
	KindEdgeThreat
	KindHealingBurst
	KindBlurTelegraph
)

// Effect is a timed actor advanced once per tick by the Registry.
// Variants never see each other.
type Effect interface {
	Update(dtMs float64)
	Alive() bool
	Kind() Kind
}

// Killer is implemented by effects that can be cut short by their spawner
type Killer interface {
	Kill()
}

type base struct {
	dead bool
}

func (b *base) Alive() bool { return !b.dead }

// Kill marks the effect dead; the registry drops it on its next tick
func (b *base) Kill() { b.dead = true }

// grow builds a linear tween from `from` to `to` at speed px per ms.
func grow(from, to, speed float64) *gween.Tween {
	d := 0.0
	if speed > 0 && to > from {
		d = (to - from) / speed
	}
	return gween.New(float32(from), float32(to), float32(d), ease.Linear)
}

// shrink builds a linear tween that decreases from `from` to `floor` at speed per ms.
func shrink(from, floor, speed float64) *gween.Tween {
	d := 0.0
	if speed > 0 && from > floor {
		d = (from - floor) / speed
	}
	return gween.New(float32(from), float32(floor), float32(d), ease.Linear)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

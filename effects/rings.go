package effects

import (
	"image/color"
	"math"

	"github.com/tanema/gween"
)

// Ripple is an expanding ring with a thinning stroke
type Ripple struct {
	base
	cx, cy    float64
	color     color.RGBA
	radius    float64
	maxRadius float64
	thickness float64
	growth    *gween.Tween
	thin      *gween.Tween
}

// NewRipple grows from radius 10 to 260 at 0.25 px/ms, stroke 8 down to 1
func NewRipple(cx, cy float64, c color.RGBA) *Ripple {
	return &Ripple{
		cx: cx, cy: cy, color: c,
		radius:    10,
		maxRadius: 260,
		thickness: 8,
		growth:    grow(10, 260, 0.25),
		thin:      shrink(8, 1, 0.008),
	}
}

func (r *Ripple) Kind() Kind { return KindRipple }

func (r *Ripple) Update(dtMs float64) {
	rad, done := r.growth.Update(float32(dtMs))
	th, _ := r.thin.Update(float32(dtMs))
	r.radius = float64(rad)
	r.thickness = float64(th)
	if done || r.radius >= r.maxRadius {
		r.dead = true
	}
}

func (r *Ripple) Center() (float64, float64) { return r.cx, r.cy }
func (r *Ripple) Radius() float64 { return r.radius }
func (r *Ripple) Thickness() float64 { return r.thickness }
func (r *Ripple) Color() color.RGBA { return r.color }
func (r *Ripple) Alpha() float64 { return clamp01(1 - r.radius/r.maxRadius) }

// FullScreenRipple is a fast ring sized to sweep the whole arena
type FullScreenRipple struct {
	base
	cx, cy float64
	color  color.RGBA
	radius float64
	maxR   float64
	growth *gween.Tween
}

// NewFullScreenRipple grows from the arena centre at 0.55 px/ms to hypot(w,h)/1.2
func NewFullScreenRipple(w, h int, c color.RGBA) *FullScreenRipple {
	maxR := math.Floor(math.Hypot(float64(w), float64(h)) / 1.2)
	return &FullScreenRipple{
		cx: float64(w) / 2, cy: float64(h) / 2, color: c,
		radius: 10,
		maxR:   maxR,
		growth: grow(10, maxR, 0.55),
	}
}

func (f *FullScreenRipple) Kind() Kind { return KindFullScreenRipple }

func (f *FullScreenRipple) Update(dtMs float64) {
	rad, done := f.growth.Update(float32(dtMs))
	f.radius = float64(rad)
	if done || f.radius >= f.maxR {
		f.dead = true
	}
}

func (f *FullScreenRipple) Center() (float64, float64) { return f.cx, f.cy }
func (f *FullScreenRipple) Radius() float64 { return f.radius }
func (f *FullScreenRipple) Color() color.RGBA { return f.color }
func (f *FullScreenRipple) Alpha() float64 { return clamp01(1 - f.radius/f.maxR) }

// Shockwave is the red ring announcing a counter window
type Shockwave struct {
	base
	cx, cy    float64
	radius    float64
	maxR      float64
	thickness float64
	growth    *gween.Tween
	thin      *gween.Tween
}

// NewShockwave grows from (w/2, h/3) at 0.7 px/ms to 3/4 of the larger side
func NewShockwave(w, h int) *Shockwave {
	maxR := float64(max(w, h) * 3 / 4)
	return &Shockwave{
		cx: float64(w) / 2, cy: float64(h) / 3,
		radius:    5,
		maxR:      maxR,
		thickness: 22,
		growth:    grow(5, maxR, 0.7),
		thin:      shrink(22, 2, 0.03),
	}
}

func (s *Shockwave) Kind() Kind { return KindShockwave }

func (s *Shockwave) Update(dtMs float64) {
	rad, done := s.growth.Update(float32(dtMs))
	th, _ := s.thin.Update(float32(dtMs))
	s.radius = float64(rad)
	s.thickness = float64(th)
	if done || s.radius >= s.maxR {
		s.dead = true
	}
}

func (s *Shockwave) Center() (float64, float64) { return s.cx, s.cy }
func (s *Shockwave) Radius() float64 { return s.radius }
func (s *Shockwave) Thickness() float64 { return s.thickness }
func (s *Shockwave) Alpha() float64 { return clamp01(1 - s.radius/s.maxR) }

// CorePulse is the wide ring the core boss emits while its skill is up
type CorePulse struct {
	base
	cx, cy float64
	color  color.RGBA
	radius float64
	maxR   float64
	growth *gween.Tween
}

// NewCorePulse grows from (w/2, h/3) at 0.6 px/ms to 0.9 of the larger side
func NewCorePulse(w, h int, c color.RGBA) *CorePulse {
	maxR := math.Floor(float64(max(w, h)) * 0.9)
	return &CorePulse{
		cx: float64(w) / 2, cy: float64(h) / 3, color: c,
		radius: 10,
		maxR:   maxR,
		growth: grow(10, maxR, 0.6),
	}
}

func (p *CorePulse) Kind() Kind { return KindCorePulse }

func (p *CorePulse) Update(dtMs float64) {
	rad, done := p.growth.Update(float32(dtMs))
	p.radius = float64(rad)
	if done || p.radius >= p.maxR {
		p.dead = true
	}
}

func (p *CorePulse) Center() (float64, float64) { return p.cx, p.cy }
func (p *CorePulse) Radius() float64 { return p.radius }
func (p *CorePulse) Color() color.RGBA { return p.color }
func (p *CorePulse) Alpha() float64 { return clamp01(1 - p.radius/p.maxR) }

// HealingBurst is a fading ring shown when an absorb skill heals the boss
type HealingBurst struct {
	base
	cx, cy  float64
	color   color.RGBA
	speed   float64
	radius  float64
	life    float64
	maxLife float64
}

// NewHealingBurst expands from (w/2, h/3) at speed px/ms for lifeMs
func NewHealingBurst(w, h int, c color.RGBA, speed, lifeMs float64) *HealingBurst {
	return &HealingBurst{
		cx: float64(w) / 2, cy: float64(h) / 3, color: c,
		speed:   speed,
		radius:  10,
		maxLife: lifeMs,
	}
}

func (b *HealingBurst) Kind() Kind { return KindHealingBurst }

func (b *HealingBurst) Update(dtMs float64) {
	b.life += dtMs
	b.radius += dtMs * b.speed
	if b.life > b.maxLife {
		b.dead = true
	}
}

func (b *HealingBurst) Center() (float64, float64) { return b.cx, b.cy }
func (b *HealingBurst) Radius() float64 { return b.radius }
func (b *HealingBurst) Color() color.RGBA { return b.color }
func (b *HealingBurst) Alpha() float64 { return clamp01(1 - b.life/b.maxLife) }

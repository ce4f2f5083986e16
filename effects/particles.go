package effects

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Particle is one spark of a firework
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   color.RGBA
}

// Alpha is the particle's remaining opacity in [0,1]
func (p *Particle) Alpha() float64 {
	return clamp01(1 - p.Life/p.MaxLife)
}

const fireworkGravity = 40.0 // px/s^2

// Firework is a radial burst of short-lived particles pulled down by gravity
type Firework struct {
	base
	particles []Particle
}

// NewFirework bursts 65..89 particles (scaled by density) from (cx, cy)
func NewFirework(rng *rand.Rand, cx, cy float64, c color.RGBA, density float64) *Firework {
	count := int(float64(65+rng.IntN(25)) * density)
	if count < 1 {
		count = 1
	}
	f := &Firework{particles: make([]Particle, 0, count)}
	for i := 0; i < count; i++ {
		ang := rng.Float64() * math.Pi * 2
		sp := 60 + rng.Float64()*180
		f.particles = append(f.particles, Particle{
			X:       cx,
			Y:       cy,
			VX:      math.Cos(ang) * sp,
			VY:      math.Sin(ang) * sp,
			MaxLife: float64(600 + rng.IntN(500)),
			Size:    3 + rng.Float64()*5,
			Color: color.RGBA{
				R: jitter(rng, c.R),
				G: jitter(rng, c.G),
				B: jitter(rng, c.B),
				A: 255,
			},
		})
	}
	return f
}

func jitter(rng *rand.Rand, v uint8) uint8 {
	return uint8(min(255, int(v)+rng.IntN(80)))
}

func (f *Firework) Kind() Kind { return KindFirework }

func (f *Firework) Update(dtMs float64) {
	if len(f.particles) == 0 {
		f.dead = true
		return
	}
	dts := dtMs / 1000
	live := f.particles[:0]
	for _, p := range f.particles {
		p.Life += dtMs
		p.X += p.VX * dts
		p.Y += p.VY * dts
		p.VY += fireworkGravity * dts
		if p.Life <= p.MaxLife {
			live = append(live, p)
		}
	}
	f.particles = live
	if len(f.particles) == 0 {
		f.dead = true
	}
}

// Particles returns the live particles. Callers must not modify them.
func (f *Firework) Particles() []Particle {
	return f.particles
}

const (
	superFireworkMs     = 1600.0
	superFireworkChance = 0.18
)

// SuperFirework keeps adding bursts for 1.6s and dies once the last one fades
type SuperFirework struct {
	base
	rng     *rand.Rand
	bursts  []*Firework
	elapsed float64
	w, h    int
	color   color.RGBA
	density float64
}

// NewSuperFirework starts three bursts spread over the upper part of a w x h area
func NewSuperFirework(rng *rand.Rand, w, h int, c color.RGBA, density float64) *SuperFirework {
	s := &SuperFirework{rng: rng, w: max(w, 1), h: max(h, 2), color: c, density: density}
	for i := 0; i < 3; i++ {
		s.addBurst()
	}
	return s
}

func (s *SuperFirework) addBurst() {
	x := float64(s.rng.IntN(s.w))
	y := float64(s.rng.IntN(max(s.h/2, 1)) + s.h/8)
	s.bursts = append(s.bursts, NewFirework(s.rng, x, y, s.color, s.density))
}

func (s *SuperFirework) Kind() Kind { return KindSuperFirework }

func (s *SuperFirework) Update(dtMs float64) {
	s.elapsed += dtMs
	if s.elapsed < superFireworkMs && s.rng.Float64() < superFireworkChance*s.density {
		s.addBurst()
	}
	live := s.bursts[:0]
	for _, b := range s.bursts {
		b.Update(dtMs)
		if b.Alive() {
			live = append(live, b)
		}
	}
	s.bursts = live
	if s.elapsed >= superFireworkMs && len(s.bursts) == 0 {
		s.dead = true
	}
}

// Bursts returns the live bursts
func (s *SuperFirework) Bursts() []*Firework {
	return s.bursts
}

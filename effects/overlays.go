package effects

import (
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// UltimateOverlay tints the whole screen, fading in then out over its lifetime
type UltimateOverlay struct {
	base
	color   color.RGBA
	life    float64
	maxLife float64
	alpha   float64
	fade    *gween.Sequence
}

// NewUltimateOverlay lasts durationMs with its alpha peaking half way through
func NewUltimateOverlay(c color.RGBA, durationMs float64) *UltimateOverlay {
	half := float32(durationMs / 2)
	fade := gween.NewSequence()
	fade.Add(
		gween.New(0, 255, half, ease.Linear),
		gween.New(255, 0, half, ease.Linear),
	)
	return &UltimateOverlay{color: c, maxLife: durationMs, fade: fade}
}

func (u *UltimateOverlay) Kind() Kind { return KindUltimateOverlay }

func (u *UltimateOverlay) Update(dtMs float64) {
	u.life += dtMs
	a, _, _ := u.fade.Update(float32(dtMs))
	u.alpha = math.Min(200, float64(a))
	if u.life > u.maxLife {
		u.dead = true
	}
}

func (u *UltimateOverlay) Color() color.RGBA { return u.color }

// Alpha is the overlay opacity in 0..200
func (u *UltimateOverlay) Alpha() float64 { return u.alpha }

const hackOverlayMs = 5000.0

// HackOverlay draws scanlines and a grid while the ultimate is running
type HackOverlay struct {
	base
	life float64
}

func NewHackOverlay() *HackOverlay {
	return &HackOverlay{}
}

func (h *HackOverlay) Kind() Kind { return KindHackOverlay }

func (h *HackOverlay) Update(dtMs float64) {
	h.life += dtMs
	if h.life > hackOverlayMs {
		h.dead = true
	}
}

// Life is the elapsed time in ms, used to scroll the scanlines
func (h *HackOverlay) Life() float64 { return h.life }

// Progress is elapsed/5000 clamped to [0,1]
func (h *HackOverlay) Progress() float64 { return clamp01(h.life / hackOverlayMs) }

// CircleTelegraph is a shrinking ring naming the key the player must press
type CircleTelegraph struct {
	base
	cx, cy  float64
	startR  float64
	radius  float64
	life    float64
	maxLife float64
	label   string
	shrink  *gween.Tween
}

func NewCircleTelegraph(cx, cy, startR, durationMs float64, label string) *CircleTelegraph {
	return &CircleTelegraph{
		cx: cx, cy: cy,
		startR:  startR,
		radius:  startR,
		maxLife: durationMs,
		label:   label,
		shrink:  gween.New(float32(startR), 0, float32(durationMs), ease.Linear),
	}
}

func (c *CircleTelegraph) Kind() Kind { return KindCircleTelegraph }

func (c *CircleTelegraph) Update(dtMs float64) {
	c.life += dtMs
	r, _ := c.shrink.Update(float32(dtMs))
	c.radius = float64(r)
	if c.life > c.maxLife {
		c.dead = true
	}
}

func (c *CircleTelegraph) Center() (float64, float64) { return c.cx, c.cy }
func (c *CircleTelegraph) Radius() float64 { return c.radius }
func (c *CircleTelegraph) Label() string { return c.label }

// EdgeThreat closes red bars in from the screen edges
type EdgeThreat struct {
	base
	life     float64
	duration float64
	label    string
}

func NewEdgeThreat(durationMs float64, label string) *EdgeThreat {
	return &EdgeThreat{duration: durationMs, label: label}
}

func (e *EdgeThreat) Kind() Kind { return KindEdgeThreat }

func (e *EdgeThreat) Update(dtMs float64) {
	e.life += dtMs
	if e.life > e.duration {
		e.dead = true
	}
}

// Progress is elapsed/duration clamped to [0,1]
func (e *EdgeThreat) Progress() float64 { return clamp01(e.life / e.duration) }
func (e *EdgeThreat) Label() string { return e.label }

// BlurTelegraph is a soft glowing disc warning that a boss skill is coming
type BlurTelegraph struct {
	base
	cx, cy  float64
	radius  float64
	color   color.RGBA
	pulse   bool
	life    float64
	maxLife float64
}

func NewBlurTelegraph(cx, cy, radius, durationMs float64, c color.RGBA, pulse bool) *BlurTelegraph {
	return &BlurTelegraph{cx: cx, cy: cy, radius: radius, color: c, pulse: pulse, maxLife: durationMs}
}

func (b *BlurTelegraph) Kind() Kind { return KindBlurTelegraph }

func (b *BlurTelegraph) Update(dtMs float64) {
	b.life += dtMs
	if b.life > b.maxLife {
		b.dead = true
	}
}

func (b *BlurTelegraph) Center() (float64, float64) { return b.cx, b.cy }
func (b *BlurTelegraph) Color() color.RGBA { return b.color }

// Radius breathes around its base size when pulsing
func (b *BlurTelegraph) Radius() float64 {
	if !b.pulse {
		return b.radius
	}
	return b.radius * (0.9 + 0.1*math.Sin(b.life/120))
}

// Alpha fades linearly over the telegraph's lifetime
func (b *BlurTelegraph) Alpha() float64 { return clamp01(1 - b.life/b.maxLife) }

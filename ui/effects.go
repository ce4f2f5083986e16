package ui

import (
	"image/color"
	"math"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/effects"
	"github.com/automoto/codesymphony/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	shockwaveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	threatColor    = color.RGBA{R: 255, G: 40, B: 40, A: 255}
	hackColor      = color.RGBA{R: 60, G: 255, B: 120, A: 255}
)

// drawEffects draws every live effect in insertion order. Under LOW quality
// every other particle is skipped when RenderSkipLow is set.
func drawEffects(screen *ebiten.Image, reg *effects.Registry, level cfg.QualityLevel) {
	particleStep := 1
	if level == cfg.QualityLow && cfg.Debug.RenderSkipLow {
		particleStep = 2
	}
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	reg.Each(func(fx effects.Effect) {
		switch e := fx.(type) {
		case *effects.Firework:
			drawParticles(screen, e.Particles(), particleStep)
		case *effects.SuperFirework:
			for _, b := range e.Bursts() {
				drawParticles(screen, b.Particles(), particleStep)
			}
		case *effects.Ripple:
			cx, cy := e.Center()
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(e.Radius()), float32(e.Thickness()), withAlpha(e.Color(), e.Alpha()), true)
		case *effects.FullScreenRipple:
			cx, cy := e.Center()
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(e.Radius()), 6, withAlpha(e.Color(), e.Alpha()), true)
		case *effects.Shockwave:
			cx, cy := e.Center()
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(e.Radius()), float32(e.Thickness()), withAlpha(shockwaveColor, e.Alpha()), true)
		case *effects.CorePulse:
			cx, cy := e.Center()
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(e.Radius()), withAlpha(e.Color(), e.Alpha()*0.35), true)
		case *effects.HealingBurst:
			cx, cy := e.Center()
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(e.Radius()), 4, withAlpha(e.Color(), e.Alpha()), true)
		case *effects.UltimateOverlay:
			vector.DrawFilledRect(screen, 0, 0, w, h, withAlpha(e.Color(), e.Alpha()*0.3), false)
		case *effects.HackOverlay:
			drawHackOverlay(screen, e, w, h)
		case *effects.CircleTelegraph:
			cx, cy := e.Center()
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(e.Radius()), 3, cfg.HUD.CounterColor, true)
			drawCentered(screen, e.Label(), fonts.Bold.Get(), cx, cy+float64(e.Radius())+28, cfg.HUD.CounterColor)
		case *effects.EdgeThreat:
			drawEdgeThreat(screen, e, w, h)
		case *effects.BlurTelegraph:
			cx, cy := e.Center()
			// three stacked discs fake the blur
			for i := 3; i >= 1; i-- {
				r := e.Radius() * (1 + 0.15*float64(i))
				vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), withAlpha(e.Color(), e.Alpha()*0.12), true)
			}
		}
	})
}

func drawParticles(screen *ebiten.Image, ps []effects.Particle, step int) {
	for i := 0; i < len(ps); i += step {
		p := &ps[i]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), withAlpha(p.Color, p.Alpha()), false)
	}
}

// drawHackOverlay scrolls scanlines down the screen while the ultimate runs
func drawHackOverlay(screen *ebiten.Image, e *effects.HackOverlay, w, h float32) {
	fade := 1 - e.Progress()
	c := withAlpha(hackColor, 0.25*fade)
	offset := float32(math.Mod(e.Life()*0.2, 8))
	for y := offset; y < h; y += 8 {
		vector.DrawFilledRect(screen, 0, y, w, 1, c, false)
	}
	for x := float32(0); x < w; x += 60 {
		vector.DrawFilledRect(screen, x, 0, 1, h, withAlpha(hackColor, 0.1*fade), false)
	}
}

// drawEdgeThreat closes red bars in from the four edges
func drawEdgeThreat(screen *ebiten.Image, e *effects.EdgeThreat, w, h float32) {
	p := float32(e.Progress())
	size := 60 * p
	c := withAlpha(threatColor, 0.6*(1-float64(p)))
	vector.DrawFilledRect(screen, 0, 0, w, size, c, false)
	vector.DrawFilledRect(screen, 0, h-size, w, size, c, false)
	vector.DrawFilledRect(screen, 0, 0, size, h, c, false)
	vector.DrawFilledRect(screen, w-size, 0, size, h, c, false)
	if label := e.Label(); label != "" {
		drawCentered(screen, label, fonts.Bold.Get(), float64(w)/2, float64(h)/2+180, c)
	}
}

package ui

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/codesymphony/assets"
	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/fonts"
	"github.com/automoto/codesymphony/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	canvas     *ebiten.Image
	canvasOp   = &ebiten.DrawImageOptions{}
	shaderOp   = &ebiten.DrawRectShaderOptions{}
	hitFlash   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	darkScreen = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// NewDrawBattle renders the arena, boss, projectiles and effects onto an
// offscreen canvas, then copies it to the screen offset by the current shake
func NewDrawBattle(sim *systems.Context) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		w, h := cfg.C.Width, cfg.C.Height
		if canvas == nil {
			canvas = ebiten.NewImage(w, h)
		}
		canvas.Fill(cfg.HUD.BackgroundColor)

		fx := sim.ScreenFX()
		drawGrid(canvas, fx.BassPulse)
		drawBoss(canvas, sim)
		drawProjectiles(canvas, sim)
		drawEffects(canvas, sim.Effects(), sim.Quality().Level)

		var dx, dy float64
		if fx.Shake > 0 {
			amp := fx.Shake * cfg.ScreenFX.ShakePixels
			dx, dy = (rand.Float64()*2-1)*amp, (rand.Float64()*2-1)*amp
		}
		if u := sim.Ultimate(); u.Active && assets.GlitchShader != nil {
			drawGlitched(screen, float64(u.EndMs-sim.Now()), dx, dy)
		} else {
			canvasOp.GeoM.Reset()
			canvasOp.GeoM.Translate(dx, dy)
			screen.DrawImage(canvas, canvasOp)
		}

		if fx.DarkAlpha > 0 {
			vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), withAlpha(darkScreen, fx.DarkAlpha), false)
		}
	}
}

// drawGlitched copies the canvas through the glitch shader. The split
// eases off as the overlay runs out.
func drawGlitched(screen *ebiten.Image, remainMs, dx, dy float64) {
	amount := min(1, max(0, remainMs/float64(cfg.Ultimate.OverlayMs)))
	shaderOp.GeoM.Reset()
	shaderOp.GeoM.Translate(dx, dy)
	shaderOp.Images[0] = canvas
	shaderOp.Uniforms = map[string]any{
		"Amount": float32(amount),
		"Time":   float32(remainMs),
	}
	b := canvas.Bounds()
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.GlitchShader, shaderOp)
}

// drawGrid draws the backdrop grid, brightened by the bass pulse
func drawGrid(dst *ebiten.Image, pulse float64) {
	w := float32(dst.Bounds().Dx())
	h := float32(dst.Bounds().Dy())
	c := cfg.HUD.GridColor
	boost := uint8(min(255-float64(c.B), 120*pulse))
	c.B += boost
	c.G += boost / 2
	step := float32(cfg.HUD.GridSpacing)
	for x := float32(0); x < w; x += step {
		vector.DrawFilledRect(dst, x, 0, 1, h, c, false)
	}
	for y := float32(0); y < h; y += step {
		vector.DrawFilledRect(dst, 0, y, w, 1, c, false)
	}
}

// drawBoss draws the boss body with its glyph rows, glow pulse and hit flash
func drawBoss(dst *ebiten.Image, sim *systems.Context) {
	b := sim.Boss()
	bc := b.Config()
	anim := cfg.BossAnimations[bc.Kind]
	cx, cy := sim.Arena.BossCenter()
	cy += math.Sin(b.AnimMs/cfg.BossAnim.BobPeriod*2*math.Pi) * cfg.BossAnim.BobPixels

	bw, bh := float64(anim.BodyWidth), float64(anim.BodyHeight)
	x, y := cx-bw/2, cy-bh/2

	glow := 0.5 + 0.5*math.Sin(b.AnimMs/anim.PulseMs*2*math.Pi)
	vector.DrawFilledRect(dst, float32(x-8), float32(y-8), float32(bw+16), float32(bh+16), withAlpha(bc.GlowColor, 0.25+0.25*glow), false)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(bw), float32(bh), bc.BodyColor, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(bw), float32(bh), 2, bc.GlowColor, false)

	face := fonts.Mono.Get()
	lineH := 18.0
	rows := int(bh/lineH) - 1
	scroll := 0
	if anim.ScrollMs > 0 {
		scroll = int(b.AnimMs / anim.ScrollMs)
	}
	for i := 0; i < rows && len(anim.Lines) > 0; i++ {
		line := anim.Lines[(i+scroll)%len(anim.Lines)]
		drawText(dst, line, face, x+12, y+lineH*float64(i+1), bc.GlowColor)
	}

	if b.HitFlashMs > 0 {
		a := b.HitFlashMs / cfg.BossAnim.HitFlashMs
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(bw), float32(bh), withAlpha(hitFlash, 0.5*a), false)
	}

	if s := sim.Skill(); s.Active() {
		drawCentered(dst, s.Kind.String(), fonts.Bold.Get(), cx, y-20, bc.TelegraphColor)
	}
}

// drawProjectiles draws every note in flight with its fading trail
func drawProjectiles(dst *ebiten.Image, sim *systems.Context) {
	size := float32(cfg.HUD.ProjectileSize)
	sim.EachProjectile(func(p *components.ProjectileData) {
		n := len(p.Trail)
		for i, pt := range p.Trail {
			a := 1 - float64(i+1)/float64(n+1)
			vector.DrawFilledCircle(dst, float32(pt.X), float32(pt.Y), size*float32(a), withAlpha(p.Color, a*0.6), false)
		}
		vector.DrawFilledCircle(dst, float32(p.Position.X), float32(p.Position.Y), size, p.Color, true)
	})
}

package ui

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/fonts"
	"github.com/automoto/codesymphony/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawHUD renders the boss bar, combo, skill charge, tempo and instrument keys
func NewDrawHUD(sim *systems.Context) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())
		m := cfg.HUD.Margin
		regular := fonts.Regular.Get()
		bold := fonts.Bold.Get()

		// Boss health
		hp := sim.BossHealth()
		barX := (width - cfg.HUD.BossBarWidth) / 2
		drawBar(screen, barX, m+22, cfg.HUD.BossBarWidth, hp.Ratio(), cfg.HUD.HealthColor)
		pr := sim.Progress()
		title := fmt.Sprintf("%s  %d/%d", sim.Boss().Name, pr.CurrentBoss+1, sim.BossCount())
		drawCentered(screen, title, bold, width/2, m+16, cfg.HUD.TextColor)
		drawCentered(screen, fmt.Sprintf("%d / %d   phase %d", hp.Current, hp.Max, sim.Phase().Phase), fonts.Small.Get(), width/2, m+52, cfg.HUD.TextColor)

		// Score and combo
		drawText(screen, fmt.Sprintf("SCORE %d", pr.TotalScore), regular, m, m+16, cfg.HUD.TextColor)
		combo := sim.Combo()
		if combo.Count > 0 {
			c := cfg.HUD.TextColor
			if combo.BoostActive {
				c = cfg.HUD.ChargeReady
			}
			drawText(screen, fmt.Sprintf("COMBO %d  x%.2f", combo.Count, combo.Multiplier), bold, m, m+44, c)
		}

		// Skill charge
		chargeY := height - m - 60
		ratio := combo.SkillCharge / cfg.Combo.SkillThreshold
		chargeColor := cfg.HUD.ChargeColor
		label := fmt.Sprintf("SKILL %d%%", int(ratio*100))
		if combo.SkillReady {
			chargeColor = cfg.HUD.ChargeReady
			label = "Q  ULTIMATE READY"
		}
		drawText(screen, label, regular, m, chargeY-6, chargeColor)
		drawBar(screen, m, chargeY, cfg.HUD.ChargeBarWidth, ratio, chargeColor)

		// Tempo and beat
		beatX := width - m - cfg.HUD.BeatBarWidth
		drawRight(screen, fmt.Sprintf("BPM %d  VOL %d%%", sim.Audio.Bpm(), sim.AudioSettings().Volume), regular, width-m, chargeY-6, cfg.HUD.TextColor)
		drawBar(screen, beatX, chargeY, cfg.HUD.BeatBarWidth, sim.Audio.ProgressToNextBeat(), cfg.HUD.BeatColor)

		drawInstrumentKeys(screen, sim, width, height)

		// Penalty slow
		if fx := sim.ScreenFX(); fx.SlowFactor < 1 {
			drawCentered(screen, fmt.Sprintf("SLOWED x%.1f", fx.SlowFactor), bold, width/2, height/2+140, cfg.HUD.WarningColor)
		}
		if p := sim.Phase(); p.CounterActive && !p.CounterResolved {
			remain := float64(p.CounterEndMs-sim.Now()) / 1000
			drawCentered(screen, fmt.Sprintf("COUNTER! press %s  %.1fs", cfg.Counter.TelegraphKey, max(0, remain)), bold, width/2, height/2+110, cfg.HUD.CounterColor)
		}
	}
}

// drawInstrumentKeys draws one key cap per instrument along the bottom edge
func drawInstrumentKeys(screen *ebiten.Image, sim *systems.Context, width, height float64) {
	const capW, capH, gap = 120.0, 30.0, 12.0
	n := float64(len(cfg.Instruments))
	x := (width - n*capW - (n-1)*gap) / 2
	y := height - cfg.HUD.Margin - capH
	last := sim.Combo().LastInstrument
	for i, inst := range cfg.Instruments {
		c := cfg.InstrumentColor(i)
		alpha := 0.35
		if i == last {
			alpha = 0.35 + 0.5*sim.ScreenFX().BassPulse
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), capW, capH, withAlpha(c, alpha), false)
		vector.StrokeRect(screen, float32(x), float32(y), capW, capH, 1, c, false)
		drawCentered(screen, inst.Key+"  "+inst.Name, fonts.Small.Get(), x+capW/2, y+capH/2+4, cfg.HUD.TextColor)
		x += capW + gap
	}
}

func drawBar(screen *ebiten.Image, x, y, w, ratio float64, c color.Color) {
	ratio = min(1, max(0, ratio))
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(cfg.HUD.BarHeight), cfg.HUD.BarBackground, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*ratio), float32(cfg.HUD.BarHeight), c, false)
}

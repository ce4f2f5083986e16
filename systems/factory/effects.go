package factory

import (
	"image/color"
	"math/rand/v2"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/effects"
)

// Arena is the logical drawing area effects are placed in
type Arena struct {
	W, H int
}

// BossCenter is where the boss sits and most effects are anchored
func (a Arena) BossCenter() (float64, float64) {
	return float64(a.W) / 2, float64(a.H) / 3
}

// SpawnInstrumentEffect adds the instrument's own ripple or firework at the boss
func SpawnInstrumentEffect(reg *effects.Registry, rng *rand.Rand, a Arena, id int, density float64) {
	inst := cfg.Instruments[id]
	cx, cy := a.BossCenter()
	c := cfg.InstrumentColor(id)
	if inst.Effect == cfg.EffectFirework {
		reg.Add(effects.NewFirework(rng, cx, cy, c, density))
		return
	}
	reg.Add(effects.NewRipple(cx, cy, c))
}

// SpawnCounterTelegraph adds the phase-change shockwave and the ring naming the
// counter key. The ring is returned so the window can kill it on resolve.
func SpawnCounterTelegraph(reg *effects.Registry, a Arena) *effects.CircleTelegraph {
	reg.Add(effects.NewShockwave(a.W, a.H))
	cx, cy := a.BossCenter()
	t := effects.NewCircleTelegraph(cx, cy, cfg.Counter.TelegraphRadius, float64(cfg.Counter.WindowMs), cfg.Counter.TelegraphKey)
	reg.Add(t)
	return t
}

// SpawnSkillTelegraph adds the glow announcing a boss skill, plus the core pulse for CORE_PULSE
func SpawnSkillTelegraph(reg *effects.Registry, a Arena, bc cfg.BossConfig) {
	if bc.Skill == cfg.SkillCorePulse {
		reg.Add(effects.NewCorePulse(a.W, a.H, cfg.BossSkill.CorePulseColor))
	}
	cx, cy := a.BossCenter()
	reg.Add(effects.NewBlurTelegraph(cx, cy, cfg.BossSkill.TelegraphRadius, float64(bc.TelegraphMs), Brighter(bc.TelegraphColor), true))
}

// SpawnHealingBursts adds the rings shown when an absorb window heals the boss
func SpawnHealingBursts(reg *effects.Registry, a Arena) {
	for _, hb := range cfg.BossSkill.HealingBursts {
		reg.Add(effects.NewHealingBurst(a.W, a.H, hb.Color, hb.Speed, hb.LifeMs))
	}
}

// SpawnReflectFlash adds the edge flash shown when reflected damage hits the player
func SpawnReflectFlash(reg *effects.Registry) {
	reg.Add(effects.NewEdgeThreat(float64(cfg.ScreenFX.ReflectFlashMs), ""))
}

// SpawnUltimate adds the overlays and the screen-wide effect of the super skill.
// instrument picks both the colour and whether the finale is a firework or a ripple.
func SpawnUltimate(reg *effects.Registry, rng *rand.Rand, a Arena, instrument int, density float64) {
	c := cfg.InstrumentColor(instrument)
	reg.Add(effects.NewUltimateOverlay(c, float64(cfg.Ultimate.OverlayMs)))
	reg.Add(effects.NewHackOverlay())
	if cfg.Instruments[instrument].Effect == cfg.EffectFirework {
		reg.Add(effects.NewSuperFirework(rng, a.W, a.H, c, density))
		return
	}
	reg.Add(effects.NewFullScreenRipple(a.W, a.H, c))
}

// SpawnHitFirework adds the burst shown where a projectile lands
func SpawnHitFirework(reg *effects.Registry, rng *rand.Rand, a Arena, c color.RGBA, density float64) {
	reg.Add(effects.NewSuperFirework(rng, a.W, a.H/2, c, density))
}

// Brighter lightens c by roughly 40%, keeping alpha
func Brighter(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 {
		if v == 0 {
			return 3
		}
		return uint8(min(255, float64(v)/0.7))
	}
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}

package systems

import (
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/systems/factory"
)

// phaseFor maps a health ratio to a phase. Thresholds are exclusive:
// a ratio of exactly 0.7 is already phase 1.
func phaseFor(ratio float64) int {
	for i, th := range cfg.Counter.PhaseThresholds {
		if ratio > th {
			return i
		}
	}
	return len(cfg.Counter.PhaseThresholds)
}

// UpdateBossPhase opens a counter window whenever the health-derived phase
// differs from the stored one, in either direction
func UpdateBossPhase(c *Context, now int64) {
	if c.Progress().State != cfg.BattlePlaying {
		return
	}
	p := c.Phase()
	phase := phaseFor(c.BossHealth().Ratio())
	if phase == p.Phase {
		return
	}
	p.Phase = phase
	openCounter(c, now)
}

// openCounter starts a fresh window. A window that is still open is replaced.
func openCounter(c *Context, now int64) {
	p := c.Phase()
	if p.Telegraph != nil {
		p.Telegraph.Kill()
	}
	p.CounterActive = true
	p.CounterResolved = false
	p.CounterEndMs = now + cfg.Counter.WindowMs
	p.Opened++
	p.Telegraph = factory.SpawnCounterTelegraph(c.Effects(), c.Arena)
}

// UpdateCounter closes the window. An unresolved window past its deadline is
// penalized exactly once, a resolved one closes on the next tick.
func UpdateCounter(c *Context, now int64) {
	p := c.Phase()
	if !p.CounterActive {
		return
	}
	switch {
	case p.CounterResolved:
		closeCounter(c)
	case now > p.CounterEndMs:
		closeCounter(c)
		applyCounterPenalty(c, now)
	}
}

func closeCounter(c *Context) {
	p := c.Phase()
	p.CounterActive = false
	if p.Telegraph != nil {
		p.Telegraph.Kill()
		p.Telegraph = nil
	}
}

func applyCounterPenalty(c *Context, now int64) {
	cc := cfg.Counter
	c.Phase().Failed++

	resetCombo(c)
	combo := c.Combo()
	combo.SkillCharge = max(0, combo.SkillCharge-cc.PenaltyCharge)
	combo.SkillReady = combo.SkillCharge >= cfg.Combo.SkillThreshold
	addShake(c, cc.PenaltyShake)

	fx := c.ScreenFX()
	fx.SlowFactor = cc.PenaltySlowFactor
	fx.SlowEndMs = now + cc.PenaltySlowMs
	fx.DarkAlpha = cc.PenaltyDarkAlpha

	queueSound(c, cfg.SoundCounterFailed, -1)
}

// AttemptCounterResolve answers an open counter window. It reports whether
// the press resolved one.
func (c *Context) AttemptCounterResolve() bool {
	p := c.Phase()
	if !p.CounterActive || p.CounterResolved {
		return false
	}
	p.CounterResolved = true
	p.Resolved++
	if p.Telegraph != nil {
		p.Telegraph.Kill()
		p.Telegraph = nil
	}
	addCharge(c, cfg.Counter.ResolveCharge)
	addShake(c, cfg.Counter.ResolveShake)

	queueSound(c, cfg.SoundCounterResolved, -1)
	UpdateAudio(c)
	return true
}

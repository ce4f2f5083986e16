package systems

import (
	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
)

// registerHit extends or restarts the streak and recomputes the multiplier
func registerHit(c *Context, now int64) {
	combo := c.Combo()
	if combo.HasTriggered && now-combo.LastTriggerMs <= cfg.Combo.WindowMs {
		combo.Count++
	} else {
		combo.Count = 1
	}
	combo.HasTriggered = true
	combo.LastTriggerMs = now
	refreshMultiplier(c, now)
}

// refreshMultiplier derives the multiplier from the streak and the boost
// window, closing the boost once it has run out
func refreshMultiplier(c *Context, now int64) {
	combo := c.Combo()
	base := 1 + min(cfg.Combo.MaxBonus, float64(combo.Count)*cfg.Combo.StepPerHit)
	if combo.BoostActive && now >= combo.BoostEndMs {
		combo.BoostActive = false
	}
	if combo.BoostActive {
		combo.Multiplier = base * cfg.Combo.BoostFactor
		return
	}
	combo.Multiplier = base
}

// skillGain is the full charge a hit is worth at the current streak
func skillGain(combo *components.ComboData) float64 {
	return cfg.Combo.GainPerHit + float64(combo.Count)*cfg.Combo.ComboBonus
}

// addCharge changes the skill charge, clamped to [0, threshold]. The skill
// becomes ready on reaching the threshold and stays ready until spent.
func addCharge(c *Context, amount float64) {
	combo := c.Combo()
	combo.SkillCharge = min(cfg.Combo.SkillThreshold, max(0, combo.SkillCharge+amount))
	if combo.SkillCharge >= cfg.Combo.SkillThreshold {
		combo.SkillReady = true
	}
}

// resetCombo drops the streak. The multiplier goes to 1 even inside a boost window.
func resetCombo(c *Context) {
	combo := c.Combo()
	combo.Count = 0
	combo.Multiplier = 1
}

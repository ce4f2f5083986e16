package systems

import (
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/systems/factory"
)

// TriggerSuperSkill spends a full charge on the ultimate: quality is pinned
// to HIGH for the overlay, the combo boost opens and the boss takes a bonus
// hit. It reports whether the ultimate fired.
func (c *Context) TriggerSuperSkill() bool {
	combo := c.Combo()
	if !combo.SkillReady || c.Progress().State != cfg.BattlePlaying {
		return false
	}
	now := c.Now()
	uc := cfg.Ultimate

	combo.SkillReady = false
	combo.SkillCharge = 0

	q := c.Quality()
	if !q.Forced {
		q.PriorLevel = q.Level
		q.Forced = true
	}
	setQuality(c, cfg.QualityHigh)

	last := combo.LastInstrument
	if last < 0 {
		last = cfg.Combo.DefaultInstrument
	}
	factory.SpawnUltimate(c.Effects(), c.Rand, c.Arena, last, q.Density())
	queueSound(c, cfg.SoundUltimate, last)

	u := c.Ultimate()
	u.Active = true
	u.EndMs = now + uc.OverlayMs
	u.Uses++

	combo.BoostActive = true
	combo.BoostEndMs = now + uc.BoostMs
	refreshMultiplier(c, now)

	bonus := int(float64(c.BossHealth().Max)*uc.BonusHealthRate + float64(combo.Count*uc.BonusPerCombo))
	applyBossDamage(c, bonus)
	addShake(c, uc.Shake)

	c.requestSave()
	UpdateAudio(c)
	return true
}

// UpdateUltimate ends the overlay window, handing quality back to the
// controller, and closes an expired combo boost
func UpdateUltimate(c *Context, now int64) {
	u := c.Ultimate()
	if u.Active && now > u.EndMs {
		u.Active = false
		q := c.Quality()
		if q.Forced {
			q.Forced = false
			setQuality(c, q.PriorLevel)
		}
	}
	if combo := c.Combo(); combo.BoostActive && now >= combo.BoostEndMs {
		refreshMultiplier(c, now)
	}
}

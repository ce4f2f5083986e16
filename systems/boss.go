package systems

import (
	"log"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/systems/factory"
)

// UpdateBoss advances the current boss's idle animation and hit flash
func UpdateBoss(c *Context, dtMs float64) {
	b := c.Boss()
	b.AnimMs += dtMs
	if b.HitFlashMs > 0 {
		b.HitFlashMs = max(0, b.HitFlashMs-dtMs)
	}
}

// applyBossDamage routes outgoing damage through the active boss skill.
// ABSORB stores it, REFLECT turns it against the combo, otherwise the boss takes it.
func applyBossDamage(c *Context, dmg int) {
	pr := c.Progress()
	if pr.State != cfg.BattlePlaying || dmg <= 0 {
		return
	}
	health := c.BossHealth()

	s := c.Skill()
	switch s.Kind {
	case cfg.SkillAbsorb:
		s.AbsorbAccum += float64(dmg)
		s.TotalAbsorbed += float64(dmg)
		addShake(c, float64(dmg)/float64(health.Max))
		return
	case cfg.SkillReflect:
		combo := c.Combo()
		combo.Count = max(0, combo.Count-cfg.Combo.ReflectComboLoss)
		refreshMultiplier(c, c.Now())
		c.ScreenFX().DarkAlpha = cfg.BossSkill.ReflectDarkness
		factory.SpawnReflectFlash(c.Effects())
		return
	}

	health.Current = max(0, health.Current-dmg)
	pr.Score += int64(dmg)
	pr.TotalScore += int64(dmg)
	c.Boss().HitFlashMs = cfg.BossAnim.HitFlashMs

	if health.Current <= 0 {
		pr.State = cfg.BattleSwitching
		b := c.Boss()
		log.Printf("[battle] %s defeated (score %d)", b.Name, pr.Score)
		components.BossDefeated.Publish(c.World, components.BossDefeatedEvent{Index: b.Index, Name: b.Name})
	}
}

// healBoss restores health without ever exceeding the maximum
func healBoss(c *Context, amount int) int {
	h := c.BossHealth()
	before := h.Current
	h.Current = min(h.Max, h.Current+amount)
	return h.Current - before
}

package systems

import (
	"math/rand/v2"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/systems/factory"
)

// nextSkillGap picks the randomized wait before the next boss skill
func nextSkillGap(rng *rand.Rand) int64 {
	gap := cfg.BossSkill.MinGapMs
	if cfg.BossSkill.GapJitterMs > 0 {
		gap += rng.Int64N(cfg.BossSkill.GapJitterMs)
	}
	return gap
}

func scheduleNextBossSkill(c *Context, now int64) {
	c.Skill().NextTriggerMs = now + nextSkillGap(c.Rand)
}

// maybeActivateBossSkill starts the current boss's skill when it is due.
// Skills never overlap each other or an open counter window.
func maybeActivateBossSkill(c *Context, now int64) bool {
	s := c.Skill()
	if now < s.NextTriggerMs || s.Active() || c.Phase().CounterActive {
		return false
	}
	if c.Progress().State != cfg.BattlePlaying {
		return false
	}
	bc := c.Boss().Config()
	if bc.Skill == cfg.SkillNone {
		return false
	}

	s.Kind = bc.Skill
	s.EndMs = now + bc.SkillDurationMs
	s.AbsorbAccum = 0
	s.Activations++
	factory.SpawnSkillTelegraph(c.Effects(), c.Arena, bc)
	return true
}

// UpdateBossSkill ends an expired skill, healing from anything absorbed, and
// re-arms the scheduler
func UpdateBossSkill(c *Context, now int64) {
	s := c.Skill()
	if s.Active() && now > s.EndMs {
		if s.Kind == cfg.SkillAbsorb && s.AbsorbAccum > 0 {
			h := c.BossHealth()
			heal := int(min(float64(h.Max)*cfg.BossSkill.HealCapRatio, s.AbsorbAccum*cfg.BossSkill.HealAccumRatio))
			s.TotalHealed += healBoss(c, heal)
			factory.SpawnHealingBursts(c.Effects(), c.Arena)
		}
		s.Kind = cfg.SkillNone
		s.AbsorbAccum = 0
		scheduleNextBossSkill(c, now)
		c.requestSave()
	}
	maybeActivateBossSkill(c, now)
}

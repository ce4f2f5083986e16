package systems

import (
	"log"

	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/yohamta/donburi"
)

// onBossDefeated moves the gauntlet on to the next boss, or to victory after the last
func (c *Context) onBossDefeated(w donburi.World, ev components.BossDefeatedEvent) {
	pr := c.Progress()
	if pr.State != cfg.BattleSwitching {
		return
	}
	now := c.Now()
	pr.Defeated++
	queueSound(c, cfg.SoundBossDefeated, -1)

	next := ev.Index + 1
	if next >= len(c.bosses) {
		pr.State = cfg.BattleVictory
		c.resetEncounter(now)
		log.Printf("[battle] all bosses defeated, total score %d", pr.TotalScore)
		c.requestSave()
		return
	}

	pr.CurrentBoss = next
	pr.Score = 0
	c.resetEncounter(now)
	pr.State = cfg.BattlePlaying
	log.Printf("[battle] next boss: %s", c.Boss().Name)
	c.requestSave()
}

// resetEncounter clears everything tied to the boss that was just left.
// The phase is synced to the new boss without opening a counter window.
func (c *Context) resetEncounter(now int64) {
	combo := c.Combo()
	*combo = components.ComboData{Multiplier: 1, LastInstrument: combo.LastInstrument}

	u := c.Ultimate()
	u.Active = false
	q := c.Quality()
	if q.Forced {
		q.Forced = false
		setQuality(c, q.PriorLevel)
	}

	s := c.Skill()
	s.Kind = cfg.SkillNone
	s.AbsorbAccum = 0
	scheduleNextBossSkill(c, now)

	closeCounter(c)
	p := c.Phase()
	p.CounterResolved = false
	p.Phase = phaseFor(c.BossHealth().Ratio())

	fx := c.ScreenFX()
	*fx = components.ScreenFXData{SlowFactor: 1}
}

// Restart refills every boss and starts the gauntlet over
func (c *Context) Restart() {
	now := c.Now()
	for i := range c.bosses {
		h := c.BossHealthAt(i)
		h.Current = h.Max
	}
	pr := c.Progress()
	pr.CurrentBoss = 0
	pr.Score = 0
	pr.TotalScore = 0
	pr.Defeated = 0

	var stale []donburi.Entity
	projectileQuery.Each(c.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, id := range stale {
		c.World.Remove(id)
	}
	c.Effects().Clear()

	c.resetEncounter(now)
	c.Combo().LastInstrument = -1
	pr.State = cfg.BattlePlaying
	log.Printf("[battle] restart")
	c.requestSave()
}

package systems

import "github.com/automoto/codesymphony/components"

// Advance runs one tick of dtMs milliseconds and treats the tick length as
// the frame cost. Used where every tick is one frame, like the headless server.
func (c *Context) Advance(dtMs float64) {
	c.AdvanceFrame(dtMs, dtMs)
}

// AdvanceFrame runs one tick of dtMs milliseconds of battle time while
// feeding frameMs to the quality controller. The order is fixed: frame cost,
// effects, projectiles, boss, phase, counter timeout, boss skill, then the
// screen-wide decays and end-of-tick events.
func (c *Context) AdvanceFrame(dtMs, frameMs float64) {
	dtMs = max(dtMs, 0)
	if frameMs <= 0 {
		frameMs = dtMs
	}
	now := c.Now()

	UpdateQuality(c, max(frameMs, 1), now)
	UpdateEffects(c, dtMs)
	UpdateProjectiles(c, dtMs)
	UpdateBoss(c, dtMs)
	UpdateBossPhase(c, now)
	UpdateCounter(c, now)
	UpdateBossSkill(c, now)
	UpdateScreenFX(c, now)
	UpdateUltimate(c, now)

	components.BossDefeated.ProcessEvents(c.World)
	UpdateAudio(c)
}

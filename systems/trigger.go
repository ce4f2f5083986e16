package systems

import (
	"math"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/systems/factory"
)

// TriggerInstrument plays instrument id against the boss. It never blocks:
// sound and saving are handed to their workers. Unknown ids and presses
// while no boss is being fought are ignored.
func (c *Context) TriggerInstrument(id int) bool {
	if id < 0 || id >= len(cfg.Instruments) {
		return false
	}
	if c.Progress().State != cfg.BattlePlaying {
		return false
	}
	now := c.Now()
	inst := cfg.Instruments[id]

	expireSlow(c, now)
	queueSound(c, cfg.SoundHitNote, id)
	maybeActivateBossSkill(c, now)
	registerHit(c, now)
	queueSound(c, cfg.SoundPattern, id)

	combo := c.Combo()
	dmg := int(math.Round(float64(inst.Damage) * combo.Multiplier * c.ScreenFX().SlowFactor))
	factory.SpawnInstrumentEffect(c.Effects(), c.Rand, c.Arena, id, c.Quality().Density())

	// Under LOW every other trigger skips the projectile and lands at once
	direct := false
	if c.Quality().Level == cfg.QualityLow {
		direct = combo.LowSkipCounter%cfg.Combo.LowSkipEvery == 1
		combo.LowSkipCounter++
	}
	if direct {
		applyBossDamage(c, dmg)
	} else {
		spawnProjectile(c, id, dmg)
	}
	addCharge(c, skillGain(combo)*cfg.Combo.PreAppliedShare)

	combo.LastInstrument = id
	c.ScreenFX().BassPulse = 1
	c.requestSave()
	UpdateAudio(c)
	return true
}

// ChangeBpm shifts the tempo by delta within [MinBPM, BPMMax] and returns the new tempo
func (c *Context) ChangeBpm(delta int) int {
	bpm := clampInt(c.Audio.Bpm()+delta, cfg.Audio.MinBPM, c.AudioSettings().BPMMax)
	c.Audio.SetBpm(bpm)
	c.requestSave()
	return bpm
}

// SetVolume changes the master volume percent
func (c *Context) SetVolume(percent int) {
	percent = clampInt(percent, 0, 100)
	c.AudioSettings().Volume = percent
	c.Audio.SetVolume(percent)
	c.requestSave()
}

// SetBPMMax changes the tempo ceiling, pulling the current tempo down to it if needed
func (c *Context) SetBPMMax(bpmMax int) {
	bpmMax = clampInt(bpmMax, cfg.Audio.BPMMaxFloor, cfg.Audio.BPMMaxCeil)
	c.AudioSettings().BPMMax = bpmMax
	if c.Audio.Bpm() > bpmMax {
		c.Audio.SetBpm(bpmMax)
	}
	c.requestSave()
}

func clampInt(v, lo, hi int) int {
	return min(hi, max(lo, v))
}

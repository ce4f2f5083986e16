package systems

import (
	"math"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/automoto/codesymphony/persistence"
)

// Snapshot captures everything the save file restores
func (c *Context) Snapshot() persistence.Snapshot {
	now := c.Now()
	combo := c.Combo()
	pr := c.Progress()

	var remain int64
	if combo.BoostActive {
		remain = max(0, combo.BoostEndMs-now)
	}
	healths := make([]float64, len(c.bosses))
	for i := range c.bosses {
		healths[i] = float64(c.BossHealthAt(i).Current)
	}

	return persistence.Snapshot{
		CurrentBossIndex:      pr.CurrentBoss,
		TotalScore:            pr.TotalScore,
		BPM:                   c.Audio.Bpm(),
		SkillCharge:           combo.SkillCharge,
		ComboCount:            combo.Count,
		UltimateComboRemainMs: remain,
		BossHealths:           healths,
		Volume:                c.Audio.Volume(),
		BPMMax:                c.AudioSettings().BPMMax,
	}
}

func (c *Context) requestSave() {
	if c.Saver == nil {
		return
	}
	c.Saver.Request(c.Snapshot())
	c.saveRequests++
}

// ApplySnapshot restores a saved session. Out-of-range values are clamped,
// an unknown boss index starts the gauntlet over and missing or invalid boss
// healths fall back to full health.
func (c *Context) ApplySnapshot(s *persistence.Snapshot) {
	if s == nil {
		return
	}
	now := c.Now()
	settings := c.AudioSettings()

	settings.BPMMax = cfg.Audio.DefaultBPMMax
	if s.BPMMax != 0 {
		settings.BPMMax = clampInt(s.BPMMax, cfg.Audio.BPMMaxFloor, cfg.Audio.BPMMaxCeil)
	}

	for i := range c.bosses {
		h := c.BossHealthAt(i)
		h.Current = h.Max
		if i < len(s.BossHealths) && validHealth(s.BossHealths[i]) {
			h.Current = int(min(s.BossHealths[i], float64(h.Max)))
		}
	}

	pr := c.Progress()
	pr.CurrentBoss = s.CurrentBossIndex
	if pr.CurrentBoss < 0 || pr.CurrentBoss >= len(c.bosses) {
		pr.CurrentBoss = 0
	}
	pr.TotalScore = max(0, s.TotalScore)
	pr.Score = 0
	pr.State = cfg.BattlePlaying

	bpm := cfg.Audio.DefaultBPM
	if s.BPM > 0 {
		bpm = s.BPM
	}
	c.Audio.SetBpm(clampInt(bpm, cfg.Audio.MinBPM, settings.BPMMax))

	settings.Volume = clampInt(s.Volume, 0, 100)
	c.Audio.SetVolume(settings.Volume)

	combo := c.Combo()
	combo.SkillCharge = 0
	combo.SkillReady = false
	addCharge(c, s.SkillCharge)
	combo.Count = max(0, s.ComboCount)
	combo.BoostActive = s.UltimateComboRemainMs > 0
	combo.BoostEndMs = now + s.UltimateComboRemainMs
	refreshMultiplier(c, now)

	c.Phase().Phase = phaseFor(c.BossHealth().Ratio())
}

func validHealth(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

package systems

import (
	"log"

	cfg "github.com/automoto/codesymphony/config"
)

// UpdateQuality folds the measured frame cost into the moving average and
// re-evaluates the quality level at most once per adjust interval
func UpdateQuality(c *Context, dtMs float64, now int64) {
	q := c.Quality()
	q.Ticks++
	q.AvgFrameMs += (dtMs - q.AvgFrameMs) * cfg.Quality.Smoothing

	if q.Forced && c.Ultimate().Active {
		return
	}
	if now-q.LastAdjustMs < cfg.Quality.AdjustEveryMs {
		return
	}
	q.LastAdjustMs = now

	switch {
	case q.AvgFrameMs > cfg.Quality.LowAboveMs && q.Level != cfg.QualityLow:
		setQuality(c, cfg.QualityLow)
	case q.AvgFrameMs > cfg.Quality.MedAboveMs && q.AvgFrameMs <= cfg.Quality.LowAboveMs && q.Level == cfg.QualityHigh:
		setQuality(c, cfg.QualityMed)
	case q.AvgFrameMs < cfg.Quality.HighBelowMs && q.Level != cfg.QualityHigh:
		setQuality(c, cfg.QualityHigh)
	}
}

// setQuality switches level. Entering LOW bounds the registry and cuts trails right away.
func setQuality(c *Context, level cfg.QualityLevel) {
	q := c.Quality()
	if q.Level == level {
		return
	}
	q.Level = level
	q.Transitions++

	if level == cfg.QualityLow {
		c.Effects().SetCapacity(cfg.Quality.LowEffectCap)
		trimTrails(c, q.TrailLength())
	} else {
		c.Effects().SetCapacity(0)
	}
	log.Printf("[quality] level %s (avg frame %.1fms)", level, q.AvgFrameMs)
}

// effectSkipModulo is the registry update-skip ratio for the current level
func effectSkipModulo(c *Context) int {
	if c.Quality().Level == cfg.QualityLow {
		return cfg.Quality.LowSkipModulo
	}
	return 1
}

// UpdateEffects advances the effect registry
func UpdateEffects(c *Context, dtMs float64) {
	c.Effects().Tick(dtMs, effectSkipModulo(c))
}

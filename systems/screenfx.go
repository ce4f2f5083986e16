package systems

import cfg "github.com/automoto/codesymphony/config"

// UpdateScreenFX decays shake, bass pulse and darkness and ends an expired slow
func UpdateScreenFX(c *Context, now int64) {
	fx := c.ScreenFX()

	fx.Shake *= cfg.ScreenFX.ShakeDecay
	if fx.Shake < cfg.ScreenFX.ShakeFloor {
		fx.Shake = 0
	}
	fx.BassPulse *= cfg.ScreenFX.BassDecay
	if fx.DarkAlpha > 0 {
		fx.DarkAlpha *= cfg.ScreenFX.DarkDecay
		if fx.DarkAlpha < cfg.ScreenFX.ShakeFloor {
			fx.DarkAlpha = 0
		}
	}
	expireSlow(c, now)
}

func expireSlow(c *Context, now int64) {
	fx := c.ScreenFX()
	if fx.SlowFactor < 1 && now > fx.SlowEndMs {
		fx.SlowFactor = 1
	}
}

// addShake raises the shake intensity, capped at 1
func addShake(c *Context, v float64) {
	fx := c.ScreenFX()
	fx.Shake = min(1, fx.Shake+v)
}

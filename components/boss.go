package components

import (
	cfg "github.com/automoto/codesymphony/config"
	"github.com/yohamta/donburi"
)

// BossData identifies one boss of the gauntlet and carries its idle animation clock
type BossData struct {
	Index      int
	Kind       cfg.BossKind
	Name       string
	AnimMs     float64
	HitFlashMs float64
}

// Config returns the lookup-table row for this boss
func (b *BossData) Config() cfg.BossConfig {
	return cfg.Bosses[b.Index]
}

var Boss = donburi.NewComponentType[BossData]()

package factory

import (
	"github.com/automoto/codesymphony/archetypes"
	"github.com/automoto/codesymphony/components"
	cfg "github.com/automoto/codesymphony/config"
	"github.com/yohamta/donburi"
)

// CreateBosses spawns one entity per boss table row, all at full health,
// and returns them in gauntlet order
func CreateBosses(w donburi.World) []donburi.Entity {
	out := make([]donburi.Entity, 0, len(cfg.Bosses))
	for i, bc := range cfg.Bosses {
		e := archetypes.Boss.Spawn(w)
		components.Boss.SetValue(e, components.BossData{
			Index: i,
			Kind:  bc.Kind,
			Name:  bc.Name,
		})
		components.Health.SetValue(e, components.HealthData{
			Current: bc.MaxHealth,
			Max:     bc.MaxHealth,
		})
		out = append(out, e.Entity())
	}
	return out
}

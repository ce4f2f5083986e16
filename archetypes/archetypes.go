package archetypes

import (
	"github.com/automoto/codesymphony/components"
	"github.com/automoto/codesymphony/tags"
	"github.com/yohamta/donburi"
)

var (
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Health,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	// Session carries every battle-wide singleton on one entity
	Session = newArchetype(
		tags.Session,
		components.Combo,
		components.BossPhase,
		components.BossSkill,
		components.Quality,
		components.ScreenFX,
		components.Effects,
		components.Ultimate,
		components.Progress,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}

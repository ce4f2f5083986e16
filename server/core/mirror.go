package core

import (
	"log/slog"

	"github.com/automoto/codesymphony/components"
	"github.com/automoto/codesymphony/shared/netcomponents"
	"github.com/automoto/codesymphony/systems"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// SyncFunc marks a freshly created net entity for replication. interp asks
// spectators to interpolate the component between snapshots.
type SyncFunc func(w donburi.World, e *donburi.Entity, comp donburi.IComponentType, interp bool) error

// NetworkSync replicates through necs
func NetworkSync(w donburi.World, e *donburi.Entity, comp donburi.IComponentType, interp bool) error {
	if interp {
		return srvsync.NetworkSync(w, e, srvsync.WithInterp(comp))
	}
	return srvsync.NetworkSync(w, e, comp)
}

// Mirror copies the simulation into the replicated world. The simulation
// world never holds net components: one battle-state entity and one note per
// projectile in flight live in a separate world that necs owns.
type Mirror struct {
	world donburi.World
	sync  SyncFunc
	log   *slog.Logger
	state donburi.Entity
	notes map[donburi.Entity]donburi.Entity // sim projectile -> net note
	seen  map[donburi.Entity]bool
}

func NewMirror(w donburi.World, sync SyncFunc, logger *slog.Logger) (*Mirror, error) {
	m := &Mirror{
		world: w,
		sync:  sync,
		log:   logger,
		notes: make(map[donburi.Entity]donburi.Entity),
		seen:  make(map[donburi.Entity]bool),
	}
	m.state = w.Create(netcomponents.NetBattleState)
	if err := sync(w, &m.state, netcomponents.NetBattleState, false); err != nil {
		w.Remove(m.state)
		return nil, err
	}
	return m, nil
}

// Sync publishes the battle state and matches the notes to the projectiles
func (m *Mirror) Sync(sim *systems.Context, st netcomponents.NetBattleStateData) {
	netcomponents.NetBattleState.Set(m.world.Entry(m.state), &st)

	clear(m.seen)
	sim.EachProjectileEntity(func(id donburi.Entity, p *components.ProjectileData) {
		m.seen[id] = true
		note, ok := m.notes[id]
		if !ok {
			note = m.world.Create(netcomponents.NetNote)
			if err := m.sync(m.world, &note, netcomponents.NetNote, true); err != nil {
				m.log.Warn("note sync failed", "err", err)
				m.world.Remove(note)
				return
			}
			m.notes[id] = note
		}
		netcomponents.NetNote.Set(m.world.Entry(note), &netcomponents.NetNoteData{
			X:          p.Position.X,
			Y:          p.Position.Y,
			Instrument: p.Instrument,
		})
	})

	for id, note := range m.notes {
		if m.seen[id] {
			continue
		}
		if m.world.Valid(note) {
			m.world.Remove(note)
		}
		delete(m.notes, id)
	}
}

// State is the last published battle state
func (m *Mirror) State() netcomponents.NetBattleStateData {
	return *netcomponents.NetBattleState.Get(m.world.Entry(m.state))
}

// NoteCount is the number of notes currently replicated
func (m *Mirror) NoteCount() int {
	return len(m.notes)
}

// Note returns the net note mirroring a simulation projectile
func (m *Mirror) Note(projectile donburi.Entity) (netcomponents.NetNoteData, bool) {
	note, ok := m.notes[projectile]
	if !ok || !m.world.Valid(note) {
		return netcomponents.NetNoteData{}, false
	}
	return *netcomponents.NetNote.Get(m.world.Entry(note)), true
}

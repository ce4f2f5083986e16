package core

import (
	"testing"

	"github.com/automoto/codesymphony/components"
	"github.com/automoto/codesymphony/shared/netcomponents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var noteQuery = donburi.NewQuery(filter.Contains(netcomponents.NetNote))

func TestMirrorFollowsProjectiles(t *testing.T) {
	sim, mock := newSim(t)
	net := donburi.NewWorld()
	m, err := NewMirror(net, noSync, quietLog)
	require.NoError(t, err)

	require.True(t, sim.TriggerInstrument(2))
	m.Sync(sim, netcomponents.NetBattleStateData{BossName: "Code Golem"})
	require.Equal(t, 1, m.NoteCount())
	assert.Equal(t, 1, noteQuery.Count(net))
	assert.Equal(t, "Code Golem", m.State().BossName)

	var id donburi.Entity
	var pos components.ProjectileData
	sim.EachProjectileEntity(func(e donburi.Entity, p *components.ProjectileData) {
		id, pos = e, *p
	})
	note, ok := m.Note(id)
	require.True(t, ok)
	assert.Equal(t, 2, note.Instrument)
	assert.InDelta(t, pos.Position.X, note.X, 1e-9)
	assert.InDelta(t, pos.Position.Y, note.Y, 1e-9)

	for i := 0; i < 200 && sim.ProjectileCount() > 0; i++ {
		mock.AdvanceMs(16)
		sim.Advance(16)
		m.Sync(sim, netcomponents.NetBattleStateData{})
		if sim.ProjectileCount() > 0 {
			moved, ok := m.Note(id)
			require.True(t, ok)
			assert.Less(t, moved.Y, note.Y)
		}
	}
	require.Equal(t, 0, sim.ProjectileCount())
	assert.Equal(t, 0, m.NoteCount())
	assert.Equal(t, 0, noteQuery.Count(net))
	_, ok = m.Note(id)
	assert.False(t, ok)
}

func TestMirrorDropsNotesThatFailToSync(t *testing.T) {
	sim, _ := newSim(t)
	net := donburi.NewWorld()
	m, err := NewMirror(net, failNotes, quietLog)
	require.NoError(t, err)

	require.True(t, sim.TriggerInstrument(0))
	m.Sync(sim, netcomponents.NetBattleStateData{})
	assert.Equal(t, 0, m.NoteCount())
	assert.Equal(t, 0, noteQuery.Count(net))
}

func TestMirrorNeedsStateSync(t *testing.T) {
	_, err := NewMirror(donburi.NewWorld(), func(donburi.World, *donburi.Entity, donburi.IComponentType, bool) error {
		return assert.AnError
	}, quietLog)
	assert.ErrorIs(t, err, assert.AnError)
}

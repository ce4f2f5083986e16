package protocol

import (
	"github.com/automoto/codesymphony/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetBattleState uint = 20
	SyncIDNetNote        uint = 21
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetNote uint8 = 21
)

// RegisterComponents registers the spectator components with necs.
// Server and spectators must both call it before any network traffic.
func RegisterComponents() error {
	// Battle state: no interpolation, every field is discrete or already smoothed
	if err := esync.RegisterComponent(
		SyncIDNetBattleState,
		netcomponents.NetBattleStateData{},
		netcomponents.NetBattleState,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetNote,
		netcomponents.NetNoteData{},
		netcomponents.NetNote,
		esync.WithInterpFn(InterpIDNetNote, netcomponents.LerpNetNote),
	); err != nil {
		return err
	}

	return nil
}

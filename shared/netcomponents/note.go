package netcomponents

import "github.com/yohamta/donburi"

// NetNoteData is a projectile in flight
type NetNoteData struct {
	X, Y       float64
	Instrument int
}

var NetNote = donburi.NewComponentType[NetNoteData]()

// LerpNetNote interpolates a note's position. The instrument never changes
// over a note's life so it is taken from the newer sample.
func LerpNetNote(from, to NetNoteData, t float64) *NetNoteData {
	return &NetNoteData{
		X:          from.X + (to.X-from.X)*t,
		Y:          from.Y + (to.Y-from.Y)*t,
		Instrument: to.Instrument,
	}
}

package scenes

import (
	"log"

	"github.com/automoto/codesymphony/audio"
	"github.com/automoto/codesymphony/config/tuning"
	"github.com/automoto/codesymphony/persistence"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Services are the long-lived collaborators shared by every scene.
// Tuning may be nil when the overlay file cannot be watched.
type Services struct {
	Store  persistence.Store
	Saver  *persistence.Saver
	Audio  *audio.Engine
	Tuning *tuning.Watcher
}

// loadSave returns the stored snapshot, or nil when there is none or it cannot be read
func (s *Services) loadSave() *persistence.Snapshot {
	snap, err := s.Store.Load()
	if err != nil {
		log.Printf("Warning: Could not read saved progress: %v", err)
		return nil
	}
	return snap
}

// drainTuning applies any reloaded tuning file. Runs on the tick thread only.
func (s *Services) drainTuning() {
	if s.Tuning == nil {
		return
	}
	select {
	case t := <-s.Tuning.Updates:
		t.Apply()
		log.Printf("[tuning] reloaded %s", tuning.DefaultFile)
	case err := <-s.Tuning.Errors:
		log.Printf("Warning: Could not reload tuning: %v", err)
	default:
	}
}

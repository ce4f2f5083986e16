package persistence

import (
	"log"
	"sync"
)

// Saver writes snapshots on a background goroutine so the tick thread never
// waits on disk. Only the newest pending snapshot is kept.
type Saver struct {
	store   Store
	pending chan Snapshot
	mu      sync.Mutex // serializes producers around the drain-and-replace
	done    chan struct{}
	once    sync.Once
	closed  bool
}

func NewSaver(store Store) *Saver {
	s := &Saver{
		store:   store,
		pending: make(chan Snapshot, 1),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Request queues snap for writing and returns immediately.
// A snapshot still waiting in the queue is replaced.
func (s *Saver) Request(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.pending <- snap:
	default:
		select {
		case <-s.pending:
		default:
		}
		s.pending <- snap
	}
}

func (s *Saver) run() {
	defer close(s.done)
	for snap := range s.pending {
		if err := s.store.Save(&snap); err != nil {
			log.Printf("Warning: Could not save progress: %v", err)
		}
	}
}

// Close writes whatever is still queued and stops the worker
func (s *Saver) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.pending)
		s.mu.Unlock()
		<-s.done
	})
}

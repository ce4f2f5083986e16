package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/codesymphony/config"
	"github.com/quasilyte/gdata"
)

// GDataStore keeps the snapshot in the platform's app data directory
type GDataStore struct {
	manager *gdata.Manager
	key     string
}

// OpenGData initializes the gdata manager for appName
func OpenGData(appName, key string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return &GDataStore{manager: m, key: key}, nil
}

func (g *GDataStore) Load() (*Snapshot, error) {
	data, err := g.manager.LoadItem(g.key)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decode(data)
}

func (g *GDataStore) Save(s *Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := g.manager.SaveItem(g.key, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Clear saves an empty item, which Load treats as "no save"
func (g *GDataStore) Clear() error {
	if err := g.manager.SaveItem(g.key, nil); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

// decode parses a saved snapshot. Keys missing from older saves keep their
// defaults, so an absent volume does not mute the game.
func decode(data []byte) (*Snapshot, error) {
	s := Snapshot{Volume: cfg.Audio.DefaultVolume}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	return &s, nil
}

// MemoryStore keeps the encoded snapshot in memory. Used by the headless
// server and by tests.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.data) == 0 {
		return nil, nil
	}
	return decode(m.data)
}

func (m *MemoryStore) Save(s *Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	m.mu.Lock()
	m.data = data
	m.saves++
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.data = nil
	m.mu.Unlock()
	return nil
}

// SetRaw replaces the stored bytes, bypassing encoding
func (m *MemoryStore) SetRaw(data []byte) {
	m.mu.Lock()
	m.data = append([]byte(nil), data...)
	m.mu.Unlock()
}

// Saves returns how many snapshots were written
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

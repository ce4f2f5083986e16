package directory

import (
	"crypto/rand"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/automoto/codesymphony/clock"
)

// HeartbeatEvery is how often a battle server refreshes its listing
const HeartbeatEvery = 30 * time.Second

// Status is the live part of a listing, refreshed by every heartbeat
type Status struct {
	Session    string `json:"session"`
	Boss       string `json:"boss"`
	BossIndex  int    `json:"bossIndex"`
	BossHealth int    `json:"bossHealth"`
	BossMax    int    `json:"bossMax"`
	TotalScore int64  `json:"totalScore"`
	State      string `json:"state"`
	Spectators int    `json:"spectators"`
}

// Listing describes a battle server spectators can connect to
type Listing struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Version string `json:"version"`
	Status
}

type record struct {
	Listing
	LastSeen time.Time
}

// Registry is an in-memory store of running battles with TTL-based expiry
type Registry struct {
	mu      sync.RWMutex
	battles map[string]*record
	ttl     time.Duration
	clock   clock.Provider
	stopCh  chan struct{}
	once    sync.Once
}

func NewRegistry(ttl time.Duration, c clock.Provider) *Registry {
	if c == nil {
		c = clock.NewReal()
	}
	return &Registry{
		battles: make(map[string]*record),
		ttl:     ttl,
		clock:   c,
		stopCh:  make(chan struct{}),
	}
}

// Run expires stale listings until Stop is called
func (r *Registry) Run(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.Expire()
		}
	}
}

func (r *Registry) Stop() {
	r.once.Do(func() { close(r.stopCh) })
}

func (r *Registry) Register(l Listing) string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	l.ID = fmt.Sprintf("%x", b)

	r.mu.Lock()
	r.battles[l.ID] = &record{
		Listing:  l,
		LastSeen: r.clock.Now(),
	}
	r.mu.Unlock()

	return l.ID
}

// Heartbeat refreshes a listing. It reports false for unknown ids.
func (r *Registry) Heartbeat(id string, st Status) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.battles[id]
	if !ok {
		return false
	}
	rec.LastSeen = r.clock.Now()
	rec.Status = st
	return true
}

// List returns the live listings, most watched first
func (r *Registry) List() []Listing {
	r.mu.RLock()
	result := make([]Listing, 0, len(r.battles))
	for _, rec := range r.battles {
		result = append(result, rec.Listing)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Spectators != result[j].Spectators {
			return result[i].Spectators > result[j].Spectators
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// Expire drops listings not refreshed within the TTL and returns how many went
func (r *Registry) Expire() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	n := 0
	for id, rec := range r.battles {
		if now.Sub(rec.LastSeen) >= r.ttl {
			log.Printf("[directory] expired battle %q (id=%s, last seen %s ago)",
				rec.Name, id, now.Sub(rec.LastSeen).Round(time.Second))
			delete(r.battles, id)
			n++
		}
	}
	return n
}

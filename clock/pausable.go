package clock

import (
	"sync"
	"time"
)

// Pausable wraps another provider and stops time while paused, so battle
// deadlines do not run out behind the pause menu
type Pausable struct {
	mu       sync.Mutex
	base     Provider
	offset   time.Duration
	pausedAt time.Time
	paused   bool
}

func NewPausable(base Provider) *Pausable {
	return &Pausable{base: base}
}

// Now returns the base time minus every paused stretch
func (p *Pausable) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		return p.pausedAt.Add(-p.offset)
	}
	return p.base.Now().Add(-p.offset)
}

// Pause freezes Now. Calling it while paused does nothing.
func (p *Pausable) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		return
	}
	p.paused = true
	p.pausedAt = p.base.Now()
}

// Resume lets time run again from where it stopped
func (p *Pausable) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paused {
		return
	}
	p.paused = false
	p.offset += p.base.Now().Sub(p.pausedAt)
}

func (p *Pausable) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

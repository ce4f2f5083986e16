package clock

import "time"

// FrameMeter measures the wall time between two presented frames. Several
// logic updates can run back to back for one slow frame, so their own deltas
// say nothing about how long rendering took.
type FrameMeter struct {
	p      Provider
	last   time.Time
	costMs float64
	maxMs  float64
}

// NewFrameMeter creates a meter reading p. Intervals longer than maxMs are
// clamped, zero disables the bound.
func NewFrameMeter(p Provider, maxMs float64) *FrameMeter {
	return &FrameMeter{p: p, maxMs: maxMs}
}

// Mark records that a frame was presented now
func (f *FrameMeter) Mark() {
	now := f.p.Now()
	if !f.last.IsZero() {
		f.costMs = float64(now.Sub(f.last).Microseconds()) / 1000
		if f.maxMs > 0 {
			f.costMs = min(f.costMs, f.maxMs)
		}
	}
	f.last = now
}

// CostMs is the last measured frame interval, 0 until two frames were marked
func (f *FrameMeter) CostMs() float64 {
	return f.costMs
}

// Reset forgets the previous frame, used after the window was not drawing
func (f *FrameMeter) Reset() {
	f.last = time.Time{}
	f.costMs = 0
}

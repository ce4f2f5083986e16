// Package input turns held instrument keys into repeated triggers.
//
// Each held key owns a repeat task backed by time.AfterFunc. Timers never
// touch simulation state: they post the instrument to a queue that the tick
// thread drains, and every fire carries the generation of the press that
// armed it so a late fire from a released key is discarded.
package input

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Fire is one queued repeat
type Fire struct {
	Instrument int
	Gen        uint64
}

type task struct {
	gen   uint64
	timer *time.Timer
}

// Repeater owns the repeat tasks of all instruments
type Repeater struct {
	mu       sync.Mutex
	tasks    map[int]*task
	nextGen  uint64
	closed   bool
	fired    chan Fire
	interval float64 // ms at slow factor 1
	delay    float64 // initial delay as a multiple of the interval
	slowBits atomic.Uint64
	dropped  atomic.Int64
}

func NewRepeater(intervalMs, initialDelayFactor float64, queueSize int) *Repeater {
	r := &Repeater{
		tasks:    make(map[int]*task),
		fired:    make(chan Fire, max(queueSize, 1)),
		interval: intervalMs,
		delay:    initialDelayFactor,
	}
	r.SetSlowFactor(1)
	return r
}

// SetSlowFactor stretches the repeat cadence. Called from the tick thread,
// read by timer goroutines.
func (r *Repeater) SetSlowFactor(f float64) {
	if f <= 0 {
		f = 1
	}
	r.slowBits.Store(math.Float64bits(f))
}

func (r *Repeater) SlowFactor() float64 {
	return math.Float64frombits(r.slowBits.Load())
}

func (r *Repeater) period() time.Duration {
	return time.Duration(r.interval / r.SlowFactor() * float64(time.Millisecond))
}

// Press arms a repeat task for instrument. Pressing a key that is already
// held does nothing.
func (r *Repeater) Press(instrument int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if _, held := r.tasks[instrument]; held {
		return
	}
	r.nextGen++
	t := &task{gen: r.nextGen}
	first := time.Duration(float64(r.period()) * r.delay)
	t.timer = time.AfterFunc(first, func() { r.fire(instrument, t) })
	r.tasks[instrument] = t
}

// Release cancels the instrument's task. Extra releases are ignored.
func (r *Repeater) Release(instrument int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, held := r.tasks[instrument]
	if !held {
		return
	}
	t.timer.Stop()
	delete(r.tasks, instrument)
}

// Held reports whether instrument has a live task
func (r *Repeater) Held(instrument int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, held := r.tasks[instrument]
	return held
}

func (r *Repeater) fire(instrument int, t *task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, held := r.tasks[instrument]; !held || cur != t {
		return
	}
	select {
	case r.fired <- Fire{Instrument: instrument, Gen: t.gen}:
	default:
		r.dropped.Add(1)
	}
	t.timer.Reset(r.period())
}

// Drain hands every queued fire whose press is still held to trigger.
// It must run on the tick thread.
func (r *Repeater) Drain(trigger func(instrument int)) int {
	n := 0
	for {
		select {
		case f := <-r.fired:
			if !r.current(f) {
				continue
			}
			trigger(f.Instrument)
			n++
		default:
			return n
		}
	}
}

func (r *Repeater) current(f Fire) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, held := r.tasks[f.Instrument]
	return held && t.gen == f.Gen
}

// Dropped counts fires lost to a full queue
func (r *Repeater) Dropped() int64 {
	return r.dropped.Load()
}

// Close releases every key and refuses new presses
func (r *Repeater) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for id, t := range r.tasks {
		t.timer.Stop()
		delete(r.tasks, id)
	}
}

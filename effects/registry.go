package effects

// Registry owns every live effect in insertion order
type Registry struct {
	items    []Effect
	capacity int // 0 means unbounded
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends an effect, evicting the oldest entries if a capacity is set
func (r *Registry) Add(e Effect) {
	if e == nil {
		return
	}
	r.items = append(r.items, e)
	r.trim()
}

// SetCapacity bounds the registry to n entries (0 removes the bound) and trims immediately
func (r *Registry) SetCapacity(n int) {
	if n < 0 {
		n = 0
	}
	r.capacity = n
	r.trim()
}

// Capacity returns the current bound, 0 if unbounded
func (r *Registry) Capacity() int {
	return r.capacity
}

func (r *Registry) trim() {
	if r.capacity == 0 || len(r.items) <= r.capacity {
		return
	}
	drop := len(r.items) - r.capacity
	for i := 0; i < drop; i++ {
		r.items[i] = nil
	}
	r.items = append(r.items[:0], r.items[drop:]...)
}

// Tick updates every live effect and removes the dead ones in one pass.
// With skipModulo > 1, effects whose index%skipModulo == 1 sit this tick out.
func (r *Registry) Tick(dtMs float64, skipModulo int) {
	n := len(r.items)
	live := r.items[:0]
	for i := 0; i < n; i++ {
		e := r.items[i]
		if e.Alive() && !(skipModulo > 1 && i%skipModulo == 1) {
			e.Update(dtMs)
		}
		if e.Alive() {
			live = append(live, e)
		}
	}
	for i := len(live); i < n; i++ {
		r.items[i] = nil
	}
	r.items = live
}

// Len returns the number of live effects
func (r *Registry) Len() int {
	return len(r.items)
}

// Each visits effects oldest first. The callback must not add or remove effects.
func (r *Registry) Each(fn func(Effect)) {
	for _, e := range r.items {
		fn(e)
	}
}

// Clear drops every effect
func (r *Registry) Clear() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
}

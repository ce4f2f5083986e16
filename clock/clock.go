package clock

import "time"

// Provider is the time source the simulation reads deadlines from
type Provider interface {
	Now() time.Time
}

// Real provides the system time with monotonic clock readings
type Real struct{}

// NewReal creates a new system time provider
func NewReal() *Real {
	return &Real{}
}

// Now returns the current system time
func (Real) Now() time.Time {
	return time.Now()
}

// Millis returns the provider's time as unix milliseconds
func Millis(p Provider) int64 {
	return p.Now().UnixMilli()
}

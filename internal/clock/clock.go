// Package clock abstracts time for components that wait or measure
// elapsed intervals, so their behavior is testable without real delays.
package clock

import "time"

// Clock provides the current time and blocking sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Real is the system clock.
type Real struct{}

// Now returns the current time (with a monotonic reading).
func (Real) Now() time.Time { return time.Now() }

// Sleep blocks for at least d.
func (Real) Sleep(d time.Duration) { time.Sleep(d) }

// New returns the system clock.
func New() Clock { return Real{} }

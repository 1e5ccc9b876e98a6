package clock

import "time"

// Fake is a manually advanced clock for tests. Sleep advances the
// clock instead of blocking, so code that waits in real time runs
// instantly under test.
// Not safe for concurrent use — caller must synchronize.
type Fake struct {
	now time.Time
}

// NewFake creates a Fake starting at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake instant.
func (f *Fake) Now() time.Time { return f.now }

// Sleep advances the clock by d without blocking.
func (f *Fake) Sleep(d time.Duration) { f.now = f.now.Add(d) }

// Advance moves the clock forward by d.
func (f *Fake) Advance(d time.Duration) { f.now = f.now.Add(d) }

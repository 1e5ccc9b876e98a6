package led

// NoopLine discards writes. Used when the device has no indicator
// wired.
type NoopLine struct{}

// Configure does nothing.
func (NoopLine) Configure() error { return nil }

// Write discards the level.
func (NoopLine) Write(level bool) error { return nil }

// Close does nothing.
func (NoopLine) Close() error { return nil }

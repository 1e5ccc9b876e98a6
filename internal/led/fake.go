package led

// FakeLine is a test double that records every level written.
type FakeLine struct {
	// Levels holds each electrical level in write order.
	Levels []bool

	// Configured tracks if Configure was called.
	Configured bool

	// Closed tracks if Close was called.
	Closed bool

	// ConfigureError, if set, will be returned by Configure().
	ConfigureError error

	// WriteError, if set, will be returned by Write().
	WriteError error
}

// NewFakeLine creates an empty FakeLine.
func NewFakeLine() *FakeLine {
	return &FakeLine{}
}

// Configure marks the line configured.
func (f *FakeLine) Configure() error {
	if f.ConfigureError != nil {
		return f.ConfigureError
	}
	f.Configured = true
	return nil
}

// Write records the level.
func (f *FakeLine) Write(level bool) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Levels = append(f.Levels, level)
	return nil
}

// Close marks the line closed.
func (f *FakeLine) Close() error {
	f.Closed = true
	return nil
}

// Last returns the most recent level written, or false when nothing
// has been written yet.
func (f *FakeLine) Last() bool {
	if len(f.Levels) == 0 {
		return false
	}
	return f.Levels[len(f.Levels)-1]
}

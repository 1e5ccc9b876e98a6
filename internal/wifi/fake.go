package wifi

// FakeAdapter is a test double that returns scripted status values.
type FakeAdapter struct {
	// Statuses contains scripted Status() results.
	// Each call to Status() consumes the next value.
	// If the script is exhausted, the last value repeats.
	Statuses []bool

	// index tracks current position in Statuses
	index int

	// StatusError, if set, will be returned by Status()
	StatusError error

	// BeginError, if set, will be returned by BeginConnection()
	BeginError error

	// Identity reported by the query methods.
	IP   string
	MAC  string
	RSSI int

	// Recorded calls.
	Mode        Mode
	SSID        string
	Secret      string
	BeginCalls  int
	Disconnects int
}

// NewFakeAdapter creates a FakeAdapter with the given status script.
func NewFakeAdapter(statuses []bool) *FakeAdapter {
	return &FakeAdapter{Statuses: statuses}
}

// SetMode records the requested mode.
func (f *FakeAdapter) SetMode(mode Mode) error {
	f.Mode = mode
	return nil
}

// BeginConnection records the credentials.
func (f *FakeAdapter) BeginConnection(ssid, secret string) error {
	f.BeginCalls++
	f.SSID = ssid
	f.Secret = secret
	return f.BeginError
}

// Status returns the next scripted value.
// If the script is exhausted, returns the last value repeatedly.
func (f *FakeAdapter) Status() (bool, error) {
	if f.StatusError != nil {
		return false, f.StatusError
	}
	if len(f.Statuses) == 0 {
		return false, nil
	}
	s := f.Statuses[f.index]
	if f.index < len(f.Statuses)-1 {
		f.index++
	}
	return s, nil
}

// Disconnect counts the call.
func (f *FakeAdapter) Disconnect() error {
	f.Disconnects++
	return nil
}

// LocalAddress returns the configured IP.
func (f *FakeAdapter) LocalAddress() string { return f.IP }

// HardwareAddress returns the configured MAC.
func (f *FakeAdapter) HardwareAddress() string { return f.MAC }

// SignalStrength returns the configured RSSI.
func (f *FakeAdapter) SignalStrength() int { return f.RSSI }

// SetScript replaces the status script and rewinds to its start.
func (f *FakeAdapter) SetScript(statuses []bool) {
	f.Statuses = statuses
	f.index = 0
}

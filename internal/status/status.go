// Package status provides a thread-safe status tracker for the uebot
// daemon. It is designed to be read by HTTP handlers while the poll
// loop writes.
package status

import (
	"sync"
	"time"

	"github.com/DuongThanhTaii/UE-Bot/internal/led"
	"github.com/DuongThanhTaii/UE-Bot/internal/wifi"
)

// LinkInfo contains the wireless link details as of the last heartbeat.
type LinkInfo struct {
	SSID string
	IP   string
	MAC  string
	RSSI int
}

// Config contains daemon configuration for display.
type Config struct {
	DeviceID    string
	DeviceName  string
	PollMs      int64
	HeartbeatMs int64
	TimeoutMs   int64
	BackoffMs   int64
	Interface   string
	HTTPAddr    string
}

// Counts tallies connectivity transitions since startup.
type Counts struct {
	Connecting   int
	Connected    int
	Disconnected int
	Errors       int
}

// Transition records one connectivity state change.
type Transition struct {
	At time.Time
	To wifi.State
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	State     wifi.State
	Link      LinkInfo
	Attempts  int
	LED       led.Pattern
	Counts    Counts
	History   []Transition
	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Connected reports whether the tracked state is CONNECTED.
func (s Snapshot) Connected() bool {
	return s.State == wifi.StateConnected
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu      sync.RWMutex
	snap    Snapshot
	history *History
}

// NewTracker creates a Tracker with the given start time and config.
// The state reads UNKNOWN until the first transition arrives.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
		history: NewHistory(16),
	}
}

// Update sets the connectivity state, retry count, and LED pattern.
// Called from runLoop on every tick.
func (t *Tracker) Update(state wifi.State, attempts int, pattern led.Pattern) {
	t.mu.Lock()
	t.snap.State = state
	t.snap.Attempts = attempts
	t.snap.LED = pattern
	t.mu.Unlock()
}

// RecordTransition tallies a state change and appends it to the
// history. Also moves the tracked state so the page stays live during
// the blocking initial connect.
func (t *Tracker) RecordTransition(at time.Time, to wifi.State) {
	t.mu.Lock()
	t.snap.State = to
	switch to {
	case wifi.StateConnecting:
		t.snap.Counts.Connecting++
	case wifi.StateConnected:
		t.snap.Counts.Connected++
	case wifi.StateDisconnected:
		t.snap.Counts.Disconnected++
	case wifi.StateError:
		t.snap.Counts.Errors++
	}
	t.history.Push(Transition{At: at, To: to})
	t.mu.Unlock()
}

// SetLink sets the wireless link details.
func (t *Tracker) SetLink(info LinkInfo) {
	t.mu.Lock()
	t.snap.Link = info
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	s.History = t.history.List()
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}

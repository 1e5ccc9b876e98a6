// Package wifi manages the wireless link: a blocking initial connect,
// link-loss detection, and timed reconnect attempts driven by a poll
// loop. The adapter hardware sits behind an interface so the state
// machine is testable without a radio.
package wifi

import "errors"

// State is the connectivity state of the link. Exactly one is active
// at any time.
type State string

const (
	StateDisconnected State = "DISCONNECTED"
	StateConnecting   State = "CONNECTING"
	StateConnected    State = "CONNECTED"
	StateError        State = "ERROR"
)

// Mode selects the adapter operating mode.
type Mode string

// ModeStation joins an existing access point.
const ModeStation Mode = "station"

// StateHandler receives state transitions. The Manager keeps a single
// handler slot; registering a new handler replaces the previous one.
type StateHandler func(State)

// ErrConnectTimeout is returned when the adapter does not associate
// within the configured timeout.
var ErrConnectTimeout = errors.New("wifi: connect timeout")

// Adapter is the platform network interface the Manager drives.
type Adapter interface {
	// SetMode puts the adapter in the given operating mode.
	SetMode(mode Mode) error

	// BeginConnection starts association with the named network. It
	// does not block; progress is observed through Status.
	BeginConnection(ssid, secret string) error

	// Status reports whether the adapter currently holds an
	// association with an IP lease.
	Status() (bool, error)

	// Disconnect drops the current association.
	Disconnect() error

	// LocalAddress returns the adapter's IP address, or "" when not
	// connected.
	LocalAddress() string

	// HardwareAddress returns the adapter's MAC address.
	HardwareAddress() string

	// SignalStrength returns the received signal strength in dBm, or 0
	// when the adapter cannot report one.
	SignalStrength() int
}

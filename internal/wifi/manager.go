package wifi

import (
	"log"
	"time"

	"github.com/DuongThanhTaii/UE-Bot/internal/clock"
)

// Config holds Manager timing parameters.
type Config struct {
	// ConnectTimeout bounds how long each connect attempt waits for
	// the adapter to associate.
	ConnectTimeout time.Duration

	// ReconnectBackoff is the wait between reconnect attempts.
	ReconnectBackoff time.Duration

	// StatusPollInterval is how often the adapter is polled while a
	// connect attempt is in flight.
	StatusPollInterval time.Duration
}

// DefaultConfig returns the stock timing parameters.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:     30 * time.Second,
		ReconnectBackoff:   5 * time.Second,
		StatusPollInterval: 500 * time.Millisecond,
	}
}

// Manager drives the link state machine. Initialize performs the first
// connect; Poll keeps the link alive afterwards.
// Not safe for concurrent use — the poll loop owns it.
type Manager struct {
	adapter Adapter
	clk     clock.Clock
	cfg     Config

	// Owned copies of the credentials, kept for reconnects.
	ssid   string
	secret string

	state       State
	handler     StateHandler
	lastAttempt time.Time
	attempts    int
}

// NewManager creates a Manager for the given adapter. Zero fields in
// cfg fall back to DefaultConfig values.
func NewManager(adapter Adapter, clk clock.Clock, cfg Config) *Manager {
	def := DefaultConfig()
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = def.ConnectTimeout
	}
	if cfg.ReconnectBackoff <= 0 {
		cfg.ReconnectBackoff = def.ReconnectBackoff
	}
	if cfg.StatusPollInterval <= 0 {
		cfg.StatusPollInterval = def.StatusPollInterval
	}
	return &Manager{
		adapter: adapter,
		clk:     clk,
		cfg:     cfg,
		state:   StateDisconnected,
	}
}

// SetStateHandler registers the transition handler. One slot: a second
// registration replaces the first.
func (m *Manager) SetStateHandler(h StateHandler) {
	m.handler = h
}

// Initialize stores the credentials and performs the first connect
// attempt. It blocks until the adapter associates or ConnectTimeout
// elapses; later reconnects reuse the stored credentials.
func (m *Manager) Initialize(ssid, secret string) error {
	m.ssid = ssid
	m.secret = secret
	return m.connect()
}

// Poll advances the state machine. Called on every loop tick; cheap
// unless a reconnect attempt is due.
func (m *Manager) Poll() {
	switch m.state {
	case StateConnected:
		ok, err := m.adapter.Status()
		if err != nil {
			log.Printf("wifi: status: %v", err)
			return
		}
		if !ok {
			log.Printf("wifi: connection lost")
			m.setState(StateDisconnected)
		}

	case StateDisconnected, StateError:
		if m.ssid == "" {
			// Initialize has not run; nothing to reconnect to.
			return
		}
		if m.clk.Now().Sub(m.lastAttempt) > m.cfg.ReconnectBackoff {
			m.lastAttempt = m.clk.Now()
			m.attempts++
			log.Printf("wifi: reconnect attempt %d", m.attempts)
			// Failure leaves the state at Error; a later Poll retries.
			_ = m.connect()
		}
	}
}

// connect runs one bounded connect attempt against the adapter.
func (m *Manager) connect() error {
	log.Printf("wifi: connecting to %q", m.ssid)
	m.setState(StateConnecting)

	if err := m.adapter.SetMode(ModeStation); err != nil {
		log.Printf("wifi: set mode: %v", err)
	}
	if err := m.adapter.BeginConnection(m.ssid, m.secret); err != nil {
		// Keep polling: some adapters report transient errors here
		// while the association still comes up.
		log.Printf("wifi: begin connection: %v", err)
	}

	start := m.clk.Now()
	for {
		ok, err := m.adapter.Status()
		if err != nil {
			log.Printf("wifi: status: %v", err)
		}
		if ok {
			break
		}
		if m.clk.Now().Sub(start) >= m.cfg.ConnectTimeout {
			log.Printf("wifi: connect to %q timed out after %v", m.ssid, m.cfg.ConnectTimeout)
			m.setState(StateError)
			return ErrConnectTimeout
		}
		m.clk.Sleep(m.cfg.StatusPollInterval)
	}

	m.attempts = 0
	m.setState(StateConnected)
	log.Printf("wifi: connected to %q ip=%s rssi=%ddBm",
		m.ssid, m.adapter.LocalAddress(), m.adapter.SignalStrength())
	return nil
}

// setState records a transition and fires the handler exactly once per
// distinct change. Setting the current state again is a no-op.
func (m *Manager) setState(s State) {
	if s == m.state {
		return
	}
	m.state = s
	if m.handler != nil {
		m.handler(s)
	}
}

// Disconnect drops the current association. The link stays managed:
// reconnect attempts resume on later polls.
func (m *Manager) Disconnect() {
	if err := m.adapter.Disconnect(); err != nil {
		log.Printf("wifi: disconnect: %v", err)
	}
	m.setState(StateDisconnected)
}

// IsConnected reports whether the link is up right now. The state
// machine and the live adapter status must both agree; a stale
// Connected state does not count.
func (m *Manager) IsConnected() bool {
	if m.state != StateConnected {
		return false
	}
	ok, err := m.adapter.Status()
	return err == nil && ok
}

// State returns the current state machine state.
func (m *Manager) State() State { return m.state }

// Attempts returns the number of reconnect attempts since the last
// successful connect.
func (m *Manager) Attempts() int { return m.attempts }

// LocalAddress returns the adapter's IP address.
func (m *Manager) LocalAddress() string { return m.adapter.LocalAddress() }

// HardwareAddress returns the adapter's MAC address.
func (m *Manager) HardwareAddress() string { return m.adapter.HardwareAddress() }

// SignalStrength returns the current RSSI in dBm.
func (m *Manager) SignalStrength() int { return m.adapter.SignalStrength() }

package wifi

import (
	"errors"
	"testing"
	"time"

	"github.com/DuongThanhTaii/UE-Bot/internal/clock"
)

func testConfig() Config {
	return Config{
		ConnectTimeout:     30 * time.Second,
		ReconnectBackoff:   5 * time.Second,
		StatusPollInterval: 500 * time.Millisecond,
	}
}

// recordStates registers a handler that appends every transition.
func recordStates(m *Manager) *[]State {
	states := &[]State{}
	m.SetStateHandler(func(s State) {
		*states = append(*states, s)
	})
	return states
}

func TestNewManagerDefaults(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	m := NewManager(NewFakeAdapter(nil), clk, Config{})

	if m.cfg.ConnectTimeout != 30*time.Second {
		t.Errorf("ConnectTimeout: got %v, want 30s", m.cfg.ConnectTimeout)
	}
	if m.cfg.ReconnectBackoff != 5*time.Second {
		t.Errorf("ReconnectBackoff: got %v, want 5s", m.cfg.ReconnectBackoff)
	}
	if m.cfg.StatusPollInterval != 500*time.Millisecond {
		t.Errorf("StatusPollInterval: got %v, want 500ms", m.cfg.StatusPollInterval)
	}
	if m.State() != StateDisconnected {
		t.Errorf("initial state: got %s, want DISCONNECTED", m.State())
	}
}

func TestInitializeConnects(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFake(start)
	// Adapter associates on the 7th status poll, 3s in.
	adapter := NewFakeAdapter([]bool{false, false, false, false, false, false, true})
	adapter.IP = "192.168.1.50"
	m := NewManager(adapter, clk, testConfig())
	states := recordStates(m)

	err := m.Initialize("HomeNet", "hunter2")
	if err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if m.State() != StateConnected {
		t.Errorf("state: got %s, want CONNECTED", m.State())
	}
	if got := clk.Now().Sub(start); got != 3*time.Second {
		t.Errorf("elapsed: got %v, want 3s", got)
	}
	if adapter.Mode != ModeStation {
		t.Errorf("mode: got %q, want station", adapter.Mode)
	}
	if adapter.SSID != "HomeNet" || adapter.Secret != "hunter2" {
		t.Errorf("credentials: got %q/%q", adapter.SSID, adapter.Secret)
	}
	if adapter.BeginCalls != 1 {
		t.Errorf("BeginCalls: got %d, want 1", adapter.BeginCalls)
	}
	if m.Attempts() != 0 {
		t.Errorf("attempts: got %d, want 0", m.Attempts())
	}

	want := []State{StateConnecting, StateConnected}
	if len(*states) != len(want) {
		t.Fatalf("transitions: got %v, want %v", *states, want)
	}
	for i, s := range want {
		if (*states)[i] != s {
			t.Errorf("transition %d: got %s, want %s", i, (*states)[i], s)
		}
	}
}

func TestInitializeTimeout(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFake(start)
	adapter := NewFakeAdapter([]bool{false})
	cfg := testConfig()
	cfg.ConnectTimeout = 100 * time.Millisecond
	m := NewManager(adapter, clk, cfg)
	states := recordStates(m)

	err := m.Initialize("HomeNet", "hunter2")
	if !errors.Is(err, ErrConnectTimeout) {
		t.Fatalf("expected ErrConnectTimeout, got %v", err)
	}

	if m.State() != StateError {
		t.Errorf("state: got %s, want ERROR", m.State())
	}

	// Timeout plus at most one status-poll interval.
	elapsed := clk.Now().Sub(start)
	if elapsed > 100*time.Millisecond+cfg.StatusPollInterval {
		t.Errorf("elapsed: got %v, want <= timeout + one poll interval", elapsed)
	}

	want := []State{StateConnecting, StateError}
	if len(*states) != 2 || (*states)[0] != want[0] || (*states)[1] != want[1] {
		t.Errorf("transitions: got %v, want %v", *states, want)
	}
}

func TestInitializeBeginErrorStillPolls(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	adapter := NewFakeAdapter([]bool{true})
	adapter.BeginError = errors.New("busy")
	m := NewManager(adapter, clk, testConfig())

	if err := m.Initialize("HomeNet", "hunter2"); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if m.State() != StateConnected {
		t.Errorf("state: got %s, want CONNECTED", m.State())
	}
}

func TestPollLinkLossFiresHandlerOnce(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	adapter := NewFakeAdapter([]bool{true})
	m := NewManager(adapter, clk, testConfig())

	if err := m.Initialize("HomeNet", "hunter2"); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	states := recordStates(m)
	adapter.SetScript([]bool{false})
	// Arm the backoff so the polls below stay in the waiting window.
	m.lastAttempt = clk.Now()

	for i := 0; i < 5; i++ {
		m.Poll()
		clk.Advance(10 * time.Millisecond)
	}

	if m.State() != StateDisconnected {
		t.Errorf("state: got %s, want DISCONNECTED", m.State())
	}
	if len(*states) != 1 || (*states)[0] != StateDisconnected {
		t.Errorf("transitions: got %v, want [DISCONNECTED]", *states)
	}
}

func TestPollBeforeInitialize(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	adapter := NewFakeAdapter([]bool{false})
	m := NewManager(adapter, clk, testConfig())

	for i := 0; i < 3; i++ {
		m.Poll()
		clk.Advance(10 * time.Second)
	}

	if adapter.BeginCalls != 0 {
		t.Errorf("BeginCalls: got %d, want 0 before Initialize", adapter.BeginCalls)
	}
	if m.State() != StateDisconnected {
		t.Errorf("state: got %s, want DISCONNECTED", m.State())
	}
}

func TestPollReconnectBackoffSpacing(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	adapter := NewFakeAdapter([]bool{false})
	cfg := testConfig()
	cfg.ConnectTimeout = 100 * time.Millisecond
	m := NewManager(adapter, clk, cfg)

	if err := m.Initialize("HomeNet", "hunter2"); !errors.Is(err, ErrConnectTimeout) {
		t.Fatalf("expected timeout, got %v", err)
	}

	// First retry fires immediately: no attempt has been stamped yet.
	m.Poll()
	if adapter.BeginCalls != 2 {
		t.Fatalf("BeginCalls after first retry: got %d, want 2", adapter.BeginCalls)
	}
	if m.Attempts() != 1 {
		t.Errorf("attempts: got %d, want 1", m.Attempts())
	}

	// Each failed attempt burns ~500ms of fake time; stay inside the
	// 5s backoff window and verify no new attempt starts.
	clk.Advance(4 * time.Second)
	m.Poll()
	if adapter.BeginCalls != 2 {
		t.Errorf("BeginCalls inside backoff: got %d, want 2", adapter.BeginCalls)
	}

	// Past the backoff a second attempt starts.
	clk.Advance(1 * time.Second)
	m.Poll()
	if adapter.BeginCalls != 3 {
		t.Errorf("BeginCalls past backoff: got %d, want 3", adapter.BeginCalls)
	}
	if m.Attempts() != 2 {
		t.Errorf("attempts: got %d, want 2", m.Attempts())
	}
}

func TestReconnectSuccessResetsAttempts(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	adapter := NewFakeAdapter([]bool{false})
	cfg := testConfig()
	cfg.ConnectTimeout = 100 * time.Millisecond
	m := NewManager(adapter, clk, cfg)
	states := recordStates(m)

	m.Initialize("HomeNet", "hunter2")

	m.Poll() // attempt 1, fails
	if m.Attempts() != 1 {
		t.Fatalf("attempts after failed retry: got %d, want 1", m.Attempts())
	}

	adapter.SetScript([]bool{true})
	clk.Advance(6 * time.Second)
	m.Poll() // attempt 2, succeeds

	if m.State() != StateConnected {
		t.Errorf("state: got %s, want CONNECTED", m.State())
	}
	if m.Attempts() != 0 {
		t.Errorf("attempts after success: got %d, want 0", m.Attempts())
	}
	if n := len(*states); n == 0 || (*states)[n-1] != StateConnected {
		t.Errorf("last transition: got %v, want CONNECTED", *states)
	}
}

func TestIsConnectedChecksLiveStatus(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	adapter := NewFakeAdapter([]bool{true})
	m := NewManager(adapter, clk, testConfig())

	m.Initialize("HomeNet", "hunter2")
	if !m.IsConnected() {
		t.Fatal("expected IsConnected=true after connect")
	}

	// State machine still says Connected, the adapter disagrees.
	adapter.SetScript([]bool{false})
	if m.IsConnected() {
		t.Error("expected IsConnected=false when adapter reports down")
	}
	if m.State() != StateConnected {
		t.Errorf("IsConnected must not transition: state %s", m.State())
	}
}

func TestDisconnect(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	adapter := NewFakeAdapter([]bool{true})
	m := NewManager(adapter, clk, testConfig())

	m.Initialize("HomeNet", "hunter2")
	states := recordStates(m)

	m.Disconnect()

	if adapter.Disconnects != 1 {
		t.Errorf("Disconnects: got %d, want 1", adapter.Disconnects)
	}
	if m.State() != StateDisconnected {
		t.Errorf("state: got %s, want DISCONNECTED", m.State())
	}
	if len(*states) != 1 || (*states)[0] != StateDisconnected {
		t.Errorf("transitions: got %v, want [DISCONNECTED]", *states)
	}
}

func TestHandlerLastWriterWins(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	adapter := NewFakeAdapter([]bool{true})
	m := NewManager(adapter, clk, testConfig())

	var first, second int
	m.SetStateHandler(func(State) { first++ })
	m.SetStateHandler(func(State) { second++ })

	m.Initialize("HomeNet", "hunter2")

	if first != 0 {
		t.Errorf("replaced handler called %d times, want 0", first)
	}
	if second != 2 { // CONNECTING, CONNECTED
		t.Errorf("active handler called %d times, want 2", second)
	}
}

func TestPollStatusErrorKeepsState(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	adapter := NewFakeAdapter([]bool{true})
	m := NewManager(adapter, clk, testConfig())

	m.Initialize("HomeNet", "hunter2")
	states := recordStates(m)

	adapter.StatusError = errors.New("bus fault")
	m.Poll()

	if m.State() != StateConnected {
		t.Errorf("state after status error: got %s, want CONNECTED", m.State())
	}
	if len(*states) != 0 {
		t.Errorf("expected no transitions on status error, got %v", *states)
	}
}

//go:build !tinygo

package wifi

import (
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/DuongThanhTaii/UE-Bot/internal/clock"
)

// statusCacheTTL bounds how often Status shells out to wpa_cli. Poll
// runs every loop tick; the association state cannot usefully change
// faster than this.
const statusCacheTTL = 500 * time.Millisecond

// WPAAdapter drives a wireless interface through the wpa_supplicant
// control CLI. wpa_cli ships with any Raspberry Pi OS image that has
// wireless enabled.
type WPAAdapter struct {
	iface string
	clk   clock.Clock

	// run executes one wpa_cli command and returns its trimmed output.
	// Replaced in tests.
	run func(args ...string) (string, error)

	// Network id registered by BeginConnection; removed on Disconnect.
	networkID string

	lastStatus   bool
	lastStatusAt time.Time
	haveStatus   bool

	ip  string
	mac string
}

// NewWPAAdapter creates an adapter driving the given interface (for
// example "wlan0") through wpa_cli.
func NewWPAAdapter(iface string, clk clock.Clock) *WPAAdapter {
	a := &WPAAdapter{iface: iface, clk: clk}
	a.run = a.wpaCLI
	return a
}

func (a *WPAAdapter) wpaCLI(args ...string) (string, error) {
	cmd := exec.Command("wpa_cli", append([]string{"-i", a.iface}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("wpa_cli %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// SetMode selects the operating mode. wpa_supplicant always runs as a
// station, so anything else is rejected.
func (a *WPAAdapter) SetMode(mode Mode) error {
	if mode != ModeStation {
		return fmt.Errorf("wifi: unsupported mode %q", mode)
	}
	return nil
}

// BeginConnection registers the network with wpa_supplicant and starts
// association. The network is not written to the supplicant config
// file, so credentials do not persist across restarts.
func (a *WPAAdapter) BeginConnection(ssid, secret string) error {
	id, err := a.run("add_network")
	if err != nil {
		return err
	}

	sets := [][]string{
		{"set_network", id, "ssid", quote(ssid)},
		{"set_network", id, "psk", quote(secret)},
	}
	if secret == "" {
		sets[1] = []string{"set_network", id, "key_mgmt", "NONE"}
	}
	for _, args := range sets {
		out, err := a.run(args...)
		if err != nil {
			return err
		}
		if out != "OK" {
			return fmt.Errorf("wifi: set_network %s: %s", args[2], out)
		}
	}

	// select_network enables this network and disables all others.
	if _, err := a.run("select_network", id); err != nil {
		return err
	}
	a.networkID = id
	a.haveStatus = false
	return nil
}

// Status reports whether the interface is associated and holds an IP
// lease. Results are cached for statusCacheTTL to keep per-tick
// polling cheap.
func (a *WPAAdapter) Status() (bool, error) {
	now := a.clk.Now()
	if a.haveStatus && now.Sub(a.lastStatusAt) < statusCacheTTL {
		return a.lastStatus, nil
	}

	out, err := a.run("status")
	if err != nil {
		return false, err
	}
	fields := parseKeyValues(out)

	a.ip = fields["ip_address"]
	a.mac = fields["address"]
	a.lastStatus = fields["wpa_state"] == "COMPLETED" && a.ip != ""
	a.lastStatusAt = now
	a.haveStatus = true
	return a.lastStatus, nil
}

// Disconnect drops the association and forgets the registered network.
func (a *WPAAdapter) Disconnect() error {
	if a.networkID != "" {
		if _, err := a.run("remove_network", a.networkID); err != nil {
			log.Printf("wifi: remove network: %v", err)
		}
		a.networkID = ""
	}
	_, err := a.run("disconnect")
	a.haveStatus = false
	return err
}

// LocalAddress returns the IP address seen by the most recent status
// poll.
func (a *WPAAdapter) LocalAddress() string { return a.ip }

// HardwareAddress returns the MAC address seen by the most recent
// status poll.
func (a *WPAAdapter) HardwareAddress() string { return a.mac }

// SignalStrength returns the RSSI in dBm, or 0 when the interface is
// not associated.
func (a *WPAAdapter) SignalStrength() int {
	out, err := a.run("signal_poll")
	if err != nil {
		return 0
	}
	rssi, err := strconv.Atoi(parseKeyValues(out)["RSSI"])
	if err != nil {
		return 0
	}
	return rssi
}

// parseKeyValues parses wpa_cli "key=value" line output.
func parseKeyValues(out string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		k, v, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		fields[k] = v
	}
	return fields
}

// quote wraps a value in the double quotes wpa_cli expects for string
// network parameters.
func quote(s string) string {
	return `"` + s + `"`
}

//go:build pyportal || nano_rp2040 || metro_m4_airlift || arduino_mkrwifi1010 || matrixportal_m4

package wifi

import (
	"fmt"
	"log"
	"sync/atomic"

	"tinygo.org/x/drivers/netdev"
	"tinygo.org/x/drivers/netlink"
	"tinygo.org/x/drivers/netlink/probe"
)

// NetlinkAdapter drives the board's onboard radio through the tinygo
// netlink interface. The driver's own connect call blocks, so it runs
// on a goroutine and completion is observed through link events.
type NetlinkAdapter struct {
	link netlink.Netlinker
	dev  netdev.Netdever

	up atomic.Bool
}

// NewNetlinkAdapter probes the board for its radio.
func NewNetlinkAdapter() *NetlinkAdapter {
	a := &NetlinkAdapter{}
	a.link, a.dev = probe.Probe()
	a.link.NetNotify(func(e netlink.Event) {
		switch e {
		case netlink.EventNetUp:
			a.up.Store(true)
		case netlink.EventNetDown:
			a.up.Store(false)
		}
	})
	return a
}

// SetMode selects the operating mode. The onboard radios only join
// existing networks.
func (a *NetlinkAdapter) SetMode(mode Mode) error {
	if mode != ModeStation {
		return fmt.Errorf("wifi: unsupported mode %q", mode)
	}
	return nil
}

// BeginConnection starts association in the background. Progress is
// observed through Status.
func (a *NetlinkAdapter) BeginConnection(ssid, secret string) error {
	go func() {
		err := a.link.NetConnect(&netlink.ConnectParams{
			Ssid:       ssid,
			Passphrase: secret,
		})
		if err != nil {
			log.Printf("wifi: net connect: %v", err)
		}
	}()
	return nil
}

// Status reports the last link event.
func (a *NetlinkAdapter) Status() (bool, error) {
	return a.up.Load(), nil
}

// Disconnect drops the association.
func (a *NetlinkAdapter) Disconnect() error {
	a.link.NetDisconnect()
	a.up.Store(false)
	return nil
}

// LocalAddress returns the interface address, or "" before the link is
// up.
func (a *NetlinkAdapter) LocalAddress() string {
	addr, err := a.dev.Addr()
	if err != nil {
		return ""
	}
	return addr.String()
}

// HardwareAddress is not exposed by the netlink drivers.
func (a *NetlinkAdapter) HardwareAddress() string { return "" }

// SignalStrength is not exposed by the netlink drivers.
func (a *NetlinkAdapter) SignalStrength() int { return 0 }

//go:build pyportal || nano_rp2040 || metro_m4_airlift || arduino_mkrwifi1010 || matrixportal_m4

package led

import "machine"

// MachineLine drives an LED pin through the TinyGo machine package.
type MachineLine struct {
	pin machine.Pin
}

// NewMachineLine drives the given pin. machine.LED selects the board's
// onboard LED.
func NewMachineLine(pin machine.Pin) *MachineLine {
	return &MachineLine{pin: pin}
}

// Configure sets the pin to output.
func (m *MachineLine) Configure() error {
	m.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

// Write sets the pin level.
func (m *MachineLine) Write(level bool) error {
	m.pin.Set(level)
	return nil
}

// Close is a no-op. Pins hold no resources.
func (m *MachineLine) Close() error {
	return nil
}

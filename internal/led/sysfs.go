//go:build !tinygo

package led

import (
	"fmt"
	"os"
	"path/filepath"
)

// SysfsLine drives a kernel LED through the /sys/class/leds interface.
// Useful for onboard LEDs like the Pi's ACT light, which are not
// exposed as GPIO pins.
type SysfsLine struct {
	name string
	root string
}

// NewSysfsLine drives the named kernel LED, for example "ACT".
func NewSysfsLine(name string) *SysfsLine {
	return &SysfsLine{name: name, root: "/sys/class/leds"}
}

// Configure takes the LED away from its kernel trigger so manual
// brightness writes stick.
func (s *SysfsLine) Configure() error {
	if err := s.writeAttr("trigger", "none"); err != nil {
		return fmt.Errorf("clear led trigger: %w", err)
	}
	return nil
}

// Write sets the brightness to full or zero.
func (s *SysfsLine) Write(level bool) error {
	v := "0"
	if level {
		v = "1"
	}
	if err := s.writeAttr("brightness", v); err != nil {
		return fmt.Errorf("set led brightness: %w", err)
	}
	return nil
}

// Close darkens the LED. The trigger stays on "none"; a reboot
// restores the kernel default.
func (s *SysfsLine) Close() error {
	return s.Write(false)
}

func (s *SysfsLine) writeAttr(attr, value string) error {
	return os.WriteFile(filepath.Join(s.root, s.name, attr), []byte(value), 0644)
}

//go:build linux && !tinygo

package led

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// GpiodLine drives an LED pin through the Linux GPIO character device.
type GpiodLine struct {
	chipName string
	pin      int

	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewGpiodLine creates a line on the given chip (usually "gpiochip0")
// and pin, BCM numbering. The pin is claimed on Configure, not here.
func NewGpiodLine(chipName string, pin int) *GpiodLine {
	return &GpiodLine{chipName: chipName, pin: pin}
}

// Configure opens the chip and claims the pin as a low output.
func (g *GpiodLine) Configure() error {
	chip, err := gpiocdev.NewChip(g.chipName)
	if err != nil {
		return fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(g.pin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return fmt.Errorf("request led pin %d: %w", g.pin, err)
	}

	g.chip = chip
	g.line = line
	return nil
}

// Write sets the electrical level.
func (g *GpiodLine) Write(level bool) error {
	v := 0
	if level {
		v = 1
	}
	if err := g.line.SetValue(v); err != nil {
		return fmt.Errorf("set led pin %d: %w", g.pin, err)
	}
	return nil
}

// Close releases the pin. The pin is returned to input first so the
// LED does not stay driven after shutdown.
func (g *GpiodLine) Close() error {
	var errs []error

	if g.line != nil {
		if err := g.line.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure led pin: %w", err))
		}
		if err := g.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close led pin: %w", err))
		}
	}
	if g.chip != nil {
		if err := g.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

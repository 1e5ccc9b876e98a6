//go:build !tinygo

package led

import "fmt"

// Supported line drivers.
const (
	DriverGPIO  = "gpio"  // GPIO character device
	DriverSysfs = "sysfs" // kernel leds class
	DriverNone  = "none"  // no indicator wired
)

// NewLine builds the Line selected by driver. chip and pin apply to
// the gpio driver, name to the sysfs driver.
func NewLine(driver, chip string, pin int, name string) (Line, error) {
	switch driver {
	case DriverGPIO:
		return NewGpiodLine(chip, pin), nil
	case DriverSysfs:
		return NewSysfsLine(name), nil
	case DriverNone, "":
		return NoopLine{}, nil
	default:
		return nil, fmt.Errorf("led: unknown driver %q", driver)
	}
}

// Package led drives a status LED through a selectable output line.
// The real implementations use the Linux GPIO character device or the
// kernel leds class. The fake implementation allows testing without
// hardware.
package led

import "time"

// Pattern selects how the indicator blinks.
type Pattern string

const (
	// Off holds the LED dark.
	Off Pattern = "OFF"
	// On holds the LED lit.
	On Pattern = "ON"
	// BlinkSlow toggles once a second.
	BlinkSlow Pattern = "BLINK_SLOW"
	// BlinkFast toggles five times a second.
	BlinkFast Pattern = "BLINK_FAST"
	// Pulse toggles as fast as the schedule allows.
	Pulse Pattern = "PULSE"
	// DoubleBlink flashes twice, pauses, repeats.
	DoubleBlink Pattern = "DOUBLE_BLINK"
)

// Timings holds the toggle intervals for the blinking patterns.
type Timings struct {
	BlinkSlow        time.Duration
	BlinkFast        time.Duration
	Pulse            time.Duration
	DoubleBlinkPulse time.Duration
	DoubleBlinkPause time.Duration
}

// DefaultTimings returns the stock intervals.
func DefaultTimings() Timings {
	return Timings{
		BlinkSlow:        1000 * time.Millisecond,
		BlinkFast:        200 * time.Millisecond,
		Pulse:            50 * time.Millisecond,
		DoubleBlinkPulse: 100 * time.Millisecond,
		DoubleBlinkPause: 500 * time.Millisecond,
	}
}

// Line is a single digital output.
type Line interface {
	// Configure claims the line and prepares it for output.
	Configure() error

	// Write sets the electrical level.
	Write(level bool) error

	// Close releases the line.
	Close() error
}

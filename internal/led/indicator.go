package led

import (
	"log"
	"time"

	"github.com/DuongThanhTaii/UE-Bot/internal/clock"
)

// Indicator runs blink patterns over a Line. Poll advances the active
// pattern and never blocks, so it can share a loop with other polled
// work.
//
// Not safe for concurrent use. The poll loop owns it.
type Indicator struct {
	line      Line
	clk       clock.Clock
	timings   Timings
	activeLow bool

	pattern    Pattern
	level      bool
	lastToggle time.Time
	phase      int
}

// NewIndicator creates an indicator over the given line. activeLow
// inverts every write for LEDs wired between pin and VCC.
func NewIndicator(line Line, clk clock.Clock, timings Timings, activeLow bool) *Indicator {
	return &Indicator{
		line:      line,
		clk:       clk,
		timings:   timings,
		activeLow: activeLow,
		pattern:   Off,
	}
}

// Initialize claims the line and forces the LED dark.
func (i *Indicator) Initialize() error {
	if err := i.line.Configure(); err != nil {
		return err
	}
	i.level = false
	i.write()
	return nil
}

// SetPattern switches the active pattern and restarts its schedule.
// Setting the current pattern again restarts it too.
func (i *Indicator) SetPattern(p Pattern) {
	i.pattern = p
	i.lastToggle = i.clk.Now()
	i.phase = 0
}

// Pattern returns the active pattern.
func (i *Indicator) Pattern() Pattern { return i.pattern }

// On switches to the On pattern and lights the LED immediately.
func (i *Indicator) On() {
	i.pattern = On
	i.level = true
	i.write()
}

// Off switches to the Off pattern and darkens the LED immediately.
func (i *Indicator) Off() {
	i.pattern = Off
	i.level = false
	i.write()
}

// Toggle flips the logical level. The blink schedule is not touched.
func (i *Indicator) Toggle() {
	i.level = !i.level
	i.write()
}

// Poll advances the active pattern. Call it once per loop tick.
func (i *Indicator) Poll() {
	now := i.clk.Now()
	switch i.pattern {
	case Off:
		i.level = false
		i.write()
	case On:
		i.level = true
		i.write()
	case BlinkSlow:
		i.blink(now, i.timings.BlinkSlow)
	case BlinkFast:
		i.blink(now, i.timings.BlinkFast)
	case Pulse:
		i.blink(now, i.timings.Pulse)
	case DoubleBlink:
		// Phases 0-3 make the two flashes, 4-5 hold the pause.
		interval := i.timings.DoubleBlinkPulse
		if i.phase >= 4 {
			interval = i.timings.DoubleBlinkPause
		}
		if now.Sub(i.lastToggle) > interval {
			i.Toggle()
			i.lastToggle = now
			i.phase = (i.phase + 1) % 6
		}
	}
}

func (i *Indicator) blink(now time.Time, interval time.Duration) {
	if now.Sub(i.lastToggle) > interval {
		i.Toggle()
		i.lastToggle = now
	}
}

// write pushes the logical level to the line, honoring polarity.
func (i *Indicator) write() {
	level := i.level
	if i.activeLow {
		level = !level
	}
	if err := i.line.Write(level); err != nil {
		log.Printf("led: write: %v", err)
	}
}

// Close releases the line.
func (i *Indicator) Close() error {
	return i.line.Close()
}

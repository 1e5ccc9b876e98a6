//go:build !linux && !tinygo

package led

import "errors"

// GpiodLine is not available on non-Linux platforms.
type GpiodLine struct{}

// NewGpiodLine returns a line whose Configure always fails. Keeps the
// package compiling for development on other platforms.
func NewGpiodLine(chipName string, pin int) *GpiodLine {
	return &GpiodLine{}
}

// Configure returns an error on non-Linux platforms.
func (g *GpiodLine) Configure() error {
	return errors.New("led: gpio not supported on this platform (requires Linux)")
}

// Write is not implemented on non-Linux platforms.
func (g *GpiodLine) Write(level bool) error {
	return errors.New("led: gpio not supported")
}

// Close is not implemented on non-Linux platforms.
func (g *GpiodLine) Close() error {
	return nil
}

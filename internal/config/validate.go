package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Wifi.SSID == "" {
		return fmt.Errorf("wifi: ssid is required")
	}
	if cfg.Wifi.TimeoutMs <= 0 {
		return fmt.Errorf("wifi: timeout_ms must be positive, got %d", cfg.Wifi.TimeoutMs)
	}
	if cfg.Wifi.ReconnectDelayMs <= 0 {
		return fmt.Errorf("wifi: reconnect_delay_ms must be positive, got %d", cfg.Wifi.ReconnectDelayMs)
	}
	if cfg.Wifi.StatusPollMs <= 0 {
		return fmt.Errorf("wifi: status_poll_ms must be positive, got %d", cfg.Wifi.StatusPollMs)
	}

	switch cfg.LED.Driver {
	case "gpio", "sysfs", "none":
	default:
		return fmt.Errorf("led: unknown driver %q", cfg.LED.Driver)
	}
	if cfg.LED.Pin < 0 {
		return fmt.Errorf("led: pin must not be negative, got %d", cfg.LED.Pin)
	}
	for _, tm := range []struct {
		name string
		ms   int
	}{
		{"blink_slow_ms", cfg.LED.Timings.BlinkSlowMs},
		{"blink_fast_ms", cfg.LED.Timings.BlinkFastMs},
		{"pulse_ms", cfg.LED.Timings.PulseMs},
		{"double_blink_pulse_ms", cfg.LED.Timings.DoubleBlinkPulseMs},
		{"double_blink_pause_ms", cfg.LED.Timings.DoubleBlinkPauseMs},
	} {
		if tm.ms < 0 {
			return fmt.Errorf("led: %s must not be negative, got %d", tm.name, tm.ms)
		}
	}

	if cfg.PollMs < 1 || cfg.PollMs > 50 {
		return fmt.Errorf("poll_ms must be between 1 and 50, got %d", cfg.PollMs)
	}

	return nil
}

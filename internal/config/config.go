// Package config loads the device configuration from YAML and fills
// in defaults for anything the file leaves unset.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device DeviceConfig `yaml:"device"`
	Wifi   WifiConfig   `yaml:"wifi"`
	LED    LEDConfig    `yaml:"led"`

	// HTTPAddr is the status page listen address. Empty disables the
	// server.
	HTTPAddr string `yaml:"http_addr"`

	// PollMs is the main loop tick interval.
	PollMs int `yaml:"poll_ms"`

	// HeartbeatMs is the heartbeat log interval. Negative disables it.
	HeartbeatMs int `yaml:"heartbeat_ms"`
}

type DeviceConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type WifiConfig struct {
	SSID      string `yaml:"ssid"`
	Password  string `yaml:"password"`
	Interface string `yaml:"interface"`

	TimeoutMs        int `yaml:"timeout_ms"`
	ReconnectDelayMs int `yaml:"reconnect_delay_ms"`
	StatusPollMs     int `yaml:"status_poll_ms"`
}

type LEDConfig struct {
	Driver    string `yaml:"driver"` // gpio, sysfs or none
	Chip      string `yaml:"chip"`
	Pin       int    `yaml:"pin"`
	Name      string `yaml:"name"`
	ActiveLow bool   `yaml:"active_low"`

	Timings TimingsConfig `yaml:"timings"`
}

// TimingsConfig overrides the pattern toggle intervals. Zero fields
// keep the stock interval.
type TimingsConfig struct {
	BlinkSlowMs        int `yaml:"blink_slow_ms"`
	BlinkFastMs        int `yaml:"blink_fast_ms"`
	PulseMs            int `yaml:"pulse_ms"`
	DoubleBlinkPulseMs int `yaml:"double_blink_pulse_ms"`
	DoubleBlinkPauseMs int `yaml:"double_blink_pause_ms"`
}

// Load reads the YAML file at path. An empty path returns the
// defaults. The result has defaults applied but is neither normalized
// nor validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	ApplyDefaults(cfg)
	return cfg, nil
}

// ApplyDefaults fills zero-valued fields. Explicit file values win.
func ApplyDefaults(cfg *Config) {
	if cfg.Device.ID == "" {
		cfg.Device.ID = "uebot-001"
	}
	if cfg.Device.Name == "" {
		cfg.Device.Name = "UE-Bot Voice Module"
	}

	if cfg.Wifi.Interface == "" {
		cfg.Wifi.Interface = "wlan0"
	}
	if cfg.Wifi.TimeoutMs == 0 {
		cfg.Wifi.TimeoutMs = 30000
	}
	if cfg.Wifi.ReconnectDelayMs == 0 {
		cfg.Wifi.ReconnectDelayMs = 5000
	}
	if cfg.Wifi.StatusPollMs == 0 {
		cfg.Wifi.StatusPollMs = 500
	}

	if cfg.LED.Driver == "" {
		cfg.LED.Driver = "gpio"
	}
	if cfg.LED.Chip == "" {
		cfg.LED.Chip = "gpiochip0"
	}
	if cfg.LED.Pin == 0 {
		cfg.LED.Pin = 2
	}
	if cfg.LED.Name == "" {
		cfg.LED.Name = "ACT"
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.PollMs == 0 {
		cfg.PollMs = 10
	}
	if cfg.HeartbeatMs == 0 {
		cfg.HeartbeatMs = 30000
	}
}

// Duration accessors for the millisecond fields.

func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.Wifi.TimeoutMs) * time.Millisecond
}

func (c *Config) ReconnectBackoff() time.Duration {
	return time.Duration(c.Wifi.ReconnectDelayMs) * time.Millisecond
}

func (c *Config) StatusPollInterval() time.Duration {
	return time.Duration(c.Wifi.StatusPollMs) * time.Millisecond
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollMs) * time.Millisecond
}

func (c *Config) HeartbeatInterval() time.Duration {
	return time.Duration(c.HeartbeatMs) * time.Millisecond
}

package config

import "strings"

// Normalize applies pre-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.LED.Driver = strings.ToLower(cfg.LED.Driver)

	// "off" is friendlier than an empty string in YAML.
	if strings.EqualFold(cfg.HTTPAddr, "off") {
		cfg.HTTPAddr = ""
	}
}

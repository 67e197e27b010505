// Package config holds the runtime configuration for the capture tool,
// loaded from an HCL file with environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/hcl"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "RSACAP_"

// Config is the full tool configuration.
type Config struct {
	Device  Device  `koanf:"device"`
	Capture Capture `koanf:"capture"`
	Log     Log     `koanf:"log"`
}

// Device selects and configures the device backend.
type Device struct {
	Simulated         bool   `koanf:"simulated"`
	ID                int    `koanf:"id"`
	ExternalReference bool   `koanf:"external_reference"`
	FreqRefSource     string `koanf:"frequency_reference_source"`
}

// Capture sets the acquisition parameters.
type Capture struct {
	Frequency      float64 `koanf:"frequency"`
	ReferenceLevel float64 `koanf:"reference_level"`
	SampleRate     float64 `koanf:"sample_rate"`
	Samples        int     `koanf:"samples"`
	Skip           int     `koanf:"skip"`
	Attempts       int     `koanf:"attempts"`
	Output         string  `koanf:"output"`
}

// Log configures logging.
type Log struct {
	Level string `koanf:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Device: Device{
			Simulated:     true,
			FreqRefSource: "INTERNAL",
		},
		Capture: Capture{
			Frequency:      1.5e9,
			ReferenceLevel: -25,
			SampleRate:     14e6,
			Samples:        1 << 20,
			Output:         "capture.iq",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the configuration file at path (optional) and applies
// RSACAP_-prefixed environment overrides on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), hcl.Parser(true)); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return strings.Replace(key, "_", ".", 1), value
		},
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("load environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

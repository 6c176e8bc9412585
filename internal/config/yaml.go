// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration structure, loaded from YAML.
type Config struct {
	Debug    bool        `yaml:"debug"`     // Enable debug mode (verbose logging).
	LogLevel string      `yaml:"log_level"` // Logging level (e.g., "debug", "info", "warn", "error").
	Set      SetConfig   `yaml:"set"`       // Rate mutation and verification settings.
	Probe    ProbeConfig `yaml:"probe"`     // Rate probing settings for the PortAudio adapter.
}

// SetConfig holds settings for the sample-rate write and its verification.
type SetConfig struct {
	SettleDelay     time.Duration `yaml:"settle_delay"`     // Pause after a successful write, granted to the driver.
	VerifyPolls     int           `yaml:"verify_polls"`     // Number of read-back attempts before giving up.
	VerifyInterval  time.Duration `yaml:"verify_interval"`  // Pause between read-back attempts.
	VerifyTolerance float64       `yaml:"verify_tolerance"` // Accepted deviation between target and read-back rate (Hz).
}

// ProbeConfig holds settings for approximating the supported-rate set on
// platforms whose driver does not publish range metadata.
type ProbeConfig struct {
	CandidateRates []float64 `yaml:"candidate_rates"` // Rates tested for device support, in Hz.
}

// LoadConfig loads configuration from a YAML file specified by path. If path is
// empty, it searches default locations ("ratectl.yaml"). If no file is found,
// it uses built-in defaults. After loading defaults or from file, it applies
// environment variable overrides and validates the final configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := Config{
		Debug:    false,
		LogLevel: DefaultLogLevel,
		Set: SetConfig{
			SettleDelay:     DefaultSettleDelay,
			VerifyPolls:     DefaultVerifyPolls,
			VerifyInterval:  DefaultVerifyInterval,
			VerifyTolerance: DefaultVerifyTolerance,
		},
		Probe: ProbeConfig{
			CandidateRates: append([]float64(nil), DefaultCandidateRates...),
		},
	}

	if path == "" {
		candidates := []string{
			"ratectl.yaml",
		}
		found := false
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				found = true
				break
			}
		}
		if !found {
			cfg.applyEnvOverrides()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid default configuration: %w", err)
			}
			return &cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides AFTER loading from file.
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Set.SettleDelay < 0 {
		return fmt.Errorf("set.settle_delay must not be negative")
	}
	if c.Set.VerifyPolls < 1 {
		return fmt.Errorf("set.verify_polls must be at least 1")
	}
	if c.Set.VerifyInterval < 0 {
		return fmt.Errorf("set.verify_interval must not be negative")
	}
	if c.Set.VerifyTolerance <= 0 {
		return fmt.Errorf("set.verify_tolerance must be positive")
	}
	for _, rate := range c.Probe.CandidateRates {
		if rate <= 0 {
			return fmt.Errorf("probe.candidate_rates contains non-positive rate %v", rate)
		}
	}
	return nil
}

// applyEnvOverrides applies RATECTL_-prefixed environment variables on top
// of the loaded configuration.
func (cfg *Config) applyEnvOverrides() {
	// RATECTL_DEBUG
	if val, ok := os.LookupEnv("RATECTL_DEBUG"); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			cfg.Debug = bVal
		}
	}

	// RATECTL_LOG_LEVEL
	if val, ok := os.LookupEnv("RATECTL_LOG_LEVEL"); ok {
		cfg.LogLevel = val
	}

	// RATECTL_SETTLE_DELAY
	if val, ok := os.LookupEnv("RATECTL_SETTLE_DELAY"); ok {
		if dur, err := time.ParseDuration(val); err == nil {
			cfg.Set.SettleDelay = dur
		}
	}

	// RATECTL_VERIFY_INTERVAL
	if val, ok := os.LookupEnv("RATECTL_VERIFY_INTERVAL"); ok {
		if dur, err := time.ParseDuration(val); err == nil {
			cfg.Set.VerifyInterval = dur
		}
	}

	// RATECTL_VERIFY_POLLS
	if val, ok := os.LookupEnv("RATECTL_VERIFY_POLLS"); ok {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Set.VerifyPolls = n
		}
	}
}

// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hantek2d72

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the persisted instrument settings. It is read at startup and
// written back after each setting change.
type Config struct {
	ChannelEnable [2]bool `json:"channel_enable"`
	TimeScale     int     `json:"time_scale"`
	TimeOffset    float64 `json:"time_offset"`
	TriggerSource int     `json:"trigger_source"`
	TriggerLevel  float64 `json:"trigger_level"`
	AWGFrequency  float64 `json:"awg_frequency"`
	AWGAmplitude  float64 `json:"awg_amplitude"`
	AWGOffset     float64 `json:"awg_offset"`
	NumSamples    int     `json:"num_samples"`
}

// UnmarshalJSON implements the Unmarshaler interface for Config, rejecting
// sample counts that could never fit a capture.
func (cfg *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	p := plain(*cfg)
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.NumSamples < 0 {
		return fmt.Errorf("num_samples must not be negative, got %d", p.NumSamples)
	}
	*cfg = Config(p)
	return nil
}

// DefaultConfig returns the factory settings used when no configuration
// file exists yet.
func DefaultConfig() Config {
	return Config{
		ChannelEnable: [2]bool{true, true},
		AWGFrequency:  1000.0,
		AWGAmplitude:  2.5,
		AWGOffset:     0.0,
		NumSamples:    1200,
	}
}

// EnabledChannelCount returns how many scope channels are enabled.
func (cfg *Config) EnabledChannelCount() int {
	count := 0
	for _, enabled := range cfg.ChannelEnable {
		if enabled {
			count++
		}
	}
	return count
}

// DefaultConfigPath returns the per-user location of the configuration
// file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error finding home directory: %s", err)
	}
	return filepath.Join(home, ".config", "Hantek2D72", "Hantek.cfg"), nil
}

// LoadConfig reads the configuration from the given path. A missing file is
// not an error: the defaults are written there and returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("error reading config %s: %s", path, err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config %s: %s", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to the given path, creating the
// directory if needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %s", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %s", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config %s: %s", path, err)
	}
	return nil
}

// ABOUTME: YAML configuration for session limit and device buffer
// ABOUTME: Loads config.yaml with defaults when the file is absent
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the operator-tunable settings. Stimulus parameters are
// deliberately not configurable; they are fixed constants in the
// stimulus package.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Audio   AudioConfig   `yaml:"audio"`
}

// SessionConfig holds session tracking settings.
type SessionConfig struct {
	// LimitMinutes pauses stimulation automatically after this many
	// minutes of stream time. Zero or negative disables the limit.
	LimitMinutes int `yaml:"limitMinutes"`
}

// AudioConfig holds output device settings.
type AudioConfig struct {
	// BufferMs is the requested device buffer length in milliseconds.
	// Smaller buffers make control changes audible sooner at the cost
	// of underrun headroom.
	BufferMs int `yaml:"bufferMs"`
}

const (
	defaultLimitMinutes = 60
	defaultBufferMs     = 23
)

// Default returns the stock configuration: a 60 minute session limit
// and a 23ms device buffer, about 1024 samples at 44100Hz.
func Default() *Config {
	return &Config{
		Session: SessionConfig{LimitMinutes: defaultLimitMinutes},
		Audio:   AudioConfig{BufferMs: defaultBufferMs},
	}
}

// Load reads the config file at path. Returns Default() when the file
// doesn't exist (no error).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Limit returns the session limit as a duration, zero when disabled.
func (c *Config) Limit() time.Duration {
	if c.Session.LimitMinutes <= 0 {
		return 0
	}
	return time.Duration(c.Session.LimitMinutes) * time.Minute
}

// Buffer returns the device buffer length, falling back to the default
// when the configured value is not positive.
func (c *Config) Buffer() time.Duration {
	ms := c.Audio.BufferMs
	if ms <= 0 {
		ms = defaultBufferMs
	}
	return time.Duration(ms) * time.Millisecond
}

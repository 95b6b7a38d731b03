// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the JanAccess client.
//
// Configuration is resolved in order of precedence:
//   - environment variables (JANACCESS_*)
//   - ~/.janaccess/config.toml
//   - built-in defaults
//
// The client mirrors the original dashboard's runtime knobs: the backend
// origin, the preferred locale, and the low-bandwidth default. Audio command
// overrides exist for systems where the autodetected capture/playback tools
// are not the right ones.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete client configuration.
type Config struct {
	API   APIConfig   `toml:"api"`
	UI    UIConfig    `toml:"ui"`
	Audio AudioConfig `toml:"audio"`

	// Debug enables debug-level logging to the client log file.
	Debug bool `toml:"debug"`
}

// APIConfig configures the backend gateway connection.
type APIConfig struct {
	// BaseURL is the backend origin (without the /api prefix).
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the per-request deadline in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	// Locale selects the message catalog: en, hi, ta, bn.
	Locale string `toml:"locale"`
	// LowBandwidth starts the session with audio suppressed.
	LowBandwidth bool `toml:"low_bandwidth"`
	// Persona preselects a persona, skipping the landing screen.
	Persona string `toml:"persona"`
}

// AudioConfig overrides the autodetected audio tools.
type AudioConfig struct {
	// RecordCommand names the capture binary (arecord, sox, ffmpeg).
	RecordCommand string `toml:"record_command"`
	// PlayCommand names the playback binary (ffplay, mpv, paplay, afplay).
	PlayCommand string `toml:"play_command"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultBaseURL matches the backend's development address.
const DefaultBaseURL = "http://127.0.0.1:8000"

// DefaultTimeout is the fixed upper bound on request wait time.
const DefaultTimeout = 30 * time.Second

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     DefaultBaseURL,
			TimeoutSecs: int(DefaultTimeout / time.Second),
		},
		UI: UIConfig{
			Locale: "en",
		},
	}
}

// Timeout returns the request deadline as a duration.
func (c *APIConfig) Timeout() time.Duration {
	if c.TimeoutSecs <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSecs) * time.Second
}

// =============================================================================
// LOADING
// =============================================================================

// Path returns the config file location (~/.janaccess/config.toml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".janaccess", "config.toml"), nil
}

// Load resolves the configuration from defaults, the config file, and the
// environment, then validates it.
func Load() (*Config, error) {
	cfg := Default()

	if path, err := Path(); err == nil {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the TOML file at path into cfg. A missing file is fine.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("JANACCESS_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("JANACCESS_LOCALE"); v != "" {
		cfg.UI.Locale = v
	}
	if v := os.Getenv("JANACCESS_PERSONA"); v != "" {
		cfg.UI.Persona = v
	}
	if v := os.Getenv("JANACCESS_LOW_BANDWIDTH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.LowBandwidth = b
		}
	}
	if v := os.Getenv("JANACCESS_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

// Validate checks the configuration for values the client cannot work with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url scheme %q is not supported", u.Scheme)
	}
	if c.API.TimeoutSecs < 0 {
		return fmt.Errorf("api.timeout_secs must not be negative")
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// SetGlobal installs the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// Global returns the process-wide configuration, or defaults if Load was
// never called.
func Global() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalCfg == nil {
		return Default()
	}
	return globalCfg
}

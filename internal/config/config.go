// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for lekat.
//
// Configuration lives in TOML with sensible defaults and environment
// variable overrides.
//
// Configuration file locations (in order of precedence):
//   - ~/.lekat/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lekatlabs/lekat-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete lekat configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Server holds the chat service connection settings.
	Server ServerConfig `toml:"server" json:"server"`

	// UI holds terminal interface settings.
	UI UIConfig `toml:"ui" json:"ui"`

	// Log holds logging settings.
	Log LogConfig `toml:"log" json:"log"`
}

// ServerConfig contains chat service connection settings.
type ServerConfig struct {
	// URL is the service root, e.g. "http://localhost:5000".
	URL string `toml:"url" json:"url"`

	// SessionID identifies the chat session in endpoint paths.
	SessionID string `toml:"session_id" json:"session_id"`

	// SessionCookie is the opaque session cookie value issued at
	// login. Sent as-is with every request.
	SessionCookie string `toml:"session_cookie" json:"session_cookie"`

	// TimeoutSeconds bounds read and send requests.
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds"`

	// AnalyzeTimeoutSeconds bounds analyze requests. A fresh analysis
	// runs the full model pipeline and needs more headroom.
	AnalyzeTimeoutSeconds int `toml:"analyze_timeout_seconds" json:"analyze_timeout_seconds"`
}

// UIConfig contains terminal interface settings.
type UIConfig struct {
	// Theme selects the color theme: "auto", "dark", "light".
	Theme string `toml:"theme" json:"theme"`

	// ReloadSeconds is the interval for background history refresh.
	// Zero disables periodic reload.
	ReloadSeconds int `toml:"reload_seconds" json:"reload_seconds"`

	// ShowTimestamps toggles per-message timestamps in the pane.
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level"`
}

// Timeout returns the read/send timeout as a duration.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// AnalyzeTimeout returns the analyze timeout as a duration.
func (s ServerConfig) AnalyzeTimeout() time.Duration {
	return time.Duration(s.AnalyzeTimeoutSeconds) * time.Second
}

// ReloadInterval returns the history refresh interval as a duration.
func (u UIConfig) ReloadInterval() time.Duration {
	return time.Duration(u.ReloadSeconds) * time.Second
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			URL:                   "http://localhost:5000",
			TimeoutSeconds:        15,
			AnalyzeTimeoutSeconds: 120,
		},
		UI: UIConfig{
			Theme:          "auto",
			ReloadSeconds:  30,
			ShowTimestamps: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the lekat configuration directory (~/.lekat).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".lekat"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the config directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration, falling back to defaults when no
// file exists. Environment overrides apply last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath reads configuration from an explicit file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over an existing config.
func LoadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Save writes the configuration to the default path atomically.
// The file holds a session cookie, so keep permissions tight.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.URL != "" {
		u, err := url.Parse(c.Server.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return ValidationError{Field: "server.url", Message: "must be an http(s) URL"}
		}
	}
	if c.Server.TimeoutSeconds < 0 {
		return ValidationError{Field: "server.timeout_seconds", Message: "must not be negative"}
	}
	if c.Server.AnalyzeTimeoutSeconds < 0 {
		return ValidationError{Field: "server.analyze_timeout_seconds", Message: "must not be negative"}
	}
	if c.UI.ReloadSeconds < 0 {
		return ValidationError{Field: "ui.reload_seconds", Message: "must not be negative"}
	}
	switch c.UI.Theme {
	case "", "auto", "dark", "light":
	default:
		return ValidationError{Field: "ui.theme", Message: "must be auto, dark, or light"}
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return ValidationError{Field: "log.level", Message: "must be debug, info, warn, or error"}
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies LEKAT_* environment variables on top of
// the loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("LEKAT_SERVER_URL"); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv("LEKAT_SESSION_ID"); v != "" {
		c.Server.SessionID = v
	}
	if v := os.Getenv("LEKAT_SESSION_COOKIE"); v != "" {
		c.Server.SessionCookie = v
	}
	if v := os.Getenv("LEKAT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LEKAT_RELOAD_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.UI.ReloadSeconds = n
		}
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first
// use. Load failures fall back to defaults.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ReloadGlobal re-reads the configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

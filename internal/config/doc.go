// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for lekat.
//
// TOML configuration with sensible defaults, environment variable
// overrides, validation, and hot reload via a file watcher.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ServerConfig: Chat service connection settings
//   - UIConfig: Terminal interface settings
//   - Watcher: Reloads the config when the file changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (LEKAT_*)
//   - ~/.lekat/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	base := cfg.Server.URL
//	timeout := cfg.Server.Timeout()
package config

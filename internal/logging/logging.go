// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the process-wide zerolog logger.
//
// The TUI owns stdout, so logs go to a file under the config
// directory. The plain CLI mode reuses the same setup.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFileName is the log file under the config directory.
const logFileName = "lekat.log"

// Setup initializes the global logger writing to dir/lekat.log at
// the given level. It returns a closer for the log file and never
// fails hard: when the file cannot be opened, logs are discarded.
func Setup(dir, level string) io.Closer {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if err := os.MkdirAll(dir, 0700); err != nil {
		log.Logger = zerolog.New(io.Discard)
		return noopCloser{}
	}

	path := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		log.Logger = zerolog.New(io.Discard)
		return noopCloser{}
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

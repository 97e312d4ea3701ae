// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the plain line mode
// for lekat.
//
// The full-screen TUI is the default command. Plain mode
// (lekat --plain) covers dumb terminals and pipes: a line-based REPL
// with the same chat, reload, and analyze operations, with the
// analysis report rendered as markdown via glamour.
//
// # Commands
//
//   - (default): launch the TUI
//   - plain: line-mode chat
//   - version: print version information
//   - help: print usage
//
// Flags --server, --session, and --config override the corresponding
// configuration values for one invocation.
package cli

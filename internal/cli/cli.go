// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for lekat.
//
// The TUI is the default command; everything else is a small set of
// subcommands and flags.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information, synced from main at startup.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command identifies what main should run.
type Command int

const (
	// CmdTUI launches the full-screen terminal interface.
	CmdTUI Command = iota

	// CmdPlain runs the dumb-terminal line mode.
	CmdPlain

	// CmdVersion prints version information.
	CmdVersion

	// CmdHelp prints usage.
	CmdHelp
)

// Options are the parsed command-line options.
type Options struct {
	// ServerURL overrides server.url from the config.
	ServerURL string

	// SessionID overrides server.session_id from the config.
	SessionID string

	// ConfigPath loads configuration from an explicit file.
	ConfigPath string
}

// Parse reads os.Args and returns the command plus options.
// Unknown flags fall through to help with a note on stderr.
func Parse() (Command, Options) {
	var opts Options
	cmd := CmdTUI

	args := os.Args[1:]
	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "version" || arg == "--version" || arg == "-v":
			return CmdVersion, opts
		case arg == "help" || arg == "--help" || arg == "-h":
			return CmdHelp, opts
		case arg == "--plain" || arg == "plain":
			cmd = CmdPlain
			i++
		case arg == "--server":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--server requires a value")
				return CmdHelp, opts
			}
			opts.ServerURL = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--server="):
			opts.ServerURL = strings.TrimPrefix(arg, "--server=")
			i++
		case arg == "--session":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--session requires a value")
				return CmdHelp, opts
			}
			opts.SessionID = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--session="):
			opts.SessionID = strings.TrimPrefix(arg, "--session=")
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--config requires a value")
				return CmdHelp, opts
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			i++
		default:
			fmt.Fprintf(os.Stderr, "unknown argument: %s\n", arg)
			return CmdHelp, opts
		}
	}
	return cmd, opts
}

// PrintVersion prints version information to stdout.
func PrintVersion() {
	fmt.Printf("lekat %s (%s, built %s)\n", Version, GitCommit, BuildDate)
}

// PrintUsage prints command usage to stdout.
func PrintUsage() {
	fmt.Print(`lekat - terminal client for the Lekat conversation analysis service

Usage:
  lekat [flags]          Launch the TUI (default)
  lekat --plain          Line-mode chat for dumb terminals
  lekat version          Print version
  lekat help             Print this help

Flags:
  --server URL           Override the configured server URL
  --session ID           Override the configured session ID
  --config PATH          Load configuration from an explicit file

In the TUI: enter sends, ctrl+a runs the analysis once five of your
messages are in, ctrl+r reloads history, ctrl+c quits.

In plain mode: type a message and press enter; /analyze runs the
analysis, /reload refreshes history, /quit exits.
`)
}

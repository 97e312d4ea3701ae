// lekat - a terminal client for the Lekat conversation analysis service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/lekatlabs/lekat-tui/internal/api"
	"github.com/lekatlabs/lekat-tui/internal/cli"
	"github.com/lekatlabs/lekat-tui/internal/config"
	"github.com/lekatlabs/lekat-tui/internal/logging"
	"github.com/lekatlabs/lekat-tui/internal/storage"
	"github.com/lekatlabs/lekat-tui/internal/ui/chat"
	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, opts := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
		return
	case cli.CmdHelp:
		cli.PrintUsage()
		return
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lekat: %v\n", err)
		os.Exit(1)
	}

	dir, err := config.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lekat: %v\n", err)
		os.Exit(1)
	}
	closer := logging.Setup(dir, cfg.Log.Level)
	defer closer.Close()

	client := api.NewClient(cfg.Server.URL, cfg.Server.SessionID).
		WithSessionCookie(cfg.Server.SessionCookie).
		WithTimeout(cfg.Server.Timeout()).
		WithAnalyzeTimeout(cfg.Server.AnalyzeTimeout())
	if !client.IsConfigured() {
		fmt.Fprintln(os.Stderr, "lekat: no server configured; set server.url in the config or pass --server")
		os.Exit(1)
	}

	if cmd == cli.CmdPlain || !cli.IsTerminal() {
		if err := cli.HandlePlainChat(client); err != nil {
			fmt.Fprintf(os.Stderr, "lekat: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The cache is optional; a broken local database degrades to
	// online-only operation rather than blocking the chat.
	cache, err := storage.Open(dir)
	if err != nil {
		log.Warn().Err(err).Msg("local cache unavailable")
		cache = nil
	}
	if cache != nil {
		defer cache.Close()
	}

	theme := styles.NewTheme()
	m := chat.New(theme, client, cache, cfg)

	program := tea.NewProgram(m, tea.WithAltScreen())

	watcher, err := config.NewWatcher(func(updated *config.Config) {
		program.Send(chat.ConfigReloadedMsg{Config: updated})
	})
	if err != nil {
		log.Warn().Err(err).Msg("config watcher unavailable")
	} else {
		if err := watcher.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watcher failed to start")
		}
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lekat: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration from file, environment, and flags,
// in increasing order of precedence.
func loadConfig(opts cli.Options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFromPath(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.ServerURL != "" {
		cfg.Server.URL = opts.ServerURL
	}
	if opts.SessionID != "" {
		cfg.Server.SessionID = opts.SessionID
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	config.SetGlobal(cfg)
	return cfg, nil
}

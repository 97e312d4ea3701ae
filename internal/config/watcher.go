// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// Watcher reloads the global configuration when the config file
// changes on disk and notifies subscribers. Editors often replace
// files with rename+create, so the watcher monitors the directory
// rather than the file itself.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	mu       sync.Mutex
	lastFire time.Time
	onChange func(*Config)

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for the default config path.
// onChange runs after each successful reload with the new config.
func NewWatcher(onChange func(*Config)) (*Watcher, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		watcher:  fsw,
		path:     path,
		debounce: 500 * time.Millisecond,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching for config changes.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents handles fsnotify events until the watcher closes.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.handleChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("config watcher error")
		}
	}
}

// handleChange reloads the config, debouncing editor write bursts.
func (w *Watcher) handleChange() {
	w.mu.Lock()
	if time.Since(w.lastFire) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.lastFire = time.Now()
	w.mu.Unlock()

	if err := ReloadGlobal(); err != nil {
		log.Warn().Err(err).Msg("config reload failed, keeping previous config")
		return
	}
	log.Info().Str("path", w.path).Msg("config reloaded")
	if w.onChange != nil {
		w.onChange(Global())
	}
}

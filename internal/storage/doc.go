// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the local cache for lekat.
//
// The server is authoritative for all chat and analysis state; this
// cache only makes the client pleasant offline. It keeps the last
// fetched transcript per session and the last successful analysis
// report, both in a small sqlite database under ~/.lekat.
//
// Every operation is best-effort: callers log failures and move on.
// A missing or corrupt database degrades the client to online-only
// operation, never blocks it.
//
// # Usage
//
//	cache, err := storage.Open(dir)
//	if err == nil {
//	    defer cache.Close()
//	    _ = cache.SaveTranscript(sessionID, msgs)
//	}
//
// Reports loaded from the cache come back with Cached set, so the
// renderer shows the stored-result banner.
package storage

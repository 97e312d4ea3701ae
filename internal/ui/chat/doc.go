// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the main chat view for the lekat TUI.

The chat package implements the full-screen conversation interface
using Bubble Tea: the scrolling transcript, the composer, the
analysis modal, and the status bar.

# Model (model.go)

The Model struct is the central Bubble Tea model:
  - the conversation transcript, reloaded from the server
  - composer input with multi-line support (shift+enter)
  - in-flight guards so at most one send and one analysis run
  - the analysis gate derived from the user message count

# Update Loop (update.go)

Handles keyboard input and the async result messages from commands:
history loads, send results, analysis results, reload ticks, and
config hot-reloads. Failure routing follows one rule: send and
analyze failures block until dismissed, history failures are a
status-bar notice and nothing more.

# Commands (commands.go)

tea.Cmd constructors for the server round-trips. Each command
captures its inputs before the closure so the model can keep
changing while requests run. History loads and analyze failures
fall back to the local cache when one is available.

# View (view.go)

Renders header, transcript viewport, composer, and status bar.
The error overlay and the analysis modal render over everything
else when open.

# Session Lifecycle

A successful analysis delivers the verdict and locks the composer:
the session is complete, and the report stays available on ctrl+a.
*/
package chat

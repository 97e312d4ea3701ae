// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the lekat TUI.

Each component is built on Bubble Tea and Lip Gloss and accepts a
*styles.Theme for consistent styling.

# Display Components

Header (header.go) - application header with the server URL.
StatusBar (statusbar.go) - session, message counts, the analysis gate
state, transient notices, and key hints.
MessageBubble / MessageList (message.go) - styled chat bubbles: user
messages right-aligned in blue, bot messages left-aligned in purple.

# Overlays

AnalysisModal (modal.go) - the full-screen analysis report overlay
with a scrollable viewport. Holds the last report so reopening
renders without a new request.
ErrorDisplay (error.go) - blocking error overlay for send and
analyze failures, with recovery suggestions per failure kind.

# Feedback

Spinner (spinner.go) - ASCII spinner shown while a request is in
flight.

All server-supplied text is passed through util.SanitizeControl
before rendering, so transcripts cannot inject terminal escapes.
*/
package components

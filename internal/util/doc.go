// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the lekat application.
//
// This package contains common helper functions used throughout the
// application for string display, sanitization, type conversion, and
// file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth, PadWidth: display-width aware truncation and padding
//   - SanitizeControl, SanitizeLine: strip control characters from
//     server-supplied text before terminal output
//
// Type Conversion:
//   - IntToString, FloatToStringPrec: numeric to string conversion
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util

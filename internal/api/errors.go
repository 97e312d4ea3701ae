// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for client misconfiguration.
var (
	// ErrNotConfigured indicates the client has no base URL or session.
	ErrNotConfigured = errors.New("api: client not configured")

	// ErrEmptyMessage indicates a send was attempted with no content.
	ErrEmptyMessage = errors.New("api: empty message")
)

// =============================================================================
// ERROR TAXONOMY
// =============================================================================
//
// Failures split into three kinds so the UI can phrase them correctly:
//
//   - TransportError: the request never produced a usable HTTP response
//     (dial failure, TLS, timeout, interrupted body read).
//   - ParseError: a 2xx response whose body did not decode as the
//     expected shape.
//   - APIError: the server answered with a non-2xx status.
//
// None of these are retried automatically; every retry is user-initiated.

// TransportError wraps a network-level failure.
type TransportError struct {
	Op  string // "read", "send", "analyze"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError wraps a malformed success response.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error during %s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the service.
type APIError struct {
	Op     string
	Status int

	// Message is the server-provided error text when the body carried
	// a JSON {"error": ...} object, otherwise a generic status line.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed: %s (HTTP %d)", e.Op, e.Message, e.Status)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsParse reports whether err is (or wraps) a ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

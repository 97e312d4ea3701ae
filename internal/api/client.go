// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the lekat chat service.
//
// The service exposes three session-scoped endpoints: read (history),
// send (post a message, receive the bot reply), and analyze (run the
// attachment-style analysis over the transcript). The client is a thin
// transport layer: it never interprets report contents and never
// retries on its own.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lekatlabs/lekat-tui/internal/model"
)

// Configuration constants for the chat service API.
const (
	// DefaultTimeout is the timeout for read and send requests.
	DefaultTimeout = 15 * time.Second

	// DefaultAnalyzeTimeout is the timeout for analyze requests.
	// A fresh analysis runs the full model pipeline server-side and
	// can take considerably longer than a chat round-trip.
	DefaultAnalyzeTimeout = 120 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit

	// sessionCookieName is the cookie the service issues at login.
	sessionCookieName = "session"
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP client for all chat service requests; per-request
// deadlines come from contexts, not a client-level timeout.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// errorResponse is the JSON error body the service emits on failures.
type errorResponse struct {
	Error string `json:"error"`
}

// historyMessage is the wire shape of one message from the read endpoint.
type historyMessage struct {
	ID        int    `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// historyTimeLayout is the created_at format the service emits.
const historyTimeLayout = "2006-01-02 15:04:05"

// SendResult is the response from the send endpoint: the canonical
// user text as stored and the bot reply.
type SendResult struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a session-scoped client for the chat service.
type Client struct {
	baseURL        string
	sessionID      string
	sessionCookie  string
	httpClient     *http.Client
	timeout        time.Duration
	analyzeTimeout time.Duration
}

// NewClient creates a client for one chat session.
//
// baseURL is the service root (e.g. "http://localhost:5000") and
// sessionID identifies the chat session in the URL path. If either is
// empty the client is still created but requests fail with
// ErrNotConfigured.
func NewClient(baseURL, sessionID string) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		sessionID:      sessionID,
		httpClient:     sharedHTTPClient,
		timeout:        DefaultTimeout,
		analyzeTimeout: DefaultAnalyzeTimeout,
	}
}

// WithSessionCookie sets the session cookie value sent with every
// request. The client treats it as opaque.
func (c *Client) WithSessionCookie(value string) *Client {
	c.sessionCookie = value
	return c
}

// WithTimeout sets the timeout for read and send requests.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if timeout > 0 {
		c.timeout = timeout
	}
	return c
}

// WithAnalyzeTimeout sets the timeout for analyze requests.
func (c *Client) WithAnalyzeTimeout(timeout time.Duration) *Client {
	if timeout > 0 {
		c.analyzeTimeout = timeout
	}
	return c
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// IsConfigured reports whether the client can make requests.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.sessionID != ""
}

// SessionID returns the session this client is bound to.
func (c *Client) SessionID() string {
	return c.sessionID
}

// endpoint builds the URL for one of the session operations.
func (c *Client) endpoint(op string) string {
	return fmt.Sprintf("%s/chat/%s/%s", c.baseURL, url.PathEscape(c.sessionID), op)
}

// =============================================================================
// OPERATIONS
// =============================================================================

// ReadHistory fetches the full transcript, ordered by creation time.
func (c *Client) ReadHistory(ctx context.Context) ([]*model.Message, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("read"), nil)
	if err != nil {
		return nil, &TransportError{Op: "read", Err: err}
	}
	c.setHeaders(req)

	body, err := c.do("read", req)
	if err != nil {
		return nil, err
	}

	var wire []historyMessage
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &ParseError{Op: "read", Err: err}
	}

	msgs := make([]*model.Message, 0, len(wire))
	for _, w := range wire {
		createdAt, err := time.ParseInLocation(historyTimeLayout, w.CreatedAt, time.Local)
		if err != nil {
			// Tolerate unknown timestamp formats rather than dropping
			// the message; the zero time sorts first but stays visible.
			log.Debug().Str("created_at", w.CreatedAt).Msg("unparseable history timestamp")
			createdAt = time.Time{}
		}
		msgs = append(msgs, &model.Message{
			ID:        fmt.Sprintf("%d", w.ID),
			Sender:    model.Sender(w.Sender),
			Content:   w.Content,
			CreatedAt: createdAt,
		})
	}
	return msgs, nil
}

// Send posts a message as the given sender and returns the canonical
// user text plus the bot reply.
func (c *Client) Send(ctx context.Context, sender model.Sender, text string) (SendResult, error) {
	if !c.IsConfigured() {
		return SendResult{}, ErrNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return SendResult{}, ErrEmptyMessage
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{}
	form.Set("sender", sender.String())
	form.Set("message", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("send"), strings.NewReader(form.Encode()))
	if err != nil {
		return SendResult{}, &TransportError{Op: "send", Err: err}
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do("send", req)
	if err != nil {
		return SendResult{}, err
	}

	var result SendResult
	if err := json.Unmarshal(body, &result); err != nil {
		return SendResult{}, &ParseError{Op: "send", Err: err}
	}
	return result, nil
}

// Analyze runs the attachment-style analysis over the session
// transcript and returns the full report document. The server caches
// results; a repeated call may come back with Cached set.
func (c *Client) Analyze(ctx context.Context) (*model.AnalysisReport, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.analyzeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("analyze"), strings.NewReader("{}"))
	if err != nil {
		return nil, &TransportError{Op: "analyze", Err: err}
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do("analyze", req)
	if err != nil {
		return nil, err
	}

	var report model.AnalysisReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, &ParseError{Op: "analyze", Err: err}
	}
	return &report, nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

// setHeaders applies headers common to all requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "lekat-tui")
	if c.sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.sessionCookie})
	}
}

// do executes the request and returns the body of a 2xx response.
// Non-2xx statuses become APIError; network failures become
// TransportError. The body read is size-capped.
func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Str("op", op).Err(err).Msg("request failed")
		return nil, &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	log.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.errorFromResponse(op, resp.StatusCode, body)
	}
	return body, nil
}

// errorFromResponse maps a non-2xx response to an APIError, pulling
// the message from a JSON {"error": ...} body when present.
func (c *Client) errorFromResponse(op string, status int, body []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{Op: op, Status: status, Message: errResp.Error}
	}
	return &APIError{Op: op, Status: status, Message: http.StatusText(status)}
}

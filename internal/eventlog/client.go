package eventlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxResponseBytes = 64 << 10

// Result is the outcome of one delivery. Error is set instead of returning
// an error so a failing collector can never surface to the caller.
type Result struct {
	Response map[string]any `json:"response,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// OK reports whether the collector accepted the event.
func (r Result) OK() bool {
	return r.Error == ""
}

// Sink delivers one event.
type Sink interface {
	Send(ctx context.Context, e Event) Result
}

// NopSink accepts every event without sending it anywhere.
type NopSink struct{}

func (NopSink) Send(context.Context, Event) Result {
	return Result{}
}

// Client posts events to the collector over HTTP.
type Client struct {
	endpoint   string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a collector client. authToken may be empty, in which
// case no Authorization header is sent.
func NewClient(endpoint, authToken string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		authToken:  authToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send posts e as JSON. Transport errors and non-2xx statuses are returned
// in Result.Error.
func (c *Client) Send(ctx context.Context, e Event) Result {
	body, err := json.Marshal(e)
	if err != nil {
		return Result{Error: fmt.Sprintf("marshal event: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Error: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Error: err.Error()}
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseBytes)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, limited)
		return Result{Error: fmt.Sprintf("logging api returned status %d", resp.StatusCode)}
	}

	// The collector's acknowledgement body is informational only
	var payload map[string]any
	if err := json.NewDecoder(limited).Decode(&payload); err != nil {
		return Result{}
	}
	return Result{Response: payload}
}

// Log validates and sends one event synchronously. Only an invalid event
// produces an error.
func (c *Client) Log(ctx context.Context, stack, level, pkg, message string) (Result, error) {
	e, err := NewEvent(stack, level, pkg, message)
	if err != nil {
		return Result{}, err
	}
	return c.Send(ctx, e), nil
}

// Package api is the single chokepoint for every call against the wardrobe
// backend: it attaches the bearer credential, shapes request bodies, and
// intercepts unauthorized responses to force a logout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkozlov/stylist/internal/common"
	"github.com/dkozlov/stylist/internal/logging"
)

// SessionStore is the part of the session store the gateway consults: the
// current credential and the clear-on-expiry path.
type SessionStore interface {
	Token() string
	Clear(ctx context.Context) error
}

// Opts shapes a single request. At most one of JSON/Multipart may be set.
type Opts struct {
	Query     url.Values
	JSON      any
	Multipart *MultipartBody
	Header    http.Header
}

// Client is the authenticated HTTP gateway.
type Client struct {
	baseURL string
	http    *http.Client
	store   SessionStore
	log     logging.Logger

	// onSessionExpired runs synchronously on the 401 path, after the store
	// is cleared and before Do returns. The CLI uses it to switch back to
	// the auth screen.
	onSessionExpired func()
}

// New creates a gateway bound to baseURL. All requests share one timeout.
func New(baseURL string, timeout time.Duration, store SessionStore, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// SetOnSessionExpired registers the hook invoked when a 401 forces a logout.
func (c *Client) SetOnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs one request against the backend.
//
// Behavior:
//   - caller headers are merged in, then Authorization: Bearer <token> is
//     set when a session exists;
//   - multipart bodies carry the writer's own Content-Type (with boundary),
//     discarding any caller-supplied one;
//   - a 401 response clears the session store, fires the expiry hook and
//     returns common.ErrSessionExpired — the response is never handed back;
//   - any other response is returned raw; the caller checks the status and
//     parses the body.
func (c *Client) Do(ctx context.Context, method, endpoint string, opts Opts) (*http.Response, error) {
	reqURL := c.baseURL + endpoint
	if len(opts.Query) > 0 {
		reqURL += "?" + opts.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case opts.Multipart != nil:
		r, ct, err := opts.Multipart.Finish()
		if err != nil {
			return nil, fmt.Errorf("build multipart body: %w", err)
		}
		body, contentType = r, ct
	case opts.JSON != nil:
		raw, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, vv := range opts.Header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	if opts.Multipart != nil {
		// The transport sets the boundary; a caller-supplied Content-Type
		// would break the upload.
		req.Header.Del("Content-Type")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.NewString()
	c.log.Debug(ctx, "api request", "id", reqID, "method", method, "endpoint", endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "api request failed", "id", reqID, "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, endpoint, err)
	}

	c.log.Debug(ctx, "api response", "id", reqID, "endpoint", endpoint, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if err := c.store.Clear(ctx); err != nil {
			c.log.Error(ctx, "clearing session after 401", "error", err)
		}
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return nil, common.ErrSessionExpired
	}

	return resp, nil
}

// DecodeJSON decodes and closes the response body.
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorBody is the shape of the backend's JSON error payloads.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// ErrorMessage extracts a human-readable message from a non-2xx response and
// closes its body. JSON bodies yield their detail (or message) field; any
// other body, or a failed parse, falls back to "<fallback>: <status>".
func ErrorMessage(resp *http.Response, fallback string) string {
	defer resp.Body.Close()

	statusMsg := fmt.Sprintf("%s: %s", fallback, resp.Status)

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return statusMsg
	}

	var e errorBody
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return statusMsg
	}
	if e.Detail != "" {
		return e.Detail
	}
	if e.Message != "" {
		return e.Message
	}
	return statusMsg
}

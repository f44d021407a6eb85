// Package apiclient is the HTTP client for the dashboard REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
	"github.com/commutersec/admin-dashboard/internal/metrics"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"

	fallbackMessage = "An error occurred"
	headerRequestID = "X-Request-ID"
)

// Options configures a Client.
type Options struct {
	// BaseURL is prefixed to every request path. Defaults to DefaultBaseURL.
	BaseURL string
	// Timeout bounds a whole request. Zero means no client-side timeout.
	Timeout time.Duration
	// HTTPClient overrides the underlying client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client issues JSON requests against the dashboard API, attaching the
// bearer token held by the token store.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  ports.TokenStore
	logger  zerolog.Logger
}

func New(opts Options, tokens ports.TokenStore, logger zerolog.Logger) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		baseURL: base,
		client:  hc,
		tokens:  tokens,
		logger:  logger,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Do sends method path with body encoded as JSON and decodes a 2xx response
// into out. Non-2xx responses fail with *domain.APIError carrying the
// server's message.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	endpoint := endpointLabel(path)
	start := time.Now()
	status := "error"
	defer func() {
		metrics.APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		metrics.APIRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("reading token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("api request failed")
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()
	status = strconv.Itoa(resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response of %s %s: %w", method, path, err)
	}
	return nil
}

// Ping reports whether the API answers at all. Any HTTP response, including
// 401 or 404, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("upstream answered %d", resp.StatusCode)
	}
	return nil
}

// errorMessage extracts {"message": ...} from an error body. Bodies that are
// not JSON yield fallbackMessage; an empty message yields the status form.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallbackMessage
	}
	if payload.Message == "" {
		return fmt.Sprintf("HTTP error! status: %d", status)
	}
	return payload.Message
}

// endpointLabel collapses numeric path segments so metrics keep a bounded
// label set: /admins/12 → /admins/:id.
func endpointLabel(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

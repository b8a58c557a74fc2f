package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// DefaultTimeout is the fixed per-request budget. A request exceeding
// it surfaces as the timeout kind, distinct from a network failure.
const DefaultTimeout = 15 * time.Second

// Client is the shared HTTP client behind every binding. Bindings do no
// logic beyond serialization; failures are normalized into *Error
// before they reach calling code.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// NewClient creates a client for the backend at baseURL. The `/api`
// base path is appended here so bindings only carry entity paths.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one request and decodes the JSON response into out when
// out is non-nil. Every failure path returns a normalized *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindNetwork, Message: "encoding request body", Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "creating request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := ulid.Make().String()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		apiErr := transportError(err)
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Dur("latency", duration).
			Str("kind", string(apiErr.Kind)).
			Err(err).
			Msg("request failed")
		return apiErr
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("latency", duration).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Kind:    KindServer,
			Status:  resp.StatusCode,
			Message: "decoding response body",
			Err:     err,
		}
	}
	return nil
}

// transportError classifies a failure with no HTTP response: a request
// aborted before a response is a timeout; anything else is a network
// failure.
func transportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
	}

	return &Error{Kind: KindNetwork, Message: "no response received", Err: err}
}

// responseError normalizes a non-2xx response into the taxonomy:
// 401/403 auth, 422 validation when the detail array parses, 5xx and
// everything else server.
func responseError(resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &Error{
			Kind:    KindAuth,
			Status:  resp.StatusCode,
			Message: statusMessage(resp.StatusCode),
		}

	case resp.StatusCode == http.StatusUnprocessableEntity:
		fields, ok := parseValidationBody(body)
		if !ok {
			return &Error{
				Kind:    KindServer,
				Status:  resp.StatusCode,
				Message: "unparseable validation response",
			}
		}
		return &Error{
			Kind:    KindValidation,
			Status:  resp.StatusCode,
			Message: "validation failed",
			Fields:  fields,
		}

	default:
		msg := statusMessage(resp.StatusCode)
		if detail := extractDetail(body); detail != "" {
			msg = detail
		}
		return &Error{
			Kind:    KindServer,
			Status:  resp.StatusCode,
			Message: msg,
		}
	}
}

// extractDetail pulls a flat detail message out of an error body when
// one is present.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Detail
}

func idPath(base, id string) string {
	return fmt.Sprintf("%s/%s", base, url.PathEscape(id))
}

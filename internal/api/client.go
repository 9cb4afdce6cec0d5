// Package api is the typed client for the StayEase REST backend. Every method
// issues exactly one request: no retries, no caching, fire-once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// APIError carries the backend's human-readable failure message plus the HTTP
// status it arrived with.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client against baseURL. The cookie jar captures the session
// cookie set by the login endpoint; pass nil for an ephemeral client.
func New(baseURL string, jar http.CookieJar) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// do issues the request and decodes a successful JSON response into out (which
// may be nil). Non-2xx responses become an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError prefers the message field of a JSON error body. An unparseable
// body is surfaced as status code plus raw text so the numeric status is
// never lost.
func decodeError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return errorFromBody(resp.StatusCode, raw)
}

func errorFromBody(statusCode int, raw []byte) *APIError {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &APIError{StatusCode: statusCode, Message: body.Message}
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		text = http.StatusText(statusCode)
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("%d %s", statusCode, text),
	}
}

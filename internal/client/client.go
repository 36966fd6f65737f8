// Package client is a Go client for the resume-nest HTTP API.
package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTimeout bounds one request when the caller supplies no http.Client.
const DefaultTimeout = 60 * time.Second

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports a missing resource. Resumes owned by other accounts also report not found.
func (e *APIError) IsNotFound() bool { return e.Status == http.StatusNotFound }

// IsUnauthorized reports a missing, invalid or expired token, or bad credentials.
func (e *APIError) IsUnauthorized() bool { return e.Status == http.StatusUnauthorized }

// IsConflict reports a duplicate, such as an email that is already registered.
func (e *APIError) IsConflict() bool { return e.Status == http.StatusConflict }

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// Client talks to one server. In-flight actions with the same request body are collapsed into one request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	inflight   singleflight.Group
}

// New creates a Client for baseURL. A nil httpClient gets DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// flightKey identifies one action by its token, operation and request body.
func flightKey(token, op string, body any) string {
	raw, err := json.Marshal(body)
	if err != nil {
		raw = []byte(fmt.Sprintf("%#v", body))
	}
	sum := sha256.Sum256(raw)
	return token + "|" + op + ":" + hex.EncodeToString(sum[:])
}

// once runs fn at most once at a time per key; concurrent callers share its result.
func (c *Client) once(key string, fn func() (any, error)) (any, error) {
	v, err, _ := c.inflight.Do(key, fn)
	return v, err
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send performs the request and returns the body of a 2xx response.
func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

func decodeAPIError(status int, raw []byte) *APIError {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := http.StatusText(status)
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Message != "" && body.Error == "rate_limit_exceeded":
			msg = body.Message
		case body.Error != "":
			msg = body.Error
		}
	} else if s := strings.TrimSpace(string(raw)); s != "" {
		msg = s
	}
	return &APIError{Status: status, Message: msg}
}

// doJSON sends in as JSON and decodes a JSON reply into out. out may be nil.
func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	req, err := c.newRequest(ctx, method, path, token, in)
	if err != nil {
		return err
	}
	raw, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

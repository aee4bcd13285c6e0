package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client wraps the upstream assessment REST API. One call per resource, no
// retries, no caching beyond the single response. There is deliberately no
// client-side timeout: an issued request runs to completion or failure.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// APIError carries a non-2xx upstream status and the human-readable message
// pulled from the response body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// decodeError turns a failed response into an APIError, preferring the
// backend-provided message ({error} then {details}) over the fallback.
func decodeError(resp *http.Response, fallback string) error {
	message := fallback

	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var e errorBody
		if json.Unmarshal(body, &e) == nil {
			if e.Error != "" {
				message = e.Error
			} else if e.Details != "" {
				message = e.Details
			}
		}
	}

	return &APIError{Status: resp.StatusCode, Message: message}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}, fallback string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, fallback)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}, fallback string) error {
	jsonBody, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, fallback)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

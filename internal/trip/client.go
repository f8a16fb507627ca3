package trip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the production trip-planning backend.
const DefaultBaseURL = "https://tripplannerbackend-production.up.railway.app"

const planPath = "/api/trips/v1/trip_plan/"

const defaultAPIMessage = "Failed to get trip plan."

// APIError is a non-2xx reply from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trip plan request failed (%d): %s", e.StatusCode, e.Message)
}

// Client submits trips to the backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for baseURL. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Plan validates in, posts it, and decodes the computed trip. There are no
// retries; cancellation and deadlines come from ctx.
func (c *Client) Plan(ctx context.Context, in Inputs) (*Data, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal trip inputs: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+planPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build trip plan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trip plan request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	return Decode(resp.Body)
}

// errorMessage pulls the "error" field out of a failure body.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return defaultAPIMessage
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) != nil || payload.Error == "" {
		return defaultAPIMessage
	}
	return payload.Error
}

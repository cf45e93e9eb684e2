package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vietkichban/internal/model"
)

const healthPath = "/health"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a client bound to a fixed base URL. The client performs a
// single attempt per call: no retries and no client-side timeout.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call posts payload as JSON to path and decodes the {"text": ...} result.
func (c *Client) Call(ctx context.Context, path string, payload any) (*model.GenerationResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return parseResult(body)
}

func (c *Client) Health(ctx context.Context) (*model.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var status model.HealthStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &status, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("API request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	slog.Debug("API request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	return body, nil
}

// parseResult accepts any JSON body. When it carries no string "text" field the
// raw JSON is shown instead, so unexpected success shapes stay visible.
func parseResult(body []byte) (*model.GenerationResult, error) {
	if !json.Valid(body) {
		var v any
		return nil, &DecodeError{Err: json.Unmarshal(body, &v)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		if raw, ok := fields["text"]; ok {
			var text string
			if err := json.Unmarshal(raw, &text); err == nil {
				return &model.GenerationResult{Text: text}, nil
			}
		}
	}

	return &model.GenerationResult{Text: strings.TrimSpace(string(body))}, nil
}

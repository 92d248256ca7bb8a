// Package connection provides the API client for gravsweep-cli.
package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/internal/infra/tlsroots"
	"github.com/gravsweep/gravsweep-go/internal/server/httpserver/handler"
)

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 30 * time.Second

// Client talks to a gravsweep-server over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option customizes a Client.
type Option func(*Client) error

// WithCAFile trusts the PEM certificates in path, in addition to the
// system roots, when connecting over TLS.
func WithCAFile(path string) Option {
	return func(c *Client) error {
		pool, err := tlsroots.NewPool()
		if err != nil {
			return err
		}
		if err := pool.AddCertFile(path); err != nil {
			return err
		}
		c.client.Transport = &http.Transport{
			TLSClientConfig: pool.TLSConfig(),
		}
		return nil
	}
}

// NewClient creates a new API client.
func NewClient(server string, opts ...Option) (*Client, error) {
	// Ensure baseURL has http:// prefix
	baseURL := server
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}

	c := &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

// ListModels returns the registered metric models.
func (c *Client) ListModels(ctx context.Context) (*handler.ListModelsResponse, error) {
	var out handler.ListModelsResponse
	if err := c.get(ctx, "/v1/models", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetModel returns a single model by registry ID.
func (c *Client) GetModel(ctx context.Context, id string) (*metric.Info, error) {
	var out metric.Info
	if err := c.get(ctx, "/v1/models/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Evaluate runs a single model evaluation.
func (c *Client) Evaluate(ctx context.Context, req handler.EvaluateRequest) (*eval.Run, error) {
	var out eval.Run
	if err := c.post(ctx, "/v1/evaluate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sweep runs a parameter sweep.
func (c *Client) Sweep(ctx context.Context, req handler.SweepRequest) (*eval.SweepSummary, error) {
	var out eval.SweepSummary
	if err := c.post(ctx, "/v1/sweeps", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRuns lists persisted runs, newest first.
func (c *Client) ListRuns(ctx context.Context, limit int) (*handler.ListRunsResponse, error) {
	path := "/v1/runs"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var out handler.ListRunsResponse
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRun retrieves a run with its full component payload.
func (c *Client) GetRun(ctx context.Context, id string) (*eval.Run, error) {
	var out eval.Run
	if err := c.get(ctx, "/v1/runs/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.addHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

func (c *Client) post(ctx context.Context, path string, body, target any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.addHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

// addHeaders adds common headers.
func (c *Client) addHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "gravsweep-cli/1.0")
}

// parseResponse unwraps the standard envelope into the target struct.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	var envelope struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}

	if resp.StatusCode >= 400 {
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
			return fmt.Errorf("[%s] %s", envelope.Code, envelope.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		return fmt.Errorf("parse response data: %w", err)
	}
	return nil
}

// Package client is a small Go client for the resumerag HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 2 * time.Minute

// Option customizes the Client.
type Option interface {
	apply(*Client)
}

type optionFunc func(*Client)

func (f optionFunc) apply(c *Client) { f(c) }

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return optionFunc(func(c *Client) { c.httpc = h })
}

// WithTimeout sets the request timeout of the default HTTP client. Analysis
// requests embed, retrieve, and call a generative model twice; the default
// is generous on purpose.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *Client) { c.httpc.Timeout = d })
}

// Client talks to a resumerag server.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("client: base URL required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c, nil
}

// ResumeDetails mirrors the contact details in the analyze response.
type ResumeDetails struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Analysis is the analyze response: contact details, suggestions text, and
// the seven-category scorecard keyed by category name.
type Analysis struct {
	ResumeDetails ResumeDetails  `json:"resume_details"`
	Suggestions   string         `json:"suggestions"`
	Scores        map[string]int `json:"scores"`
}

// Health is the healthz response.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: server returned %d: %s", e.StatusCode, e.Message)
}

// Analyze uploads a PDF resume and a job description and returns the
// analysis.
func (c *Client) Analyze(ctx context.Context, resume io.Reader, filename, jobDescription string) (*Analysis, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("resume", filename)
	if err != nil {
		return nil, fmt.Errorf("client: build form: %w", err)
	}
	if _, err := io.Copy(fw, resume); err != nil {
		return nil, fmt.Errorf("client: copy resume: %w", err)
	}
	if err := mw.WriteField("job_description", jobDescription); err != nil {
		return nil, fmt.Errorf("client: build form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("client: build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/analyze", &buf)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out Analysis
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Healthz reports server health. An unhealthy server answers 503 but still
// carries a report, so that status is not an APIError here.
func (c *Client) Healthz(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var out Health
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("client: decode response: %w", err)
	}
	return &out, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

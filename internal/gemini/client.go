// Package gemini implements the Generative Language API upstream client.
package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Outcome captures an upstream HTTP result regardless of status code. The
// body is always fully read so the caller can relay or wrap it.
type Outcome struct {
	StatusCode int
	Body       []byte
}

// Success reports whether the upstream answered with a 2xx status.
func (o *Outcome) Success() bool {
	return o.StatusCode >= 200 && o.StatusCode < 300
}

// Client issues generateContent calls against the upstream API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. An empty baseURL uses
// DefaultBaseURL; a zero timeout disables the client-side deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate posts the payload to models/{model}:generateContent with the key
// injected as a query parameter. It returns an Outcome for any HTTP response,
// 2xx or not; an error is returned only for build, transport or body-read
// failures. The caller's context cancels the upstream call.
func (c *Client) Generate(ctx context.Context, model, apiKey string, payload []byte) (*Outcome, error) {
	target := buildGenerateURL(c.baseURL, model, apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call upstream: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	return &Outcome{StatusCode: resp.StatusCode, Body: body}, nil
}

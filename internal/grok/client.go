// Package grok is the integration point with the xAI text-generation API.
// The client is stateless and injected where needed; it performs exactly one
// outbound HTTP call per operation and never retries.
package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fabula-app/fabula/internal/logger"
)

// Error taxonomy for upstream failures. Handlers map these to HTTP statuses;
// retrying is the caller's decision.
var (
	ErrUnavailable    = errors.New("grok api not available: api key missing")
	ErrAuthentication = errors.New("grok api authentication failed")
	ErrRateLimited    = errors.New("grok api rate limit exceeded")
	ErrQuotaExceeded  = errors.New("grok api quota exceeded")
	ErrTimeout        = errors.New("grok api request timeout")
	ErrUpstream       = errors.New("grok api error")
)

const (
	defaultAPIURL      = "https://api.x.ai/v1/chat/completions"
	defaultModel       = "grok-2-1212"
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
	requestTimeout     = 30 * time.Second
)

// Config holds the generation API credential and tuning defaults.
type Config struct {
	APIKey      string
	APIURL      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Client wraps the remote chat-completions endpoint.
type Client struct {
	apiKey      string
	apiURL      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// NewClient creates a Client, filling unset config fields with defaults.
func NewClient(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	return &Client{
		apiKey:      cfg.APIKey,
		apiURL:      cfg.APIURL,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

// Available reports whether a credential is configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// MaxTokens returns the configured completion token limit.
func (c *Client) MaxTokens() int {
	return c.maxTokens
}

// Temperature returns the configured sampling temperature.
func (c *Client) Temperature() float64 {
	return c.temperature
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []message `json:"messages"`
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// call issues one request to the chat-completions endpoint and returns the
// trimmed text of the first choice. It rejects immediately when no credential
// is configured, without any network I/O.
func (c *Client) call(ctx context.Context, messages []message) (string, error) {
	if c.apiKey == "" {
		return "", ErrUnavailable
	}

	body, err := json.Marshal(chatRequest{
		Messages:    messages,
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &uerr) && uerr.Timeout()) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return "", fmt.Errorf("%w: check api key", ErrAuthentication)
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: please try again later", ErrRateLimited)
	case http.StatusPaymentRequired:
		return "", fmt.Errorf("%w: check billing", ErrQuotaExceeded)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstream, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: invalid response", ErrUpstream)
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	logger.Log.Debugw("grok response received", "chars", len(content))
	return content, nil
}

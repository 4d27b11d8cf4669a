// Package gpt reaches the hosted chef assistant. Client speaks the
// OpenAI-compatible chat-completions protocol; Assistant turns it into the
// two operations the site needs and absorbs every failure.
package gpt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

var _ domain.Completer = (*Client)(nil)

// Defaults target Gemini's OpenAI-compatible surface.
const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions"
	DefaultModel    = "gemini-2.5-flash"
)

// errBodyLimit caps how much of a failed response ends up in an error.
const errBodyLimit = 300

// ── Wire format ──────────────────────────────────────────────────

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []wireMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message wireMessage `json:"message"`
	} `json:"choices"`
}

// wireRole maps a transcript role onto the protocol's. Anything that is
// not the user is the assistant.
func wireRole(r domain.Role) string {
	if r == domain.RoleUser {
		return "user"
	}
	return "assistant"
}

// ── Options ──────────────────────────────────────────────────────

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithEndpoint overrides the chat/completions URL.
func WithEndpoint(url string) ClientOption {
	return func(c *Client) { c.endpoint = url }
}

// WithModel overrides the model name. Empty omits the field, as Azure
// deployments expect.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) ClientOption {
	return func(c *Client) { c.temperature = t }
}

// WithMaxTokens caps the reply length. Zero leaves it to the server.
func WithMaxTokens(n int) ClientOption {
	return func(c *Client) { c.maxTokens = n }
}

// WithHTTPTimeout bounds each round trip.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithAPIKeyHeader authenticates with an "api-key" header (Azure) instead
// of a bearer token.
func WithAPIKeyHeader() ClientOption {
	return func(c *Client) { c.authorize = apiKeyHeader }
}

// ── Client ───────────────────────────────────────────────────────

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	endpoint    string
	apiKey      string
	authorize   func(h http.Header, key string)
	model       string
	temperature float64
	topP        float64
	maxTokens   int
	http        *http.Client
	log         *logger.Logger
}

func bearer(h http.Header, key string)       { h.Set("Authorization", "Bearer "+key) }
func apiKeyHeader(h http.Header, key string) { h.Set("api-key", key) }

// NewClient creates a chat client authenticated with apiKey.
func NewClient(apiKey string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:    DefaultEndpoint,
		apiKey:      apiKey,
		authorize:   bearer,
		model:       DefaultModel,
		temperature: 0.7,
		topP:        0.95,
		http:        &http.Client{Timeout: 30 * time.Second},
		log:         log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Complete sends turns as one completion request and returns the first
// choice. No choices at all is an empty reply, not an error.
func (c *Client) Complete(ctx context.Context, turns []domain.Turn) (string, error) {
	req := completionRequest{
		Model:       c.model,
		Messages:    make([]wireMessage, len(turns)),
		Temperature: c.temperature,
		TopP:        c.topP,
		MaxTokens:   c.maxTokens,
	}
	for i, t := range turns {
		req.Messages[i] = wireMessage{Role: wireRole(t.Role), Content: t.Content}
	}

	var resp completionResponse
	if err := c.post(ctx, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		c.log.Debug("gpt: no choices in response")
		return "", nil
	}

	reply := resp.Choices[0].Message.Content
	c.log.Debug("gpt: reply (%d chars): %s", len(reply), clip(reply, 120))
	return reply, nil
}

// post round-trips one JSON request and decodes a 200 body into out.
func (c *Client) post(ctx context.Context, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("gpt: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("gpt: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req.Header, c.apiKey)

	c.log.Debug("gpt: POST %s (%d bytes)", c.endpoint, len(body))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gpt: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return fmt.Errorf("gpt: upstream %s: %s", resp.Status, bytes.TrimSpace(msg))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gpt: decode response: %w", err)
	}
	return nil
}

// clip shortens s to at most n runes for log lines.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

package completion

import (
	"context"
	"fmt"
	"time"

	drepo "YieldPulse/internal/domain/repository"
	xhttp "YieldPulse/pkg/http"
)

const systemPrompt = "You are a helpful assistant specializing in DeFi, cryptocurrency trading, and yield farming. Provide concise, accurate information and analysis."

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	apiURL      string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	http        *xhttp.Client
	metrics     drepo.Metrics
}

// Option configures Client.
type Option func(*Client)

// WithModel overrides the model id.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithSampling sets temperature and max tokens.
func WithSampling(temperature float64, maxTokens int) Option {
	return func(c *Client) {
		c.temperature = temperature
		c.maxTokens = maxTokens
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.http = xhttp.NewClient(xhttp.WithTimeout(timeout)) }
}

// New creates a new completion provider.
func New(apiURL, apiKey string, metrics drepo.Metrics, opts ...Option) *Client {
	c := &Client{
		apiURL:      apiURL,
		apiKey:      apiKey,
		temperature: 0.7,
		maxTokens:   1000,
		http:        xhttp.NewClient(xhttp.WithTimeout(60 * time.Second)),
		metrics:     metrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt with the fixed system role and returns the
// first choice's content verbatim.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	var resp chatResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.apiURL,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.apiKey,
		},
		Body: req,
	}, &resp)
	if err != nil {
		c.metrics.RecordUpstreamRequest("completion", "error")
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.metrics.RecordUpstreamRequest("completion", "error")
		return "", fmt.Errorf("chat completion: empty choices")
	}

	c.metrics.RecordUpstreamRequest("completion", "ok")
	return resp.Choices[0].Message.Content, nil
}

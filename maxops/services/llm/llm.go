// maxops/services/llm/llm.go
package llm

import (
	"context"
	"fmt"

	"maxops/maxops/utils/httputils"
	"maxops/maxops/utils/logging"
)

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, model: model}
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Options tune a single completion call. Zero values use provider defaults.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

func (c *Client) Run(ctx context.Context, messages []Message, opts Options) (string, error) {
	defer logging.LogDuration(ctx, "llm_run")()

	model := opts.Model
	if model == "" {
		model = c.model
	}
	req := chatRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	var resp chatResponse
	err := httputils.PostJSONContext(ctx, c.baseURL+"/chat/completions", req, &resp, c.headers())
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + c.apiKey}
}

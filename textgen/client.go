// Package textgen wraps the text-generation HTTP API behind a typed
// client.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ModelInfo describes an available model.
type ModelInfo struct {
	ID string `json:"id"`
}

// Client talks to the text-generation API.
type Client struct {
	api   *resty.Client
	model string
}

// New builds a text-generation client. model is the default model used by
// Complete and Chat.
func New(baseURL, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("textgen API key is required")
	}
	return &Client{
		api: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json"),
		model: model,
	}, nil
}

type choice struct {
	Text    string  `json:"text"`
	Message Message `json:"message"`
}

type generateResponse struct {
	Choices []choice `json:"choices"`
}

// Complete generates a completion for a bare prompt. maxTokens <= 0 falls
// back to 150.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = 150
	}

	var out generateResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":       c.model,
			"prompt":      prompt,
			"max_tokens":  maxTokens,
			"temperature": 0.7,
		}).
		SetResult(&out).
		Post("/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("textgen completion: HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Choices) == 0 {
		return "", errors.New("textgen completion: empty choices")
	}
	return strings.TrimSpace(out.Choices[0].Text), nil
}

// Chat generates the next assistant turn for a conversation.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	var out generateResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":       c.model,
			"messages":    messages,
			"max_tokens":  500,
			"temperature": 0.7,
		}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("textgen chat: HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Choices) == 0 {
		return "", errors.New("textgen chat: empty choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// Models lists the models available behind the endpoint.
func (c *Client) Models(ctx context.Context) ([]ModelInfo, error) {
	var out struct {
		Data []ModelInfo `json:"data"`
	}
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/models")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("textgen models: HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	return out.Data, nil
}

// Health checks the endpoint's health probe.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("textgen health: HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

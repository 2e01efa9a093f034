// Package openai implements postrisk.ChatClient using the OpenAI
// chat-completions API. The base URL is configurable so any
// OpenAI-compatible backend (Groq, local inference servers) can be used.
package openai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mwalczyk-dev/postrisk"
)

// DefaultBaseURL points at the Groq OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Ensure Client implements postrisk.ChatClient at compile time.
var _ postrisk.ChatClient = (*Client)(nil)

// Client calls a chat-completion endpoint.
type Client struct {
	inner *openai.Client
}

// Option configures a Client.
type Option func(*openai.ClientConfig)

// WithBaseURL overrides the API base URL. Defaults to DefaultBaseURL.
func WithBaseURL(url string) Option {
	return func(cfg *openai.ClientConfig) {
		cfg.BaseURL = url
	}
}

// NewClient creates a new Client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = DefaultBaseURL
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{inner: openai.NewClientWithConfig(cfg)}
}

// Complete sends one chat-completion request and returns the raw completion
// text of the first choice.
func (c *Client) Complete(ctx context.Context, req postrisk.ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	request := openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.JSONResponse {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.inner.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", postrisk.Errorf(postrisk.EINTERNAL, "model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

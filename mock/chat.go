package mock

import (
	"context"

	"github.com/mwalczyk-dev/postrisk"
)

var _ postrisk.ChatClient = (*ChatClient)(nil)

// ChatClient is a mock implementation of postrisk.ChatClient.
type ChatClient struct {
	CompleteFn func(ctx context.Context, req postrisk.ChatRequest) (string, error)
}

func (c *ChatClient) Complete(ctx context.Context, req postrisk.ChatRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}

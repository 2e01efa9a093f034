package mock

import (
	"context"

	"github.com/mwalczyk-dev/postrisk"
)

var _ postrisk.WebExtractor = (*WebExtractor)(nil)

// WebExtractor is a mock implementation of postrisk.WebExtractor.
type WebExtractor struct {
	ExtractFn func(ctx context.Context, url string) (*postrisk.ExtractionResult, error)
}

func (e *WebExtractor) Extract(ctx context.Context, url string) (*postrisk.ExtractionResult, error) {
	return e.ExtractFn(ctx, url)
}

package mock

import (
	"context"

	"github.com/mwalczyk-dev/postrisk"
)

var _ postrisk.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of postrisk.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*postrisk.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*postrisk.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

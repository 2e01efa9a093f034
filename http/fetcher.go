// Package http provides an HTTP-based implementation of postrisk.Fetcher
// for fetching content from static sites that don't require JavaScript
// rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mwalczyk-dev/postrisk"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// userAgent mimics a desktop browser. Some sites serve degraded or empty
// content to unknown agents.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements postrisk.Fetcher at compile time.
var _ postrisk.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents from URLs using plain HTTP requests. Unlike
// the browser tier, this does not execute JavaScript and is suitable for
// static sites only.
//
// Fetcher is safe for concurrent use.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit caps outgoing requests to n per second.
// No limit is applied if not specified.
func WithRateLimit(n float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(n), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at the given URL. Only HTML and plain-text
// content types are accepted.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*postrisk.FetchResult, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, postrisk.Errorf(postrisk.EINVALID, "invalid request for %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, postrisk.Errorf(postrisk.ETRANSPORT, "failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, postrisk.Errorf(postrisk.ETRANSPORT, "failed to fetch URL: HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "text/html") && !strings.Contains(contentType, "text/plain") {
		return nil, postrisk.Errorf(postrisk.EUNSUPPORTED, "unsupported content type: %s", contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, postrisk.Errorf(postrisk.ETRANSPORT, "failed to read response body: %v", err)
	}

	return &postrisk.FetchResult{
		Body:        string(body),
		ContentType: contentType,
	}, nil
}

// Package web implements the tier-selecting web content extractor. Hosts
// known to require JavaScript rendering are routed to the browser tier when
// one is available; everything else goes through the static HTTP tier.
package web

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/mwalczyk-dev/postrisk"
	"github.com/mwalczyk-dev/postrisk/goquery"
)

// DefaultScriptHeavyHosts lists platforms whose pages are unusable without
// JavaScript rendering.
var DefaultScriptHeavyHosts = []string{
	"x.com", "twitter.com", "instagram.com", "tiktok.com", "linkedin.com",
}

// BrowserExtractor is the browser tier. Implementations render the page and
// extract against the live DOM.
type BrowserExtractor interface {
	Extract(ctx context.Context, url string) (*postrisk.ExtractionResult, error)

	// Available reports whether the browser runtime is usable.
	Available() bool
}

// Ensure Extractor implements postrisk.WebExtractor at compile time.
var _ postrisk.WebExtractor = (*Extractor)(nil)

// Extractor normalizes a URL into an ExtractionResult. Stage failures after
// URL validation degrade to a partial result with Error set; non-fatal
// problems become Notices. It never panics or fails past its boundary for a
// valid URL.
type Extractor struct {
	fetcher postrisk.Fetcher
	browser BrowserExtractor
	hosts   []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBrowser enables the browser tier for script-heavy hosts.
func WithBrowser(b BrowserExtractor) Option {
	return func(e *Extractor) {
		e.browser = b
	}
}

// WithScriptHeavyHosts overrides the hosts routed to the browser tier.
func WithScriptHeavyHosts(hosts ...string) Option {
	return func(e *Extractor) {
		e.hosts = hosts
	}
}

// NewExtractor creates an Extractor using fetcher for the static tier.
func NewExtractor(fetcher postrisk.Fetcher, opts ...Option) *Extractor {
	e := &Extractor{
		fetcher: fetcher,
		hosts:   DefaultScriptHeavyHosts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract fetches and analyzes the page at rawURL. Returns EINVALID for a
// URL missing a scheme or host; any later failure is reported inside the
// result.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*postrisk.ExtractionResult, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, postrisk.Errorf(postrisk.EINVALID, "invalid URL format: %q", rawURL)
	}

	if e.scriptHeavy(u.Host) && e.browser != nil && e.browser.Available() {
		result, err := e.browser.Extract(ctx, rawURL)
		if err != nil {
			return &postrisk.ExtractionResult{
				URL:   rawURL,
				Error: fmt.Sprintf("Browser extraction failed: %v", err),
			}, nil
		}
		return result, nil
	}

	return e.extractStatic(ctx, rawURL), nil
}

// extractStatic runs the static-HTML tier: fetch, main-content text,
// image/visual descriptors, metadata.
func (e *Extractor) extractStatic(ctx context.Context, rawURL string) *postrisk.ExtractionResult {
	result := &postrisk.ExtractionResult{URL: rawURL}

	fetched, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		result.Error = fmt.Sprintf("Failed to fetch basic content: %s", postrisk.ErrorMessage(err))
		return result
	}

	if strings.Contains(fetched.ContentType, "text/plain") {
		result.TextContent = postrisk.TruncateText(
			postrisk.CollapseText(fetched.Body), postrisk.MaxContentLength)
		return result
	}

	page, err := goquery.ParsePage(fetched.Body, rawURL)
	if err != nil {
		result.Error = fmt.Sprintf("Failed to parse HTML: %s", postrisk.ErrorMessage(err))
		return result
	}

	text, err := page.Text()
	if err != nil {
		// An empty page is a boundary case, not a failure: descriptor and
		// metadata extraction still run.
		result.Notices = append(result.Notices, postrisk.ErrorMessage(err))
	}
	result.TextContent = text
	result.Images = page.Images()
	result.VisualElements = page.VisualElements()
	result.Metadata = page.Metadata()

	return result
}

// scriptHeavy reports whether host (optionally with port) matches the
// script-heavy platform list, including subdomains.
func (e *Extractor) scriptHeavy(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)
	for _, d := range e.hosts {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

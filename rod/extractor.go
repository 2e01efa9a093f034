// Package rod provides the browser tier of web content extraction using
// Chrome automation. It renders JavaScript-heavy pages and evaluates
// extraction scripts against the live DOM.
package rod

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/mwalczyk-dev/postrisk"
)

// Timeouts for page loading. Navigation has a hard ceiling; the network-idle
// wait falls back to a shorter DOM-load wait on timeout, then a fixed settle
// delay lets async content render.
const (
	DefaultNavigateTimeout = 30 * time.Second
	DefaultIdleTimeout     = 15 * time.Second
	DefaultLoadTimeout     = 10 * time.Second
	DefaultSettleDelay     = 3 * time.Second
)

// Extractor renders pages in a headless Chrome browser and extracts text,
// image descriptors, embedded media, metadata, and a full-page screenshot.
//
// Extractor is safe for concurrent use by multiple goroutines.
type Extractor struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	settle   time.Duration
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSettleDelay sets the fixed delay after page load for dynamic content.
// Defaults to DefaultSettleDelay (3s) if not specified.
func WithSettleDelay(d time.Duration) Option {
	return func(e *Extractor) {
		e.settle = d
	}
}

// NewExtractor creates a new Extractor that launches a headless Chrome
// browser. Close must be called when the Extractor is no longer needed.
//
// Returns EUNAVAILABLE if Chrome/Chromium cannot be found or launched.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{settle: DefaultSettleDelay}
	for _, opt := range opts {
		opt(e)
	}

	lnchr := launcher.New().
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-sandbox").
		Set("window-size", "1920,1080").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, postrisk.Errorf(postrisk.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, postrisk.Errorf(postrisk.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	e.browser = browser
	e.launcher = lnchr
	return e, nil
}

// Available reports whether a browser is connected.
func (e *Extractor) Available() bool {
	return e != nil && e.browser != nil
}

// Close releases browser resources.
func (e *Extractor) Close() error {
	if e.browser == nil {
		return nil
	}
	err := e.browser.Close()
	if e.launcher != nil {
		e.launcher.Kill()
	}
	e.browser = nil
	return err
}

// Extract navigates to the URL, waits for the page to render, and evaluates
// the extraction scripts against the live DOM. Optional stages (screenshot)
// degrade to notices; rendering failures return an error for the caller to
// fold into a partial result.
func (e *Extractor) Extract(ctx context.Context, url string) (*postrisk.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, postrisk.Errorf(postrisk.EINTERNAL, "creating page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Timeout(DefaultNavigateTimeout).Navigate(url); err != nil {
		return nil, postrisk.Errorf(postrisk.ETRANSPORT, "navigation failed: %v", err)
	}

	// Prefer network idle; fall back to the load event when the page never
	// settles (streaming connections, long-polling).
	if err := page.Timeout(DefaultIdleTimeout).WaitIdle(DefaultIdleTimeout); err != nil {
		_ = page.Timeout(DefaultLoadTimeout).WaitLoad()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(e.settle):
	}

	result := &postrisk.ExtractionResult{URL: url}

	text, err := evalString(page, textJS)
	if err != nil {
		return nil, postrisk.Errorf(postrisk.EINTERNAL, "text extraction failed: %v", err)
	}
	result.TextContent = postrisk.TruncateText(postrisk.CollapseText(text), postrisk.MaxContentLength)

	if err := evalJSON(page, imagesJS, &result.Images); err != nil {
		result.Notices = append(result.Notices, fmt.Sprintf("image extraction failed: %v", err))
	}
	if err := evalJSON(page, visualElementsJS, &result.VisualElements); err != nil {
		result.Notices = append(result.Notices, fmt.Sprintf("visual element extraction failed: %v", err))
	}
	if err := evalJSON(page, metadataJS, &result.Metadata); err != nil {
		result.Notices = append(result.Notices, fmt.Sprintf("metadata extraction failed: %v", err))
	}

	if shot, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	}); err != nil {
		result.Notices = append(result.Notices, fmt.Sprintf("screenshot capture failed: %v", err))
	} else {
		result.Screenshot = base64.StdEncoding.EncodeToString(shot)
	}

	return result, nil
}

// evalString evaluates js in the page and returns its string result.
func evalString(page *rod.Page, js string) (string, error) {
	obj, err := page.Eval(js)
	if err != nil {
		return "", err
	}
	return obj.Value.Str(), nil
}

// evalJSON evaluates js (which must return a JSON string) and unmarshals it
// into out.
func evalJSON(page *rod.Page, js string, out any) error {
	raw, err := evalString(page, js)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}

package postrisk

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// MaxContentLength bounds the text payload extracted from any source and the
// content passed to analysis. Longer text is truncated before prompting.
const MaxContentLength = 4000

// ImageInfo describes an image found on a page.
type ImageInfo struct {
	Src         string `json:"src"`
	Alt         string `json:"alt"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VisualElement describes embedded media found on a page (video, iframe,
// embed, object).
type VisualElement struct {
	Type        string `json:"type"`
	Src         string `json:"src"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PageMetadata holds the fixed set of page metadata fields. Absent tags map
// to empty strings, never to missing keys.
type PageMetadata struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Author             string `json:"author"`
	Keywords           string `json:"keywords"`
	OGTitle            string `json:"og_title"`
	OGDescription      string `json:"og_description"`
	OGImage            string `json:"og_image"`
	TwitterTitle       string `json:"twitter_title"`
	TwitterDescription string `json:"twitter_description"`
	TwitterImage       string `json:"twitter_image"`
}

// ExtractionResult is the outcome of extracting a web page. A failed stage
// degrades to a partial result with Error set; non-fatal problems are
// collected in Notices. Text content is bounded by MaxContentLength.
type ExtractionResult struct {
	URL            string          `json:"url"`
	TextContent    string          `json:"text_content"`
	Images         []ImageInfo     `json:"images"`
	VisualElements []VisualElement `json:"visual_elements"`
	Metadata       PageMetadata    `json:"metadata"`

	// Screenshot is a base64-encoded full-page PNG. Only populated by the
	// browser tier; empty otherwise.
	Screenshot string `json:"screenshot,omitempty"`

	// Error describes a stage failure that left the result partial or empty.
	Error string `json:"error,omitempty"`

	// Notices carries non-fatal diagnostics (skipped pages, failed optional
	// stages). The caller decides whether to surface them.
	Notices []string `json:"notices,omitempty"`
}

// VisualSummary renders a compact textual digest of the extraction suitable
// as visual context for analysis. It is deterministic for a given result.
func (r *ExtractionResult) VisualSummary() string {
	var parts []string

	if r.TextContent != "" {
		text := r.TextContent
		if len(text) > 500 {
			text = text[:500] + "..."
		}
		parts = append(parts, "Text Content: "+text)
	}

	if len(r.Images) > 0 {
		parts = append(parts, "Images found:")
		imgs := r.Images
		if len(imgs) > 5 {
			imgs = imgs[:5]
		}
		for _, img := range imgs {
			if img.Description != "" {
				parts = append(parts, "- "+img.Description)
			}
		}
	}

	if len(r.VisualElements) > 0 {
		parts = append(parts, "Visual elements:")
		for _, el := range r.VisualElements {
			desc := el.Description
			if desc == "" {
				desc = "Unknown element"
			}
			parts = append(parts, "- "+desc)
		}
	}

	if r.Metadata.Title != "" {
		parts = append(parts, "Page Title: "+r.Metadata.Title)
	}
	if r.Metadata.Description != "" {
		parts = append(parts, "Description: "+r.Metadata.Description)
	}

	return strings.Join(parts, "\n")
}

// WebExtractor fetches a URL and normalizes it into an ExtractionResult.
type WebExtractor interface {
	// Extract fetches and analyzes the page at url. Returns EINVALID for a
	// malformed URL. Stage failures after a successful start are reported
	// inside the result rather than as an error.
	Extract(ctx context.Context, url string) (*ExtractionResult, error)
}

// FormatExtractor converts a single file format into plain text.
type FormatExtractor interface {
	// Extract reads the full source and returns the extracted text.
	// Returns EUNAVAILABLE if the underlying capability is missing,
	// ENOCONTENT if the source contains no readable text.
	Extract(r io.Reader) (string, error)

	// Available reports whether the underlying capability is present.
	Available() bool
}

// FileInfo describes an uploaded file and whether it can be processed.
type FileInfo struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	Type      string `json:"type"`
	Supported bool   `json:"supported"`
}

// FetchResult is a fetched HTTP document body plus its media type.
type FetchResult struct {
	Body        string
	ContentType string
}

// Fetcher retrieves documents over HTTP without executing JavaScript.
type Fetcher interface {
	// Fetch issues a GET for url. Returns ETRANSPORT on network failure or
	// a non-2xx status, EUNSUPPORTED for content types other than HTML or
	// plain text.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// ChatMessage is a single role-tagged message in a chat-completion request.
type ChatMessage struct {
	Role    string
	Content string
}

// Chat message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatRequest describes one chat-completion call.
type ChatRequest struct {
	Model       string
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float32

	// JSONResponse requests a JSON-object response format. The response is
	// still treated as advisory; callers must validate it.
	JSONResponse bool
}

// ChatClient calls a chat-completion endpoint and returns the raw completion
// text.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// CollapseText normalizes extracted page text: lines are split on
// double-space runs, fragments are trimmed, and non-empty fragments are
// joined with single spaces.
func CollapseText(text string) string {
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			if phrase = strings.TrimSpace(phrase); phrase != "" {
				chunks = append(chunks, phrase)
			}
		}
	}
	return strings.Join(chunks, " ")
}

// TruncateText bounds text to max characters, appending an ellipsis marker
// when truncation occurred.
func TruncateText(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}

// DescribeImage synthesizes a human-readable description from an image's alt
// and title attributes. Returns "" when both are absent.
func DescribeImage(alt, title string) string {
	var parts []string
	if alt != "" {
		parts = append(parts, fmt.Sprintf("Alt: %s", alt))
	}
	if title != "" {
		parts = append(parts, fmt.Sprintf("Title: %s", title))
	}
	return strings.Join(parts, "; ")
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczyk-dev/postrisk"
)

// Ensure LoggingWebExtractor implements postrisk.WebExtractor.
var _ postrisk.WebExtractor = (*LoggingWebExtractor)(nil)

// LoggingWebExtractor wraps a WebExtractor with per-call logging.
type LoggingWebExtractor struct {
	next   postrisk.WebExtractor
	logger *slog.Logger
}

// NewLoggingWebExtractor creates a new LoggingWebExtractor.
func NewLoggingWebExtractor(next postrisk.WebExtractor, logger *slog.Logger) *LoggingWebExtractor {
	return &LoggingWebExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingWebExtractor) Extract(ctx context.Context, url string) (result *postrisk.ExtractionResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"text_len", len(result.TextContent),
				"images", len(result.Images),
				"stage_error", result.Error,
			)
		}
		e.logger.Info("web extract", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, url)
}

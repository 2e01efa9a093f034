// Package slog provides logging decorators for the core interfaces using
// the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczyk-dev/postrisk"
)

// Ensure LoggingAnalyzer implements postrisk.Analyzer.
var _ postrisk.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with per-call logging.
type LoggingAnalyzer struct {
	next   postrisk.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next postrisk.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, content string, settings postrisk.AnalysisSettings, visualContext string) (result *postrisk.AnalysisResult) {
	defer func(begin time.Time) {
		a.logger.Info("analyze",
			"platform", settings.Platform,
			"content_len", len(content),
			"risk", result.RiskPercentage,
			"level", result.RiskLevel,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return a.next.Analyze(ctx, content, settings, visualContext)
}

// BatchAnalyze delegates to the wrapped analyzer and logs the batch size.
func (a *LoggingAnalyzer) BatchAnalyze(ctx context.Context, contents []string, settings postrisk.AnalysisSettings) (results []*postrisk.AnalysisResult) {
	defer func(begin time.Time) {
		a.logger.Info("batch analyze",
			"items", len(contents),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return a.next.BatchAnalyze(ctx, contents, settings)
}

// Summarize delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Summarize(results []*postrisk.AnalysisResult) (*postrisk.Summary, error) {
	return a.next.Summarize(results)
}

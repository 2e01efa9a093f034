package mock

import (
	"context"

	"github.com/mwalczyk-dev/postrisk"
)

var _ postrisk.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of postrisk.Analyzer.
type Analyzer struct {
	AnalyzeFn      func(ctx context.Context, content string, settings postrisk.AnalysisSettings, visualContext string) *postrisk.AnalysisResult
	BatchAnalyzeFn func(ctx context.Context, contents []string, settings postrisk.AnalysisSettings) []*postrisk.AnalysisResult
	SummarizeFn    func(results []*postrisk.AnalysisResult) (*postrisk.Summary, error)
}

func (a *Analyzer) Analyze(ctx context.Context, content string, settings postrisk.AnalysisSettings, visualContext string) *postrisk.AnalysisResult {
	return a.AnalyzeFn(ctx, content, settings, visualContext)
}

func (a *Analyzer) BatchAnalyze(ctx context.Context, contents []string, settings postrisk.AnalysisSettings) []*postrisk.AnalysisResult {
	return a.BatchAnalyzeFn(ctx, contents, settings)
}

func (a *Analyzer) Summarize(results []*postrisk.AnalysisResult) (*postrisk.Summary, error) {
	return a.SummarizeFn(results)
}

// Package analyze implements the analysis orchestrator: preprocessing,
// result caching, model calls with retry-with-downgrade, response parsing,
// and validation into a bounded result.
package analyze

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/mwalczyk-dev/postrisk"
)

// Default model candidates, tried in order. The primary model is slower but
// more thorough; the fallback trades quality for speed.
const (
	DefaultPrimaryModel  = "llama-3.1-70b-versatile"
	DefaultFallbackModel = "llama-3.1-8b-instant"
)

// Fixed sampling parameters for analysis calls.
const (
	maxTokens   = 1500
	temperature = 0.3
)

// FailureMarker prefixes the risk factor recorded when the pipeline fails
// internally. Callers can match on it to distinguish degraded results from
// genuine low-confidence output.
const FailureMarker = "Analysis failed:"

// Ensure Analyzer implements postrisk.Analyzer at compile time.
var _ postrisk.Analyzer = (*Analyzer)(nil)

// Analyzer assesses content for publication risk using a chat-completion
// model. It owns an in-memory result cache keyed by a fingerprint of the
// preprocessed content and the settings. The cache is unbounded and lives
// for the lifetime of the Analyzer.
//
// Analyzer is safe for concurrent use.
type Analyzer struct {
	chat   postrisk.ChatClient
	models []string

	mu    sync.Mutex
	cache map[uint64]*postrisk.AnalysisResult
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModels sets the ordered list of candidate models. Each model is tried
// once per analysis; the first success wins.
func WithModels(models ...string) Option {
	return func(a *Analyzer) {
		a.models = models
	}
}

// NewAnalyzer creates a new Analyzer backed by the given chat client.
func NewAnalyzer(chat postrisk.ChatClient, opts ...Option) *Analyzer {
	a := &Analyzer{
		chat:   chat,
		models: []string{DefaultPrimaryModel, DefaultFallbackModel},
		cache:  make(map[uint64]*postrisk.AnalysisResult),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze assesses content and returns a fully populated result. It never
// fails past its boundary: internal failures return a neutral-medium result
// whose risk factors carry FailureMarker.
func (a *Analyzer) Analyze(ctx context.Context, content string, settings postrisk.AnalysisSettings, visualContext string) *postrisk.AnalysisResult {
	processed := Preprocess(content)
	if processed == "" {
		return emptyContentResult()
	}

	key := fingerprint(processed, settings)
	a.mu.Lock()
	cached, ok := a.cache[key]
	a.mu.Unlock()
	if ok {
		return cached
	}

	prompt := BuildPrompt(processed, settings, postrisk.RiskCategories(), visualContext)

	raw, err := a.complete(ctx, prompt)
	if err != nil {
		// Failure results are returned but never cached: transient failures
		// must not become permanently memoized.
		return failureResult(err)
	}

	result := validate(parseResponse(raw))

	a.mu.Lock()
	a.cache[key] = result
	a.mu.Unlock()

	return result
}

// BatchAnalyze applies Analyze sequentially over contents.
func (a *Analyzer) BatchAnalyze(ctx context.Context, contents []string, settings postrisk.AnalysisSettings) []*postrisk.AnalysisResult {
	results := make([]*postrisk.AnalysisResult, 0, len(contents))
	for _, content := range contents {
		results = append(results, a.Analyze(ctx, content, settings, ""))
	}
	return results
}

// Summarize computes aggregate statistics over a batch of results.
func (a *Analyzer) Summarize(results []*postrisk.AnalysisResult) (*postrisk.Summary, error) {
	if len(results) == 0 {
		return nil, postrisk.Errorf(postrisk.EINVALID, "no results to summarize")
	}

	var total, high, medium int
	for _, r := range results {
		total += r.RiskPercentage
		switch {
		case r.RiskPercentage >= postrisk.HighRiskThreshold:
			high++
		case r.RiskPercentage >= postrisk.MediumRiskThreshold:
			medium++
		}
	}

	n := len(results)
	return &postrisk.Summary{
		TotalItems:         n,
		AverageRisk:        round1(float64(total) / float64(n)),
		HighRiskCount:      high,
		MediumRiskCount:    medium,
		LowRiskCount:       n - high - medium,
		HighRiskPercentage: round1(float64(high) / float64(n) * 100),
	}, nil
}

// TestConnection issues a minimal one-token completion against the last
// (cheapest) candidate model to verify API connectivity and credentials.
func (a *Analyzer) TestConnection(ctx context.Context) error {
	model := a.models[len(a.models)-1]
	_, err := a.chat.Complete(ctx, postrisk.ChatRequest{
		Model:     model,
		Messages:  []postrisk.ChatMessage{{Role: postrisk.RoleUser, Content: "Test"}},
		MaxTokens: 10,
	})
	return err
}

// complete tries each candidate model in order and returns the first
// successful completion. The error from the final attempt propagates.
func (a *Analyzer) complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for _, model := range a.models {
		raw, err := a.chat.Complete(ctx, postrisk.ChatRequest{
			Model: model,
			Messages: []postrisk.ChatMessage{
				{Role: postrisk.RoleSystem, Content: SystemPrompt},
				{Role: postrisk.RoleUser, Content: prompt},
			},
			MaxTokens:    maxTokens,
			Temperature:  temperature,
			JSONResponse: true,
		})
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// Preprocess bounds and normalizes content before prompting: the text is
// truncated to MaxContentLength and all whitespace runs (including newlines)
// collapse to single spaces.
func Preprocess(content string) string {
	if len(content) > postrisk.MaxContentLength {
		content = content[:postrisk.MaxContentLength]
	}
	return strings.Join(strings.Fields(content), " ")
}

// fingerprint computes the cache key from preprocessed content and settings
// serialized with stable key order.
func fingerprint(content string, settings postrisk.AnalysisSettings) uint64 {
	key := fmt.Sprintf(`{"audience_size":%q,"author_type":%q,"platform":%q,"sensitivity":%d}`,
		settings.AudienceSize, settings.AuthorType, settings.Platform, settings.Sensitivity)
	return xxhash.Sum64String(content + "_" + key)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// emptyContentResult is the zero-risk short-circuit for content that is
// empty after preprocessing. No model call is made and the result is not
// cached.
func emptyContentResult() *postrisk.AnalysisResult {
	return &postrisk.AnalysisResult{
		RiskPercentage:  0,
		RiskLevel:       postrisk.RiskLow,
		Categories:      zeroCategories(),
		RiskFactors:     []string{},
		Recommendations: []string{"Content is empty or too short to analyze"},
		Explanation:     "No meaningful content to analyze.",
	}
}

// failureResult is the neutral-medium fallback for any failure reaching the
// analysis boundary.
func failureResult(err error) *postrisk.AnalysisResult {
	return &postrisk.AnalysisResult{
		RiskPercentage:  50,
		RiskLevel:       postrisk.RiskMedium,
		Categories:      zeroCategories(),
		RiskFactors:     []string{fmt.Sprintf("%s %v", FailureMarker, err)},
		Recommendations: []string{"Please try again or review content manually"},
		Explanation:     fmt.Sprintf("Unable to complete analysis due to: %v", err),
	}
}

func zeroCategories() map[string]int {
	categories := make(map[string]int, len(postrisk.CategoryNames()))
	for _, name := range postrisk.CategoryNames() {
		categories[name] = 0
	}
	return categories
}

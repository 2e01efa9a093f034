package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalczyk-dev/postrisk"
	"github.com/mwalczyk-dev/postrisk/mock"
	"github.com/mwalczyk-dev/postrisk/slog"
)

func newBufLogger() (*stdslog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return stdslog.New(stdslog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	logger, buf := newBufLogger()
	next := &mock.Analyzer{
		AnalyzeFn: func(ctx context.Context, content string, settings postrisk.AnalysisSettings, visualContext string) *postrisk.AnalysisResult {
			return &postrisk.AnalysisResult{RiskPercentage: 55, RiskLevel: postrisk.RiskMedium}
		},
	}
	a := slog.NewLoggingAnalyzer(next, logger)

	result := a.Analyze(context.Background(), "some content", postrisk.AnalysisSettings{Platform: postrisk.PlatformTwitter}, "")
	require.Equal(t, 55, result.RiskPercentage)

	out := buf.String()
	assert.Contains(t, out, "analyze")
	assert.Contains(t, out, "platform=Twitter")
	assert.Contains(t, out, "risk=55")
	assert.Contains(t, out, "level=Medium")
	assert.Contains(t, out, "duration=")
}

func TestLoggingAnalyzer_BatchAnalyze(t *testing.T) {
	t.Parallel()

	logger, buf := newBufLogger()
	next := &mock.Analyzer{
		BatchAnalyzeFn: func(ctx context.Context, contents []string, settings postrisk.AnalysisSettings) []*postrisk.AnalysisResult {
			return make([]*postrisk.AnalysisResult, len(contents))
		},
	}
	a := slog.NewLoggingAnalyzer(next, logger)

	results := a.BatchAnalyze(context.Background(), []string{"a", "b"}, postrisk.AnalysisSettings{})
	require.Len(t, results, 2)
	assert.Contains(t, buf.String(), "items=2")
}

func TestLoggingWebExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("successful extraction", func(t *testing.T) {
		t.Parallel()

		logger, buf := newBufLogger()
		next := &mock.WebExtractor{
			ExtractFn: func(ctx context.Context, url string) (*postrisk.ExtractionResult, error) {
				return &postrisk.ExtractionResult{URL: url, TextContent: "hello"}, nil
			},
		}
		e := slog.NewLoggingWebExtractor(next, logger)

		result, err := e.Extract(context.Background(), "https://example.com")
		require.NoError(t, err)
		require.Equal(t, "hello", result.TextContent)

		out := buf.String()
		assert.Contains(t, out, "web extract")
		assert.Contains(t, out, "url=https://example.com")
		assert.Contains(t, out, "text_len=5")
	})

	t.Run("error is logged", func(t *testing.T) {
		t.Parallel()

		logger, buf := newBufLogger()
		next := &mock.WebExtractor{
			ExtractFn: func(ctx context.Context, url string) (*postrisk.ExtractionResult, error) {
				return nil, postrisk.Errorf(postrisk.EINVALID, "invalid URL format: %q", url)
			},
		}
		e := slog.NewLoggingWebExtractor(next, logger)

		_, err := e.Extract(context.Background(), "garbage")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "invalid URL format")
	})
}

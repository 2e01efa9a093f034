package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwalczyk-dev/postrisk"
	"github.com/mwalczyk-dev/postrisk/analyze"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	categories := postrisk.RiskCategories()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		first := analyze.BuildPrompt("hello world", testSettings(), categories, "")
		second := analyze.BuildPrompt("hello world", testSettings(), categories, "")
		assert.Equal(t, first, second)
	})

	t.Run("embeds content and settings", func(t *testing.T) {
		t.Parallel()

		prompt := analyze.BuildPrompt("hello world", testSettings(), categories, "")
		assert.Contains(t, prompt, `"hello world"`)
		assert.Contains(t, prompt, "- Target Platform: Twitter")
		assert.Contains(t, prompt, "- Author Type: Individual")
		assert.Contains(t, prompt, "- Audience Size: < 1K followers")
		assert.Contains(t, prompt, "- Analysis Sensitivity: 5/10")
	})

	t.Run("embeds the weighted taxonomy", func(t *testing.T) {
		t.Parallel()

		prompt := analyze.BuildPrompt("x", testSettings(), categories, "")
		for i, cat := range categories {
			assert.Contains(t, prompt, cat.Name)
			if i == 0 {
				assert.Contains(t, prompt, "1. Identity & Discrimination (Weight: 25%)")
			}
		}
	})

	t.Run("embeds the response schema and band guidelines", func(t *testing.T) {
		t.Parallel()

		prompt := analyze.BuildPrompt("x", testSettings(), categories, "")
		assert.Contains(t, prompt, `"risk_percentage": <0-100>`)
		assert.Contains(t, prompt, `"risk_level": "<Low/Medium/High>"`)
		assert.Contains(t, prompt, `"risk_factors"`)
		assert.Contains(t, prompt, `"recommendations"`)
		assert.Contains(t, prompt, `"explanation"`)
		assert.Contains(t, prompt, "Low Risk (0-39%)")
		assert.Contains(t, prompt, "Medium Risk (40-69%)")
		assert.Contains(t, prompt, "High Risk (70-100%)")
	})

	t.Run("visual context included only when present", func(t *testing.T) {
		t.Parallel()

		with := analyze.BuildPrompt("x", testSettings(), categories, "Images Found: 2")
		assert.Contains(t, with, "VISUAL CONTEXT:")
		assert.Contains(t, with, "Images Found: 2")

		without := analyze.BuildPrompt("x", testSettings(), categories, "")
		assert.NotContains(t, without, "VISUAL CONTEXT:")
	})
}

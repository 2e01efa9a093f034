package analyze

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/mwalczyk-dev/postrisk"
)

var digitsRE = regexp.MustCompile(`\d+`)

// parseResponse interprets the raw model output. Well-formed JSON is used
// directly; anything else goes through a heuristic text scan; output that
// cannot be interpreted at all degrades to a medium-risk parse failure.
// The returned result is not yet validated.
func parseResponse(raw string) *postrisk.AnalysisResult {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "{") {
		var payload map[string]any
		if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
			return parseFailureResult(raw)
		}
		return resultFromPayload(payload)
	}

	return heuristicResult(raw)
}

// resultFromPayload coerces a decoded JSON object into a result. Field types
// are advisory: numbers may arrive as floats or strings, list fields may
// arrive as bare scalars.
func resultFromPayload(payload map[string]any) *postrisk.AnalysisResult {
	result := &postrisk.AnalysisResult{
		Categories: map[string]int{},
	}

	if v, ok := payload["risk_percentage"]; ok {
		result.RiskPercentage = toInt(v)
	}
	if v, ok := payload["categories"].(map[string]any); ok {
		for name, raw := range v {
			result.Categories[name] = toInt(raw)
		}
	}
	result.RiskFactors = toStrings(payload["risk_factors"])
	result.Recommendations = toStrings(payload["recommendations"])
	if v, ok := payload["explanation"].(string); ok {
		result.Explanation = v
	}

	return result
}

// heuristicResult scans free text for a line mentioning a risk percentage.
// The first digit run on such a line becomes the risk percentage, capped at
// 100, and the full raw text is kept as the explanation. Text with no
// extractable percentage is treated as a parse failure.
func heuristicResult(raw string) *postrisk.AnalysisResult {
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(strings.ToLower(line), "risk") || !strings.Contains(line, "%") {
			continue
		}
		match := digitsRE.FindString(line)
		if match == "" {
			continue
		}
		pct, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		if pct > 100 {
			pct = 100
		}
		return &postrisk.AnalysisResult{
			RiskPercentage: pct,
			Categories:     map[string]int{},
			Explanation:    raw,
		}
	}

	return parseFailureResult(raw)
}

// parseFailureResult is the fixed medium-risk structure for output that
// could not be interpreted even heuristically.
func parseFailureResult(raw string) *postrisk.AnalysisResult {
	return &postrisk.AnalysisResult{
		RiskPercentage:  50,
		RiskLevel:       postrisk.RiskMedium,
		Categories:      zeroCategories(),
		RiskFactors:     []string{"Unable to parse detailed analysis"},
		Recommendations: []string{"Please review the content manually"},
		Explanation:     raw,
	}
}

// validate normalizes a parsed result into the bounded schema: the risk
// percentage is clamped to [0,100], the risk level is recomputed from the
// clamped percentage (any upstream level is discarded), every taxonomy
// category is present with a clamped value, list fields are non-nil, and
// the explanation is non-empty.
func validate(result *postrisk.AnalysisResult) *postrisk.AnalysisResult {
	result.RiskPercentage = clamp(result.RiskPercentage)
	result.RiskLevel = postrisk.RiskLevelFor(result.RiskPercentage)

	if result.Categories == nil {
		result.Categories = map[string]int{}
	}
	normalized := make(map[string]int, len(postrisk.CategoryNames()))
	for _, name := range postrisk.CategoryNames() {
		normalized[name] = clamp(result.Categories[name])
	}
	result.Categories = normalized

	if result.RiskFactors == nil {
		result.RiskFactors = []string{}
	}
	if result.Recommendations == nil {
		result.Recommendations = []string{}
	}
	if result.Explanation == "" {
		result.Explanation = "Analysis completed successfully."
	}

	return result
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// toInt coerces a JSON value into an int, accepting numbers and numeric
// strings. Anything else maps to 0.
func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f)
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return 0
}

// toStrings coerces a JSON value into a string slice, wrapping a bare scalar
// into a single-element slice.
func toStrings(v any) []string {
	switch s := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			} else if item != nil {
				out = append(out, toString(item))
			}
		}
		return out
	case []string:
		return s
	case string:
		return []string{s}
	default:
		return []string{toString(v)}
	}
}

func toString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.Trim(string(b), `"`)
}

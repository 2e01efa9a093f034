package postrisk

import "context"

// Platform identifies the social platform the content targets.
type Platform string

// Supported platforms.
const (
	PlatformTwitter   Platform = "Twitter"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformYouTube   Platform = "YouTube"
	PlatformTikTok    Platform = "TikTok"
	PlatformGeneral   Platform = "General"
)

// AuthorType identifies the profile type of the content author.
type AuthorType string

// Supported author types.
const (
	AuthorIndividual   AuthorType = "Individual"
	AuthorPublicFigure AuthorType = "Public Figure"
	AuthorCorporate    AuthorType = "Corporate"
	AuthorInfluencer   AuthorType = "Influencer"
	AuthorJournalist   AuthorType = "Journalist"
	AuthorPolitician   AuthorType = "Politician"
)

// AudienceSize is an estimated follower-count bucket.
type AudienceSize string

// Supported audience buckets.
const (
	AudienceUnder1K   AudienceSize = "< 1K followers"
	Audience1KTo10K   AudienceSize = "1K - 10K followers"
	Audience10KTo100K AudienceSize = "10K - 100K followers"
	Audience100KTo1M  AudienceSize = "100K - 1M followers"
	AudienceOver1M    AudienceSize = "> 1M followers"
)

// AnalysisSettings is the immutable context for a single analysis call.
type AnalysisSettings struct {
	Platform     Platform     `json:"platform"`
	AuthorType   AuthorType   `json:"author_type"`
	AudienceSize AudienceSize `json:"audience_size"`

	// Sensitivity ranges 1-10; higher values request a more conservative
	// analysis. It is embedded in the prompt and interpreted by the model.
	Sensitivity int `json:"sensitivity"`
}

// Validate returns an error if the settings contain invalid fields.
func (s *AnalysisSettings) Validate() error {
	if s.Platform == "" {
		return Errorf(EINVALID, "platform required")
	}
	if s.AuthorType == "" {
		return Errorf(EINVALID, "author type required")
	}
	if s.Sensitivity < 1 || s.Sensitivity > 10 {
		return Errorf(EINVALID, "sensitivity must be between 1 and 10")
	}
	return nil
}

// RiskLevel is the coarse band derived from a risk percentage.
type RiskLevel string

// Risk levels.
const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Risk band thresholds. High is >= HighRiskThreshold, Medium is
// >= MediumRiskThreshold, Low is everything below.
const (
	MediumRiskThreshold = 40
	HighRiskThreshold   = 70
)

// RiskLevelFor derives the risk level from a percentage. The level is always
// recomputed from the percentage; a level supplied by the model is discarded.
func RiskLevelFor(percentage int) RiskLevel {
	switch {
	case percentage >= HighRiskThreshold:
		return RiskHigh
	case percentage >= MediumRiskThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// RiskCategory is a named, weighted assessment dimension.
type RiskCategory struct {
	Name   string
	Weight int // percent, all categories sum to 100
}

// RiskCategories returns the fixed weighted taxonomy used throughout
// prompting and validation. The order is significant for prompt stability.
func RiskCategories() []RiskCategory {
	return []RiskCategory{
		{Name: "Identity & Discrimination", Weight: 25},
		{Name: "Political Sensitivity", Weight: 20},
		{Name: "Social Issues", Weight: 20},
		{Name: "Professional Appropriateness", Weight: 15},
		{Name: "Platform Violations", Weight: 10},
		{Name: "Timing & Context", Weight: 10},
	}
}

// CategoryNames returns the taxonomy category names in taxonomy order.
func CategoryNames() []string {
	cats := RiskCategories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}

// AnalysisResult is the canonical analysis output. It is always fully
// populated: every taxonomy category is present, the risk level matches the
// percentage, and the explanation is non-empty.
type AnalysisResult struct {
	RiskPercentage  int            `json:"risk_percentage"`
	RiskLevel       RiskLevel      `json:"risk_level"`
	Categories      map[string]int `json:"categories"`
	RiskFactors     []string       `json:"risk_factors"`
	Recommendations []string       `json:"recommendations"`
	Explanation     string         `json:"explanation"`
}

// Summary holds aggregate statistics over a batch of analysis results.
type Summary struct {
	TotalItems         int     `json:"total_items"`
	AverageRisk        float64 `json:"average_risk"`
	HighRiskCount      int     `json:"high_risk_count"`
	MediumRiskCount    int     `json:"medium_risk_count"`
	LowRiskCount       int     `json:"low_risk_count"`
	HighRiskPercentage float64 `json:"high_risk_percentage"`
}

// Analyzer assesses content for publication risk.
//
// Analyze never fails past its boundary: every internal failure is converted
// into a fully populated neutral-medium result whose risk factors carry a
// stable failure marker. The visualContext argument is optional extra
// context describing images and metadata; pass "" when absent.
type Analyzer interface {
	Analyze(ctx context.Context, content string, settings AnalysisSettings, visualContext string) *AnalysisResult

	// BatchAnalyze applies Analyze sequentially over contents.
	BatchAnalyze(ctx context.Context, contents []string, settings AnalysisSettings) []*AnalysisResult

	// Summarize computes aggregate statistics for a batch of results.
	// Returns EINVALID for an empty input.
	Summarize(results []*AnalysisResult) (*Summary, error)
}

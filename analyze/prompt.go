package analyze

import (
	"fmt"
	"strings"

	"github.com/mwalczyk-dev/postrisk"
)

// SystemPrompt fixes the analyst persona for every analysis call.
const SystemPrompt = "You are an expert content analyst specializing in social media risk assessment. Always respond with valid JSON."

// categoryRubrics holds the fixed rubric bullets for each taxonomy category.
// Keys must match the taxonomy category names.
var categoryRubrics = map[string][]string{
	"Identity & Discrimination": {
		"Content targeting protected characteristics",
		"Use of offensive language or slurs",
		"Discriminatory statements or stereotypes",
		"Exclusionary language",
	},
	"Political Sensitivity": {
		"Extreme political positions",
		"Conspiracy theories or misinformation",
		"Election-related false claims",
		"Polarizing political rhetoric",
	},
	"Social Issues": {
		"Controversial takes on current events",
		"Dismissing social movements",
		"Insensitive commentary on sensitive topics",
		"Tone-deaf responses to crises",
	},
	"Professional Appropriateness": {
		"Workplace conduct violations",
		"Industry ethics concerns",
		"Employer conflicts",
		"Unprofessional behavior",
	},
	"Platform Violations": {
		"Harassment or bullying",
		"Doxxing or privacy violations",
		"Terms of service violations",
		"Spam or manipulative behavior",
	},
	"Timing & Context": {
		"Insensitive timing of posts",
		"Trending topic risks",
		"Anniversary date considerations",
		"Current event sensitivity",
	},
}

// BuildPrompt builds the analysis prompt. It is pure and deterministic:
// identical inputs produce byte-identical output. The prompt embeds the
// content, the weighted taxonomy with rubric descriptions, the settings,
// the required JSON response shape, and the risk band definitions.
func BuildPrompt(content string, settings postrisk.AnalysisSettings, categories []postrisk.RiskCategory, visualContext string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert content analyst specializing in social media risk assessment. ")
	sb.WriteString("Analyze the following content for potential \"cancellation\" risk and provide a comprehensive assessment.\n\n")

	sb.WriteString("CONTENT TO ANALYZE:\n")
	fmt.Fprintf(&sb, "%q\n\n", content)

	if visualContext != "" {
		sb.WriteString("VISUAL CONTEXT:\n")
		sb.WriteString(visualContext)
		sb.WriteString("\n\n")
	}

	sb.WriteString("ANALYSIS CONTEXT:\n")
	fmt.Fprintf(&sb, "- Target Platform: %s\n", settings.Platform)
	fmt.Fprintf(&sb, "- Author Type: %s\n", settings.AuthorType)
	fmt.Fprintf(&sb, "- Audience Size: %s\n", settings.AudienceSize)
	fmt.Fprintf(&sb, "- Analysis Sensitivity: %d/10\n\n", settings.Sensitivity)

	sb.WriteString("RISK ASSESSMENT FRAMEWORK:\n")
	sb.WriteString("Analyze the content across these categories with the specified weights:\n\n")
	for i, cat := range categories {
		fmt.Fprintf(&sb, "%d. %s (Weight: %d%%)\n", i+1, cat.Name, cat.Weight)
		for _, bullet := range categoryRubrics[cat.Name] {
			fmt.Fprintf(&sb, "   - %s\n", bullet)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("1. Rate each category from 0-100 based on risk level\n")
	sb.WriteString("2. Calculate overall risk percentage (0-100)\n")
	sb.WriteString("3. Identify specific risk factors\n")
	sb.WriteString("4. Provide actionable recommendations\n")
	sb.WriteString("5. Consider the author type and platform context\n")
	sb.WriteString("6. If visual context is provided, consider images, metadata, and visual elements in your analysis\n")
	sb.WriteString("7. Be thorough but concise\n\n")

	sb.WriteString("RESPONSE FORMAT:\n")
	sb.WriteString("Respond ONLY with valid JSON in this exact format:\n")
	sb.WriteString("{\n")
	sb.WriteString("    \"risk_percentage\": <0-100>,\n")
	sb.WriteString("    \"risk_level\": \"<Low/Medium/High>\",\n")
	sb.WriteString("    \"categories\": {\n")
	for i, cat := range categories {
		comma := ","
		if i == len(categories)-1 {
			comma = ""
		}
		fmt.Fprintf(&sb, "        %q: <0-100>%s\n", cat.Name, comma)
	}
	sb.WriteString("    },\n")
	sb.WriteString("    \"risk_factors\": [\"<specific risk factor 1>\", \"<specific risk factor 2>\"],\n")
	sb.WriteString("    \"recommendations\": [\"<actionable recommendation 1>\", \"<actionable recommendation 2>\"],\n")
	sb.WriteString("    \"explanation\": \"<detailed explanation of the analysis and reasoning>\"\n")
	sb.WriteString("}\n\n")

	sb.WriteString("RISK LEVEL GUIDELINES:\n")
	sb.WriteString("- Low Risk (0-39%): Minimal concern, generally safe to post\n")
	sb.WriteString("- Medium Risk (40-69%): Potential controversy, suggest revisions\n")
	sb.WriteString("- High Risk (70-100%): Immediate backlash likely, recommend not posting\n\n")

	sb.WriteString("IMPORTANT NOTES:\n")
	sb.WriteString("- Consider the sensitivity setting: higher values = more conservative analysis\n")
	sb.WriteString("- Account for platform-specific norms and community standards\n")
	sb.WriteString("- Factor in author type and audience reach\n")
	sb.WriteString("- Be objective and evidence-based in your assessment\n")
	sb.WriteString("- Focus on actionable insights, not just criticism\n")

	return sb.String()
}

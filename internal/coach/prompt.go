package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/scoring"
)

const systemPrompt = `You are a career coach who helps people decide whether to pursue a career building virtual reality applications for healthcare. You explain self-assessment results honestly and encouragingly, without inventing scores.`

func buildUserMessage(result *scoring.Result, respondent string) string {
	var b strings.Builder

	if respondent != "" {
		fmt.Fprintf(&b, "Respondent: %s\n", respondent)
	}
	fmt.Fprintf(&b, "Recommendation: %s\n", result.Recommendation)
	fmt.Fprintf(&b, "Overall score: %d/100\n", result.OverallScore)
	fmt.Fprintf(&b, "Confidence: %d/100\n", result.ConfidenceScore)

	b.WriteString("\nCategory Scores:\n")
	for _, cs := range result.Categories {
		fmt.Fprintf(&b, "- %s: %d/%d (%d%%, %s)\n", cs.Label, cs.Score, cs.MaxScore, cs.Percentage, cs.Level)
	}

	b.WriteString("\nWISCAR Profile (0-5):\n")
	for _, d := range catalog.Dimensions() {
		fmt.Fprintf(&b, "- %s: %.2f\n", d.DisplayName(), result.Profile.Get(d))
	}

	writeList(&b, "Skill Gaps", result.SkillGaps)
	writeList(&b, "Suggested Roles", result.CareerRoles)
	if result.RecommendedPath != "" {
		fmt.Fprintf(&b, "\nRecommended Path:\n%s\n", result.RecommendedPath)
	}

	b.WriteString(`
Instructions:
Write a coaching note for this person:
1. A one-line headline that states the verdict plainly.
2. A 3-5 sentence summary explaining what the scores mean together. Refer to the numbers above; do not invent new ones.
3. 2-4 strengths, taken from the highest categories and dimensions.
4. 2-4 focus areas, taken from the lowest categories, dimensions and the skill gaps. Most important first.
5. A first-week plan of 3-5 concrete, small actions that fit the recommendation.

Keep every list entry under 15 words. Use plain text without markdown.`)

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}

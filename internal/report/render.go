// Package report renders scoring results and reads answer files for
// non-interactive scoring.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/scoring"
)

// profileBarWidth is the number of cells used for a 0-5 dimension bar.
const profileBarWidth = 20

// WriteText renders r as plain text for a terminal.
func WriteText(w io.Writer, r *scoring.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Recommendation: %s  (overall %d, confidence %d)\n\n", r.Recommendation, r.OverallScore, r.ConfidenceScore)

	b.WriteString("Category scores\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, cs := range r.Categories {
		fmt.Fprintf(tw, "  %s\t%d/%d\t%d%%\t%s\n", cs.Label, cs.Score, cs.MaxScore, cs.Percentage, cs.Level)
	}
	tw.Flush()

	b.WriteString("\nWISCAR profile\n")
	tw = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, d := range catalog.Dimensions() {
		v := r.Profile.Get(d)
		fmt.Fprintf(tw, "  %s\t%.2f\t%s\n", d.DisplayName(), v, Bar(v/catalog.MaxRating, profileBarWidth))
	}
	tw.Flush()

	writeList(&b, "Insights", r.Insights, false)
	writeList(&b, "Next steps", r.NextSteps, true)
	writeList(&b, "Career roles", r.CareerRoles, false)
	if len(r.SkillGaps) == 0 {
		b.WriteString("\nSkill gaps\n  none\n")
	} else {
		writeList(&b, "Skill gaps", r.SkillGaps, false)
	}

	fmt.Fprintf(&b, "\nRecommended path\n  %s\n", r.RecommendedPath)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, title string, items []string, numbered bool) {
	fmt.Fprintf(b, "\n%s\n", title)
	for i, item := range items {
		if numbered {
			fmt.Fprintf(b, "  %d. %s\n", i+1, item)
		} else {
			fmt.Fprintf(b, "  - %s\n", item)
		}
	}
}

// WriteJSON renders r as indented JSON.
func WriteJSON(w io.Writer, r *scoring.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// Bar draws a fraction in [0, 1] as a fixed-width block bar.
func Bar(fraction float64, width int) string {
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(fraction * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

package catalog

import (
	"fmt"
	"strings"
)

// validateQuestions performs all structural checks on a question bank.
// Returns a combined error describing every problem found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "question bank is empty")
	}

	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		prefix := fmt.Sprintf("question %d (%q)", i, q.ID)

		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question %d: id is required", i))
		} else if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("%s: text is required", prefix))
		}
		if !q.Category.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown category %q", prefix, q.Category))
		}
		if !q.Subcategory.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown subcategory %q", prefix, q.Subcategory))
		}
		if !q.Type.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown type %q", prefix, q.Type))
			continue
		}

		if q.Type == TypeLikert {
			switch {
			case q.Scale == nil:
				errs = append(errs, fmt.Sprintf("%s: likert question requires a scale", prefix))
			case q.Scale.Min >= q.Scale.Max:
				errs = append(errs, fmt.Sprintf("%s: scale min %d must be below max %d", prefix, q.Scale.Min, q.Scale.Max))
			case q.Scale.Min < 0 || q.Scale.Max > MaxRating:
				errs = append(errs, fmt.Sprintf("%s: scale %d..%d must lie within 0..%d", prefix, q.Scale.Min, q.Scale.Max, MaxRating))
			}
			if len(q.Options) > 0 {
				errs = append(errs, fmt.Sprintf("%s: likert question must not declare options", prefix))
			}
			continue
		}

		if q.Scale != nil {
			errs = append(errs, fmt.Sprintf("%s: %s question must not declare a scale", prefix, q.Type))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s: %s question requires at least 2 options, got %d", prefix, q.Type, len(q.Options)))
		}
		// The last option scores its position, which must stay within the rating ceiling.
		if q.Type == TypeMultipleChoice && len(q.Options) > MaxRating {
			errs = append(errs, fmt.Sprintf("%s: %s question has %d options, must have at most %d", prefix, q.Type, len(q.Options), MaxRating))
		}
		opts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if strings.TrimSpace(o) == "" {
				errs = append(errs, fmt.Sprintf("%s: empty option", prefix))
			}
			if opts[o] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, o))
			}
			opts[o] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

package coach

import "github.com/abhisek/fitcheck/internal/llm"

// NoteSchema defines the JSON schema for a coaching note.
var NoteSchema = &llm.Schema{
	Name:        "coaching-note",
	Description: "A short coaching note that explains an aptitude assessment result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line verdict (5-12 words)",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence explanation of the result",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 strengths drawn from the strongest categories and dimensions",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 areas to work on, most important first",
			},
			"first_week_plan": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 concrete actions for the first week",
			},
		},
		"required":             []any{"headline", "summary", "strengths", "focus_areas", "first_week_plan"},
		"additionalProperties": false,
	},
}

package coach

import "time"

// Note is an LLM-written explanation of a scored assessment. It never
// changes the result it describes.
type Note struct {
	Headline      string    `json:"headline"`
	Summary       string    `json:"summary"`
	Strengths     []string  `json:"strengths"`
	FocusAreas    []string  `json:"focus_areas"`
	FirstWeekPlan []string  `json:"first_week_plan"`
	Model         string    `json:"model,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
}

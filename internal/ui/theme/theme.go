package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fitcheck/internal/scoring"
)

// Color palette: clinical blues with a warm accent
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Heading = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// LevelColor maps a category level to its display color.
func LevelColor(l scoring.Level) color.Color {
	switch l {
	case scoring.LevelExcellent:
		return Success
	case scoring.LevelHigh:
		return Secondary
	case scoring.LevelModerate:
		return Accent
	default:
		return Error
	}
}

// RecommendationColor maps the overall verdict to its display color.
func RecommendationColor(r scoring.Recommendation) color.Color {
	switch r {
	case scoring.RecommendYes:
		return Success
	case scoring.RecommendMaybe:
		return Accent
	default:
		return Error
	}
}

package session

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fitcheck/internal/router"
	"github.com/abhisek/fitcheck/internal/screen"
	"github.com/abhisek/fitcheck/internal/ui/components"
	"github.com/abhisek/fitcheck/internal/ui/layout"
	"github.com/abhisek/fitcheck/internal/ui/theme"
)

const maxNameLen = 40

// IntakeScreen asks for an optional name before the questions start.
type IntakeScreen struct {
	deps  Deps
	input components.TextInput
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// NewIntake creates the intake screen.
func NewIntake(deps Deps) *IntakeScreen {
	return &IntakeScreen{
		deps:  deps,
		input: components.NewTextInput("your name (optional)", maxNameLen),
	}
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *IntakeScreen) Title() string {
	return "New Assessment"
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			quiz := New(s.deps, s.input.Value())
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: quiz} }
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *IntakeScreen) View(width, height int) string {
	total := 0
	if s.deps.Catalog != nil {
		total = s.deps.Catalog.Len()
	}

	lines := []string{
		theme.Heading.Render("Before you start"),
		"",
		theme.Body.Render(fmt.Sprintf("You will answer %d short questions about your interests,", total)),
		theme.Body.Render("working style, technical background and readiness."),
		theme.Body.Render("There are no right answers. Go with your first instinct."),
		"",
		theme.Body.Render("What should the report call you?"),
		"",
		s.input.View(),
	}

	card := theme.Card.Width(min(width-4, 72)).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

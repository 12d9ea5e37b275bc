package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/ui/components"
	"github.com/abhisek/fitcheck/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}

	q := s.current()
	inner := min(width-4, 90)

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.state.Step()+1, s.state.Total()),
		s.state.Progress()/100, true, inner)
	b.WriteString(progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render(q.Category.DisplayName()))
	if _, answered := s.state.Answer(q.ID); answered {
		b.WriteString(theme.Hint.Render("  (answered)"))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	if q.Type == catalog.TypeLikert {
		b.WriteString(s.likert.View())
	} else {
		b.WriteString(s.choices.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+b.String())
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		theme.Heading.Render("Leave the assessment?") + "\n\n" +
			theme.Body.Render("Your answers so far will be discarded.") + "\n\n" +
			theme.Hint.Render("y to leave, n to keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

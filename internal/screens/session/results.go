package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/coach"
	"github.com/abhisek/fitcheck/internal/llm"
	"github.com/abhisek/fitcheck/internal/router"
	"github.com/abhisek/fitcheck/internal/screen"
	"github.com/abhisek/fitcheck/internal/store"
	"github.com/abhisek/fitcheck/internal/ui/components"
	"github.com/abhisek/fitcheck/internal/ui/layout"
	"github.com/abhisek/fitcheck/internal/ui/theme"
)

type saveState int

const (
	saveSkipped saveState = iota
	saveRunning
	saveDone
	saveFailed
)

// ResultsScreen shows a finished report. A live screen (just completed)
// saves the report when it opens.
type ResultsScreen struct {
	deps   Deps
	report *store.Report
	live   bool

	save    saveState
	saveErr string

	note     *coach.Note
	coaching bool
	coachErr string

	offset   int
	maxLines int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults creates a results screen for rep. live marks a report that was
// just completed and still needs saving.
func NewResults(deps Deps, rep *store.Report, live bool) *ResultsScreen {
	if rep.Timestamp.IsZero() {
		rep.Timestamp = time.Now().UTC()
	}
	return &ResultsScreen{deps: deps, report: rep, live: live}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if !s.live || s.deps.Reports == nil {
		return nil
	}
	s.save = saveRunning
	repo, rep := s.deps.Reports, s.report
	return func() tea.Msg {
		return reportSavedMsg{Err: repo.Save(context.Background(), rep)}
	}
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
	if s.deps.Coach != nil && s.note == nil {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Coaching note"})
	}
	if s.deps.Catalog != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportSavedMsg:
		if msg.Err != nil {
			s.save = saveFailed
			s.saveErr = msg.Err.Error()
			s.deps.Log().Error("save report failed", "report", s.report.ID, "err", msg.Err)
		} else {
			s.save = saveDone
			s.deps.Log().Info("report saved", "report", s.report.ID, "sequence", s.report.Sequence)
		}
		return s, nil

	case coachNoteMsg:
		s.coaching = false
		if msg.Err != nil {
			s.coachErr = coachErrorText(msg.Err)
			s.deps.Log().Warn("coaching note failed", "report", s.report.ID, "err", msg.Err)
			return s, nil
		}
		s.note = msg.Note
		s.coachErr = ""
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		s.scroll(-1)
	case "down", "j":
		s.scroll(1)
	case "pgup":
		s.scroll(-10)
	case "pgdown", "space":
		s.scroll(10)
	case "home", "g":
		s.offset = 0
	case "c", "C":
		return s, s.requestNote()
	case "r", "R":
		if s.deps.Catalog == nil {
			return s, nil
		}
		intake := NewIntake(s.deps)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: intake} }
	}
	return s, nil
}

func (s *ResultsScreen) scroll(delta int) {
	s.offset = max(0, min(s.offset+delta, s.maxLines))
}

func (s *ResultsScreen) requestNote() tea.Cmd {
	if s.deps.Coach == nil {
		s.coachErr = "No language model is configured. Set FITCHECK_LLM_PROVIDER or a provider API key."
		return nil
	}
	if s.coaching || s.note != nil {
		return nil
	}
	s.coaching = true
	s.coachErr = ""
	explainer, rep := s.deps.Coach, s.report
	return func() tea.Msg {
		note, err := explainer.Explain(context.Background(), rep.Result, rep.Respondent)
		return coachNoteMsg{Note: note, Err: err}
	}
}

func coachErrorText(err error) string {
	var rl *llm.ErrRateLimit
	switch {
	case errors.As(err, &rl):
		return "The language model is rate limiting requests. Try again in a minute."
	case errors.Is(err, context.DeadlineExceeded):
		return "The language model took too long to answer."
	default:
		return "Could not get a coaching note: " + err.Error()
	}
}

func (s *ResultsScreen) View(width, height int) string {
	lines := strings.Split(s.renderBody(min(width-4, 96)), "\n")

	// Past the last full page there is nothing more to scroll to.
	s.maxLines = max(0, len(lines)-height)
	offset := min(s.offset, s.maxLines)

	end := min(len(lines), offset+height)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines[offset:end], "\n"))
}

func (s *ResultsScreen) renderBody(width int) string {
	res := s.report.Result
	var b strings.Builder

	verdict := lipgloss.NewStyle().
		Foreground(theme.RecommendationColor(res.Recommendation)).
		Bold(true).
		Render("Recommendation: " + string(res.Recommendation))
	b.WriteString("\n" + verdict + "\n")

	who := "Report " + shortID(s.report.ID)
	if s.report.Respondent != "" {
		who = s.report.Respondent + "  ·  " + who
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s  ·  %s  ·  %s",
		who, s.report.Timestamp.Local().Format("Jan 02, 2006 15:04"), s.saveStatus())))
	b.WriteString("\n\n")

	b.WriteString(components.NewProgressBar("Overall    ", float64(res.OverallScore)/100, true, width).View() + "\n")
	b.WriteString(components.NewProgressBar("Confidence ", float64(res.ConfidenceScore)/100, true, width).View() + "\n")

	b.WriteString("\n" + theme.Heading.Render("Category scores") + "\n")
	for _, cs := range res.Categories {
		bar := components.NewProgressBar(fmt.Sprintf("%-12s %2d/%-3d", cs.Label, cs.Score, cs.MaxScore),
			float64(cs.Percentage)/100, true, width-12)
		bar.Color = theme.LevelColor(cs.Level)
		level := lipgloss.NewStyle().Foreground(theme.LevelColor(cs.Level)).Render(string(cs.Level))
		b.WriteString(bar.View() + "  " + level + "\n")
	}

	b.WriteString("\n" + theme.Heading.Render("WISCAR profile") + "\n")
	for _, d := range catalog.Dimensions() {
		v := res.Profile.Get(d)
		bar := components.NewProgressBar(fmt.Sprintf("%-21s %.2f", d.DisplayName(), v),
			v/catalog.MaxRating, false, width)
		b.WriteString(bar.View() + "\n")
	}

	writeSection(&b, "Insights", res.Insights, width, false)
	writeSection(&b, "Next steps", res.NextSteps, width, true)
	writeSection(&b, "Career roles", res.CareerRoles, width, false)
	if len(res.SkillGaps) > 0 {
		writeSection(&b, "Skill gaps", res.SkillGaps, width, false)
	}
	b.WriteString("\n" + theme.Heading.Render("Recommended path") + "\n")
	b.WriteString(wrap(res.RecommendedPath, width, "  ") + "\n")

	b.WriteString(s.renderCoaching(width))
	return b.String()
}

func (s *ResultsScreen) renderCoaching(width int) string {
	var b strings.Builder
	b.WriteString("\n" + theme.Heading.Render("Coaching note") + "\n")

	switch {
	case s.note != nil:
		n := s.note
		b.WriteString(theme.Selected.Render("  "+n.Headline) + "\n")
		b.WriteString(wrap(n.Summary, width, "  ") + "\n")
		writeSection(&b, "Strengths", n.Strengths, width, false)
		writeSection(&b, "Focus areas", n.FocusAreas, width, false)
		writeSection(&b, "First week", n.FirstWeekPlan, width, true)
		if n.Model != "" {
			b.WriteString("\n" + theme.Hint.Render("  generated by "+n.Model) + "\n")
		}
	case s.coaching:
		b.WriteString(theme.Hint.Render("  Asking the coach...") + "\n")
	case s.coachErr != "":
		b.WriteString(theme.Warning.Render(wrap(s.coachErr, width, "  ")) + "\n")
	case s.deps.Coach != nil:
		b.WriteString(theme.Hint.Render("  Press c for a personalised note.") + "\n")
	default:
		b.WriteString(theme.Hint.Render("  Configure a language model provider to get a personalised note.") + "\n")
	}
	return b.String()
}

func (s *ResultsScreen) saveStatus() string {
	switch s.save {
	case saveRunning:
		return "saving..."
	case saveDone:
		return "saved"
	case saveFailed:
		return "not saved: " + s.saveErr
	}
	if s.live {
		return "not saved"
	}
	return "saved"
}

func writeSection(b *strings.Builder, title string, items []string, width int, numbered bool) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + theme.Heading.Render(title) + "\n")
	for i, item := range items {
		bullet := "  • "
		if numbered {
			bullet = fmt.Sprintf("  %d. ", i+1)
		}
		b.WriteString(wrap(item, width, bullet) + "\n")
	}
}

// wrap renders text at width with prefix on the first line and matching
// indentation after it.
func wrap(text string, width int, prefix string) string {
	indent := strings.Repeat(" ", lipgloss.Width(prefix))
	body := lipgloss.NewStyle().Width(max(width-len(indent), 20)).Foreground(theme.Text).Render(text)
	lines := strings.Split(body, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

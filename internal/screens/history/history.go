// Package history lists saved reports.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fitcheck/internal/router"
	"github.com/abhisek/fitcheck/internal/screen"
	sessionscreen "github.com/abhisek/fitcheck/internal/screens/session"
	"github.com/abhisek/fitcheck/internal/store"
	"github.com/abhisek/fitcheck/internal/ui/layout"
	"github.com/abhisek/fitcheck/internal/ui/theme"
)

const listLimit = 50

type historyLoadedMsg struct {
	Reports []store.Report
	Err     error
}

// HistoryScreen lists past reports, newest first.
type HistoryScreen struct {
	deps     sessionscreen.Deps
	reports  []store.Report
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen reading from deps.Reports.
func New(deps sessionscreen.Deps) *HistoryScreen {
	return &HistoryScreen{deps: deps}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.deps.Reports
	return func() tea.Msg {
		reports, err := repo.List(context.Background(), store.QueryOpts{Limit: listLimit})
		return historyLoadedMsg{Reports: reports, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Past Reports"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.deps.Log().Error("list reports failed", "err", msg.Err)
		} else {
			s.reports = msg.Reports
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.reports)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.reports) {
				rep := s.reports[s.selected]
				results := sessionscreen.NewResults(s.deps, &rep, false)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: results} }
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\nLoading reports...")
	}
	if len(s.reports) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\nNo reports yet. Take the assessment from the home screen.")
	}

	// Keep the selection visible when the list is taller than the screen.
	first := 0
	if rows := height - 2; rows > 0 && s.selected >= rows {
		first = s.selected - rows + 1
	}

	var b strings.Builder
	b.WriteString("\n")
	for i := first; i < len(s.reports); i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRow(i)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) renderRow(i int) string {
	rep := s.reports[i]
	name := rep.Respondent
	if name == "" {
		name = "anonymous"
	}

	prefix := "  "
	if i == s.selected {
		prefix = "▸ "
	}
	left := fmt.Sprintf("%s%s  %-8s  %-16s", prefix,
		rep.Timestamp.Local().Format("Jan 02, 2006 15:04"), rep.ID[:min(8, len(rep.ID))], truncate(name, 16))

	style := theme.Unselected
	if i == s.selected {
		style = theme.Selected
	}

	var verdict, scores string
	if rep.Result != nil {
		verdict = lipgloss.NewStyle().
			Foreground(theme.RecommendationColor(rep.Result.Recommendation)).
			Bold(true).
			Render(fmt.Sprintf("%-5s", rep.Result.Recommendation))
		scores = theme.Hint.Render(fmt.Sprintf("  overall %3d  confidence %3d",
			rep.Result.OverallScore, rep.Result.ConfidenceScore))
	}
	return style.Render(left) + "  " + verdict + scores
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

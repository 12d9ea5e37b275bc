// Package home is the main menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fitcheck/internal/router"
	"github.com/abhisek/fitcheck/internal/screen"
	"github.com/abhisek/fitcheck/internal/screens/history"
	sessionscreen "github.com/abhisek/fitcheck/internal/screens/session"
	"github.com/abhisek/fitcheck/internal/store"
	"github.com/abhisek/fitcheck/internal/ui/components"
	"github.com/abhisek/fitcheck/internal/ui/layout"
	"github.com/abhisek/fitcheck/internal/ui/theme"
)

type latestLoadedMsg struct {
	Report *store.Report
	Err    error
}

// HomeScreen offers the assessment, past reports and quit.
type HomeScreen struct {
	deps   sessionscreen.Deps
	menu   components.Menu
	latest *store.Report
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps sessionscreen.Deps) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:       "Start assessment",
			Description: "About ten minutes, one question at a time",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: sessionscreen.NewIntake(deps)}
				}
			},
			Disabled: deps.Catalog == nil,
		},
		{
			Label:       "Past reports",
			Description: "Reopen a saved result",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(deps)}
				}
			},
			Disabled: deps.Reports == nil,
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.deps.Reports == nil {
		return nil
	}
	repo := h.deps.Reports
	return func() tea.Msg {
		rep, err := repo.Latest(context.Background())
		return latestLoadedMsg{Report: rep, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(latestLoadedMsg); ok {
		if msg.Err != nil {
			h.deps.Log().Warn("load latest report failed", "err", msg.Err)
		}
		h.latest = msg.Report
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	sections := []string{
		theme.Title.Render("fitcheck"),
		theme.Subtitle.Render("Career fit for VR development in healthcare"),
	}

	if h.latest != nil && h.latest.Result != nil {
		r := h.latest.Result
		verdict := lipgloss.NewStyle().
			Foreground(theme.RecommendationColor(r.Recommendation)).
			Bold(true).
			Render(string(r.Recommendation))
		sections = append(sections, "", theme.Hint.Render(fmt.Sprintf("Last result (%s): ",
			h.latest.Timestamp.Local().Format("Jan 02")))+verdict+
			theme.Hint.Render(fmt.Sprintf(", overall %d", r.OverallScore)))
	}

	sections = append(sections, "", theme.Card.Render(strings.TrimRight(h.menu.View(), "\n")))

	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append([]string{""}, sections...)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

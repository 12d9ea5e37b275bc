// Package welcome shows the splash screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fitcheck/internal/router"
	"github.com/abhisek/fitcheck/internal/screen"
	"github.com/abhisek/fitcheck/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	headsetEnd   = 500 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

const headsetArt = `╭─────────────────────╮
│  ╭─────╮   ╭─────╮  │
│  │  ◉  │───│  ◉  │  │
│  ╰─────╯   ╰─────╯  │
╰───────╮     ╭───────╯
        ╰──✚──╯`

// pulseFrames alternate next to the headset once it is on screen.
var pulseFrames = []string{"·", "•"}

type tickMsg time.Time

// WelcomeScreen plays a short splash and waits for a key before handing
// over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with homeFactory().
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips whatever is left of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	rendered := lipgloss.NewStyle().Foreground(theme.Secondary).Render(headsetArt)

	if w.elapsed >= headsetEnd {
		pulse := lipgloss.NewStyle().Foreground(theme.Accent).
			Render(pulseFrames[w.tickCount%len(pulseFrames)])
		lines := strings.Split(rendered, "\n")
		if len(lines) > 2 {
			lines[2] = pulse + "  " + lines[2] + "  " + pulse
		}
		rendered = strings.Join(lines, "\n")
	}

	sections := []string{rendered}

	if w.elapsed >= totalDur {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Is a VR healthcare career right for you?"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

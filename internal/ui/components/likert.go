package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fitcheck/internal/ui/theme"
)

// Likert is a horizontal rating picker over [Min, Max]. Nothing is
// selected until the user moves or types a digit.
type Likert struct {
	Min, Max           int
	MinLabel, MaxLabel string
	value              int
	set                bool
}

// NewLikert creates a picker. A preset outside [lo, hi] leaves it unset.
func NewLikert(lo, hi int, loLabel, hiLabel string, preset int) Likert {
	l := Likert{Min: lo, Max: hi, MinLabel: loLabel, MaxLabel: hiLabel}
	if preset >= lo && preset <= hi {
		l.value = preset
		l.set = true
	}
	return l
}

// Value returns the chosen rating and whether one was chosen.
func (l Likert) Value() (int, bool) {
	return l.value, l.set
}

// Update handles left/right (h/l) and direct digit entry.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	key := kmsg.String()
	switch key {
	case "left", "h":
		if !l.set {
			l.value, l.set = l.Min, true
		} else if l.value > l.Min {
			l.value--
		}
	case "right", "l":
		if !l.set {
			l.value, l.set = l.Min, true
		} else if l.value < l.Max {
			l.value++
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if n := int(key[0] - '0'); n >= l.Min && n <= l.Max {
				l.value, l.set = n, true
			}
		}
	}
	return l, nil
}

// View renders the scale as a row of boxed numbers with end labels.
func (l Likert) View() string {
	cells := make([]string, 0, l.Max-l.Min+1)
	for n := l.Min; n <= l.Max; n++ {
		label := fmt.Sprintf(" %d ", n)
		if l.set && n == l.value {
			cells = append(cells, lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.Text).
				Bold(true).
				Render(label))
		} else {
			cells = append(cells, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(label))
		}
	}

	row := strings.Join(cells, " ")
	ends := theme.Hint.Render(fmt.Sprintf("%d = %s   %d = %s", l.Min, l.MinLabel, l.Max, l.MaxLabel))
	return row + "\n\n" + ends
}

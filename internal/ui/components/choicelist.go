package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fitcheck/internal/ui/theme"
)

// ChoiceList lets the user pick one of a question's options.
type ChoiceList struct {
	Options  []string
	Selected int
}

// NewChoiceList creates a list with preselected highlighted. An
// out-of-range preselected falls back to the first option.
func NewChoiceList(options []string, preselected int) ChoiceList {
	if preselected < 0 || preselected >= len(options) {
		preselected = 0
	}
	return ChoiceList{
		Options:  options,
		Selected: preselected,
	}
}

// Update moves the highlight. Letters a, b, c... jump to an option.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= 'a' && int(key[0]-'a') < len(c.Options) {
			c.Selected = int(key[0] - 'a')
		}
	}
	return c, nil
}

// Value returns the highlighted option text.
func (c ChoiceList) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the options labelled A, B, C...
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)
		if i == c.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

package session

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/report"
	"github.com/abhisek/fitcheck/internal/router"
	"github.com/abhisek/fitcheck/internal/scoring"
	"github.com/abhisek/fitcheck/internal/screen"
	sess "github.com/abhisek/fitcheck/internal/session"
	"github.com/abhisek/fitcheck/internal/ui/components"
	"github.com/abhisek/fitcheck/internal/ui/layout"
)

// SessionScreen walks the respondent through the question bank one
// question at a time.
type SessionScreen struct {
	deps       Deps
	state      *sess.Session
	respondent string

	likert  components.Likert
	choices components.ChoiceList

	errMsg             string
	showingQuitConfirm bool

	// reviewing is set once the run has reached the end with gaps; each
	// answer then jumps to the next unanswered question.
	reviewing bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New starts a fresh session over deps.Catalog.
func New(deps Deps, respondent string) *SessionScreen {
	s := &SessionScreen{
		deps:       deps,
		state:      sess.New(deps.Catalog),
		respondent: respondent,
	}
	s.loadQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	s.deps.Log().Info("assessment started",
		"session", s.state.ID().String(), "questions", s.state.Total())
	return nil
}

func (s *SessionScreen) Title() string {
	return "Assessment"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Answer"}}
	if s.current().Type == catalog.TypeLikert {
		hints = append(hints, layout.KeyHint{Key: "←→ 1-5", Description: "Rate"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Choose"})
	}
	return append(hints,
		layout.KeyHint{Key: "Backspace", Description: "Previous"},
		layout.KeyHint{Key: "Esc", Description: "Leave"},
	)
}

func (s *SessionScreen) current() catalog.Question {
	return s.state.Current()
}

// loadQuestion resets the input widgets for the current step, prefilled
// with any earlier answer.
func (s *SessionScreen) loadQuestion() {
	q := s.current()
	prev, answered := s.state.Answer(q.ID)

	if q.Type == catalog.TypeLikert {
		preset := -1
		if answered {
			if n, ok := prev.Value.Int(); ok {
				preset = n
			}
		}
		s.likert = components.NewLikert(q.Scale.Min, q.Scale.Max, q.Scale.MinLabel, q.Scale.MaxLabel, preset)
		return
	}

	selected := 0
	if answered {
		selected = q.OptionIndex(prev.Value.Text())
	}
	s.choices = components.NewChoiceList(q.Options, selected)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.deps.Log().Info("assessment abandoned",
				"session", s.state.ID().String(), "answered", s.state.Answered())
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	case "backspace", "shift+tab":
		s.errMsg = ""
		s.state.Prev()
		s.loadQuestion()
		return s, nil
	case "tab":
		s.errMsg = ""
		s.state.Next()
		s.loadQuestion()
		return s, nil
	}

	if s.current().Type == catalog.TypeLikert {
		s.likert, _ = s.likert.Update(msg)
	} else {
		s.choices, _ = s.choices.Update(msg)
	}
	return s, nil
}

// selectedValue reads the widget for the current question.
func (s *SessionScreen) selectedValue() (scoring.Value, bool) {
	if s.current().Type == catalog.TypeLikert {
		n, ok := s.likert.Value()
		return scoring.Rating(n), ok
	}
	return scoring.Choice(s.choices.Value()), true
}

func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.current()
	v, ok := s.selectedValue()
	if !ok {
		s.errMsg = "Pick a rating first."
		return s, nil
	}

	if _, err := s.state.Upsert(q.ID, v); err != nil {
		s.errMsg = answerErrorText(err)
		s.deps.Log().Warn("answer rejected", "question", q.ID, "err", err)
		return s, nil
	}
	s.errMsg = ""

	if !s.reviewing && !s.state.IsLast() {
		s.state.Next()
		s.loadQuestion()
		return s, nil
	}

	if !s.state.AllAnswered() {
		s.reviewing = true
		s.state.GoTo(s.firstUnanswered())
		s.loadQuestion()
		s.errMsg = fmt.Sprintf("%d question(s) still need an answer.", s.state.Total()-s.state.Answered())
		return s, nil
	}

	return s.finish()
}

func (s *SessionScreen) firstUnanswered() int {
	for i, q := range s.deps.Catalog.Questions() {
		if _, ok := s.state.Answer(q.ID); !ok {
			return i
		}
	}
	return 0
}

func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	res, err := s.state.Complete()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.deps.Log().Info("assessment complete",
		"session", s.state.ID().String(),
		"overall", res.OverallScore,
		"confidence", res.ConfidenceScore,
		"recommendation", string(res.Recommendation))

	rec, err := report.Record(s.state, s.respondent)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	results := NewResults(s.deps, rec, true)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
}

func answerErrorText(err error) string {
	switch {
	case errors.Is(err, scoring.ErrInvalidRating):
		return "That rating is outside the scale."
	case errors.Is(err, scoring.ErrInvalidChoice):
		return "That is not one of the options."
	default:
		return err.Error()
	}
}

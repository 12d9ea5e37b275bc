// Package session holds one respondent's pass through the question bank:
// the answer store, step navigation, and the frozen result once complete.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/scoring"
)

// ErrSessionComplete is returned when answering after Complete.
var ErrSessionComplete = errors.New("session already complete")

// Session is a caller-owned assessment session. It is not safe for
// concurrent use.
type Session struct {
	id      uuid.UUID
	catalog *catalog.Catalog

	answers []scoring.Answer
	index   map[string]int

	step     int
	result   *scoring.Result
	complete bool
}

// New starts an empty session over the given catalog.
func New(cat *catalog.Catalog) *Session {
	return &Session{
		id:      uuid.New(),
		catalog: cat,
		index:   make(map[string]int),
	}
}

// ID returns the session identifier. It changes on Reset.
func (s *Session) ID() uuid.UUID { return s.id }

// Catalog returns the question bank the session runs over.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Upsert scores value against the question and stores it, replacing any
// earlier answer in place.
func (s *Session) Upsert(questionID string, value scoring.Value) (scoring.Answer, error) {
	if s.complete {
		return scoring.Answer{}, ErrSessionComplete
	}
	q, ok := s.catalog.Lookup(questionID)
	if !ok {
		return scoring.Answer{}, fmt.Errorf("%w: %q", scoring.ErrInvalidReference, questionID)
	}
	score, err := scoring.ScoreAnswer(q, value)
	if err != nil {
		return scoring.Answer{}, err
	}

	a := scoring.Answer{QuestionID: questionID, Value: value, Score: score}
	if i, ok := s.index[questionID]; ok {
		s.answers[i] = a
	} else {
		s.index[questionID] = len(s.answers)
		s.answers = append(s.answers, a)
	}
	return a, nil
}

// Answer returns the current answer to a question.
func (s *Session) Answer(questionID string) (scoring.Answer, bool) {
	i, ok := s.index[questionID]
	if !ok {
		return scoring.Answer{}, false
	}
	return s.answers[i], true
}

// Answers returns a copy of all answers in first-answer order.
func (s *Session) Answers() []scoring.Answer {
	out := make([]scoring.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Answered returns the number of distinct questions answered.
func (s *Session) Answered() int { return len(s.answers) }

// AllAnswered reports whether every catalog question has an answer.
func (s *Session) AllAnswered() bool {
	return len(s.answers) == s.catalog.Len()
}

// Compute scores the current answers without completing the session.
func (s *Session) Compute() (*scoring.Result, error) {
	return scoring.Compute(s.catalog, s.answers)
}

// Complete scores the session once and freezes the result. Calling it again
// returns the frozen result. Callers get their own copy, so changing it never
// touches the frozen one.
func (s *Session) Complete() (*scoring.Result, error) {
	if s.complete {
		return s.result.Clone(), nil
	}
	r, err := s.Compute()
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	s.result = r
	s.complete = true
	return r.Clone(), nil
}

// Result returns a copy of the frozen result, or nil before Complete.
func (s *Session) Result() *scoring.Result { return s.result.Clone() }

// IsComplete reports whether Complete has run.
func (s *Session) IsComplete() bool { return s.complete }

// Reset discards all answers and the result and starts over at the first
// question under a new id.
func (s *Session) Reset() {
	s.id = uuid.New()
	s.answers = nil
	s.index = make(map[string]int)
	s.step = 0
	s.result = nil
	s.complete = false
}

package session

import "github.com/abhisek/fitcheck/internal/catalog"

// Step returns the zero-based index of the current question.
func (s *Session) Step() int { return s.step }

// Total returns the number of questions in the catalog.
func (s *Session) Total() int { return s.catalog.Len() }

// Current returns the question at the current step.
func (s *Session) Current() catalog.Question {
	return s.catalog.At(s.step)
}

// IsLast reports whether the current step is the final question.
func (s *Session) IsLast() bool { return s.step == s.Total()-1 }

// Next advances one step, stopping at the last question.
func (s *Session) Next() {
	if s.step < s.Total()-1 {
		s.step++
	}
}

// Prev moves back one step, stopping at the first question.
func (s *Session) Prev() {
	if s.step > 0 {
		s.step--
	}
}

// GoTo jumps to step i, clamped to the catalog bounds.
func (s *Session) GoTo(i int) {
	s.step = max(0, min(i, s.Total()-1))
}

// Progress returns the position of the current step as a percentage,
// where the last question reads 100.
func (s *Session) Progress() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.step+1) / float64(s.Total()) * 100
}

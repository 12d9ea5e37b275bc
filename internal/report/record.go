package report

import (
	"errors"
	"strings"

	"github.com/abhisek/fitcheck/internal/session"
	"github.com/abhisek/fitcheck/internal/store"
)

// ErrNotComplete is returned when recording a session that has no frozen result.
var ErrNotComplete = errors.New("session is not complete")

// Record builds the stored form of a completed session. The report id is
// the session id.
func Record(s *session.Session, respondent string) (*store.Report, error) {
	res := s.Result()
	if !s.IsComplete() || res == nil {
		return nil, ErrNotComplete
	}
	return &store.Report{
		ID:         s.ID().String(),
		Respondent: strings.TrimSpace(respondent),
		Answered:   s.Answered(),
		Result:     res,
	}, nil
}

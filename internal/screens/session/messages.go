package session

import "github.com/abhisek/fitcheck/internal/coach"

// reportSavedMsg reports the outcome of persisting a finished report.
type reportSavedMsg struct {
	Err error
}

// coachNoteMsg carries a coaching note or the reason there is none.
type coachNoteMsg struct {
	Note *coach.Note
	Err  error
}

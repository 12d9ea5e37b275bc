package scoring

import "errors"

var (
	// ErrInvalidReference is returned when an answer names a question id
	// that is not in the catalog.
	ErrInvalidReference = errors.New("invalid question reference")

	// ErrInvalidChoice is returned when a choice answer is not one of the
	// question's options.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidRating is returned when a likert answer is not a number
	// or falls outside the question's scale.
	ErrInvalidRating = errors.New("invalid rating")
)

package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/fitcheck/internal/catalog"
)

// MaxPointsPerQuestion is the ceiling used for every question when computing
// category and dimension maxima, regardless of a likert scale's own max.
const MaxPointsPerQuestion = catalog.MaxRating

// ScenarioPoints is the flat score for any valid scenario option.
const ScenarioPoints = 4

// Answer is one scored response to a catalog question.
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      Value  `json:"value"`
	Score      int    `json:"score"`
}

// ScoreAnswer applies the per-question scoring rule.
func ScoreAnswer(q catalog.Question, v Value) (int, error) {
	switch q.Type {
	case catalog.TypeLikert:
		return scoreLikert(q, v)
	case catalog.TypeMultipleChoice:
		if v.IsRating() {
			return 0, fmt.Errorf("%w: question %s expects an option, got %d", ErrInvalidChoice, q.ID, v.rating)
		}
		idx := q.OptionIndex(v.Text())
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q is not an option of question %s", ErrInvalidChoice, v.Text(), q.ID)
		}
		return idx + 1, nil
	case catalog.TypeScenario:
		if v.IsRating() || q.OptionIndex(v.Text()) < 0 {
			return 0, fmt.Errorf("%w: %q is not an option of question %s", ErrInvalidChoice, v.String(), q.ID)
		}
		return ScenarioPoints, nil
	default:
		return 0, fmt.Errorf("question %s: unsupported type %q", q.ID, q.Type)
	}
}

func scoreLikert(q catalog.Question, v Value) (int, error) {
	n, ok := v.Int()
	if !ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(v.Text()))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number (question %s)", ErrInvalidRating, v.Text(), q.ID)
		}
		n = parsed
	}
	if q.Scale != nil && (n < q.Scale.Min || n > q.Scale.Max) {
		return 0, fmt.Errorf("%w: %d outside %d..%d (question %s)", ErrInvalidRating, n, q.Scale.Min, q.Scale.Max, q.ID)
	}
	return n, nil
}

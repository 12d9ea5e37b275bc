package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/fitcheck/internal/scoring"
	"github.com/abhisek/fitcheck/internal/session"
)

// AnswerInput is one entry of an answer file.
type AnswerInput struct {
	ID    string
	Value scoring.Value
}

type answerFile struct {
	Answers []answerEntry `yaml:"answers"`
}

type answerEntry struct {
	ID    string    `yaml:"id"`
	Value yaml.Node `yaml:"value"`
}

// ParseAnswers reads a YAML answer file of the form
//
//	answers:
//	  - id: int-1
//	    value: 5
//	  - id: per-4
//	    value: Mix of clinical and technical environments
//
// Integer values become ratings and everything else option text. File order
// is preserved.
func ParseAnswers(r io.Reader) ([]AnswerInput, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f answerFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse answers: empty document")
		}
		return nil, fmt.Errorf("parse answers: %w", err)
	}

	out := make([]AnswerInput, 0, len(f.Answers))
	for i, e := range f.Answers {
		if e.ID == "" {
			return nil, fmt.Errorf("parse answers: entry %d: id is required", i)
		}
		v, err := nodeValue(e.Value)
		if err != nil {
			return nil, fmt.Errorf("parse answers: %s: %w", e.ID, err)
		}
		out = append(out, AnswerInput{ID: e.ID, Value: v})
	}
	return out, nil
}

func nodeValue(n yaml.Node) (scoring.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return scoring.Value{}, fmt.Errorf("value must be a number or a string (line %d)", n.Line)
	}
	if n.Tag == "!!int" {
		i, err := strconv.Atoi(n.Value)
		if err != nil {
			return scoring.Value{}, fmt.Errorf("value %q: %w", n.Value, err)
		}
		return scoring.Rating(i), nil
	}
	return scoring.Choice(n.Value), nil
}

// Apply feeds inputs into the session in order, stopping at the first
// rejected answer.
func Apply(s *session.Session, inputs []AnswerInput) error {
	for _, in := range inputs {
		if _, err := s.Upsert(in.ID, in.Value); err != nil {
			return fmt.Errorf("answer %s: %w", in.ID, err)
		}
	}
	return nil
}

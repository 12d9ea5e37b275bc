package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/scoring"
	"github.com/abhisek/fitcheck/internal/session"
)

const sampleAnswers = `answers:
  - id: int-1
    value: 5
  - id: per-4
    value: Mix of clinical and technical environments
  - id: per-2
    value: "4"
`

func TestParseAnswers(t *testing.T) {
	inputs, err := ParseAnswers(strings.NewReader(sampleAnswers))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inputs) != 3 {
		t.Fatalf("got %d inputs, want 3", len(inputs))
	}
	if n, ok := inputs[0].Value.Int(); !ok || n != 5 {
		t.Errorf("inputs[0] = %v, want rating 5", inputs[0].Value)
	}
	if inputs[1].Value.IsRating() || inputs[1].Value.Text() != "Mix of clinical and technical environments" {
		t.Errorf("inputs[1] = %v, want option text", inputs[1].Value)
	}
	if inputs[2].Value.IsRating() {
		t.Errorf("quoted number should stay text, got rating")
	}
}

func TestParseAnswers_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"missing id", "answers:\n  - value: 3\n"},
		{"list value", "answers:\n  - id: int-1\n    value: [1, 2]\n"},
		{"unknown field", "answers:\n  - id: int-1\n    value: 3\n    note: hi\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAnswers(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestApply(t *testing.T) {
	inputs, err := ParseAnswers(strings.NewReader(sampleAnswers))
	if err != nil {
		t.Fatal(err)
	}
	s := session.New(catalog.Builtin())
	if err := Apply(s, inputs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Answered() != 3 {
		t.Errorf("answered = %d, want 3", s.Answered())
	}
	a, _ := s.Answer("per-2")
	if a.Score != 4 {
		t.Errorf("per-2 score = %d, want 4 from numeric text", a.Score)
	}
}

func TestApply_StopsAtFirstError(t *testing.T) {
	s := session.New(catalog.Builtin())
	err := Apply(s, []AnswerInput{
		{ID: "int-1", Value: scoring.Rating(3)},
		{ID: "tech-1", Value: scoring.Choice("Expert")},
		{ID: "int-2", Value: scoring.Rating(3)},
	})
	if !errors.Is(err, scoring.ErrInvalidChoice) {
		t.Fatalf("got %v, want ErrInvalidChoice", err)
	}
	if !strings.Contains(err.Error(), "tech-1") {
		t.Errorf("error should name the question, got: %v", err)
	}
	if s.Answered() != 1 {
		t.Errorf("answered = %d, want 1", s.Answered())
	}
}

func fullResult(t *testing.T) *scoring.Result {
	t.Helper()
	s := session.New(catalog.Builtin())
	for _, q := range catalog.Builtin().Questions() {
		v := scoring.Rating(5)
		if q.Type.IsChoice() {
			v = scoring.Choice(q.Options[len(q.Options)-1])
		}
		if _, err := s.Upsert(q.ID, v); err != nil {
			t.Fatal(err)
		}
	}
	r, err := s.Complete()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, fullResult(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Recommendation: Yes",
		"overall 97",
		"Interest",
		"15/15",
		"Excellent",
		"Real-World Alignment",
		"4.00",
		"1. Enroll in VR development courses",
		"Skill gaps\n  none",
		"Advanced VR Healthcare Specialization Track",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, fullResult(t)); err != nil {
		t.Fatal(err)
	}
	var back scoring.Result
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if back.OverallScore != 97 || back.Recommendation != scoring.RecommendYes {
		t.Errorf("decoded = %d/%s", back.OverallScore, back.Recommendation)
	}
	if back.Profile.RealWorldAlignment != 4 {
		t.Errorf("profile = %+v", back.Profile)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{1.5, "████"},
		{-1, "░░░░"},
	}
	for _, tt := range tests {
		if got := Bar(tt.fraction, 4); got != tt.want {
			t.Errorf("Bar(%v) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}

func TestRecord(t *testing.T) {
	s := session.New(catalog.Builtin())
	if _, err := Record(s, "Ada"); !errors.Is(err, ErrNotComplete) {
		t.Fatalf("got %v, want ErrNotComplete", err)
	}

	if _, err := s.Upsert("int-1", scoring.Rating(4)); err != nil {
		t.Fatal(err)
	}
	res, err := s.Complete()
	if err != nil {
		t.Fatal(err)
	}

	rec, err := Record(s, "  Ada  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != s.ID().String() {
		t.Errorf("id = %q, want session id %q", rec.ID, s.ID())
	}
	if rec.Respondent != "Ada" || rec.Answered != 1 || rec.Result != res {
		t.Errorf("unexpected record: %+v", rec)
	}
}

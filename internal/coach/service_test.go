package coach

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/llm"
	"github.com/abhisek/fitcheck/internal/scoring"
)

func validNoteJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "A strong fit with room to grow technically",
		"summary": "Your interest and motivation are high. Technical readiness trails the rest.",
		"strengths": ["high motivation", "clear interest in healthcare"],
		"focus_areas": ["C# fundamentals", "3D math basics"],
		"first_week_plan": ["Install Unity", "Finish one beginner tutorial", "Read about VR therapy"]
	}`)
}

func sampleResult(t *testing.T) *scoring.Result {
	t.Helper()
	cat := catalog.Builtin()
	var answers []scoring.Answer
	for _, q := range cat.Questions() {
		v := scoring.Rating(4)
		if q.Type.IsChoice() {
			v = scoring.Choice(q.Options[0])
		}
		score, err := scoring.ScoreAnswer(q, v)
		if err != nil {
			t.Fatalf("score %s: %v", q.ID, err)
		}
		answers = append(answers, scoring.Answer{QuestionID: q.ID, Value: v, Score: score})
	}
	r, err := scoring.Compute(cat, answers)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return r
}

func TestService_Explain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNoteJSON()})
	svc := NewService(mock, DefaultConfig())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	result := sampleResult(t)
	before, _ := json.Marshal(result)

	note, err := svc.Explain(t.Context(), result, "Sam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.Headline != "A strong fit with room to grow technically" {
		t.Errorf("unexpected headline %q", note.Headline)
	}
	if len(note.Strengths) != 2 || len(note.FocusAreas) != 2 || len(note.FirstWeekPlan) != 3 {
		t.Errorf("unexpected list sizes: %+v", note)
	}
	if note.Model != "mock" {
		t.Errorf("model = %q, want mock", note.Model)
	}
	if !note.GeneratedAt.Equal(fixed) {
		t.Errorf("generated at = %v", note.GeneratedAt)
	}

	after, _ := json.Marshal(result)
	if !bytes.Equal(before, after) {
		t.Error("coaching must not modify the result")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "coaching-note" {
		t.Error("expected schema name 'coaching-note'")
	}
	if req.MaxTokens != DefaultConfig().MaxTokens {
		t.Errorf("max tokens = %d", req.MaxTokens)
	}
}

func TestBuildUserMessage(t *testing.T) {
	result := sampleResult(t)
	msg := buildUserMessage(result, "Sam")

	for _, want := range []string{
		"Respondent: Sam",
		"Recommendation: " + string(result.Recommendation),
		"Technical: ",
		"Cognitive Readiness: ",
		"Real-World Alignment: ",
		"Instructions:",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if result.RecommendedPath != "" && !strings.Contains(msg, result.RecommendedPath) {
		t.Error("prompt missing recommended path")
	}

	anon := buildUserMessage(result, "")
	if strings.Contains(anon, "Respondent:") {
		t.Error("anonymous prompt should not name a respondent")
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Explain(t.Context(), sampleResult(t), "")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestService_InvalidNote(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"headline":"only this"}`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Explain(t.Context(), sampleResult(t), "")
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestService_NilResult(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, err := svc.Explain(t.Context(), nil, ""); err == nil {
		t.Fatal("expected error for nil result")
	}
}

func TestWriteText(t *testing.T) {
	var note Note
	if err := json.Unmarshal(validNoteJSON(), &note); err != nil {
		t.Fatal(err)
	}
	note.Model = "claude-haiku-4-5-20251001"

	var buf bytes.Buffer
	if err := WriteText(&buf, &note); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"A strong fit with room to grow technically\n",
		"Strengths:\n  - high motivation\n",
		"Focus areas:\n  - C# fundamentals\n",
		"First week:\n  1. Install Unity\n  2. Finish one beginner tutorial\n",
		"(claude-haiku-4-5-20251001)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

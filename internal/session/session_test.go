package session

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/abhisek/fitcheck/internal/catalog"
	"github.com/abhisek/fitcheck/internal/scoring"
)

func TestUpsert_NewAnswer(t *testing.T) {
	s := New(catalog.Builtin())
	a, err := s.Upsert("int-1", scoring.Rating(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Score != 4 {
		t.Errorf("score = %d, want 4", a.Score)
	}
	got, ok := s.Answer("int-1")
	if !ok || got.Score != 4 {
		t.Errorf("Answer(int-1) = %+v, %v", got, ok)
	}
	if s.Answered() != 1 {
		t.Errorf("answered = %d, want 1", s.Answered())
	}
}

func TestUpsert_ReplacesInPlace(t *testing.T) {
	s := New(catalog.Builtin())
	mustUpsert(t, s, "int-1", scoring.Rating(2))
	mustUpsert(t, s, "int-2", scoring.Rating(3))
	mustUpsert(t, s, "int-1", scoring.Rating(5))

	answers := s.Answers()
	if len(answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(answers))
	}
	if answers[0].QuestionID != "int-1" || answers[0].Score != 5 {
		t.Errorf("answers[0] = %+v, want int-1 scored 5", answers[0])
	}
	if answers[1].QuestionID != "int-2" {
		t.Errorf("answers[1] = %+v, want int-2", answers[1])
	}
}

func TestUpsert_Errors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		v    scoring.Value
		want error
	}{
		{"unknown question", "nope", scoring.Rating(3), scoring.ErrInvalidReference},
		{"bad option", "tech-1", scoring.Choice("Wizard"), scoring.ErrInvalidChoice},
		{"out of range", "int-1", scoring.Rating(9), scoring.ErrInvalidRating},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(catalog.Builtin())
			_, err := s.Upsert(tt.id, tt.v)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			if s.Answered() != 0 {
				t.Errorf("failed upsert stored an answer")
			}
		})
	}
}

func TestUpsert_FailedEditKeepsPrior(t *testing.T) {
	s := New(catalog.Builtin())
	mustUpsert(t, s, "int-1", scoring.Rating(3))
	if _, err := s.Upsert("int-1", scoring.Rating(7)); err == nil {
		t.Fatal("expected error")
	}
	a, _ := s.Answer("int-1")
	if a.Score != 3 {
		t.Errorf("score = %d, want prior 3", a.Score)
	}
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	s := New(catalog.Builtin())
	mustUpsert(t, s, "int-1", scoring.Rating(3))
	answers := s.Answers()
	answers[0].Score = 99
	a, _ := s.Answer("int-1")
	if a.Score != 3 {
		t.Error("Answers() exposed internal slice")
	}
}

func TestComplete_FreezesResult(t *testing.T) {
	s := New(catalog.Builtin())
	mustUpsert(t, s, "int-1", scoring.Rating(5))

	r, err := s.Complete()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsComplete() || !reflect.DeepEqual(s.Result(), r) {
		t.Fatal("session should be complete with the returned result")
	}

	if _, err := s.Upsert("int-2", scoring.Rating(5)); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("got %v, want ErrSessionComplete", err)
	}

	again, err := s.Complete()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(again, r) {
		t.Error("second Complete should return the frozen result")
	}
}

func TestComplete_CallersCannotMutateFrozenResult(t *testing.T) {
	s := New(catalog.Builtin())
	mustUpsert(t, s, "int-1", scoring.Rating(5))

	r, err := s.Complete()
	if err != nil {
		t.Fatal(err)
	}
	want := s.Result()

	r.OverallScore = 999
	r.Categories[0].Percentage = 999
	r.Insights = append(r.Insights[:0], "tampered")
	got := s.Result()
	got.NextSteps[0] = "tampered"

	if !reflect.DeepEqual(s.Result(), want) {
		t.Fatalf("frozen result changed through a returned copy: %+v", s.Result())
	}
	again, _ := s.Complete()
	if again.OverallScore == 999 || again.Categories[0].Percentage == 999 {
		t.Fatal("Complete returned a mutated result")
	}
}

func TestCompute_DoesNotComplete(t *testing.T) {
	s := New(catalog.Builtin())
	mustUpsert(t, s, "int-1", scoring.Rating(5))
	if _, err := s.Compute(); err != nil {
		t.Fatal(err)
	}
	if s.IsComplete() || s.Result() != nil {
		t.Error("Compute should not complete the session")
	}
}

func TestReset(t *testing.T) {
	s := New(catalog.Builtin())
	id := s.ID()
	mustUpsert(t, s, "int-1", scoring.Rating(5))
	s.Next()
	s.Next()
	if _, err := s.Complete(); err != nil {
		t.Fatal(err)
	}

	s.Reset()

	if s.ID() == id {
		t.Error("Reset should assign a new id")
	}
	if s.Answered() != 0 || s.Step() != 0 || s.IsComplete() || s.Result() != nil {
		t.Errorf("after reset: answered=%d step=%d complete=%v", s.Answered(), s.Step(), s.IsComplete())
	}

	r, err := s.Compute()
	if err != nil {
		t.Fatal(err)
	}
	if r.OverallScore != 0 || r.ConfidenceScore != 0 || r.Recommendation != scoring.RecommendNo {
		t.Errorf("empty result = %d/%d/%s, want 0/0/No", r.OverallScore, r.ConfidenceScore, r.Recommendation)
	}
	for _, cs := range r.Categories {
		if cs.Percentage != 0 || cs.Level != scoring.LevelLow {
			t.Errorf("%s = %d%% %s, want 0%% Low", cs.Category, cs.Percentage, cs.Level)
		}
	}
}

func TestNavigation_Clamped(t *testing.T) {
	s := New(catalog.Builtin())
	s.Prev()
	if s.Step() != 0 {
		t.Errorf("step after Prev at start = %d, want 0", s.Step())
	}
	for range s.Total() + 3 {
		s.Next()
	}
	if s.Step() != s.Total()-1 || !s.IsLast() {
		t.Errorf("step after overshoot = %d, want %d", s.Step(), s.Total()-1)
	}
	if s.Current().ID != "wis-alignment-1" {
		t.Errorf("current = %s, want wis-alignment-1", s.Current().ID)
	}
	s.GoTo(-5)
	if s.Step() != 0 {
		t.Errorf("GoTo(-5) = %d, want 0", s.Step())
	}
}

func TestProgress(t *testing.T) {
	s := New(catalog.Builtin())
	if got := s.Progress(); math.Abs(got-100.0/18) > 1e-9 {
		t.Errorf("progress at step 0 = %v, want %v", got, 100.0/18)
	}
	s.GoTo(s.Total() - 1)
	if got := s.Progress(); got != 100 {
		t.Errorf("progress at last step = %v, want 100", got)
	}
}

func TestAllAnswered(t *testing.T) {
	s := New(catalog.Builtin())
	for _, q := range catalog.Builtin().Questions() {
		if s.AllAnswered() {
			t.Fatal("AllAnswered true before every question answered")
		}
		v := scoring.Rating(3)
		if q.Type.IsChoice() {
			v = scoring.Choice(q.Options[0])
		}
		mustUpsert(t, s, q.ID, v)
	}
	if !s.AllAnswered() {
		t.Error("AllAnswered false after every question answered")
	}
}

func mustUpsert(t *testing.T, s *Session, id string, v scoring.Value) {
	t.Helper()
	if _, err := s.Upsert(id, v); err != nil {
		t.Fatalf("Upsert(%s): %v", id, err)
	}
}

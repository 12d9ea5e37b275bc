package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/fitcheck/internal/store"
)

// recordingEvents is an in-memory store.EventRepo.
type recordingEvents struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (r *recordingEvents) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (r *recordingEvents) LLMUsageByPurpose(context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (r *recordingEvents) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	events := &recordingEvents{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"headline":"ok"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16},
	})
	p := WithLogging(mock, "mock", events, nil)

	ctx := WithPurpose(context.Background(), "coach")
	_, err := p.Generate(ctx, Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "profile"}},
		Schema:   &Schema{Name: "logging-test", Definition: map[string]any{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	ev := events.events[0]
	if ev.Provider != "mock" || ev.Model != "mock" || ev.Purpose != "coach" {
		t.Fatalf("unexpected event identity: %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 4 {
		t.Fatalf("unexpected event usage: %+v", ev)
	}
	if ev.ResponseBody != `{"headline":"ok"}` {
		t.Fatalf("unexpected response body: %q", ev.ResponseBody)
	}
	for _, want := range []string{"[system]\nbe brief", "[user]\nprofile", "[schema: logging-test]"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, ev.RequestBody)
		}
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	events := &recordingEvents{}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, "anthropic", events, logger)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	ev := events.events[0]
	if ev.Success || !strings.Contains(ev.ErrorMessage, "down") {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Purpose != "unknown" {
		t.Fatalf("expected purpose 'unknown', got %q", ev.Purpose)
	}
	if !strings.Contains(buf.String(), "llm request failed") {
		t.Fatalf("expected warning in log, got %q", buf.String())
	}
}

func TestLogging_StoreFailureDoesNotFailRequest(t *testing.T) {
	events := &recordingEvents{err: errors.New("disk full")}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", events, logger)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Fatalf("expected store error in log, got %q", buf.String())
	}
}

// slowProvider blocks until its context is done.
type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestTimeout_CancelsSlowProvider(t *testing.T) {
	p := WithTimeout(slowProvider{}, 5*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got: %v", err)
	}
	if p.ModelID() != "slow" {
		t.Fatalf("expected 'slow', got %q", p.ModelID())
	}
}

func TestTimeout_NotRetried(t *testing.T) {
	p := WithRetry(WithTimeout(slowProvider{}, time.Millisecond), retryConfig())

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("deadline errors should not be retried")
	}
}

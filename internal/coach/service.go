// Package coach asks a language model to explain a finished assessment.
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/fitcheck/internal/llm"
	"github.com/abhisek/fitcheck/internal/scoring"
)

// Purpose labels coaching calls in the LLM event log.
const Purpose = "coach"

// Service writes coaching notes.
type Service struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

// NewService creates a coaching service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg, now: time.Now}
}

// Explain returns a coaching note for result. respondent may be empty.
func (s *Service) Explain(ctx context.Context, result *scoring.Result, respondent string) (*Note, error) {
	if result == nil {
		return nil, errors.New("coach: nil result")
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(result, respondent)},
		},
		Schema:      NoteSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("coaching note: %w", err)
	}

	var note Note
	if err := json.Unmarshal(resp.Content, &note); err != nil {
		return nil, fmt.Errorf("parse coaching note: %w", err)
	}
	note.Model = resp.Model
	note.GeneratedAt = s.now()
	return &note, nil
}

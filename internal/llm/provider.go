// Package llm talks to hosted language models through a single Provider
// abstraction. Concrete adapters exist for Anthropic, OpenAI, Gemini and
// OpenRouter; decorators add timeouts, retries and request logging.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a response for a prompt.
type Provider interface {
	// Generate sends the request to the model. When req.Schema is set the
	// provider asks for structured output and the returned Content is JSON
	// that has been validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt.
	System string

	// Messages is the conversation. Coaching requests are single-turn, so
	// this usually holds one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil the
	// response Content is the raw text.
	Schema *Schema

	MaxTokens int

	// Temperature in 0.0 - 1.0. Zero leaves the provider default.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, e.g. "coaching-note". It is also the
	// cache key for the compiled validator.
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

const (
	stopEnd       = "end"
	stopMaxTokens = "max_tokens"
)

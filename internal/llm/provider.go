package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the model backend used to grade rounds. Consumers
// call Generate with a Request and receive structured JSON back.
type Provider interface {
	// Generate sends a prompt and returns a structured response. When
	// the request carries a Schema the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role, e.g. the grading persona and its
	// leniency rules.
	System string

	// Messages is the conversation. Grading is single-turn: one user
	// message carrying the rubric and the learner's answers.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil
	// the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response. Sized for a full verdict list, not
	// for prose.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Grading wants it low.
	Temperature float64
}

// Message represents a single message in the conversation.
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
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "round-verdicts".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, otherwise the raw text wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

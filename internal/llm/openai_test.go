package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// verdictPayload is the kind of structured content the grading pipeline
// asks providers for.
const verdictPayload = `{"answers":[{"index":0,"ok":true},{"index":1,"ok":false,"tip":"usa ser con descripciones"}]}`

func completionHandler(status int, body map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
		}
		json.NewEncoder(w).Encode(body)
	}
}

func stubOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  "gpt-4o-mini",
	}
}

func TestOpenAIProvider_GradingRequest(t *testing.T) {
	p := stubOpenAI(t, completionHandler(http.StatusOK, map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": verdictPayload},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     180,
			"completion_tokens": 42,
			"total_tokens":      222,
		},
	}))

	resp, err := p.Generate(context.Background(), Request{
		System:    "Eres un corrector de frases en español.",
		Messages:  []Message{{Role: RoleUser, Content: "Corrige: mi casa es bonito."}},
		MaxTokens: 600,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != verdictPayload {
		t.Fatalf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 180 || resp.Usage.OutputTokens != 42 {
		t.Fatalf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   any
	}{
		{"rate limit", http.StatusTooManyRequests, &ErrRateLimit{}},
		{"server error", http.StatusInternalServerError, &ErrProviderUnavailable{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := stubOpenAI(t, completionHandler(tc.status, map[string]any{
				"error": map[string]any{"type": "test", "message": tc.name},
			}))
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "califica esta ronda"}},
				MaxTokens: 100,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			switch tc.want.(type) {
			case *ErrRateLimit:
				var rl *ErrRateLimit
				if !errors.As(err, &rl) {
					t.Fatalf("got %T (%v), want ErrRateLimit", err, err)
				}
			case *ErrProviderUnavailable:
				var unavail *ErrProviderUnavailable
				if !errors.As(err, &unavail) {
					t.Fatalf("got %T (%v), want ErrProviderUnavailable", err, err)
				}
			}
		})
	}
}

func TestOpenAIProvider_ModelID(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("model = %q", p.ModelID())
	}
}

func TestOpenAIProvider_CompatibleBaseURL(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Fatalf("model = %q, want gpt-4o", p.ModelID())
	}
}

func TestNewOpenAIProviderRequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
	// The raw constructor skips the key check for compatible backends
	// that validate their own config.
	p, err := newOpenAIProviderRaw(OpenAIConfig{Model: "gpt-4o", BaseURL: "https://openrouter.ai/api/v1"})
	if err != nil || p == nil {
		t.Fatalf("raw constructor: p=%v err=%v", p, err)
	}
}

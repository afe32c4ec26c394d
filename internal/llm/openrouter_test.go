package llm

import "testing"

func TestOpenRouterProvider_Construction(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
		model   string
	}{
		{
			name:    "missing key is rejected",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
		{
			name:  "vendor-prefixed model passes through",
			cfg:   OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"},
			model: "anthropic/claude-3-haiku",
		},
		{
			name:  "custom base URL",
			cfg:   OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3-8b", BaseURL: "https://proxy.example/v1"},
			model: "meta-llama/llama-3-8b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.model {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.model)
			}
		})
	}
}

// The grading stack treats an OpenRouter provider as an OpenAIProvider
// with a different endpoint, so the embedded methods must be reachable.
func TestOpenRouterProvider_SharesOpenAIImplementation(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "google/gemini-2.0-flash-exp",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := any(p.OpenAIProvider).(*OpenAIProvider); !ok {
		t.Fatal("expected embedded *OpenAIProvider")
	}
}

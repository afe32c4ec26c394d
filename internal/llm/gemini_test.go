package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	// A pared-down verdict list schema, the shape grading requests use.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"index": map[string]any{"type": "integer"},
						"ok":    map[string]any{"type": "boolean"},
						"tip":   map[string]any{"type": "string"},
					},
				},
			},
			"focus": map[string]any{"type": "string", "enum": []any{"spelling", "verb_form", "detail"}},
		},
		"required": []any{"answers"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	answers := schema.Properties["answers"]
	if answers.Type != "ARRAY" {
		t.Fatalf("answers type = %s, want ARRAY", answers.Type)
	}
	item := answers.Items
	if item.Type != "OBJECT" {
		t.Fatalf("answers item type = %s, want OBJECT", item.Type)
	}
	if item.Properties["index"].Type != "INTEGER" {
		t.Fatalf("index type = %s, want INTEGER", item.Properties["index"].Type)
	}
	if item.Properties["ok"].Type != "BOOLEAN" {
		t.Fatalf("ok type = %s, want BOOLEAN", item.Properties["ok"].Type)
	}
	if len(schema.Properties["focus"].Enum) != 3 {
		t.Fatalf("focus enum = %d values, want 3", len(schema.Properties["focus"].Enum))
	}
	if len(schema.Required) != 1 || schema.Required[0] != "answers" {
		t.Fatalf("required = %v, want [answers]", schema.Required)
	}
}

package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// verdictSchema mirrors the shape of the round grading schema: a list
// of per-answer verdicts plus an optional focus tag.
func verdictSchema() *Schema {
	return &Schema{
		Name:        "test-verdicts",
		Description: "Per-answer grading verdicts",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answers": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"index": map[string]any{"type": "integer", "minimum": 0},
							"ok":    map[string]any{"type": "boolean"},
							"tip":   map[string]any{"type": "string"},
						},
						"required": []any{"index", "ok"},
					},
				},
				"focus": map[string]any{"type": "string", "enum": []any{"spelling", "verb_form", "detail"}},
			},
			"required": []any{"answers"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"full verdicts", `{"answers":[{"index":0,"ok":true},{"index":1,"ok":false,"tip":"usa ser"}],"focus":"spelling"}`, false},
		{"without optional focus", `{"answers":[{"index":0,"ok":true}]}`, false},
		{"empty answer list", `{"answers":[]}`, false},
		{"missing required answers", `{"focus":"spelling"}`, true},
		{"ok has wrong type", `{"answers":[{"index":0,"ok":"sí"}]}`, true},
		{"negative index", `{"answers":[{"index":-1,"ok":true}]}`, true},
		{"focus outside enum", `{"answers":[],"focus":"handwriting"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty response", ``, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(verdictSchema(), json.RawMessage(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("got %T, want ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema must validate trivially, got: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := verdictSchema()
	raw := json.RawMessage(`{"answers":[{"index":0,"ok":true}]}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(s, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	if _, ok := compiledSchemas.Load(s.Name); !ok {
		t.Fatal("compiled schema not cached by name")
	}
}

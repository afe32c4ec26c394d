package grader

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/escriba/internal/llm"
	"github.com/abhisek/escriba/internal/rubric"
)

func testRequest() Request {
	return Request{
		Lang:   "es",
		Theme:  "mi-casa",
		Level:  3,
		Rubric: rubric.ForLevel(3),
		Items: []Item{
			{Prompt: "¿Cómo es tu casa?", Badge: "structure", Answer: "mi casa es grande", LocalOK: true},
			{Prompt: "¿Qué hay en tu cocina?", Answer: "cocina", LocalOK: false, Reason: "too_short"},
		},
	}
}

func TestGradeUsesSchemaAndPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answers":[{"index":0,"ok":true},{"index":1,"ok":false,"correction":"En mi cocina hay una mesa","tip":"Write a full sentence"}]}`),
	})
	g := New(mock, DefaultConfig())

	res, err := g.Grade(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if len(res.Verdicts) != 2 {
		t.Fatalf("got %d verdicts, want 2", len(res.Verdicts))
	}
	if res.Verdicts[0].OK == nil || !*res.Verdicts[0].OK {
		t.Error("verdict 0 should be ok")
	}
	if res.Verdicts[1].OK == nil || *res.Verdicts[1].OK {
		t.Error("verdict 1 should be not ok")
	}
	if res.Verdicts[1].Correction != "En mi cocina hay una mesa" {
		t.Errorf("correction = %q", res.Verdicts[1].Correction)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(mock.Calls))
	}
	call := mock.Calls[0]
	if call.Schema != GradeSchema {
		t.Error("request should carry the grading schema")
	}
	msg := call.Messages[0].Content
	for _, want := range []string{"mi casa es grande", "too_short", "Level: 3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestGradeProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	g := New(mock, DefaultConfig())

	if _, err := g.Grade(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

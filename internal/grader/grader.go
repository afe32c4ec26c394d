// Package grader asks the configured LLM provider to re-grade a whole
// round of free-text answers. Its verdicts can only upgrade the local
// rubric's judgment, never downgrade it; on any failure the round falls
// back to the local verdicts.
package grader

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/abhisek/escriba/internal/llm"
	"github.com/abhisek/escriba/internal/rubric"
)

// Config holds configuration for the LLM grader.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// Grader performs LLM-based grading of writing rounds.
type Grader struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-based grader.
func New(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

// Item is one answer to grade.
type Item struct {
	Prompt  string
	Badge   string
	Answer  string
	LocalOK bool
	Reason  string
}

// Request is the input for grading one round.
type Request struct {
	Lang   string
	Theme  string
	Level  int
	Rubric rubric.Rubric
	Items  []Item
}

// Verdict is the graded outcome for one answer. OK is nil when the
// response carried no usable verdict for that position.
type Verdict struct {
	OK         *bool
	Correction string
	Tip        string
	Why        string
}

// Result holds one verdict per request item, index-aligned.
type Result struct {
	Verdicts []Verdict
}

// Grade sends the whole round to the LLM in a single request.
func (g *Grader) Grade(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "round-grading")

	userMsg, err := buildGradeMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build grading prompt: %w", err)
	}

	llmReq := llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM grading failed: %w", err)
	}

	return decodeResult(resp.Content, len(req.Items)), nil
}

const gradeSystemPrompt = `You are a patient language teacher grading short written answers from a beginner. The learner writes one sentence per prompt in the target language.

Instructions:
- Judge each answer against the learner's level: accept imperfect but understandable sentences at low levels, expect connectors and correct agreement at higher levels.
- An answer is ok when it addresses the prompt and a native speaker would understand it without effort.
- When an answer is not ok, give a corrected version in the target language and one short tip in English.
- Never mark an answer wrong for missing accents alone at levels below 5.
- Keep each explanation to one sentence.`

var gradeUserTemplate = template.Must(template.New("grade").Parse(`Language: {{.Lang}}
Theme: {{.Theme}}
Level: {{.Level}} (minimum {{.Rubric.MinWords}} words, {{.Rubric.MinChars}} characters per answer)

Answers to grade:
{{range $i, $it := .Items}}{{$i}}. Prompt: {{$it.Prompt}}{{if $it.Badge}} [focus: {{$it.Badge}}]{{end}}
   Answer: {{$it.Answer}}
   Local verdict: {{if $it.LocalOK}}ok{{else}}not ok ({{$it.Reason}}){{end}}
{{end}}`))

func buildGradeMessage(req Request) (string, error) {
	var buf bytes.Buffer
	if err := gradeUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

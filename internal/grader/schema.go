package grader

import "github.com/abhisek/escriba/internal/llm"

// GradeSchema defines the JSON schema for round grading responses.
var GradeSchema = &llm.Schema{
	Name:        "round-grading",
	Description: "Per-answer grading of a learner's free-text writing round",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answers": map[string]any{
				"type":        "array",
				"description": "One entry per answer, in the order given",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"index": map[string]any{
							"type":        "integer",
							"description": "Zero-based position of the answer being graded",
						},
						"ok": map[string]any{
							"type":        "boolean",
							"description": "Whether the answer is acceptable for the learner's level",
						},
						"correction": map[string]any{
							"type":        "string",
							"description": "A corrected version of the answer, or empty if already good",
						},
						"tip": map[string]any{
							"type":        "string",
							"description": "One short tip in English about the main issue, or empty",
						},
						"why": map[string]any{
							"type":        "string",
							"description": "Brief one-sentence explanation of the verdict",
						},
					},
					"required":             []any{"index", "ok"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"answers"},
		"additionalProperties": false,
	},
}

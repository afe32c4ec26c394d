package rubric

import (
	"strings"
	"unicode/utf8"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/lang"
)

// Reason explains why an answer failed the rubric.
type Reason string

const (
	ReasonNone             Reason = "none"
	ReasonBlank            Reason = "blank"
	ReasonTooShort         Reason = "too_short"
	ReasonMissingConnector Reason = "missing_connector"
	ReasonMissingBe        Reason = "missing_be"
)

// EvalResult is the pass/fail outcome for one answer.
type EvalResult struct {
	OK     bool
	Reason Reason
}

// Evaluate checks an answer against the rubric, short-circuiting on the
// first failure. Checks run in fixed order: blank, length, connector, be.
func Evaluate(answer string, prompt content.Prompt, r Rubric, code lang.Code) EvalResult {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return EvalResult{OK: false, Reason: ReasonBlank}
	}

	if lang.WordCount(answer) < r.MinWords || utf8.RuneCountInString(answer) < r.MinChars {
		return EvalResult{OK: false, Reason: ReasonTooShort}
	}

	if r.RequireConnector && wantsConnector(prompt) && !lang.HasConnector(answer, code) {
		return EvalResult{OK: false, Reason: ReasonMissingConnector}
	}

	if r.RequireBe && prompt.Badge == content.BadgeSer && !lang.HasBeForm(answer, code) {
		return EvalResult{OK: false, Reason: ReasonMissingBe}
	}

	return EvalResult{OK: true, Reason: ReasonNone}
}

// wantsConnector reports whether the prompt's badge or topic cues call
// for a connector in the answer.
func wantsConnector(p content.Prompt) bool {
	return p.Badge == content.BadgeStructure || lang.HasTopicCue(p.Text)
}

// ApplyVerdict merges an external grading verdict into a local result.
// A positive verdict upgrades a failing result to passing; a negative
// verdict never downgrades a passing one. The rubric is a floor, not a
// ceiling.
func ApplyVerdict(local EvalResult, verdictCorrect *bool) EvalResult {
	if verdictCorrect != nil && *verdictCorrect && !local.OK {
		return EvalResult{OK: true, Reason: ReasonNone}
	}
	return local
}

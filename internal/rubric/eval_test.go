package rubric

import (
	"strings"
	"testing"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/lang"
)

var serPrompt = content.Prompt{Text: "Describe tu casa.", Badge: content.BadgeSer}
var structPrompt = content.Prompt{Text: "¿Por qué te gusta tu casa?", Badge: content.BadgeStructure}
var vocabPrompt = content.Prompt{Text: "¿Qué hay en tu cocina?", Badge: content.BadgeVocab}

func TestEvaluate_Blank(t *testing.T) {
	for _, answer := range []string{"", "   ", "\n\t"} {
		res := Evaluate(answer, serPrompt, ForLevel(1), lang.CodeSpanish)
		if res.OK || res.Reason != ReasonBlank {
			t.Errorf("Evaluate(%q) = %+v, want blank failure", answer, res)
		}
	}
}

func TestEvaluate_TooShortByWords(t *testing.T) {
	r := Rubric{MinWords: 5, MinChars: 10}
	res := Evaluate("una casa roja aquí", vocabPrompt, r, lang.CodeSpanish)
	if res.OK || res.Reason != ReasonTooShort {
		t.Errorf("got %+v, want too_short", res)
	}
}

func TestEvaluate_TooShortByChars(t *testing.T) {
	r := Rubric{MinWords: 2, MinChars: 100}
	res := Evaluate("mi casa es grande", vocabPrompt, r, lang.CodeSpanish)
	if res.OK || res.Reason != ReasonTooShort {
		t.Errorf("got %+v, want too_short", res)
	}
}

func TestEvaluate_CharCountIsByCharacter(t *testing.T) {
	// 21 characters but 26 bytes. Accents must not inflate the count.
	answer := "está aquí mamá añadió"
	r := Rubric{MinWords: 2, MinChars: 22}
	res := Evaluate(answer, vocabPrompt, r, lang.CodeSpanish)
	if res.OK || res.Reason != ReasonTooShort {
		t.Errorf("got %+v, want too_short at 21 characters", res)
	}

	res = Evaluate(answer+"!", vocabPrompt, r, lang.CodeSpanish)
	if !res.OK {
		t.Errorf("got %+v, want pass at the character threshold", res)
	}
}

func TestEvaluate_AtThresholdPasses(t *testing.T) {
	answer := "mi casa es grande"
	r := Rubric{MinWords: 4, MinChars: len(answer)}
	res := Evaluate(answer, vocabPrompt, r, lang.CodeSpanish)
	if !res.OK || res.Reason != ReasonNone {
		t.Errorf("got %+v, want pass at threshold", res)
	}
}

func TestEvaluate_MissingConnector(t *testing.T) {
	answer := "me gusta mucho mi casa grande y bonita con jardín"
	r := Rubric{MinWords: 3, MinChars: 10, RequireConnector: true}
	res := Evaluate(answer, structPrompt, r, lang.CodeSpanish)
	if res.OK || res.Reason != ReasonMissingConnector {
		t.Errorf("got %+v, want missing_connector", res)
	}

	// Same answer with a connector passes.
	res = Evaluate(answer+" porque es cómoda", structPrompt, r, lang.CodeSpanish)
	if !res.OK {
		t.Errorf("got %+v, want pass with connector", res)
	}
}

func TestEvaluate_ConnectorOnlyOnCuedPrompts(t *testing.T) {
	// Connector required but the prompt neither has the structure badge
	// nor topic cues: the check does not apply.
	r := Rubric{MinWords: 3, MinChars: 10, RequireConnector: true}
	res := Evaluate("hay una mesa y cuatro sillas", vocabPrompt, r, lang.CodeSpanish)
	if !res.OK {
		t.Errorf("got %+v, want pass", res)
	}
}

func TestEvaluate_ConnectorViaTopicCue(t *testing.T) {
	// Vocab badge, but the text asks "por qué" — cue fires.
	p := content.Prompt{Text: "¿Por qué comes fruta?", Badge: content.BadgeVocab}
	r := Rubric{MinWords: 3, MinChars: 10, RequireConnector: true}
	res := Evaluate("como fruta todos los días", p, r, lang.CodeSpanish)
	if res.OK || res.Reason != ReasonMissingConnector {
		t.Errorf("got %+v, want missing_connector via topic cue", res)
	}
}

func TestEvaluate_MissingBe(t *testing.T) {
	r := Rubric{MinWords: 3, MinChars: 10, RequireBe: true}
	res := Evaluate("mi casa tiene tres cuartos grandes", serPrompt, r, lang.CodeSpanish)
	if res.OK || res.Reason != ReasonMissingBe {
		t.Errorf("got %+v, want missing_be", res)
	}

	res = Evaluate("mi casa es grande y bonita", serPrompt, r, lang.CodeSpanish)
	if !res.OK {
		t.Errorf("got %+v, want pass with be form", res)
	}
}

func TestEvaluate_CheckOrder(t *testing.T) {
	// Short answer missing both connector and be: length fails first.
	r := Rubric{MinWords: 20, MinChars: 200, RequireConnector: true, RequireBe: true}
	res := Evaluate("corto", structPrompt, r, lang.CodeSpanish)
	if res.Reason != ReasonTooShort {
		t.Errorf("got %v, want too_short to fire before connector/be", res.Reason)
	}
}

func TestApplyVerdict_UpgradeOnly(t *testing.T) {
	yes, no := true, false

	// Positive verdict upgrades a failure.
	local := EvalResult{OK: false, Reason: ReasonTooShort}
	got := ApplyVerdict(local, &yes)
	if !got.OK || got.Reason != ReasonNone {
		t.Errorf("got %+v, want upgraded pass", got)
	}

	// Negative verdict never downgrades a pass.
	local = EvalResult{OK: true, Reason: ReasonNone}
	got = ApplyVerdict(local, &no)
	if !got.OK {
		t.Errorf("got %+v, verdict must not downgrade a pass", got)
	}

	// Nil verdict leaves the local result alone.
	local = EvalResult{OK: false, Reason: ReasonMissingBe}
	got = ApplyVerdict(local, nil)
	if got != local {
		t.Errorf("got %+v, want unchanged", got)
	}

	// Negative verdict leaves a failure alone.
	got = ApplyVerdict(local, &no)
	if got != local {
		t.Errorf("got %+v, want unchanged", got)
	}
}

func TestEvaluate_LongAnswerPassesHighLevel(t *testing.T) {
	answer := strings.Repeat("mi familia es grande porque ", 10) + "somos ocho personas"
	res := Evaluate(answer, structPrompt, ForLevel(10), lang.CodeSpanish)
	if !res.OK {
		t.Errorf("got %+v, want pass", res)
	}
}

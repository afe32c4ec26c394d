package drill

import (
	"testing"

	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/tags"
)

func TestTargetFor(t *testing.T) {
	cases := []struct {
		level, wrong, want int
	}{
		{1, 0, 2},
		{2, 0, 2},
		{3, 0, 3},
		{4, 3, 3},
		{5, 0, 4},
		{6, 0, 4},
		{7, 0, 5},
		{9, 0, 6},
		{10, 0, 6},
		{1, 8, 3},
		{3, 9, 4},
		{10, 10, 6},
		{0, 0, 2},
		{15, 0, 6},
	}
	for _, tc := range cases {
		if got := TargetFor(tc.level, tc.wrong); got != tc.want {
			t.Errorf("TargetFor(%d, %d) = %d, want %d", tc.level, tc.wrong, got, tc.want)
		}
	}
}

func TestKindForFocus(t *testing.T) {
	cases := []struct {
		tag  tags.Tag
		code lang.Code
		want Kind
	}{
		{tags.TagSpelling, lang.CodeSpanish, KindSpelling},
		{tags.TagVerbForm, lang.CodeSpanish, KindVerb},
		{tags.TagArticlesGender, lang.CodeSpanish, KindGender},
		{tags.TagArticles, lang.CodeSpanish, KindGender},
		{tags.TagWordOrder, lang.CodeSpanish, KindOrder},
		{tags.TagMissingBe, lang.CodeSpanish, KindBe},
		{tags.TagNoConnector, lang.CodeSpanish, KindConnector},
		{tags.TagTooShort, lang.CodeSpanish, KindDetail},
		{tags.TagDetail, lang.CodeSpanish, KindDetail},
		// grammar drills need language tables; fall back to detail
		{tags.TagSpelling, lang.CodeFrench, KindDetail},
		{tags.TagMissingBe, lang.CodeItalian, KindDetail},
		// connector and detail drills do not
		{tags.TagNoConnector, lang.CodeFrench, KindConnector},
	}
	for _, tc := range cases {
		if got := KindForFocus(tc.tag, tc.code); got != tc.want {
			t.Errorf("KindForFocus(%s, %s) = %s, want %s", tc.tag, tc.code, got, tc.want)
		}
	}
}

func TestGateClearsOnStreak(t *testing.T) {
	g := &Gate{Kind: KindSpelling, Target: 3}
	for i := 0; i < 3; i++ {
		g.Record(true)
	}
	if !g.Cleared {
		t.Fatal("gate not cleared after 3 consecutive correct")
	}
	if g.Stats.Streak != 3 || g.Stats.Correct != 3 || g.Stats.Attempts != 3 {
		t.Errorf("stats = %+v, want streak 3 correct 3 attempts 3", g.Stats)
	}
}

func TestGateStreakResetsOnMiss(t *testing.T) {
	g := &Gate{Kind: KindSpelling, Target: 3}
	g.Record(true)
	g.Record(true)
	g.Record(false)
	if g.Cleared {
		t.Fatal("gate cleared early")
	}
	if g.Stats.Streak != 0 {
		t.Errorf("streak = %d, want 0 after miss", g.Stats.Streak)
	}
	if g.Stats.Correct != 2 {
		t.Errorf("correct = %d, want 2 (unchanged by miss)", g.Stats.Correct)
	}
	if g.Stats.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", g.Stats.Attempts)
	}
}

func TestGateClearedIsMonotonic(t *testing.T) {
	g := &Gate{Kind: KindDetail, Target: 2}
	g.Record(true)
	g.Record(true)
	g.Record(false)
	if !g.Cleared {
		t.Error("cleared reset by later miss")
	}
}

func TestChoiceHasExactlyOneCorrect(t *testing.T) {
	gate := NewGate(tags.RoundFocus{Tag: tags.TagSpelling}, lang.CodeSpanish, 5, 0, true)
	e := NewEngineSeeded(gate, lang.CodeSpanish, tags.RoundFocus{Tag: tags.TagSpelling}, 7)
	for i := 0; i < 40; i++ {
		q := e.Next()
		if q.Variant != VariantChoice {
			continue
		}
		if len(q.Choices) != 4 {
			t.Fatalf("got %d choices %v, want 4", len(q.Choices), q.Choices)
		}
		correct := 0
		for _, c := range q.Choices {
			if lang.Normalize(c) == lang.Normalize(q.answer) {
				correct++
			}
		}
		if correct != 1 {
			t.Fatalf("got %d correct options in %v, want exactly 1", correct, q.Choices)
		}
	}
}

func TestEveryChoiceKindFillsFourOptions(t *testing.T) {
	focuses := map[Kind]tags.Tag{
		KindSpelling:  tags.TagSpelling,
		KindVerb:      tags.TagVerbForm,
		KindGender:    tags.TagArticlesGender,
		KindOrder:     tags.TagWordOrder,
		KindBe:        tags.TagMissingBe,
		KindConnector: tags.TagNoConnector,
	}
	for kind, tag := range focuses {
		focus := tags.RoundFocus{Tag: tag}
		gate := NewGate(focus, lang.CodeSpanish, 5, 0, true)
		e := NewEngineSeeded(gate, lang.CodeSpanish, focus, 11)
		for _, ref := range e.refs {
			q := &Question{Kind: kind, Variant: VariantChoice, ref: ref}
			e.buildChoice(q)
			if len(q.Choices) != 4 {
				t.Errorf("%s %q: got %d choices %v, want 4", kind, ref.Wrong, len(q.Choices), q.Choices)
			}
			if q.AnswerIndex() < 0 {
				t.Errorf("%s %q: correct option missing from %v", kind, ref.Wrong, q.Choices)
			}
		}
	}
}

func TestNoImmediateRefRepeat(t *testing.T) {
	gate := NewGate(tags.RoundFocus{Tag: tags.TagSpelling}, lang.CodeSpanish, 5, 0, true)
	e := NewEngineSeeded(gate, lang.CodeSpanish, tags.RoundFocus{Tag: tags.TagSpelling}, 3)
	prev := ""
	for i := 0; i < 30; i++ {
		q := e.Next()
		key := q.ref.key()
		if key == prev {
			t.Fatalf("reference %q repeated back to back at step %d", q.ref.Wrong, i)
		}
		prev = key
	}
}

func TestSubmitChoice(t *testing.T) {
	gate := NewGate(tags.RoundFocus{Tag: tags.TagSpelling}, lang.CodeSpanish, 1, 0, true)
	e := NewEngineSeeded(gate, lang.CodeSpanish, tags.RoundFocus{Tag: tags.TagSpelling}, 1)
	var q *Question
	for {
		q = e.Next()
		if q.Variant == VariantChoice {
			break
		}
	}
	res := e.Submit(q, q.answer)
	if !res.OK {
		t.Fatalf("correct choice rejected: %s", res.Message)
	}
	res = e.Submit(q, "definitely wrong")
	if res.OK {
		t.Fatal("wrong choice accepted")
	}
	if gate.Stats.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", gate.Stats.Attempts)
	}
}

func TestCheckTypeVariants(t *testing.T) {
	e := &Engine{code: lang.CodeSpanish}
	cases := []struct {
		name     string
		q        *Question
		response string
		want     bool
	}{
		{"spelling exact", &Question{Kind: KindSpelling, Variant: VariantType, answer: "quiero"}, "Quiero", true},
		{"spelling wrong", &Question{Kind: KindSpelling, Variant: VariantType, answer: "quiero"}, "kiero", false},
		{"gender bare article", &Question{Kind: KindGender, Variant: VariantType, answer: "la"}, "la", true},
		{"gender article plus noun", &Question{Kind: KindGender, Variant: VariantType, answer: "la"}, "la casa", true},
		{"gender wrong", &Question{Kind: KindGender, Variant: VariantType, answer: "la"}, "el", false},
		{"connector ok", &Question{Kind: KindConnector, Variant: VariantType}, "Estudio español porque quiero viajar", true},
		{"connector too short", &Question{Kind: KindConnector, Variant: VariantType}, "sí porque", false},
		{"connector missing", &Question{Kind: KindConnector, Variant: VariantType}, "Estudio español todos los días ya", false},
		{"detail long enough", &Question{Kind: KindDetail, Variant: VariantType}, "mi casa tiene tres cuartos y un jardín bonito", true},
		{"detail short", &Question{Kind: KindDetail, Variant: VariantType}, "mi casa tiene tres cuartos", false},
		{"blank", &Question{Kind: KindDetail, Variant: VariantType}, "   ", false},
	}
	for _, tc := range cases {
		if got := e.check(tc.q, tc.response); got != tc.want {
			t.Errorf("%s: check = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDetailAndUpgradeAreTypeOnly(t *testing.T) {
	for _, tag := range []tags.Tag{tags.TagDetail, tags.TagTooShort} {
		gate := NewGate(tags.RoundFocus{Tag: tag}, lang.CodeSpanish, 5, 0, false)
		e := NewEngineSeeded(gate, lang.CodeSpanish, tags.RoundFocus{Tag: tag}, 2)
		for i := 0; i < 20; i++ {
			if q := e.Next(); q.Variant != VariantType {
				t.Fatalf("tag %s produced a %s question", tag, q.Variant)
			}
		}
	}
}

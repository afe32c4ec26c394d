package diff

import (
	"reflect"
	"testing"
)

func changedCount(spans []Span) int {
	n := 0
	for _, s := range spans {
		if s.Changed {
			n++
		}
	}
	return n
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"mi casa es grande", []string{"mi", "casa", "es", "grande"}},
		{"¿Cómo estás?", []string{"¿", "Cómo", "estás", "?"}},
		{"uno, dos y tres.", []string{"uno", ",", "dos", "y", "tres", "."}},
		{"", nil},
		{"   ", nil},
	}
	for _, c := range cases {
		if got := Tokenize(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCompute_IdenticalMarksNothing(t *testing.T) {
	r := Compute("mi casa es grande.", "mi casa es grande.", false)
	if changedCount(r.Answer) != 0 || changedCount(r.Model) != 0 {
		t.Errorf("identical strings marked tokens: %+v", r)
	}
}

func TestCompute_DisjointMarksEverything(t *testing.T) {
	r := Compute("uno dos tres", "cuatro cinco seis", false)
	if changedCount(r.Answer) != len(r.Answer) {
		t.Errorf("answer side: %d of %d marked", changedCount(r.Answer), len(r.Answer))
	}
	if changedCount(r.Model) != len(r.Model) {
		t.Errorf("model side: %d of %d marked", changedCount(r.Model), len(r.Model))
	}
}

func TestCompute_SingleSubstitution(t *testing.T) {
	r := Compute("yo kiero pan", "yo quiero pan", false)
	if changedCount(r.Answer) != 1 || changedCount(r.Model) != 1 {
		t.Fatalf("got %+v", r)
	}
	if !r.Answer[1].Changed || r.Answer[1].Text != "kiero" {
		t.Errorf("answer spans = %+v", r.Answer)
	}
	if !r.Model[1].Changed || r.Model[1].Text != "quiero" {
		t.Errorf("model spans = %+v", r.Model)
	}
}

func TestCompute_AdditionOnModelSide(t *testing.T) {
	r := Compute("mi casa es grande", "mi casa es muy grande", false)
	if changedCount(r.Answer) != 0 {
		t.Errorf("answer side should be fully kept: %+v", r.Answer)
	}
	if changedCount(r.Model) != 1 || r.Model[3].Text != "muy" || !r.Model[3].Changed {
		t.Errorf("model spans = %+v", r.Model)
	}
}

func TestCompute_SkipWhenAlreadyCorrect(t *testing.T) {
	r := Compute("mi casa", "tu casa", true)
	if len(r.Answer) != 1 || r.Answer[0].Changed || r.Answer[0].Text != "mi casa" {
		t.Errorf("answer = %+v, want single verbatim span", r.Answer)
	}
	if len(r.Model) != 1 || r.Model[0].Changed {
		t.Errorf("model = %+v, want single verbatim span", r.Model)
	}
}

func TestCompute_SkipWhenEmpty(t *testing.T) {
	r := Compute("", "mi casa es grande", false)
	if len(r.Answer) != 0 {
		t.Errorf("answer = %+v, want empty", r.Answer)
	}
	if len(r.Model) != 1 || r.Model[0].Changed {
		t.Errorf("model = %+v, want verbatim", r.Model)
	}
}

func TestRender_SpacingRule(t *testing.T) {
	spans := []Span{
		{Text: "¿"}, {Text: "Cómo"}, {Text: "estás"}, {Text: "?"},
		{Text: "Bien"}, {Text: ","}, {Text: "gracias"}, {Text: "."},
	}
	got := Render(spans, nil)
	want := "¿Cómo estás? Bien, gracias."
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_MarksChangedTokens(t *testing.T) {
	r := Compute("yo kiero pan", "yo quiero pan", false)
	mark := func(s string) string { return "«" + s + "»" }
	if got := Render(r.Answer, mark); got != "yo «kiero» pan" {
		t.Errorf("answer render = %q", got)
	}
	if got := Render(r.Model, mark); got != "yo «quiero» pan" {
		t.Errorf("model render = %q", got)
	}
}

func TestRender_RoundTripsTokenization(t *testing.T) {
	in := "Primero me levanto, luego desayuno."
	r := Compute(in, in, false)
	if got := Render(r.Answer, nil); got != in {
		t.Errorf("round trip = %q, want %q", got, in)
	}
}

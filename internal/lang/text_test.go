package lang

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"¿Cómo es tu casa?", "¿como es tu casa?"},
		{"  El  NIÑO   pequeño ", "el nino pequeno"},
		{"después", "despues"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("mi casa es grande"); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
	if got := WordCount("   "); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestHasConnector(t *testing.T) {
	if !HasConnector("Me gusta porque es divertido", CodeSpanish) {
		t.Error("expected connector 'porque' to be found")
	}
	if !HasConnector("Estudio mucho, por eso aprendo", CodeSpanish) {
		t.Error("expected multi-word connector 'por eso' to be found")
	}
	if HasConnector("mi casa es grande", CodeSpanish) {
		t.Error("did not expect a connector")
	}
	// No tables for French — always false.
	if HasConnector("j'aime le fromage parce que c'est bon", CodeFrench) {
		t.Error("unpopulated language should never report connectors")
	}
}

func TestHasBeForm(t *testing.T) {
	if !HasBeForm("mi cuarto es grande", CodeSpanish) {
		t.Error("expected 'es' to be found")
	}
	if !HasBeForm("yo estoy feliz", CodeSpanish) {
		t.Error("expected 'estoy' to be found")
	}
	if HasBeForm("tengo un perro", CodeSpanish) {
		t.Error("did not expect a be form")
	}
	// "es" inside a word must not match.
	if HasBeForm("escuela grande", CodeSpanish) {
		t.Error("'es' must match on word boundaries only")
	}
}

func TestHasTopicCue(t *testing.T) {
	if !HasTopicCue("¿Por qué te gusta el verano?") {
		t.Error("expected reason cue")
	}
	if !HasTopicCue("Explica tu rutina paso a paso") {
		t.Error("expected explain cue")
	}
	if HasTopicCue("Describe tu casa") {
		t.Error("did not expect a topic cue")
	}
}

func TestForUnpopulated(t *testing.T) {
	tb := For(Code("de"))
	if tb == nil {
		t.Fatal("For must never return nil")
	}
	if len(tb.Connectors) != 0 {
		t.Error("unpopulated language should have empty tables")
	}
	if Populated(Code("de")) {
		t.Error("de should not be populated")
	}
	if !Populated(CodeSpanish) {
		t.Error("es should be populated")
	}
}

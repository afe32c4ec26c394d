package lang

import (
	"strings"
	"testing"
)

func TestCorrect_Misspellings(t *testing.T) {
	got, subs := Correct("yo kiero ablar espanol", CodeSpanish)
	if got != "yo quiero hablar español" {
		t.Errorf("got %q", got)
	}
	if len(subs) != 3 {
		t.Fatalf("got %d substitutions, want 3", len(subs))
	}
	if subs[0].Example() != "kiero → quiero" {
		t.Errorf("example = %q", subs[0].Example())
	}
}

func TestCorrect_PreservesCase(t *testing.T) {
	got, _ := Correct("Tambien tengo un gato", CodeSpanish)
	if got != "También tengo un gato" {
		t.Errorf("got %q", got)
	}
}

func TestCorrect_PreservesPunctuation(t *testing.T) {
	got, _ := Correct("me gusta el cafe.", CodeSpanish)
	if got != "me gusta el café." {
		t.Errorf("got %q", got)
	}
}

func TestCorrect_PhraseRepair(t *testing.T) {
	got, subs := Correct("este libro es mas mejor", CodeSpanish)
	if got != "este libro es mejor" {
		t.Errorf("got %q", got)
	}
	found := false
	for _, s := range subs {
		if strings.Contains(s.From, "mejor") {
			found = true
		}
	}
	if !found {
		t.Error("expected a repair substitution to be recorded")
	}
}

func TestCorrect_RepairOrderIsStable(t *testing.T) {
	// Two repairs fire in this sentence; the substitution list must come
	// back in the same order on every run.
	input := "yo me gusta mi casa blanco"
	_, first := Correct(input, CodeSpanish)
	if len(first) != 2 {
		t.Fatalf("got %d substitutions, want 2", len(first))
	}
	for i := 0; i < 20; i++ {
		_, subs := Correct(input, CodeSpanish)
		for j := range subs {
			if subs[j] != first[j] {
				t.Fatalf("run %d: substitution %d = %v, want %v", i, j, subs[j], first[j])
			}
		}
	}
	// Sorted application puts "casa blanco" before "yo me gusta".
	if first[0].From != "casa blanco" {
		t.Errorf("first substitution = %q, want %q", first[0].From, "casa blanco")
	}
}

func TestCorrect_AgreementRepair(t *testing.T) {
	got, _ := Correct("vivo en una casa blanco", CodeSpanish)
	if got != "vivo en una casa blanca" {
		t.Errorf("got %q", got)
	}
}

func TestCorrect_NoChange(t *testing.T) {
	got, subs := Correct("mi familia es grande", CodeSpanish)
	if got != "mi familia es grande" {
		t.Errorf("got %q", got)
	}
	if len(subs) != 0 {
		t.Errorf("got %d substitutions, want 0", len(subs))
	}
}

func TestCorrect_UnpopulatedLanguage(t *testing.T) {
	got, subs := Correct("je kiero parler", CodeFrench)
	if got != "je kiero parler" || subs != nil {
		t.Errorf("unpopulated language must pass text through, got %q", got)
	}
}

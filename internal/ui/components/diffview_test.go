package components

import (
	"strings"
	"testing"

	"github.com/abhisek/escriba/internal/diff"
)

func TestRenderDiff(t *testing.T) {
	r := diff.Compute("mi casa es grande", "mi casa es muy grande", false)
	out := RenderDiff(r)

	if !strings.Contains(out, "tú:") {
		t.Error("missing answer label")
	}
	if !strings.Contains(out, "modelo:") {
		t.Error("missing model label")
	}
	// Unchanged tokens render verbatim on both lines.
	for _, tok := range []string{"casa", "grande"} {
		if strings.Count(out, tok) < 2 {
			t.Errorf("token %q should appear on both lines", tok)
		}
	}
	// The changed token still shows up, styled or not.
	if !strings.Contains(out, "muy") {
		t.Error("added token missing from model line")
	}
}

func TestMarkWithSingleToken(t *testing.T) {
	mark := markWith(diffAdded)
	if got := mark("bonita"); !strings.Contains(got, "bonita") {
		t.Errorf("mark lost the token: %q", got)
	}
}

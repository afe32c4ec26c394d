package sampler

import (
	"testing"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/lang"
)

// testBank builds a bank of n prompts with the first conn of them
// connector-flagged.
func testBank(n, conn int) []content.Prompt {
	var bank []content.Prompt
	for i := 0; i < n; i++ {
		badge := content.BadgeVocab
		if i < conn {
			badge = content.BadgeStructure
		}
		bank = append(bank, content.Prompt{
			Text:  "Prompt número " + string(rune('A'+i)),
			Badge: badge,
		})
	}
	return bank
}

func connectorCount(sel []content.Prompt) int {
	n := 0
	for _, p := range sel {
		if p.Badge == content.BadgeStructure {
			n++
		}
	}
	return n
}

func TestConnectorCap(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 2}, {2, 2}, {3, 3}, {4, 4}, {5, 4}, {6, 5}, {10, 5},
	}
	for _, c := range cases {
		if got := ConnectorCap(c.level); got != c.want {
			t.Errorf("ConnectorCap(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestSample_ExactRoundSize(t *testing.T) {
	s := NewSeeded(1)
	sel, _ := s.Sample(testBank(15, 4), 1, nil)
	if len(sel) != PromptsPerRound {
		t.Fatalf("got %d prompts, want %d", len(sel), PromptsPerRound)
	}
}

func TestSample_ConnectorCapRespected(t *testing.T) {
	// 15 unique prompts, 4 connector-flagged, level 1 (cap 2).
	for seed := uint64(0); seed < 10; seed++ {
		s := NewSeeded(seed)
		sel, _ := s.Sample(testBank(15, 4), 1, nil)
		if got := connectorCount(sel); got > 2 {
			t.Errorf("seed %d: %d connector prompts, cap is 2", seed, got)
		}
	}
}

func TestSample_NoAdjacentDuplicates(t *testing.T) {
	// Tiny bank forces cycling; the repair pass must still separate
	// identical neighbors when a distinct later entry exists.
	bank := testBank(6, 1)
	for seed := uint64(0); seed < 20; seed++ {
		s := NewSeeded(seed)
		sel, _ := s.Sample(bank, 1, nil)
		if len(sel) != PromptsPerRound {
			t.Fatalf("got %d prompts", len(sel))
		}
		for i := 1; i < len(sel); i++ {
			if lang.Normalize(sel[i].Text) == lang.Normalize(sel[i-1].Text) {
				// With 6 unique prompts a distinct neighbor always exists.
				t.Errorf("seed %d: adjacent duplicate at %d: %q", seed, i, sel[i].Text)
			}
		}
	}
}

func TestSample_DeduplicatesBank(t *testing.T) {
	bank := testBank(12, 0)
	// Duplicate an entry with different accents/case only.
	bank = append(bank, content.Prompt{Text: "PROMPT NÚMERO A", Badge: content.BadgeVocab})
	s := NewSeeded(2)
	sel, _ := s.Sample(bank, 1, nil)
	keys := make(map[string]int)
	for _, p := range sel {
		keys[lang.Normalize(p.Text)]++
	}
	for k, n := range keys {
		if n > 1 {
			t.Errorf("prompt %q selected %d times from a 12-unique bank", k, n)
		}
	}
}

func TestSample_DropsEmptyEntries(t *testing.T) {
	bank := append(testBank(12, 0), content.Prompt{Text: "   "}, content.Prompt{Text: ""})
	s := NewSeeded(3)
	sel, _ := s.Sample(bank, 1, nil)
	for _, p := range sel {
		if lang.Normalize(p.Text) == "" {
			t.Error("empty prompt selected")
		}
	}
}

func TestSample_PrefersUnseenPrompts(t *testing.T) {
	bank := testBank(14, 0)
	s := NewSeeded(4)

	// Mark four prompts as recently served.
	var history []string
	for i := 0; i < 4; i++ {
		history = append(history, lang.Normalize(bank[i].Text))
	}

	sel, _ := s.Sample(bank, 1, history)
	// 10 fresh prompts exist, so none of the recent four should appear.
	recent := map[string]bool{}
	for _, k := range history[:4] {
		recent[k] = true
	}
	for _, p := range sel {
		if recent[lang.Normalize(p.Text)] {
			t.Errorf("recently served prompt %q selected despite fresh alternatives", p.Text)
		}
	}
}

func TestSample_ReusesHistoryWhenPoolShort(t *testing.T) {
	bank := testBank(10, 0)
	var history []string
	for _, p := range bank[:5] {
		history = append(history, lang.Normalize(p.Text))
	}
	s := NewSeeded(5)
	sel, _ := s.Sample(bank, 1, history)
	if len(sel) != PromptsPerRound {
		t.Fatalf("got %d prompts, want %d", len(sel), PromptsPerRound)
	}
	// All ten unique prompts must appear rather than cycling five.
	keys := map[string]bool{}
	for _, p := range sel {
		keys[lang.Normalize(p.Text)] = true
	}
	if len(keys) != 10 {
		t.Errorf("got %d unique prompts, want 10 (history reuse before cycling)", len(keys))
	}
}

func TestSample_HistoryAppendedAndTruncated(t *testing.T) {
	bank := testBank(15, 4)
	s := NewSeeded(6)

	history := make([]string, 28)
	for i := range history {
		history[i] = "old-key"
	}

	sel, updated := s.Sample(bank, 1, history)
	if len(updated) != HistorySize {
		t.Fatalf("history length = %d, want %d", len(updated), HistorySize)
	}
	// The newest keys are the selected prompts'.
	tail := updated[len(updated)-len(sel):]
	for i, p := range sel {
		if tail[i] != lang.Normalize(p.Text) {
			t.Errorf("history tail[%d] = %q, want %q", i, tail[i], lang.Normalize(p.Text))
		}
	}
}

func TestSample_TolerantOfNilAndCorruptHistory(t *testing.T) {
	bank := testBank(15, 4)
	s := NewSeeded(7)

	if sel, _ := s.Sample(bank, 1, nil); len(sel) != PromptsPerRound {
		t.Error("nil history must be treated as empty")
	}
	if sel, _ := s.Sample(bank, 1, []string{"", "", "garbage"}); len(sel) != PromptsPerRound {
		t.Error("corrupt history must be tolerated")
	}
}

func TestSample_EmptyBank(t *testing.T) {
	s := NewSeeded(8)
	sel, hist := s.Sample(nil, 1, []string{"a"})
	if sel != nil {
		t.Errorf("got %v, want nil for empty bank", sel)
	}
	if len(hist) != 1 {
		t.Errorf("history = %v, want passthrough", hist)
	}
}

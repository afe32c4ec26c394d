package tags

import "testing"

// setsWith builds one TagSet per findings list.
func setsWith(findings ...[]Finding) []TagSet {
	out := make([]TagSet, len(findings))
	for i, f := range findings {
		out[i] = TagSet{Findings: f}
	}
	return out
}

func single(tag Tag, examples ...string) []Finding {
	return []Finding{{Tag: tag, Examples: examples}}
}

func TestSelectFocus_PriorityBeatsCount(t *testing.T) {
	// spelling:2, detail:5 → spelling wins once the support floor is met.
	sets := setsWith(
		single(TagSpelling, "kiero → quiero"),
		single(TagSpelling, "mui → muy"),
		single(TagDetail), single(TagDetail), single(TagDetail),
		single(TagDetail), single(TagDetail),
	)
	focus := SelectFocus(sets)
	if focus.Tag != TagSpelling {
		t.Errorf("focus = %v, want spelling", focus.Tag)
	}
	if focus.Count != 2 {
		t.Errorf("count = %d, want 2", focus.Count)
	}
}

func TestSelectFocus_EqualCountKeepsPriority(t *testing.T) {
	// spelling:2 vs detail:2 — equal counts, spelling (higher priority)
	// is never displaced.
	sets := setsWith(
		single(TagSpelling, "kiero → quiero"),
		single(TagSpelling, "mui → muy"),
		single(TagDetail),
		single(TagDetail),
	)
	focus := SelectFocus(sets)
	if focus.Tag != TagSpelling {
		t.Errorf("focus = %v, want spelling", focus.Tag)
	}
	if focus.Count != 2 {
		t.Errorf("count = %d, want 2", focus.Count)
	}
}

func TestSelectFocus_HigherCountDisplaces(t *testing.T) {
	// verb_form:2 vs too_short:4 — strictly higher count wins even from
	// lower priority.
	sets := setsWith(
		single(TagVerbForm, "yo es → yo soy"),
		single(TagVerbForm, "yo tiene → yo tengo"),
		single(TagTooShort), single(TagTooShort),
		single(TagTooShort), single(TagTooShort),
	)
	focus := SelectFocus(sets)
	if focus.Tag != TagTooShort {
		t.Errorf("focus = %v, want too_short", focus.Tag)
	}
	if focus.Count != 4 {
		t.Errorf("count = %d, want 4", focus.Count)
	}
}

func TestSelectFocus_NoSupportFallsBack(t *testing.T) {
	// Only single occurrences: first priority-order tag with count > 0.
	sets := setsWith(
		single(TagDetail),
		single(TagWordOrder, "gusta me → me gusta"),
	)
	focus := SelectFocus(sets)
	if focus.Tag != TagWordOrder {
		t.Errorf("focus = %v, want word_order", focus.Tag)
	}
	if focus.Count != 1 {
		t.Errorf("count = %d, want 1", focus.Count)
	}
}

func TestSelectFocus_OnlyDetail(t *testing.T) {
	sets := setsWith(single(TagDetail))
	focus := SelectFocus(sets)
	if focus.Tag != TagDetail || focus.Count != 1 {
		t.Errorf("focus = %+v, want detail:1", focus)
	}
}

func TestSelectFocus_EmptyInput(t *testing.T) {
	focus := SelectFocus(nil)
	if focus.Tag != TagDetail {
		t.Errorf("focus = %v, want detail fallback", focus.Tag)
	}
	if focus.Label == "" {
		t.Error("label must never be empty")
	}
}

func TestSelectFocus_CollectsExamples(t *testing.T) {
	sets := setsWith(
		single(TagSpelling, "kiero → quiero", "mui → muy"),
		single(TagSpelling, "aser → hacer", "grasias → gracias", "porqe → porque"),
	)
	focus := SelectFocus(sets)
	if focus.Tag != TagSpelling {
		t.Fatalf("focus = %v", focus.Tag)
	}
	if len(focus.Examples) != MaxFocusExamples {
		t.Errorf("examples = %v, want %d capped", focus.Examples, MaxFocusExamples)
	}
	if focus.Examples[0] != "kiero → quiero" {
		t.Errorf("examples[0] = %q", focus.Examples[0])
	}
}

func TestLabel_UnknownTag(t *testing.T) {
	if Label(Tag("bogus")) != focusLabels[TagDetail] {
		t.Error("unknown tag should get the detail label")
	}
}

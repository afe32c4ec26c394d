package lang

import (
	"sort"
	"strings"
	"unicode"
)

// Substitution records one correction applied by Correct.
type Substitution struct {
	From string
	To   string
}

// Example formats the substitution for display, e.g. "kiero → quiero".
func (s Substitution) Example() string {
	return s.From + " → " + s.To
}

// Correct applies the language's fixed repairs and misspelling dictionary
// to text. Returns the corrected text and the substitutions performed,
// in order of application. Languages without tables return text unchanged.
func Correct(text string, code Code) (string, []Substitution) {
	t := For(code)
	if len(t.Misspellings) == 0 && len(t.Repairs) == 0 {
		return text, nil
	}

	var subs []Substitution

	// Phrase-level repairs first, so "mas mejor" is fixed before the
	// word pass could touch its parts. Keys are applied in sorted order
	// so the substitution list is stable across runs.
	repairKeys := make([]string, 0, len(t.Repairs))
	for from := range t.Repairs {
		repairKeys = append(repairKeys, from)
	}
	sort.Strings(repairKeys)
	for _, from := range repairKeys {
		var changed bool
		text, changed = replaceFold(text, from, t.Repairs[from])
		if changed {
			subs = append(subs, Substitution{From: from, To: t.Repairs[from]})
		}
	}

	// Word-level misspellings, preserving leading-cap case and
	// surrounding punctuation.
	words := strings.Split(text, " ")
	for i, w := range words {
		core, lead, trail := trimPunct(w)
		if core == "" {
			continue
		}
		fix, ok := t.Misspellings[strings.ToLower(core)]
		if !ok {
			continue
		}
		if startsUpper(core) {
			fix = capitalize(fix)
		}
		words[i] = lead + fix + trail
		subs = append(subs, Substitution{From: core, To: fix})
	}

	return strings.Join(words, " "), subs
}

// replaceFold replaces the first case-insensitive, word-bounded
// occurrence of phrase in text. Reports whether a replacement happened.
func replaceFold(text, phrase, repl string) (string, bool) {
	lower := strings.ToLower(text)
	phrase = strings.ToLower(phrase)
	idx := 0
	for {
		i := strings.Index(lower[idx:], phrase)
		if i < 0 {
			return text, false
		}
		start := idx + i
		end := start + len(phrase)
		leftOK := start == 0 || lower[start-1] == ' '
		rightOK := end == len(lower) || lower[end] == ' ' || isPunct(lower[end])
		if leftOK && rightOK {
			return text[:start] + repl + text[end:], true
		}
		idx = start + 1
	}
}

// trimPunct splits a token into leading punctuation, the word core, and
// trailing punctuation.
func trimPunct(w string) (core, lead, trail string) {
	runes := []rune(w)
	start := 0
	for start < len(runes) && !unicode.IsLetter(runes[start]) && !unicode.IsNumber(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && !unicode.IsLetter(runes[end-1]) && !unicode.IsNumber(runes[end-1]) {
		end--
	}
	return string(runes[start:end]), string(runes[:start]), string(runes[end:])
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

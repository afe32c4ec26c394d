package drill

import (
	"sort"
	"strings"

	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/tags"
)

// refItem is one exercise reference: a wrong form and its fix. For
// gender drills Wrong is the noun and Right its gendered article.
type refItem struct {
	Wrong string
	Right string
}

// key identifies a reference for the anti-repetition window.
func (r refItem) key() string { return r.Wrong + "\x00" + r.Right }

// refsForKind assembles the reference pool for a drill kind, seeding
// from the round focus examples ("wrong → right") and topping up from
// the language tables so short pools still rotate.
func refsForKind(k Kind, code lang.Code, focus tags.RoundFocus) []refItem {
	var refs []refItem
	for _, ex := range focus.Examples {
		w, r, ok := splitExample(ex)
		if !ok {
			continue
		}
		if k == KindGender {
			// gender refs are (noun, article); examples carry the
			// full phrase, e.g. "el casa → la casa"
			art, noun, found := strings.Cut(r, " ")
			if !found {
				continue
			}
			w, r = noun, art
		}
		refs = append(refs, refItem{Wrong: w, Right: r})
	}
	t := lang.For(code)
	switch k {
	case KindSpelling:
		refs = append(refs, fromMap(t.Misspellings)...)
	case KindVerb:
		refs = append(refs, fromMap(t.VerbFormErrors)...)
	case KindGender:
		for _, noun := range sortedKeys(t.NounGenders) {
			art := "la"
			if t.NounGenders[noun] == lang.GenderMasculine {
				art = "el"
			}
			refs = append(refs, refItem{Wrong: noun, Right: art})
		}
	case KindOrder:
		refs = append(refs, fromMap(t.OrderErrors)...)
	case KindBe:
		refs = append(refs, beRefs...)
	case KindConnector:
		refs = append(refs, connectorRefs...)
	case KindDetail:
		refs = append(refs, detailRefs...)
	case KindUpgrade:
		refs = append(refs, upgradeRefs...)
	}
	return dedupRefs(refs)
}

func splitExample(ex string) (wrong, right string, ok bool) {
	w, r, found := strings.Cut(ex, " → ")
	if !found {
		return "", "", false
	}
	w, r = strings.TrimSpace(w), strings.TrimSpace(r)
	if w == "" || r == "" {
		return "", "", false
	}
	return w, r, true
}

func fromMap(m map[string]string) []refItem {
	refs := make([]refItem, 0, len(m))
	for _, k := range sortedKeys(m) {
		refs = append(refs, refItem{Wrong: k, Right: m[k]})
	}
	return refs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func dedupRefs(refs []refItem) []refItem {
	seen := make(map[string]bool, len(refs))
	out := refs[:0]
	for _, r := range refs {
		if seen[r.key()] {
			continue
		}
		seen[r.key()] = true
		out = append(out, r)
	}
	return out
}

// Fixed pools for the kinds that have no error table to draw from.
// Wrong carries the stem the prompt shows; Right the expected core.
var beRefs = []refItem{
	{Wrong: "mi cuarto pequeño", Right: "mi cuarto es pequeño"},
	{Wrong: "la comida rica", Right: "la comida está rica"},
	{Wrong: "mi hermana alta", Right: "mi hermana es alta"},
	{Wrong: "el café caliente", Right: "el café está caliente"},
	{Wrong: "la casa grande", Right: "la casa es grande"},
}

var connectorRefs = []refItem{
	{Wrong: "Estudio español. Quiero viajar.", Right: "porque"},
	{Wrong: "Me gusta el café. No tomo mucho.", Right: "pero"},
	{Wrong: "Desayuno. Voy al trabajo.", Right: "luego"},
	{Wrong: "Como en casa. A veces como fuera.", Right: "aunque"},
	{Wrong: "Leo un libro. Escucho música.", Right: "y también"},
}

var detailRefs = []refItem{
	{Wrong: "Mi casa tiene"},
	{Wrong: "Por la mañana yo"},
	{Wrong: "Mi familia es"},
	{Wrong: "Para el desayuno como"},
	{Wrong: "Los fines de semana"},
}

var upgradeRefs = []refItem{
	{Wrong: "tu familia"},
	{Wrong: "tu casa"},
	{Wrong: "tu rutina"},
	{Wrong: "tu comida favorita"},
}

// connectorChoices are the distractor connectors for the choice
// variant of the connector drill.
var connectorChoices = []string{"porque", "pero", "luego", "aunque"}

// distractorsFor fabricates wrong options near the right answer when
// the reference only supplies one wrong form. Every kind yields at
// least three distinct distractors so a choice question always fills
// its four slots.
func distractorsFor(k Kind, ref refItem) []string {
	var cands []string
	switch k {
	case KindGender:
		alt := "la"
		if ref.Right == "la" {
			alt = "el"
		}
		return []string{alt + " " + ref.Wrong, "los " + ref.Wrong, "una " + ref.Wrong}
	case KindOrder:
		cands = append(cands, ref.Wrong, reverseWords(ref.Right), swapFirstWords(ref.Right))
	case KindBe:
		cands = append(cands, ref.Wrong, swapCopula(ref.Right))
	default:
		cands = append(cands, ref.Wrong)
	}
	cands = append(cands,
		stripAccents(ref.Right),
		doubleFirstVowel(ref.Right),
		mutateLastVowel(ref.Right),
		mutateFirstVowel(ref.Right),
	)

	seen := map[string]bool{ref.Right: true}
	var out []string
	for _, m := range cands {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

func reverseWords(s string) string {
	words := strings.Fields(s)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}

func swapFirstWords(s string) string {
	words := strings.Fields(s)
	if len(words) < 2 {
		return s
	}
	words[0], words[1] = words[1], words[0]
	return strings.Join(words, " ")
}

// swapCopula flips es↔está, the classic wrong pick for the copula drill.
func swapCopula(s string) string {
	if strings.Contains(s, " es ") {
		return strings.Replace(s, " es ", " está ", 1)
	}
	if strings.Contains(s, " está ") {
		return strings.Replace(s, " está ", " es ", 1)
	}
	return s
}

func stripAccents(s string) string {
	repl := strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n")
	return repl.Replace(s)
}

func doubleFirstVowel(s string) string {
	for i, r := range s {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			return s[:i] + string(r) + s[i:]
		}
	}
	return s
}

// vowelSwaps maps each vowel to a plausible wrong neighbor.
var vowelSwaps = map[rune]rune{
	'a': 'e', 'e': 'a', 'i': 'e', 'o': 'a', 'u': 'o',
	'á': 'e', 'é': 'a', 'í': 'e', 'ó': 'a', 'ú': 'o',
}

func mutateLastVowel(s string) string {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if sub, ok := vowelSwaps[runes[i]]; ok {
			runes[i] = sub
			return string(runes)
		}
	}
	return s
}

func mutateFirstVowel(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if sub, ok := vowelSwaps[r]; ok {
			runes[i] = sub
			return string(runes)
		}
	}
	return s
}

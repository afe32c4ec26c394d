package lang

import "strings"

// accentFold maps accented runes to their base letter for normalization.
var accentFold = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u',
	'Á': 'a', 'É': 'e', 'Í': 'i', 'Ó': 'o', 'Ú': 'u', 'Ü': 'u',
	'ñ': 'n', 'Ñ': 'n',
	'à': 'a', 'è': 'e', 'ì': 'i', 'ò': 'o', 'ù': 'u',
	'â': 'a', 'ê': 'e', 'î': 'i', 'ô': 'o', 'û': 'u',
	'ç': 'c', 'Ç': 'c',
}

// Normalize returns the accent-stripped, case-folded, whitespace-collapsed
// form of s. Used as the canonical key for dedup and history tracking.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// hasPhrase reports whether the normalized phrase occurs in normalized
// text on word boundaries. Handles multi-word phrases like "por eso".
func hasPhrase(normText, normPhrase string) bool {
	if normPhrase == "" {
		return false
	}
	idx := 0
	for {
		i := strings.Index(normText[idx:], normPhrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(normPhrase)
		leftOK := start == 0 || normText[start-1] == ' '
		rightOK := end == len(normText) || normText[end] == ' ' ||
			isPunct(normText[end])
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

func isPunct(b byte) bool {
	switch b {
	case '.', ',', '!', '?', ';', ':':
		return true
	}
	return false
}

// HasConnector reports whether text contains any connector word for the
// language. Always false for languages without populated tables.
func HasConnector(text string, code Code) bool {
	norm := Normalize(text)
	for _, c := range For(code).Connectors {
		if hasPhrase(norm, Normalize(c)) {
			return true
		}
	}
	return false
}

// HasBeForm reports whether text contains any conjugated be-verb form.
func HasBeForm(text string, code Code) bool {
	norm := Normalize(text)
	for _, f := range For(code).BeForms {
		if hasPhrase(norm, Normalize(f)) {
			return true
		}
	}
	return false
}

// HasAdjectiveCue reports whether text contains an adjective suggesting
// a description is being attempted.
func HasAdjectiveCue(text string, code Code) bool {
	norm := Normalize(text)
	for _, a := range For(code).AdjectiveCues {
		if hasPhrase(norm, Normalize(a)) {
			return true
		}
	}
	return false
}

// topicCueWords flag prompts that call for reasons, opinions or sequencing,
// where a connector is expected in the answer.
var topicCueWords = []string{
	"por que", "porque", "opinion", "opinas", "piensas", "razon",
	"explica", "prefieres", "primero", "pasos", "orden",
}

// HasTopicCue reports whether a prompt's text asks for reasoning,
// opinion, or sequence — topics where connectors are expected.
func HasTopicCue(promptText string) bool {
	norm := Normalize(promptText)
	for _, w := range topicCueWords {
		if hasPhrase(norm, w) {
			return true
		}
	}
	return false
}

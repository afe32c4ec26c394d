package tags

import (
	"sort"
	"strings"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/lang"
)

// minConnectorWords is the minimum answer length (in words) before the
// no_connector nudge applies; very short answers get too_short instead.
const minConnectorWords = 6

// detectTooShort fires when the word count is below the rubric floor.
// Works for every language.
func detectTooShort(in DetectInput) *Finding {
	if lang.WordCount(in.Answer) < in.Rubric.MinWords {
		return &Finding{Tag: TagTooShort}
	}
	return nil
}

// detectSpelling runs the dictionary-correction pass and reports each
// substitution as a "wrong → right" example.
func detectSpelling(in DetectInput) *Finding {
	if !lang.Populated(in.Lang) {
		return nil
	}
	_, subs := lang.Correct(in.Answer, in.Lang)
	if len(subs) == 0 {
		return nil
	}
	f := &Finding{Tag: TagSpelling}
	for _, s := range subs {
		f.Examples = append(f.Examples, s.Example())
	}
	return f
}

// detectVerbForm matches known subject+verb error patterns.
func detectVerbForm(in DetectInput) *Finding {
	if !lang.Populated(in.Lang) {
		return nil
	}
	return matchPatternTable(in, TagVerbForm, lang.For(in.Lang).VerbFormErrors)
}

// detectWordOrder matches known mis-orderings of reflexive constructions.
func detectWordOrder(in DetectInput) *Finding {
	if !lang.Populated(in.Lang) {
		return nil
	}
	return matchPatternTable(in, TagWordOrder, lang.For(in.Lang).OrderErrors)
}

// matchPatternTable scans the normalized answer for every key of a
// wrong→right pattern table. Keys are checked in sorted order so example
// output is deterministic.
func matchPatternTable(in DetectInput, tag Tag, table map[string]string) *Finding {
	norm := lang.Normalize(in.Answer)
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var f *Finding
	seen := map[string]bool{}
	for _, k := range keys {
		nk := lang.Normalize(k)
		if seen[nk] || !containsPhrase(norm, nk) {
			continue
		}
		seen[nk] = true
		if f == nil {
			f = &Finding{Tag: tag}
		}
		f.Examples = append(f.Examples, k+" → "+table[k])
	}
	return f
}

// articleGenders maps articles to their gender; correction swaps within
// the same definiteness and number.
var articleGenders = map[string]lang.Gender{
	"el": lang.GenderMasculine, "la": lang.GenderFeminine,
	"un": lang.GenderMasculine, "una": lang.GenderFeminine,
	"los": lang.GenderMasculine, "las": lang.GenderFeminine,
	"unos": lang.GenderMasculine, "unas": lang.GenderFeminine,
}

var articleSwap = map[string]string{
	"el": "la", "la": "el",
	"un": "una", "una": "un",
	"los": "las", "las": "los",
	"unos": "unas", "unas": "unos",
}

// detectArticlesGender finds {article} {noun} pairs where the article's
// gender disagrees with the noun-gender table.
func detectArticlesGender(in DetectInput) *Finding {
	if !lang.Populated(in.Lang) {
		return nil
	}
	genders := lang.For(in.Lang).NounGenders
	words := strings.Fields(lang.Normalize(in.Answer))

	var f *Finding
	for i := 0; i+1 < len(words); i++ {
		artGender, isArticle := articleGenders[words[i]]
		if !isArticle {
			continue
		}
		noun := strings.TrimRight(words[i+1], ".,!?;:")
		nounGender, known := genders[noun]
		if !known || artGender == nounGender {
			continue
		}
		if f == nil {
			f = &Finding{Tag: TagArticlesGender}
		}
		wrong := words[i] + " " + noun
		right := articleSwap[words[i]] + " " + noun
		f.Examples = append(f.Examples, wrong+" → "+right)
	}
	return f
}

// detectMissingBe fires when a descriptive adjective is present but no
// be-verb form is.
func detectMissingBe(in DetectInput) *Finding {
	if !lang.Populated(in.Lang) {
		return nil
	}
	if lang.HasAdjectiveCue(in.Answer, in.Lang) && !lang.HasBeForm(in.Answer, in.Lang) {
		return &Finding{Tag: TagMissingBe}
	}
	return nil
}

// placeWords identify room/place-type prompts for the articles nudge.
var placeWords = []string{"casa", "cuarto", "habitacion", "cocina", "sala", "bano", "jardin", "refrigerador"}

// detectArticles is a softer nudge: an existential "hay" used without an
// indefinite article when describing a place.
func detectArticles(in DetectInput) *Finding {
	if !lang.Populated(in.Lang) {
		return nil
	}
	promptNorm := lang.Normalize(in.Prompt.Text)
	place := false
	for _, w := range placeWords {
		if containsPhrase(promptNorm, w) {
			place = true
			break
		}
	}
	if !place {
		return nil
	}

	genders := lang.For(in.Lang).NounGenders
	words := strings.Fields(lang.Normalize(in.Answer))
	for i, w := range words {
		if w != "hay" || i+1 >= len(words) {
			continue
		}
		next := strings.TrimRight(words[i+1], ".,!?;:")
		switch next {
		case "un", "una", "unos", "unas", "mucha", "mucho", "muchas", "muchos":
			continue
		}
		article := "un"
		if genders[next] == lang.GenderFeminine {
			article = "una"
		}
		return &Finding{
			Tag:      TagArticles,
			Examples: []string{"hay " + next + " → hay " + article + " " + next},
		}
	}
	return nil
}

// detectNoConnector fires only when connectors are called for, the answer
// is long enough to host one, and none is present.
func detectNoConnector(in DetectInput) *Finding {
	if !lang.Populated(in.Lang) {
		return nil
	}
	wanted := in.Rubric.RequireConnector ||
		in.Prompt.Badge == content.BadgeStructure ||
		lang.HasTopicCue(in.Prompt.Text)
	if !wanted {
		return nil
	}
	if lang.WordCount(in.Answer) < minConnectorWords {
		return nil
	}
	if lang.HasConnector(in.Answer, in.Lang) {
		return nil
	}
	return &Finding{Tag: TagNoConnector}
}

// containsPhrase reports a word-bounded occurrence of phrase in text.
// Both arguments must already be normalized.
func containsPhrase(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		leftOK := start == 0 || !isWordByte(text[start-1])
		rightOK := end == len(text) || !isWordByte(text[end])
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

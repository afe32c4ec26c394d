// Package suggest builds the model/upgraded answer shown next to each
// graded item. The policy is keyed on the round's focus tag, not the
// answer's own tags, so every suggestion in a round reinforces one
// lesson.
package suggest

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/rubric"
	"github.com/abhisek/escriba/internal/tags"
)

// placeholderWords is the word count below which an answer is treated
// as a placeholder and replaced by a canned model sentence.
const placeholderWords = 3

// Generator produces model answers. The zero value is not usable; use New.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with its own random source.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a Generator with a fixed seed, for tests.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Generate returns a non-empty model sentence for the answer, shaped by
// the round's focus tag. Languages without pattern tables go straight
// to the canned fallback path.
func (g *Generator) Generate(prompt content.Prompt, answer string, code lang.Code, r rubric.Rubric, focus tags.Tag) string {
	raw := strings.TrimSpace(answer)

	var out string
	if lang.Populated(code) && !isPlaceholder(raw) {
		out = g.byFocus(prompt, raw, code, focus)
	}

	if strings.TrimSpace(out) == "" || isPlaceholder(raw) {
		return canned(prompt, code)
	}
	return out
}

func (g *Generator) byFocus(prompt content.Prompt, answer string, code lang.Code, focus tags.Tag) string {
	switch focus {
	case tags.TagSpelling:
		corrected, subs := lang.Correct(answer, code)
		if len(subs) > 0 {
			return corrected
		}
		return normalizePunct(corrected)

	case tags.TagMissingBe:
		out := answer
		if !lang.HasBeForm(out, code) {
			out = insertBe(out)
		}
		out, _ = lang.Correct(out, code)
		return normalizePunct(out)

	case tags.TagTooShort, tags.TagDetail:
		return g.appendDetail(prompt, answer, code)

	case tags.TagNoConnector:
		return g.appendConnector(answer, code)

	default:
		corrected, _ := lang.Correct(answer, code)
		return normalizePunct(corrected)
	}
}

// insertBe adds a copula. A possessive opening ("mi casa ...") keeps
// its first two words and takes "es" after them; anything else gets a
// default copula prefix.
func insertBe(answer string) string {
	words := strings.Fields(answer)
	if len(words) >= 2 {
		switch strings.ToLower(words[0]) {
		case "mi", "mis", "tu", "tus", "su", "sus":
			rest := strings.Join(words[2:], " ")
			return strings.TrimSpace(words[0] + " " + words[1] + " es " + rest)
		}
	}
	return "Es " + lowerFirst(answer)
}

// appendDetail adds exactly one topic-appropriate clause with a random
// connective opener.
func (g *Generator) appendDetail(prompt content.Prompt, answer string, code lang.Code) string {
	corrected, _ := lang.Correct(answer, code)
	fam := ClassifyTopic(prompt.Text)
	pool := detailClauses[fam]
	clause := pool[g.rng.IntN(len(pool))]
	opener := detailOpeners[g.rng.IntN(len(detailOpeners))]
	return trimTerminal(corrected) + ", " + opener + " " + clause + "."
}

// appendConnector adds one connector clause with its generic tail.
func (g *Generator) appendConnector(answer string, code lang.Code) string {
	corrected, _ := lang.Correct(answer, code)
	cc := connectorClauses[g.rng.IntN(len(connectorClauses))]
	return trimTerminal(corrected) + ", " + cc.Connector + " " + cc.Tail + "."
}

// canned picks a fallback model sentence by matching prompt keywords,
// with the language's generic sentence as last resort.
func canned(prompt content.Prompt, code lang.Code) string {
	t := lang.For(code)
	norm := lang.Normalize(prompt.Text)
	for _, cm := range t.CannedModels {
		for _, kw := range cm.Keywords {
			if containsWord(norm, kw) {
				return cm.Sentence
			}
		}
	}
	if t.GenericModel != "" {
		return t.GenericModel
	}
	// No tables at all for this language: a universal last resort so
	// the suggestion is still never empty.
	return "Escribe una frase completa con más detalle."
}

// isPlaceholder reports whether the raw answer is too fragmentary to
// upgrade: fewer than placeholderWords words, or a bare dash.
func isPlaceholder(raw string) bool {
	if raw == "" || raw == "-" || raw == "—" || raw == "--" {
		return true
	}
	return lang.WordCount(raw) < placeholderWords
}

// normalizePunct capitalizes the first letter and guarantees terminal
// punctuation.
func normalizePunct(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = upperFirst(s)
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

func trimTerminal(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), " .!?")
}

func upperFirst(s string) string {
	for i, r := range s {
		return strings.ToUpper(string(r)) + s[i+len(string(r)):]
	}
	return s
}

func lowerFirst(s string) string {
	for i, r := range s {
		return strings.ToLower(string(r)) + s[i+len(string(r)):]
	}
	return s
}

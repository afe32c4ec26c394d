// Package diff computes token-level highlights between a learner's
// answer and its model sentence, using a longest-common-subsequence
// alignment. Tokens outside the LCS are marked changed: removals on the
// answer side, additions on the model side.
package diff

import (
	"strings"
	"unicode"
)

// Span is one token of a diffed string with its changed state.
type Span struct {
	Text    string
	Changed bool
}

// Result holds both sides of a diff.
type Result struct {
	Answer []Span
	Model  []Span
}

// Compute diffs answerText against modelText. When alreadyCorrect is
// true, or either side is empty, diffing is skipped and both sides come
// back verbatim as a single unchanged span.
func Compute(answerText, modelText string, alreadyCorrect bool) Result {
	if alreadyCorrect || strings.TrimSpace(answerText) == "" || strings.TrimSpace(modelText) == "" {
		return Result{
			Answer: verbatim(answerText),
			Model:  verbatim(modelText),
		}
	}

	a := Tokenize(answerText)
	b := Tokenize(modelText)
	keptA, keptB := lcsKept(a, b)

	return Result{
		Answer: spans(a, keptA),
		Model:  spans(b, keptB),
	}
}

func verbatim(s string) []Span {
	if s == "" {
		return nil
	}
	return []Span{{Text: s}}
}

func spans(tokens []string, kept []bool) []Span {
	out := make([]Span, len(tokens))
	for i, t := range tokens {
		out[i] = Span{Text: t, Changed: !kept[i]}
	}
	return out
}

// Tokenize splits s into maximal letter/number runs and individual
// non-space characters. Punctuation is atomic.
func Tokenize(s string) []string {
	var tokens []string
	var run []rune
	flush := func() {
		if len(run) > 0 {
			tokens = append(tokens, string(run))
			run = run[:0]
		}
	}
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			run = append(run, r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}

// lcsKept computes which token indices of a and b belong to a longest
// common subsequence, via the standard O(n·m) dynamic program and a
// corner backtrack.
func lcsKept(a, b []string) (keptA, keptB []bool) {
	n, m := len(a), len(b)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}

	keptA = make([]bool, n)
	keptB = make([]bool, m)
	for i, j := n, m; i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			keptA[i-1] = true
			keptB[j-1] = true
			i--
			j--
		case table[i-1][j] >= table[i][j-1]:
			i--
		default:
			j--
		}
	}
	return keptA, keptB
}

// openers are bracket-like tokens that take no space after them.
var openers = map[string]bool{
	"(": true, "[": true, "{": true, "¿": true, "¡": true, "«": true, "\"": true,
}

// isPunctToken reports whether a token is a single non-letter/number rune.
func isPunctToken(t string) bool {
	runes := []rune(t)
	if len(runes) != 1 {
		return false
	}
	r := runes[0]
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

// Render joins spans back into a display string. A space separates
// adjacent tokens except before a punctuation token or after an opening
// bracket-like token. mark, when non-nil, wraps changed tokens.
func Render(spans []Span, mark func(string) string) string {
	var b strings.Builder
	for i, sp := range spans {
		if i > 0 && !isPunctToken(sp.Text) && !openers[spans[i-1].Text] {
			b.WriteByte(' ')
		}
		if sp.Changed && mark != nil {
			b.WriteString(mark(sp.Text))
		} else {
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}

package tags

// FocusSupport is the minimum cross-answer occurrence count for a tag
// to win the round focus outright.
const FocusSupport = 2

// MaxFocusExamples bounds the example snippets attached to a focus.
const MaxFocusExamples = 4

// focusPriority orders tags from most to least actionable. The scan
// never lets a later tag displace an earlier one on an equal count.
var focusPriority = []Tag{
	TagSpelling,
	TagVerbForm,
	TagArticlesGender,
	TagWordOrder,
	TagMissingBe,
	TagArticles,
	TagTooShort,
	TagNoConnector,
	TagDetail,
}

// focusLabels are the coaching headlines shown for each focus tag.
var focusLabels = map[Tag]string{
	TagSpelling:       "Spelling fixes",
	TagVerbForm:       "Verb forms",
	TagArticlesGender: "Article gender (el/la, un/una)",
	TagWordOrder:      "Word order",
	TagMissingBe:      "Use ser or estar",
	TagArticles:       "Articles with hay",
	TagTooShort:       "Write longer answers",
	TagNoConnector:    "Connect your ideas",
	TagDetail:         "Add more detail",
}

// RoundFocus is the single coaching focus derived from a round's answers.
type RoundFocus struct {
	Tag      Tag
	Count    int
	Label    string
	Examples []string
}

// SelectFocus reduces the per-answer tag sets of one round to a single
// focus. A tag wins only with FocusSupport or more occurrences and a
// strictly higher count than any higher-priority tag already chosen;
// with no supported tag, the first tag (in priority order) seen at all
// wins, and TagDetail is the final fallback.
func SelectFocus(sets []TagSet) RoundFocus {
	counts := make(map[Tag]int)
	for _, s := range sets {
		for _, t := range s.Tags() {
			counts[t]++
		}
	}

	best := TagDetail
	bestCount := 0
	chosen := false
	for _, t := range focusPriority {
		// TagDetail is the nothing-found marker, not a recurring issue;
		// it never competes in the supported scan and is reached only
		// through the fallback below.
		if t == TagDetail {
			continue
		}
		c := counts[t]
		if c >= FocusSupport && c > bestCount {
			best = t
			bestCount = c
			chosen = true
		}
	}

	if !chosen {
		for _, t := range focusPriority {
			if counts[t] > 0 {
				best = t
				bestCount = counts[t]
				break
			}
		}
	}

	return RoundFocus{
		Tag:      best,
		Count:    bestCount,
		Label:    focusLabels[best],
		Examples: collectExamples(sets, best, MaxFocusExamples),
	}
}

// collectExamples gathers up to max example snippets for a tag across
// the round's answers, preserving answer order.
func collectExamples(sets []TagSet, tag Tag, max int) []string {
	var out []string
	for _, s := range sets {
		for _, ex := range s.ExamplesFor(tag) {
			out = append(out, ex)
			if len(out) >= max {
				return out
			}
		}
	}
	return out
}

// Label returns the coaching headline for a tag.
func Label(t Tag) string {
	if l, ok := focusLabels[t]; ok {
		return l
	}
	return focusLabels[TagDetail]
}

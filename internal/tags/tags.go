package tags

import (
	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/rubric"
)

// Tag is a diagnostic error category for one answer.
type Tag string

const (
	TagSpelling       Tag = "spelling"
	TagVerbForm       Tag = "verb_form"
	TagArticlesGender Tag = "articles_gender"
	TagWordOrder      Tag = "word_order"
	TagArticles       Tag = "articles"
	TagMissingBe      Tag = "missing_be"
	TagNoConnector    Tag = "no_connector"
	TagTooShort       Tag = "too_short"
	TagDetail         Tag = "detail"
)

// MaxExamplesPerTag bounds the example snippets a single finding carries.
const MaxExamplesPerTag = 4

// Finding is one detected tag with its supporting example snippets.
type Finding struct {
	Tag      Tag
	Examples []string
}

// TagSet is the full diagnostic result for one answer. Never empty:
// TagDetail is the universal fallback.
type TagSet struct {
	Findings []Finding
}

// Tags returns the detected tags in detection order.
func (s TagSet) Tags() []Tag {
	out := make([]Tag, len(s.Findings))
	for i, f := range s.Findings {
		out[i] = f.Tag
	}
	return out
}

// Has reports whether the set contains the tag.
func (s TagSet) Has(tag Tag) bool {
	for _, f := range s.Findings {
		if f.Tag == tag {
			return true
		}
	}
	return false
}

// ExamplesFor returns the examples recorded for a tag, or nil.
func (s TagSet) ExamplesFor(tag Tag) []string {
	for _, f := range s.Findings {
		if f.Tag == tag {
			return f.Examples
		}
	}
	return nil
}

// DetectInput carries the context a detector may consult.
type DetectInput struct {
	Prompt content.Prompt
	Answer string
	Lang   lang.Code
	Rubric rubric.Rubric
}

// detector inspects one answer for a single error category.
// Detectors are pure functions: nil result means the rule doesn't apply.
type detector func(in DetectInput) *Finding

// detectors in detection order. Pattern-table detectors only fire for
// languages with populated resources; length-based ones fire always.
var detectors = []detector{
	detectSpelling,
	detectVerbForm,
	detectArticlesGender,
	detectWordOrder,
	detectMissingBe,
	detectArticles,
	detectTooShort,
	detectNoConnector,
}

// Detect runs all detectors over one answer, independent of pass/fail.
// The result is never empty: TagDetail fires when nothing else does.
func Detect(in DetectInput) TagSet {
	var set TagSet
	for _, d := range detectors {
		if f := d(in); f != nil {
			if len(f.Examples) > MaxExamplesPerTag {
				f.Examples = f.Examples[:MaxExamplesPerTag]
			}
			set.Findings = append(set.Findings, *f)
		}
	}
	if len(set.Findings) == 0 {
		set.Findings = append(set.Findings, Finding{Tag: TagDetail})
	}
	return set
}

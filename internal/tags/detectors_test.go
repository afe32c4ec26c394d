package tags

import (
	"strings"
	"testing"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/rubric"
)

func esInput(prompt content.Prompt, answer string) DetectInput {
	return DetectInput{
		Prompt: prompt,
		Answer: answer,
		Lang:   lang.CodeSpanish,
		Rubric: rubric.Rubric{MinWords: 4, MinChars: 20},
	}
}

var describePrompt = content.Prompt{Text: "Describe tu casa.", Badge: content.BadgeSer}

func TestDetect_Spelling(t *testing.T) {
	set := Detect(esInput(describePrompt, "yo kiero una casa mui grande"))
	if !set.Has(TagSpelling) {
		t.Fatalf("tags = %v, want spelling", set.Tags())
	}
	ex := set.ExamplesFor(TagSpelling)
	if len(ex) != 2 {
		t.Fatalf("examples = %v, want 2", ex)
	}
	if ex[0] != "kiero → quiero" {
		t.Errorf("example = %q", ex[0])
	}
}

func TestDetect_VerbForm(t *testing.T) {
	set := Detect(esInput(describePrompt, "yo es un estudiante de español"))
	if !set.Has(TagVerbForm) {
		t.Fatalf("tags = %v, want verb_form", set.Tags())
	}
	ex := set.ExamplesFor(TagVerbForm)
	if len(ex) == 0 || !strings.Contains(ex[0], "yo soy") {
		t.Errorf("examples = %v, want a 'yo soy' fix", ex)
	}
}

func TestDetect_ArticlesGender(t *testing.T) {
	set := Detect(esInput(describePrompt, "me gusta el casa con la libro"))
	if !set.Has(TagArticlesGender) {
		t.Fatalf("tags = %v, want articles_gender", set.Tags())
	}
	ex := set.ExamplesFor(TagArticlesGender)
	if len(ex) != 2 {
		t.Fatalf("examples = %v, want 2", ex)
	}
	if ex[0] != "el casa → la casa" {
		t.Errorf("example = %q", ex[0])
	}
	if ex[1] != "la libro → el libro" {
		t.Errorf("example = %q", ex[1])
	}
}

func TestDetect_WordOrder(t *testing.T) {
	set := Detect(esInput(describePrompt, "gusta me mucho la cocina grande"))
	if !set.Has(TagWordOrder) {
		t.Fatalf("tags = %v, want word_order", set.Tags())
	}
}

func TestDetect_MissingBe(t *testing.T) {
	set := Detect(esInput(describePrompt, "mi casa muy grande con jardín bonito"))
	if !set.Has(TagMissingBe) {
		t.Fatalf("tags = %v, want missing_be", set.Tags())
	}

	// With a be form present the tag does not fire.
	set = Detect(esInput(describePrompt, "mi casa es muy grande con jardín"))
	if set.Has(TagMissingBe) {
		t.Errorf("tags = %v, missing_be must not fire with 'es'", set.Tags())
	}
}

func TestDetect_Articles(t *testing.T) {
	p := content.Prompt{Text: "¿Qué hay en tu cocina?", Badge: content.BadgeVocab}
	set := Detect(esInput(p, "en mi cocina hay mesa y cuatro sillas"))
	if !set.Has(TagArticles) {
		t.Fatalf("tags = %v, want articles", set.Tags())
	}
	ex := set.ExamplesFor(TagArticles)
	if len(ex) == 0 || ex[0] != "hay mesa → hay una mesa" {
		t.Errorf("examples = %v", ex)
	}

	// With the article present the nudge stays quiet.
	set = Detect(esInput(p, "en mi cocina hay una mesa grande"))
	if set.Has(TagArticles) {
		t.Errorf("tags = %v, articles must not fire", set.Tags())
	}
}

func TestDetect_TooShort(t *testing.T) {
	set := Detect(esInput(describePrompt, "es grande"))
	if !set.Has(TagTooShort) {
		t.Fatalf("tags = %v, want too_short", set.Tags())
	}
}

func TestDetect_NoConnector(t *testing.T) {
	p := content.Prompt{Text: "¿Por qué te gusta tu casa?", Badge: content.BadgeStructure}
	in := esInput(p, "me gusta mi casa grande con un jardín bonito")
	in.Rubric.RequireConnector = true
	set := Detect(in)
	if !set.Has(TagNoConnector) {
		t.Fatalf("tags = %v, want no_connector", set.Tags())
	}

	// Too short for the nudge: too_short wins instead.
	in.Answer = "me gusta casa"
	set = Detect(in)
	if set.Has(TagNoConnector) {
		t.Errorf("tags = %v, no_connector must not fire on short answers", set.Tags())
	}
	if !set.Has(TagTooShort) {
		t.Errorf("tags = %v, want too_short", set.Tags())
	}
}

func TestDetect_DetailFallback(t *testing.T) {
	set := Detect(esInput(describePrompt, "mi casa es bastante normal por dentro"))
	if len(set.Findings) == 0 {
		t.Fatal("tag set must never be empty")
	}
	if len(set.Findings) != 1 || set.Findings[0].Tag != TagDetail {
		t.Errorf("tags = %v, want only detail", set.Tags())
	}
}

func TestDetect_UnpopulatedLanguageDegrades(t *testing.T) {
	in := DetectInput{
		Prompt: describePrompt,
		// Misspellings and missing be-verbs galore, but no French tables.
		Answer: "ma maison grande kiero",
		Lang:   lang.CodeFrench,
		Rubric: rubric.Rubric{MinWords: 6, MinChars: 30},
	}
	set := Detect(in)
	for _, tag := range set.Tags() {
		if tag != TagTooShort && tag != TagDetail {
			t.Errorf("unpopulated language produced %v, want only too_short/detail", tag)
		}
	}
}

func TestDetect_RunsRegardlessOfPassFail(t *testing.T) {
	// A passing-length answer still gets pattern tags.
	in := esInput(describePrompt, "yo kiero mucho mi casa grande y bonita con un jardín enorme")
	set := Detect(in)
	if set.Has(TagTooShort) {
		t.Errorf("tags = %v, too_short must not fire", set.Tags())
	}
	if !set.Has(TagSpelling) {
		t.Errorf("tags = %v, want spelling", set.Tags())
	}
}

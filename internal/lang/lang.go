package lang

// Code identifies a source language for detection and suggestion tables.
type Code string

const (
	CodeSpanish Code = "es"
	CodeFrench  Code = "fr"
	CodeItalian Code = "it"
)

// Gender is the grammatical gender of a noun.
type Gender string

const (
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
)

// CannedModel is a fallback model sentence selected by prompt keywords.
type CannedModel struct {
	// Keywords are matched (normalized) against the prompt text.
	Keywords []string
	// Sentence is the full model answer to substitute.
	Sentence string
}

// Tables holds the lexical resources for one language.
//
// Only Spanish ships fully populated. Languages without pattern tables
// degrade to length-based detection only — a documented coverage gap,
// not an error condition.
type Tables struct {
	// Misspellings maps known learner misspellings to corrections.
	// Keys are lowercase; replacement preserves leading-cap case.
	Misspellings map[string]string

	// Repairs are fixed multi-word mistakes and their replacements,
	// applied before single-word misspellings.
	Repairs map[string]string

	// NounGenders maps (normalized) nouns to their grammatical gender.
	NounGenders map[string]Gender

	// BeForms are the conjugated be-verb forms (ser/estar for Spanish),
	// including common accent-dropped variants learners type.
	BeForms []string

	// Connectors are discourse connector words and phrases.
	Connectors []string

	// AdjectiveCues are adjectives that suggest a description is being
	// attempted; used by the missing-be detector.
	AdjectiveCues []string

	// VerbFormErrors maps known subject+verb error patterns to fixes,
	// e.g. a first-person subject paired with a third-person copula.
	VerbFormErrors map[string]string

	// OrderErrors maps known mis-orderings of reflexive constructions
	// to the fixed order.
	OrderErrors map[string]string

	// CannedModels are keyword-matched fallback sentences.
	CannedModels []CannedModel

	// GenericModel is the last-resort fallback sentence.
	GenericModel string
}

// registry of populated language tables.
var registry = map[Code]*Tables{
	CodeSpanish: spanishTables,
}

// emptyTables is returned for languages without populated resources.
var emptyTables = &Tables{}

// For returns the lexical tables for a language. Languages without
// populated tables get an empty (never nil) Tables value.
func For(code Code) *Tables {
	if t, ok := registry[code]; ok {
		return t
	}
	return emptyTables
}

// Populated reports whether full pattern tables exist for the language.
func Populated(code Code) bool {
	_, ok := registry[code]
	return ok
}

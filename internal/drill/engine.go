package drill

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/tags"
)

// Anti-repetition window sizes. A reference or variant inside its
// window is skipped when an alternative exists.
const (
	refWindow     = 4
	variantWindow = 6
)

// choiceChance is the probability a drill serves the multiple-choice
// variant when the sub-drill does not force free text.
const choiceChance = 0.55

// Variant is the answer mode of one question.
type Variant string

const (
	VariantChoice Variant = "choice"
	VariantType   Variant = "type"
)

// Question is one drill item. Choices is populated only for the choice
// variant and contains exactly one correct option.
type Question struct {
	Kind    Kind
	Variant Variant
	Prompt  string
	Choices []string

	answer string
	ref    refItem
}

// AnswerIndex returns the position of the correct option in Choices,
// or -1 for the type variant.
func (q *Question) AnswerIndex() int {
	for i, c := range q.Choices {
		if c == q.answer {
			return i
		}
	}
	return -1
}

// Result reports one submission.
type Result struct {
	OK      bool
	Message string
}

// Engine serves questions for one gate and validates submissions.
type Engine struct {
	gate *Gate
	code lang.Code
	refs []refItem
	rng  *rand.Rand

	recentRefs     []string
	recentVariants []string
}

// NewEngine builds an engine for a gate.
func NewEngine(gate *Gate, code lang.Code, focus tags.RoundFocus) *Engine {
	return newEngine(gate, code, focus, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewEngineSeeded is NewEngine with a deterministic source, for tests.
func NewEngineSeeded(gate *Gate, code lang.Code, focus tags.RoundFocus, seed uint64) *Engine {
	return newEngine(gate, code, focus, rand.New(rand.NewPCG(seed, seed)))
}

func newEngine(gate *Gate, code lang.Code, focus tags.RoundFocus, rng *rand.Rand) *Engine {
	return &Engine{
		gate: gate,
		code: code,
		refs: refsForKind(gate.Kind, code, focus),
		rng:  rng,
	}
}

// Gate exposes the engine's gate for progress display.
func (e *Engine) Gate() *Gate { return e.gate }

// Next produces the next question. References and sub-drill variants
// recently served are avoided while alternatives remain.
func (e *Engine) Next() *Question {
	ref := e.pickRef()
	forceType := typeOnly[e.gate.Kind]
	variant := VariantType
	if !forceType && e.rng.Float64() < choiceChance {
		variant = VariantChoice
	}
	e.note(&e.recentVariants, string(e.gate.Kind)+":"+string(variant), variantWindow)

	q := &Question{Kind: e.gate.Kind, Variant: variant, ref: ref}
	if variant == VariantChoice {
		e.buildChoice(q)
	} else {
		e.buildType(q)
	}
	return q
}

// typeOnly marks kinds whose exercises have no sensible choice form.
var typeOnly = map[Kind]bool{
	KindDetail:  true,
	KindUpgrade: true,
}

func (e *Engine) pickRef() refItem {
	if len(e.refs) == 0 {
		return refItem{Wrong: "tu día", Right: ""}
	}
	fresh := make([]refItem, 0, len(e.refs))
	for _, r := range e.refs {
		if !contains(e.recentRefs, r.key()) {
			fresh = append(fresh, r)
		}
	}
	pool := fresh
	if len(pool) == 0 {
		pool = e.refs
	}
	ref := pool[e.rng.IntN(len(pool))]
	e.note(&e.recentRefs, ref.key(), refWindow)
	return ref
}

func (e *Engine) note(window *[]string, key string, size int) {
	*window = append(*window, key)
	if len(*window) > size {
		*window = (*window)[len(*window)-size:]
	}
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func (e *Engine) buildChoice(q *Question) {
	ref := q.ref
	var correct string
	switch q.Kind {
	case KindGender:
		correct = ref.Right + " " + ref.Wrong
		q.Prompt = fmt.Sprintf("Elige la forma correcta de «%s»", ref.Wrong)
	case KindConnector:
		correct = ref.Right
		q.Prompt = fmt.Sprintf("Une las ideas: %s ¿Qué conector encaja?", ref.Wrong)
		q.answer = correct
		q.Choices = e.shuffled(correct, connectorPool(correct))
		return
	case KindOrder:
		correct = ref.Right
		q.Prompt = "Elige el orden correcto"
	case KindBe:
		correct = ref.Right
		q.Prompt = "Elige la frase completa"
	default:
		correct = ref.Right
		q.Prompt = "¿Cuál es la forma correcta?"
	}
	q.answer = correct
	q.Choices = e.shuffled(correct, distractorsFor(q.Kind, ref))
}

// shuffled builds four options with exactly one correct answer.
func (e *Engine) shuffled(correct string, distractors []string) []string {
	opts := []string{correct}
	for _, d := range distractors {
		if len(opts) == 4 {
			break
		}
		if d != correct && !contains(opts, d) {
			opts = append(opts, d)
		}
	}
	e.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}

func connectorPool(correct string) []string {
	pool := make([]string, 0, len(connectorChoices))
	for _, c := range connectorChoices {
		if c != correct {
			pool = append(pool, c)
		}
	}
	return pool
}

func (e *Engine) buildType(q *Question) {
	ref := q.ref
	switch q.Kind {
	case KindSpelling, KindVerb:
		q.Prompt = fmt.Sprintf("Escribe la forma correcta de «%s»", ref.Wrong)
		q.answer = ref.Right
	case KindGender:
		q.Prompt = fmt.Sprintf("Escribe el artículo correcto para «%s» (el/la)", ref.Wrong)
		q.answer = ref.Right
	case KindOrder:
		scrambled := strings.Join(strings.Fields(ref.Wrong), " / ")
		q.Prompt = fmt.Sprintf("Ordena las palabras: %s", scrambled)
		q.answer = ref.Right
	case KindBe:
		q.Prompt = fmt.Sprintf("Completa con es o está: %s", ref.Wrong)
		q.answer = ref.Right
	case KindConnector:
		q.Prompt = fmt.Sprintf("Une las dos ideas en una frase con un conector: %s", ref.Wrong)
	case KindDetail:
		q.Prompt = fmt.Sprintf("Completa la frase con detalle: «%s …»", ref.Wrong)
	case KindUpgrade:
		q.Prompt = fmt.Sprintf("Escribe una frase completa sobre %s", ref.Wrong)
	}
}

// Submit validates a response and records the outcome on the gate.
func (e *Engine) Submit(q *Question, response string) Result {
	ok := e.check(q, response)
	e.gate.Record(ok)
	if ok {
		if e.gate.Cleared {
			return Result{OK: true, Message: "¡Muy bien! Racha completa."}
		}
		return Result{OK: true, Message: fmt.Sprintf("Correcto. Racha: %d de %d.", e.gate.Stats.Streak, e.gate.Target)}
	}
	msg := "Casi. Inténtalo otra vez."
	if q.answer != "" {
		msg = fmt.Sprintf("La forma correcta es «%s».", q.answer)
	}
	return Result{OK: false, Message: msg}
}

func (e *Engine) check(q *Question, response string) bool {
	resp := strings.TrimSpace(response)
	if resp == "" {
		return false
	}
	if q.Variant == VariantChoice {
		return lang.Normalize(resp) == lang.Normalize(q.answer)
	}
	norm := lang.Normalize(resp)
	switch q.Kind {
	case KindSpelling, KindVerb, KindOrder, KindBe:
		return norm == lang.Normalize(q.answer)
	case KindGender:
		want := lang.Normalize(q.answer)
		return norm == want || strings.HasPrefix(norm, want+" ")
	case KindConnector:
		return lang.HasConnector(resp, e.code) && len(resp) >= 12
	case KindDetail, KindUpgrade:
		return lang.WordCount(resp) >= 8
	}
	return false
}

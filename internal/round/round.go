// Package round orchestrates the grading pipeline for one completed
// round of answers: rubric evaluation, tag detection, focus selection,
// optional AI grading, suggestion and diff generation, and scoring.
// It returns pure results; persistence and rendering are the caller's.
package round

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/diff"
	"github.com/abhisek/escriba/internal/grader"
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/rubric"
	"github.com/abhisek/escriba/internal/suggest"
	"github.com/abhisek/escriba/internal/tags"
)

// DefaultGradeTimeout bounds the AI grading call. On expiry the round
// proceeds with local verdicts only.
const DefaultGradeTimeout = 6 * time.Second

// MinScore is the floor of the round score.
const MinScore = 10

var (
	// ErrInFlight is returned when a finalization is already running.
	ErrInFlight = errors.New("round finalization already in flight")

	// ErrTryAgain is returned when the pipeline panicked mid-round.
	ErrTryAgain = errors.New("grading failed, try again")
)

// Input is one completed round awaiting grading.
type Input struct {
	RoundID string // assigned when empty
	Lang    lang.Code
	Theme   content.Theme
	Level   int
	Prompts []content.Prompt
	Answers []string
	Elapsed time.Duration
}

// Item is the graded outcome for one answer.
type Item struct {
	Prompt     content.Prompt
	Answer     string
	OK         bool
	Reason     rubric.Reason
	Tags       tags.TagSet
	Suggestion string
	Tip        string
	Why        string
	Diff       diff.Result
}

// Result aggregates one graded round.
type Result struct {
	RoundID      string
	Lang         lang.Code
	Theme        content.Theme
	Level        int
	Items        []Item
	Wrong        int
	Score        int
	Focus        tags.RoundFocus
	UsedFallback bool
	Elapsed      time.Duration
}

// Finalizer runs the grading pipeline. A nil grader means local-only
// marking; UsedFallback is then always true.
type Finalizer struct {
	grader  *grader.Grader
	suggest *suggest.Generator
	timeout time.Duration
	busy    atomic.Bool
}

// NewFinalizer builds a Finalizer. g may be nil.
func NewFinalizer(g *grader.Grader) *Finalizer {
	return &Finalizer{
		grader:  g,
		suggest: suggest.New(),
		timeout: DefaultGradeTimeout,
	}
}

// SetTimeout overrides the AI grading timeout.
func (f *Finalizer) SetTimeout(d time.Duration) { f.timeout = d }

// Finalize grades one round. Only one finalization may run at a time;
// the guard is released on every path, including panics, which surface
// as ErrTryAgain.
func (f *Finalizer) Finalize(ctx context.Context, in Input) (res *Result, err error) {
	if !f.busy.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer f.busy.Store(false)
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, ErrTryAgain
		}
	}()

	n := len(in.Answers)
	if len(in.Prompts) < n {
		n = len(in.Prompts)
	}

	roundID := in.RoundID
	if roundID == "" {
		roundID = uuid.NewString()
	}

	rub := rubric.ForLevel(in.Level)

	locals := make([]rubric.EvalResult, n)
	sets := make([]tags.TagSet, n)
	for i := 0; i < n; i++ {
		locals[i] = rubric.Evaluate(in.Answers[i], in.Prompts[i], rub, in.Lang)
		sets[i] = tags.Detect(tags.DetectInput{
			Prompt: in.Prompts[i],
			Answer: in.Answers[i],
			Lang:   in.Lang,
			Rubric: rub,
		})
	}

	focus := tags.SelectFocus(sets)

	verdicts, usedFallback := f.gradeRemotely(ctx, in, rub, locals, n)

	items := make([]Item, n)
	wrong := 0
	for i := 0; i < n; i++ {
		final := rubric.ApplyVerdict(locals[i], verdicts[i].OK)
		if !final.OK {
			wrong++
		}

		suggestion := ""
		tip := verdicts[i].Tip
		if !final.OK {
			suggestion = verdicts[i].Correction
			if suggestion == "" {
				suggestion = f.suggest.Generate(in.Prompts[i], in.Answers[i], in.Lang, rub, focus.Tag)
			}
		}

		items[i] = Item{
			Prompt:     in.Prompts[i],
			Answer:     in.Answers[i],
			OK:         final.OK,
			Reason:     final.Reason,
			Tags:       sets[i],
			Suggestion: suggestion,
			Tip:        tip,
			Why:        verdicts[i].Why,
			Diff:       diff.Compute(in.Answers[i], suggestion, final.OK),
		}
	}

	return &Result{
		RoundID:      roundID,
		Lang:         in.Lang,
		Theme:        in.Theme,
		Level:        in.Level,
		Items:        items,
		Wrong:        wrong,
		Score:        Score(wrong, in.Elapsed),
		Focus:        focus,
		UsedFallback: usedFallback,
		Elapsed:      in.Elapsed,
	}, nil
}

// gradeRemotely races the AI grader against the timeout. Any error or
// expiry yields empty verdicts and the fallback flag; partial results
// are never merged.
func (f *Finalizer) gradeRemotely(ctx context.Context, in Input, rub rubric.Rubric, locals []rubric.EvalResult, n int) ([]grader.Verdict, bool) {
	empty := make([]grader.Verdict, n)
	if f.grader == nil {
		return empty, true
	}

	items := make([]grader.Item, n)
	for i := 0; i < n; i++ {
		items[i] = grader.Item{
			Prompt:  in.Prompts[i].Text,
			Badge:   string(in.Prompts[i].Badge),
			Answer:  in.Answers[i],
			LocalOK: locals[i].OK,
			Reason:  string(locals[i].Reason),
		}
	}

	gctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	res, err := f.grader.Grade(gctx, grader.Request{
		Lang:   string(in.Lang),
		Theme:  string(in.Theme),
		Level:  in.Level,
		Rubric: rub,
		Items:  items,
	})
	if err != nil || len(res.Verdicts) != n {
		return empty, true
	}
	return res.Verdicts, false
}

// Score derives the round score from the wrong count and the answer
// phase duration. Errors cost more than slowness; the floor keeps every
// finished round worth something.
func Score(wrong int, elapsed time.Duration) int {
	s := 100 - wrong*8 - int(elapsed.Seconds())/6
	if s < MinScore {
		return MinScore
	}
	return s
}

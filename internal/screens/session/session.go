package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/drill"
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/progress"
	"github.com/abhisek/escriba/internal/round"
	"github.com/abhisek/escriba/internal/router"
	"github.com/abhisek/escriba/internal/sampler"
	"github.com/abhisek/escriba/internal/screen"
	"github.com/abhisek/escriba/internal/store"
	"github.com/abhisek/escriba/internal/ui/components"
	"github.com/abhisek/escriba/internal/ui/layout"
)

// pacingDelay is how long the drill lingers on a wrong answer before
// serving the next question.
const pacingDelay = 700 * time.Millisecond

type phase int

const (
	phaseLoading phase = iota
	phaseAnswer
	phaseGrading
	phaseResults
	phaseDrill
	phaseDone
)

// Deps are the collaborators injected into the session screen. State
// and History are caller-owned and mutated in place; the caller sees
// progress and sampler history without re-reading the store.
type Deps struct {
	Finalizer *round.Finalizer
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	State     *progress.State
	History   map[string][]string
	Theme     content.Theme
	Lang      lang.Code
}

// SessionScreen runs one writing round end to end: answer entry,
// grading, results, and the remediation drill when the round earned
// one.
type SessionScreen struct {
	deps Deps

	phase     phase
	prompts   []content.Prompt
	answers   []string
	idx       int
	startedAt time.Time
	input     components.TextInput

	result *round.Result

	gate       *drill.Gate
	engine     *drill.Engine
	question   *drill.Question
	choice     components.MultiChoice
	drillInput components.TextInput
	feedback   string
	feedbackOK bool
	inFeedback bool
	drillGen   int

	outcome progress.Outcome

	confirmQuit bool
	errMsg      string
	errRetry    bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates the session screen for one theme.
func New(deps Deps) *SessionScreen {
	return &SessionScreen{
		deps:  deps,
		input: components.NewTextInput("Escribe tu respuesta...", 120),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.sampleRound(), s.input.Init())
}

func (s *SessionScreen) Title() string {
	return "Ronda de escritura"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Salir"},
			{Key: "N", Description: "Seguir"},
		}
	}
	switch s.phase {
	case phaseAnswer:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Enviar"},
			{Key: "Esc", Description: "Salir"},
		}
	case phaseResults, phaseDone:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continuar"},
		}
	case phaseDrill:
		if s.inFeedback {
			return []layout.KeyHint{
				{Key: "any key", Description: "Siguiente"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Enviar"},
			{Key: "Esc", Description: "Salir"},
		}
	}
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundReadyMsg:
		return s.handleRoundReady(msg)

	case gradedMsg:
		return s.handleGraded(msg)

	case drillAdvanceMsg:
		if msg.Gen != s.drillGen {
			return s, nil
		}
		return s.advanceDrill()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward non-key messages (cursor blink) to the active input.
	switch s.phase {
	case phaseAnswer:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	case phaseDrill:
		if s.question != nil && s.question.Variant == drill.VariantType && !s.inFeedback {
			var cmd tea.Cmd
			s.drillInput, cmd = s.drillInput.Update(msg)
			return s, cmd
		}
	}

	return s, nil
}

// sampleRound draws the round's prompts from the theme bank, avoiding
// recently served prompts via the caller-owned history buffer.
func (s *SessionScreen) sampleRound() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		smp := sampler.New()
		history := deps.History[string(deps.Theme)]
		prompts, updated := smp.Sample(content.Bank(deps.Theme), deps.State.Level, history)
		return roundReadyMsg{Prompts: prompts, History: updated}
	}
}

func (s *SessionScreen) handleRoundReady(msg roundReadyMsg) (screen.Screen, tea.Cmd) {
	if len(msg.Prompts) == 0 {
		s.errMsg = "no hay frases disponibles para este tema"
		return s, nil
	}
	s.deps.History[string(s.deps.Theme)] = msg.History
	s.prompts = msg.Prompts
	s.answers = s.answers[:0]
	s.idx = 0
	s.startedAt = time.Now()
	s.phase = phaseAnswer
	s.input.Reset()
	return s, s.input.Init()
}

// finalizeRound runs the grading pipeline off the update loop.
func (s *SessionScreen) finalizeRound() tea.Cmd {
	deps := s.deps
	in := round.Input{
		Lang:    deps.Lang,
		Theme:   deps.Theme,
		Level:   deps.State.Level,
		Prompts: s.prompts,
		Answers: s.answers,
		Elapsed: time.Since(s.startedAt),
	}
	return func() tea.Msg {
		res, err := deps.Finalizer.Finalize(context.Background(), in)
		return gradedMsg{Result: res, Err: err}
	}
}

func (s *SessionScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, round.ErrInFlight) {
			// A duplicate finish trigger; the first one will land.
			return s, nil
		}
		s.errMsg = msg.Err.Error()
		s.errRetry = true
		return s, nil
	}

	s.result = msg.Result
	s.persistRound()

	if s.result.Wrong > 0 {
		mandatory := s.result.Wrong > progress.PassWrongLimit
		s.gate = drill.NewGate(s.result.Focus, s.deps.Lang, s.result.Level, s.result.Wrong, mandatory)
		s.engine = drill.NewEngine(s.gate, s.deps.Lang, s.result.Focus)
	}

	s.phase = phaseResults
	return s, nil
}

// persistRound appends the answer and round events. Write failures are
// not surfaced; the session continues on the in-memory result.
func (s *SessionScreen) persistRound() {
	ctx := context.Background()
	res := s.result
	for _, it := range res.Items {
		var tagNames []string
		for _, t := range it.Tags.Tags() {
			tagNames = append(tagNames, string(t))
		}
		_ = s.deps.Events.AppendAnswer(ctx, store.AnswerEventData{
			RoundID:    res.RoundID,
			PromptText: it.Prompt.Text,
			Badge:      string(it.Prompt.Badge),
			AnswerText: it.Answer,
			OK:         it.OK,
			Reason:     string(it.Reason),
			Tags:       tagNames,
			Suggestion: it.Suggestion,
		})
	}
	_ = s.deps.Events.AppendRound(ctx, store.RoundEventData{
		RoundID:      res.RoundID,
		Lang:         string(res.Lang),
		Theme:        string(res.Theme),
		Level:        res.Level,
		WrongCount:   res.Wrong,
		Score:        res.Score,
		FocusTag:     string(res.Focus.Tag),
		UsedFallback: res.UsedFallback,
		ElapsedSecs:  int(res.Elapsed.Seconds()),
	})
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		if s.errRetry && key == "enter" {
			s.errMsg = ""
			s.errRetry = false
			s.phase = phaseGrading
			return s, s.finalizeRound()
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.drillGen++
			s.saveSnapshot()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.phase {
	case phaseAnswer:
		switch key {
		case "esc":
			s.confirmQuit = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseResults:
		if key == "enter" {
			if s.engine != nil {
				s.phase = phaseDrill
				return s.serveDrill()
			}
			return s.finishSession()
		}
		if key == "esc" {
			s.confirmQuit = true
		}
		return s, nil

	case phaseDrill:
		return s.handleDrillKey(msg)

	case phaseDone:
		if key == "enter" || key == "esc" {
			if s.outcome.RetryRound {
				return s.restartRound()
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	return s, nil
}

// submitAnswer records the current answer and advances to the next
// prompt, or hands the round to the grader after the last one. Blank
// answers are accepted; the rubric marks them wrong.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	s.answers = append(s.answers, s.input.Value())
	s.idx++
	if s.idx < len(s.prompts) {
		s.input.Reset()
		return s, s.input.Init()
	}
	s.phase = phaseGrading
	return s, s.finalizeRound()
}

func (s *SessionScreen) handleDrillKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.inFeedback {
		// Any key skips the pacing delay.
		return s.advanceDrill()
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submitDrill()
	}

	if s.question == nil {
		return s, nil
	}
	if s.question.Variant == drill.VariantChoice {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		// MultiChoice marks itself submitted on enter, which we handle
		// above; everything else is navigation.
		return s, cmd
	}
	var cmd tea.Cmd
	s.drillInput, cmd = s.drillInput.Update(msg)
	return s, cmd
}

// serveDrill asks the engine for the next question and prepares the
// matching input component.
func (s *SessionScreen) serveDrill() (screen.Screen, tea.Cmd) {
	s.question = s.engine.Next()
	s.inFeedback = false
	s.feedback = ""
	if s.question.Variant == drill.VariantChoice {
		s.choice = components.NewMultiChoice(s.question.Prompt, s.question.Choices, s.question.AnswerIndex())
		return s, nil
	}
	s.drillInput = components.NewTextInput("Tu respuesta...", 120)
	return s, s.drillInput.Init()
}

func (s *SessionScreen) submitDrill() (screen.Screen, tea.Cmd) {
	if s.question == nil {
		return s, nil
	}

	var response string
	if s.question.Variant == drill.VariantChoice {
		s.choice.Submitted = true
		s.choice.ChosenIndex = s.choice.Selected
		response = s.choice.Options[s.choice.ChosenIndex]
	} else {
		response = s.drillInput.Value()
		if response == "" {
			return s, nil
		}
	}

	res := s.engine.Submit(s.question, response)
	if s.question.Variant == drill.VariantType {
		s.drillInput.Submit(res.OK)
	}
	s.feedback = res.Message
	s.feedbackOK = res.OK
	s.inFeedback = true

	_ = s.deps.Events.AppendDrill(context.Background(), store.DrillEventData{
		RoundID:     s.result.RoundID,
		Kind:        string(s.question.Kind),
		Variant:     string(s.question.Variant),
		Prompt:      s.question.Prompt,
		Response:    response,
		Correct:     res.OK,
		StreakAfter: s.gate.Stats.Streak,
		Target:      s.gate.Target,
		Cleared:     s.gate.Cleared,
	})

	if !res.OK {
		// Pace the transition so the correction registers.
		s.drillGen++
		gen := s.drillGen
		return s, tea.Tick(pacingDelay, func(time.Time) tea.Msg {
			return drillAdvanceMsg{Gen: gen}
		})
	}
	return s, nil
}

// advanceDrill leaves the feedback state, either into the next
// question or out of the drill once the gate has cleared.
func (s *SessionScreen) advanceDrill() (screen.Screen, tea.Cmd) {
	if !s.inFeedback {
		return s, nil
	}
	s.drillGen++
	if s.gate.Cleared {
		return s.finishSession()
	}
	return s.serveDrill()
}

// finishSession folds the round and gate into the learner's progress,
// persists a snapshot, and shows the summary.
func (s *SessionScreen) finishSession() (screen.Screen, tea.Cmd) {
	s.outcome = s.deps.State.Apply(s.result, s.gate)
	s.saveSnapshot()
	s.phase = phaseDone
	return s, nil
}

// restartRound begins a fresh round at the same theme and level after
// a failed round's mandatory drill.
func (s *SessionScreen) restartRound() (screen.Screen, tea.Cmd) {
	s.result = nil
	s.gate = nil
	s.engine = nil
	s.question = nil
	s.feedback = ""
	s.inFeedback = false
	s.outcome = progress.Outcome{}
	s.phase = phaseLoading
	return s, s.sampleRound()
}

func (s *SessionScreen) saveSnapshot() {
	st := s.deps.State
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version: 1,
			Progress: store.ProgressState{
				Level:      st.Level,
				BestScores: st.BestScores,
				Stars:      st.Stars,
			},
			SamplerHistory: s.deps.History,
		},
	}
	_ = s.deps.Snapshots.Save(context.Background(), snap)
}

package session

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/drill"
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/progress"
	"github.com/abhisek/escriba/internal/round"
	"github.com/abhisek/escriba/internal/screen"
	"github.com/abhisek/escriba/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answerEvents []store.AnswerEventData
	roundEvents  []store.RoundEventData
	drillEvents  []store.DrillEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendRound(_ context.Context, data store.RoundEventData) error {
	m.roundEvents = append(m.roundEvents, data)
	return nil
}
func (m *mockEventRepo) AppendDrill(_ context.Context, data store.DrillEventData) error {
	m.drillEvents = append(m.drillEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) RecentRounds(_ context.Context, _ int) ([]store.RoundSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) TagCounts(_ context.Context) (map[string]int, error) {
	return nil, nil
}
func (m *mockEventRepo) Usage(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen() (*SessionScreen, *mockEventRepo, *mockSnapshotRepo) {
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	s := New(Deps{
		Finalizer: round.NewFinalizer(nil),
		Events:    eventRepo,
		Snapshots: snapRepo,
		State:     progress.NewState(),
		History:   make(map[string][]string),
		Theme:     content.ThemeCasa,
		Lang:      lang.CodeSpanish,
	})
	return s, eventRepo, snapRepo
}

// gradedResult finalizes a small round locally: one passing answer and
// one failing one.
func gradedResult(t *testing.T) *round.Result {
	t.Helper()
	bank := content.Bank(content.ThemeCasa)
	fin := round.NewFinalizer(nil)
	res, err := fin.Finalize(context.Background(), round.Input{
		Lang:    lang.CodeSpanish,
		Theme:   content.ThemeCasa,
		Level:   1,
		Prompts: bank[:2],
		Answers: []string{"mi casa es muy grande y muy bonita", "no"},
		Elapsed: 90 * time.Second,
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	return res
}

func TestSessionScreenTitle(t *testing.T) {
	s, _, _ := testSessionScreen()
	if s.Title() != "Ronda de escritura" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestViewLoadingNonEmpty(t *testing.T) {
	s, _, _ := testSessionScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}
}

func TestRoundReadyStartsAnswerPhase(t *testing.T) {
	s, _, _ := testSessionScreen()
	bank := content.Bank(content.ThemeCasa)

	var scr screen.Screen = s
	scr, _ = scr.Update(roundReadyMsg{Prompts: bank[:3], History: []string{"k1", "k2"}})
	ss := scr.(*SessionScreen)

	if ss.phase != phaseAnswer {
		t.Fatalf("phase = %v, want phaseAnswer", ss.phase)
	}
	if got := ss.deps.History[string(content.ThemeCasa)]; len(got) != 2 {
		t.Errorf("history not stored, got %v", got)
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty answer view")
	}
}

func TestAnswerSubmitAdvancesAndGrades(t *testing.T) {
	s, _, _ := testSessionScreen()
	bank := content.Bank(content.ThemeCasa)

	var scr screen.Screen = s
	scr, _ = scr.Update(roundReadyMsg{Prompts: bank[:2]})
	ss := scr.(*SessionScreen)

	ss.input.Model.SetValue("mi casa es grande")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if len(ss.answers) != 1 || ss.idx != 1 {
		t.Fatalf("answers = %v, idx = %d", ss.answers, ss.idx)
	}
	if ss.phase != phaseAnswer {
		t.Fatalf("phase = %v, want phaseAnswer", ss.phase)
	}

	ss.input.Model.SetValue("tiene dos cuartos")
	scr, cmd := ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if ss.phase != phaseGrading {
		t.Fatalf("phase = %v, want phaseGrading", ss.phase)
	}
	if cmd == nil {
		t.Fatal("expected a grading command")
	}
}

func TestGradedPersistsEventsAndIssuesGate(t *testing.T) {
	s, eventRepo, _ := testSessionScreen()
	res := gradedResult(t)
	if res.Wrong == 0 {
		t.Fatal("fixture round should have a wrong answer")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(gradedMsg{Result: res})
	ss := scr.(*SessionScreen)

	if ss.phase != phaseResults {
		t.Fatalf("phase = %v, want phaseResults", ss.phase)
	}
	if len(eventRepo.answerEvents) != 2 {
		t.Errorf("answer events = %d, want 2", len(eventRepo.answerEvents))
	}
	if len(eventRepo.roundEvents) != 1 {
		t.Fatalf("round events = %d, want 1", len(eventRepo.roundEvents))
	}
	if eventRepo.roundEvents[0].RoundID != res.RoundID {
		t.Errorf("round event ID = %q, want %q", eventRepo.roundEvents[0].RoundID, res.RoundID)
	}
	if ss.gate == nil || ss.engine == nil {
		t.Fatal("expected a remediation gate for a round with wrong answers")
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty results view")
	}
}

func TestGradedInFlightIgnored(t *testing.T) {
	s, _, _ := testSessionScreen()
	s.phase = phaseGrading

	var scr screen.Screen = s
	scr, _ = scr.Update(gradedMsg{Err: round.ErrInFlight})
	ss := scr.(*SessionScreen)

	if ss.phase != phaseGrading || ss.errMsg != "" {
		t.Errorf("in-flight error should be ignored, phase = %v errMsg = %q", ss.phase, ss.errMsg)
	}
}

func TestResultsEnterStartsDrill(t *testing.T) {
	s, _, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(gradedMsg{Result: gradedResult(t)})
	ss := scr.(*SessionScreen)

	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if ss.phase != phaseDrill {
		t.Fatalf("phase = %v, want phaseDrill", ss.phase)
	}
	if ss.question == nil {
		t.Fatal("expected a drill question")
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty drill view")
	}
}

func TestDrillSubmitRecordsEvent(t *testing.T) {
	s, eventRepo, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(gradedMsg{Result: gradedResult(t)})
	ss := scr.(*SessionScreen)
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if ss.question.Variant == drill.VariantChoice {
		ss.choice.Selected = ss.question.AnswerIndex()
	} else {
		ss.drillInput.Model.SetValue("una respuesta cualquiera de prueba")
	}
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if !ss.inFeedback {
		t.Fatal("expected feedback after drill submit")
	}
	if len(eventRepo.drillEvents) != 1 {
		t.Fatalf("drill events = %d, want 1", len(eventRepo.drillEvents))
	}
	ev := eventRepo.drillEvents[0]
	if ev.Target != ss.gate.Target || ev.Kind != string(ss.gate.Kind) {
		t.Errorf("drill event = %+v does not match gate", ev)
	}
}

func TestStaleDrillTickIgnored(t *testing.T) {
	s, _, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(gradedMsg{Result: gradedResult(t)})
	ss := scr.(*SessionScreen)
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	ss.inFeedback = true
	ss.drillGen = 5
	before := ss.question

	scr, _ = ss.Update(drillAdvanceMsg{Gen: 4})
	ss = scr.(*SessionScreen)
	if !ss.inFeedback || ss.question != before {
		t.Error("stale tick should not advance the drill")
	}

	scr, _ = ss.Update(drillAdvanceMsg{Gen: 5})
	ss = scr.(*SessionScreen)
	if ss.inFeedback {
		t.Error("current tick should advance the drill")
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	s, _, snapRepo := testSessionScreen()
	bank := content.Bank(content.ThemeCasa)

	var scr screen.Screen = s
	scr, _ = scr.Update(roundReadyMsg{Prompts: bank[:2]})
	ss := scr.(*SessionScreen)

	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*SessionScreen)
	if !ss.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.confirmQuit {
		t.Fatal("expected confirmation dismissed")
	}

	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*SessionScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after confirming quit")
	}
	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1 saved on quit", len(snapRepo.snapshots))
	}
}

func TestFinishSessionAppliesProgress(t *testing.T) {
	s, _, snapRepo := testSessionScreen()
	res := gradedResult(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(gradedMsg{Result: res})
	ss := scr.(*SessionScreen)

	// Clear the gate by force so the session can finish.
	for !ss.gate.Cleared {
		ss.gate.Record(true)
	}
	ss.inFeedback = true
	scr, _ = ss.Update(drillAdvanceMsg{Gen: ss.drillGen})
	ss = scr.(*SessionScreen)

	if ss.phase != phaseDone {
		t.Fatalf("phase = %v, want phaseDone", ss.phase)
	}
	if got := ss.deps.State.Stars[res.Level]; got == 0 {
		t.Error("expected stars recorded for the level")
	}
	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty summary view")
	}
}

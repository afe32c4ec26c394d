package round

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/grader"
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/llm"
	"github.com/abhisek/escriba/internal/tags"
)

func testInput() Input {
	return Input{
		Lang:  lang.CodeSpanish,
		Theme: content.ThemeCasa,
		Level: 1,
		Prompts: []content.Prompt{
			{Text: "¿Cómo es tu casa?", Badge: content.BadgeSer},
			{Text: "¿Qué hay en tu cocina?"},
		},
		Answers: []string{
			"mi casa es muy grande y muy bonita",
			"no",
		},
		Elapsed: 30 * time.Second,
	}
}

func TestFinalizeLocalOnly(t *testing.T) {
	f := NewFinalizer(nil)
	res, err := f.Finalize(context.Background(), testInput())
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if !res.UsedFallback {
		t.Error("nil grader should report fallback")
	}
	if res.RoundID == "" {
		t.Error("round ID should be assigned")
	}
	if len(res.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(res.Items))
	}
	if !res.Items[0].OK {
		t.Errorf("answer 0 should pass locally, reason %s", res.Items[0].Reason)
	}
	if res.Items[1].OK {
		t.Error("answer 1 should fail locally")
	}
	if res.Wrong != 1 {
		t.Errorf("wrong = %d, want 1", res.Wrong)
	}
	if res.Items[1].Suggestion == "" {
		t.Error("failing item should carry a suggestion")
	}
	if res.Items[0].Suggestion != "" {
		t.Error("passing item should carry no suggestion")
	}
	for _, span := range res.Items[0].Diff.Answer {
		if span.Changed {
			t.Error("diff should be skipped for a passing item")
		}
	}
}

func TestFinalizeUpgradeOnlyMerge(t *testing.T) {
	// Verdicts: flip answer 1 to ok, claim answer 0 is wrong.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answers":[{"index":0,"ok":false},{"index":1,"ok":true}]}`),
	})
	f := NewFinalizer(grader.New(mock, grader.DefaultConfig()))

	res, err := f.Finalize(context.Background(), testInput())
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.UsedFallback {
		t.Error("successful grading should not report fallback")
	}
	if !res.Items[0].OK {
		t.Error("negative verdict must not downgrade a local pass")
	}
	if !res.Items[1].OK {
		t.Error("positive verdict must upgrade a local fail")
	}
	if res.Wrong != 0 {
		t.Errorf("wrong = %d, want 0", res.Wrong)
	}
}

func TestFinalizeCarriesVerdictNotes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answers":[
			{"index":0,"ok":true},
			{"index":1,"ok":false,"why":"la respuesta es demasiado corta","tip":"añade un detalle"}
		]}`),
	})
	f := NewFinalizer(grader.New(mock, grader.DefaultConfig()))

	res, err := f.Finalize(context.Background(), testInput())
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.Items[1].Why != "la respuesta es demasiado corta" {
		t.Errorf("why = %q, want the verdict explanation", res.Items[1].Why)
	}
	if res.Items[1].Tip != "añade un detalle" {
		t.Errorf("tip = %q, want the verdict tip", res.Items[1].Tip)
	}
}

func TestFinalizeGraderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider error
	f := NewFinalizer(grader.New(mock, grader.DefaultConfig()))

	res, err := f.Finalize(context.Background(), testInput())
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !res.UsedFallback {
		t.Error("grader error should fall back to local verdicts")
	}
	if res.Items[1].OK {
		t.Error("local fail must stand when grading is unavailable")
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestFinalizeTimeoutFallsBack(t *testing.T) {
	f := NewFinalizer(grader.New(slowProvider{}, grader.DefaultConfig()))
	f.SetTimeout(10 * time.Millisecond)

	res, err := f.Finalize(context.Background(), testInput())
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !res.UsedFallback {
		t.Error("timed-out grading should fall back to local verdicts")
	}
}

func TestFinalizeGuardReleasedAfterPanic(t *testing.T) {
	// A zero Finalizer has no suggestion generator, so a failing answer
	// panics mid-pipeline. The guard must still be released.
	f := &Finalizer{timeout: time.Second}

	_, err := f.Finalize(context.Background(), testInput())
	if err != ErrTryAgain {
		t.Fatalf("got %v, want ErrTryAgain", err)
	}
	if f.busy.Load() {
		t.Fatal("re-entrancy guard left locked after panic")
	}
}

func TestFinalizeSequentialRounds(t *testing.T) {
	f := NewFinalizer(nil)
	for i := 0; i < 2; i++ {
		if _, err := f.Finalize(context.Background(), testInput()); err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
	}
}

func TestFinalizeFocusAggregation(t *testing.T) {
	in := Input{
		Lang:  lang.CodeSpanish,
		Theme: content.ThemeCasa,
		Level: 1,
		Prompts: []content.Prompt{
			{Text: "¿Qué quieres comer?"},
			{Text: "¿Qué quieres hacer?"},
		},
		Answers: []string{
			"yo kiero comer pan con café",
			"yo kiero jugar con mis amigos",
		},
	}
	f := NewFinalizer(nil)
	res, err := f.Finalize(context.Background(), in)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.Focus.Tag != tags.TagSpelling {
		t.Errorf("focus = %s, want spelling", res.Focus.Tag)
	}
	if res.Focus.Count < 2 {
		t.Errorf("focus count = %d, want >= 2", res.Focus.Count)
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		wrong   int
		elapsed time.Duration
		want    int
	}{
		{0, 0, 100},
		{1, 0, 92},
		{0, 60 * time.Second, 90},
		{3, 2 * time.Minute, 56},
		{10, 10 * time.Minute, MinScore},
	}
	for _, tc := range cases {
		if got := Score(tc.wrong, tc.elapsed); got != tc.want {
			t.Errorf("Score(%d, %v) = %d, want %d", tc.wrong, tc.elapsed, got, tc.want)
		}
	}
}

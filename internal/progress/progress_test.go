package progress

import (
	"testing"

	"github.com/abhisek/escriba/internal/drill"
	"github.com/abhisek/escriba/internal/round"
)

func TestStarsFor(t *testing.T) {
	cases := []struct {
		wrong, want int
	}{
		{0, 3},
		{1, 2},
		{2, 2},
		{3, 1},
		{5, 1},
		{6, 0},
		{10, 0},
	}
	for _, tc := range cases {
		if got := StarsFor(tc.wrong); got != tc.want {
			t.Errorf("StarsFor(%d) = %d, want %d", tc.wrong, got, tc.want)
		}
	}
}

func TestApplyCleanRoundAdvances(t *testing.T) {
	s := NewState()
	out := s.Apply(&round.Result{Level: 1, Wrong: 0, Score: 95}, nil)

	if !out.Passed || out.Stars != 3 || !out.NewBest {
		t.Errorf("outcome = %+v, want passed with 3 stars and new best", out)
	}
	if !out.Advanced || s.Level != 2 {
		t.Errorf("level = %d, want 2 after clean round", s.Level)
	}
	if s.BestScores[1] != 95 || s.Stars[1] != 3 {
		t.Errorf("state = %+v, want best 95 and 3 stars at level 1", s)
	}
}

func TestApplyFailedRoundRetries(t *testing.T) {
	s := NewState()
	out := s.Apply(&round.Result{Level: 1, Wrong: 4, Score: 60}, nil)

	if out.Passed || out.Advanced {
		t.Errorf("outcome = %+v, want failed round without advance", out)
	}
	if !out.RetryRound {
		t.Error("failed round should route back to a retry")
	}
	if s.Level != 1 {
		t.Errorf("level = %d, want unchanged 1", s.Level)
	}
	// Score and stars still recorded.
	if s.BestScores[1] != 60 || s.Stars[1] != 1 {
		t.Errorf("state = %+v, want best 60 and 1 star recorded", s)
	}
}

func TestApplyUnclearedGateBlocksAdvance(t *testing.T) {
	s := NewState()
	gate := &drill.Gate{Target: 3}
	out := s.Apply(&round.Result{Level: 1, Wrong: 2, Score: 80}, gate)

	if out.Advanced {
		t.Error("uncleared gate must block advancement")
	}

	gate.Cleared = true
	out = s.Apply(&round.Result{Level: 1, Wrong: 2, Score: 78}, gate)
	if !out.Advanced || s.Level != 2 {
		t.Errorf("level = %d, want 2 once gate cleared", s.Level)
	}
}

func TestApplyBestScoreOnlyImproves(t *testing.T) {
	s := NewState()
	s.Apply(&round.Result{Level: 1, Wrong: 0, Score: 90}, nil)

	out := s.Apply(&round.Result{Level: 1, Wrong: 0, Score: 70}, nil)
	if out.NewBest {
		t.Error("lower score must not be a new best")
	}
	if s.BestScores[1] != 90 {
		t.Errorf("best = %d, want 90", s.BestScores[1])
	}
}

func TestApplyReplayedLowerLevelDoesNotAdvance(t *testing.T) {
	s := NewState()
	s.Level = 5
	out := s.Apply(&round.Result{Level: 2, Wrong: 0, Score: 100}, nil)
	if out.Advanced || s.Level != 5 {
		t.Errorf("level = %d, want unchanged 5 after replaying level 2", s.Level)
	}
}

func TestApplyCapsAtMaxLevel(t *testing.T) {
	s := NewState()
	s.Level = 10
	out := s.Apply(&round.Result{Level: 10, Wrong: 0, Score: 100}, nil)
	if out.Advanced || s.Level != 10 {
		t.Errorf("level = %d, want capped at 10", s.Level)
	}
}

func TestApplyToleratesNilMaps(t *testing.T) {
	s := &State{Level: 1}
	out := s.Apply(&round.Result{Level: 1, Wrong: 1, Score: 85}, nil)
	if !out.Passed || s.BestScores[1] != 85 {
		t.Errorf("state = %+v, want maps initialized and score recorded", s)
	}
}

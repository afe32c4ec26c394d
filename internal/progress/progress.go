// Package progress tracks best scores, stars, and level advancement
// across rounds. The grading engine computes per-round results; this
// package decides what they mean for the learner's journey.
package progress

import (
	"github.com/abhisek/escriba/internal/drill"
	"github.com/abhisek/escriba/internal/round"
	"github.com/abhisek/escriba/internal/rubric"
)

// PassWrongLimit is the most wrong answers a round may have and still
// count as passed.
const PassWrongLimit = 2

// State is the learner's persistent progress.
type State struct {
	Level      int
	BestScores map[int]int
	Stars      map[int]int
}

// NewState returns a fresh State at the first level.
func NewState() *State {
	return &State{
		Level:      rubric.MinLevel,
		BestScores: make(map[int]int),
		Stars:      make(map[int]int),
	}
}

// Outcome reports what a finished round (and its gate, if any) changed.
type Outcome struct {
	Passed     bool
	Stars      int
	NewBest    bool
	Advanced   bool
	RetryRound bool
}

// StarsFor converts a round's wrong count into a star rating.
func StarsFor(wrong int) int {
	switch {
	case wrong == 0:
		return 3
	case wrong <= PassWrongLimit:
		return 2
	case wrong <= 5:
		return 1
	default:
		return 0
	}
}

// Apply folds a graded round and its remediation gate (nil when none
// was required) into the state. A failed round routes back to a retry;
// advancement additionally requires any issued gate to be cleared.
func (s *State) Apply(res *round.Result, gate *drill.Gate) Outcome {
	if s.BestScores == nil {
		s.BestScores = make(map[int]int)
	}
	if s.Stars == nil {
		s.Stars = make(map[int]int)
	}

	out := Outcome{
		Passed: res.Wrong <= PassWrongLimit,
		Stars:  StarsFor(res.Wrong),
	}

	if res.Score > s.BestScores[res.Level] {
		s.BestScores[res.Level] = res.Score
		out.NewBest = true
	}
	if out.Stars > s.Stars[res.Level] {
		s.Stars[res.Level] = out.Stars
	}

	if !out.Passed {
		out.RetryRound = true
		return out
	}

	gateCleared := gate == nil || gate.Cleared
	if gateCleared && res.Level >= s.Level && s.Level < rubric.MaxLevel {
		s.Level++
		out.Advanced = true
	}
	return out
}

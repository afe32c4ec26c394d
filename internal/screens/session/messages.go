package session

import (
	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/round"
)

// roundReadyMsg is sent when the prompt sampler has assembled a round.
type roundReadyMsg struct {
	Prompts []content.Prompt
	History []string
}

// gradedMsg carries the finalized round result, or the error that
// interrupted grading.
type gradedMsg struct {
	Result *round.Result
	Err    error
}

// drillAdvanceMsg moves past drill feedback to the next question. Gen
// guards against stale pacing ticks after a manual advance or quit.
type drillAdvanceMsg struct {
	Gen int
}

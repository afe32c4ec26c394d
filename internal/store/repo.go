package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressState is the per-level progress carried across sessions.
type ProgressState struct {
	Level      int         `json:"level"`
	BestScores map[int]int `json:"best_scores"`
	Stars      map[int]int `json:"stars"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int `json:"version"`

	Progress ProgressState `json:"progress"`

	// SamplerHistory holds the recently-served prompt keys per theme,
	// newest last.
	SamplerHistory map[string][]string `json:"sampler_history,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	RoundID    string
	PromptText string
	Badge      string
	AnswerText string
	OK         bool
	Reason     string
	Tags       []string
	Suggestion string
}

// RoundEventData captures one completed round.
type RoundEventData struct {
	RoundID      string
	Lang         string
	Theme        string
	Level        int
	WrongCount   int
	Score        int
	FocusTag     string
	UsedFallback bool
	ElapsedSecs  int
}

// DrillEventData captures one submission inside a remediation gate.
type DrillEventData struct {
	RoundID     string
	Kind        string
	Variant     string
	Prompt      string
	Response    string
	Correct     bool
	StreakAfter int
	Target      int
	Cleared     bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the full read model of one recorded LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// RoundSummary is a read-model row for the stats view.
type RoundSummary struct {
	RoundID   string
	Timestamp time.Time
	Theme     string
	Level     int
	Score     int
	Wrong     int
	FocusTag  string
}

// LLMUsage aggregates token consumption per model for the llm view.
type LLMUsage struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswer records one graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendRound records a completed round.
	AppendRound(ctx context.Context, data RoundEventData) error

	// AppendDrill records one drill submission.
	AppendDrill(ctx context.Context, data DrillEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentRounds returns the most recent round summaries, newest first.
	RecentRounds(ctx context.Context, limit int) ([]RoundSummary, error)

	// TagCounts aggregates error-tag occurrences across all answers.
	TagCounts(ctx context.Context) (map[string]int, error)

	// Usage aggregates LLM token consumption per model.
	Usage(ctx context.Context) ([]LLMUsage, error)

	// QueryLLMEvents returns recorded LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM request by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}

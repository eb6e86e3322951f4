package store

import (
	"context"
	"time"
)

// Run is one completed analysis run with its persisted mistakes.
type Run struct {
	ID           string
	CreatedAt    time.Time
	Source       string // PGN file name, or "-" for stdin
	Color        string
	ThresholdCP  int
	Depth        int
	Provider     string
	MistakeCount int
	DurationMs   int64
	Mistakes     []RunMistake
}

// RunMistake is the flattened, persisted form of one analyzed mistake.
type RunMistake struct {
	MoveNumber   int
	Color        string
	MovePlayed   string
	BestMove     string
	EvalBeforeCP int
	EvalAfterCP  int
	EvalDropCP   int
	FENBefore    string
	FENAfter     string
	WhyGood      string
	WhyFailed    string
	Concept      string
	Pattern      string
}

// RunRepo manages analysis run history.
type RunRepo interface {
	// Save stores a run and its mistakes in one transaction.
	Save(ctx context.Context, run *Run) error

	// List returns the most recent runs, newest first, without mistakes.
	List(ctx context.Context, limit int) ([]Run, error)

	// Get returns one run with its mistakes, or nil if not found.
	Get(ctx context.Context, id string) (*Run, error)
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures one LLM API call for the event log.
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

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to the LLM request event log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

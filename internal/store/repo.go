package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/fitcheck/internal/scoring"
)

// ErrAmbiguousID is returned when a report id prefix matches more than one report.
var ErrAmbiguousID = errors.New("ambiguous report id")

// QueryOpts configures queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Report is a finished assessment. Answers are not kept, only the result.
type Report struct {
	ID         string
	Sequence   int64
	Timestamp  time.Time
	Respondent string
	Answered   int
	Result     *scoring.Result
}

// ReportRepo manages finished assessment reports.
type ReportRepo interface {
	// Save stores a new report and assigns its sequence.
	Save(ctx context.Context, r *Report) error

	// Get returns the report whose id equals or starts with id, or nil.
	Get(ctx context.Context, id string) (*Report, error)

	// Latest returns the most recent report, or nil if none exist.
	Latest(ctx context.Context) (*Report, error)

	// List returns reports newest first.
	List(ctx context.Context, opts QueryOpts) ([]Report, error)

	// Prune deletes all but the N most recent reports.
	Prune(ctx context.Context, keep int) (int, error)

	// DeleteAll removes every report and returns how many were deleted.
	DeleteAll(ctx context.Context) (int, error)
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

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose.
type LLMPurposeUsage struct {
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

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

package store

import (
	"context"
	"time"

	"github.com/patenteapp/patente/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ExamAnswerData is one graded answer inside an exam result.
type ExamAnswerData struct {
	QuestionID string
	UserAnswer bool
	Correct    bool
}

// ExamResultData captures a finished exam attempt for appending.
type ExamResultData struct {
	ExamID        string
	UserID        string
	Score         int
	Total         int
	Passed        bool
	TimeSpentSecs int
	Answers       []ExamAnswerData
}

// ExamResultRecord is a stored exam attempt read back from the log.
type ExamResultRecord struct {
	Sequence  int64
	Timestamp time.Time
	ExamResultData
}

// AnswerEventData captures a single graded answer in any practice mode.
type AnswerEventData struct {
	QuestionID    string
	Mode          string
	UserAnswer    bool
	CorrectAnswer bool
	Correct       bool
}

// Mistake set actions.
const (
	MistakeActionRecord = "record"
	MistakeActionClear  = "clear"
)

// MistakeEventData captures a mistake-set change for appending.
type MistakeEventData struct {
	QuestionID string
	Action     string
}

// MistakeEventRecord is a stored mistake-set change.
type MistakeEventRecord struct {
	Sequence   int64
	Timestamp  time.Time
	QuestionID string
	Action     string
}

// LessonActionCompleted is the only lesson action today.
const LessonActionCompleted = "completed"

// LessonEventData captures a lesson completion for appending.
type LessonEventData struct {
	LessonID string
	Action   string
}

// LessonEventRecord is a stored lesson completion.
type LessonEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	LessonID  string
	Action    string
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

// LLMRequestRecord is a stored LLM API call.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// AnswerStats summarizes graded answers for reporting.
type AnswerStats struct {
	Total   int
	Correct int
}

// EventRepo provides append and query access to the domain event log.
type EventRepo interface {
	// AppendExamResult records a finished exam attempt.
	AppendExamResult(ctx context.Context, data ExamResultData) error

	// QueryExamResults returns stored exam attempts in sequence order.
	QueryExamResults(ctx context.Context, opts QueryOpts) ([]ExamResultRecord, error)

	// AppendAnswerEvent records a single graded answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AnswerStatsByMode returns answer totals grouped by mode.
	AnswerStatsByMode(ctx context.Context) (map[string]AnswerStats, error)

	// AppendMistakeEvent records a mistake-set change.
	AppendMistakeEvent(ctx context.Context, data MistakeEventData) error

	// QueryMistakeEvents returns mistake-set changes in sequence order.
	QueryMistakeEvents(ctx context.Context, opts QueryOpts) ([]MistakeEventRecord, error)

	// AppendLessonEvent records a lesson completion.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// QueryLessonEvents returns lesson completions in sequence order.
	QueryLessonEvents(ctx context.Context, opts QueryOpts) ([]LessonEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns stored LLM API calls in sequence order.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)
}

// eventRepo implements EventRepo with the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)

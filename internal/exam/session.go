// Package exam runs a single timed mock-exam attempt: a fixed random sample
// of questions, an answer sheet that can be revised freely, a countdown, and
// deterministic grading at the end.
package exam

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/patenteapp/patente/internal/content"
)

const (
	// QuestionCount is how many questions an attempt samples from the
	// catalog. Smaller catalogs use everything they have.
	QuestionCount = 20

	// Duration is the countdown budget for one attempt.
	Duration = 1800 * time.Second

	// PassThreshold is the minimum correct ratio for a pass. Compared
	// on the raw ratio: 16/20 passes, 15/20 does not.
	PassThreshold = 0.8
)

var (
	ErrEmptyCatalog    = errors.New("exam: question catalog is empty")
	ErrNotInProgress   = errors.New("exam: no attempt in progress")
	ErrUnknownQuestion = errors.New("exam: question not in this attempt")
)

// Phase is the attempt lifecycle state.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Finished
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// AnswerRecord is one graded answer, produced at finish time.
type AnswerRecord struct {
	QuestionID string
	UserAnswer bool
	Correct    bool
}

// Result is the frozen outcome of one finished attempt.
type Result struct {
	ID        string
	UserID    string
	Date      time.Time
	Score     int
	Total     int
	Passed    bool
	Answers   []AnswerRecord
	TimeSpent int // seconds
}

// ResultLog receives the frozen result of a finished attempt.
type ResultLog interface {
	Append(ctx context.Context, r Result) error
}

// MistakeRecorder receives the ids of questions graded incorrect.
type MistakeRecorder interface {
	Record(ctx context.Context, questionID string) error
}

// Config wires a session's collaborators.
type Config struct {
	Catalog  *content.Repository
	Log      ResultLog
	Mistakes MistakeRecorder
	UserID   string

	// Rand drives question sampling. Nil means a time-seeded source;
	// tests inject a fixed seed.
	Rand *rand.Rand

	// Now stamps the result date. Nil means time.Now.
	Now func() time.Time
}

// Session is one exam attempt. A session is reusable: Start resets it for
// a fresh attempt, discarding any in-progress state without grading it.
// Safe for concurrent use; the timer tick and an explicit finish race is
// resolved by the phase guard.
type Session struct {
	mu sync.Mutex

	catalog  *content.Repository
	log      ResultLog
	mistakes MistakeRecorder
	userID   string
	rng      *rand.Rand
	now      func() time.Time

	phase     Phase
	questions []content.Question
	answers   map[string]bool
	current   int
	remaining int // seconds
	result    *Result
}

// NewSession creates an idle session in the NotStarted phase.
func NewSession(cfg Config) *Session {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		catalog:  cfg.Catalog,
		log:      cfg.Log,
		mistakes: cfg.Mistakes,
		userID:   cfg.UserID,
		rng:      rng,
		now:      now,
	}
}

// Start begins a fresh attempt: samples up to QuestionCount questions in a
// uniformly random order, clears the answer sheet, and resets the countdown.
// Starting over an in-progress attempt discards it ungraded.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool := s.catalog.Questions()
	if len(pool) == 0 {
		return ErrEmptyCatalog
	}

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	n := QuestionCount
	if len(pool) < n {
		n = len(pool)
	}

	s.questions = pool[:n]
	s.answers = make(map[string]bool, n)
	s.current = 0
	s.remaining = int(Duration.Seconds())
	s.result = nil
	s.phase = InProgress
	return nil
}

// Answer sets or overwrites the learner's answer for a sampled question.
// Grading is deferred to Finish; no mistake is recorded here.
func (s *Session) Answer(questionID string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != InProgress {
		return ErrNotInProgress
	}
	if !s.sampled(questionID) {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	s.answers[questionID] = value
	return nil
}

func (s *Session) sampled(questionID string) bool {
	for _, q := range s.questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

// Next advances the question pointer, clamped at the last question.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == InProgress && s.current < len(s.questions)-1 {
		s.current++
	}
}

// Prev moves the question pointer back, clamped at the first question.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == InProgress && s.current > 0 {
		s.current--
	}
}

// Jump moves the pointer to an explicit index, clamped to the valid range.
func (s *Session) Jump(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != InProgress {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.questions)-1 {
		index = len(s.questions) - 1
	}
	s.current = index
}

// Tick consumes one second of the countdown. When the countdown reaches
// zero it finishes the attempt automatically, exactly once. Ticks outside
// InProgress are ignored, so a stale timer cannot grade a discarded
// attempt.
func (s *Session) Tick(ctx context.Context) (finished bool, err error) {
	s.mu.Lock()
	if s.phase != InProgress {
		s.mu.Unlock()
		return false, nil
	}
	s.remaining--
	if s.remaining > 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.remaining = 0
	s.mu.Unlock()

	_, err = s.Finish(ctx)
	return true, err
}

// Finish grades the attempt and freezes the result. An unanswered question
// always counts as incorrect. Every question graded incorrect is recorded
// in the mistake set. Finishing an already-finished attempt returns the
// existing result without side effects.
func (s *Session) Finish(ctx context.Context) (Result, error) {
	s.mu.Lock()

	if s.phase == Finished && s.result != nil {
		r := *s.result
		s.mu.Unlock()
		return r, nil
	}
	if s.phase != InProgress {
		s.mu.Unlock()
		return Result{}, ErrNotInProgress
	}

	answers := make([]AnswerRecord, 0, len(s.questions))
	score := 0
	var wrong []string
	for _, q := range s.questions {
		user, answered := s.answers[q.ID]
		correct := answered && user == q.Answer
		if correct {
			score++
		} else {
			wrong = append(wrong, q.ID)
		}
		answers = append(answers, AnswerRecord{
			QuestionID: q.ID,
			UserAnswer: user,
			Correct:    correct,
		})
	}

	total := len(s.questions)
	result := Result{
		ID:        uuid.NewString(),
		UserID:    s.userID,
		Date:      s.now(),
		Score:     score,
		Total:     total,
		Passed:    total > 0 && float64(score)/float64(total) >= PassThreshold,
		Answers:   answers,
		TimeSpent: int(Duration.Seconds()) - s.remaining,
	}

	s.phase = Finished
	s.result = &result
	s.mu.Unlock()

	for _, id := range wrong {
		if s.mistakes != nil {
			if err := s.mistakes.Record(ctx, id); err != nil {
				return result, fmt.Errorf("record mistake: %w", err)
			}
		}
	}
	if s.log != nil {
		if err := s.log.Append(ctx, result); err != nil {
			return result, fmt.Errorf("append result: %w", err)
		}
	}
	return result, nil
}

// Phase reports the current lifecycle state.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Questions returns the attempt's fixed question list.
func (s *Session) Questions() []content.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]content.Question(nil), s.questions...)
}

// Current returns the question under the pointer and its index.
func (s *Session) Current() (content.Question, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.questions) == 0 {
		return content.Question{}, 0
	}
	return s.questions[s.current], s.current
}

// AnswerFor reports the recorded answer for a question, if any.
func (s *Session) AnswerFor(questionID string) (value, answered bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.answers[questionID]
	return v, ok
}

// Answered reports how many questions have a recorded answer.
func (s *Session) Answered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Remaining reports the countdown seconds left.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Result returns the frozen result of a finished attempt.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

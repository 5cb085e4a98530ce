// Package history is the append-only log of finished exam attempts. The log
// is rebuilt from the event store on load and consumed by the readiness
// scorer and the history view.
package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/patenteapp/patente/internal/exam"
	"github.com/patenteapp/patente/internal/store"
)

// Log holds exam results in completion order, oldest first.
// Safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	repo    store.EventRepo
	results []exam.Result
}

// Load rebuilds the log by replaying exam result events in sequence order.
func Load(ctx context.Context, repo store.EventRepo) (*Log, error) {
	records, err := repo.QueryExamResults(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load exam history: %w", err)
	}

	results := make([]exam.Result, 0, len(records))
	for _, r := range records {
		results = append(results, fromRecord(r))
	}
	return &Log{repo: repo, results: results}, nil
}

func fromRecord(r store.ExamResultRecord) exam.Result {
	res := exam.Result{
		ID:        r.ExamID,
		UserID:    r.UserID,
		Date:      r.Timestamp,
		Score:     r.Score,
		Total:     r.Total,
		Passed:    r.Passed,
		TimeSpent: r.TimeSpentSecs,
	}
	for _, a := range r.Answers {
		res.Answers = append(res.Answers, exam.AnswerRecord{
			QuestionID: a.QuestionID,
			UserAnswer: a.UserAnswer,
			Correct:    a.Correct,
		})
	}
	return res
}

// Append adds a finished result to the log and the event store.
func (l *Log) Append(ctx context.Context, r exam.Result) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := store.ExamResultData{
		ExamID:        r.ID,
		UserID:        r.UserID,
		Score:         r.Score,
		Total:         r.Total,
		Passed:        r.Passed,
		TimeSpentSecs: r.TimeSpent,
	}
	for _, a := range r.Answers {
		data.Answers = append(data.Answers, store.ExamAnswerData{
			QuestionID: a.QuestionID,
			UserAnswer: a.UserAnswer,
			Correct:    a.Correct,
		})
	}
	if err := l.repo.AppendExamResult(ctx, data); err != nil {
		return fmt.Errorf("append exam result: %w", err)
	}
	l.results = append(l.results, r)
	return nil
}

// All returns every result, oldest first.
func (l *Log) All() []exam.Result {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]exam.Result(nil), l.results...)
}

// Last returns up to n most recent results, oldest first within the window.
func (l *Log) Last(n int) []exam.Result {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 || len(l.results) == 0 {
		return nil
	}
	if n > len(l.results) {
		n = len(l.results)
	}
	return append([]exam.Result(nil), l.results[len(l.results)-n:]...)
}

// Len reports how many results are logged.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.results)
}

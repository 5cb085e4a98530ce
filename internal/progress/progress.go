// Package progress tracks which lessons the learner has completed.
// Completion is one-way: a lesson once completed stays completed.
package progress

import (
	"context"
	"fmt"
	"sync"

	"github.com/patenteapp/patente/internal/store"
)

// Lessons is the completed-lesson set backed by the event log.
// Safe for concurrent use.
type Lessons struct {
	mu   sync.RWMutex
	repo store.EventRepo
	done map[string]bool
}

// LoadLessons rebuilds the completed set by replaying lesson events.
func LoadLessons(ctx context.Context, repo store.EventRepo) (*Lessons, error) {
	records, err := repo.QueryLessonEvents(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load lesson progress: %w", err)
	}

	done := make(map[string]bool)
	for _, r := range records {
		if r.Action == store.LessonActionCompleted {
			done[r.LessonID] = true
		}
	}
	return &Lessons{repo: repo, done: done}, nil
}

// Complete marks a lesson as done. Completing an already-done lesson is a
// no-op and appends no event.
func (l *Lessons) Complete(ctx context.Context, lessonID string) error {
	if lessonID == "" {
		return fmt.Errorf("empty lesson id")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done[lessonID] {
		return nil
	}

	err := l.repo.AppendLessonEvent(ctx, store.LessonEventData{
		LessonID: lessonID,
		Action:   store.LessonActionCompleted,
	})
	if err != nil {
		return fmt.Errorf("complete lesson: %w", err)
	}
	l.done[lessonID] = true
	return nil
}

// Completed reports whether the lesson is done.
func (l *Lessons) Completed(lessonID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.done[lessonID]
}

// Count reports how many lessons are done.
func (l *Lessons) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.done)
}

// Package mistakes maintains the set of questions the learner has answered
// wrong. The set is a deduplicated collection: answering the same question
// wrong twice records it once. Entries leave the set only through an
// explicit clear, typically after the learner reviews the question.
package mistakes

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/patenteapp/patente/internal/store"
)

// Tracker is the in-memory mistake set backed by the event log.
// Safe for concurrent use.
type Tracker struct {
	mu   sync.RWMutex
	repo store.EventRepo
	set  map[string]bool
}

// Load rebuilds a tracker by replaying mistake events in sequence order.
func Load(ctx context.Context, repo store.EventRepo) (*Tracker, error) {
	records, err := repo.QueryMistakeEvents(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}

	set := make(map[string]bool)
	for _, r := range records {
		switch r.Action {
		case store.MistakeActionRecord:
			set[r.QuestionID] = true
		case store.MistakeActionClear:
			delete(set, r.QuestionID)
		}
	}
	return &Tracker{repo: repo, set: set}, nil
}

// Record adds a question to the mistake set. Recording a question already
// in the set is a no-op and appends no event.
func (t *Tracker) Record(ctx context.Context, questionID string) error {
	if questionID == "" {
		return fmt.Errorf("empty question id")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.set[questionID] {
		return nil
	}

	err := t.repo.AppendMistakeEvent(ctx, store.MistakeEventData{
		QuestionID: questionID,
		Action:     store.MistakeActionRecord,
	})
	if err != nil {
		return fmt.Errorf("record mistake: %w", err)
	}
	t.set[questionID] = true
	return nil
}

// Clear removes a question from the set. Clearing a question not in the
// set is a no-op.
func (t *Tracker) Clear(ctx context.Context, questionID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.set[questionID] {
		return nil
	}

	err := t.repo.AppendMistakeEvent(ctx, store.MistakeEventData{
		QuestionID: questionID,
		Action:     store.MistakeActionClear,
	})
	if err != nil {
		return fmt.Errorf("clear mistake: %w", err)
	}
	delete(t.set, questionID)
	return nil
}

// Contains reports whether the question is in the mistake set.
func (t *Tracker) Contains(questionID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.set[questionID]
}

// Count reports the size of the mistake set.
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.set)
}

// IDs returns the question ids in the set, sorted for stable display.
func (t *Tracker) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]string, 0, len(t.set))
	for id := range t.set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

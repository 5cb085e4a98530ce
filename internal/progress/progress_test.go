package progress

import (
	"context"
	"testing"

	"github.com/patenteapp/patente/internal/store"
)

func openTestRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open(store.MemoryDSN)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestCompleteAndCount(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	l, err := LoadLessons(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := l.Complete(ctx, "1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := l.Complete(ctx, "2"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !l.Completed("1") {
		t.Error("lesson 1 not completed")
	}
	if l.Completed("3") {
		t.Error("lesson 3 unexpectedly completed")
	}
	if l.Count() != 2 {
		t.Errorf("count = %d, want 2", l.Count())
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	l, err := LoadLessons(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := l.Complete(ctx, "1"); err != nil {
			t.Fatalf("complete %d: %v", i, err)
		}
	}
	if l.Count() != 1 {
		t.Errorf("count = %d, want 1", l.Count())
	}

	records, err := repo.QueryLessonEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("events = %d, want 1", len(records))
	}
}

func TestReloadReplaysEvents(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	l, err := LoadLessons(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := l.Complete(ctx, "1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	reloaded, err := LoadLessons(ctx, repo)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.Completed("1") {
		t.Error("reloaded progress missing lesson 1")
	}
	if reloaded.Count() != 1 {
		t.Errorf("reloaded count = %d, want 1", reloaded.Count())
	}
}

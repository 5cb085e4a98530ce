package mistakes

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

func loadTracker(t *testing.T, repo store.EventRepo) *Tracker {
	t.Helper()
	tr, err := Load(context.Background(), repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return tr
}

func TestRecordAndContains(t *testing.T) {
	repo := openTestRepo(t)
	tr := loadTracker(t, repo)
	ctx := context.Background()

	if err := tr.Record(ctx, "q1"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !tr.Contains("q1") {
		t.Error("expected q1 in set")
	}
	if tr.Contains("q2") {
		t.Error("did not expect q2 in set")
	}
	if tr.Count() != 1 {
		t.Errorf("count = %d, want 1", tr.Count())
	}
}

func TestRecordIsIdempotent(t *testing.T) {
	repo := openTestRepo(t)
	tr := loadTracker(t, repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := tr.Record(ctx, "q1"); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	if tr.Count() != 1 {
		t.Errorf("count = %d, want 1", tr.Count())
	}

	// Only one event should have been appended.
	records, err := repo.QueryMistakeEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("events = %d, want 1", len(records))
	}
}

func TestRecordRejectsEmptyID(t *testing.T) {
	tr := loadTracker(t, openTestRepo(t))
	if err := tr.Record(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestClear(t *testing.T) {
	repo := openTestRepo(t)
	tr := loadTracker(t, repo)
	ctx := context.Background()

	if err := tr.Record(ctx, "q1"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := tr.Clear(ctx, "q1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if tr.Contains("q1") {
		t.Error("q1 still in set after clear")
	}

	// Clearing a question not in the set appends nothing.
	if err := tr.Clear(ctx, "ghost"); err != nil {
		t.Fatalf("clear ghost: %v", err)
	}
	records, err := repo.QueryMistakeEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("events = %d, want 2 (record + clear)", len(records))
	}
}

func TestReloadReplaysEvents(t *testing.T) {
	repo := openTestRepo(t)
	tr := loadTracker(t, repo)
	ctx := context.Background()

	for _, id := range []string{"q1", "q2", "q3"} {
		if err := tr.Record(ctx, id); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}
	if err := tr.Clear(ctx, "q2"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	// A fresh tracker over the same log sees the same set.
	reloaded := loadTracker(t, repo)
	if reloaded.Count() != 2 {
		t.Errorf("reloaded count = %d, want 2", reloaded.Count())
	}
	if !reloaded.Contains("q1") || !reloaded.Contains("q3") {
		t.Error("reloaded set missing q1 or q3")
	}
	if reloaded.Contains("q2") {
		t.Error("reloaded set contains cleared q2")
	}
}

func TestIDsSorted(t *testing.T) {
	tr := loadTracker(t, openTestRepo(t))
	ctx := context.Background()

	for _, id := range []string{"q3", "q1", "q2"} {
		if err := tr.Record(ctx, id); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}

	ids := tr.IDs()
	want := []string{"q1", "q2", "q3"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

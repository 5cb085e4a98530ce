package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/patenteapp/patente/internal/exam"
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

func sampleResult(i int) exam.Result {
	return exam.Result{
		ID:        fmt.Sprintf("exam-%d", i),
		UserID:    "tester",
		Date:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Score:     10 + i,
		Total:     20,
		Passed:    10+i >= 16,
		TimeSpent: 900,
		Answers: []exam.AnswerRecord{
			{QuestionID: "q1", UserAnswer: true, Correct: true},
		},
	}
}

func TestAppendAndAll(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	log, err := Load(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if log.Len() != 0 {
		t.Fatalf("fresh log len = %d, want 0", log.Len())
	}

	for i := 0; i < 3; i++ {
		if err := log.Append(ctx, sampleResult(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all := log.All()
	if len(all) != 3 {
		t.Fatalf("all = %d, want 3", len(all))
	}
	if all[0].ID != "exam-0" || all[2].ID != "exam-2" {
		t.Errorf("order wrong: first=%s last=%s", all[0].ID, all[2].ID)
	}
}

func TestLast(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	log, err := Load(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := log.Append(ctx, sampleResult(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	last := log.Last(3)
	if len(last) != 3 {
		t.Fatalf("last(3) = %d, want 3", len(last))
	}
	if last[0].ID != "exam-2" || last[2].ID != "exam-4" {
		t.Errorf("window wrong: first=%s last=%s", last[0].ID, last[2].ID)
	}

	if got := log.Last(100); len(got) != 5 {
		t.Errorf("last(100) = %d, want 5", len(got))
	}
	if got := log.Last(0); got != nil {
		t.Errorf("last(0) = %v, want nil", got)
	}
}

func TestReloadReplaysEvents(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	log, err := Load(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := sampleResult(6)
	if err := log.Append(ctx, want); err != nil {
		t.Fatalf("append: %v", err)
	}

	reloaded, err := Load(ctx, repo)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded len = %d, want 1", reloaded.Len())
	}
	got := reloaded.All()[0]
	if got.ID != want.ID || got.Score != want.Score || got.Passed != want.Passed {
		t.Errorf("reloaded result = %+v, want %+v", got, want)
	}
	if len(got.Answers) != 1 || got.Answers[0].QuestionID != "q1" {
		t.Errorf("reloaded answers = %+v", got.Answers)
	}
}

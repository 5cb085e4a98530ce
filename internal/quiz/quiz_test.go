package quiz

import (
	"context"
	"testing"

	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/mistakes"
	"github.com/patenteapp/patente/internal/store"
)

type fakeMistakes struct {
	recorded []string
}

func (f *fakeMistakes) Record(_ context.Context, questionID string) error {
	f.recorded = append(f.recorded, questionID)
	return nil
}

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

var testQuestion = content.Question{
	ID:          "q1",
	Answer:      true,
	Explanation: "spiegazione",
}

func TestGradeCorrect(t *testing.T) {
	mist := &fakeMistakes{}
	g := NewGrader(mist, nil)

	out, err := g.Grade(context.Background(), testQuestion, true, ModeTrueFalse)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !out.Correct {
		t.Error("expected correct")
	}
	if out.Explanation != "spiegazione" {
		t.Errorf("explanation = %q", out.Explanation)
	}
	if len(mist.recorded) != 0 {
		t.Errorf("correct answer recorded %d mistakes", len(mist.recorded))
	}
}

func TestGradeWrongRecordsMistake(t *testing.T) {
	mist := &fakeMistakes{}
	g := NewGrader(mist, nil)

	out, err := g.Grade(context.Background(), testQuestion, false, ModeTrueFalse)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if out.Correct {
		t.Error("expected incorrect")
	}
	if !out.CorrectAnswer {
		t.Error("correct answer should be true")
	}
	if len(mist.recorded) != 1 || mist.recorded[0] != "q1" {
		t.Errorf("recorded = %v, want [q1]", mist.recorded)
	}
}

func TestGradeAppendsAnswerEvent(t *testing.T) {
	repo := openTestRepo(t)
	g := NewGrader(&fakeMistakes{}, repo)
	ctx := context.Background()

	if _, err := g.Grade(ctx, testQuestion, false, ModeUnderstand); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if _, err := g.Grade(ctx, testQuestion, true, ModeUnderstand); err != nil {
		t.Fatalf("grade: %v", err)
	}

	stats, err := repo.AnswerStatsByMode(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	got := stats[string(ModeUnderstand)]
	if got.Total != 2 || got.Correct != 1 {
		t.Errorf("stats = %+v, want total 2, correct 1", got)
	}
}

func TestCorrectAnswerDoesNotClearMistake(t *testing.T) {
	// A real tracker: wrong then right leaves the mistake outstanding.
	repo := openTestRepo(t)
	tr, err := mistakes.Load(context.Background(), repo)
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	g := NewGrader(tr, repo)
	ctx := context.Background()

	if _, err := g.Grade(ctx, testQuestion, false, ModeTrueFalse); err != nil {
		t.Fatalf("grade wrong: %v", err)
	}
	if _, err := g.Grade(ctx, testQuestion, true, ModeTrueFalse); err != nil {
		t.Fatalf("grade right: %v", err)
	}
	if !tr.Contains("q1") {
		t.Error("mistake auto-cleared by a later correct answer")
	}
}

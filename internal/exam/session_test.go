package exam

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/patenteapp/patente/internal/content"
)

type fakeLog struct {
	results []Result
}

func (f *fakeLog) Append(_ context.Context, r Result) error {
	f.results = append(f.results, r)
	return nil
}

type fakeMistakes struct {
	recorded map[string]int
}

func newFakeMistakes() *fakeMistakes {
	return &fakeMistakes{recorded: make(map[string]int)}
}

func (f *fakeMistakes) Record(_ context.Context, questionID string) error {
	f.recorded[questionID]++
	return nil
}

func newTestSession(t *testing.T) (*Session, *fakeLog, *fakeMistakes) {
	t.Helper()
	log := &fakeLog{}
	mist := newFakeMistakes()
	s := NewSession(Config{
		Catalog:  content.NewDefaultRepository(),
		Log:      log,
		Mistakes: mist,
		UserID:   "tester",
		Rand:     rand.New(rand.NewSource(1)),
		Now:      func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) },
	})
	return s, log, mist
}

func TestStartSamplesTwenty(t *testing.T) {
	s, _, _ := newTestSession(t)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Phase() != InProgress {
		t.Errorf("phase = %v, want InProgress", s.Phase())
	}
	qs := s.Questions()
	if len(qs) != QuestionCount {
		t.Fatalf("questions = %d, want %d", len(qs), QuestionCount)
	}
	seen := make(map[string]bool)
	for _, q := range qs {
		if seen[q.ID] {
			t.Errorf("duplicate question %s in sample", q.ID)
		}
		seen[q.ID] = true
	}
	if s.Remaining() != int(Duration.Seconds()) {
		t.Errorf("remaining = %d, want %d", s.Remaining(), int(Duration.Seconds()))
	}
}

func TestStartSmallCatalogTakesAll(t *testing.T) {
	repo := content.NewRepository(content.Catalog{
		Questions: []content.Question{
			{ID: "a", Answer: true},
			{ID: "b", Answer: false},
			{ID: "c", Answer: true},
		},
	})
	s := NewSession(Config{Catalog: repo, Rand: rand.New(rand.NewSource(1))})
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := len(s.Questions()); got != 3 {
		t.Errorf("questions = %d, want 3", got)
	}
}

func TestStartEmptyCatalog(t *testing.T) {
	s := NewSession(Config{Catalog: content.NewRepository(content.Catalog{})})
	if err := s.Start(); err != ErrEmptyCatalog {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
	if s.Phase() != NotStarted {
		t.Errorf("phase = %v, want NotStarted", s.Phase())
	}
}

func TestSampleFixedForAttempt(t *testing.T) {
	s, _, _ := newTestSession(t)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	first := s.Questions()
	s.Next()
	s.Prev()
	s.Jump(10)
	second := s.Questions()
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("sample changed at %d: %s != %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestAnswerOverwrite(t *testing.T) {
	s, _, _ := newTestSession(t)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	q, _ := s.Current()

	if err := s.Answer(q.ID, true); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := s.Answer(q.ID, false); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok := s.AnswerFor(q.ID)
	if !ok || v {
		t.Errorf("answer = %v/%v, want false/true", v, ok)
	}
	if s.Answered() != 1 {
		t.Errorf("answered = %d, want 1", s.Answered())
	}
}

func TestAnswerRejections(t *testing.T) {
	s, _, _ := newTestSession(t)

	if err := s.Answer("1", true); err != ErrNotInProgress {
		t.Errorf("before start: err = %v, want ErrNotInProgress", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Answer("no-such-question", true); err == nil {
		t.Error("expected error for unsampled question")
	}

	if _, err := s.Finish(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}
	q := s.Questions()[0]
	if err := s.Answer(q.ID, true); err != ErrNotInProgress {
		t.Errorf("after finish: err = %v, want ErrNotInProgress", err)
	}
}

func TestNavigationClamped(t *testing.T) {
	s, _, _ := newTestSession(t)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	s.Prev()
	if _, idx := s.Current(); idx != 0 {
		t.Errorf("prev at start: index = %d, want 0", idx)
	}

	s.Jump(999)
	if _, idx := s.Current(); idx != QuestionCount-1 {
		t.Errorf("jump past end: index = %d, want %d", idx, QuestionCount-1)
	}

	s.Next()
	if _, idx := s.Current(); idx != QuestionCount-1 {
		t.Errorf("next at end: index = %d, want %d", idx, QuestionCount-1)
	}

	s.Jump(-5)
	if _, idx := s.Current(); idx != 0 {
		t.Errorf("jump below start: index = %d, want 0", idx)
	}
}

func TestFinishGrading(t *testing.T) {
	s, log, mist := newTestSession(t)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	ctx := context.Background()

	// Answer 16 correctly, 2 incorrectly, leave 2 unanswered.
	qs := s.Questions()
	for i, q := range qs {
		switch {
		case i < 16:
			if err := s.Answer(q.ID, q.Answer); err != nil {
				t.Fatalf("answer %d: %v", i, err)
			}
		case i < 18:
			if err := s.Answer(q.ID, !q.Answer); err != nil {
				t.Fatalf("answer %d: %v", i, err)
			}
		}
	}

	// Burn 500 seconds.
	for i := 0; i < 500; i++ {
		if _, err := s.Tick(ctx); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	res, err := s.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if res.Score != 16 || res.Total != 20 {
		t.Errorf("score = %d/%d, want 16/20", res.Score, res.Total)
	}
	if !res.Passed {
		t.Error("16/20 should pass")
	}
	if res.TimeSpent != 500 {
		t.Errorf("time spent = %d, want 500", res.TimeSpent)
	}
	if res.UserID != "tester" {
		t.Errorf("user id = %q, want 'tester'", res.UserID)
	}
	if res.ID == "" {
		t.Error("expected non-empty result id")
	}
	if len(res.Answers) != 20 {
		t.Errorf("answer records = %d, want 20", len(res.Answers))
	}

	// The 4 wrong (2 answered wrong + 2 unanswered) land in the mistake set.
	if len(mist.recorded) != 4 {
		t.Errorf("mistakes recorded = %d, want 4", len(mist.recorded))
	}
	for i := 16; i < 20; i++ {
		if mist.recorded[qs[i].ID] == 0 {
			t.Errorf("question %s not recorded as mistake", qs[i].ID)
		}
	}
	for i := 0; i < 16; i++ {
		if mist.recorded[qs[i].ID] != 0 {
			t.Errorf("correct question %s recorded as mistake", qs[i].ID)
		}
	}

	if len(log.results) != 1 {
		t.Fatalf("logged results = %d, want 1", len(log.results))
	}
}

func TestUnansweredAlwaysIncorrect(t *testing.T) {
	// A question whose correct answer is false must still grade incorrect
	// when left unanswered.
	repo := content.NewRepository(content.Catalog{
		Questions: []content.Question{{ID: "a", Answer: false}},
	})
	s := NewSession(Config{Catalog: repo, Rand: rand.New(rand.NewSource(1))})
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	res, err := s.Finish(context.Background())
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}
	if res.Answers[0].Correct {
		t.Error("unanswered question graded correct")
	}
}

func TestPassThresholdBoundary(t *testing.T) {
	tests := []struct {
		correct int
		passed  bool
	}{
		{16, true},
		{15, false},
	}

	for _, tt := range tests {
		s, _, _ := newTestSession(t)
		if err := s.Start(); err != nil {
			t.Fatalf("start: %v", err)
		}
		qs := s.Questions()
		for i, q := range qs {
			ans := q.Answer
			if i >= tt.correct {
				ans = !q.Answer
			}
			if err := s.Answer(q.ID, ans); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
		res, err := s.Finish(context.Background())
		if err != nil {
			t.Fatalf("finish: %v", err)
		}
		if res.Passed != tt.passed {
			t.Errorf("%d/20: passed = %v, want %v", tt.correct, res.Passed, tt.passed)
		}
	}
}

func TestFinishIdempotent(t *testing.T) {
	s, log, mist := newTestSession(t)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	ctx := context.Background()

	first, err := s.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	second, err := s.Finish(ctx)
	if err != nil {
		t.Fatalf("second finish: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("second finish produced a new result: %s != %s", first.ID, second.ID)
	}
	if len(log.results) != 1 {
		t.Errorf("logged results = %d, want 1", len(log.results))
	}
	wantMistakes := len(mist.recorded)
	if _, err := s.Finish(ctx); err != nil {
		t.Fatalf("third finish: %v", err)
	}
	if len(mist.recorded) != wantMistakes {
		t.Error("repeated finish recorded additional mistakes")
	}
}

func TestTimerExpiryFinishesOnce(t *testing.T) {
	s, log, _ := newTestSession(t)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	ctx := context.Background()

	var finishes int
	for i := 0; i < int(Duration.Seconds())+10; i++ {
		done, err := s.Tick(ctx)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if done {
			finishes++
		}
	}
	if finishes != 1 {
		t.Errorf("timer finishes = %d, want 1", finishes)
	}
	if s.Phase() != Finished {
		t.Errorf("phase = %v, want Finished", s.Phase())
	}
	if len(log.results) != 1 {
		t.Errorf("logged results = %d, want 1", len(log.results))
	}

	res, ok := s.Result()
	if !ok {
		t.Fatal("expected frozen result")
	}
	if res.TimeSpent != int(Duration.Seconds()) {
		t.Errorf("time spent = %d, want %d", res.TimeSpent, int(Duration.Seconds()))
	}
}

func TestTickIgnoredOutsideInProgress(t *testing.T) {
	s, _, _ := newTestSession(t)

	// Before start.
	if done, err := s.Tick(context.Background()); err != nil || done {
		t.Errorf("tick before start: done=%v err=%v, want false/nil", done, err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Finish(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}
	before := s.Remaining()
	if done, err := s.Tick(context.Background()); err != nil || done {
		t.Errorf("tick after finish: done=%v err=%v, want false/nil", done, err)
	}
	if s.Remaining() != before {
		t.Error("tick after finish decremented the countdown")
	}
}

func TestRestartDiscardsAttempt(t *testing.T) {
	s, log, _ := newTestSession(t)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	q := s.Questions()[0]
	if err := s.Answer(q.ID, true); err != nil {
		t.Fatalf("answer: %v", err)
	}

	// Restart mid-attempt: no result is produced for the abandoned one.
	if err := s.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if len(log.results) != 0 {
		t.Errorf("logged results = %d, want 0", len(log.results))
	}
	if s.Answered() != 0 {
		t.Errorf("answered after restart = %d, want 0", s.Answered())
	}
	if s.Remaining() != int(Duration.Seconds()) {
		t.Errorf("remaining after restart = %d, want %d", s.Remaining(), int(Duration.Seconds()))
	}
}

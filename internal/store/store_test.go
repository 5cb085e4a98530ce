package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func openTestRepo(t *testing.T) EventRepo {
	t.Helper()
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestExamResultRoundtrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	data := ExamResultData{
		ExamID:        "exam-1",
		UserID:        "guest",
		Score:         17,
		Total:         20,
		Passed:        true,
		TimeSpentSecs: 1243,
		Answers: []ExamAnswerData{
			{QuestionID: "q1", UserAnswer: true, Correct: true},
			{QuestionID: "q2", UserAnswer: false, Correct: false},
		},
	}
	if err := repo.AppendExamResult(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryExamResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.ExamID != "exam-1" {
		t.Errorf("exam id = %q, want 'exam-1'", rec.ExamID)
	}
	if rec.Score != 17 || rec.Total != 20 || !rec.Passed {
		t.Errorf("score/total/passed = %d/%d/%v, want 17/20/true", rec.Score, rec.Total, rec.Passed)
	}
	if rec.TimeSpentSecs != 1243 {
		t.Errorf("time spent = %d, want 1243", rec.TimeSpentSecs)
	}
	if len(rec.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(rec.Answers))
	}
	if rec.Answers[1].QuestionID != "q2" || rec.Answers[1].Correct {
		t.Errorf("answers[1] = %+v, want q2/incorrect", rec.Answers[1])
	}
	if rec.Sequence == 0 {
		t.Error("expected non-zero sequence")
	}
	if rec.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestExamResultsOrderedBySequence(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendExamResult(ctx, ExamResultData{
			ExamID: []string{"a", "b", "c"}[i],
			Score:  i,
			Total:  20,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryExamResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Sequence <= records[i-1].Sequence {
			t.Errorf("records not ordered: seq[%d]=%d <= seq[%d]=%d",
				i, records[i].Sequence, i-1, records[i-1].Sequence)
		}
	}
	if records[2].ExamID != "c" {
		t.Errorf("last exam id = %q, want 'c'", records[2].ExamID)
	}
}

func TestExamResultsLimit(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendExamResult(ctx, ExamResultData{ExamID: "e", Total: 20}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryExamResults(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records = %d, want 2", len(records))
	}
}

func TestMistakeEventsReplayOrder(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	events := []MistakeEventData{
		{QuestionID: "q1", Action: MistakeActionRecord},
		{QuestionID: "q2", Action: MistakeActionRecord},
		{QuestionID: "q1", Action: MistakeActionClear},
	}
	for i, e := range events {
		if err := repo.AppendMistakeEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryMistakeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	// Replay: record q1, record q2, clear q1 leaves only q2.
	set := make(map[string]bool)
	for _, r := range records {
		switch r.Action {
		case MistakeActionRecord:
			set[r.QuestionID] = true
		case MistakeActionClear:
			delete(set, r.QuestionID)
		}
	}
	if len(set) != 1 || !set["q2"] {
		t.Errorf("replayed set = %v, want {q2}", set)
	}
}

func TestLessonEventsRoundtrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for _, id := range []string{"l1", "l2"} {
		err := repo.AppendLessonEvent(ctx, LessonEventData{LessonID: id, Action: LessonActionCompleted})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	records, err := repo.QueryLessonEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].LessonID != "l1" || records[1].LessonID != "l2" {
		t.Errorf("lesson ids = %q, %q, want l1, l2", records[0].LessonID, records[1].LessonID)
	}
}

func TestAnswerStatsByMode(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	answers := []AnswerEventData{
		{QuestionID: "q1", Mode: "truefalse", UserAnswer: true, CorrectAnswer: true, Correct: true},
		{QuestionID: "q2", Mode: "truefalse", UserAnswer: true, CorrectAnswer: false, Correct: false},
		{QuestionID: "q3", Mode: "exam", UserAnswer: false, CorrectAnswer: false, Correct: true},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.AnswerStatsByMode(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if got := stats["truefalse"]; got.Total != 2 || got.Correct != 1 {
		t.Errorf("truefalse stats = %+v, want total 2, correct 1", got)
	}
	if got := stats["exam"]; got.Total != 1 || got.Correct != 1 {
		t.Errorf("exam stats = %+v, want total 1, correct 1", got)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	if err := repo.AppendMistakeEvent(ctx, MistakeEventData{QuestionID: "q1", Action: MistakeActionRecord}); err != nil {
		t.Fatalf("append mistake: %v", err)
	}
	if err := repo.AppendExamResult(ctx, ExamResultData{ExamID: "e1", Total: 20}); err != nil {
		t.Fatalf("append exam: %v", err)
	}
	if err := repo.AppendMistakeEvent(ctx, MistakeEventData{QuestionID: "q2", Action: MistakeActionRecord}); err != nil {
		t.Fatalf("append mistake: %v", err)
	}

	mistakes, err := repo.QueryMistakeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query mistakes: %v", err)
	}
	exams, err := repo.QueryExamResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query exams: %v", err)
	}

	// Interleaved appends must land in a single global order.
	if !(mistakes[0].Sequence < exams[0].Sequence && exams[0].Sequence < mistakes[1].Sequence) {
		t.Errorf("sequences not globally ordered: mistake=%d exam=%d mistake=%d",
			mistakes[0].Sequence, exams[0].Sequence, mistakes[1].Sequence)
	}
}

func TestResolveDSNDefault(t *testing.T) {
	t.Setenv("PATENTE_DB", "")
	dsn, err := ResolveDSN("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dsn != MemoryDSN {
		t.Errorf("dsn = %q, want %q", dsn, MemoryDSN)
	}
}

func TestResolveDSNExplicitWinsOverEnv(t *testing.T) {
	t.Setenv("PATENTE_DB", t.TempDir()+"/env.db")
	want := t.TempDir() + "/explicit.db"
	dsn, err := ResolveDSN(want)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dsn != want {
		t.Errorf("dsn = %q, want %q", dsn, want)
	}
}

package content

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultCatalogValid(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
}

func TestDefaultCatalogCounts(t *testing.T) {
	c := DefaultCatalog()
	if got := len(c.Lessons); got != 8 {
		t.Errorf("lessons = %d, want 8", got)
	}
	if got := len(c.Questions); got != 20 {
		t.Errorf("questions = %d, want 20", got)
	}
	if got := len(c.Signs); got != 10 {
		t.Errorf("signs = %d, want 10", got)
	}
	if got := len(c.Glossary); got != 8 {
		t.Errorf("glossary = %d, want 8", got)
	}
	if got := len(c.Sections); got != 3 {
		t.Errorf("sections = %d, want 3", got)
	}
}

func TestQuestionByID(t *testing.T) {
	repo := NewDefaultRepository()

	q, ok := repo.QuestionByID("3")
	if !ok {
		t.Fatal("question 3 not found")
	}
	if q.Answer {
		t.Error("question 3 answer = true, want false")
	}
	if q.LessonID != "5" {
		t.Errorf("question 3 lesson = %q, want '5'", q.LessonID)
	}

	if _, ok := repo.QuestionByID("nope"); ok {
		t.Error("expected not found for unknown id")
	}
}

func TestQuestionsByIDsSkipsUnknown(t *testing.T) {
	repo := NewDefaultRepository()
	qs := repo.QuestionsByIDs([]string{"1", "ghost", "2"})
	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	if qs[0].ID != "1" || qs[1].ID != "2" {
		t.Errorf("ids = %q, %q, want 1, 2", qs[0].ID, qs[1].ID)
	}
}

func TestQuestionsForLesson(t *testing.T) {
	repo := NewDefaultRepository()
	qs := repo.QuestionsForLesson("2")
	if len(qs) != 3 {
		t.Fatalf("lesson 2 questions = %d, want 3", len(qs))
	}
	for _, q := range qs {
		if q.LessonID != "2" {
			t.Errorf("question %s lesson = %q, want '2'", q.ID, q.LessonID)
		}
	}
}

func TestLessonsOrdered(t *testing.T) {
	repo := NewDefaultRepository()
	lessons := repo.Lessons()
	for i := 1; i < len(lessons); i++ {
		if lessons[i].Order < lessons[i-1].Order {
			t.Errorf("lessons out of order at %d: %d < %d", i, lessons[i].Order, lessons[i-1].Order)
		}
	}
}

func TestExportImportRoundtrip(t *testing.T) {
	orig := DefaultCatalog()

	var buf bytes.Buffer
	if err := Export(&buf, orig); err != nil {
		t.Fatalf("export: %v", err)
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got.Questions) != len(orig.Questions) {
		t.Errorf("questions = %d, want %d", len(got.Questions), len(orig.Questions))
	}
	if got.Questions[0].TextIt != orig.Questions[0].TextIt {
		t.Errorf("question text = %q, want %q", got.Questions[0].TextIt, orig.Questions[0].TextIt)
	}
	if got.Lessons[0].Title != orig.Lessons[0].Title {
		t.Errorf("lesson title mismatch")
	}
}

func TestImportRejectsUnknownFields(t *testing.T) {
	_, err := Import(strings.NewReader(`{"bogus": true}`))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestImportRejectsDanglingLessonRef(t *testing.T) {
	input := `{
		"lessons": [{"id": "l1", "title": "t", "titleIt": "t", "category": "c", "sectionId": "", "content": "", "example": "", "order": 1}],
		"questions": [{"id": "q1", "textIt": "x", "textAr": "y", "answer": true, "explanation": "", "category": "c", "difficulty": "easy", "lessonId": "ghost"}]
	}`
	_, err := Import(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for dangling lesson reference")
	}
}

func TestValidateDuplicateQuestionID(t *testing.T) {
	c := Catalog{Questions: []Question{{ID: "q1"}, {ID: "q1"}}}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for duplicate question id")
	}
}

func TestReplaceSwapsCatalog(t *testing.T) {
	repo := NewDefaultRepository()
	repo.Replace(Catalog{Questions: []Question{{ID: "only"}}})

	if got := len(repo.Questions()); got != 1 {
		t.Fatalf("questions after replace = %d, want 1", got)
	}
	if _, ok := repo.QuestionByID("1"); ok {
		t.Error("old question still resolvable after replace")
	}
	if repo.LessonCount() != 0 {
		t.Errorf("lesson count = %d, want 0", repo.LessonCount())
	}
}

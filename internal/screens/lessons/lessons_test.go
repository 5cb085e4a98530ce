package lessons

import (
	"context"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/patenteapp/patente/internal/coach"
	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/progress"
	"github.com/patenteapp/patente/internal/quiz"
	"github.com/patenteapp/patente/internal/router"
	"github.com/patenteapp/patente/internal/screens/practice"
	"github.com/patenteapp/patente/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) (*LessonsScreen, *progress.Lessons) {
	t.Helper()

	catalog := content.NewRepository(content.Catalog{
		Sections: []content.Section{
			{ID: "sec1", Name: "أساسيات", Order: 1},
			{ID: "sec2", Name: "السرعة", Order: 2},
		},
		Lessons: []content.Lesson{
			{ID: "l1", Title: "درس أول", TitleIt: "Lezione uno", SectionID: "sec1", Content: "..."},
			{ID: "l2", Title: "درس ثاني", TitleIt: "Lezione due", SectionID: "sec2", Content: "..."},
			{ID: "l3", Title: "درس حر", TitleIt: "Lezione tre", Content: "..."},
		},
		Questions: []content.Question{
			{ID: "q1", TextIt: "Domanda", TextAr: "سؤال", Answer: true, LessonID: "l1"},
		},
	})

	s, err := store.Open(store.MemoryDSN)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	prog, err := progress.LoadLessons(context.Background(), repo)
	if err != nil {
		t.Fatalf("load lessons: %v", err)
	}

	grader := quiz.NewGrader(nil, nil)
	svc := coach.NewService(nil, coach.DefaultConfig())
	return New(catalog, prog, grader, svc, rand.New(rand.NewSource(3))), prog
}

func TestInitialSelectionSkipsHeader(t *testing.T) {
	s, _ := testScreen(t)

	lesson, ok := s.current()
	if !ok {
		t.Fatal("expected a lesson selected initially")
	}
	if lesson.ID != "l1" {
		t.Errorf("selected = %s, want l1", lesson.ID)
	}
}

func TestNavigationSkipsHeaders(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(keyPress('j'))
	if lesson, _ := s.current(); lesson.ID != "l2" {
		t.Errorf("selected after down = %s, want l2", lesson.ID)
	}

	s.Update(keyPress('j'))
	if lesson, _ := s.current(); lesson.ID != "l3" {
		t.Errorf("selected after down = %s, want sectionless l3", lesson.ID)
	}

	// Down at the bottom stays put.
	s.Update(keyPress('j'))
	if lesson, _ := s.current(); lesson.ID != "l3" {
		t.Errorf("selected after down at bottom = %s, want l3", lesson.ID)
	}

	s.Update(keyPress('k'))
	s.Update(keyPress('k'))
	if lesson, _ := s.current(); lesson.ID != "l1" {
		t.Errorf("selected after up = %s, want l1", lesson.ID)
	}
}

func TestCompleteLesson(t *testing.T) {
	s, prog := testScreen(t)

	s.Update(specialKey(tea.KeyEnter))
	if !s.reading {
		t.Fatal("expected reading view after enter")
	}

	s.Update(keyPress('c'))
	if !prog.Completed("l1") {
		t.Error("expected l1 completed after c")
	}
	if prog.Count() != 1 {
		t.Errorf("completed count = %d, want 1", prog.Count())
	}
}

func TestLessonQuizPush(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(keyPress('t'))
	if cmd == nil {
		t.Fatal("expected push command for lesson with questions")
	}
	pm, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := pm.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("pushed screen = %T, want *practice.PracticeScreen", pm.Screen)
	}
}

func TestLessonQuizWithoutQuestions(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(keyPress('t'))
	if cmd != nil {
		t.Error("expected no push for lesson without questions")
	}
	if s.errMsg == "" {
		t.Error("expected error message for lesson without questions")
	}
}

func TestBackToList(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('b'))
	if s.reading {
		t.Error("expected list view after b")
	}
}

package home

import (
	"context"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/patenteapp/patente/internal/coach"
	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/exam"
	"github.com/patenteapp/patente/internal/history"
	"github.com/patenteapp/patente/internal/learner"
	"github.com/patenteapp/patente/internal/mistakes"
	"github.com/patenteapp/patente/internal/progress"
	"github.com/patenteapp/patente/internal/quiz"
	"github.com/patenteapp/patente/internal/router"
	examscreen "github.com/patenteapp/patente/internal/screens/exam"
	"github.com/patenteapp/patente/internal/screens/practice"
	"github.com/patenteapp/patente/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps(t *testing.T) Deps {
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

	ctx := context.Background()
	catalog := content.NewDefaultRepository()

	tracker, err := mistakes.Load(ctx, repo)
	if err != nil {
		t.Fatalf("load mistakes: %v", err)
	}
	lessons, err := progress.LoadLessons(ctx, repo)
	if err != nil {
		t.Fatalf("load lessons: %v", err)
	}
	histLog, err := history.Load(ctx, repo)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}

	rng := rand.New(rand.NewSource(11))
	session := exam.NewSession(exam.Config{
		Catalog:  catalog,
		Log:      histLog,
		Mistakes: tracker,
		UserID:   "tester",
		Rand:     rng,
	})

	return Deps{
		Catalog:  catalog,
		Repo:     repo,
		Session:  session,
		Grader:   quiz.NewGrader(tracker, repo),
		Mistakes: tracker,
		Lessons:  lessons,
		History:  histLog,
		Coach:    coach.NewService(nil, coach.DefaultConfig()),
		Profile:  learner.Profile{Name: "Test"},
		Rand:     rng,
	}
}

func TestReadinessFreshLearner(t *testing.T) {
	deps := testDeps(t)

	// A clean slate earns only the no-mistakes component.
	if got := Readiness(deps); got != 20 {
		t.Errorf("readiness = %d, want 20", got)
	}
}

func TestNewRollsDailyPlan(t *testing.T) {
	deps := testDeps(t)
	h := New(deps)

	if h.daily.QuestionsToday <= 0 {
		t.Errorf("questions today = %d, want > 0", h.daily.QuestionsToday)
	}
	if len(deps.Catalog.Signs()) > 0 && !h.daily.HasSign {
		t.Error("expected a sign of the day with a non-empty sign catalog")
	}
}

func TestMenuEnterPushesExam(t *testing.T) {
	deps := testDeps(t)
	h := New(deps)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command from enter on first item")
	}
	pm, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg from menu")
	}
	if _, ok := pm.Screen.(*examscreen.ExamScreen); !ok {
		t.Errorf("pushed screen = %T, want *examscreen.ExamScreen", pm.Screen)
	}
}

func TestMenuNavigationSelectsPractice(t *testing.T) {
	deps := testDeps(t)
	h := New(deps)

	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command from enter on second item")
	}
	pm, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg from menu")
	}
	if _, ok := pm.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("pushed screen = %T, want *practice.PracticeScreen", pm.Screen)
	}
}

func TestQuitItem(t *testing.T) {
	deps := testDeps(t)
	h := New(deps)

	// The quit entry is the last menu item.
	for i := 0; i < len(h.menu.Items); i++ {
		h.Update(keyPress('j'))
	}
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command from quit item")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg from quit item")
	}
}

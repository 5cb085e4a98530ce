package mistakes

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/patenteapp/patente/internal/coach"
	"github.com/patenteapp/patente/internal/content"
	tracker "github.com/patenteapp/patente/internal/mistakes"
	"github.com/patenteapp/patente/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T, recorded ...string) (*MistakesScreen, *tracker.Tracker) {
	t.Helper()

	catalog := content.NewRepository(content.Catalog{
		Questions: []content.Question{
			{ID: "q1", TextIt: "Domanda uno", TextAr: "سؤال واحد", Answer: true},
			{ID: "q2", TextIt: "Domanda due", TextAr: "سؤال اثنان", Answer: false},
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

	ctx := context.Background()
	tr, err := tracker.Load(ctx, repo)
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	for _, id := range recorded {
		if err := tr.Record(ctx, id); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}

	svc := coach.NewService(nil, coach.DefaultConfig())
	return New(catalog, tr, svc), tr
}

func TestEmptySet(t *testing.T) {
	s, _ := testScreen(t)
	if len(s.questions) != 0 {
		t.Errorf("questions = %d, want 0", len(s.questions))
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.reading {
		t.Error("expected no detail view with empty set")
	}
}

func TestListShowsRecordedMistakes(t *testing.T) {
	s, _ := testScreen(t, "q1", "q2")
	if len(s.questions) != 2 {
		t.Errorf("questions = %d, want 2", len(s.questions))
	}
}

func TestUnknownIDsAreHidden(t *testing.T) {
	// A mistake pointing at a question dropped by a content import stays
	// in the set but disappears from the list.
	s, tr := testScreen(t, "q1", "gone")
	if len(s.questions) != 1 {
		t.Errorf("questions = %d, want 1", len(s.questions))
	}
	if tr.Count() != 2 {
		t.Errorf("tracker count = %d, want 2", tr.Count())
	}
}

func TestClearRemovesFromSet(t *testing.T) {
	s, tr := testScreen(t, "q1", "q2")

	s.Update(specialKey(tea.KeyEnter))
	if !s.reading {
		t.Fatal("expected detail view after enter")
	}

	s.Update(keyPress('c'))
	if s.reading {
		t.Error("expected list view after clear")
	}
	if len(s.questions) != 1 {
		t.Errorf("questions = %d, want 1 after clear", len(s.questions))
	}
	if tr.Count() != 1 {
		t.Errorf("tracker count = %d, want 1 after clear", tr.Count())
	}
}

func TestCoachExplanationInDetail(t *testing.T) {
	s, _ := testScreen(t, "q1")

	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("expected poll command after explanation request")
	}

	s.Update(coachPollMsg{})
	if s.expl == nil {
		t.Fatal("expected fallback explanation")
	}
	if s.expl.QuestionID != "q1" {
		t.Errorf("explanation question = %q, want q1", s.expl.QuestionID)
	}
}

func TestSelectionClampedAfterClear(t *testing.T) {
	s, _ := testScreen(t, "q1", "q2")

	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('c'))

	if s.selected != 0 {
		t.Errorf("selected = %d, want 0 after clearing last entry", s.selected)
	}
}

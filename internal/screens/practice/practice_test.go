package practice

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/patenteapp/patente/internal/coach"
	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/quiz"
	"github.com/patenteapp/patente/internal/router"
)

// fakeMistakes implements quiz.MistakeRecorder for testing.
type fakeMistakes struct {
	ids []string
}

func (f *fakeMistakes) Record(_ context.Context, id string) error {
	f.ids = append(f.ids, id)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(questions []content.Question) (*PracticeScreen, *fakeMistakes) {
	mistakes := &fakeMistakes{}
	grader := quiz.NewGrader(mistakes, nil)
	svc := coach.NewService(nil, coach.DefaultConfig())
	return New(questions, quiz.ModeTrueFalse, grader, svc, rand.New(rand.NewSource(7))), mistakes
}

func singleQuestion() []content.Question {
	return []content.Question{{
		ID:          "q1",
		TextIt:      "Il limite in autostrada è 130 km/h",
		TextAr:      "الحد الأقصى للسرعة على الطريق السريع 130 كم/س",
		Answer:      true,
		Explanation: "130 هو الحد الأقصى في الظروف العادية",
	}}
}

func TestCorrectAnswer(t *testing.T) {
	p, mistakes := testScreen(singleQuestion())

	p.Update(keyPress('v'))
	p.Update(specialKey(tea.KeyEnter))

	if p.outcome == nil {
		t.Fatal("expected outcome after submit")
	}
	if !p.outcome.Correct {
		t.Error("expected correct outcome for Vero")
	}
	if p.answered != 1 || p.correct != 1 {
		t.Errorf("answered/correct = %d/%d, want 1/1", p.answered, p.correct)
	}
	if len(mistakes.ids) != 0 {
		t.Errorf("recorded mistakes = %d, want 0", len(mistakes.ids))
	}
}

func TestWrongAnswerRecordsMistake(t *testing.T) {
	p, mistakes := testScreen(singleQuestion())

	p.Update(keyPress('f'))
	p.Update(specialKey(tea.KeyEnter))

	if p.outcome == nil {
		t.Fatal("expected outcome after submit")
	}
	if p.outcome.Correct {
		t.Error("expected wrong outcome for Falso")
	}
	if !p.outcome.CorrectAnswer {
		t.Error("expected CorrectAnswer = Vero")
	}
	if len(mistakes.ids) != 1 || mistakes.ids[0] != "q1" {
		t.Errorf("recorded mistakes = %v, want [q1]", mistakes.ids)
	}
}

func TestAdvanceResetsAndWraps(t *testing.T) {
	p, _ := testScreen(singleQuestion())

	p.Update(specialKey(tea.KeyEnter))
	if p.outcome == nil {
		t.Fatal("expected outcome after submit")
	}

	p.Update(specialKey(tea.KeyEnter))
	if p.outcome != nil {
		t.Error("expected outcome cleared after advance")
	}
	if p.idx != 0 {
		t.Errorf("idx = %d, want 0 after wrap on single question", p.idx)
	}
	if p.selector.Submitted {
		t.Error("expected fresh selector after advance")
	}
}

func TestCoachFallbackExplanation(t *testing.T) {
	p, _ := testScreen(singleQuestion())

	p.Update(specialKey(tea.KeyEnter))

	_, cmd := p.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("expected poll command after explanation request")
	}
	if !p.explPending {
		t.Fatal("expected explanation pending")
	}

	// A nil provider delivers the template fallback synchronously, so the
	// first poll already finds it.
	p.Update(coachPollMsg{})

	if p.explPending {
		t.Error("expected pending cleared after poll")
	}
	if p.expl == nil {
		t.Fatal("expected fallback explanation")
	}
	if p.expl.Generated {
		t.Error("fallback explanation must not claim to be generated")
	}
	if p.expl.QuestionID != "q1" {
		t.Errorf("explanation question = %q, want q1", p.expl.QuestionID)
	}
}

func TestUnderstandModeHidesTranslation(t *testing.T) {
	questions := []content.Question{{
		ID:     "q1",
		TextIt: "Domanda",
		TextAr: "ترجمة",
		Answer: true,
	}}
	mistakes := &fakeMistakes{}
	grader := quiz.NewGrader(mistakes, nil)
	p := New(questions, quiz.ModeUnderstand, grader, nil, rand.New(rand.NewSource(7)))

	if view := p.View(120, 40); strings.Contains(view, "ترجمة") {
		t.Error("expected translation hidden before answering")
	}

	p.Update(specialKey(tea.KeyEnter))
	if view := p.View(120, 40); !strings.Contains(view, "ترجمة") {
		t.Error("expected translation shown after answering")
	}
}

func TestEmptyPoolPopsOnEnter(t *testing.T) {
	p, _ := testScreen(nil)

	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command from enter on empty pool")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on empty pool")
	}
}

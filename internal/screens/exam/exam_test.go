package exam

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/patenteapp/patente/internal/content"
	sess "github.com/patenteapp/patente/internal/exam"
	"github.com/patenteapp/patente/internal/router"
)

// fakeLog implements sess.ResultLog for testing.
type fakeLog struct {
	results []sess.Result
}

func (f *fakeLog) Append(_ context.Context, r sess.Result) error {
	f.results = append(f.results, r)
	return nil
}

// fakeMistakes implements sess.MistakeRecorder for testing.
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

func testCatalog(n int) *content.Repository {
	questions := make([]content.Question, n)
	for i := range questions {
		questions[i] = content.Question{
			ID:     fmt.Sprintf("q%d", i+1),
			TextIt: fmt.Sprintf("Domanda %d", i+1),
			TextAr: fmt.Sprintf("سؤال %d", i+1),
			Answer: true,
		}
	}
	return content.NewRepository(content.Catalog{Questions: questions})
}

func testScreen(n int) (*ExamScreen, *fakeLog, *fakeMistakes) {
	log := &fakeLog{}
	mistakes := &fakeMistakes{}
	session := sess.NewSession(sess.Config{
		Catalog:  testCatalog(n),
		Log:      log,
		Mistakes: mistakes,
		UserID:   "tester",
		Rand:     rand.New(rand.NewSource(42)),
	})
	return New(session), log, mistakes
}

func TestInitStartsAttempt(t *testing.T) {
	s, _, _ := testScreen(5)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected tick command from Init")
	}
	if s.session.Phase() != sess.InProgress {
		t.Errorf("phase = %v, want InProgress", s.session.Phase())
	}
	if got := len(s.session.Questions()); got != 5 {
		t.Errorf("questions = %d, want 5", got)
	}
}

func TestInitEmptyCatalog(t *testing.T) {
	s, _, _ := testScreen(0)

	cmd := s.Init()
	if cmd != nil {
		t.Error("expected no tick command when start fails")
	}
	if s.errMsg == "" {
		t.Error("expected error message for empty catalog")
	}
}

func TestAnswerRecordsAndAdvances(t *testing.T) {
	s, _, _ := testScreen(5)
	s.Init()

	q, idx := s.session.Current()
	if idx != 0 {
		t.Fatalf("start index = %d, want 0", idx)
	}

	s.Update(keyPress('v'))

	if v, ok := s.session.AnswerFor(q.ID); !ok || !v {
		t.Errorf("answer for %s = %v/%v, want true/true", q.ID, v, ok)
	}
	if _, idx := s.session.Current(); idx != 1 {
		t.Errorf("index after answer = %d, want 1", idx)
	}
	if s.session.Answered() != 1 {
		t.Errorf("answered = %d, want 1", s.session.Answered())
	}
}

func TestNavigationClamps(t *testing.T) {
	s, _, _ := testScreen(3)
	s.Init()

	s.Update(specialKey(tea.KeyLeft))
	if _, idx := s.session.Current(); idx != 0 {
		t.Errorf("index after left at start = %d, want 0", idx)
	}

	for i := 0; i < 10; i++ {
		s.Update(specialKey(tea.KeyRight))
	}
	if _, idx := s.session.Current(); idx != 2 {
		t.Errorf("index after repeated right = %d, want 2", idx)
	}
}

func TestSheetToggle(t *testing.T) {
	s, _, _ := testScreen(5)
	s.Init()

	s.Update(keyPress('s'))
	if s.mode != modeSheet {
		t.Fatalf("mode = %v, want modeSheet", s.mode)
	}

	s.Update(specialKey(tea.KeyRight))
	if _, idx := s.session.Current(); idx != 1 {
		t.Errorf("sheet navigation index = %d, want 1", idx)
	}

	s.Update(keyPress('s'))
	if s.mode != modeQuestion {
		t.Errorf("mode = %v, want modeQuestion", s.mode)
	}
}

func TestSheetRowJumpClamps(t *testing.T) {
	s, _, _ := testScreen(5)
	s.Init()

	s.Update(keyPress('s'))
	s.Update(specialKey(tea.KeyDown))
	if _, idx := s.session.Current(); idx != 4 {
		t.Errorf("index after down on last row = %d, want clamped 4", idx)
	}

	s.Update(specialKey(tea.KeyUp))
	if _, idx := s.session.Current(); idx != 0 {
		t.Errorf("index after up = %d, want 0", idx)
	}
}

func TestConfirmCancel(t *testing.T) {
	s, _, _ := testScreen(5)
	s.Init()

	s.Update(keyPress('e'))
	if s.mode != modeConfirm {
		t.Fatalf("mode = %v, want modeConfirm", s.mode)
	}

	s.Update(keyPress('n'))
	if s.mode != modeQuestion {
		t.Errorf("mode = %v, want modeQuestion after cancel", s.mode)
	}
	if s.session.Phase() != sess.InProgress {
		t.Errorf("phase = %v, want InProgress after cancel", s.session.Phase())
	}
}

func TestConfirmToggleAndContinue(t *testing.T) {
	s, _, _ := testScreen(5)
	s.Init()

	s.Update(keyPress('e'))
	if !s.confirmFinish {
		t.Fatal("expected finish highlighted on entering confirm")
	}

	s.Update(specialKey(tea.KeyLeft))
	if s.confirmFinish {
		t.Fatal("expected continue highlighted after toggle")
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.mode != modeQuestion {
		t.Errorf("mode = %v, want modeQuestion after confirming continue", s.mode)
	}
	if s.session.Phase() != sess.InProgress {
		t.Errorf("phase = %v, want InProgress", s.session.Phase())
	}
}

func TestFinishGradesUnansweredAsWrong(t *testing.T) {
	s, log, mistakes := testScreen(5)
	s.Init()

	// Answer two questions correctly, leave three blank.
	s.Update(keyPress('v'))
	s.Update(keyPress('v'))

	s.Update(keyPress('e'))
	s.Update(keyPress('y'))

	if s.mode != modeResult {
		t.Fatalf("mode = %v, want modeResult", s.mode)
	}
	if s.session.Phase() != sess.Finished {
		t.Fatalf("phase = %v, want Finished", s.session.Phase())
	}
	if len(log.results) != 1 {
		t.Fatalf("logged results = %d, want 1", len(log.results))
	}

	r := log.results[0]
	if r.Score != 2 || r.Total != 5 {
		t.Errorf("score = %d/%d, want 2/5", r.Score, r.Total)
	}
	if r.Passed {
		t.Error("2/5 must not pass")
	}
	if len(mistakes.ids) != 3 {
		t.Errorf("recorded mistakes = %d, want 3", len(mistakes.ids))
	}
}

func TestFullCorrectRunPasses(t *testing.T) {
	s, log, mistakes := testScreen(5)
	s.Init()

	// All catalog answers are Vero.
	for i := 0; i < 5; i++ {
		s.Update(keyPress('v'))
	}
	s.Update(keyPress('e'))
	s.Update(specialKey(tea.KeyEnter))

	if len(log.results) != 1 {
		t.Fatalf("logged results = %d, want 1", len(log.results))
	}
	r := log.results[0]
	if r.Score != 5 || !r.Passed {
		t.Errorf("score = %d passed = %v, want 5 and passed", r.Score, r.Passed)
	}
	if len(mistakes.ids) != 0 {
		t.Errorf("recorded mistakes = %d, want 0", len(mistakes.ids))
	}
}

func TestTickCountsDown(t *testing.T) {
	s, _, _ := testScreen(3)
	s.Init()

	before := s.session.Remaining()
	_, cmd := s.Update(tickMsg(time.Now()))

	if got := s.session.Remaining(); got != before-1 {
		t.Errorf("remaining = %d, want %d", got, before-1)
	}
	if cmd == nil {
		t.Error("expected tick to reschedule while in progress")
	}
}

func TestTickStopsAfterFinish(t *testing.T) {
	s, _, _ := testScreen(3)
	s.Init()

	s.Update(keyPress('e'))
	s.Update(keyPress('y'))

	_, cmd := s.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected no reschedule after finish")
	}
}

func TestResultEnterPopsScreen(t *testing.T) {
	s, _, _ := testScreen(3)
	s.Init()

	s.Update(keyPress('e'))
	s.Update(keyPress('y'))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command from enter on result view")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from result view")
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{1800, "30:00"},
		{61, "01:01"},
		{0, "00:00"},
		{-5, "00:00"},
	}
	for _, tc := range cases {
		if got := formatCountdown(tc.seconds); got != tc.want {
			t.Errorf("formatCountdown(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

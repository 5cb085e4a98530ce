package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/llm"
)

var testQuestion = content.Question{
	ID:          "q3",
	TextIt:      "Il sorpasso va effettuato a destra.",
	TextAr:      "التجاوز يجب أن يتم من جهة اليمين.",
	Answer:      false,
	Explanation: "خطأ! التجاوز يجب أن يتم دائماً من جهة اليسار.",
}

func consumeEventually(t *testing.T, s *Service) *Explanation {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if expl, ok := s.Consume(); ok {
			return expl
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no explanation ready before deadline")
	return nil
}

func TestGeneratedExplanation(t *testing.T) {
	payload, _ := json.Marshal(explanationOutput{
		Explanation: "شرح مولد",
		Keywords:    []string{"sorpasso", "destra"},
		Tip:         "نصيحة",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testQuestion)
	expl := consumeEventually(t, s)

	if !expl.Generated {
		t.Error("expected a generated explanation")
	}
	if expl.Explanation != "شرح مولد" {
		t.Errorf("explanation = %q", expl.Explanation)
	}
	if len(expl.Keywords) != 2 {
		t.Errorf("keywords = %v", expl.Keywords)
	}
	if expl.QuestionID != "q3" {
		t.Errorf("question id = %q, want 'q3'", expl.QuestionID)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestRequestSendsSchema(t *testing.T) {
	payload, _ := json.Marshal(explanationOutput{Explanation: "x", Keywords: []string{"a"}, Tip: "t"})
	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testQuestion)
	consumeEventually(t, s)

	req := mock.Calls[0]
	if req.Schema != ExplanationSchema {
		t.Error("request did not carry the explanation schema")
	}
	if req.System == "" {
		t.Error("request missing system prompt")
	}
}

func TestProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), testQuestion)
	expl := consumeEventually(t, s)

	if expl.Generated {
		t.Error("expected the template fallback")
	}
	if expl.Tip == "" {
		t.Error("fallback missing tip")
	}
}

func TestNoProviderUsesFallbackImmediately(t *testing.T) {
	s := NewService(nil, DefaultConfig())
	if s.Available() {
		t.Error("nil provider reported available")
	}

	s.Request(context.Background(), testQuestion)
	expl, ok := s.Consume()
	if !ok {
		t.Fatal("fallback not ready synchronously")
	}
	if expl.Generated {
		t.Error("expected the template fallback")
	}
}

func TestConsumeClearsPending(t *testing.T) {
	s := NewService(nil, DefaultConfig())
	s.Request(context.Background(), testQuestion)

	if _, ok := s.Consume(); !ok {
		t.Fatal("first consume failed")
	}
	if _, ok := s.Consume(); ok {
		t.Error("second consume returned a stale explanation")
	}
}

func TestFallbackContents(t *testing.T) {
	expl := Fallback(testQuestion)

	if expl.QuestionID != "q3" {
		t.Errorf("question id = %q", expl.QuestionID)
	}
	for _, want := range []string{testQuestion.TextIt, testQuestion.TextAr, "Falso", testQuestion.Explanation} {
		if !strings.Contains(expl.Explanation, want) {
			t.Errorf("explanation missing %q", want)
		}
	}
	if len(expl.Keywords) == 0 || len(expl.Keywords) > maxFallbackKeywords {
		t.Errorf("keywords = %v", expl.Keywords)
	}
	// Short words are filtered out.
	for _, k := range expl.Keywords {
		if len(k) <= 3 {
			t.Errorf("short keyword %q", k)
		}
	}
}

// Package coach produces Arabic study explanations for individual
// questions. With an LLM provider configured it generates a tailored
// explanation asynchronously; without one it falls back to a deterministic
// template built from the question's own fields.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/llm"
)

// Explanation is the coach's answer for one question.
type Explanation struct {
	QuestionID  string
	Explanation string
	Keywords    []string
	Tip         string

	// Generated is true for LLM output, false for the template fallback.
	Generated bool
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for explanation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Service generates explanations asynchronously. provider may be nil; every
// request then resolves immediately via the template fallback.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Available reports whether LLM-backed explanations are configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Request starts async explanation generation for a question. Only one
// explanation is in-flight at a time; a new request replaces a pending one.
// Failures degrade to the template fallback rather than surfacing an error
// to the learner.
func (s *Service) Request(ctx context.Context, q content.Question) {
	if s.provider == nil {
		s.deliver(Fallback(q), nil)
		return
	}

	go func() {
		expl, err := s.generate(ctx, q)
		if err != nil {
			fb := Fallback(q)
			s.deliver(fb, err)
			return
		}
		s.deliver(expl, nil)
	}()
}

func (s *Service) deliver(expl *Explanation, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = expl
	s.err = err
	s.ready = true
}

// Consume returns the pending explanation if one is ready.
// Returns (nil, false) if nothing is ready yet. After consumption the
// pending slot is cleared.
func (s *Service) Consume() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	expl := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return expl, expl != nil
}

type explanationOutput struct {
	Explanation string   `json:"explanation"`
	Keywords    []string `json:"keywords"`
	Tip         string   `json:"tip"`
}

func (s *Service) generate(ctx context.Context, q content.Question) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explain")

	req := llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(q)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		QuestionID:  q.ID,
		Explanation: out.Explanation,
		Keywords:    out.Keywords,
		Tip:         out.Tip,
		Generated:   true,
	}, nil
}

// Package quiz grades single practice answers outside the timed exam.
// Each submission is graded immediately: a wrong answer lands in the
// mistake set, a right answer has no mistake-set effect. A prior mistake is
// never auto-cleared by a later correct answer; only an explicit clear from
// the review screen removes it.
package quiz

import (
	"context"
	"fmt"

	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/store"
)

// Mode labels where an answer came from, for per-mode accuracy stats.
type Mode string

const (
	ModeTrueFalse  Mode = "truefalse"
	ModeUnderstand Mode = "understand"
	ModeLesson     Mode = "lesson"
	ModeExam       Mode = "exam"
)

// Outcome is the graded result of one submission.
type Outcome struct {
	Correct       bool
	CorrectAnswer bool
	Explanation   string
}

// MistakeRecorder receives wrongly answered question ids.
type MistakeRecorder interface {
	Record(ctx context.Context, questionID string) error
}

// Grader grades practice answers and records the outcomes.
type Grader struct {
	mistakes MistakeRecorder
	repo     store.EventRepo
}

// NewGrader wires a grader. repo may be nil in previews; answer events are
// then skipped.
func NewGrader(mistakes MistakeRecorder, repo store.EventRepo) *Grader {
	return &Grader{mistakes: mistakes, repo: repo}
}

// Grade compares the learner's choice to the stored correct answer.
func (g *Grader) Grade(ctx context.Context, q content.Question, answer bool, mode Mode) (Outcome, error) {
	out := Outcome{
		Correct:       answer == q.Answer,
		CorrectAnswer: q.Answer,
		Explanation:   q.Explanation,
	}

	if !out.Correct && g.mistakes != nil {
		if err := g.mistakes.Record(ctx, q.ID); err != nil {
			return out, fmt.Errorf("record mistake: %w", err)
		}
	}

	if g.repo != nil {
		err := g.repo.AppendAnswerEvent(ctx, store.AnswerEventData{
			QuestionID:    q.ID,
			Mode:          string(mode),
			UserAnswer:    answer,
			CorrectAnswer: q.Answer,
			Correct:       out.Correct,
		})
		if err != nil {
			return out, fmt.Errorf("append answer event: %w", err)
		}
	}
	return out, nil
}

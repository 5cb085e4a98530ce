// Package plan derives the small daily study recommendation shown on the
// home screen: how many lessons to take today, a fixed question quota, and
// a randomly drawn sign of the day.
package plan

import (
	"math/rand"

	"github.com/patenteapp/patente/internal/content"
)

const (
	// MaxLessonsPerDay caps the daily lesson recommendation.
	MaxLessonsPerDay = 2

	// QuestionsPerDay is the fixed daily question quota. Deliberately not
	// derived from remaining content.
	QuestionsPerDay = 10
)

// Daily is one day's recommended activity bundle.
type Daily struct {
	LessonsToday   int
	QuestionsToday int

	// SignOfTheDay is unset when HasSign is false (empty sign catalog).
	SignOfTheDay content.Sign
	HasSign      bool
}

// Generate derives today's plan. The sign of the day is re-rolled on every
// call; the plan is not memoized per calendar day.
func Generate(completedLessons, totalLessons int, signs []content.Sign, rng *rand.Rand) Daily {
	remaining := totalLessons - completedLessons
	if remaining < 0 {
		remaining = 0
	}
	lessons := remaining
	if lessons > MaxLessonsPerDay {
		lessons = MaxLessonsPerDay
	}

	d := Daily{
		LessonsToday:   lessons,
		QuestionsToday: QuestionsPerDay,
	}
	if len(signs) > 0 {
		d.SignOfTheDay = signs[rng.Intn(len(signs))]
		d.HasSign = true
	}
	return d
}

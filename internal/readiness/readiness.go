// Package readiness computes the 0-100 exam-readiness estimate. The score
// is a weighted composite: lesson completion (30), recent exam performance
// (50), and an outstanding-mistake penalty (20). Pure functions, no state.
package readiness

import "math"

const (
	// LessonWeight is the maximum contribution of lesson completion.
	LessonWeight = 30.0

	// ExamWeight is the maximum contribution of recent exam performance.
	ExamWeight = 50.0

	// MistakeWeight is the maximum contribution of the mistake component.
	MistakeWeight = 20.0

	// ExamWindow is how many of the most recent exam results count.
	ExamWindow = 3

	// mistakePenalty is how many points each outstanding mistake costs.
	mistakePenalty = 2.0
)

// Input is everything the scorer looks at.
type Input struct {
	CompletedLessons int
	TotalLessons     int

	// ExamRatios are score/total ratios of past exams in chronological
	// order, oldest first. Only the last ExamWindow entries count.
	ExamRatios []float64

	MistakeCount int
}

// Score computes the composite readiness score, rounded and clamped to
// [0, 100]. Deterministic: identical inputs always produce the same score.
func Score(in Input) int {
	sum := LessonComponent(in.CompletedLessons, in.TotalLessons) +
		ExamComponent(in.ExamRatios) +
		MistakeComponent(in.MistakeCount)

	score := int(math.Round(sum))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// LessonComponent scales lesson completion to at most LessonWeight points.
func LessonComponent(completed, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(completed) / float64(total) * LessonWeight
}

// ExamComponent averages the last ExamWindow exam ratios and scales them to
// at most ExamWeight points. No exam history contributes zero.
func ExamComponent(ratios []float64) float64 {
	if len(ratios) == 0 {
		return 0
	}
	window := ratios
	if len(window) > ExamWindow {
		window = window[len(window)-ExamWindow:]
	}
	var sum float64
	for _, r := range window {
		sum += r
	}
	return sum / float64(len(window)) * ExamWeight
}

// MistakeComponent awards the full MistakeWeight with a clean slate and
// degrades linearly, bottoming out at zero once ten mistakes are
// outstanding.
func MistakeComponent(count int) float64 {
	if count <= 0 {
		return MistakeWeight
	}
	penalty := MistakeWeight - float64(count)*mistakePenalty
	if penalty < 0 {
		return 0
	}
	return penalty
}

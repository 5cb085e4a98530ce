package readiness

import (
	"math/rand"
	"testing"
)

func TestScoreScenario(t *testing.T) {
	// 10/20 lessons, one prior exam at 18/20, zero mistakes:
	// 15 + 45 + 20 = 80.
	got := Score(Input{
		CompletedLessons: 10,
		TotalLessons:     20,
		ExamRatios:       []float64{18.0 / 20.0},
		MistakeCount:     0,
	})
	if got != 80 {
		t.Errorf("score = %d, want 80", got)
	}
}

func TestScoreComponents(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want int
	}{
		{"zero everything", Input{}, 20},
		{"all lessons no exams", Input{CompletedLessons: 8, TotalLessons: 8}, 50},
		{"perfect", Input{CompletedLessons: 8, TotalLessons: 8, ExamRatios: []float64{1}, MistakeCount: 0}, 100},
		{"heavy mistakes floor at zero", Input{MistakeCount: 50}, 0},
		{"ten mistakes exactly zero penalty points", Input{MistakeCount: 10}, 0},
		{"one mistake", Input{MistakeCount: 1}, 18},
		{"empty lesson catalog", Input{CompletedLessons: 0, TotalLessons: 0}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.in); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExamWindowTakesLastThree(t *testing.T) {
	// Older poor results are ignored once three newer ones exist.
	ratios := []float64{0.1, 0.2, 1, 1, 1}
	got := ExamComponent(ratios)
	if got != ExamWeight {
		t.Errorf("exam component = %v, want %v", got, ExamWeight)
	}
}

func TestExamComponentFewerThanWindow(t *testing.T) {
	got := ExamComponent([]float64{0.5, 1})
	want := 0.75 * ExamWeight
	if got != want {
		t.Errorf("exam component = %v, want %v", got, want)
	}
}

func TestScoreBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		total := rng.Intn(50)
		in := Input{
			CompletedLessons: rng.Intn(total + 1),
			TotalLessons:     total,
			MistakeCount:     rng.Intn(40),
		}
		for j := 0; j < rng.Intn(6); j++ {
			in.ExamRatios = append(in.ExamRatios, rng.Float64())
		}
		got := Score(in)
		if got < 0 || got > 100 {
			t.Fatalf("score %d out of bounds for %+v", got, in)
		}
	}
}

func TestLessonMonotonicity(t *testing.T) {
	base := Input{
		TotalLessons: 20,
		ExamRatios:   []float64{0.6, 0.7},
		MistakeCount: 3,
	}
	prev := -1
	for completed := 0; completed <= base.TotalLessons; completed++ {
		in := base
		in.CompletedLessons = completed
		got := Score(in)
		if got < prev {
			t.Fatalf("score decreased at %d lessons: %d < %d", completed, got, prev)
		}
		prev = got
	}
}

func TestScoreDeterministic(t *testing.T) {
	in := Input{CompletedLessons: 3, TotalLessons: 8, ExamRatios: []float64{0.8, 0.9}, MistakeCount: 2}
	first := Score(in)
	for i := 0; i < 10; i++ {
		if got := Score(in); got != first {
			t.Fatalf("score changed between calls: %d != %d", got, first)
		}
	}
}

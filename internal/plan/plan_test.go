package plan

import (
	"math/rand"
	"testing"

	"github.com/patenteapp/patente/internal/content"
)

func testSigns() []content.Sign {
	return []content.Sign{
		{ID: "1", NameIt: "Stop"},
		{ID: "2", NameIt: "Divieto di accesso"},
		{ID: "3", NameIt: "Dare precedenza"},
	}
}

func TestLessonsClamping(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"plenty remaining", 0, 8, 2},
		{"exactly two remaining", 6, 8, 2},
		{"one remaining", 7, 8, 1},
		{"all complete", 8, 8, 0},
		{"over-complete tolerated", 10, 8, 0},
		{"empty catalog", 0, 0, 0},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Generate(tt.completed, tt.total, testSigns(), rng)
			if d.LessonsToday != tt.want {
				t.Errorf("lessons = %d, want %d", d.LessonsToday, tt.want)
			}
		})
	}
}

func TestQuestionQuotaFixed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := Generate(0, 100, testSigns(), rng)
	if d.QuestionsToday != QuestionsPerDay {
		t.Errorf("questions = %d, want %d", d.QuestionsToday, QuestionsPerDay)
	}
}

func TestSignOfTheDayDrawn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	signs := testSigns()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		d := Generate(0, 8, signs, rng)
		if !d.HasSign {
			t.Fatal("expected a sign of the day")
		}
		seen[d.SignOfTheDay.ID] = true
	}
	// Re-rolled per call: over many draws every sign shows up.
	if len(seen) != len(signs) {
		t.Errorf("distinct signs drawn = %d, want %d", len(seen), len(signs))
	}
}

func TestNoSignsAvailable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := Generate(0, 8, nil, rng)
	if d.HasSign {
		t.Error("expected no sign for empty catalog")
	}
}

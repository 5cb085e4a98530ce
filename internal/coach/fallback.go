package coach

import (
	"fmt"
	"strings"

	"github.com/patenteapp/patente/internal/content"
)

const maxFallbackKeywords = 5

// Fallback builds a deterministic explanation from the question's own
// fields, used when no LLM provider is configured or generation fails.
func Fallback(q content.Question) *Explanation {
	answer := "غلط (Falso)"
	if q.Answer {
		answer = "صح (Vero)"
	}

	var b strings.Builder
	b.WriteString("السؤال بالإيطالي:\n")
	fmt.Fprintf(&b, "%q\n\n", q.TextIt)
	b.WriteString("الترجمة العربية:\n")
	fmt.Fprintf(&b, "%q\n\n", q.TextAr)
	fmt.Fprintf(&b, "الإجابة الصحيحة: %s\n\n", answer)
	b.WriteString("الشرح المبسط:\n")
	b.WriteString(q.Explanation)

	return &Explanation{
		QuestionID:  q.ID,
		Explanation: b.String(),
		Keywords:    extractKeywords(q.TextIt),
		Tip:         "حاول تقرأ السؤال بالإيطالي ببطء وتربط الكلمات اللي تعرفها بالمعنى العربي.",
	}
}

// extractKeywords picks the first few words longer than three characters,
// a crude stand-in for real vocabulary extraction.
func extractKeywords(textIt string) []string {
	var out []string
	for _, w := range strings.Fields(textIt) {
		w = strings.Trim(w, ".,;:!?\"'")
		if len(w) > 3 {
			out = append(out, w)
		}
		if len(out) == maxFallbackKeywords {
			break
		}
	}
	return out
}

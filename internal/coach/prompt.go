package coach

import (
	"fmt"

	"github.com/patenteapp/patente/internal/content"
)

const explainSystemPrompt = `You are a driving-theory coach for Arabic-speaking learners preparing for the Italian patente B exam. You explain official Italian exam questions in simple Arabic, keeping the key Italian vocabulary visible so the learner links each term to its meaning. Keep explanations short, concrete, and encouraging.`

func buildExplainUserMessage(q content.Question) string {
	answer := "Falso"
	if q.Answer {
		answer = "Vero"
	}
	return fmt.Sprintf(
		"Question (Italian): %s\nTranslation (Arabic): %s\nCorrect answer: %s\nStored explanation: %s\n\nExplain this question in Arabic for the learner.",
		q.TextIt, q.TextAr, answer, q.Explanation,
	)
}

// Package practice is the untimed drill screen: one question at a time,
// graded immediately, with an optional coach explanation after each answer.
package practice

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/patenteapp/patente/internal/coach"
	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/quiz"
	"github.com/patenteapp/patente/internal/router"
	"github.com/patenteapp/patente/internal/screen"
	"github.com/patenteapp/patente/internal/ui/components"
	"github.com/patenteapp/patente/internal/ui/layout"
	"github.com/patenteapp/patente/internal/ui/theme"
)

// coachPollMsg polls for a pending coach explanation.
type coachPollMsg struct{}

func pollCoach() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return coachPollMsg{}
	})
}

// PracticeScreen drills through a shuffled question list.
type PracticeScreen struct {
	questions []content.Question
	mode      quiz.Mode
	grader    *quiz.Grader
	coach     *coach.Service

	idx      int
	selector components.TrueFalse
	outcome  *quiz.Outcome

	expl        *coach.Explanation
	explPending bool

	answered int
	correct  int
	errMsg   string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen over a copy of the given questions, shuffled.
func New(questions []content.Question, mode quiz.Mode, grader *quiz.Grader, coachSvc *coach.Service, rng *rand.Rand) *PracticeScreen {
	pool := append([]content.Question(nil), questions...)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	p := &PracticeScreen{
		questions: pool,
		mode:      mode,
		grader:    grader,
		coach:     coachSvc,
	}
	if len(pool) > 0 {
		p.selector = components.NewTrueFalse(pool[0].Answer, true)
	}
	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if len(p.questions) == 0 {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	switch msg := msg.(type) {
	case coachPollMsg:
		if expl, ok := p.coach.Consume(); ok {
			p.expl = expl
			p.explPending = false
			return p, nil
		}
		if p.explPending {
			return p, pollCoach()
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.outcome == nil {
		wasSubmitted := p.selector.Submitted
		var cmd tea.Cmd
		p.selector, cmd = p.selector.Update(msg)
		if !wasSubmitted && p.selector.Submitted {
			p.grade()
		}
		return p, cmd
	}

	switch msg.String() {
	case "enter", "n":
		p.advance()
	case "e":
		if p.coach != nil && p.expl == nil && !p.explPending {
			p.explPending = true
			p.coach.Request(context.Background(), p.questions[p.idx])
			return p, pollCoach()
		}
	}
	return p, nil
}

func (p *PracticeScreen) grade() {
	q := p.questions[p.idx]
	out, err := p.grader.Grade(context.Background(), q, p.selector.Chosen, p.mode)
	if err != nil {
		p.errMsg = err.Error()
	}
	p.outcome = &out
	p.answered++
	if out.Correct {
		p.correct++
	}
}

// advance moves to the next question, wrapping around at the end.
func (p *PracticeScreen) advance() {
	p.idx = (p.idx + 1) % len(p.questions)
	p.selector = components.NewTrueFalse(p.questions[p.idx].Answer, true)
	p.outcome = nil
	p.expl = nil
	p.explPending = false
	p.errMsg = ""
}

func (p *PracticeScreen) View(width, height int) string {
	var body string
	if len(p.questions) == 0 {
		body = theme.Hint.Render("لا توجد أسئلة متاحة · Enter للعودة")
	} else {
		body = p.viewQuestion(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (p *PracticeScreen) viewQuestion(width int) string {
	q := p.questions[p.idx]

	header := theme.Subtitle.Render(fmt.Sprintf("تدريب · %d صحيحة من %d", p.correct, p.answered))

	cw := width - 12
	if cw > 70 {
		cw = 70
	}
	if cw < 30 {
		cw = 30
	}

	// The understand drill hides the Arabic translation until the answer
	// is in, so the learner reads the Italian on its own first.
	body := theme.Italian.Render(q.TextIt)
	if p.mode == quiz.ModeUnderstand && p.outcome == nil {
		body += "\n\n" + theme.Hint.Render("اقرأ السؤال بالإيطالية وحاول فهمه قبل الإجابة")
	} else {
		body += "\n\n" + theme.Body.Render(q.TextAr)
	}
	card := theme.Card.Width(cw).Render(body)

	parts := []string{header, card, p.selector.View()}

	if p.outcome != nil {
		parts = append(parts, p.viewOutcome(cw))
	}
	if p.errMsg != "" {
		parts = append(parts, theme.Incorrect.Render(p.errMsg))
	}
	return strings.Join(parts, "\n\n")
}

func (p *PracticeScreen) viewOutcome(cw int) string {
	var b strings.Builder
	if p.outcome.Correct {
		b.WriteString(theme.Correct.Render("إجابة صحيحة!"))
	} else {
		b.WriteString(theme.Incorrect.Render("إجابة خاطئة"))
	}
	if p.outcome.Explanation != "" {
		b.WriteString("\n" + theme.Body.Render(p.outcome.Explanation))
	}

	switch {
	case p.explPending:
		b.WriteString("\n\n" + theme.Hint.Render("المدرب يكتب الشرح..."))
	case p.expl != nil:
		b.WriteString("\n\n" + renderExplanation(p.expl))
	case p.coach != nil:
		b.WriteString("\n\n" + theme.Hint.Render("اضغط e لشرح المدرب · Enter للسؤال التالي"))
	default:
		b.WriteString("\n\n" + theme.Hint.Render("Enter للسؤال التالي"))
	}

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func renderExplanation(expl *coach.Explanation) string {
	var b strings.Builder
	b.WriteString(theme.Italian.Render("شرح المدرب") + "\n")
	b.WriteString(theme.Body.Render(expl.Explanation))
	if len(expl.Keywords) > 0 {
		b.WriteString("\n" + theme.Hint.Render("كلمات مفتاحية: "+strings.Join(expl.Keywords, " · ")))
	}
	if expl.Tip != "" {
		b.WriteString("\n" + theme.Hint.Render("نصيحة: "+expl.Tip))
	}
	return b.String()
}

func (p *PracticeScreen) Title() string {
	return "تدريب"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.outcome == nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Vero/Falso"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	if p.coach != nil {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

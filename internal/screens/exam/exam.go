// Package exam is the timed mock-exam screen: question navigation, the
// Vero/Falso answer sheet, the countdown, and the final grading view.
package exam

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/patenteapp/patente/internal/content"
	sess "github.com/patenteapp/patente/internal/exam"
	"github.com/patenteapp/patente/internal/router"
	"github.com/patenteapp/patente/internal/screen"
	"github.com/patenteapp/patente/internal/ui/components"
	"github.com/patenteapp/patente/internal/ui/layout"
	"github.com/patenteapp/patente/internal/ui/theme"
)

// viewMode selects what the screen is currently showing.
type viewMode int

const (
	modeQuestion viewMode = iota
	modeSheet
	modeConfirm
	modeResult
)

// sheetColumns is the answer-sheet grid width.
const sheetColumns = 5

// tickMsg drives the one-second countdown.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ExamScreen drives one attempt of the session it was given.
type ExamScreen struct {
	session *sess.Session
	mode    viewMode
	result  sess.Result
	errMsg  string

	// confirmFinish is the highlighted choice on the confirm view.
	confirmFinish bool
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates the exam screen. The attempt starts in Init.
func New(session *sess.Session) *ExamScreen {
	return &ExamScreen{session: session}
}

func (e *ExamScreen) Init() tea.Cmd {
	if err := e.session.Start(); err != nil {
		e.errMsg = err.Error()
		return nil
	}
	return tickCmd()
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return e.handleTick()
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e *ExamScreen) handleTick() (screen.Screen, tea.Cmd) {
	finished, err := e.session.Tick(context.Background())
	if err != nil {
		e.errMsg = err.Error()
	}
	if finished {
		if r, ok := e.session.Result(); ok {
			e.result = r
		}
		e.mode = modeResult
		return e, nil
	}
	if e.session.Phase() != sess.InProgress {
		return e, nil
	}
	return e, tickCmd()
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch e.mode {
	case modeResult:
		if msg.String() == "enter" {
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return e, nil

	case modeConfirm:
		switch msg.String() {
		case "y":
			return e.finish()
		case "n":
			e.mode = modeQuestion
		case "left", "h", "right", "l", "tab":
			e.confirmFinish = !e.confirmFinish
		case "enter":
			if e.confirmFinish {
				return e.finish()
			}
			e.mode = modeQuestion
		}
		return e, nil

	case modeSheet:
		switch msg.String() {
		case "s", "enter":
			e.mode = modeQuestion
		case "left", "h":
			e.session.Prev()
		case "right", "l":
			e.session.Next()
		case "up", "k":
			_, cur := e.session.Current()
			e.session.Jump(cur - sheetColumns)
		case "down", "j":
			_, cur := e.session.Current()
			e.session.Jump(cur + sheetColumns)
		}
		return e, nil
	}

	// Question view.
	switch msg.String() {
	case "left", "h", "p":
		e.session.Prev()
	case "right", "l", "n":
		e.session.Next()
	case "v":
		e.answer(true)
	case "f":
		e.answer(false)
	case "s":
		e.mode = modeSheet
	case "e":
		e.mode = modeConfirm
		e.confirmFinish = true
	}
	return e, nil
}

// answer records the choice for the current question and advances.
func (e *ExamScreen) answer(value bool) {
	q, _ := e.session.Current()
	if err := e.session.Answer(q.ID, value); err != nil {
		e.errMsg = err.Error()
		return
	}
	e.session.Next()
}

func (e *ExamScreen) finish() (screen.Screen, tea.Cmd) {
	result, err := e.session.Finish(context.Background())
	if err != nil {
		e.errMsg = err.Error()
	}
	e.result = result
	e.mode = modeResult
	return e, nil
}

func (e *ExamScreen) View(width, height int) string {
	var body string
	switch {
	case e.errMsg != "" && e.session.Phase() == sess.NotStarted:
		body = theme.Incorrect.Render(e.errMsg)
	case e.mode == modeResult:
		body = e.viewResult()
	case e.mode == modeConfirm:
		body = e.viewConfirm()
	case e.mode == modeSheet:
		body = e.viewSheet()
	default:
		body = e.viewQuestion(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (e *ExamScreen) viewQuestion(width int) string {
	q, idx := e.session.Current()
	total := len(e.session.Questions())

	header := theme.Subtitle.Render(fmt.Sprintf("السؤال %d / %d", idx+1, total)) +
		"    " +
		theme.Italian.Render(formatCountdown(e.session.Remaining())) +
		"    " +
		theme.Hint.Render(fmt.Sprintf("أجبت على %d", e.session.Answered()))

	card := renderQuestionCard(q, width)

	status := theme.Hint.Render("لم تجب بعد")
	if v, ok := e.session.AnswerFor(q.ID); ok {
		if v {
			status = theme.Body.Render("إجابتك: ") + theme.Correct.Render("صح · Vero")
		} else {
			status = theme.Body.Render("إجابتك: ") + theme.Incorrect.Render("غلط · Falso")
		}
	}

	parts := []string{header, card, status}
	if e.errMsg != "" {
		parts = append(parts, theme.Incorrect.Render(e.errMsg))
	}
	return strings.Join(parts, "\n\n")
}

func renderQuestionCard(q content.Question, width int) string {
	cw := width - 12
	if cw > 70 {
		cw = 70
	}
	if cw < 30 {
		cw = 30
	}
	return theme.Card.Width(cw).Render(
		theme.Italian.Render(q.TextIt) + "\n\n" + theme.Body.Render(q.TextAr))
}

// viewSheet renders the answer-sheet overview: one cell per question.
func (e *ExamScreen) viewSheet() string {
	questions := e.session.Questions()
	_, current := e.session.Current()

	var b strings.Builder
	b.WriteString(theme.Italian.Render("ورقة الإجابات") + "\n\n")
	for i, q := range questions {
		mark := "—"
		style := theme.Hint
		if v, ok := e.session.AnswerFor(q.ID); ok {
			if v {
				mark = "V"
			} else {
				mark = "F"
			}
			style = theme.Body
		}
		cell := fmt.Sprintf("%2d:%s", i+1, mark)
		if i == current {
			cell = theme.Selected.Render(cell)
		} else {
			cell = style.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%sheetColumns == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("\n" + theme.Hint.Render(formatCountdown(e.session.Remaining())))
	return b.String()
}

func (e *ExamScreen) viewConfirm() string {
	unanswered := len(e.session.Questions()) - e.session.Answered()
	lines := []string{theme.Italian.Render("إنهاء الامتحان؟")}
	if unanswered > 0 {
		lines = append(lines, theme.Incorrect.Render(
			fmt.Sprintf("لديك %d سؤالاً بدون إجابة — ستُحسب خاطئة", unanswered)))
	}

	finish := components.NewButton("إنهاء", e.confirmFinish, nil)
	cont := components.NewButton("متابعة", !e.confirmFinish, nil)
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, finish.View(), "  ", cont.View()))

	return theme.Card.Render(strings.Join(lines, "\n\n"))
}

func (e *ExamScreen) viewResult() string {
	r := e.result

	verdict := theme.Correct.Render("ناجح · Promosso")
	if !r.Passed {
		verdict = theme.Incorrect.Render("راسب · Bocciato")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("نتيجة الامتحان") + "\n\n")
	b.WriteString(verdict + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("النتيجة: %d / %d", r.Score, r.Total)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("الوقت المستغرق: %s", formatCountdown(r.TimeSpent))) + "\n\n")

	wrong := 0
	for _, a := range r.Answers {
		if !a.Correct {
			wrong++
		}
	}
	if wrong > 0 {
		b.WriteString(theme.Hint.Render(
			fmt.Sprintf("أُضيفت %d أسئلة إلى قائمة الأخطاء للمراجعة", wrong)) + "\n\n")
	}
	b.WriteString(theme.Hint.Render("Enter للعودة"))
	return b.String()
}

func formatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (e *ExamScreen) Title() string {
	return "امتحان تجريبي"
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	switch e.mode {
	case modeResult:
		return []layout.KeyHint{{Key: "Enter", Description: "Back"}}
	case modeConfirm:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "y/n", Description: "Finish/Continue"},
		}
	case modeSheet:
		return []layout.KeyHint{
			{Key: "s", Description: "Question"},
			{Key: "←→↑↓", Description: "Move"},
		}
	default:
		return []layout.KeyHint{
			{Key: "v/f", Description: "Vero/Falso"},
			{Key: "←→", Description: "Navigate"},
			{Key: "s", Description: "Sheet"},
			{Key: "e", Description: "End"},
		}
	}
}

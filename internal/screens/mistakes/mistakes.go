// Package mistakes is the review screen for wrongly answered questions:
// browse the mistake set, re-read each question with its explanation, ask
// the coach, and clear reviewed entries.
package mistakes

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/patenteapp/patente/internal/coach"
	"github.com/patenteapp/patente/internal/content"
	tracker "github.com/patenteapp/patente/internal/mistakes"
	"github.com/patenteapp/patente/internal/screen"
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

// MistakesScreen browses the mistake set.
type MistakesScreen struct {
	catalog *content.Repository
	tracker *tracker.Tracker
	coach   *coach.Service

	questions []content.Question
	selected  int
	reading   bool

	expl        *coach.Explanation
	explPending bool
	errMsg      string
}

var _ screen.Screen = (*MistakesScreen)(nil)
var _ screen.KeyHintProvider = (*MistakesScreen)(nil)

// New creates the mistake review screen.
func New(catalog *content.Repository, t *tracker.Tracker, coachSvc *coach.Service) *MistakesScreen {
	s := &MistakesScreen{
		catalog: catalog,
		tracker: t,
		coach:   coachSvc,
	}
	s.reload()
	return s
}

// reload resolves the current mistake set against the catalog. Mistakes
// pointing at questions dropped by a content import simply disappear from
// the list; the set entry stays until cleared.
func (s *MistakesScreen) reload() {
	s.questions = s.catalog.QuestionsByIDs(s.tracker.IDs())
	if s.selected >= len(s.questions) {
		s.selected = len(s.questions) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *MistakesScreen) Init() tea.Cmd {
	return nil
}

func (s *MistakesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coachPollMsg:
		if expl, ok := s.coach.Consume(); ok {
			s.expl = expl
			s.explPending = false
			return s, nil
		}
		if s.explPending {
			return s, pollCoach()
		}
		return s, nil

	case tea.KeyMsg:
		if s.reading {
			return s.handleReadingKey(msg)
		}
		return s.handleListKey(msg)
	}
	return s, nil
}

func (s *MistakesScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.questions)-1 {
			s.selected++
		}
	case "enter":
		if len(s.questions) > 0 {
			s.reading = true
			s.expl = nil
			s.explPending = false
			s.errMsg = ""
		}
	}
	return s, nil
}

func (s *MistakesScreen) handleReadingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.questions[s.selected]

	switch msg.String() {
	case "b", "left", "h":
		s.reading = false
	case "c":
		if err := s.tracker.Clear(context.Background(), q.ID); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.reading = false
		s.reload()
	case "e":
		if s.coach != nil && s.expl == nil && !s.explPending {
			s.explPending = true
			s.coach.Request(context.Background(), q)
			return s, pollCoach()
		}
	}
	return s, nil
}

func (s *MistakesScreen) View(width, height int) string {
	var body string
	switch {
	case len(s.questions) == 0:
		body = theme.Correct.Render("لا توجد أخطاء للمراجعة — أحسنت!")
	case s.reading:
		body = s.viewDetail(width)
	default:
		body = s.viewList()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *MistakesScreen) viewList() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d سؤالاً بانتظار المراجعة", len(s.questions))) + "\n\n")

	for i, q := range s.questions {
		line := q.TextIt
		if r := []rune(line); len(r) > 60 {
			line = string(r[:60]) + "…"
		}
		if i == s.selected {
			b.WriteString("  " + theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("    " + theme.Body.Render(line) + "\n")
		}
	}
	return b.String()
}

func (s *MistakesScreen) viewDetail(width int) string {
	q := s.questions[s.selected]

	cw := width - 12
	if cw > 76 {
		cw = 76
	}
	if cw < 30 {
		cw = 30
	}

	answer := theme.Correct.Render("صح · Vero")
	if !q.Answer {
		answer = theme.Incorrect.Render("غلط · Falso")
	}

	var b strings.Builder
	b.WriteString(theme.Italian.Render(q.TextIt) + "\n\n")
	b.WriteString(theme.Body.Render(q.TextAr) + "\n\n")
	b.WriteString(theme.Body.Render("الإجابة الصحيحة: ") + answer + "\n")
	if q.Explanation != "" {
		b.WriteString("\n" + theme.Body.Render(q.Explanation) + "\n")
	}

	switch {
	case s.explPending:
		b.WriteString("\n" + theme.Hint.Render("المدرب يكتب الشرح..."))
	case s.expl != nil:
		b.WriteString("\n" + theme.Italian.Render("شرح المدرب") + "\n")
		b.WriteString(theme.Body.Render(s.expl.Explanation))
		if len(s.expl.Keywords) > 0 {
			b.WriteString("\n" + theme.Hint.Render("كلمات مفتاحية: "+strings.Join(s.expl.Keywords, " · ")))
		}
		if s.expl.Tip != "" {
			b.WriteString("\n" + theme.Hint.Render("نصيحة: "+s.expl.Tip))
		}
	case s.coach != nil:
		b.WriteString("\n" + theme.Hint.Render("اضغط e لشرح المدرب"))
	}

	b.WriteString("\n\n" + theme.Hint.Render("c مراجعة تمت · b القائمة"))
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg))
	}

	return theme.Card.Width(cw).Render(b.String())
}

func (s *MistakesScreen) Title() string {
	return "مراجعة الأخطاء"
}

func (s *MistakesScreen) KeyHints() []layout.KeyHint {
	if s.reading {
		hints := []layout.KeyHint{{Key: "c", Description: "Clear"}}
		if s.coach != nil {
			hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
		}
		return append(hints,
			layout.KeyHint{Key: "b", Description: "List"},
			layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Review"},
		{Key: "Esc", Description: "Back"},
	}
}

// Package lessons is the lesson browser: sections, lesson reading view,
// completion marking, and the per-lesson mini quiz.
package lessons

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/patenteapp/patente/internal/coach"
	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/progress"
	"github.com/patenteapp/patente/internal/quiz"
	"github.com/patenteapp/patente/internal/router"
	"github.com/patenteapp/patente/internal/screen"
	"github.com/patenteapp/patente/internal/screens/practice"
	"github.com/patenteapp/patente/internal/ui/layout"
	"github.com/patenteapp/patente/internal/ui/theme"
)

// row is one line of the lesson list: a section heading or a lesson.
type row struct {
	header string
	lesson content.Lesson
}

// LessonsScreen lists lessons grouped by section and shows one at a time.
type LessonsScreen struct {
	catalog  *content.Repository
	progress *progress.Lessons
	grader   *quiz.Grader
	coach    *coach.Service
	rng      *rand.Rand

	rows     []row
	selected int
	reading  bool
	errMsg   string
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)

// New creates the lesson browser.
func New(catalog *content.Repository, prog *progress.Lessons, grader *quiz.Grader, coachSvc *coach.Service, rng *rand.Rand) *LessonsScreen {
	var rows []row
	for _, sec := range catalog.Sections() {
		rows = append(rows, row{header: sec.Name})
		for _, l := range catalog.Lessons() {
			if l.SectionID == sec.ID {
				rows = append(rows, row{lesson: l})
			}
		}
	}
	// Lessons outside any section go last.
	for _, l := range catalog.Lessons() {
		if l.SectionID == "" {
			rows = append(rows, row{lesson: l})
		}
	}

	s := &LessonsScreen{
		catalog:  catalog,
		progress: prog,
		grader:   grader,
		coach:    coachSvc,
		rng:      rng,
		rows:     rows,
	}
	s.selected = s.nextLesson(-1, 1)
	return s
}

// nextLesson finds the nearest selectable row from i in the given direction.
func (s *LessonsScreen) nextLesson(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(s.rows); j += dir {
		if s.rows[j].header == "" {
			return j
		}
	}
	return i
}

func (s *LessonsScreen) current() (content.Lesson, bool) {
	if s.selected < 0 || s.selected >= len(s.rows) || s.rows[s.selected].header != "" {
		return content.Lesson{}, false
	}
	return s.rows[s.selected].lesson, true
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.reading {
		return s.handleReadingKey(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		s.selected = s.nextLesson(s.selected, -1)
	case "down", "j":
		s.selected = s.nextLesson(s.selected, 1)
	case "enter":
		if _, ok := s.current(); ok {
			s.reading = true
			s.errMsg = ""
		}
	}
	return s, nil
}

func (s *LessonsScreen) handleReadingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	lesson, ok := s.current()
	if !ok {
		s.reading = false
		return s, nil
	}

	switch msg.String() {
	case "b", "left", "h":
		s.reading = false
	case "c":
		if err := s.progress.Complete(context.Background(), lesson.ID); err != nil {
			s.errMsg = err.Error()
		}
	case "t":
		questions := s.catalog.QuestionsForLesson(lesson.ID)
		if len(questions) == 0 {
			s.errMsg = "لا توجد أسئلة لهذا الدرس"
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: practice.New(questions, quiz.ModeLesson, s.grader, s.coach, s.rng),
			}
		}
	}
	return s, nil
}

func (s *LessonsScreen) View(width, height int) string {
	var body string
	if s.reading {
		body = s.viewLesson(width)
	} else {
		body = s.viewList()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *LessonsScreen) viewList() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("أكملت %d من %d درساً",
		s.progress.Count(), s.catalog.LessonCount())) + "\n\n")

	for i, r := range s.rows {
		if r.header != "" {
			b.WriteString(theme.Italian.Render(r.header) + "\n")
			continue
		}

		mark := "  "
		if s.progress.Completed(r.lesson.ID) {
			mark = theme.Correct.Render("✓ ")
		}
		line := r.lesson.Title + "  " + theme.Hint.Render(r.lesson.TitleIt)
		if i == s.selected {
			b.WriteString("  " + theme.Selected.Render("▸ ") + mark + theme.Selected.Render(line) + "\n")
		} else {
			b.WriteString("    " + mark + theme.Body.Render(line) + "\n")
		}
	}
	return b.String()
}

func (s *LessonsScreen) viewLesson(width int) string {
	lesson, ok := s.current()
	if !ok {
		return ""
	}

	cw := width - 12
	if cw > 76 {
		cw = 76
	}
	if cw < 30 {
		cw = 30
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(lesson.Title) + "\n")
	b.WriteString(theme.Subtitle.Render(lesson.TitleIt) + "\n\n")
	b.WriteString(theme.Body.Render(lesson.Content) + "\n")
	if lesson.Example != "" {
		b.WriteString("\n" + theme.Hint.Render("مثال: "+lesson.Example) + "\n")
	}

	b.WriteString("\n")
	if s.progress.Completed(lesson.ID) {
		b.WriteString(theme.Correct.Render("درس مكتمل ✓"))
	} else {
		b.WriteString(theme.Hint.Render("اضغط c لإكمال الدرس"))
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg))
	}

	return theme.Card.Width(cw).Render(b.String())
}

func (s *LessonsScreen) Title() string {
	return "الدروس"
}

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	if s.reading {
		return []layout.KeyHint{
			{Key: "c", Description: "Complete"},
			{Key: "t", Description: "Quiz"},
			{Key: "b", Description: "List"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Back"},
	}
}

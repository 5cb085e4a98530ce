// Package home is the landing screen: the readiness estimate, today's study
// plan, and the navigation menu.
package home

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/patenteapp/patente/internal/coach"
	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/exam"
	"github.com/patenteapp/patente/internal/history"
	"github.com/patenteapp/patente/internal/learner"
	"github.com/patenteapp/patente/internal/mistakes"
	"github.com/patenteapp/patente/internal/plan"
	"github.com/patenteapp/patente/internal/progress"
	"github.com/patenteapp/patente/internal/quiz"
	"github.com/patenteapp/patente/internal/readiness"
	"github.com/patenteapp/patente/internal/router"
	"github.com/patenteapp/patente/internal/screen"
	examscreen "github.com/patenteapp/patente/internal/screens/exam"
	glossaryscreen "github.com/patenteapp/patente/internal/screens/glossary"
	historyscreen "github.com/patenteapp/patente/internal/screens/history"
	lessonscreen "github.com/patenteapp/patente/internal/screens/lessons"
	mistakescreen "github.com/patenteapp/patente/internal/screens/mistakes"
	"github.com/patenteapp/patente/internal/screens/practice"
	signscreen "github.com/patenteapp/patente/internal/screens/signs"
	"github.com/patenteapp/patente/internal/store"
	"github.com/patenteapp/patente/internal/ui/components"
	"github.com/patenteapp/patente/internal/ui/layout"
	"github.com/patenteapp/patente/internal/ui/theme"
)

// Deps bundles the services the home screen and its child screens use.
type Deps struct {
	Catalog  *content.Repository
	Repo     store.EventRepo
	Session  *exam.Session
	Grader   *quiz.Grader
	Mistakes *mistakes.Tracker
	Lessons  *progress.Lessons
	History  *history.Log
	Coach    *coach.Service
	Profile  learner.Profile
	Rand     *rand.Rand
}

// Readiness computes the current readiness estimate from the live trackers.
func Readiness(d Deps) int {
	recent := d.History.Last(readiness.ExamWindow)
	ratios := make([]float64, 0, len(recent))
	for _, r := range recent {
		if r.Total > 0 {
			ratios = append(ratios, float64(r.Score)/float64(r.Total))
		}
	}
	return readiness.Score(readiness.Input{
		CompletedLessons: d.Lessons.Count(),
		TotalLessons:     d.Catalog.LessonCount(),
		ExamRatios:       ratios,
		MistakeCount:     d.Mistakes.Count(),
	})
}

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	deps  Deps
	menu  components.Menu
	daily plan.Daily
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The daily plan is rolled once per visit,
// not per render, so the sign of the day stays put while navigating.
func New(deps Deps) *HomeScreen {
	daily := plan.Generate(
		deps.Lessons.Count(),
		deps.Catalog.LessonCount(),
		deps.Catalog.Signs(),
		deps.Rand,
	)

	// Screens are built lazily so each visit starts from fresh state.
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{Label: "امتحان تجريبي · Mock Exam", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examscreen.New(deps.Session)}
			}
		}},
		{Label: "تدريب صح / غلط · Practice", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(deps.Catalog.Questions(), quiz.ModeTrueFalse, deps.Grader, deps.Coach, deps.Rand),
				}
			}
		}},
		{Label: "فهم السؤال · Understand", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(deps.Catalog.Questions(), quiz.ModeUnderstand, deps.Grader, deps.Coach, deps.Rand),
				}
			}
		}},
		{Label: "الدروس · Lessons", Action: push(func() screen.Screen {
			return lessonscreen.New(deps.Catalog, deps.Lessons, deps.Grader, deps.Coach, deps.Rand)
		})},
		{Label: "إشارات المرور · Road Signs", Action: push(func() screen.Screen {
			return signscreen.New(deps.Catalog)
		})},
		{Label: "مراجعة الأخطاء · Mistakes", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: mistakescreen.New(deps.Catalog, deps.Mistakes, deps.Coach),
				}
			}
		}},
		{Label: "القاموس · Glossary", Action: push(func() screen.Screen {
			return glossaryscreen.New(deps.Catalog)
		})},
		{Label: "سجل الامتحانات · History", Action: push(func() screen.Screen {
			return historyscreen.New(deps.History, deps.Repo)
		})},
		{Label: "خروج · Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:  deps,
		menu:  components.NewMenu(items),
		daily: daily,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layoutCompact(width, height)

	var sections []string

	sections = append(sections,
		theme.Title.Render("رخصة القيادة الإيطالية"),
		theme.Subtitle.Render("Patente B · تحضير امتحان النظرية"))

	sections = append(sections, h.renderReadiness(width))

	if !compact {
		sections = append(sections, h.renderPlanCard())
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "الرئيسية"
}

func layoutCompact(width, height int) bool {
	return layout.IsCompactWidth(width) || layout.IsCompactHeight(height)
}

func (h *HomeScreen) renderReadiness(width int) string {
	score := Readiness(h.deps)
	barWidth := width / 3
	if barWidth > 48 {
		barWidth = 48
	}
	bar := components.NewProgressBar("جاهزية الامتحان", float64(score)/100, true, barWidth)
	return bar.View()
}

func (h *HomeScreen) renderPlanCard() string {
	lines := []string{
		theme.Italian.Render("خطة اليوم"),
		theme.Body.Render(fmt.Sprintf("دروس اليوم: %d    أسئلة اليوم: %d",
			h.daily.LessonsToday, h.daily.QuestionsToday)),
	}
	if h.daily.HasSign {
		lines = append(lines, theme.Body.Render("إشارة اليوم: ")+
			theme.Italian.Render(h.daily.SignOfTheDay.NameIt)+
			theme.Hint.Render(" — "+h.daily.SignOfTheDay.Name))
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

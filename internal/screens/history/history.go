// Package history shows the exam attempt log and per-mode answer accuracy.
package history

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/patenteapp/patente/internal/exam"
	examlog "github.com/patenteapp/patente/internal/history"
	"github.com/patenteapp/patente/internal/quiz"
	"github.com/patenteapp/patente/internal/screen"
	"github.com/patenteapp/patente/internal/store"
	"github.com/patenteapp/patente/internal/ui/layout"
	"github.com/patenteapp/patente/internal/ui/theme"
)

// modeLabels maps answer modes to their Arabic display names.
var modeLabels = map[string]string{
	string(quiz.ModeTrueFalse):  "تدريب صح/غلط",
	string(quiz.ModeUnderstand): "فهم الأسئلة",
	string(quiz.ModeLesson):     "أسئلة الدروس",
	string(quiz.ModeExam):       "الامتحانات",
}

// HistoryScreen lists past exam results, newest first, plus answer stats.
type HistoryScreen struct {
	results []exam.Result
	stats   map[string]store.AnswerStats
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen. Stats are loaded once on entry.
func New(log *examlog.Log, repo store.EventRepo) *HistoryScreen {
	h := &HistoryScreen{results: log.All()}

	stats, err := repo.AnswerStatsByMode(context.Background())
	if err != nil {
		h.errMsg = err.Error()
	} else {
		h.stats = stats
	}
	return h
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, h.viewResults())
	if len(h.stats) > 0 {
		sections = append(sections, h.viewStats())
	}
	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(h.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
}

func (h *HistoryScreen) viewResults() string {
	if len(h.results) == 0 {
		return theme.Hint.Render("لم تخض أي امتحان تجريبي بعد")
	}

	var b strings.Builder
	b.WriteString(theme.Italian.Render("سجل الامتحانات") + "\n\n")

	// Newest first.
	for i := len(h.results) - 1; i >= 0; i-- {
		r := h.results[i]
		verdict := theme.Correct.Render("ناجح")
		if !r.Passed {
			verdict = theme.Incorrect.Render("راسب")
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("%s   %2d/%d   %02d:%02d   ",
			r.Date.Format("2006-01-02 15:04"),
			r.Score, r.Total,
			r.TimeSpent/60, r.TimeSpent%60)) + verdict + "\n")
	}
	return b.String()
}

func (h *HistoryScreen) viewStats() string {
	modes := make([]string, 0, len(h.stats))
	for mode := range h.stats {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	var b strings.Builder
	b.WriteString(theme.Italian.Render("دقة الإجابات") + "\n\n")
	for _, mode := range modes {
		s := h.stats[mode]
		if s.Total == 0 {
			continue
		}
		label := modeLabels[mode]
		if label == "" {
			label = mode
		}
		pct := 100 * s.Correct / s.Total
		b.WriteString(theme.Body.Render(fmt.Sprintf("%s: %d/%d (%d%%)",
			label, s.Correct, s.Total, pct)) + "\n")
	}
	return b.String()
}

func (h *HistoryScreen) Title() string {
	return "سجل الامتحانات"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

// Package signs is the road-sign browser with a live text filter.
package signs

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/screen"
	"github.com/patenteapp/patente/internal/ui/components"
	"github.com/patenteapp/patente/internal/ui/layout"
	"github.com/patenteapp/patente/internal/ui/theme"
)

// categoryLabels maps sign categories to their Arabic display names.
var categoryLabels = map[content.SignCategory]string{
	content.SignWarning:     "إشارات الخطر",
	content.SignProhibition: "إشارات المنع",
	content.SignObligation:  "إشارات الإلزام",
	content.SignInformation: "إشارات الإرشاد",
}

// SignsScreen lists road signs filtered by the search box.
type SignsScreen struct {
	all      []content.Sign
	filtered []content.Sign
	filter   components.TextInput
	selected int
	reading  bool
}

var _ screen.Screen = (*SignsScreen)(nil)
var _ screen.KeyHintProvider = (*SignsScreen)(nil)

// New creates the sign browser over the full sign catalog.
func New(catalog *content.Repository) *SignsScreen {
	all := catalog.Signs()
	return &SignsScreen{
		all:      all,
		filtered: all,
		filter:   components.NewTextInput("بحث · cerca...", 40),
	}
}

func (s *SignsScreen) Init() tea.Cmd {
	return s.filter.Init()
}

func (s *SignsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.reading {
		if isKey {
			switch kmsg.String() {
			case "enter", "b":
				s.reading = false
			}
		}
		return s, nil
	}

	if isKey {
		switch kmsg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.filtered)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.filtered) > 0 {
				s.reading = true
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	s.applyFilter()
	return s, cmd
}

// applyFilter matches the query against Arabic and Italian names and the
// category label, case-insensitively.
func (s *SignsScreen) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	if query == "" {
		s.filtered = s.all
	} else {
		var out []content.Sign
		for _, sign := range s.all {
			if strings.Contains(strings.ToLower(sign.Name), query) ||
				strings.Contains(strings.ToLower(sign.NameIt), query) ||
				strings.Contains(strings.ToLower(categoryLabels[sign.Category]), query) {
				out = append(out, sign)
			}
		}
		s.filtered = out
	}

	if s.selected >= len(s.filtered) {
		s.selected = len(s.filtered) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *SignsScreen) View(width, height int) string {
	var body string
	if s.reading && len(s.filtered) > 0 {
		body = s.viewDetail(width)
	} else {
		body = s.viewList()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *SignsScreen) viewList() string {
	var b strings.Builder
	b.WriteString(s.filter.View() + "\n\n")

	if len(s.filtered) == 0 {
		b.WriteString(theme.Hint.Render("لا توجد نتائج"))
		return b.String()
	}

	for i, sign := range s.filtered {
		line := sign.NameIt + "  " + theme.Hint.Render(sign.Name+" · "+categoryLabels[sign.Category])
		if i == s.selected {
			b.WriteString("  " + theme.Selected.Render("▸ ") + theme.Selected.Render(sign.NameIt) +
				"  " + theme.Hint.Render(sign.Name+" · "+categoryLabels[sign.Category]) + "\n")
		} else {
			b.WriteString("    " + theme.Body.Render(line) + "\n")
		}
	}
	b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("%d من %d إشارة", len(s.filtered), len(s.all))))
	return b.String()
}

func (s *SignsScreen) viewDetail(width int) string {
	sign := s.filtered[s.selected]

	cw := width - 12
	if cw > 70 {
		cw = 70
	}
	if cw < 30 {
		cw = 30
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(sign.NameIt) + "\n")
	b.WriteString(theme.Subtitle.Render(sign.Name+" · "+categoryLabels[sign.Category]) + "\n\n")
	b.WriteString(theme.Body.Render(sign.Description) + "\n")
	if sign.RealExample != "" {
		b.WriteString("\n" + theme.Hint.Render("في الواقع: "+sign.RealExample) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("Enter للعودة إلى القائمة"))

	return theme.Card.Width(cw).Render(b.String())
}

func (s *SignsScreen) Title() string {
	return "إشارات المرور"
}

func (s *SignsScreen) KeyHints() []layout.KeyHint {
	if s.reading {
		return []layout.KeyHint{{Key: "Enter", Description: "List"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

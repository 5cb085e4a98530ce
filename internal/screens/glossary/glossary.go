// Package glossary is the Italian-Arabic driving vocabulary list.
package glossary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/patenteapp/patente/internal/content"
	"github.com/patenteapp/patente/internal/screen"
	"github.com/patenteapp/patente/internal/ui/layout"
	"github.com/patenteapp/patente/internal/ui/theme"
)

// GlossaryScreen shows the glossary with a scrolling selection.
type GlossaryScreen struct {
	items    []content.GlossaryItem
	selected int
}

var _ screen.Screen = (*GlossaryScreen)(nil)
var _ screen.KeyHintProvider = (*GlossaryScreen)(nil)

// New creates the glossary screen.
func New(catalog *content.Repository) *GlossaryScreen {
	return &GlossaryScreen{items: catalog.Glossary()}
}

func (g *GlossaryScreen) Init() tea.Cmd {
	return nil
}

func (g *GlossaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if g.selected > 0 {
			g.selected--
		}
	case "down", "j":
		if g.selected < len(g.items)-1 {
			g.selected++
		}
	}
	return g, nil
}

func (g *GlossaryScreen) View(width, height int) string {
	var b strings.Builder

	if len(g.items) == 0 {
		b.WriteString(theme.Hint.Render("القاموس فارغ"))
	}

	for i, item := range g.items {
		line := theme.Italian.Render(item.TermIt) + theme.Body.Render(" — "+item.TermAr)
		if i == g.selected {
			b.WriteString("  " + theme.Selected.Render("▸ ") + line + "\n")
			if item.Example != "" {
				b.WriteString("      " + theme.Hint.Render(item.Example) + "\n")
			}
		} else {
			b.WriteString("    " + line + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (g *GlossaryScreen) Title() string {
	return "القاموس"
}

func (g *GlossaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/patenteapp/patente/internal/ui/theme"
)

// TrueFalse is the Vero/Falso answer selector shown under a question.
type TrueFalse struct {
	CorrectAnswer bool
	Selected      bool // true = Vero
	Submitted     bool
	Chosen        bool

	// Reveal colors the options by correctness after submit. Practice
	// screens reveal; the exam answer sheet does not.
	Reveal bool
}

// NewTrueFalse creates a selector for a question with the given answer.
func NewTrueFalse(correctAnswer, reveal bool) TrueFalse {
	return TrueFalse{
		CorrectAnswer: correctAnswer,
		Selected:      true,
		Reveal:        reveal,
	}
}

// Update handles selection and submission keys.
func (t TrueFalse) Update(msg tea.Msg) (TrueFalse, tea.Cmd) {
	if t.Submitted {
		return t, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "left", "h", "v":
		t.Selected = true
	case "right", "l", "f":
		t.Selected = false
	case "enter":
		t.Submitted = true
		t.Chosen = t.Selected
	}

	return t, nil
}

// View renders the two options side by side.
func (t TrueFalse) View() string {
	vero := t.renderOption("صح · Vero", true)
	falso := t.renderOption("غلط · Falso", false)
	return lipgloss.JoinHorizontal(lipgloss.Top, vero, "   ", falso)
}

func (t TrueFalse) renderOption(label string, value bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 2)

	if t.Submitted && t.Reveal {
		switch {
		case value == t.CorrectAnswer:
			style = style.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true)
		case value == t.Chosen:
			style = style.Foreground(theme.Error).BorderForeground(theme.Error).Bold(true)
		default:
			style = style.Foreground(theme.TextDim)
		}
		return style.Render(label)
	}

	if value == t.Selected {
		style = style.Foreground(theme.Primary).BorderForeground(theme.Primary).Bold(true)
		return style.Render("▸ " + label)
	}
	return style.Render(label)
}

// IsCorrect reports whether the submitted choice matches the stored answer.
func (t TrueFalse) IsCorrect() bool {
	return t.Submitted && t.Chosen == t.CorrectAnswer
}

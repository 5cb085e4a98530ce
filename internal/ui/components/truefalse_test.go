package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestTrueFalseDefaultsToVero(t *testing.T) {
	tf := NewTrueFalse(true, true)
	if !tf.Selected {
		t.Error("expected Vero selected initially")
	}
	if tf.Submitted {
		t.Error("expected fresh selector unsubmitted")
	}
}

func TestTrueFalseSelection(t *testing.T) {
	tf := NewTrueFalse(true, true)

	tf, _ = tf.Update(keyPress('f'))
	if tf.Selected {
		t.Error("expected Falso selected after 'f'")
	}

	tf, _ = tf.Update(keyPress('v'))
	if !tf.Selected {
		t.Error("expected Vero selected after 'v'")
	}

	tf, _ = tf.Update(specialKey(tea.KeyRight))
	if tf.Selected {
		t.Error("expected Falso selected after right arrow")
	}

	tf, _ = tf.Update(specialKey(tea.KeyLeft))
	if !tf.Selected {
		t.Error("expected Vero selected after left arrow")
	}
}

func TestTrueFalseSubmit(t *testing.T) {
	tf := NewTrueFalse(false, true)

	tf, _ = tf.Update(keyPress('f'))
	tf, _ = tf.Update(specialKey(tea.KeyEnter))

	if !tf.Submitted {
		t.Fatal("expected submitted after enter")
	}
	if tf.Chosen {
		t.Error("expected chosen = Falso")
	}
	if !tf.IsCorrect() {
		t.Error("expected Falso to be correct")
	}
}

func TestTrueFalseLockedAfterSubmit(t *testing.T) {
	tf := NewTrueFalse(true, true)
	tf, _ = tf.Update(specialKey(tea.KeyEnter))

	tf, _ = tf.Update(keyPress('f'))
	if !tf.Selected {
		t.Error("expected selection frozen after submit")
	}
}

func TestTrueFalseIsCorrectBeforeSubmit(t *testing.T) {
	tf := NewTrueFalse(true, true)
	if tf.IsCorrect() {
		t.Error("unsubmitted selector must not report correct")
	}
}

package signs

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/patenteapp/patente/internal/content"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() *SignsScreen {
	catalog := content.NewRepository(content.Catalog{
		Signs: []content.Sign{
			{ID: "s1", Name: "قف", NameIt: "Stop", Category: content.SignProhibition},
			{ID: "s2", Name: "أفضلية", NameIt: "Dare precedenza", Category: content.SignProhibition},
			{ID: "s3", Name: "منعطف خطر", NameIt: "Curva pericolosa", Category: content.SignWarning},
		},
	})
	return New(catalog)
}

func typeQuery(s *SignsScreen, query string) {
	for _, r := range query {
		s.Update(keyPress(r))
	}
}

func TestUnfilteredShowsAll(t *testing.T) {
	s := testScreen()
	if len(s.filtered) != 3 {
		t.Errorf("filtered = %d, want 3", len(s.filtered))
	}
}

func TestFilterByItalianName(t *testing.T) {
	s := testScreen()

	typeQuery(s, "stop")

	if len(s.filtered) != 1 {
		t.Fatalf("filtered = %d, want 1", len(s.filtered))
	}
	if s.filtered[0].ID != "s1" {
		t.Errorf("filtered id = %s, want s1", s.filtered[0].ID)
	}
}

func TestFilterByArabicName(t *testing.T) {
	s := testScreen()

	typeQuery(s, "أفضلية")

	if len(s.filtered) != 1 || s.filtered[0].ID != "s2" {
		t.Errorf("filtered = %v, want only s2", s.filtered)
	}
}

func TestFilterByCategoryLabel(t *testing.T) {
	s := testScreen()

	typeQuery(s, "الخطر")

	if len(s.filtered) != 1 || s.filtered[0].ID != "s3" {
		t.Errorf("filtered = %v, want only s3", s.filtered)
	}
}

func TestFilterClampsSelection(t *testing.T) {
	s := testScreen()

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	if s.selected != 2 {
		t.Fatalf("selected = %d, want 2", s.selected)
	}

	typeQuery(s, "stop")
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0 after filter narrowed list", s.selected)
	}
}

func TestNoResults(t *testing.T) {
	s := testScreen()

	typeQuery(s, "zzz")

	if len(s.filtered) != 0 {
		t.Errorf("filtered = %d, want 0", len(s.filtered))
	}
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestDetailOpenClose(t *testing.T) {
	s := testScreen()

	s.Update(specialKey(tea.KeyEnter))
	if !s.reading {
		t.Fatal("expected detail view after enter")
	}

	// Keys other than enter/b stay in the detail view.
	s.Update(specialKey(tea.KeyDown))
	if !s.reading {
		t.Error("expected detail view to stay open on down")
	}

	s.Update(keyPress('b'))
	if s.reading {
		t.Error("expected list view after b")
	}
}

func TestEnterOnEmptyListIsNoop(t *testing.T) {
	s := testScreen()
	typeQuery(s, "zzz")

	s.Update(specialKey(tea.KeyEnter))
	if s.reading {
		t.Error("expected no detail view with empty list")
	}
}

package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/chevron/autocomplete"
)

func newPopupModel(t *testing.T, text string, items ...string) Model {
	t.Helper()
	m := New(Config{Text: text, Catalog: autocomplete.NewCatalog(items)})
	m = m.SetSize(30, 6)
	return press(m, tea.KeyEnd)
}

func TestPopup_RendersBelowCaret(t *testing.T) {
	m := newPopupModel(t, "", "alpha", "beta", "gamma")
	m = typeText(t, m, "<>")

	got := viewLines(m)[:4]
	want := []string{
		"<>",
		"   alpha",
		"   beta",
		"   gamma",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestPopup_HiddenWhenClosed(t *testing.T) {
	m := newPopupModel(t, "", "alpha")
	m = typeText(t, m, "<>")
	m = press(m, tea.KeyEsc)

	if strings.Contains(stripANSI(m.View()), "alpha") {
		t.Fatalf("popup rendered after cancel:\n%s", stripANSI(m.View()))
	}
}

func TestPopup_NoSuggestionsRow(t *testing.T) {
	m := newPopupModel(t, "", "alpha")
	m = typeText(t, m, "<>z")

	lines := viewLines(m)
	if got := strings.TrimSpace(lines[1]); got != NoSuggestions {
		t.Fatalf("empty row: got %q, want %q", got, NoSuggestions)
	}
	if got := strings.TrimSpace(lines[2]); got != "" {
		t.Fatalf("only one empty row expected, got %q", got)
	}
}

func TestPopup_OpensAboveWhenNoRoomBelow(t *testing.T) {
	m := New(Config{Text: "\n\n\n", Catalog: autocomplete.NewCatalog([]string{"alpha", "beta", "gamma"})})
	m = m.SetSize(30, 4)
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	m = typeText(t, m, "<>")

	got := viewLines(m)
	want := []string{
		"   alpha",
		"   beta",
		"   gamma",
		"<>",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestPopup_WindowKeepsHighlightVisible(t *testing.T) {
	m := New(Config{
		Catalog:        autocomplete.NewCatalog([]string{"alpha", "beta", "gamma"}),
		MaxVisibleRows: 2,
	})
	m = m.SetSize(30, 6)
	m = typeText(t, m, "<>")

	lines := viewLines(m)
	if lines[1] != "   alpha" || lines[2] != "   beta" || lines[3] != "" {
		t.Fatalf("initial window: %q", lines[:4])
	}

	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	lines = viewLines(m)
	if lines[1] != "   beta" || lines[2] != "   gamma" {
		t.Fatalf("scrolled window: %q", lines[:4])
	}
}

func TestPopup_WidthCapped(t *testing.T) {
	m := New(Config{
		Catalog:  autocomplete.NewCatalog([]string{"this is a react component"}),
		MaxWidth: 10,
	})
	m = m.SetSize(30, 4)
	m = typeText(t, m, "<>")

	// 10 cells: one pad, eight text cells, one pad.
	if got := viewLines(m)[1]; got != "   this is" {
		t.Fatalf("capped row: got %q, want %q", got, "   this is")
	}
}

func TestPopup_MouseClickCommitsRow(t *testing.T) {
	m := newPopupModel(t, "", "alpha", "beta", "gamma")
	m = typeText(t, m, "<>")

	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Buffer().Text(); got != "beta" {
		t.Fatalf("text: got %q, want %q", got, "beta")
	}
	if m.AutocompleteState().Active {
		t.Fatalf("session should be closed after click")
	}

	// The click is consumed; a release must not start a drag selection.
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if _, ok := m.Buffer().Selection(); ok {
		t.Fatalf("unexpected selection after popup click")
	}
}

func TestPopup_MouseHoverHighlights(t *testing.T) {
	m := newPopupModel(t, "", "alpha", "beta", "gamma")
	m = typeText(t, m, "<>")

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if got := m.AutocompleteState().Highlighted; got != 2 {
		t.Fatalf("highlighted: got %d, want %d", got, 2)
	}
	if got := m.Buffer().Text(); got != "<>" {
		t.Fatalf("hover must not edit, text %q", got)
	}
}

func TestPopup_ClickOnNoSuggestionsIsConsumed(t *testing.T) {
	m := newPopupModel(t, "", "alpha")
	m = typeText(t, m, "<>z")
	before := m.Buffer().Cursor()

	m, _ = m.Update(tea.MouseMsg{X: 5, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Buffer().Cursor(); got != before {
		t.Fatalf("cursor moved: got %v, want %v", got, before)
	}
	if !m.AutocompleteState().Active {
		t.Fatalf("session should stay open")
	}
}

func TestPopup_ClickOutsideMovesCaretAndInvalidates(t *testing.T) {
	m := newPopupModel(t, "ab ", "alpha")
	m = typeText(t, m, "<>")

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.AutocompleteState().Active {
		t.Fatalf("click before the marker must invalidate")
	}
	if got := m.Buffer().Cursor().Col; got != 0 {
		t.Fatalf("cursor: got %d, want 0", got)
	}
}

package editor

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style

	// Entity renders committed suggestions.
	Entity lipgloss.Style

	// Popup rows.
	PopupItem        lipgloss.Style
	PopupHighlighted lipgloss.Style
	PopupEmpty       lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	popup := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("236"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),

		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),

		Entity: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Background(lipgloss.Color("254")),

		PopupItem:        popup,
		PopupHighlighted: popup.Background(lipgloss.Color("25")).Foreground(lipgloss.Color("231")),
		PopupEmpty:       popup.Foreground(lipgloss.Color("245")).Italic(true),
	}
}

// WithEntityColor returns a copy of st with committed suggestions drawn in
// color.
func (st Style) WithEntityColor(color lipgloss.TerminalColor) Style {
	st.Entity = st.Entity.Foreground(color)
	return st
}

func isZeroStyle(st Style) bool { return reflect.DeepEqual(st, Style{}) }

// Package grapheme measures document runes in terminal cells.
//
// Document offsets are runes; rendering and hit testing work in cells. A
// rune's width comes from go-runewidth, with uniseg as a fallback for runes
// runewidth reports as zero-width but terminals still draw.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 4

// Step is the cell footprint of one rune.
type Step struct {
	Col   int // rune offset in the block
	Cell  int // first cell occupied
	Width int // cells occupied; 0 for combining marks
}

// TabAdvance returns the number of cells a tab at visualCol occupies.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if visualCol < 0 {
		visualCol = 0
	}
	return tabWidth - visualCol%tabWidth
}

// RuneWidth returns the cell width of r drawn at visualCol.
func RuneWidth(r rune, visualCol, tabWidth int) int {
	if r == '\t' {
		return TabAdvance(visualCol, tabWidth)
	}
	w := runewidth.RuneWidth(r)
	if w > 0 {
		return w
	}
	if r < 0x20 || r == 0x7f {
		return 0
	}
	if fallback := uniseg.StringWidth(string(r)); fallback > 0 {
		return fallback
	}
	return 0
}

// Layout returns one Step per rune, starting at cell 0, plus the total width.
func Layout(runes []rune, tabWidth int) ([]Step, int) {
	if len(runes) == 0 {
		return nil, 0
	}
	out := make([]Step, len(runes))
	cell := 0
	for i, r := range runes {
		w := RuneWidth(r, cell, tabWidth)
		out[i] = Step{Col: i, Cell: cell, Width: w}
		cell += w
	}
	return out, cell
}

// CellForCol returns the cell where a caret at rune offset col is drawn.
func CellForCol(steps []Step, total, col int) int {
	if col <= 0 || len(steps) == 0 {
		return 0
	}
	if col >= len(steps) {
		return total
	}
	return steps[col].Cell
}

// ColForCell maps a cell back to the nearest caret offset. A click on the
// right half of a wide rune lands after it.
func ColForCell(steps []Step, cell int) int {
	if cell <= 0 {
		return 0
	}
	for i, s := range steps {
		if s.Width == 0 {
			continue
		}
		if cell < s.Cell+s.Width {
			if cell-s.Cell >= (s.Width+1)/2 && s.Width > 1 {
				return i + 1
			}
			return i
		}
	}
	return len(steps)
}

// Width returns the cell width of s, measuring grapheme clusters so that
// emoji sequences count once.
func Width(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.StringWidth(s)
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(s)
}

package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/chevron/internal/grapheme"
)

// Gutter configures optional custom gutter rendering.
//
// When Width is nil, gutter rendering is disabled.
// When Cell is nil, gutter cells render as blanks.
type Gutter struct {
	Width func(ctx GutterWidthContext) int
	Cell  func(ctx GutterCellContext) GutterCell
}

type GutterWidthContext struct {
	LineCount int
	Focused   bool
}

type GutterCellContext struct {
	Row         int
	LineText    string
	Width       int
	DigitCount  int
	LineCount   int
	IsCursorRow bool
	Focused     bool
	// HasEntity is true when the block holds a committed suggestion.
	HasEntity bool
}

type GutterCell struct {
	// Segments are clipped/padded to the resolved gutter width.
	Segments []GutterSegment
}

type GutterSegment struct {
	Text string
	// Active renders the segment with Style.LineNumActive instead of
	// Style.LineNum.
	Active bool
	// Style optionally overrides both.
	Style *lipgloss.Style
}

// LineNumberGutter returns the built-in line-number gutter behavior.
func LineNumberGutter() Gutter {
	return Gutter{
		Width: func(ctx GutterWidthContext) int {
			return LineNumberWidth(ctx.LineCount)
		},
		Cell: func(ctx GutterCellContext) GutterCell {
			return GutterCell{Segments: []GutterSegment{LineNumberSegment(ctx)}}
		},
	}
}

// LineNumberWidth returns the default line-number gutter width for lineCount.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

// LineNumberSegment returns the default line-number segment for one row.
func LineNumberSegment(ctx GutterCellContext) GutterSegment {
	if ctx.Width <= 0 {
		return GutterSegment{}
	}
	digits := ctx.DigitCount
	if digits < 1 {
		digits = gutterDigits(ctx.LineCount)
	}
	return GutterSegment{
		Text:   fmt.Sprintf("%*d ", digits, ctx.Row+1),
		Active: ctx.Focused && ctx.IsCursorRow,
	}
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) resolvedGutterWidth() int {
	if m.cfg.Gutter.Width == nil || m.buf == nil {
		return 0
	}
	w := m.cfg.Gutter.Width(GutterWidthContext{
		LineCount: m.buf.Document().BlockCount(),
		Focused:   m.focused,
	})
	return maxInt(w, 0)
}

func (m Model) renderGutter(row, width int, lineText string, hasEntity bool) string {
	if width <= 0 {
		return ""
	}
	lineCount := m.buf.Document().BlockCount()
	cell := GutterCell{}
	if m.cfg.Gutter.Cell != nil {
		cell = m.cfg.Gutter.Cell(GutterCellContext{
			Row:         row,
			LineText:    lineText,
			Width:       width,
			DigitCount:  gutterDigits(lineCount),
			LineCount:   lineCount,
			IsCursorRow: row == m.buf.Cursor().Row,
			Focused:     m.focused,
			HasEntity:   hasEntity,
		})
	}

	st := m.cfg.Style
	var sb strings.Builder
	used := 0
	for _, seg := range cell.Segments {
		text := sanitizeSingleLine(seg.Text)
		if text == "" || used >= width {
			continue
		}
		if w := grapheme.Width(text); used+w > width {
			text = truncateCells(text, width-used)
		}
		style := st.LineNum
		if seg.Active {
			style = st.LineNumActive
		}
		if seg.Style != nil {
			style = seg.Style.Inherit(st.Gutter)
		}
		sb.WriteString(style.Render(text))
		used += grapheme.Width(text)
	}
	if used < width {
		sb.WriteString(st.Gutter.Render(strings.Repeat(" ", width-used)))
	}
	return sb.String()
}

package editor

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/buffer"
	"github.com/iw2rmb/chevron/internal/grapheme"
)

const (
	kindText = iota
	kindCursor
	kindSelection
	kindDecoration // kindDecoration+i is decorator i
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}
	doc := m.buf.Document()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	gw := m.resolvedGutterWidth()
	width := m.contentWidth()
	if m.viewport.Width <= 0 {
		// Not sized yet; render unclipped.
		width = 0
	}

	empty := doc.BlockCount() == 1 && doc.LineLen(0) == 0
	out := make([]string, 0, doc.BlockCount())
	for row := 0; row < doc.BlockCount(); row++ {
		blk := doc.Block(row)
		spans := decorateBlock(m.cfg.Decorators, blk, doc)

		var sb strings.Builder
		sb.WriteString(m.renderGutter(row, gw, blk.Text(), blockHasEntity(blk, doc)))
		if empty && m.cfg.Placeholder != "" {
			sb.WriteString(m.renderPlaceholder(width))
		} else {
			sb.WriteString(m.renderBlock(row, blk, spans, cursor, sel, selOK, width))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func blockHasEntity(blk buffer.Block, doc buffer.Document) bool {
	found := false
	autocomplete.Strategy(blk, doc, func(int, int) { found = true })
	return found
}

func (m *Model) renderPlaceholder(width int) string {
	st := m.cfg.Style
	text := sanitizeSingleLine(m.cfg.Placeholder)
	if width > 0 {
		text = truncateCells(text, width)
	}
	if !m.focused || text == "" {
		return st.Placeholder.Render(text)
	}
	runes := []rune(text)
	return st.Cursor.Render(string(runes[0])) + st.Placeholder.Render(string(runes[1:]))
}

func (m *Model) styleForKind(kind int) lipgloss.Style {
	st := m.cfg.Style
	switch kind {
	case kindCursor:
		return st.Cursor
	case kindSelection:
		return st.Selection
	case kindText:
		return st.Text
	default:
		i := kind - kindDecoration
		if i >= 0 && i < len(m.cfg.Decorators) {
			return m.cfg.Decorators[i].Style.Inherit(st.Text)
		}
		return st.Text
	}
}

// renderBlock draws one block clipped to [xOffset, xOffset+width) cells.
// A zero width means unclipped.
func (m *Model) renderBlock(
	row int,
	blk buffer.Block,
	spans []decoratedSpan,
	cursor buffer.Pos,
	sel buffer.Range,
	selOK bool,
	width int,
) string {
	runes := []rune(blk.Text())
	steps, total := grapheme.Layout(runes, m.cfg.TabWidth)

	hasCursor := m.focused && row == cursor.Row
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(runes))

	left := maxInt(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if width > 0 {
		right = left + width
	}

	var sb strings.Builder
	var run strings.Builder
	runKind := kindText
	emit := func(kind int, text string) {
		if kind != runKind && run.Len() > 0 {
			sb.WriteString(m.styleForKind(runKind).Render(run.String()))
			run.Reset()
		}
		runKind = kind
		run.WriteString(text)
	}

	for i, r := range runes {
		step := steps[i]
		kind := kindText
		switch {
		case hasCursor && i == cursor.Col:
			kind = kindCursor
		case hasSel && i >= selStart && i < selEnd:
			kind = kindSelection
		default:
			if d := decorationAt(spans, i); d >= 0 {
				kind = kindDecoration + d
			}
		}

		if step.Width == 0 {
			if unicode.IsControl(r) {
				continue
			}
			// Combining marks ride along with the previous rune.
			if step.Cell > left && step.Cell <= right {
				emit(kind, string(r))
			}
			continue
		}

		spanL := maxInt(step.Cell, left)
		spanR := minInt(step.Cell+step.Width, right)
		if spanL >= spanR {
			continue
		}
		text := string(r)
		if r == '\t' || spanR-spanL != step.Width {
			// Tabs expand to spaces; a clipped wide rune keeps alignment with blanks.
			text = strings.Repeat(" ", spanR-spanL)
		}
		emit(kind, text)
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if hasCursor && cursor.Col >= len(runes) && total >= left && total < right {
		emit(kindCursor, " ")
	}
	if run.Len() > 0 {
		sb.WriteString(m.styleForKind(runKind).Render(run.String()))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

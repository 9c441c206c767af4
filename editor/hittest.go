package editor

import (
	"github.com/iw2rmb/chevron/buffer"
	"github.com/iw2rmb/chevron/internal/grapheme"
)

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region. Gutter clicks map to
// col 0; x/y are clamped into document bounds.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}
	doc := m.buf.Document()
	row := clampInt(m.viewport.YOffset+y, 0, doc.BlockCount()-1)

	gw := m.resolvedGutterWidth()
	if x < gw {
		return buffer.Pos{Row: row, Col: 0}
	}
	cell := x - gw + maxInt(m.xOffset, 0)

	steps, _ := grapheme.Layout([]rune(doc.Block(row).Text()), m.cfg.TabWidth)
	return buffer.Pos{Row: row, Col: grapheme.ColForCell(steps, cell)}
}

// docToScreenPos maps a document position to viewport-local coordinates.
//
// ok is false when the mapped coordinate is outside the visible viewport.
func (m *Model) docToScreenPos(pos buffer.Pos) (x int, y int, ok bool) {
	if m.buf == nil {
		return 0, 0, false
	}
	pos = m.buf.Document().ClampPos(pos)

	gw := m.resolvedGutterWidth()
	x = m.cursorCell(pos) - maxInt(m.xOffset, 0) + gw
	y = pos.Row - m.viewport.YOffset

	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < gw || x >= m.viewportWidth() {
		return x, y, false
	}
	return x, y, true
}

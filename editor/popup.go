package editor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/chevron/internal/grapheme"
)

// NoSuggestions is the row shown when nothing matches the query.
const NoSuggestions = "No suggestions"

type popupLayout struct {
	x, y  int // viewport-local top-left cell
	width int
	first int // index of the first visible suggestion
	rows  int
	empty bool
}

// popupLayout places the popup below the anchor, or above it when there is
// more room there. The highlighted row is always inside the window.
func (m Model) popupLayout() (popupLayout, bool) {
	if !m.session.Active() || m.buf == nil {
		return popupLayout{}, false
	}
	vw, vh := m.viewportWidth(), m.visibleRowCount()
	if vw <= 0 || vh <= 0 {
		return popupLayout{}, false
	}
	anchor, _ := m.positioner.Anchor()

	items := m.session.Items()
	empty := len(items) == 0
	target := len(items)
	if empty {
		target = 1
	}
	target = minInt(target, m.cfg.MaxVisibleRows)

	below := maxInt(vh-(anchor.Y+1), 0)
	above := maxInt(anchor.Y, 0)
	showBelow := true
	rows := target
	if rows > below {
		if above >= rows {
			showBelow = false
		} else if above > below {
			showBelow = false
			rows = above
		} else {
			rows = below
		}
	}
	if rows <= 0 {
		return popupLayout{}, false
	}

	width := grapheme.Width(NoSuggestions)
	if !empty {
		width = 0
		for _, s := range items {
			width = maxInt(width, grapheme.Width(sanitizeSingleLine(s)))
		}
	}
	width = minInt(width+2, minInt(m.cfg.MaxWidth, vw))

	first := 0
	if h := m.session.Highlighted(); h >= rows {
		first = h - rows + 1
	}

	y := anchor.Y + 1
	if !showBelow {
		y = anchor.Y - rows
	}
	y = clampInt(y, 0, maxInt(vh-rows, 0))
	x := clampInt(anchor.X, 0, maxInt(vw-width, 0))

	return popupLayout{x: x, y: y, width: width, first: first, rows: rows, empty: empty}, true
}

func (m Model) renderPopup(base string) (string, bool) {
	lay, ok := m.popupLayout()
	if !ok {
		return "", false
	}
	st := m.cfg.Style

	rendered := make([]string, 0, lay.rows)
	if lay.empty {
		rendered = append(rendered, renderPopupRow(st.PopupEmpty.Render, NoSuggestions, lay.width))
	} else {
		items := m.session.Items()
		for i := lay.first; i < lay.first+lay.rows && i < len(items); i++ {
			render := st.PopupItem.Render
			if i == m.session.Highlighted() {
				render = st.PopupHighlighted.Render
			}
			row := renderPopupRow(render, items[i], lay.width)
			if m.cfg.Zones != nil {
				row = m.cfg.Zones.Mark(m.popupZoneID(i), row)
			}
			rendered = append(rendered, row)
		}
	}

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()

	return overlay.Composite(
		strings.Join(rendered, "\n"),
		base,
		overlay.Left,
		overlay.Top,
		leftFrame+lay.x,
		topFrame+lay.y,
	), true
}

func renderPopupRow(render func(...string) string, text string, width int) string {
	inner := truncateCells(sanitizeSingleLine(text), maxInt(width-2, 0))
	pad := maxInt(width-2-grapheme.Width(inner), 0)
	return render(" " + inner + strings.Repeat(" ", pad) + " ")
}

func (m Model) popupZoneID(i int) string {
	return fmt.Sprintf("chevron-popup-%s-%d", m.buf.ID(), i)
}

// popupHit reports whether msg lands on the popup and, if so, which
// suggestion row. index is -1 on the "No suggestions" row.
func (m Model) popupHit(msg tea.MouseMsg) (index int, inside bool) {
	lay, ok := m.popupLayout()
	if !ok {
		return -1, false
	}

	if m.cfg.Zones != nil && !lay.empty {
		for i := lay.first; i < lay.first+lay.rows; i++ {
			z := m.cfg.Zones.Get(m.popupZoneID(i))
			if z == nil || z.IsZero() {
				// Not scanned yet; use geometry.
				break
			}
			if z.InBounds(msg) {
				return i, true
			}
		}
	}

	if msg.X < lay.x || msg.X >= lay.x+lay.width || msg.Y < lay.y || msg.Y >= lay.y+lay.rows {
		return -1, false
	}
	if lay.empty {
		return -1, true
	}
	i := lay.first + (msg.Y - lay.y)
	if i >= m.session.Len() {
		return -1, true
	}
	return i, true
}

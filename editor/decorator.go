package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/buffer"
)

// Decorator marks character ranges of a block for distinct rendering.
//
// Strategy must be pure: it sees an immutable block and document and reports
// half-open [start, end) rune ranges through mark. Style renders every marked
// range; it should avoid layout-affecting options (padding/margin/width).
type Decorator struct {
	Strategy func(block buffer.Block, doc buffer.Document, mark func(start, end int))
	Style    lipgloss.Style
}

// EntityDecorator renders committed autocomplete entities with style.
func EntityDecorator(style lipgloss.Style) Decorator {
	return Decorator{Strategy: autocomplete.Strategy, Style: style}
}

type decoratedSpan struct {
	start, end int
	style      int // index into the decorator list
}

// decorateBlock runs every decorator over block. Earlier decorators win
// where ranges overlap.
func decorateBlock(decorators []Decorator, block buffer.Block, doc buffer.Document) []decoratedSpan {
	n := block.Len()
	if n == 0 || len(decorators) == 0 {
		return nil
	}
	var spans []decoratedSpan
	for i, d := range decorators {
		if d.Strategy == nil {
			continue
		}
		d.Strategy(block, doc, func(start, end int) {
			start = clampInt(start, 0, n)
			end = clampInt(end, start, n)
			if start == end {
				return
			}
			spans = append(spans, decoratedSpan{start: start, end: end, style: i})
		})
	}
	sort.SliceStable(spans, func(a, b int) bool {
		if spans[a].style != spans[b].style {
			return spans[a].style < spans[b].style
		}
		return spans[a].start < spans[b].start
	})
	return spans
}

// decorationAt returns the decorator index covering col, or -1.
func decorationAt(spans []decoratedSpan, col int) int {
	for _, sp := range spans {
		if col >= sp.start && col < sp.end {
			return sp.style
		}
	}
	return -1
}

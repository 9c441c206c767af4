package buffer

import "github.com/google/uuid"

type Options struct {
	HistoryLimit int    // default: 1000; negative disables undo
	DocID        string // default: random UUID
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer holds the current Document snapshot together with the caret,
// selection and undo history. It is the only mutable piece of the model:
// every edit swaps in a new Document value.
type Buffer struct {
	doc         Document
	id          string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	return NewFromDocument(NewDocument(text), opt)
}

// NewFromDocument wraps an existing snapshot. The caret starts at (0,0).
func NewFromDocument(doc Document, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if opt.DocID == "" {
		opt.DocID = uuid.NewString()
	}
	return &Buffer{
		doc: doc,
		id:  opt.DocID,
		opt: opt,
	}
}

// ID identifies the document across snapshots.
func (b *Buffer) ID() string { return b.id }

// Document returns the current snapshot. The value stays valid after later
// edits; it just stops being current.
func (b *Buffer) Document() Document { return b.doc }

func (b *Buffer) Text() string { return b.doc.Text() }

// Version increments on every effective change: text, cursor or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the document content changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	b.cursor = next
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// while still treating empty selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r and moves the caret to r.End.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, b.doc.BlockCount(), b.lineLen)
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	nextRange, nextOK := Range{}, false
	if next.active {
		nextRange, nextOK = NormalizeRange(clamped), true
	}

	cursorMoved := b.cursor != clamped.End
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) && !cursorMoved {
		b.sel = next
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	b.sel = next
	b.cursor = clamped.End
	b.version++
	b.commitChange(change)
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

func (b *Buffer) lineLen(row int) int { return b.doc.LineLen(row) }

func (b *Buffer) clampPos(p Pos) Pos { return b.doc.ClampPos(p) }

package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal is a plain edit made through the Buffer API.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourcePush is a snapshot swapped in with Push.
	ChangeSourcePush
	// ChangeSourceHistory is an undo or redo.
	ChangeSourceHistory
)

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective edit in a change transaction.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	cursorBefore    Pos
	selectionBefore SelectionState
	appliedEdits    []AppliedEdit
}

// LastChange returns the most recent effective change. Cursor and selection
// changes are reported with no AppliedEdits.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	if !sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{
		Active: true,
		Range:  r,
	}
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: selectionStateFromInternal(b.sel),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  selectionStateFromInternal(b.sel),
		AppliedEdits:    append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}

// replacementAppliedEdit reports the span that differs between before and
// after: the longest common prefix and suffix are trimmed off.
func replacementAppliedEdit(before, after Document) (AppliedEdit, bool) {
	a, b := []rune(before.Text()), []rune(after.Text())
	if string(a) == string(b) {
		return AppliedEdit{}, false
	}

	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	start := posAtOffset(a, prefix)
	return AppliedEdit{
		RangeBefore: Range{Start: start, End: posAtOffset(a, len(a)-suffix)},
		RangeAfter:  Range{Start: start, End: posAtOffset(b, len(b)-suffix)},
		InsertText:  string(b[prefix : len(b)-suffix]),
		DeletedText: string(a[prefix : len(a)-suffix]),
	}, true
}

// posAtOffset converts a rune offset into text (blocks joined by '\n') to
// a document position.
func posAtOffset(text []rune, off int) Pos {
	var p Pos
	for _, r := range text[:off] {
		if r == '\n' {
			p.Row++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}

package buffer

// InsertText inserts plain text at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replace(r, s, "")
}

// InsertRune inserts a single rune at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline splits the current block at the cursor, or replaces the
// active selection with a block break.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: one rune, or the block break
// before the cursor when it sits at column 0.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	if col > 0 {
		b.replace(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "", "")
		return
	}

	// Join with previous block.
	prevRow := row - 1
	b.replace(Range{Start: Pos{Row: prevRow, Col: b.lineLen(prevRow)}, End: b.cursor}, "", "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	lastRow := b.doc.BlockCount() - 1
	if row == lastRow && col == b.lineLen(lastRow) {
		return
	}

	if col < b.lineLen(row) {
		b.replace(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "", "")
		return
	}

	// Join with next block.
	b.replace(Range{Start: b.cursor, End: Pos{Row: row + 1, Col: 0}}, "", "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replace(r, "", "")
}

// DeleteRange deletes r as one undo step and leaves the cursor at its start.
func (b *Buffer) DeleteRange(r Range) bool {
	return b.replace(r, "", "")
}

func (b *Buffer) replace(r Range, text string, entity EntityKey) bool {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	nextDoc, nextCursor, applied, changed := b.doc.ReplaceRange(r, text, entity)
	if !changed {
		return false
	}

	b.doc = nextDoc
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return true
}

package buffer

// Apply applies a sequence of plain-text edits in order as one undo step.
// Each edit's range is interpreted against the document state at the time
// that edit is applied.
//
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Cursor moves to the end of the last applied (effective) edit.
// - Selection is cleared if any edit applies.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	doc := b.doc
	anyChanged := false
	lastCursor := b.cursor

	for _, e := range edits {
		next, nextCursor, applied, changed := doc.ReplaceRange(e.Range, e.Text, "")
		if !changed {
			continue
		}
		doc = next
		anyChanged = true
		lastCursor = nextCursor
		change.addAppliedEdit(applied)
	}

	if !anyChanged {
		return
	}

	b.doc = doc
	b.cursor = b.clampPos(lastCursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(change)
}

// Push makes doc the current snapshot as a single undo step, places the
// cursor at cursor and clears the selection. edits describe what changed
// and are reported through LastChange. Composite edits built from several
// Document transforms therefore undo in one step.
func (b *Buffer) Push(doc Document, cursor Pos, edits ...AppliedEdit) {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourcePush)

	b.doc = doc
	b.cursor = b.clampPos(cursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	for _, e := range edits {
		change.addAppliedEdit(e)
	}
	b.commitChange(change)
}

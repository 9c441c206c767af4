package buffer

type bufferSnapshot struct {
	doc    Document
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		doc:    b.doc,
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.doc = s.doc
	b.cursor = b.clampPos(s.cursor)

	if !s.sel.active {
		b.sel = selectionState{}
		return
	}

	anchor := b.clampPos(s.sel.anchor)
	end := b.clampPos(s.sel.end)
	if anchor == end {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: anchor, end: end}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

// pushBounded appends s and drops the oldest entries beyond limit.
func pushBounded(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if limit > 0 && len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the snapshot taken before the last edit. Entity tables
// travel with the document, so a reverted commit takes its entity along.
func (b *Buffer) Undo() bool {
	return b.travel(&b.hist.undo, &b.hist.redo)
}

func (b *Buffer) Redo() bool {
	return b.travel(&b.hist.redo, &b.hist.undo)
}

// travel pops the newest snapshot from src, pushes the current state onto
// dst and restores the popped snapshot as one history change.
func (b *Buffer) travel(src, dst *[]bufferSnapshot) bool {
	if len(*src) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange(ChangeSourceHistory)

	i := len(*src) - 1
	target := (*src)[i]
	*src = (*src)[:i]
	*dst = pushBounded(*dst, cur, b.opt.HistoryLimit)

	b.restore(target)
	b.version++
	b.textVersion++
	if applied, ok := replacementAppliedEdit(cur.doc, target.doc); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
	return true
}

package autocomplete

import "github.com/iw2rmb/chevron/buffer"

// EntityType is the entity type of committed suggestions.
const EntityType = "AUTOCOMPLETE"

// DataText is the entity data key holding the committed text.
const DataText = "text"

// Edit is the outcome of an entity transform: the new snapshot, where the
// caret goes, and what changed for change reporting.
type Edit struct {
	Doc     buffer.Document
	Caret   buffer.Pos
	Applied []buffer.AppliedEdit
}

// IsEntity reports whether key names an AUTOCOMPLETE entity in doc.
func IsEntity(doc buffer.Document, key buffer.EntityKey) bool {
	e, ok := doc.Entity(key)
	return ok && e.Type == EntityType
}

// InsertEntity replaces the trigger marker and query before caret with
// chosen, annotated with a new immutable AUTOCOMPLETE entity. The caret
// lands right after the inserted text. ok is false, and doc is returned
// untouched, when there is no marker before the caret in its block or
// chosen is empty.
func InsertEntity(doc buffer.Document, caret buffer.Pos, chosen string) (Edit, bool) {
	caret = doc.ClampPos(caret)
	if chosen == "" || containsLineBreak(chosen) {
		return Edit{Doc: doc, Caret: caret}, false
	}
	start, ok := FindMarkerInBlock(doc.Block(caret.Row), caret.Col)
	if !ok {
		return Edit{Doc: doc, Caret: caret}, false
	}

	next, _, removed, _ := doc.RemoveRange(buffer.Range{
		Start: buffer.Pos{Row: caret.Row, Col: start},
		End:   caret,
	})
	next, key := next.CreateEntity(EntityType, buffer.Immutable, map[string]string{DataText: chosen})
	next, after, inserted, _ := next.InsertText(buffer.Pos{Row: caret.Row, Col: start}, chosen, key)

	return Edit{
		Doc:     next,
		Caret:   after,
		Applied: []buffer.AppliedEdit{removed, inserted},
	}, true
}

// RemoveEntity deletes the whole AUTOCOMPLETE run that ends at or contains
// the rune before caret. It declines when that rune is plain text or
// belongs to another entity type, leaving single-rune deletion to the
// caller.
func RemoveEntity(doc buffer.Document, caret buffer.Pos) (Edit, bool) {
	caret = doc.ClampPos(caret)
	return removeEntityAt(doc, caret, caret.Col-1)
}

// RemoveEntityForward is RemoveEntity for the rune after caret.
func RemoveEntityForward(doc buffer.Document, caret buffer.Pos) (Edit, bool) {
	caret = doc.ClampPos(caret)
	return removeEntityAt(doc, caret, caret.Col)
}

func removeEntityAt(doc buffer.Document, caret buffer.Pos, col int) (Edit, bool) {
	start, end, key, ok := doc.EntityRangeAt(caret.Row, col)
	if !ok || !IsEntity(doc, key) {
		return Edit{Doc: doc, Caret: caret}, false
	}
	next, at, removed, changed := doc.RemoveRange(buffer.Range{
		Start: buffer.Pos{Row: caret.Row, Col: start},
		End:   buffer.Pos{Row: caret.Row, Col: end},
	})
	if !changed {
		return Edit{Doc: doc, Caret: caret}, false
	}
	return Edit{Doc: next, Caret: at, Applied: []buffer.AppliedEdit{removed}}, true
}

// EntityRange returns the AUTOCOMPLETE run that strictly contains caret,
// i.e. the runes on both sides of caret share one entity key.
func EntityRange(doc buffer.Document, caret buffer.Pos) (start, end int, ok bool) {
	if caret.Col <= 0 {
		return 0, 0, false
	}
	blk := doc.Block(caret.Row)
	left, right := blk.EntityAt(caret.Col-1), blk.EntityAt(caret.Col)
	if left == "" || left != right || !IsEntity(doc, left) {
		return 0, 0, false
	}
	start, end, _, ok = doc.EntityRangeAt(caret.Row, caret.Col)
	return start, end, ok
}

// SnapOutOfEntity moves a caret that landed inside an AUTOCOMPLETE run to
// the run's end when forward, or its start otherwise.
func SnapOutOfEntity(doc buffer.Document, caret buffer.Pos, forward bool) buffer.Pos {
	start, end, ok := EntityRange(doc, caret)
	if !ok {
		return caret
	}
	if forward {
		return buffer.Pos{Row: caret.Row, Col: end}
	}
	return buffer.Pos{Row: caret.Row, Col: start}
}

// Strategy marks every AUTOCOMPLETE run in block. It has the shape of an
// editor decorator strategy.
func Strategy(block buffer.Block, doc buffer.Document, mark func(start, end int)) {
	block.FindEntityRanges(func(c buffer.Char) bool {
		return c.Entity != "" && IsEntity(doc, c.Entity)
	}, mark)
}

package autocomplete

import "github.com/iw2rmb/chevron/buffer"

// MatchKind is the outcome of Extract.
type MatchKind uint8

const (
	// MatchInvalidate closes the session without touching the document.
	MatchInvalidate MatchKind = iota
	// MatchContinue keeps the session open with a new query.
	MatchContinue
)

func (k MatchKind) String() string {
	switch k {
	case MatchContinue:
		return "continue"
	case MatchInvalidate:
		return "invalidate"
	default:
		return "unknown"
	}
}

// MatchResult carries the query when Kind is MatchContinue.
type MatchResult struct {
	Kind  MatchKind
	Query string
}

// Continue builds a MatchContinue result.
func Continue(query string) MatchResult { return MatchResult{Kind: MatchContinue, Query: query} }

// Invalidate builds a MatchInvalidate result.
func Invalidate() MatchResult { return MatchResult{Kind: MatchInvalidate} }

// FindMarker returns the rune offset of the last trigger marker in blockText
// that ends at or before caret.
func FindMarker(blockText string, caret int) (start int, ok bool) {
	return findMarkerRunes([]rune(blockText), caret, nil)
}

// FindMarkerInBlock is FindMarker over an annotated block: marker runes
// that belong to an entity never form a marker.
func FindMarkerInBlock(block buffer.Block, caret int) (start int, ok bool) {
	return findMarkerRunes([]rune(block.Text()), caret, annotatedIn(block))
}

// annotatedIn reports whether offset i of block carries an entity.
func annotatedIn(block buffer.Block) func(i int) bool {
	return func(i int) bool { return block.EntityAt(i) != "" }
}

func findMarkerRunes(runes []rune, caret int, annotated func(i int) bool) (int, bool) {
	if caret > len(runes) {
		caret = len(runes)
	}
	for i := caret - 2; i >= 0; i-- {
		if runes[i] != markerOpen || runes[i+1] != markerClose {
			continue
		}
		if annotated != nil && (annotated(i) || annotated(i+1)) {
			continue
		}
		return i, true
	}
	return 0, false
}

// Extract recomputes the in-progress query for a session whose caret sits at
// caret (rune offset) in blockText.
func Extract(blockText string, caret int) MatchResult {
	return extractRunes([]rune(blockText), caret, nil)
}

// ExtractBlock is Extract over an annotated block; see FindMarkerInBlock.
func ExtractBlock(block buffer.Block, caret int) MatchResult {
	return extractRunes([]rune(block.Text()), caret, annotatedIn(block))
}

func extractRunes(runes []rune, caret int, annotated func(i int) bool) MatchResult {
	if caret < 0 || caret > len(runes) {
		return Invalidate()
	}
	start, ok := findMarkerRunes(runes, caret, annotated)
	if !ok {
		return Invalidate()
	}
	query := string(runes[start+len(Marker) : caret])
	if containsLineBreak(query) {
		return Invalidate()
	}
	return Continue(query)
}

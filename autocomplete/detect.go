package autocomplete

import (
	"strings"

	"github.com/iw2rmb/chevron/buffer"
)

// Marker is the two-rune trigger sequence.
const Marker = "<>"

const (
	markerOpen  = '<'
	markerClose = '>'
)

// Detect reports whether inserting inserted at caretBefore (a rune offset
// into blockTextBefore) completes the trigger marker. Only a single '>' typed
// directly after '<' counts. Offsets outside the block return false.
func Detect(inserted string, caretBefore int, blockTextBefore string) bool {
	if inserted != string(markerClose) {
		return false
	}
	if caretBefore <= 0 {
		return false
	}
	runes := []rune(blockTextBefore)
	if caretBefore > len(runes) {
		return false
	}
	return runes[caretBefore-1] == markerOpen
}

// DetectInBlock is Detect over an annotated block. A '<' that belongs to an
// entity is part of committed text and never opens a session.
func DetectInBlock(inserted string, caretBefore int, blockBefore buffer.Block) bool {
	if !Detect(inserted, caretBefore, blockBefore.Text()) {
		return false
	}
	return blockBefore.EntityAt(caretBefore-1) == ""
}

// containsLineBreak reports whether s would span more than one block.
func containsLineBreak(s string) bool {
	return strings.ContainsAny(s, "\n\r")
}

// Package buffer implements the document model used by the editor.
//
// A Document is an immutable snapshot: an ordered list of blocks (one per
// logical line) whose characters may carry an entity annotation, plus the
// entity table those annotations point into. Every edit returns a new
// Document; a Buffer holds the current snapshot together with the caret,
// selection and undo history.
//
// Coordinates are 0-based (Row, Col): Row is the block index, Col a rune
// offset within the block. Ranges are half-open: [Start, End).
package buffer

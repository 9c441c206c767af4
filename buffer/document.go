package buffer

import "strings"

// Char is one rune of a block plus its optional entity annotation.
type Char struct {
	Rune   rune
	Entity EntityKey
}

// Block is an immutable line of characters.
type Block struct {
	chars []Char
}

// NewBlock builds an unannotated block from a single line of text.
func NewBlock(text string) Block {
	return Block{chars: charsFromText(text, "")}
}

func (b Block) Len() int { return len(b.chars) }

func (b Block) Text() string {
	if len(b.chars) == 0 {
		return ""
	}
	rs := make([]rune, len(b.chars))
	for i, c := range b.chars {
		rs[i] = c.Rune
	}
	return string(rs)
}

// Char returns the character at offset i.
func (b Block) Char(i int) (Char, bool) {
	if i < 0 || i >= len(b.chars) {
		return Char{}, false
	}
	return b.chars[i], true
}

// EntityAt returns the entity key of the character at offset i, or "".
func (b Block) EntityAt(i int) EntityKey {
	c, ok := b.Char(i)
	if !ok {
		return ""
	}
	return c.Entity
}

// FindEntityRanges reports every maximal run of characters sharing one
// entity key for which filter returns true, as half-open [start, end)
// offsets, in order.
func (b Block) FindEntityRanges(filter func(Char) bool, cb func(start, end int)) {
	if cb == nil {
		return
	}
	n := len(b.chars)
	for i := 0; i < n; {
		j := i + 1
		for j < n && b.chars[j].Entity == b.chars[i].Entity {
			j++
		}
		if filter == nil || filter(b.chars[i]) {
			cb(i, j)
		}
		i = j
	}
}

func charsFromText(text string, entity EntityKey) []Char {
	if text == "" {
		return nil
	}
	out := make([]Char, 0, len(text))
	for _, r := range text {
		out = append(out, Char{Rune: r, Entity: entity})
	}
	return out
}

// Document is an immutable snapshot of editable content.
//
// The zero value is a document with a single empty block.
type Document struct {
	blocks     []Block
	entities   map[EntityKey]Entity
	lastEntity int
}

// NewDocument splits text on '\n' into unannotated blocks.
func NewDocument(text string) Document {
	parts := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(parts))
	for _, p := range parts {
		blocks = append(blocks, NewBlock(p))
	}
	return Document{blocks: blocks}
}

func (d Document) blockList() []Block {
	if len(d.blocks) == 0 {
		return []Block{{}}
	}
	return d.blocks
}

// BlockCount returns the number of blocks, which is always at least 1.
func (d Document) BlockCount() int { return len(d.blockList()) }

// Block returns the block at row, or an empty block when row is out of range.
func (d Document) Block(row int) Block {
	blocks := d.blockList()
	if row < 0 || row >= len(blocks) {
		return Block{}
	}
	return blocks[row]
}

// LineLen returns the rune length of the block at row.
func (d Document) LineLen(row int) int { return d.Block(row).Len() }

// Text returns the plain text of the document, blocks joined by '\n'.
func (d Document) Text() string {
	blocks := d.blockList()
	var sb strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(blk.Text())
	}
	return sb.String()
}

// ClampPos clamps p into the document.
func (d Document) ClampPos(p Pos) Pos {
	return ClampPos(p, d.BlockCount(), d.LineLen)
}

// TextInRange returns the plain text covered by r.
func (d Document) TextInRange(r Range) string {
	r = NormalizeRange(ClampRange(r, d.BlockCount(), d.LineLen))
	if r.IsEmpty() {
		return ""
	}
	blocks := d.blockList()
	if r.Start.Row == r.End.Row {
		return textOfChars(blocks[r.Start.Row].chars[r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		chars := blocks[row].chars
		from, to := 0, len(chars)
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(textOfChars(chars[from:to]))
	}
	return sb.String()
}

func textOfChars(chars []Char) string {
	rs := make([]rune, len(chars))
	for i, c := range chars {
		rs[i] = c.Rune
	}
	return string(rs)
}

// ReplaceRange returns a copy of d with r replaced by text. Every inserted
// rune is annotated with entity ("" for plain text); '\n' in text splits
// blocks. next is the position right after the inserted text. changed is
// false when the edit would not alter the document, in which case the
// returned document is d itself.
func (d Document) ReplaceRange(r Range, text string, entity EntityKey) (out Document, next Pos, applied AppliedEdit, changed bool) {
	blocks := d.blockList()
	r = NormalizeRange(ClampRange(r, len(blocks), d.LineLen))
	if r.IsEmpty() && text == "" {
		return d, r.Start, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	parts := strings.Split(text, "\n")
	ins := make([][]Char, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, charsFromText(p, entity))
	}

	if startRow == endRow && len(ins) == 1 && sameChars(blocks[startRow].chars[startCol:endCol], ins[0]) {
		return d, r.End, AppliedEdit{}, false
	}

	deletedText := d.TextInRange(r)

	prefix := blocks[startRow].chars[:startCol]
	suffix := blocks[endRow].chars[endCol:]

	repl := make([]Block, 0, len(ins))
	if len(ins) == 1 {
		line := make([]Char, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, Block{chars: line})
		next = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]Char, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, Block{chars: first})

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, Block{chars: append([]Char(nil), ins[i]...)})
		}

		lastPart := ins[len(ins)-1]
		last := make([]Char, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, Block{chars: last})

		next = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	merged := make([]Block, 0, len(blocks)-(endRow-startRow+1)+len(repl))
	merged = append(merged, blocks[:startRow]...)
	merged = append(merged, repl...)
	merged = append(merged, blocks[endRow+1:]...)

	out = d
	out.blocks = merged
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: next},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return out, next, applied, true
}

// RemoveRange returns a copy of d with r deleted.
func (d Document) RemoveRange(r Range) (Document, Pos, AppliedEdit, bool) {
	return d.ReplaceRange(r, "", "")
}

// InsertText returns a copy of d with text inserted at p, annotated with entity.
func (d Document) InsertText(p Pos, text string, entity EntityKey) (Document, Pos, AppliedEdit, bool) {
	return d.ReplaceRange(Range{Start: p, End: p}, text, entity)
}

func sameChars(a, b []Char) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package buffer

import "cmp"

// Pos is a caret position: Row is the block index, Col the rune offset
// inside that block. Both are 0-based.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

// ComparePos orders positions by row, then by rune column.
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

// NormalizeRange returns r with Start <= End.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p lies in the normalized half-open range.
func (r Range) Contains(p Pos) bool {
	r = NormalizeRange(r)
	return ComparePos(p, r.Start) >= 0 && ComparePos(p, r.End) < 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// ClampPos clamps p so that 0 <= Row < rowCount and 0 <= Col <= lineLen(Row).
// A rowCount below 1 is treated as 1; a nil lineLen pins Col to 0.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)
	limit := 0
	if lineLen != nil {
		limit = max(lineLen(row), 0)
	}
	return Pos{Row: row, Col: clampInt(p.Col, 0, limit)}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}

package core

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (rune index in the line)
}

// Before reports whether p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Row < other.Row || (p.Row == other.Row && p.Col < other.Col)
}

// NormalizeSelection ensures start is before end, line by line, then column
// by column.
func NormalizeSelection(p1, p2 Position) (start, end Position) {
	if p1.Row < p2.Row || (p1.Row == p2.Row && p1.Col <= p2.Col) {
		return p1, p2
	}
	return p2, p1
}

// firstNonBlankCol returns the column of the first non-whitespace rune on
// the given line, or 0 when the line is blank.
func firstNonBlankCol(buffer Buffer, row int) int {
	for i, r := range buffer.GetLineRunes(row) {
		if !isWhiteSpace(r) {
			return i
		}
	}
	return 0
}

// clampRow keeps a row index inside the buffer.
func clampRow(buffer Buffer, row int) int {
	if row < 0 {
		return 0
	}
	if last := buffer.LineCount() - 1; row > last {
		return max(last, 0)
	}
	return row
}

// clampColNormal keeps a column on a character of the given line
// ([0, len-1]), the resting range outside insertion contexts.
func clampColNormal(buffer Buffer, row, col int) int {
	lineLen := buffer.LineRuneCount(row)
	if lineLen == 0 {
		return 0
	}
	if col < 0 {
		return 0
	}
	if col > lineLen-1 {
		return lineLen - 1
	}
	return col
}

// clampColInsert keeps a column inside [0, len], allowing the past-end
// position used while inserting.
func clampColInsert(buffer Buffer, row, col int) int {
	lineLen := buffer.LineRuneCount(row)
	if col < 0 {
		return 0
	}
	if col > lineLen {
		return lineLen
	}
	return col
}

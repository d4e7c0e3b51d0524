package core

// Cursor represents the current position for editing operations
type Cursor struct {
	Position  Position // Current position (row, column)
	Preferred int      // Preferred column for vertical movement (sticky column)
}

// ClampToLine keeps the column on a character of the current line, the
// valid resting range outside insertion contexts.
func (c *Cursor) ClampToLine(buffer Buffer) {
	c.Position.Col = clampColNormal(buffer, c.Position.Row, c.Position.Col)
}

// MoveUp moves the cursor up by count lines, preserving the sticky column
// where the target line is long enough.
func (c *Cursor) MoveUp(buffer Buffer, count int) error {
	if c.Position.Row <= 0 {
		return ErrStartOfBuffer
	}
	for range count {
		if c.Position.Row <= 0 {
			break
		}
		c.Position.Row--
	}
	c.settleVertical(buffer)
	return nil
}

// MoveDown moves the cursor down by count lines, preserving the sticky
// column where the target line is long enough.
func (c *Cursor) MoveDown(buffer Buffer, count int) error {
	if c.Position.Row >= buffer.LineCount()-1 {
		return ErrEndOfBuffer
	}
	for range count {
		if c.Position.Row >= buffer.LineCount()-1 {
			break
		}
		c.Position.Row++
	}
	c.settleVertical(buffer)
	return nil
}

// settleVertical lands the column after a row change: the sticky column when
// reachable, otherwise the end of the new line. The sticky column itself is
// kept so a later vertical move can reclaim it.
func (c *Cursor) settleVertical(buffer Buffer) {
	c.Position.Col = c.Preferred
	lineLen := buffer.LineRuneCount(c.Position.Row)
	if c.Position.Col >= lineLen {
		c.Position.Col = max(lineLen-1, 0)
	}
}

// SetCol places the cursor on a column and resets the sticky column to it.
func (c *Cursor) SetCol(col int) {
	c.Position.Col = col
	c.Preferred = col
}

// MoveToLineStart moves the cursor to the start of the current line (col 0)
func (c *Cursor) MoveToLineStart() {
	c.SetCol(0)
}

// MoveToFirstNonBlank moves the cursor to the first non-whitespace character
func (c *Cursor) MoveToFirstNonBlank(buffer Buffer) {
	c.SetCol(firstNonBlankCol(buffer, c.Position.Row))
}

// MoveToLineEnd moves the cursor to the last character of the current line
func (c *Cursor) MoveToLineEnd(buffer Buffer) {
	c.SetCol(max(buffer.LineRuneCount(c.Position.Row)-1, 0))
}

// MoveToAfterLineEnd moves the cursor one past the last character, the
// append position used when entering insert mode with A.
func (c *Cursor) MoveToAfterLineEnd(buffer Buffer) {
	c.SetCol(buffer.LineRuneCount(c.Position.Row))
}

package core

type insertMode struct{}

func NewInsertMode() EditorMode {
	return &insertMode{}
}

func (m *insertMode) Name() Mode {
	return InsertMode
}

func (m *insertMode) Enter(e Editor, buffer Buffer) {
	e.UpdateStatus("-- INSERT --")

	// A change of a visual selection lands here with the anchor still set
	state := e.GetState()
	if state.VisualStart.Row != -1 {
		state.VisualStart = Position{-1, -1}
		e.SetState(state)
	}
}

func (m *insertMode) Exit(e Editor, buffer Buffer) {
	// Leaving insert commits the change-repeat recording and steps the
	// cursor back onto the last typed character.
	e.StopChangeRecording()

	cursor := buffer.GetCursor()
	cursor.SetCol(max(cursor.Position.Col-1, 0))
	buffer.SetCursor(cursor)
}

func (m *insertMode) HandleKey(e Editor, buffer Buffer, key KeyEvent) *EditorError {
	switch key.Key {
	case KeyEscape:
		e.SetNormalMode()
		return nil

	case KeyEnter:
		// A bare newline stays in the buffer; submit is ctrl+enter only
		return e.InsertHandler().InsertNewline(buffer)

	case KeyBackspace:
		return e.InsertHandler().Backspace(buffer)

	case KeyDelete:
		cursor := buffer.GetCursor()
		if cursor.Position.Col < buffer.LineRuneCount(cursor.Position.Row) {
			return buffer.DeleteRunesAt(cursor.Position.Row, cursor.Position.Col, 1)
		}
		return nil

	case KeyTab:
		return e.InsertHandler().InsertRune(buffer, '\t')

	case KeySpace:
		return e.InsertHandler().InsertRune(buffer, ' ')

	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyHome, KeyEnd:
		m.moveCursor(buffer, key)
		return nil
	}

	if key.IsRune() && key.Modifiers&ModCtrl == 0 {
		return e.InsertHandler().InsertRune(buffer, key.Rune)
	}
	return nil
}

// moveCursor handles arrow navigation without leaving insert mode. The
// column may rest one past the line end here.
func (m *insertMode) moveCursor(buffer Buffer, key KeyEvent) {
	cursor := buffer.GetCursor()
	row := cursor.Position.Row

	switch key.Key {
	case KeyLeft:
		cursor.SetCol(max(cursor.Position.Col-1, 0))
	case KeyRight:
		cursor.SetCol(min(cursor.Position.Col+1, buffer.LineRuneCount(row)))
	case KeyUp:
		cursor.MoveUp(buffer, 1)
		cursor.SetCol(clampColInsert(buffer, cursor.Position.Row, cursor.Position.Col))
	case KeyDown:
		cursor.MoveDown(buffer, 1)
		cursor.SetCol(clampColInsert(buffer, cursor.Position.Row, cursor.Position.Col))
	case KeyHome:
		cursor.MoveToLineStart()
	case KeyEnd:
		cursor.MoveToAfterLineEnd(buffer)
	}
	buffer.SetCursor(cursor)
}

// bufferInsertDelegate is the default insert-mode text sink: it writes
// straight into the buffer. Hosts with their own line-editing widget
// replace it via SetInsertDelegate.
type bufferInsertDelegate struct{}

func (d *bufferInsertDelegate) InsertRune(buffer Buffer, r rune) *EditorError {
	cursor := buffer.GetCursor()
	if err := buffer.InsertRunesAt(cursor.Position.Row, cursor.Position.Col, []rune{r}); err != nil {
		return &EditorError{id: ErrFailedToInsertTextId, err: err}
	}
	cursor = buffer.GetCursor()
	cursor.SetCol(cursor.Position.Col + 1)
	buffer.SetCursor(cursor)
	return nil
}

func (d *bufferInsertDelegate) InsertNewline(buffer Buffer) *EditorError {
	cursor := buffer.GetCursor()
	row := cursor.Position.Row
	col := clampColInsert(buffer, row, cursor.Position.Col)

	line := buffer.GetLineRunes(row)
	head := string(line[:col])
	tail := string(line[col:])

	lines := buffer.GetLines()
	newLines := make([]string, 0, len(lines)+1)
	newLines = append(newLines, lines[:row]...)
	newLines = append(newLines, head, tail)
	newLines = append(newLines, lines[row+1:]...)
	buffer.SetLines(newLines)

	cursor.Position.Row = row + 1
	cursor.SetCol(0)
	buffer.SetCursor(cursor)
	return nil
}

func (d *bufferInsertDelegate) Backspace(buffer Buffer) *EditorError {
	cursor := buffer.GetCursor()
	row, col := cursor.Position.Row, cursor.Position.Col

	if col > 0 {
		if err := buffer.DeleteRunesAt(row, col-1, 1); err != nil {
			return err
		}
		cursor = buffer.GetCursor()
		cursor.SetCol(col - 1)
		buffer.SetCursor(cursor)
		return nil
	}

	if row == 0 {
		return nil
	}

	// Backspace at a line start merges with the previous line
	lines := buffer.GetLines()
	prevLen := len([]rune(lines[row-1]))
	merged := lines[row-1] + lines[row]

	newLines := make([]string, 0, len(lines)-1)
	newLines = append(newLines, lines[:row-1]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, lines[row+1:]...)
	buffer.SetLines(newLines)

	cursor.Position.Row = row - 1
	cursor.SetCol(prevLen)
	buffer.SetCursor(cursor)
	return nil
}

package core

// replaceCharMode waits for exactly one literal character and overwrites
// count characters under the cursor with it.
type replaceCharMode struct {
	count int
}

func NewReplaceCharMode() EditorMode {
	return &replaceCharMode{}
}

func (m *replaceCharMode) Name() Mode {
	return ReplaceCharMode
}

func (m *replaceCharMode) Enter(e Editor, buffer Buffer) {
	state := e.GetState()
	m.count = 1
	if state.PendingCount != nil {
		m.count = max(*state.PendingCount, 1)
	}
	e.UpdateCommand("r")
}

func (m *replaceCharMode) Exit(e Editor, buffer Buffer) {}

func (m *replaceCharMode) HandleKey(e Editor, buffer Buffer, key KeyEvent) *EditorError {
	defer func() {
		e.ResetPending()
		e.SetNormalMode()
	}()

	if key.Key == KeyEscape {
		return nil
	}

	replacement := key.Rune
	if key.Key == KeySpace {
		replacement = ' '
	}
	if replacement == 0 {
		return nil
	}

	cursor := buffer.GetCursor()
	row, col := cursor.Position.Row, cursor.Position.Col
	line := buffer.GetLineRunes(row)

	// The whole run must fit on the line or nothing is replaced
	if col+m.count > len(line) {
		return nil
	}

	e.PushUndo()
	for i := range m.count {
		line[col+i] = replacement
	}
	lines := buffer.GetLines()
	lines[row] = string(line)
	buffer.SetLines(lines)

	cursor.SetCol(col + m.count - 1)
	buffer.SetCursor(cursor)
	return nil
}

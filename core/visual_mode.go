package core

// visualMode covers both the charwise and linewise selection modes; the
// selection is always [anchor, cursor] in document order, so motions
// extend it implicitly.
type visualMode struct {
	linewise bool
}

func NewVisualMode() EditorMode {
	return &visualMode{}
}

func (m *visualMode) Name() Mode {
	if m.linewise {
		return VisualLineMode
	}
	return VisualMode
}

func (m *visualMode) Enter(e Editor, buffer Buffer) {
	if m.linewise {
		e.UpdateStatus("-- VISUAL LINE --")
	} else {
		e.UpdateStatus("-- VISUAL --")
	}

	// Keep an anchor set by the sibling visual mode; otherwise the
	// selection starts at the pre-entry cursor position.
	state := e.GetState()
	if state.VisualStart.Row == -1 {
		state.VisualStart = buffer.GetCursor().Position
		e.SetState(state)
	}
}

func (m *visualMode) Exit(e Editor, buffer Buffer) {}

func (m *visualMode) HandleKey(e Editor, buffer Buffer, key KeyEvent) *EditorError {
	state := e.GetState()

	if key.Key == KeyEscape {
		e.SetNormalMode()
		return nil
	}

	if key.IsRune() && key.Rune >= '0' && key.Rune <= '9' &&
		!(key.Rune == '0' && state.PendingCount == nil) {
		n := 0
		if state.PendingCount != nil {
			n = *state.PendingCount
		}
		n = n*10 + int(key.Rune-'0')
		state.PendingCount = &n
		e.SetState(state)
		e.UpdateCommand(pendingDisplay(e.GetState()))
		return nil
	}

	count := 0
	if state.PendingCount != nil {
		count = *state.PendingCount
	}

	if state.GPending {
		res, ok := motionForKey(buffer, buffer.GetCursor().Position, key, count, true)
		if !ok || res == nil {
			e.ResetPending()
			return nil
		}
		m.moveTo(e, buffer, res)
		return nil
	}

	if key.Rune == 'j' || key.Key == KeyDown {
		cursor := buffer.GetCursor()
		cursor.MoveDown(buffer, max(count, 1))
		buffer.SetCursor(cursor)
		e.ResetPendingCount()
		return nil
	}
	if key.Rune == 'k' || key.Key == KeyUp {
		cursor := buffer.GetCursor()
		cursor.MoveUp(buffer, max(count, 1))
		buffer.SetCursor(cursor)
		e.ResetPendingCount()
		return nil
	}

	if res, ok := motionForKey(buffer, buffer.GetCursor().Position, key, count, false); ok {
		if res == nil {
			e.ResetPendingCount()
			return nil
		}
		m.moveTo(e, buffer, res)
		return nil
	}

	if !key.IsRune() {
		return nil
	}

	selStart, selEnd := NormalizeSelection(state.VisualStart, buffer.GetCursor().Position)

	switch key.Rune {
	case 'v':
		if m.linewise {
			e.SetVisualMode()
		} else {
			e.SetNormalMode()
		}

	case 'V':
		if m.linewise {
			e.SetNormalMode()
		} else {
			e.SetVisualLineMode()
		}

	case 'd', 'x':
		err := applyOperator(e, buffer, OpDelete, selStart, selEnd, m.linewise)
		e.SetNormalMode()
		return err

	case 'c':
		// The operator enters insert itself
		return applyOperator(e, buffer, OpChange, selStart, selEnd, m.linewise)

	case 'y':
		err := applyOperator(e, buffer, OpYank, selStart, selEnd, m.linewise)
		e.SetNormalMode()
		return err

	case 'J':
		joinLineRange(e, buffer, selStart.Row, selEnd.Row)
		e.SetNormalMode()

	case '~':
		start, end := m.caseToggleBounds(buffer, selStart, selEnd)
		toggleCaseRange(e, buffer, start, end)
		cursor := buffer.GetCursor()
		cursor.Position.Row = selStart.Row
		cursor.SetCol(clampColNormal(buffer, selStart.Row, selStart.Col))
		buffer.SetCursor(cursor)
		e.SetNormalMode()

	case '>':
		indentLineRange(e, buffer, selStart.Row, selEnd.Row, false)
		e.ResetPendingCount()

	case '<':
		indentLineRange(e, buffer, selStart.Row, selEnd.Row, true)
		e.ResetPendingCount()

	case 'o':
		// Swap the anchor and cursor ends of the selection
		cursor := buffer.GetCursor()
		state.VisualStart, cursor.Position = cursor.Position, state.VisualStart
		cursor.Preferred = cursor.Position.Col
		e.SetState(state)
		buffer.SetCursor(cursor)

	case 'f', 'F', 't', 'T':
		e.SetFindCharMode(FindDirection(key.Rune), m.Name())

	case ';', ',':
		m.repeatFind(e, buffer, key, count)

	case 'g':
		state.GPending = true
		e.SetState(state)
		e.UpdateCommand(pendingDisplay(e.GetState()))
	}

	return nil
}

func (m *visualMode) moveTo(e Editor, buffer Buffer, res *motionResult) {
	cursor := buffer.GetCursor()
	cursor.Position.Row = res.target.Row
	cursor.SetCol(clampColNormal(buffer, res.target.Row, res.target.Col))
	buffer.SetCursor(cursor)
	e.ResetPending()
}

func (m *visualMode) repeatFind(e Editor, buffer Buffer, key KeyEvent, count int) {
	defer e.ResetPendingCount()

	spec, ok := e.LastFind()
	if !ok {
		return
	}
	dir := spec.Dir
	if key.Rune == ',' {
		dir = dir.reversed()
	}

	cursor := buffer.GetCursor()
	target := motionFindChar(buffer, cursor.Position, spec.Target, dir, max(count, 1))
	if target == nil {
		return
	}
	cursor.Position = *target
	cursor.Preferred = target.Col
	buffer.SetCursor(cursor)
}

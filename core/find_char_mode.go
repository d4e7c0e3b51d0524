package core

// findCharMode waits for the literal target character of an f/F/t/T
// motion. The direction and the mode to return to are set by the
// dispatching mode before the transition.
type findCharMode struct {
	dir      FindDirection
	returnTo Mode
}

func NewFindCharMode() EditorMode {
	return &findCharMode{dir: FindForward, returnTo: NormalMode}
}

func (m *findCharMode) Name() Mode {
	return FindCharMode
}

func (m *findCharMode) Enter(e Editor, buffer Buffer) {
	e.UpdateCommand(pendingDisplay(e.GetState()) + string(rune(m.dir)))
}

func (m *findCharMode) Exit(e Editor, buffer Buffer) {}

func (m *findCharMode) HandleKey(e Editor, buffer Buffer, key KeyEvent) *EditorError {
	if key.Key == KeyEscape {
		e.ResetPending()
		m.returnToCaller(e)
		return nil
	}

	target := key.Rune
	if key.Key == KeySpace {
		target = ' '
	}
	if target == 0 {
		// Not a literal character: abandon the motion
		e.ResetPending()
		m.returnToCaller(e)
		return nil
	}

	state := e.GetState()
	count := 0
	if state.PendingCount != nil {
		count = *state.PendingCount
	}

	cursor := buffer.GetCursor()
	found := motionFindChar(buffer, cursor.Position, target, m.dir, max(count, 1))
	if found == nil {
		// Target not present: buffer and cursor stay untouched
		e.ResetPending()
		m.returnToCaller(e)
		return nil
	}

	e.SetLastFind(FindSpec{Target: target, Dir: m.dir})

	if m.returnTo == NormalMode && state.PendingOperator != OpNone {
		res := &motionResult{*found, motionInclusive}
		start, end, linewise, ok := operatorRangeFromMotion(buffer, cursor.Position, res)
		if !ok {
			e.ResetPending()
			m.returnToCaller(e)
			return nil
		}
		err := applyOperator(e, buffer, state.PendingOperator, start, end, linewise)
		if !e.IsInsertMode() {
			e.SetNormalMode()
		}
		return err
	}

	cursor.Position.Row = found.Row
	cursor.SetCol(clampColNormal(buffer, found.Row, found.Col))
	buffer.SetCursor(cursor)
	e.ResetPending()
	m.returnToCaller(e)
	return nil
}

func (m *findCharMode) returnToCaller(e Editor) {
	switch m.returnTo {
	case VisualMode:
		e.SetVisualMode()
	case VisualLineMode:
		e.SetVisualLineMode()
	default:
		e.SetNormalMode()
	}
}

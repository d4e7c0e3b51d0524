package core

import (
	"slices"
	"strconv"
	"strings"
)

type normalMode struct{}

func NewNormalMode() EditorMode {
	return &normalMode{}
}

func (m *normalMode) Name() Mode {
	return NormalMode
}

func (m *normalMode) Enter(e Editor, buffer Buffer) {
	e.UpdateStatus("-- NORMAL --")
	e.UpdateCommand("")

	state := e.GetState()
	state.VisualStart = Position{-1, -1}
	e.SetState(state)

	cursor := buffer.GetCursor()
	cursor.ClampToLine(buffer)
	buffer.SetCursor(cursor)
}

func (m *normalMode) Exit(e Editor, buffer Buffer) {}

func (m *normalMode) HandleKey(e Editor, buffer Buffer, key KeyEvent) *EditorError {
	state := e.GetState()

	if key.Key == KeyEscape {
		e.ResetPending()
		return nil
	}

	if key.Key == KeyEnter {
		e.Submit()
		return nil
	}

	// Count accumulation. A leading 0 is the line-start motion, not a count.
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
		return m.dispatchMotion(e, buffer, res, state)
	}

	if state.PendingOperator != OpNone {
		return m.handleOperatorTarget(e, buffer, key, count, state)
	}

	// j/k go through the cursor so the preferred column sticks across
	// shorter lines; every other motion resolves to an absolute target.
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
			e.ResetPending()
			return nil
		}
		return m.dispatchMotion(e, buffer, res, state)
	}

	if key.Key == KeyBackspace {
		cursor := buffer.GetCursor()
		cursor.SetCol(max(cursor.Position.Col-max(count, 1), 0))
		buffer.SetCursor(cursor)
		e.ResetPendingCount()
		return nil
	}

	if key.Key == KeyDelete {
		return m.deleteUnderCursor(e, buffer, max(count, 1))
	}

	if !key.IsRune() {
		e.ResetPending()
		return nil
	}

	switch key.Rune {
	case ':':
		e.ResetPending()
		e.SetCommandMode()

	case 'i', 'I', 'a', 'A', 'o', 'O':
		m.enterInsert(e, buffer, key)

	case 'd', 'c', 'y':
		state.PendingOperator = operatorForKey(key.Rune)
		e.SetState(state)
		e.UpdateCommand(pendingDisplay(e.GetState()))

	case 'D':
		return m.operateToLineEnd(e, buffer, OpDelete, max(count, 1), key)

	case 'C':
		return m.operateToLineEnd(e, buffer, OpChange, max(count, 1), key)

	case 'x':
		return m.deleteUnderCursor(e, buffer, max(count, 1))

	case 'X':
		cursor := buffer.GetCursor()
		if cursor.Position.Col == 0 {
			e.ResetPending()
			return nil
		}
		start := Position{cursor.Position.Row, max(cursor.Position.Col-max(count, 1), 0)}
		end := Position{cursor.Position.Row, cursor.Position.Col - 1}
		return applyOperator(e, buffer, OpDelete, start, end, false)

	case 'r':
		e.SetReplaceCharMode()

	case 'f', 'F', 't', 'T':
		e.SetFindCharMode(FindDirection(key.Rune), NormalMode)

	case ';', ',':
		return m.repeatFind(e, buffer, key, count, state)

	case 'p':
		m.pasteRegister(e, buffer, false)

	case 'P':
		m.pasteRegister(e, buffer, true)

	case 'u':
		e.ResetPending()
		e.Undo()

	case '.':
		e.ResetPending()
		e.ReplayLastChange()

	case 'J':
		cursor := buffer.GetCursor()
		joinLineRange(e, buffer, cursor.Position.Row, cursor.Position.Row+max(count-1, 1))
		e.ResetPending()

	case '~':
		return m.toggleCaseUnderCursor(e, buffer, max(count, 1))

	case 'v':
		e.ResetPending()
		e.SetVisualMode()

	case 'V':
		e.ResetPending()
		e.SetVisualLineMode()

	case 'g':
		state.GPending = true
		e.SetState(state)
		e.UpdateCommand(pendingDisplay(e.GetState()))

	default:
		e.ResetPending()
	}

	return nil
}

// dispatchMotion applies a resolved motion: as the range of the pending
// operator when one is active, as a plain cursor move otherwise.
func (m *normalMode) dispatchMotion(e Editor, buffer Buffer, res *motionResult, state State) *EditorError {
	if state.PendingOperator != OpNone {
		cursor := buffer.GetCursor()
		start, end, linewise, ok := operatorRangeFromMotion(buffer, cursor.Position, res)
		if !ok {
			e.ResetPending()
			return nil
		}
		return applyOperator(e, buffer, state.PendingOperator, start, end, linewise)
	}

	cursor := buffer.GetCursor()
	cursor.Position.Row = res.target.Row
	cursor.SetCol(clampColNormal(buffer, res.target.Row, res.target.Col))
	buffer.SetCursor(cursor)
	e.ResetPending()
	return nil
}

// handleOperatorTarget resolves the key following d/c/y.
func (m *normalMode) handleOperatorTarget(e Editor, buffer Buffer, key KeyEvent, count int, state State) *EditorError {
	cursor := buffer.GetCursor()

	if key.IsRune() {
		switch key.Rune {
		case 'd', 'c', 'y':
			if operatorForKey(key.Rune) != state.PendingOperator {
				e.ResetPending()
				return nil
			}
			// Doubled operator takes count whole lines from the cursor
			endRow := clampRow(buffer, cursor.Position.Row+max(count, 1)-1)
			return applyOperator(e, buffer, state.PendingOperator,
				Position{cursor.Position.Row, 0}, Position{endRow, 0}, true)

		case 'g':
			state.GPending = true
			e.SetState(state)
			e.UpdateCommand(pendingDisplay(e.GetState()))
			return nil

		case 'f', 'F', 't', 'T':
			e.SetFindCharMode(FindDirection(key.Rune), NormalMode)
			return nil

		case ';', ',':
			return m.repeatFind(e, buffer, key, count, state)
		}
	}

	res, ok := motionForKey(buffer, cursor.Position, key, count, false)
	if !ok || res == nil {
		e.ResetPending()
		return nil
	}
	return m.dispatchMotion(e, buffer, res, state)
}

func (m *normalMode) enterInsert(e Editor, buffer Buffer, key KeyEvent) {
	e.StartChangeRecording(key)
	e.PushUndo()

	cursor := buffer.GetCursor()
	row := cursor.Position.Row

	switch key.Rune {
	case 'I':
		cursor.MoveToFirstNonBlank(buffer)
	case 'a':
		cursor.SetCol(min(cursor.Position.Col+1, buffer.LineRuneCount(row)))
	case 'A':
		cursor.MoveToAfterLineEnd(buffer)
	case 'o':
		lines := slices.Insert(buffer.GetLines(), row+1, "")
		buffer.SetLines(lines)
		cursor.Position.Row = row + 1
		cursor.SetCol(0)
	case 'O':
		lines := slices.Insert(buffer.GetLines(), row, "")
		buffer.SetLines(lines)
		cursor.SetCol(0)
	}
	buffer.SetCursor(cursor)

	e.ResetPending()
	e.SetInsertMode()
}

// operateToLineEnd implements D and C: the operator from the cursor to the
// end of the line, extending count-1 lines down first.
func (m *normalMode) operateToLineEnd(e Editor, buffer Buffer, op Operator, count int, key KeyEvent) *EditorError {
	cursor := buffer.GetCursor()
	endRow := clampRow(buffer, cursor.Position.Row+count-1)
	end := Position{endRow, max(buffer.LineRuneCount(endRow)-1, 0)}

	if op == OpChange {
		e.StartChangeRecording(key)
		if endRow == cursor.Position.Row && buffer.LineRuneCount(endRow) == 0 {
			// Nothing to delete on an empty line, but C still inserts
			e.ResetPending()
			e.SetInsertMode()
			return nil
		}
	}

	return applyOperator(e, buffer, op, cursor.Position, end, false)
}

func (m *normalMode) deleteUnderCursor(e Editor, buffer Buffer, count int) *EditorError {
	cursor := buffer.GetCursor()
	lineLen := buffer.LineRuneCount(cursor.Position.Row)
	if lineLen == 0 {
		e.ResetPending()
		return nil
	}
	end := Position{cursor.Position.Row, min(cursor.Position.Col+count-1, lineLen-1)}
	return applyOperator(e, buffer, OpDelete, cursor.Position, end, false)
}

func (m *normalMode) toggleCaseUnderCursor(e Editor, buffer Buffer, count int) *EditorError {
	cursor := buffer.GetCursor()
	lineLen := buffer.LineRuneCount(cursor.Position.Row)
	if lineLen == 0 {
		e.ResetPending()
		return nil
	}
	end := min(cursor.Position.Col+count-1, lineLen-1)
	toggleCaseRange(e, buffer, cursor.Position, Position{cursor.Position.Row, end})

	cursor.SetCol(clampColNormal(buffer, cursor.Position.Row, end+1))
	buffer.SetCursor(cursor)
	e.ResetPending()
	return nil
}

// repeatFind re-runs the remembered f/F/t/T motion, reversed for ','.
func (m *normalMode) repeatFind(e Editor, buffer Buffer, key KeyEvent, count int, state State) *EditorError {
	spec, ok := e.LastFind()
	if !ok {
		e.ResetPending()
		return nil
	}
	dir := spec.Dir
	if key.Rune == ',' {
		dir = dir.reversed()
	}

	cursor := buffer.GetCursor()
	target := motionFindChar(buffer, cursor.Position, spec.Target, dir, max(count, 1))
	if target == nil {
		e.ResetPending()
		return nil
	}
	return m.dispatchMotion(e, buffer, &motionResult{*target, motionInclusive}, state)
}

func (m *normalMode) pasteRegister(e Editor, buffer Buffer, before bool) {
	defer e.ResetPending()

	reg := e.Registers().Unnamed()
	if reg.Text == "" {
		return
	}

	e.PushUndo()
	cursor := buffer.GetCursor()
	row := cursor.Position.Row

	if reg.Linewise {
		at := row
		if !before {
			at = row + 1
		}
		lines := slices.Insert(buffer.GetLines(), at, strings.Split(reg.Text, "\n")...)
		buffer.SetLines(lines)
		cursor.Position.Row = at
		cursor.SetCol(firstNonBlankCol(buffer, at))
		buffer.SetCursor(cursor)
		return
	}

	parts := strings.Split(reg.Text, "\n")
	col := cursor.Position.Col
	if !before {
		col = min(col+1, buffer.LineRuneCount(row))
	}

	if len(parts) == 1 {
		runes := []rune(reg.Text)
		buffer.InsertRunesAt(row, col, runes)
		cursor.SetCol(clampColNormal(buffer, row, col+len(runes)-1))
		buffer.SetCursor(cursor)
		return
	}

	// Charwise text spanning lines: split the current line at the paste
	// point and splice the fragments around the pasted lines.
	line := buffer.GetLineRunes(row)
	head := string(line[:col])
	tail := string(line[col:])

	lines := buffer.GetLines()
	spliced := make([]string, 0, len(lines)+len(parts)-1)
	spliced = append(spliced, lines[:row]...)
	spliced = append(spliced, head+parts[0])
	spliced = append(spliced, parts[1:len(parts)-1]...)
	spliced = append(spliced, parts[len(parts)-1]+tail)
	spliced = append(spliced, lines[row+1:]...)
	buffer.SetLines(spliced)

	cursor.Position.Row = row + len(parts) - 1
	lastLen := len([]rune(parts[len(parts)-1]))
	cursor.SetCol(clampColNormal(buffer, cursor.Position.Row, max(lastLen-1, 0)))
	buffer.SetCursor(cursor)
}

// pendingDisplay renders the in-progress command for the status area.
func pendingDisplay(state State) string {
	var sb strings.Builder
	if state.PendingCount != nil {
		sb.WriteString(strconv.Itoa(*state.PendingCount))
	}
	sb.WriteString(state.PendingOperator.String())
	if state.GPending {
		sb.WriteString("g")
	}
	return sb.String()
}

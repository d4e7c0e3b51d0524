package core

import (
	"strings"
	"unicode"
)

// Operator is a pending delete/change/yank awaiting a motion or line range.
type Operator int

const (
	OpNone Operator = iota
	OpDelete
	OpChange
	OpYank
)

func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "d"
	case OpChange:
		return "c"
	case OpYank:
		return "y"
	}
	return ""
}

func operatorForKey(r rune) Operator {
	switch r {
	case 'd':
		return OpDelete
	case 'c':
		return OpChange
	case 'y':
		return OpYank
	}
	return OpNone
}

// getRangeText extracts the text of a range. Charwise ranges are inclusive
// of both endpoints and may span lines; linewise ranges join whole lines.
func getRangeText(buffer Buffer, start, end Position, linewise bool) string {
	start, end = NormalizeSelection(start, end)

	if linewise {
		lines := buffer.GetLines()
		startRow := clampRow(buffer, start.Row)
		endRow := clampRow(buffer, end.Row)
		return strings.Join(lines[startRow:endRow+1], "\n")
	}

	if start.Row == end.Row {
		line := buffer.GetLineRunes(start.Row)
		from := min(max(start.Col, 0), len(line))
		to := min(end.Col+1, len(line))
		if from >= to {
			return ""
		}
		return string(line[from:to])
	}

	var sb strings.Builder
	firstLine := buffer.GetLineRunes(start.Row)
	if start.Col < len(firstLine) {
		sb.WriteString(string(firstLine[start.Col:]))
	}
	sb.WriteRune('\n')
	for r := start.Row + 1; r < end.Row; r++ {
		sb.WriteString(string(buffer.GetLineRunes(r)))
		sb.WriteRune('\n')
	}
	lastLine := buffer.GetLineRunes(end.Row)
	sb.WriteString(string(lastLine[:min(end.Col+1, len(lastLine))]))
	return sb.String()
}

// applyOperator runs a resolved operator over its range: write the unnamed
// register, snapshot for undo, mutate the buffer, and place the cursor.
// Charwise ranges are inclusive of both endpoints.
func applyOperator(e Editor, buffer Buffer, op Operator, start, end Position, linewise bool) *EditorError {
	defer e.ResetPending()

	start, end = NormalizeSelection(start, end)
	text := getRangeText(buffer, start, end, linewise)
	if !linewise && text == "" {
		// Empty range: nothing to do, and the register keeps its contents
		return nil
	}

	e.Registers().SetUnnamed(text, linewise)

	if op == OpYank {
		if err := e.WriteClipboard(text); err != nil {
			e.DispatchError(ErrFailedToYankId, err)
		}

		cursor := buffer.GetCursor()
		if linewise {
			lineCount := clampRow(buffer, end.Row) - clampRow(buffer, start.Row) + 1
			cursor.Position.Row = clampRow(buffer, start.Row)
			cursor.ClampToLine(buffer)
			cursor.Preferred = cursor.Position.Col
			e.DispatchMessage(yankedMessage(lineCount, true))
			e.DispatchSignal(YankSignal{totalLines: lineCount, linewise: true})
		} else {
			cursor.Position = start
			cursor.ClampToLine(buffer)
			cursor.Preferred = cursor.Position.Col
			e.DispatchMessage(yankedMessage(len([]rune(text)), false))
			e.DispatchSignal(YankSignal{totalLines: end.Row - start.Row + 1, linewise: false})
		}
		buffer.SetCursor(cursor)
		return nil
	}

	e.PushUndo()

	if linewise {
		deleteLineSpan(e, buffer, clampRow(buffer, start.Row), clampRow(buffer, end.Row), op)
		return nil
	}

	lines := buffer.GetLines()
	if start.Row == end.Row {
		line := []rune(lines[start.Row])
		from := min(max(start.Col, 0), len(line))
		to := min(end.Col+1, len(line))
		lines[start.Row] = string(line[:from]) + string(line[to:])
	} else {
		first := []rune(lines[start.Row])
		last := []rune(lines[end.Row])
		from := min(max(start.Col, 0), len(first))
		to := min(end.Col+1, len(last))
		merged := string(first[:from]) + string(last[to:])

		newLines := make([]string, 0, len(lines)-(end.Row-start.Row))
		newLines = append(newLines, lines[:start.Row]...)
		newLines = append(newLines, merged)
		newLines = append(newLines, lines[end.Row+1:]...)
		lines = newLines
	}
	buffer.SetLines(lines)

	cursor := buffer.GetCursor()
	cursor.Position = start
	if op == OpChange {
		cursor.Position.Col = clampColInsert(buffer, cursor.Position.Row, cursor.Position.Col)
	} else {
		cursor.ClampToLine(buffer)
	}
	cursor.Preferred = cursor.Position.Col
	buffer.SetCursor(cursor)

	if op == OpChange {
		e.SetInsertMode()
	}
	return nil
}

// deleteLineSpan removes the rows startRow..endRow. For change, the span is
// replaced with a single empty line and insert mode is entered; for delete,
// the cursor lands on the first non-blank of the line now at the removal
// point. An emptied buffer becomes a single empty line.
func deleteLineSpan(e Editor, buffer Buffer, startRow, endRow int, op Operator) {
	lines := buffer.GetLines()

	newLines := make([]string, 0, len(lines))
	newLines = append(newLines, lines[:startRow]...)
	if op == OpChange {
		newLines = append(newLines, "")
	}
	newLines = append(newLines, lines[endRow+1:]...)
	buffer.SetLines(newLines)

	cursor := buffer.GetCursor()
	cursor.Position.Row = clampRow(buffer, startRow)
	if op == OpChange {
		cursor.SetCol(0)
	} else {
		cursor.MoveToFirstNonBlank(buffer)
	}
	buffer.SetCursor(cursor)

	if op == OpChange {
		e.SetInsertMode()
	}
}

// operatorRangeFromMotion turns a motion result into the inclusive range an
// operator consumes. Exclusive motions have their later endpoint pulled
// back one column, crossing a line boundary backward when it underflows;
// the second return is false when the adjusted range is empty.
func operatorRangeFromMotion(buffer Buffer, cursor Position, res *motionResult) (start, end Position, linewise, ok bool) {
	if res.kind == motionLinewise {
		return Position{cursor.Row, 0}, Position{res.target.Row, 0}, true, true
	}

	start, end = NormalizeSelection(cursor, res.target)
	if res.kind == motionExclusive {
		if end.Col > 0 {
			end.Col--
		} else if end.Row > start.Row {
			end.Row--
			end.Col = max(buffer.LineRuneCount(end.Row)-1, 0)
		} else {
			return start, end, false, false
		}
	}
	if end.Before(start) {
		return start, end, false, false
	}
	return start, end, false, true
}

// joinLineRange joins the rows startRow..endRow into one line, collapsing
// each line break and the following line's leading whitespace into a single
// space. A single-row range joins with the next line. The cursor lands at
// the first join point.
func joinLineRange(e Editor, buffer Buffer, startRow, endRow int) {
	startRow = clampRow(buffer, startRow)
	endRow = clampRow(buffer, endRow)
	if endRow == startRow {
		endRow = clampRow(buffer, startRow+1)
	}
	if endRow == startRow {
		return // single-line buffer
	}

	e.PushUndo()

	lines := buffer.GetLines()
	joined := lines[startRow]
	joinCol := len([]rune(joined))
	for r := startRow + 1; r <= endRow; r++ {
		part := strings.TrimLeft(lines[r], " \t")
		if r == startRow+1 {
			joinCol = len([]rune(joined))
		}
		if joined != "" && part != "" {
			joined += " "
		}
		joined += part
	}

	newLines := make([]string, 0, len(lines)-(endRow-startRow))
	newLines = append(newLines, lines[:startRow]...)
	newLines = append(newLines, joined)
	newLines = append(newLines, lines[endRow+1:]...)
	buffer.SetLines(newLines)

	cursor := buffer.GetCursor()
	cursor.Position.Row = startRow
	cursor.SetCol(clampColNormal(buffer, startRow, joinCol))
	buffer.SetCursor(cursor)
}

// indentUnit is the fixed column width used by the visual > and < commands.
const indentUnit = "  "

// indentLineRange shifts the rows startRow..endRow right by one indent
// unit, or left when dedent is set. Dedent skips lines not indented by at
// least one full unit.
func indentLineRange(e Editor, buffer Buffer, startRow, endRow int, dedent bool) {
	startRow = clampRow(buffer, startRow)
	endRow = clampRow(buffer, endRow)

	e.PushUndo()

	lines := buffer.GetLines()
	for r := startRow; r <= endRow; r++ {
		if dedent {
			if strings.HasPrefix(lines[r], indentUnit) {
				lines[r] = lines[r][len(indentUnit):]
			}
		} else {
			lines[r] = indentUnit + lines[r]
		}
	}
	buffer.SetLines(lines)

	cursor := buffer.GetCursor()
	cursor.ClampToLine(buffer)
	buffer.SetCursor(cursor)
}

// toggleCaseRange swaps the case of every character inside the inclusive
// charwise range.
func toggleCaseRange(e Editor, buffer Buffer, start, end Position) {
	start, end = NormalizeSelection(start, end)

	e.PushUndo()

	lines := buffer.GetLines()
	for r := start.Row; r <= end.Row && r < len(lines); r++ {
		runes := []rune(lines[r])
		from := 0
		if r == start.Row {
			from = min(start.Col, len(runes))
		}
		to := len(runes)
		if r == end.Row {
			to = min(end.Col+1, len(runes))
		}
		for i := from; i < to; i++ {
			runes[i] = toggleCaseRune(runes[i])
		}
		lines[r] = string(runes)
	}
	buffer.SetLines(lines)
}

func toggleCaseRune(r rune) rune {
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}

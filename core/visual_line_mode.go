package core

func NewVisualLineMode() EditorMode {
	return &visualMode{linewise: true}
}

// caseToggleBounds widens the selection to whole lines in linewise mode;
// the charwise selection keeps its partial-line bounds at both ends.
func (m *visualMode) caseToggleBounds(buffer Buffer, selStart, selEnd Position) (Position, Position) {
	if !m.linewise {
		return selStart, selEnd
	}
	return Position{selStart.Row, 0},
		Position{selEnd.Row, max(buffer.LineRuneCount(selEnd.Row)-1, 0)}
}

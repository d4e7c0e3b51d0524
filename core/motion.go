package core

import "unicode"

// motionKind classifies how an operator builds its range from a motion
// target: exclusive charwise, inclusive charwise, or whole lines.
type motionKind int

const (
	motionExclusive motionKind = iota
	motionInclusive
	motionLinewise
)

type motionResult struct {
	target Position
	kind   motionKind
}

// --- Character classes ---
//
// Word motions distinguish three classes per code point; WORD motions only
// distinguish whitespace from everything else.

const (
	classWhitespace = iota
	classWord
	classPunct
)

func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

func isWhiteSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func charClass(r rune, bigWord bool) int {
	if isWhiteSpace(r) {
		return classWhitespace
	}
	if bigWord || isWordChar(r) {
		return classWord
	}
	return classPunct
}

// --- Motion engine ---
//
// Each motion maps (buffer, position, count) to a target position, or nil
// when it cannot be satisfied; the caller then leaves the cursor untouched
// and clears any pending state. Counted motions recompute from the previous
// result each iteration. Targets are raw: a forward motion may land one
// past the line end, and callers clamp for their context.

// motionForKey resolves a motion key to its target. The second return is
// false when the key is not a motion at all; a nil result with true means
// the motion could not be satisfied. A count of 0 means "none supplied".
func motionForKey(buffer Buffer, pos Position, key KeyEvent, count int, gPending bool) (*motionResult, bool) {
	n := count
	if n < 1 {
		n = 1
	}

	if gPending {
		switch key.Rune {
		case 'g': // gg
			row := 0
			if count > 0 {
				row = clampRow(buffer, count-1)
			}
			return &motionResult{Position{row, firstNonBlankCol(buffer, row)}, motionLinewise}, true
		case 'e': // ge
			return motionWordEndBackward(buffer, pos, n), true
		}
		return nil, false
	}

	switch {
	case key.Rune == 'h' || key.Key == KeyLeft:
		return &motionResult{Position{pos.Row, max(pos.Col-n, 0)}, motionExclusive}, true

	case key.Rune == 'l' || key.Key == KeyRight || key.Key == KeySpace:
		lineLen := buffer.LineRuneCount(pos.Row)
		return &motionResult{Position{pos.Row, min(pos.Col+n, lineLen)}, motionExclusive}, true

	case key.Rune == 'j' || key.Key == KeyDown:
		return &motionResult{Position{clampRow(buffer, pos.Row+n), pos.Col}, motionLinewise}, true

	case key.Rune == 'k' || key.Key == KeyUp:
		return &motionResult{Position{clampRow(buffer, pos.Row-n), pos.Col}, motionLinewise}, true

	case key.Rune == '0' || key.Key == KeyHome:
		return &motionResult{Position{pos.Row, 0}, motionExclusive}, true

	case key.Rune == '^':
		return &motionResult{Position{pos.Row, firstNonBlankCol(buffer, pos.Row)}, motionExclusive}, true

	case key.Rune == '$' || key.Key == KeyEnd:
		// A count extends count-1 lines down before going to the line end
		row := clampRow(buffer, pos.Row+n-1)
		return &motionResult{Position{row, max(buffer.LineRuneCount(row)-1, 0)}, motionInclusive}, true

	case key.Rune == 'w' || key.Rune == 'W':
		return motionWordForward(buffer, pos, n, key.Rune == 'W'), true

	case key.Rune == 'b' || key.Rune == 'B':
		return motionWordBackward(buffer, pos, n, key.Rune == 'B'), true

	case key.Rune == 'e' || key.Rune == 'E':
		return motionWordEnd(buffer, pos, n, key.Rune == 'E'), true

	case key.Rune == 'G':
		row := buffer.LineCount() - 1
		if count > 0 {
			row = clampRow(buffer, count-1)
		}
		return &motionResult{Position{row, firstNonBlankCol(buffer, row)}, motionLinewise}, true
	}

	return nil, false
}

// motionWordForward implements w/W: move to the start of the next word,
// crossing line boundaries and skipping leading whitespace of the next
// line. At the end of the buffer the target rests past the last character
// so an operator can still consume the final word.
func motionWordForward(buffer Buffer, pos Position, count int, bigWord bool) *motionResult {
	cur := pos
	moved := false
	for range count {
		next, ok := wordForwardStep(buffer, cur, bigWord)
		if !ok {
			break
		}
		cur = next
		moved = true
	}
	if !moved {
		return nil
	}
	return &motionResult{cur, motionExclusive}
}

func wordForwardStep(buffer Buffer, pos Position, bigWord bool) (Position, bool) {
	row, col := pos.Row, pos.Col
	line := buffer.GetLineRunes(row)

	// Leave the current run of same-class characters
	if col < len(line) {
		cls := charClass(line[col], bigWord)
		if cls != classWhitespace {
			for col < len(line) && charClass(line[col], bigWord) == cls {
				col++
			}
		}
	}

	// Skip whitespace, crossing lines; an empty line counts as a word
	for {
		line = buffer.GetLineRunes(row)
		if col >= len(line) {
			if row >= buffer.LineCount()-1 {
				end := Position{row, len(line)}
				if end == pos {
					return pos, false
				}
				return end, true
			}
			row++
			col = 0
			if buffer.LineRuneCount(row) == 0 {
				return Position{row, 0}, true
			}
			continue
		}
		if isWhiteSpace(line[col]) {
			col++
			continue
		}
		return Position{row, col}, true
	}
}

// motionWordBackward implements b/B: move to the start of the previous
// word, symmetric to w/W.
func motionWordBackward(buffer Buffer, pos Position, count int, bigWord bool) *motionResult {
	cur := pos
	moved := false
	for range count {
		next, ok := wordBackwardStep(buffer, cur, bigWord)
		if !ok {
			break
		}
		cur = next
		moved = true
	}
	if !moved {
		return nil
	}
	return &motionResult{cur, motionExclusive}
}

// retreat moves one position backward, crossing onto the last character of
// the previous line. It reports false at the start of the buffer.
func retreat(buffer Buffer, row, col int) (int, int, bool) {
	if col > 0 {
		return row, col - 1, true
	}
	if row == 0 {
		return row, col, false
	}
	row--
	return row, max(buffer.LineRuneCount(row)-1, 0), true
}

func wordBackwardStep(buffer Buffer, pos Position, bigWord bool) (Position, bool) {
	row, col, ok := retreat(buffer, pos.Row, pos.Col)
	if !ok {
		return pos, false
	}

	// Skip whitespace backward, crossing lines; stop on empty lines
	for {
		line := buffer.GetLineRunes(row)
		if len(line) == 0 {
			return Position{row, 0}, true
		}
		if !isWhiteSpace(line[col]) {
			break
		}
		row, col, ok = retreat(buffer, row, col)
		if !ok {
			return Position{row, col}, true
		}
	}

	// Walk to the start of the run we landed in
	line := buffer.GetLineRunes(row)
	cls := charClass(line[col], bigWord)
	for col > 0 && charClass(line[col-1], bigWord) == cls {
		col--
	}
	return Position{row, col}, true
}

// motionWordEnd implements e/E: move to the last character of the next
// word. Inclusive, so an operator consumes the landing character.
func motionWordEnd(buffer Buffer, pos Position, count int, bigWord bool) *motionResult {
	cur := pos
	moved := false
	for range count {
		next, ok := wordEndStep(buffer, cur, bigWord)
		if !ok {
			break
		}
		cur = next
		moved = true
	}
	if !moved {
		return nil
	}
	return &motionResult{cur, motionInclusive}
}

func wordEndStep(buffer Buffer, pos Position, bigWord bool) (Position, bool) {
	row, col := pos.Row, pos.Col+1

	// Skip whitespace (and line breaks) to the next non-blank
	for {
		line := buffer.GetLineRunes(row)
		if col >= len(line) {
			if row >= buffer.LineCount()-1 {
				return pos, false
			}
			row++
			col = 0
			continue
		}
		if isWhiteSpace(line[col]) {
			col++
			continue
		}
		break
	}

	// Walk to the end of the run
	line := buffer.GetLineRunes(row)
	cls := charClass(line[col], bigWord)
	for col+1 < len(line) && charClass(line[col+1], bigWord) == cls {
		col++
	}
	return Position{row, col}, true
}

// motionWordEndBackward implements ge: move to the last character of the
// previous word. Inclusive.
func motionWordEndBackward(buffer Buffer, pos Position, count int) *motionResult {
	cur := pos
	moved := false
	for range count {
		next, ok := wordEndBackwardStep(buffer, cur)
		if !ok {
			break
		}
		cur = next
		moved = true
	}
	if !moved {
		return nil
	}
	return &motionResult{cur, motionInclusive}
}

func wordEndBackwardStep(buffer Buffer, pos Position) (Position, bool) {
	row, col, ok := retreat(buffer, pos.Row, pos.Col)
	if !ok {
		return pos, false
	}

	for {
		line := buffer.GetLineRunes(row)
		if len(line) == 0 || isWhiteSpace(line[col]) {
			// Keep retreating through whitespace and empty lines
			var moved bool
			row, col, moved = retreat(buffer, row, col)
			if !moved {
				return pos, false
			}
			continue
		}

		// On a non-blank: done when it is the end of its run
		cls := charClass(line[col], false)
		if col == len(line)-1 || charClass(line[col+1], false) != cls {
			return Position{row, col}, true
		}

		// Inside a run: back out of it first
		for col > 0 && charClass(line[col-1], false) == cls {
			col--
		}
		var moved bool
		row, col, moved = retreat(buffer, row, col)
		if !moved {
			return pos, false
		}
	}
}

// --- Find-char motions (f/F/t/T) ---

// findDirection is the remembered f/F/t/T variant.
type findDirection rune

const (
	findForward  findDirection = 'f'
	findBackward findDirection = 'F'
	tillForward  findDirection = 't'
	tillBackward findDirection = 'T'
)

func (d findDirection) reversed() findDirection {
	switch d {
	case findForward:
		return findBackward
	case findBackward:
		return findForward
	case tillForward:
		return tillBackward
	default:
		return tillForward
	}
}

// motionFindChar resolves f/F/t/T on the cursor's line. Unlike the word
// motions it is strict: if the count-th occurrence does not exist the whole
// motion fails and nil is returned. The result is inclusive.
func motionFindChar(buffer Buffer, pos Position, target rune, dir findDirection, count int) *Position {
	if count < 1 {
		count = 1
	}
	line := buffer.GetLineRunes(pos.Row)
	col := pos.Col

	switch dir {
	case findForward, tillForward:
		for range count {
			found := -1
			for i := col + 1; i < len(line); i++ {
				if line[i] == target {
					found = i
					break
				}
			}
			if found == -1 {
				return nil
			}
			col = found
		}
		if dir == tillForward {
			col--
			if col <= pos.Col {
				// Till would not move; treat as unsatisfied
				return nil
			}
		}

	case findBackward, tillBackward:
		for range count {
			found := -1
			for i := col - 1; i >= 0; i-- {
				if line[i] == target {
					found = i
					break
				}
			}
			if found == -1 {
				return nil
			}
			col = found
		}
		if dir == tillBackward {
			col++
			if col >= pos.Col {
				return nil
			}
		}
	}

	return &Position{pos.Row, col}
}

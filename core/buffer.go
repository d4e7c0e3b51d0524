package core

import (
	"bytes"
	"fmt"
	"strings"
)

// Buffer is the narrow handle the engine is given into the host-owned text:
// read/replace the line sequence, read/set the cursor. The engine has
// exclusive, synchronous access during event handling and leaves the buffer
// with at least one line after every event.
type Buffer interface {
	// Content access
	GetLines() []string              // Get lines as strings (for display/submit)
	SetLines(lines []string)         // Replace the whole line sequence
	GetLineRunes(lineNum int) []rune // Get specific line as runes (for editing)
	LineRuneCount(lineNum int) int   // Get rune count for a line
	GetCurrentContent() string       // Get entire buffer content as a string
	LineCount() int                  // Get number of lines
	IsEmpty() bool                   // Check if buffer is empty

	// Modification
	InsertRunesAt(row, col int, runes []rune) error     // Insert runes (handles newlines)
	DeleteRunesAt(row, col int, count int) *EditorError // Delete runes (handles newlines)
	SetContent(content []byte)                          // Set content (initial injection)

	// Cursor
	GetCursor() Cursor
	SetCursor(Cursor)
}

// textBuffer implementation using runes for better unicode handling
type textBuffer struct {
	lines  [][]rune
	cursor Cursor
}

// NewBuffer creates a new empty buffer
func NewBuffer() Buffer {
	return &textBuffer{
		lines:  [][]rune{{}}, // Start with one empty line
		cursor: Cursor{Position: Position{0, 0}, Preferred: 0},
	}
}

// NewBufferFromBytes creates a buffer pre-filled with content.
func NewBufferFromBytes(content []byte) Buffer {
	b := &textBuffer{
		lines:  [][]rune{{}},
		cursor: Cursor{Position: Position{0, 0}, Preferred: 0},
	}
	b.SetContent(content)
	return b
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

func (b *textBuffer) SetContent(content []byte) {
	runes := bytes.Runes(content)
	linesRune := make([][]rune, 0)
	var currentLine []rune

	for _, r := range runes {
		if r == '\n' {
			linesRune = append(linesRune, currentLine)
			currentLine = []rune{}
		} else {
			currentLine = append(currentLine, r)
		}
	}
	linesRune = append(linesRune, currentLine)

	b.lines = linesRune
	b.SetCursor(b.cursor) // Re-clamp against the new content
}

func (b *textBuffer) GetLines() []string {
	linesStr := make([]string, len(b.lines))
	for i, r := range b.lines {
		linesStr[i] = string(r)
	}
	return linesStr
}

// SetLines replaces the line sequence. An empty slice collapses to a single
// empty line so the buffer is never without a line.
func (b *textBuffer) SetLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	linesRune := make([][]rune, len(lines))
	for i, l := range lines {
		linesRune[i] = []rune(l)
	}
	b.lines = linesRune
	b.SetCursor(b.cursor)
}

func (b *textBuffer) GetLineRunes(lineNum int) []rune {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return nil
	}
	return b.lines[lineNum]
}

func (b *textBuffer) LineRuneCount(lineNum int) int {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return 0
	}
	return len(b.lines[lineNum])
}

// GetCurrentContent returns the entire buffer content as a string
func (b *textBuffer) GetCurrentContent() string {
	linesStr := make([]string, len(b.lines))
	for i, r := range b.lines {
		linesStr[i] = string(r)
	}
	return strings.Join(linesStr, "\n")
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

func (b *textBuffer) GetCursor() Cursor {
	return b.cursor
}

// SetCursor sets the cursor position, validating and clamping it.
func (b *textBuffer) SetCursor(cursor Cursor) {
	if cursor.Position.Row < 0 {
		cursor.Position.Row = 0
	} else if cursor.Position.Row >= len(b.lines) {
		cursor.Position.Row = max(len(b.lines)-1, 0)
	}

	lineLen := b.LineRuneCount(cursor.Position.Row)
	if cursor.Position.Col < 0 {
		cursor.Position.Col = 0
	} else if cursor.Position.Col > lineLen {
		// Allow the cursor to rest one position past the end of the line
		cursor.Position.Col = lineLen
	}

	b.cursor = cursor
}

// InsertRunesAt inserts runes at the specified position. Handles newlines correctly.
func (b *textBuffer) InsertRunesAt(row, col int, runes []rune) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("InsertRunesAt: %w: row %d out of bounds [0, %d)", ErrInvalidPosition, row, len(b.lines))
	}

	line := b.lines[row]
	if col < 0 || col > len(line) { // Allow insertion at len(line)
		return fmt.Errorf("InsertRunesAt: %w: col %d out of bounds [0, %d]", ErrInvalidPosition, col, len(line))
	}

	textToInsert := string(runes)
	if strings.Contains(textToInsert, "\n") {
		parts := strings.Split(textToInsert, "\n")

		head := line[:col]
		tail := make([]rune, len(line)-col)
		copy(tail, line[col:])

		// First part extends the current line
		b.lines[row] = append(head, []rune(parts[0])...)

		newLines := make([][]rune, len(parts)-1)
		for i := 1; i < len(parts); i++ {
			newLines[i-1] = []rune(parts[i])
		}
		// The last inserted segment gets the original tail appended
		newLines[len(newLines)-1] = append(newLines[len(newLines)-1], tail...)

		originalAfter := make([][]rune, len(b.lines)-(row+1))
		if row < len(b.lines)-1 {
			copy(originalAfter, b.lines[row+1:])
		}

		finalLines := b.lines[:row+1]
		finalLines = append(finalLines, newLines...)
		finalLines = append(finalLines, originalAfter...)
		b.lines = finalLines
	} else {
		newLine := make([]rune, 0, len(line)+len(runes))
		newLine = append(newLine, line[:col]...)
		newLine = append(newLine, runes...)
		newLine = append(newLine, line[col:]...)
		b.lines[row] = newLine
	}

	return nil
}

// DeleteRunesAt deletes count runes starting at the specified position.
// Crossing the end of a line consumes the line break and merges lines.
func (b *textBuffer) DeleteRunesAt(row, col int, count int) *EditorError {
	if count <= 0 {
		return nil
	}

	if row < 0 || row >= len(b.lines) {
		return &EditorError{
			id:  ErrInvalidPositionId,
			err: fmt.Errorf("%s: row %d out of bounds [0, %d)", ErrInvalidPosition, row, len(b.lines)),
		}
	}

	line := b.lines[row]
	lineLen := len(line)

	if col < 0 || col > lineLen { // Allow deleting *from* len(line) when merging lines
		return &EditorError{
			id:  ErrInvalidPositionId,
			err: fmt.Errorf("%s: col %d out of bounds [0, %d]", ErrInvalidPosition, col, lineLen),
		}
	}

	// Deletion entirely within the current line
	if col+count <= lineLen {
		newLine := make([]rune, 0, lineLen-count)
		newLine = append(newLine, line[:col]...)
		newLine = append(newLine, line[col+count:]...)
		b.lines[row] = newLine
		return nil
	}

	// Deletion crosses into subsequent lines
	remainingToDelete := count - (lineLen - col)
	b.lines[row] = line[:col]

	linesToDelete := 0
	colOnLastDeletedLine := 0

	currentRow := row + 1
	for remainingToDelete > 0 && currentRow < len(b.lines) {
		linesToDelete++
		currentLineLen := len(b.lines[currentRow])

		if remainingToDelete >= currentLineLen+1 { // +1 for the newline
			remainingToDelete -= currentLineLen + 1
			currentRow++
		} else {
			colOnLastDeletedLine = remainingToDelete - 1 // newline already consumed
			remainingToDelete = 0
			break
		}
	}

	if linesToDelete > 0 {
		lastAffectedRow := row + linesToDelete
		if lastAffectedRow < len(b.lines) {
			remainingPartOfLastLine := b.lines[lastAffectedRow][colOnLastDeletedLine:]
			b.lines[row] = append(b.lines[row], remainingPartOfLastLine...)

			copy(b.lines[row+1:], b.lines[lastAffectedRow+1:])
			b.lines = b.lines[:len(b.lines)-linesToDelete]
		} else if row+1 < len(b.lines) {
			// Deletion ran to or past the end of the buffer
			b.lines = b.lines[:row+1]
		}
	}

	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
		b.cursor = Cursor{Position{0, 0}, 0}
	}

	return nil
}

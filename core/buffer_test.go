package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestSetContentSplitsLines verifies \n splits lines and a trailing
// newline yields a final empty line.
func TestSetContentSplitsLines(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("one\ntwo\n"))
	assert.Equal(t, []string{"one", "two", ""}, buffer.GetLines())

	buffer = NewBufferFromBytes([]byte(""))
	assert.Equal(t, []string{""}, buffer.GetLines())
	assert.True(t, buffer.IsEmpty())
}

// TestSetLinesNeverEmpty verifies an empty slice collapses to one empty
// line.
func TestSetLinesNeverEmpty(t *testing.T) {
	buffer := NewBuffer()
	buffer.SetLines(nil)

	assert.Equal(t, 1, buffer.LineCount())
	assert.Equal(t, []string{""}, buffer.GetLines())
}

// TestInsertRunesWithNewline verifies insertion splits the line at an
// embedded newline.
func TestInsertRunesWithNewline(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("abcd"))

	err := buffer.InsertRunesAt(0, 2, []rune("x\ny"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"abx", "ycd"}, buffer.GetLines())
}

// TestInsertRunesOutOfBounds verifies invalid positions are rejected
// without mutating the buffer.
func TestInsertRunesOutOfBounds(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("ab"))

	assert.Error(t, buffer.InsertRunesAt(5, 0, []rune("x")))
	assert.Error(t, buffer.InsertRunesAt(0, 3, []rune("x")))
	assert.Equal(t, []string{"ab"}, buffer.GetLines())
}

// TestDeleteRunesCrossesLines verifies deleting past a line end merges
// with the next line.
func TestDeleteRunesCrossesLines(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("abc\ndef"))

	err := buffer.DeleteRunesAt(0, 2, 3)
	assert.Nil(t, err)
	assert.Equal(t, []string{"abef"}, buffer.GetLines())
}

// TestSetCursorClamps verifies the cursor may rest one column past the
// line end but never beyond.
func TestSetCursorClamps(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("abc"))

	buffer.SetCursor(Cursor{Position: Position{0, 99}})
	assert.Equal(t, 3, buffer.GetCursor().Position.Col)

	buffer.SetCursor(Cursor{Position: Position{-2, -2}})
	assert.Equal(t, Position{0, 0}, buffer.GetCursor().Position)

	buffer.SetCursor(Cursor{Position: Position{99, 0}})
	assert.Equal(t, 0, buffer.GetCursor().Position.Row)
}

// TestContentRoundTrip verifies SetContent and GetCurrentContent are
// inverse for arbitrary text.
func TestContentRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		content := rapid.StringMatching(`[a-z \n]{0,60}`).Draw(t, "content")
		buffer := NewBufferFromBytes([]byte(content))
		assert.Equal(t, content, buffer.GetCurrentContent())
	})
}

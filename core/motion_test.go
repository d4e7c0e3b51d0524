package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func motionTarget(t *testing.T, res *motionResult) Position {
	t.Helper()
	if res == nil {
		t.Fatal("expected a motion result")
	}
	return res.target
}

// ============================================================================
// Word motions
// ============================================================================

// TestWordForward verifies w stops at word starts and treats punctuation as
// its own class.
func TestWordForward(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("foo.bar baz"))

	res := motionWordForward(buffer, Position{0, 0}, 1, false)
	assert.Equal(t, Position{0, 3}, motionTarget(t, res))

	res = motionWordForward(buffer, Position{0, 3}, 1, false)
	assert.Equal(t, Position{0, 4}, motionTarget(t, res))

	res = motionWordForward(buffer, Position{0, 4}, 1, false)
	assert.Equal(t, Position{0, 8}, motionTarget(t, res))
}

// TestBigWordForward verifies W only breaks on whitespace.
func TestBigWordForward(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("foo.bar baz"))

	res := motionWordForward(buffer, Position{0, 0}, 1, true)
	assert.Equal(t, Position{0, 8}, motionTarget(t, res))
}

// TestWordForwardCrossesLines verifies w skips the leading whitespace of
// the next line and stops on empty lines.
func TestWordForwardCrossesLines(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("abc\n\n  def"))

	res := motionWordForward(buffer, Position{0, 2}, 1, false)
	assert.Equal(t, Position{1, 0}, motionTarget(t, res))

	res = motionWordForward(buffer, Position{1, 0}, 1, false)
	assert.Equal(t, Position{2, 2}, motionTarget(t, res))
}

// TestWordBackward verifies b is symmetric to w.
func TestWordBackward(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("foo.bar baz"))

	res := motionWordBackward(buffer, Position{0, 8}, 1, false)
	assert.Equal(t, Position{0, 4}, motionTarget(t, res))

	res = motionWordBackward(buffer, Position{0, 4}, 1, false)
	assert.Equal(t, Position{0, 3}, motionTarget(t, res))

	res = motionWordBackward(buffer, Position{0, 3}, 1, false)
	assert.Equal(t, Position{0, 0}, motionTarget(t, res))
}

// TestWordEnd verifies e lands on the last character of the next word.
func TestWordEnd(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("foo.bar baz"))

	res := motionWordEnd(buffer, Position{0, 0}, 1, false)
	assert.Equal(t, Position{0, 2}, motionTarget(t, res))

	res = motionWordEnd(buffer, Position{0, 2}, 1, false)
	assert.Equal(t, Position{0, 3}, motionTarget(t, res))

	res = motionWordEnd(buffer, Position{0, 3}, 1, false)
	assert.Equal(t, Position{0, 6}, motionTarget(t, res))
}

// TestWordEndBackward verifies ge lands on the previous word end.
func TestWordEndBackward(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("foo bar baz"))

	res := motionWordEndBackward(buffer, Position{0, 8}, 1)
	assert.Equal(t, Position{0, 6}, motionTarget(t, res))

	res = motionWordEndBackward(buffer, Position{0, 6}, 1)
	assert.Equal(t, Position{0, 2}, motionTarget(t, res))
}

// TestWordForwardComposability verifies a count of n equals n single steps.
func TestWordForwardComposability(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(
			rapid.StringMatching(`[a-zA-Z0-9 ._-]{0,25}`), 1, 4,
		).Draw(t, "lines")
		buffer := NewBuffer()
		buffer.SetLines(lines)

		n := rapid.IntRange(1, 5).Draw(t, "n")
		bigWord := rapid.Bool().Draw(t, "bigWord")

		batch := motionWordForward(buffer, Position{0, 0}, n, bigWord)

		stepped := motionWordForward(buffer, Position{0, 0}, 1, bigWord)
		for i := 1; i < n && stepped != nil; i++ {
			next := motionWordForward(buffer, stepped.target, 1, bigWord)
			if next == nil {
				break
			}
			stepped = next
		}

		if batch == nil {
			assert.Nil(t, stepped)
		} else if assert.NotNil(t, stepped) {
			assert.Equal(t, stepped.target, batch.target)
		}
	})
}

// ============================================================================
// Find-char motions
// ============================================================================

// TestFindCharForward verifies f counts occurrences strictly.
func TestFindCharForward(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("hello"))

	pos := motionFindChar(buffer, Position{0, 0}, 'l', findForward, 1)
	if assert.NotNil(t, pos) {
		assert.Equal(t, Position{0, 2}, *pos)
	}

	pos = motionFindChar(buffer, Position{0, 0}, 'l', findForward, 2)
	if assert.NotNil(t, pos) {
		assert.Equal(t, Position{0, 3}, *pos)
	}

	assert.Nil(t, motionFindChar(buffer, Position{0, 0}, 'l', findForward, 3))
	assert.Nil(t, motionFindChar(buffer, Position{0, 0}, 'z', findForward, 1))
}

// TestTillForward verifies t stops one before the target and fails when
// already adjacent.
func TestTillForward(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("hello"))

	pos := motionFindChar(buffer, Position{0, 0}, 'l', tillForward, 1)
	if assert.NotNil(t, pos) {
		assert.Equal(t, Position{0, 1}, *pos)
	}

	assert.Nil(t, motionFindChar(buffer, Position{0, 1}, 'l', tillForward, 1))
}

// TestFindCharBackward verifies F and T search toward the line start.
func TestFindCharBackward(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("hello"))

	pos := motionFindChar(buffer, Position{0, 4}, 'l', findBackward, 1)
	if assert.NotNil(t, pos) {
		assert.Equal(t, Position{0, 3}, *pos)
	}

	pos = motionFindChar(buffer, Position{0, 4}, 'e', tillBackward, 1)
	if assert.NotNil(t, pos) {
		assert.Equal(t, Position{0, 2}, *pos)
	}
}

// ============================================================================
// Line motions
// ============================================================================

// TestDollarWithCount verifies $ extends count-1 lines down first.
func TestDollarWithCount(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("abc\ndefgh"))

	res, ok := motionForKey(buffer, Position{0, 0}, RuneKey('$'), 2, false)
	assert.True(t, ok)
	assert.Equal(t, Position{1, 4}, motionTarget(t, res))
	assert.Equal(t, motionInclusive, res.kind)
}

// TestGotoLineClamps verifies out-of-range counts clamp to the buffer.
func TestGotoLineClamps(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("a\nb\nc"))

	res, ok := motionForKey(buffer, Position{0, 0}, RuneKey('G'), 99999, false)
	assert.True(t, ok)
	assert.Equal(t, Position{2, 0}, motionTarget(t, res))

	res, ok = motionForKey(buffer, Position{2, 0}, RuneKey('g'), 0, true)
	assert.True(t, ok)
	assert.Equal(t, Position{0, 0}, motionTarget(t, res))
}

// TestCaretMotion verifies ^ targets the first non-blank column.
func TestCaretMotion(t *testing.T) {
	buffer := NewBufferFromBytes([]byte("   abc"))

	res, ok := motionForKey(buffer, Position{0, 5}, RuneKey('^'), 0, false)
	assert.True(t, ok)
	assert.Equal(t, Position{0, 3}, motionTarget(t, res))
}

// ============================================================================
// Editor-level motion behavior
// ============================================================================

// TestStickyColumn verifies vertical movement reclaims the preferred
// column across a short line.
func TestStickyColumn(t *testing.T) {
	e := newTestEditor("long line here", "ab", "another long one")

	typeKeys(e, "8lj")
	row, col := cursorAt(e)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	typeKeys(e, "j")
	row, col = cursorAt(e)
	assert.Equal(t, 2, row)
	assert.Equal(t, 8, col)
}

// TestMotionCount verifies counts multiply simple motions.
func TestMotionCount(t *testing.T) {
	e := newTestEditor("abcdefgh")

	typeKeys(e, "3l")
	_, col := cursorAt(e)
	assert.Equal(t, 3, col)

	typeKeys(e, "2h")
	_, col = cursorAt(e)
	assert.Equal(t, 1, col)
}

// TestFindRepeat verifies ; repeats and , reverses the last find.
func TestFindRepeat(t *testing.T) {
	e := newTestEditor("abcabcabc")

	typeKeys(e, "fb")
	_, col := cursorAt(e)
	assert.Equal(t, 1, col)

	typeKeys(e, ";")
	_, col = cursorAt(e)
	assert.Equal(t, 4, col)

	typeKeys(e, ",")
	_, col = cursorAt(e)
	assert.Equal(t, 1, col)
}

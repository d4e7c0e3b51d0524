package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Charwise visual
// ============================================================================

// TestVisualDelete verifies the selection is inclusive of both endpoints.
func TestVisualDelete(t *testing.T) {
	e := newTestEditor("hello world")

	typeKeys(e, "vllld")
	assert.Equal(t, []string{"o world"}, e.GetBuffer().GetLines())
	assert.True(t, e.IsNormalMode())
	assert.Equal(t, Register{"hell", false}, e.Registers().Unnamed())
}

// TestVisualDeleteBackward verifies selecting backward normalizes the
// range.
func TestVisualDeleteBackward(t *testing.T) {
	e := newTestEditor("hello world")

	typeKeys(e, "4lvhhd")
	assert.Equal(t, []string{"he world"}, e.GetBuffer().GetLines())

	_, col := cursorAt(e)
	assert.Equal(t, 2, col)
}

// TestVisualChange verifies c deletes the selection and enters insert.
func TestVisualChange(t *testing.T) {
	e := newTestEditor("hello world")

	typeKeys(e, "vllllc")
	assert.Equal(t, []string{" world"}, e.GetBuffer().GetLines())
	assert.True(t, e.IsInsertMode())

	typeKeys(e, "bye")
	assert.Equal(t, []string{"bye world"}, e.GetBuffer().GetLines())
}

// TestVisualYank verifies y writes the register, returns to normal mode,
// and leaves the cursor at the selection start.
func TestVisualYank(t *testing.T) {
	e := newTestEditor("hello world")

	typeKeys(e, "wvlly")
	assert.True(t, e.IsNormalMode())
	assert.Equal(t, Register{"wor", false}, e.Registers().Unnamed())

	_, col := cursorAt(e)
	assert.Equal(t, 6, col)
}

// TestVisualSpansLines verifies a charwise selection may cross lines.
func TestVisualSpansLines(t *testing.T) {
	e := newTestEditor("abc", "def")

	typeKeys(e, "lvjd")
	assert.Equal(t, []string{"af"}, e.GetBuffer().GetLines())
	assert.Equal(t, Register{"bc\nde", false}, e.Registers().Unnamed())
}

// TestVisualToggleExits verifies pressing v again drops the selection.
func TestVisualToggleExits(t *testing.T) {
	e := newTestEditor("hello")

	typeKeys(e, "vll")
	assert.True(t, e.IsVisualMode())

	typeKeys(e, "v")
	assert.True(t, e.IsNormalMode())

	typeKeys(e, "x")
	assert.Equal(t, []string{"helo"}, e.GetBuffer().GetLines())
}

// TestVisualEscape verifies escape abandons the selection untouched.
func TestVisualEscape(t *testing.T) {
	e := newTestEditor("hello")

	typeKeys(e, "vll" + esc)
	assert.True(t, e.IsNormalMode())
	assert.Equal(t, []string{"hello"}, e.GetBuffer().GetLines())
}

// TestVisualSwapEnds verifies o moves the cursor to the other end of the
// selection.
func TestVisualSwapEnds(t *testing.T) {
	e := newTestEditor("hello world")

	typeKeys(e, "llvlll")
	_, col := cursorAt(e)
	assert.Equal(t, 5, col)

	typeKeys(e, "o")
	_, col = cursorAt(e)
	assert.Equal(t, 2, col)

	// The selection is unchanged; extend from the new active end
	typeKeys(e, "hd")
	assert.Equal(t, []string{"hworld"}, e.GetBuffer().GetLines())
}

// TestVisualFindChar verifies f extends the selection to the target.
func TestVisualFindChar(t *testing.T) {
	e := newTestEditor("hello world")

	typeKeys(e, "vfod")
	assert.Equal(t, []string{" world"}, e.GetBuffer().GetLines())
}

// ============================================================================
// Linewise visual
// ============================================================================

// TestVisualLineDelete verifies V selects whole rows regardless of column.
func TestVisualLineDelete(t *testing.T) {
	e := newTestEditor("one", "two", "three")

	typeKeys(e, "llVjd")
	assert.Equal(t, []string{"three"}, e.GetBuffer().GetLines())
	assert.Equal(t, Register{"one\ntwo", true}, e.Registers().Unnamed())
}

// TestVisualLineYankPaste verifies a linewise yank pastes as whole lines.
func TestVisualLineYankPaste(t *testing.T) {
	e := newTestEditor("one", "two")

	typeKeys(e, "Vyp")
	assert.Equal(t, []string{"one", "one", "two"}, e.GetBuffer().GetLines())
}

// TestVisualLineChange verifies c replaces the rows with one empty line
// and enters insert.
func TestVisualLineChange(t *testing.T) {
	e := newTestEditor("one", "two", "three")

	typeKeys(e, "Vjc")
	assert.Equal(t, []string{"", "three"}, e.GetBuffer().GetLines())
	assert.True(t, e.IsInsertMode())
}

// TestVisualModeSwitchKeepsAnchor verifies toggling between v and V keeps
// the original anchor.
func TestVisualModeSwitchKeepsAnchor(t *testing.T) {
	e := newTestEditor("one", "two", "three")

	typeKeys(e, "vjVd")
	assert.Equal(t, []string{"three"}, e.GetBuffer().GetLines())
}

// ============================================================================
// Visual-only commands
// ============================================================================

// TestVisualJoin verifies J joins every selected row.
func TestVisualJoin(t *testing.T) {
	e := newTestEditor("one", "two", "three")

	typeKeys(e, "VjjJ")
	assert.Equal(t, []string{"one two three"}, e.GetBuffer().GetLines())
	assert.True(t, e.IsNormalMode())
}

// TestVisualToggleCase verifies ~ swaps case over the selection and exits.
func TestVisualToggleCase(t *testing.T) {
	e := newTestEditor("hello")

	typeKeys(e, "vll~")
	assert.Equal(t, []string{"HELlo"}, e.GetBuffer().GetLines())
	assert.True(t, e.IsNormalMode())

	_, col := cursorAt(e)
	assert.Equal(t, 0, col)
}

// TestVisualLineToggleCase verifies linewise ~ covers the whole rows.
func TestVisualLineToggleCase(t *testing.T) {
	e := newTestEditor("abc", "DEF")

	typeKeys(e, "lVj~")
	assert.Equal(t, []string{"ABC", "def"}, e.GetBuffer().GetLines())
}

// TestVisualIndentStaysSelected verifies > indents and keeps the
// selection active for repeated presses.
func TestVisualIndentStaysSelected(t *testing.T) {
	e := newTestEditor("a", "b")

	typeKeys(e, "Vj>>")
	assert.True(t, e.IsVisualLineMode())
	assert.Equal(t, []string{"    a", "    b"}, e.GetBuffer().GetLines())

	typeKeys(e, "<")
	assert.Equal(t, []string{"  a", "  b"}, e.GetBuffer().GetLines())
}

// TestVisualCountMotion verifies counts apply to motions inside visual
// mode.
func TestVisualCountMotion(t *testing.T) {
	e := newTestEditor("abcdef")

	typeKeys(e, "v3ld")
	assert.Equal(t, []string{"ef"}, e.GetBuffer().GetLines())
}

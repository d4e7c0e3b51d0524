package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Command line editing
// ============================================================================

// TestCommandLinePrompt verifies : opens the command line with a prompt.
func TestCommandLinePrompt(t *testing.T) {
	e := newTestEditor("hello")

	typeKeys(e, ":wq")
	assert.True(t, e.IsCommandMode())
	assert.Equal(t, ":wq", e.GetState().CommandLine)
}

// TestCommandEscapeCancels verifies escape abandons the command line.
func TestCommandEscapeCancels(t *testing.T) {
	e := newTestEditor("hello")

	typeKeys(e, ":q" + esc)
	assert.True(t, e.IsNormalMode())
	assert.False(t, e.GetState().Quit)
}

// TestCommandBackspace verifies backspace edits the pending command and
// exits when the line is already empty.
func TestCommandBackspace(t *testing.T) {
	e := newTestEditor("hello")

	typeKeys(e, ":ab")
	_ = e.HandleKey(SpecialKey(KeyBackspace))
	assert.Equal(t, ":a", e.GetState().CommandLine)

	_ = e.HandleKey(SpecialKey(KeyBackspace))
	_ = e.HandleKey(SpecialKey(KeyBackspace))
	assert.True(t, e.IsNormalMode())
}

// ============================================================================
// Ex-commands
// ============================================================================

// TestQuitCommands verifies :q and :q! raise the quit flag and signal.
func TestQuitCommands(t *testing.T) {
	for _, cmd := range []string{":q\r", ":q!\r"} {
		e := newTestEditor("hello")
		drainSignals(e)

		typeKeys(e, cmd)
		assert.True(t, e.GetState().Quit)

		signals := drainSignals(e)
		if assert.Len(t, signals, 1) {
			assert.IsType(t, QuitSignal{}, signals[0])
		}
	}
}

// TestWriteCommandsSubmit verifies :w, :wq and :send emit the buffer
// content.
func TestWriteCommandsSubmit(t *testing.T) {
	for _, cmd := range []string{":w\r", ":wq\r", ":send\r"} {
		e := newTestEditor("  hello  ")
		drainSignals(e)

		typeKeys(e, cmd)

		signals := drainSignals(e)
		if assert.Len(t, signals, 1) {
			submit, ok := signals[0].(SubmitSignal)
			if assert.True(t, ok) {
				assert.Equal(t, "hello", submit.Value())
			}
		}
	}
}

// TestLineJump verifies a bare number jumps to that 1-based line's first
// non-blank column.
func TestLineJump(t *testing.T) {
	e := newTestEditor("one", "two", "  three", "four")

	typeKeys(e, ":3\r")
	row, col := cursorAt(e)
	assert.Equal(t, 2, row)
	assert.Equal(t, 2, col)
	assert.True(t, e.IsNormalMode())
}

// TestLineJumpClamps verifies an out-of-range line number lands on the
// last line.
func TestLineJumpClamps(t *testing.T) {
	e := newTestEditor("one", "two")

	typeKeys(e, ":999\r")
	row, _ := cursorAt(e)
	assert.Equal(t, 1, row)
}

// TestUnknownCommand verifies unrecognized input reports an E492 message.
func TestUnknownCommand(t *testing.T) {
	e := newTestEditor("hello")
	drainSignals(e)

	typeKeys(e, ":nope\r")
	assert.True(t, e.IsNormalMode())

	signals := drainSignals(e)
	if assert.Len(t, signals, 1) {
		msg, ok := signals[0].(MessageSignal)
		if assert.True(t, ok) {
			text, _ := msg.Value()
			assert.Equal(t, "E492: Not an editor command: nope", text)
		}
	}
}

// TestNohIsAccepted verifies :noh and :nohlsearch are accepted silently.
func TestNohIsAccepted(t *testing.T) {
	for _, cmd := range []string{":noh\r", ":nohlsearch\r"} {
		e := newTestEditor("hello")
		drainSignals(e)

		typeKeys(e, cmd)
		assert.True(t, e.IsNormalMode())
		assert.Equal(t, []string{"hello"}, e.GetBuffer().GetLines())
		assert.False(t, e.GetState().Quit)
	}
}

// TestEmptyCommand verifies :<enter> returns to normal mode untouched.
func TestEmptyCommand(t *testing.T) {
	e := newTestEditor("hello")
	drainSignals(e)

	typeKeys(e, ":\r")
	assert.True(t, e.IsNormalMode())
	assert.Empty(t, drainSignals(e))
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRecorderLifecycle verifies the entry key seeds the recording and
// stop commits it.
func TestRecorderLifecycle(t *testing.T) {
	var r changeRecorder

	assert.Nil(t, r.last())

	r.start(RuneKey('i'))
	r.record(RuneKey('h'))
	r.record(RuneKey('i'))
	r.record(SpecialKey(KeyEscape))
	r.stop()

	got := r.last()
	assert.Equal(t, []KeyEvent{
		RuneKey('i'), RuneKey('h'), RuneKey('i'), SpecialKey(KeyEscape),
	}, got)
}

// TestRecorderIgnoresOutsideRecording verifies record is a no-op when no
// recording is running.
func TestRecorderIgnoresOutsideRecording(t *testing.T) {
	var r changeRecorder

	r.record(RuneKey('x'))
	r.stop()
	assert.Nil(t, r.last())
}

// TestRecorderNestedStart verifies a second start mid-recording does not
// restart the sequence.
func TestRecorderNestedStart(t *testing.T) {
	var r changeRecorder

	r.start(RuneKey('o'))
	r.start(RuneKey('i'))
	r.record(SpecialKey(KeyEscape))
	r.stop()

	got := r.last()
	assert.Equal(t, RuneKey('o'), got[0])
}

// TestRecorderReplayGuard verifies nothing records while a replay is in
// flight.
func TestRecorderReplayGuard(t *testing.T) {
	var r changeRecorder

	r.start(RuneKey('i'))
	r.record(SpecialKey(KeyEscape))
	r.stop()
	committed := r.last()

	r.replaying = true
	r.start(RuneKey('a'))
	r.record(RuneKey('z'))
	r.stop()
	r.replaying = false

	assert.Equal(t, committed, r.last())
}

// ============================================================================
// Repeat through the editor
// ============================================================================

// TestRepeatAppend verifies . replays an append at the new cursor
// position.
func TestRepeatAppend(t *testing.T) {
	e := newTestEditor("ab", "cd")

	typeKeys(e, "A!" + esc)
	assert.Equal(t, []string{"ab!", "cd"}, e.GetBuffer().GetLines())

	typeKeys(e, "j.")
	assert.Equal(t, []string{"ab!", "cd!"}, e.GetBuffer().GetLines())
}

// TestRepeatUsesLatestChange verifies a newer insertion replaces the
// stored sequence.
func TestRepeatUsesLatestChange(t *testing.T) {
	e := newTestEditor("")

	typeKeys(e, "iold" + esc)
	typeKeys(e, "Anew" + esc)
	typeKeys(e, ".")
	assert.Equal(t, []string{"oldnewnew"}, e.GetBuffer().GetLines())
}

// TestRepeatIsUndoable verifies each replay pushes its own undo snapshot.
func TestRepeatIsUndoable(t *testing.T) {
	e := newTestEditor("x")

	typeKeys(e, "Aa" + esc + "..")
	assert.Equal(t, []string{"xaaa"}, e.GetBuffer().GetLines())

	typeKeys(e, "u")
	assert.Equal(t, []string{"xaa"}, e.GetBuffer().GetLines())

	typeKeys(e, "uu")
	assert.Equal(t, []string{"x"}, e.GetBuffer().GetLines())
}

// TestRepeatMotionNotRecorded verifies plain motions never become the
// repeat target.
func TestRepeatMotionNotRecorded(t *testing.T) {
	e := newTestEditor("abc", "def")

	typeKeys(e, "ix" + esc)
	typeKeys(e, "jw$0.")
	assert.Equal(t, []string{"xabc", "xdef"}, e.GetBuffer().GetLines())
}

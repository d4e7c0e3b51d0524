package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUndoStackLIFO verifies snapshots pop in reverse push order.
func TestUndoStackLIFO(t *testing.T) {
	stack := NewUndoStack(10)

	stack.Push(UndoSnapshot{Lines: []string{"first"}})
	stack.Push(UndoSnapshot{Lines: []string{"second"}})

	snap, ok := stack.Pop()
	assert.True(t, ok)
	assert.Equal(t, []string{"second"}, snap.Lines)

	snap, ok = stack.Pop()
	assert.True(t, ok)
	assert.Equal(t, []string{"first"}, snap.Lines)

	_, ok = stack.Pop()
	assert.False(t, ok)
}

// TestUndoStackEvictsOldest verifies overflow drops the oldest snapshot,
// never the newest.
func TestUndoStackEvictsOldest(t *testing.T) {
	stack := NewUndoStack(3)

	for i := range 5 {
		stack.Push(UndoSnapshot{CursorRow: i})
	}

	for want := 4; want >= 2; want-- {
		snap, ok := stack.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, snap.CursorRow)
	}

	_, ok := stack.Pop()
	assert.False(t, ok)
}

// TestUndoStackDefaultCapacity verifies a non-positive capacity falls back
// to the bounded default.
func TestUndoStackDefaultCapacity(t *testing.T) {
	stack := NewUndoStack(0)

	for i := range defaultUndoCapacity + 5 {
		stack.Push(UndoSnapshot{CursorRow: i})
	}

	popped := 0
	for {
		_, ok := stack.Pop()
		if !ok {
			break
		}
		popped++
	}
	assert.Equal(t, defaultUndoCapacity, popped)
}

// TestUndoSnapshotIsolated verifies later edits do not leak into an
// already pushed snapshot.
func TestUndoSnapshotIsolated(t *testing.T) {
	e := newTestEditor("hello")

	typeKeys(e, "x")
	e.GetBuffer().SetLines([]string{"mutated"})

	assert.True(t, e.Undo())
	assert.Equal(t, []string{"hello"}, e.GetBuffer().GetLines())
}

// TestUndoBeyondCapacity verifies edits past the stack bound still unwind
// to the oldest retained snapshot.
func TestUndoBeyondCapacity(t *testing.T) {
	e := newTestEditor("start")
	e.SetUndoStack(NewUndoStack(5))

	for i := range 8 {
		typeKeys(e, "A"+fmt.Sprint(i)+esc)
	}
	assert.Equal(t, []string{"start01234567"}, e.GetBuffer().GetLines())

	for range 10 {
		_ = e.Undo()
	}
	// Only the five most recent snapshots survived
	assert.Equal(t, []string{"start012"}, e.GetBuffer().GetLines())
}

package core

// UndoSnapshot captures the buffer and cursor immediately before a mutating
// command commits its change.
type UndoSnapshot struct {
	Lines     []string
	CursorRow int
	CursorCol int
}

// UndoStack is the host-owned handle the engine pushes snapshots onto. Pop
// reports whether a snapshot existed; popping an empty stack is not an
// error.
type UndoStack interface {
	Push(UndoSnapshot)
	Pop() (UndoSnapshot, bool)
}

const defaultUndoCapacity = 100

// boundedUndoStack keeps at most capacity snapshots, silently discarding
// the oldest on overflow.
type boundedUndoStack struct {
	entries  []UndoSnapshot
	capacity int
}

// NewUndoStack creates the default bounded undo stack. A capacity of zero
// or less falls back to the default of 100.
func NewUndoStack(capacity int) UndoStack {
	if capacity <= 0 {
		capacity = defaultUndoCapacity
	}
	return &boundedUndoStack{capacity: capacity}
}

func (s *boundedUndoStack) Push(snapshot UndoSnapshot) {
	s.entries = append(s.entries, snapshot)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}
}

func (s *boundedUndoStack) Pop() (UndoSnapshot, bool) {
	if len(s.entries) == 0 {
		return UndoSnapshot{}, false
	}
	snapshot := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return snapshot, true
}

package core

// SelectionType indicates the selection status of a position
type SelectionType int

const (
	SelectionNone      SelectionType = iota // Position is not selected
	SelectionCharacter                      // Position is part of a character-wise visual selection
	SelectionLine                           // Position is part of a line-wise visual selection
)

// FindDirection is the remembered f/F/t/T variant of a find-char motion.
type FindDirection = findDirection

const (
	FindForward  = findForward
	FindBackward = findBackward
	TillForward  = tillForward
	TillBackward = tillBackward
)

// FindSpec remembers the last successful find-char motion for ;/, repeats.
type FindSpec struct {
	Target rune
	Dir    FindDirection
}

// Editor represents the main editor interface
type Editor interface {
	// Buffer manipulation
	GetBuffer() Buffer
	SetBuffer(Buffer)  // Replace the current buffer
	SetContent([]byte) // Set buffer content from byte slice

	// Mode handling
	GetMode() EditorMode
	SetNormalMode()
	SetInsertMode()
	SetVisualMode()
	SetVisualLineMode()
	SetCommandMode()
	SetReplaceCharMode()
	SetFindCharMode(dir FindDirection, returnTo Mode)

	// Event handling
	HandleKey(key KeyEvent) error // Process a single input event

	// State management
	GetState() State      // Get the current editor state
	SetState(State)       // Update the editor state (used internally)
	UpdateStatus(string)  // Helper to set status line
	UpdateCommand(string) // Helper to set command line

	// Command execution (called from command mode)
	ExecuteCommand(cmd string) error

	// Undo handling
	PushUndo()              // Snapshot buffer and cursor before a mutating command
	Undo() bool             // Restore the most recent snapshot; false if none existed
	SetUndoStack(UndoStack) // Replace the default bounded stack with a host-owned one

	// Session stores
	Registers() *RegisterStore
	LastFind() (FindSpec, bool)
	SetLastFind(FindSpec)

	// Change-repeat recording
	StartChangeRecording(entry KeyEvent)
	StopChangeRecording()
	ReplayLastChange()

	// Host sinks
	Submit() // Send the trimmed buffer content to the host
	Quit()   // Signal to quit the editor
	WriteClipboard(text string) error

	GetUpdateSignalChan() <-chan Signal            // For UI updates
	GetSelectionStatus(pos Position) SelectionType // Get selection status of a position
	DispatchError(id ErrorId, err error)           // Dispatch errors to consumers
	DispatchMessage(text string)                   // Dispatch transient messages to consumers
	DispatchSignal(signal Signal)                  // Dispatch signals to consumers

	// Pending-state management
	ResetPendingCount()
	ResetPending() // Clears count, operator and g-prefix state

	// Insert delegation
	SetInsertDelegate(InsertDelegate)
	InsertHandler() InsertDelegate

	ShowRelativeLineNumbers(bool)
	IsNormalMode() bool
	IsInsertMode() bool
	IsVisualMode() bool
	IsVisualLineMode() bool
	IsCommandMode() bool
}

// Clipboard mirrors yanked text into a host clipboard.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// InsertDelegate owns ordinary insertion while in insert mode: the engine
// forwards every event it does not special-case. The default delegate
// writes straight into the buffer; a host can substitute its own
// line-editing widget.
type InsertDelegate interface {
	InsertRune(buffer Buffer, r rune) *EditorError
	InsertNewline(buffer Buffer) *EditorError
	Backspace(buffer Buffer) *EditorError
}

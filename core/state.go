package core

import (
	"slices"
	"strings"
)

// State represents the externally observable state of the editor session.
type State struct {
	Mode        Mode   // Current editing mode
	StatusLine  string // Content of the status line (bottom line)
	CommandLine string // Current command being typed or pending-keys display
	Quit        bool   // Flag indicating if the editor should exit

	// Viewport information
	TopLine        int // First line visible in the viewport (0-indexed)
	ViewportHeight int // Number of lines that can be displayed
	ViewportWidth  int // Number of columns that can be displayed
	AvailableWidth int // Width available for text rendering

	// Visual mode selection anchor (Position{-1,-1} when inactive)
	VisualStart Position

	// Pending command state, reset after every completed command
	PendingCount    *int     // Accumulated repeat multiplier (nil = none)
	PendingOperator Operator // Operator awaiting a motion or line range
	GPending        bool     // A g prefix has been seen

	// UI options
	RelativeNumbers bool
}

// InitialState creates a default state
func InitialState() State {
	return State{
		Mode:           NormalMode,
		StatusLine:     "-- NORMAL --",
		TopLine:        0,
		ViewportHeight: 24,
		ViewportWidth:  80,
		AvailableWidth: 80,
		VisualStart:    Position{-1, -1},
	}
}

// Concrete implementation of Editor
type editor struct {
	buffer      Buffer
	currentMode EditorMode
	modes       map[Mode]EditorMode
	state       State

	undo      UndoStack
	registers *RegisterStore
	recorder  changeRecorder
	lastFind  *FindSpec

	clipboard Clipboard
	delegate  InsertDelegate

	updateSignal chan Signal
}

// New creates a new editor instance. The clipboard may be nil, in which
// case yanks stay in the register store only.
func New(clipboard Clipboard) Editor {
	e := &editor{
		buffer:       NewBuffer(),
		modes:        make(map[Mode]EditorMode),
		state:        InitialState(),
		undo:         NewUndoStack(defaultUndoCapacity),
		registers:    NewRegisterStore(),
		clipboard:    clipboard,
		updateSignal: make(chan Signal, 100),
	}
	e.delegate = &bufferInsertDelegate{}

	e.modes[NormalMode] = NewNormalMode()
	e.modes[InsertMode] = NewInsertMode()
	e.modes[VisualMode] = NewVisualMode()
	e.modes[VisualLineMode] = NewVisualLineMode()
	e.modes[ReplaceCharMode] = NewReplaceCharMode()
	e.modes[FindCharMode] = NewFindCharMode()
	e.modes[CommandMode] = NewCommandMode()

	e.currentMode = e.modes[NormalMode]
	e.currentMode.Enter(e, e.buffer)

	return e
}

// SetUndoStack replaces the default bounded undo stack with a host-owned
// one. Intended for wiring before the first event.
func (e *editor) SetUndoStack(stack UndoStack) {
	if stack != nil {
		e.undo = stack
	}
}

func (e *editor) setMode(modeName Mode) error {
	newMode, ok := e.modes[modeName]
	if !ok {
		return ErrInvalidMode
	}

	if e.currentMode != nil {
		e.currentMode.Exit(e, e.buffer)
	}

	e.currentMode = newMode
	e.state.Mode = modeName
	e.currentMode.Enter(e, e.buffer)

	return nil
}

func (e *editor) SetNormalMode()      { e.setMode(NormalMode) }
func (e *editor) SetInsertMode()      { e.setMode(InsertMode) }
func (e *editor) SetVisualMode()      { e.setMode(VisualMode) }
func (e *editor) SetVisualLineMode()  { e.setMode(VisualLineMode) }
func (e *editor) SetCommandMode()     { e.setMode(CommandMode) }
func (e *editor) SetReplaceCharMode() { e.setMode(ReplaceCharMode) }

func (e *editor) SetFindCharMode(dir FindDirection, returnTo Mode) {
	if m, ok := e.modes[FindCharMode].(*findCharMode); ok {
		m.dir = dir
		m.returnTo = returnTo
	}
	e.setMode(FindCharMode)
}

func (e *editor) GetBuffer() Buffer {
	return e.buffer
}

func (e *editor) SetBuffer(buffer Buffer) {
	e.buffer = buffer
	e.undo = NewUndoStack(defaultUndoCapacity)
	e.ScrollViewport()
}

func (e *editor) SetContent(content []byte) {
	e.SetBuffer(NewBufferFromBytes(content))
}

func (e *editor) GetMode() EditorMode {
	return e.currentMode
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal
}

// HandleKey routes one input event through the mode state machine. Exactly
// one event is processed to completion before the next is accepted; the
// only re-entrancy is the change-repeat replay, which synchronously
// re-enters this dispatcher once per recorded event.
func (e *editor) HandleKey(key KeyEvent) error {
	if e.currentMode == nil {
		return ErrInvalidMode
	}

	// Ctrl+Enter always forces normal mode, then submits
	if key.Key == KeyEnter && key.Modifiers&ModCtrl != 0 {
		if e.state.Mode != NormalMode {
			e.setMode(NormalMode)
		}
		e.Submit()
		return nil
	}

	// Ctrl+C behaves as escape: cancel toward normal, never clears content
	if key.Modifiers&ModCtrl != 0 && (key.Rune == 'c' || key.Rune == 'C') {
		key = SpecialKey(KeyEscape)
	}

	e.recorder.record(key)

	err := e.currentMode.HandleKey(e, e.buffer, key)

	e.ScrollViewport()

	if err != nil {
		return err.err
	}
	return nil
}

func (e *editor) GetState() State {
	return e.state
}

// SetState allows internal updates (e.g., from modes)
func (e *editor) SetState(state State) {
	e.state = state
}

// UpdateStatus is a helper for modes to update the status line
func (e *editor) UpdateStatus(status string) {
	e.state.StatusLine = status
}

// UpdateCommand is a helper for modes to update the command line
func (e *editor) UpdateCommand(cmd string) {
	e.state.CommandLine = cmd
}

// ExecuteCommand parses and runs an ex-command entered in command mode.
func (e *editor) ExecuteCommand(cmd string) error {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	switch cmd {
	case "w", "wq", "send":
		e.Submit()
		return nil

	case "q", "q!":
		e.Quit()
		return nil

	case "noh", "nohlsearch":
		e.DispatchMessage("")
		return nil

	default:
		if lineNum, ok := parseLineNumber(cmd); ok {
			targetRow := clampRow(e.buffer, lineNum-1)
			cursor := e.buffer.GetCursor()
			cursor.Position.Row = targetRow
			cursor.MoveToFirstNonBlank(e.buffer)
			e.buffer.SetCursor(cursor)
			e.ScrollViewport()
			return nil
		}
		e.DispatchMessage(unknownCommandMessage(cmd))
		return nil
	}
}

// parseLineNumber accepts a string of decimal digits as a 1-based line
// number.
func parseLineNumber(cmd string) (int, bool) {
	if cmd == "" {
		return 0, false
	}
	n := 0
	for _, r := range cmd {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n < 1 {
		return 0, false
	}
	return n, true
}

// ScrollViewport ensures the cursor is within the visible area
func (e *editor) ScrollViewport() {
	row := e.buffer.GetCursor().Position.Row

	if row < e.state.TopLine {
		e.state.TopLine = row
	} else if row >= e.state.TopLine+e.state.ViewportHeight {
		e.state.TopLine = row - e.state.ViewportHeight + 1
	}

	if e.state.TopLine < 0 {
		e.state.TopLine = 0
	}
}

// --- Undo handling ---

// PushUndo snapshots the buffer and cursor onto the undo stack. Called
// immediately before a mutating command commits its change.
func (e *editor) PushUndo() {
	cursor := e.buffer.GetCursor()
	e.undo.Push(UndoSnapshot{
		Lines:     slices.Clone(e.buffer.GetLines()),
		CursorRow: cursor.Position.Row,
		CursorCol: cursor.Position.Col,
	})
}

// Undo restores the most recent snapshot. An empty stack is silently a
// no-op.
func (e *editor) Undo() bool {
	snapshot, ok := e.undo.Pop()
	if !ok {
		return false
	}

	e.buffer.SetLines(snapshot.Lines)
	cursor := e.buffer.GetCursor()
	cursor.Position = Position{snapshot.CursorRow, snapshot.CursorCol}
	cursor.Preferred = snapshot.CursorCol
	e.buffer.SetCursor(cursor)

	e.ScrollViewport()
	return true
}

// --- Session stores ---

func (e *editor) Registers() *RegisterStore {
	return e.registers
}

func (e *editor) LastFind() (FindSpec, bool) {
	if e.lastFind == nil {
		return FindSpec{}, false
	}
	return *e.lastFind, true
}

func (e *editor) SetLastFind(spec FindSpec) {
	e.lastFind = &spec
}

// --- Change-repeat recording ---

func (e *editor) StartChangeRecording(entry KeyEvent) {
	e.recorder.start(entry)
}

func (e *editor) StopChangeRecording() {
	e.recorder.stop()
}

// ReplayLastChange re-dispatches the last recorded insertion-producing
// command through the state machine. The replay flag keeps the replayed
// events from starting a fresh recording; the replay is synchronous and
// atomic from the caller's perspective.
func (e *editor) ReplayLastChange() {
	keys := e.recorder.last()
	if len(keys) == 0 {
		return
	}

	e.recorder.replaying = true
	defer func() { e.recorder.replaying = false }()

	for _, key := range keys {
		_ = e.HandleKey(key)
	}
}

// --- Host sinks ---

// Submit sends the trimmed buffer content to the host's submit sink.
func (e *editor) Submit() {
	e.DispatchSignal(SubmitSignal{content: strings.TrimSpace(e.buffer.GetCurrentContent())})
}

func (e *editor) Quit() {
	e.state.Quit = true
	e.DispatchSignal(QuitSignal{})
}

// WriteClipboard mirrors text to the host clipboard, when one is wired.
func (e *editor) WriteClipboard(text string) error {
	if e.clipboard == nil {
		return nil
	}
	return e.clipboard.Write(text)
}

// --- Pending-state management ---

func (e *editor) ResetPendingCount() {
	if e.state.PendingCount != nil {
		e.state.PendingCount = nil
		e.UpdateCommand("")
	}
}

// ResetPending clears the whole transient command state: count, pending
// operator and g-prefix flag.
func (e *editor) ResetPending() {
	e.state.PendingOperator = OpNone
	e.state.GPending = false
	e.ResetPendingCount()
	e.UpdateCommand("")
}

// --- Insert delegation ---

func (e *editor) SetInsertDelegate(delegate InsertDelegate) {
	if delegate != nil {
		e.delegate = delegate
	}
}

func (e *editor) InsertHandler() InsertDelegate {
	return e.delegate
}

// --- Selection inspection (for hosts styling the selection) ---

func (e *editor) IsSelected() bool {
	return e.state.VisualStart.Row != -1
}

func (e *editor) GetSelectionStatus(pos Position) SelectionType {
	if e.state.VisualStart.Row == -1 {
		return SelectionNone
	}

	cursor := e.buffer.GetCursor()
	selStart, selEnd := NormalizeSelection(e.state.VisualStart, cursor.Position)

	if e.state.Mode == VisualLineMode {
		if pos.Row >= selStart.Row && pos.Row <= selEnd.Row {
			return SelectionLine
		}
		return SelectionNone
	}

	inCharSelection := (pos.Row > selStart.Row && pos.Row < selEnd.Row) ||
		(pos.Row == selStart.Row && pos.Row == selEnd.Row && pos.Col >= selStart.Col && pos.Col <= selEnd.Col) ||
		(pos.Row == selStart.Row && pos.Row != selEnd.Row && pos.Col >= selStart.Col) ||
		(pos.Row == selEnd.Row && pos.Row != selStart.Row && pos.Col <= selEnd.Col)

	if inCharSelection {
		return SelectionCharacter
	}
	return SelectionNone
}

func (e *editor) ShowRelativeLineNumbers(show bool) {
	e.state.RelativeNumbers = show
}

func (e *editor) IsNormalMode() bool {
	return e.state.Mode == NormalMode
}

func (e *editor) IsInsertMode() bool {
	return e.state.Mode == InsertMode
}

func (e *editor) IsVisualMode() bool {
	return e.state.Mode == VisualMode
}

func (e *editor) IsVisualLineMode() bool {
	return e.state.Mode == VisualLineMode
}

func (e *editor) IsCommandMode() bool {
	return e.state.Mode == CommandMode
}

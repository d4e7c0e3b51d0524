package core

type Mode string

const (
	NormalMode      Mode = "normal"
	InsertMode      Mode = "insert"
	VisualMode      Mode = "visual"
	VisualLineMode  Mode = "visual-line"
	ReplaceCharMode Mode = "replace-char"
	FindCharMode    Mode = "find-char"
	CommandMode     Mode = "command"
)

// EditorMode represents one editing mode of the state machine. Exactly one
// mode is active at a time; the editor routes every event to the active
// mode's HandleKey.
type EditorMode interface {
	Name() Mode
	// HandleKey processes a single input event. Boundary conditions and
	// unsatisfiable motions are absorbed locally; only real failures
	// (invalid buffer positions) surface as an *EditorError.
	HandleKey(editor Editor, buffer Buffer, key KeyEvent) *EditorError
	Enter(editor Editor, buffer Buffer) // Called when entering the mode
	Exit(editor Editor, buffer Buffer)  // Called when exiting the mode
}

package core

// Test helpers shared across the package tests.

const esc = "\x1b"

// newTestEditor builds an editor with no clipboard and the given lines.
func newTestEditor(lines ...string) Editor {
	e := New(nil)
	if len(lines) > 0 {
		e.GetBuffer().SetLines(lines)
	}
	return e
}

// typeKeys feeds a string of input, translating \x1b to escape and \r to
// enter.
func typeKeys(e Editor, keys string) {
	for _, r := range keys {
		switch r {
		case '\x1b':
			_ = e.HandleKey(SpecialKey(KeyEscape))
		case '\r', '\n':
			_ = e.HandleKey(SpecialKey(KeyEnter))
		case ' ':
			_ = e.HandleKey(SpecialKey(KeySpace))
		default:
			_ = e.HandleKey(RuneKey(r))
		}
	}
}

func cursorAt(e Editor) (row, col int) {
	cursor := e.GetBuffer().GetCursor()
	return cursor.Position.Row, cursor.Position.Col
}

// drainSignals empties the update channel and returns everything buffered.
func drainSignals(e Editor) []Signal {
	var signals []Signal
	for {
		select {
		case s := <-e.GetUpdateSignalChan():
			signals = append(signals, s)
		default:
			return signals
		}
	}
}

// captureClipboard records the last write for assertions.
type captureClipboard struct {
	text string
}

func (c *captureClipboard) Write(text string) error {
	c.text = text
	return nil
}

func (c *captureClipboard) Read() (string, error) {
	return c.text, nil
}

package core

type commandMode struct {
	buf []rune
}

func NewCommandMode() EditorMode {
	return &commandMode{}
}

func (m *commandMode) Name() Mode {
	return CommandMode
}

func (m *commandMode) Enter(e Editor, buffer Buffer) {
	m.buf = m.buf[:0]
	e.UpdateCommand(":")
	e.UpdateStatus("-- COMMAND --")
}

func (m *commandMode) Exit(e Editor, buffer Buffer) {
	m.buf = m.buf[:0]
}

func (m *commandMode) HandleKey(e Editor, buffer Buffer, key KeyEvent) *EditorError {
	switch key.Key {
	case KeyEscape:
		e.SetNormalMode()
		return nil

	case KeyEnter:
		cmd := string(m.buf)
		e.SetNormalMode()
		if err := e.ExecuteCommand(cmd); err != nil {
			return &EditorError{id: ErrInvalidCommandId, err: err}
		}
		return nil

	case KeyBackspace:
		if len(m.buf) == 0 {
			e.SetNormalMode()
			return nil
		}
		m.buf = m.buf[:len(m.buf)-1]
		e.UpdateCommand(":" + string(m.buf))
		return nil

	case KeySpace:
		m.buf = append(m.buf, ' ')
		e.UpdateCommand(":" + string(m.buf))
		return nil
	}

	if key.IsRune() {
		m.buf = append(m.buf, key.Rune)
		e.UpdateCommand(":" + string(m.buf))
	}
	return nil
}

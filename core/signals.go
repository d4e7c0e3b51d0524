package core

import "time"

// Signal is delivered on the editor's update channel. The host drains the
// channel and reacts; the core never blocks on a slow consumer.
type Signal any

// SubmitSignal carries the trimmed buffer content for the host's submit
// sink. Emitted by Enter in normal mode, Ctrl+Enter in any mode, and the
// :w/:wq/:send commands.
type SubmitSignal struct {
	content string
}

func (s SubmitSignal) Value() string {
	return s.content
}

// QuitSignal asks the host to tear the editor down. Emitted by :q and :q!.
type QuitSignal struct{}

// MessageSignal carries transient informational text. A new message
// supersedes the previous one; duration is a display hint for the host.
type MessageSignal struct {
	text     string
	duration time.Duration
}

func (m MessageSignal) Value() (text string, duration time.Duration) {
	return m.text, m.duration
}

type ErrorSignal EditorError

func (e ErrorSignal) Value() (id ErrorId, err error) {
	return e.id, e.err
}

// YankSignal notifies the host that text was yanked, so it can flash the
// yanked region before reverting to normal styling.
type YankSignal struct {
	totalLines int
	linewise   bool
}

func (y YankSignal) Value() (totalLines int, linewise bool) {
	return y.totalLines, y.linewise
}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}

package core

import (
	"errors"
	"log"
)

var (
	ErrEndOfBuffer     = errors.New("end of buffer")
	ErrStartOfBuffer   = errors.New("start of buffer")
	ErrEndOfLine       = errors.New("end of line")
	ErrStartOfLine     = errors.New("start of line")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidCommand  = errors.New("invalid command")
	ErrDeleteRunes     = errors.New("cannot delete runes")
)

type ErrorId int

const (
	ErrEndOfBufferId ErrorId = iota
	ErrStartOfBufferId
	ErrEndOfLineId
	ErrStartOfLineId
	ErrInvalidPositionId
	ErrInvalidModeId
	ErrInvalidCommandId
	ErrDeleteRunesId
	ErrFailedToYankId
	ErrFailedToInsertTextId
	ErrUndoFailedId
)

// EditorError pairs a stable identifier with the underlying error so that
// consumers can react to the class of failure without string matching.
type EditorError struct {
	id  ErrorId
	err error
}

func (e *EditorError) Error() string {
	return e.err.Error()
}

func (e *EditorError) Unwrap() error {
	return e.err
}

func (e *editor) DispatchError(id ErrorId, err error) {
	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}

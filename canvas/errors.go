package canvas

import (
	"errors"
	"fmt"
)

// Sentinel errors for canvas failures.
var (
	ErrNoPage       = errors.New("canvas: no page has been added")
	ErrClosed       = errors.New("canvas: document is closed")
	ErrInvalidImage = errors.New("canvas: invalid image")
)

// Error reports the canvas operation that failed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("canvas.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("canvas.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

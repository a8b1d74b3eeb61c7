package stateful

import (
	"errors"
	"fmt"
)

// Precondition failures. The canvas and draw list report caller contract
// violations by panicking with an error that wraps one of these, so a
// recovering caller can classify it with errors.Is.
var (
	ErrInvalidHandle   = errors.New("stateful: handle out of range")
	ErrEmptySlot       = errors.New("stateful: handle refers to an erased primitive")
	ErrNilPrimitive    = errors.New("stateful: nil primitive")
	ErrInvalidSize     = errors.New("stateful: canvas size must be positive")
	ErrNotDragging     = errors.New("stateful: primitive is not being dragged")
	ErrAlreadyDragging = errors.New("stateful: primitive is already being dragged")
	ErrWrongType       = errors.New("stateful: primitive has a different type")
)

func fail(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}

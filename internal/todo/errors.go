package todo

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput = errors.New("task text is empty")
	ErrNotFound   = errors.New("task not found")
)

// ValidationError reports rejected user input. It matches ErrEmptyInput.
type ValidationError struct {
	Op string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrEmptyInput)
}

func (e *ValidationError) Unwrap() error {
	return ErrEmptyInput
}

// LookupError reports an id that is not in the live list, or a row that is
// not in the state the operation needs. It matches ErrNotFound.
type LookupError struct {
	Op string
	ID TaskID
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.ID, ErrNotFound)
}

func (e *LookupError) Unwrap() error {
	return ErrNotFound
}

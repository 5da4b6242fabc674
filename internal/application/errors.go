package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrRejected         = errors.New("operation rejected")
	ErrUnknownState     = errors.New("page state unknown, history cleared")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNothingToRedo    = errors.New("nothing to redo")
	ErrNoPage           = errors.New("no page open")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CommandError reports a command that did not apply
type CommandError struct {
	Op          string // "execute", "undo" or "redo"
	CommandType string
	Err         error
}

func (e *CommandError) Error() string {
	if e.CommandType == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.CommandType, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ElementNotFoundError reports an element ID missing from the open page
type ElementNotFoundError struct {
	ID string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element %s not found", e.ID)
}

func (e *ElementNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

package commands

import (
	"io"
	"log/slog"
)

// Stack executes commands and keeps the undo and redo histories.
//
// A command whose execution or revert reports UnknownState clears both
// histories: the page no longer matches what the recorded commands expect.
type Stack struct {
	undo   []Command
	redo   []Command
	logger *slog.Logger
}

// StackOption configures a Stack
type StackOption func(*Stack)

// WithLogger sets the logger used to report history resets
func WithLogger(logger *slog.Logger) StackOption {
	return func(s *Stack) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStack creates an empty command stack
func NewStack(opts ...StackOption) *Stack {
	s := &Stack{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs cmd and records it, merging it into the most recent undo
// entry when the command allows it. Any successful execution invalidates
// the redo history, including one that merges into the previous entry.
func (s *Stack) Execute(cmd Command) Result {
	switch res := cmd.Execute(); res {
	case Applied:
	case Rejected:
		s.logger.Debug("command rejected", "type", cmd.Type())
		return Rejected
	default:
		s.reset("execute", cmd)
		return UnknownState
	}

	s.redo = nil

	if top := s.PeekUndo(); top != nil && cmd.MaybeMergeWith(top) {
		s.logger.Debug("command merged", "type", cmd.Type(), "undo", len(s.undo))
		return Applied
	}

	s.undo = append(s.undo, cmd)
	s.logger.Debug("command recorded", "type", cmd.Type(), "undo", len(s.undo))
	return Applied
}

// Undo reverts the most recent command. With an empty undo history it does
// nothing and returns Rejected.
func (s *Stack) Undo() Result {
	if len(s.undo) == 0 {
		return Rejected
	}

	cmd := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	if res := cmd.Undo(); res != Applied {
		s.reset("undo", cmd)
		return UnknownState
	}

	s.redo = append(s.redo, cmd)
	return Applied
}

// Redo re-executes the most recently undone command. With an empty redo
// history it does nothing and returns Rejected.
func (s *Stack) Redo() Result {
	if len(s.redo) == 0 {
		return Rejected
	}

	cmd := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]

	if res := cmd.Execute(); res != Applied {
		s.reset("redo", cmd)
		return UnknownState
	}

	s.undo = append(s.undo, cmd)
	return Applied
}

// CanUndo reports whether there is a command to undo
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether there is a command to redo
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// UndoLen returns the size of the undo history
func (s *Stack) UndoLen() int { return len(s.undo) }

// RedoLen returns the size of the redo history
func (s *Stack) RedoLen() int { return len(s.redo) }

// PeekUndo returns the command Undo would revert, or nil
func (s *Stack) PeekUndo() Command {
	if len(s.undo) == 0 {
		return nil
	}
	return s.undo[len(s.undo)-1]
}

// PeekRedo returns the command Redo would execute, or nil
func (s *Stack) PeekRedo() Command {
	if len(s.redo) == 0 {
		return nil
	}
	return s.redo[len(s.redo)-1]
}

// Clear drops both histories
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
}

func (s *Stack) reset(op string, cmd Command) {
	s.logger.Warn("page state unknown, clearing history",
		"op", op,
		"type", cmd.Type(),
		"undo", len(s.undo),
		"redo", len(s.redo),
	)
	s.Clear()
}

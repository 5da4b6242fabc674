// Package session implements the editing session: one open page, the
// command stack that records every change made to it, and the element
// selection used by interactive front ends.
package session

import (
	"fmt"
	"io"
	"log/slog"

	"pagecraft/internal/application"
	"pagecraft/internal/application/commands"
	"pagecraft/internal/domain"
	"pagecraft/internal/ports"
)

// Session owns a page and the undo/redo history of the changes made to it.
// All structural and property changes must go through Execute (or the
// helpers built on it) for the history to stay invertible.
//
// A Session is not safe for concurrent use.
type Session struct {
	repo     ports.PageRepository
	logger   *slog.Logger
	page     *domain.Page
	stack    *commands.Stack
	selected *domain.Element
	dirty    bool
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger; it is shared with the command stack
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a session backed by repo. repo may be nil for sessions that
// never load or save.
func New(repo ports.PageRepository, opts ...Option) *Session {
	s := &Session{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.stack = commands.NewStack(commands.WithLogger(s.logger))
	return s
}

// Open loads a page from the repository and starts a fresh history
func (s *Session) Open(pageID string) error {
	if err := application.ValidateRequired("pageID", pageID); err != nil {
		return err
	}
	if s.repo == nil {
		return fmt.Errorf("open %s: %w", pageID, application.ErrInvalidOperation)
	}

	page, err := s.repo.LoadPage(pageID)
	if err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}

	s.SetPage(page)
	s.logger.Info("page opened", "page", page.ID, "elements", page.Count())
	return nil
}

// SetPage replaces the open page and clears the history
func (s *Session) SetPage(page *domain.Page) {
	s.page = page
	s.stack.Clear()
	s.selected = nil
	if page != nil {
		s.selected = page.Root
	}
	s.dirty = false
}

// NewPage opens a new, empty page. It is marked dirty until saved.
func (s *Session) NewPage(name string) (*domain.Page, error) {
	if err := application.ValidateRequired("name", name); err != nil {
		return nil, err
	}
	page := domain.NewPage(name)
	s.SetPage(page)
	s.dirty = true
	return page, nil
}

// Page returns the open page, or nil
func (s *Session) Page() *domain.Page { return s.page }

// Repository returns the page repository, or nil
func (s *Session) Repository() ports.PageRepository { return s.repo }

// Dirty reports whether the page changed since it was opened or saved
func (s *Session) Dirty() bool { return s.dirty }

// Save writes the open page to the repository
func (s *Session) Save() error {
	if s.page == nil {
		return application.ErrNoPage
	}
	if s.repo == nil {
		return fmt.Errorf("save %s: %w", s.page.ID, application.ErrInvalidOperation)
	}
	if err := s.repo.SavePage(s.page); err != nil {
		return fmt.Errorf("failed to save page: %w", err)
	}
	s.dirty = false
	s.logger.Info("page saved", "page", s.page.ID)
	return nil
}

// Element finds an attached element of the open page by ID
func (s *Session) Element(id string) (*domain.Element, error) {
	if s.page == nil {
		return nil, application.ErrNoPage
	}
	if err := application.ValidateRequired("elementID", id); err != nil {
		return nil, err
	}
	el, ok := s.page.Find(id)
	if !ok {
		return nil, &application.ElementNotFoundError{ID: id}
	}
	return el, nil
}

// Select marks an element as the current selection
func (s *Session) Select(id string) error {
	el, err := s.Element(id)
	if err != nil {
		return err
	}
	s.selected = el
	return nil
}

// Selected returns the selected element. A selection that was detached by
// later commands falls back to the page root.
func (s *Session) Selected() *domain.Element {
	if s.page == nil {
		return nil
	}
	if s.selected == nil || (s.selected != s.page.Root && !s.page.Root.Contains(s.selected)) {
		s.selected = s.page.Root
	}
	return s.selected
}

// Execute runs cmd through the command stack
func (s *Session) Execute(cmd commands.Command) error {
	if s.page == nil {
		return application.ErrNoPage
	}
	return s.check("execute", cmd.Type(), s.stack.Execute(cmd))
}

// Undo reverts the most recent change
func (s *Session) Undo() error {
	top := s.stack.PeekUndo()
	if top == nil {
		return application.ErrNothingToUndo
	}
	return s.check("undo", top.Type(), s.stack.Undo())
}

// Redo re-applies the most recently undone change
func (s *Session) Redo() error {
	top := s.stack.PeekRedo()
	if top == nil {
		return application.ErrNothingToRedo
	}
	return s.check("redo", top.Type(), s.stack.Redo())
}

// CanUndo reports whether Undo has something to revert
func (s *Session) CanUndo() bool { return s.stack.CanUndo() }

// CanRedo reports whether Redo has something to re-apply
func (s *Session) CanRedo() bool { return s.stack.CanRedo() }

// History returns the sizes of the undo and redo histories
func (s *Session) History() (undo, redo int) {
	return s.stack.UndoLen(), s.stack.RedoLen()
}

func (s *Session) check(op, commandType string, res commands.Result) error {
	switch res {
	case commands.Applied:
		s.dirty = true
		return nil
	case commands.Rejected:
		return &application.CommandError{Op: op, CommandType: commandType, Err: application.ErrRejected}
	default:
		s.dirty = true
		return &application.CommandError{Op: op, CommandType: commandType, Err: application.ErrUnknownState}
	}
}

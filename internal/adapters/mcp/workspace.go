package mcp

import (
	"fmt"
	"sync"

	"pagecraft/internal/application"
	"pagecraft/internal/application/session"
)

// Workspace serialises tool calls onto a single editing session. Tool
// handlers may run concurrently; the session and its command stack may not.
type Workspace struct {
	mu      sync.Mutex
	session *session.Session
}

// NewWorkspace wraps an editing session for use by tool handlers
func NewWorkspace(s *session.Session) *Workspace {
	return &Workspace{session: s}
}

// Do runs fn with exclusive access to the session. When pageID is set and
// differs from the open page, that page is opened first; switching away
// from a page with unsaved changes is refused.
func (w *Workspace) Do(pageID string, fn func(*session.Session) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensurePage(pageID); err != nil {
		return err
	}
	return fn(w.session)
}

func (w *Workspace) ensurePage(pageID string) error {
	current := w.session.Page()
	if pageID == "" {
		if current == nil {
			return fmt.Errorf("%w: pass page_id", application.ErrNoPage)
		}
		return nil
	}
	if current != nil && current.ID == pageID {
		return nil
	}
	if current != nil && w.session.Dirty() {
		return fmt.Errorf("page %s has unsaved changes; call save first: %w", current.ID, application.ErrInvalidOperation)
	}
	return w.session.Open(pageID)
}

package ports

import "pagecraft/internal/domain"

// PageRepository defines the interface for page storage operations.
// Command history is never stored; only the resulting page tree is.
type PageRepository interface {
	// List operations
	ListPages() ([]domain.PageSummary, error)

	// Load and save operations
	LoadPage(id string) (*domain.Page, error)
	SavePage(page *domain.Page) error

	// Delete operations
	DeletePage(id string) error
}

// PageFileLocator is implemented by repositories that keep one file per
// page, so the file can be handed to an external editor
type PageFileLocator interface {
	PagePath(id string) (string, error)
}

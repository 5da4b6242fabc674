package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"pagecraft/internal/application"
	"pagecraft/internal/domain"
	"pagecraft/internal/ports"
)

// PageExtension is the file extension of stored pages
const PageExtension = ".yaml"

// Repository implements ports.PageRepository with one YAML file per page
type Repository struct {
	pagesPath string
}

// Ensure Repository implements the page ports
var (
	_ ports.PageRepository  = (*Repository)(nil)
	_ ports.PageFileLocator = (*Repository)(nil)
)

// NewRepository creates a new filesystem repository
func NewRepository(pagesPath string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(pagesPath, "~") {
		home, _ := os.UserHomeDir()
		pagesPath = filepath.Join(home, pagesPath[1:])
	}
	return &Repository{pagesPath: pagesPath}
}

// Root returns the directory holding the page files
func (r *Repository) Root() string {
	return r.pagesPath
}

// ListPages returns a summary of every stored page, sorted by name
func (r *Repository) ListPages() ([]domain.PageSummary, error) {
	entries, err := os.ReadDir(r.pagesPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pages: %w", err)
	}

	var pages []domain.PageSummary
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != PageExtension {
			continue
		}

		page, err := r.LoadPage(strings.TrimSuffix(entry.Name(), PageExtension))
		if err != nil {
			return nil, err
		}
		pages = append(pages, domain.PageSummary{
			ID:           page.ID,
			Name:         page.Name,
			ElementCount: page.Count(),
		})
	}

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Name != pages[j].Name {
			return pages[i].Name < pages[j].Name
		}
		return pages[i].ID < pages[j].ID
	})

	return pages, nil
}

// LoadPage reads and decodes a page file
func (r *Repository) LoadPage(id string) (*domain.Page, error) {
	path, err := r.PagePath(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("page %s: %w", id, application.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}

	var doc pageDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", id, err)
	}

	page, err := decodePage(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid page %s: %w", id, err)
	}
	return page, nil
}

// SavePage encodes the page and atomically replaces its file
func (r *Repository) SavePage(page *domain.Page) error {
	path, err := r.PagePath(page.ID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.pagesPath, 0755); err != nil {
		return fmt.Errorf("failed to create pages directory: %w", err)
	}

	data, err := yaml.Marshal(encodePage(page))
	if err != nil {
		return fmt.Errorf("failed to encode page: %w", err)
	}

	tmp, err := os.CreateTemp(r.pagesPath, ".page-*"+PageExtension)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace page file: %w", err)
	}
	return nil
}

// DeletePage removes a page file
func (r *Repository) DeletePage(id string) error {
	path, err := r.PagePath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("page %s: %w", id, application.ErrNotFound)
		}
		return fmt.Errorf("failed to delete page: %w", err)
	}
	return nil
}

// PagePath returns the file path for a page ID
func (r *Repository) PagePath(id string) (string, error) {
	if err := application.ValidateRequired("pageID", id); err != nil {
		return "", err
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", &application.ValidationError{
			Field:   "pageID",
			Message: fmt.Sprintf("invalid page ID: %s", id),
		}
	}
	return filepath.Join(r.pagesPath, id+PageExtension), nil
}

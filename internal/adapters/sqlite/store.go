package sqlite

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pagecraft/internal/application"
	"pagecraft/internal/domain"
	"pagecraft/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.PageRepository using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements PageRepository
var _ ports.PageRepository = (*Store)(nil)

// NewStore creates a new SQLite page store
func NewStore() *Store {
	return &Store{}
}

// Open opens (and if needed creates) the database at dbPath. An empty path
// uses DefaultPath.
func (s *Store) Open(dbPath string) error {
	if dbPath == "" {
		dbPath = DefaultPath()
	}

	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS pages (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			root_id TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS elements (
			page_id TEXT NOT NULL,
			id TEXT NOT NULL,
			parent_id TEXT,
			position INTEGER NOT NULL,
			pattern TEXT NOT NULL,
			name TEXT NOT NULL,
			properties TEXT NOT NULL,
			PRIMARY KEY (page_id, id)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_elements_parent ON elements(page_id, parent_id, position);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// DefaultPath returns the database location under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pagecraft", "pages.db")
}

// ListPages returns a summary of every stored page, sorted by name
func (s *Store) ListPages() ([]domain.PageSummary, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.name, COUNT(e.id)
		FROM pages p
		LEFT JOIN elements e ON e.page_id = p.id
		GROUP BY p.id, p.name
		ORDER BY p.name, p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var pages []domain.PageSummary
	for rows.Next() {
		var p domain.PageSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.ElementCount); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// LoadPage rebuilds a page tree from its element rows
func (s *Store) LoadPage(id string) (*domain.Page, error) {
	if err := application.ValidateRequired("pageID", id); err != nil {
		return nil, err
	}

	page := &domain.Page{ID: id}
	var rootID string
	err := s.db.QueryRow(`SELECT name, root_id FROM pages WHERE id = ?`, id).Scan(&page.Name, &rootID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("page %s: %w", id, application.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT id, parent_id, pattern, name, properties
		FROM elements
		WHERE page_id = ?
		ORDER BY parent_id, position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load elements: %w", err)
	}
	defer rows.Close()

	type row struct {
		el       *domain.Element
		parentID sql.NullString
	}
	var ordered []row
	byID := make(map[string]*domain.Element)

	for rows.Next() {
		var (
			elID, pattern, name, props string
			parentID                   sql.NullString
		)
		if err := rows.Scan(&elID, &parentID, &pattern, &name, &props); err != nil {
			return nil, err
		}

		el := domain.NewElementWithID(elID, pattern, name)
		values, err := decodeProperties(props)
		if err != nil {
			return nil, fmt.Errorf("invalid properties on %s: %w", elID, err)
		}
		for propID, v := range values {
			if err := el.SetPropertyValue(propID, v, ""); err != nil {
				return nil, err
			}
		}

		byID[elID] = el
		ordered = append(ordered, row{el: el, parentID: parentID})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows are ordered by position within each parent, so appending keeps order
	for _, r := range ordered {
		if !r.parentID.Valid {
			continue
		}
		parent, ok := byID[r.parentID.String]
		if !ok {
			return nil, fmt.Errorf("element %s references missing parent %s", r.el.ID(), r.parentID.String)
		}
		if err := r.el.SetParent(parent, domain.AppendIndex); err != nil {
			return nil, fmt.Errorf("element %s: %w", r.el.ID(), err)
		}
	}

	root, ok := byID[rootID]
	if !ok {
		return nil, fmt.Errorf("page %s has no root element", id)
	}
	page.Root = root
	return page, nil
}

// SavePage replaces the stored tree of a page in one transaction
func (s *Store) SavePage(page *domain.Page) (err error) {
	tx, err := s.beginTx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.UpsertPage(page); err != nil {
		return fmt.Errorf("failed to save page: %w", err)
	}
	if err = tx.DeleteElements(page.ID); err != nil {
		return fmt.Errorf("failed to clear elements: %w", err)
	}

	page.Root.Walk(func(el *domain.Element, _ int) bool {
		if err != nil {
			return false
		}
		err = tx.InsertElement(page.ID, el)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("failed to save elements: %w", err)
	}

	return tx.Commit()
}

// DeletePage removes a page and its elements
func (s *Store) DeletePage(id string) (err error) {
	tx, err := s.beginTx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.DeleteElements(id); err != nil {
		return fmt.Errorf("failed to delete elements: %w", err)
	}
	existed, err := tx.DeletePage(id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	if !existed {
		err = fmt.Errorf("page %s: %w", id, application.ErrNotFound)
		return err
	}

	return tx.Commit()
}

func (s *Store) beginTx() (*pageTx, error) {
	if s.db == nil {
		return nil, fmt.Errorf("store not open: %w", application.ErrInvalidOperation)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &pageTx{tx: tx}, nil
}

// decodeProperties decodes stored JSON keeping integers as int, the way
// the YAML page files do. A float with an integral value such as 2.0 is
// written as 2 and therefore comes back as int.
func decodeProperties(data string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.UseNumber()

	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, err
	}
	for k, v := range values {
		values[k] = fromJSONNumber(v)
	}
	return values, nil
}

func fromJSONNumber(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, child := range t {
			t[k] = fromJSONNumber(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = fromJSONNumber(child)
		}
		return t
	default:
		return v
	}
}

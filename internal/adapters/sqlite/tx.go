package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"pagecraft/internal/domain"
)

// pageTx wraps the statements that replace a stored page atomically
type pageTx struct {
	tx *sql.Tx
}

// UpsertPage inserts or updates the page row
func (t *pageTx) UpsertPage(page *domain.Page) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO pages (id, name, root_id, updated_at)
		VALUES (?, ?, ?, ?)
	`, page.ID, page.Name, page.Root.ID(), time.Now().Unix())
	return err
}

// DeletePage removes the page row and reports whether it existed
func (t *pageTx) DeletePage(pageID string) (bool, error) {
	res, err := t.tx.Exec(`DELETE FROM pages WHERE id = ?`, pageID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteElements removes all element rows of a page
func (t *pageTx) DeleteElements(pageID string) error {
	_, err := t.tx.Exec(`DELETE FROM elements WHERE page_id = ?`, pageID)
	return err
}

// InsertElement stores one element with its position under its parent
func (t *pageTx) InsertElement(pageID string, el *domain.Element) error {
	props, err := json.Marshal(el.Properties())
	if err != nil {
		return fmt.Errorf("failed to encode properties of %s: %w", el.ID(), err)
	}

	var parentID sql.NullString
	if p := el.Parent(); p != nil {
		parentID = sql.NullString{String: p.ID(), Valid: true}
	}

	_, err = t.tx.Exec(`
		INSERT INTO elements (page_id, id, parent_id, position, pattern, name, properties)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, pageID, el.ID(), parentID, max(el.Index(), 0), el.Pattern(), el.Name(), string(props))
	return err
}

// Commit commits the transaction
func (t *pageTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *pageTx) Rollback() error {
	return t.tx.Rollback()
}

// Package repository picks the page storage backend from configuration.
package repository

import (
	"fmt"

	"pagecraft/internal/adapters/filesystem"
	"pagecraft/internal/adapters/sqlite"
	"pagecraft/internal/config"
	"pagecraft/internal/ports"
)

// Open returns the configured page repository and a function releasing it
func Open(cfg config.Config) (ports.PageRepository, func() error, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		store := sqlite.NewStore()
		if err := store.Open(cfg.DBPath); err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.StoreYAML, "":
		return filesystem.NewRepository(cfg.PagesPath), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

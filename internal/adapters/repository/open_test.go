package repository

import (
	"path/filepath"
	"testing"

	"pagecraft/internal/adapters/filesystem"
	"pagecraft/internal/adapters/sqlite"
	"pagecraft/internal/config"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.Config
		check   func(t *testing.T, repo any)
		wantErr bool
	}{
		{
			name: "yaml",
			cfg:  config.Config{Store: config.StoreYAML, PagesPath: dir},
			check: func(t *testing.T, repo any) {
				if _, ok := repo.(*filesystem.Repository); !ok {
					t.Errorf("expected filesystem repository, got %T", repo)
				}
			},
		},
		{
			name: "sqlite",
			cfg:  config.Config{Store: config.StoreSQLite, DBPath: filepath.Join(dir, "pages.db")},
			check: func(t *testing.T, repo any) {
				if _, ok := repo.(*sqlite.Store); !ok {
					t.Errorf("expected sqlite store, got %T", repo)
				}
			},
		},
		{
			name:    "unknown",
			cfg:     config.Config{Store: "redis"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, closeFn, err := Open(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer closeFn()
			tt.check(t, repo)
		})
	}
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"pagecraft/internal/adapters/filesystem"
)

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestScriptCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PAGECRAFT_CONFIG", filepath.Join(dir, "missing.toml"))
	t.Setenv("PAGECRAFT_STORE", "yaml")
	t.Setenv("PAGECRAFT_PAGES", dir)

	if err := runCLI(t, "new", "Landing", "--id", "landing"); err != nil {
		t.Fatalf("new failed: %v", err)
	}

	script := filepath.Join(t.TempDir(), "edits.txt")
	content := "add @root text Title\nset @last text Hi\nadd @root box\nundo\n"
	if err := os.WriteFile(script, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := runCLI(t, "script", "landing", script); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	page, err := filesystem.NewRepository(dir).LoadPage("landing")
	if err != nil {
		t.Fatal(err)
	}
	if page.Root.ChildCount() != 1 {
		t.Fatalf("expected one child after undo, got %d", page.Root.ChildCount())
	}
	if got := page.Root.Child(0).PropertyValue("text", ""); got != "Hi" {
		t.Errorf("text = %v, want Hi", got)
	}
}

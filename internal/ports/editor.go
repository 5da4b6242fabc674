package ports

import "os/exec"

// EditorOpener opens page files in an external editor
type EditorOpener interface {
	// OpenFile opens path in the configured editor and waits for it to exit
	OpenFile(path string) error

	// Command returns the editor process without starting it, for callers
	// that need to run it themselves (tea.ExecProcess)
	Command(path string) (*exec.Cmd, error)
}

package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"pagecraft/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	preferred string
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an opener. preferred (e.g. from PAGECRAFT_EDITOR) wins
// over $EDITOR and $VISUAL when set; it may include arguments ("code -w").
func NewOpener(preferred string) *Opener {
	return &Opener{preferred: strings.TrimSpace(preferred)}
}

// OpenFile opens a page file in the editor and waits for it to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	fields := strings.Fields(o.findEditor())
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR or PAGECRAFT_EDITOR")
	}

	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor command line to use
func (o *Opener) findEditor() string {
	for _, candidate := range []string{o.preferred, os.Getenv("EDITOR"), os.Getenv("VISUAL")} {
		if candidate != "" {
			return candidate
		}
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}

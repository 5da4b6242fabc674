package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"

	"pagecraft/internal/application"
	"pagecraft/internal/domain"
)

// Element references usable in scripts in place of an ID
const (
	RefRoot = "@root"
	RefLast = "@last"
)

// RunScript applies one action per line to the open page:
//
//	add <parent> <pattern> [name...]
//	sibling <location> <pattern> [name...]
//	move <element> <parent> [index]
//	up|down|indent|outdent|remove <element>
//	set <element> <property.path> <value...>
//	undo
//	redo
//
// Blank lines and lines starting with # are skipped. @root names the page
// root and @last the element added most recently. Each applied action is
// echoed to out. The first failing line stops the script.
func (s *Session) RunScript(r io.Reader, out io.Writer) error {
	if s.page == nil {
		return application.ErrNoPage
	}

	var last string
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		added, err := s.runLine(strings.Fields(line), last)
		if err != nil {
			return fmt.Errorf("line %d (%s): %w", lineNo, line, err)
		}
		if added != nil {
			last = added.ID()
			fmt.Fprintf(out, "%s -> %s\n", line, last)
		} else {
			fmt.Fprintln(out, line)
		}
	}
	return scanner.Err()
}

func (s *Session) runLine(fields []string, last string) (*domain.Element, error) {
	action, args := fields[0], fields[1:]
	ref := func(i int) string {
		switch args[i] {
		case RefRoot:
			return s.page.Root.ID()
		case RefLast:
			return last
		}
		return args[i]
	}
	need := func(n int) error {
		if len(args) < n {
			return &application.ValidationError{
				Field:   action,
				Message: fmt.Sprintf("expected at least %d arguments, got %d", n, len(args)),
			}
		}
		return nil
	}

	switch action {
	case "add":
		if err := need(2); err != nil {
			return nil, err
		}
		return s.AddChild(ref(0), args[1], strings.Join(args[2:], " "), domain.AppendIndex)

	case "sibling":
		if err := need(2); err != nil {
			return nil, err
		}
		return s.AddSibling(ref(0), args[1], strings.Join(args[2:], " "))

	case "move":
		if err := need(2); err != nil {
			return nil, err
		}
		index := domain.AppendIndex
		if len(args) > 2 {
			i, err := cast.ToIntE(args[2])
			if err != nil {
				return nil, &application.ValidationError{Field: "index", Message: err.Error()}
			}
			index = i
		}
		return nil, s.Move(ref(0), ref(1), index)

	case "up", "down", "indent", "outdent", "remove":
		if err := need(1); err != nil {
			return nil, err
		}
		id := ref(0)
		switch action {
		case "up":
			return nil, s.MoveBy(id, -1)
		case "down":
			return nil, s.MoveBy(id, 1)
		case "indent":
			return nil, s.Indent(id)
		case "outdent":
			return nil, s.Outdent(id)
		default:
			return nil, s.Remove(id)
		}

	case "set":
		if err := need(3); err != nil {
			return nil, err
		}
		return nil, s.SetProperty(ref(0), args[1], application.ParseValue(strings.Join(args[2:], " ")))

	case "undo":
		return nil, s.Undo()

	case "redo":
		return nil, s.Redo()

	default:
		return nil, fmt.Errorf("unknown action %q: %w", action, application.ErrInvalidOperation)
	}
}

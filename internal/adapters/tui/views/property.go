package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cast"

	"pagecraft/internal/adapters/tui/styles"
	"pagecraft/internal/application"
	"pagecraft/internal/application/session"
	"pagecraft/internal/domain"
)

// propertyStage is the step of a property edit
type propertyStage int

const (
	stagePath propertyStage = iota
	stageValue
)

// PropertyEditor edits one property of an element in place. The path is
// chosen first; after that every keystroke in the value input is applied
// to the page, so a burst of typing merges into a single undo step.
type PropertyEditor struct {
	session   *session.Session
	elementID string
	stage     propertyStage

	paths    []string
	pathIdx  int
	input    textinput.Model
	path     string
	original any
	applied  string

	err error
}

// NewPropertyEditor starts editing a property of the element. Tab cycles
// through the element's existing property paths.
func NewPropertyEditor(s *session.Session, el *domain.Element) *PropertyEditor {
	input := textinput.New()
	input.Placeholder = "label or style.color"
	input.CharLimit = 200
	input.Focus()

	e := &PropertyEditor{
		session:   s,
		elementID: el.ID(),
		input:     input,
		pathIdx:   -1,
	}
	for _, leaf := range application.FlattenProperties(el) {
		e.paths = append(e.paths, leaf.Path)
	}
	return e
}

// Update handles a key. It reports true once the edit is finished, with
// a status message for the editor.
func (e *PropertyEditor) Update(msg tea.KeyMsg) (done bool, message string, cmd tea.Cmd) {
	switch e.stage {
	case stagePath:
		return e.updatePath(msg)
	default:
		return e.updateValue(msg)
	}
}

func (e *PropertyEditor) updatePath(msg tea.KeyMsg) (bool, string, tea.Cmd) {
	switch {
	case key.Matches(msg, InputFormKeys.Cancel):
		return true, "", nil
	case key.Matches(msg, InputFormKeys.Next):
		if len(e.paths) > 0 {
			e.pathIdx = (e.pathIdx + 1) % len(e.paths)
			e.input.SetValue(e.paths[e.pathIdx])
			e.input.CursorEnd()
		}
		return false, "", nil
	case key.Matches(msg, InputFormKeys.Submit):
		path := e.input.Value()
		if err := application.ValidatePropertyPath("propertyID", path); err != nil {
			e.err = err
			return false, "", nil
		}
		el, err := e.session.Element(e.elementID)
		if err != nil {
			return true, err.Error(), nil
		}
		propertyID, nested := domain.SplitPropertyPath(path)
		e.path = path
		e.original = domain.CloneValue(el.PropertyValue(propertyID, nested))
		e.applied = rawValue(e.original)
		e.stage = stageValue
		e.err = nil
		e.input.Placeholder = `text, 12, true, null or "quoted"`
		e.input.SetValue(e.applied)
		e.input.CursorEnd()
		return false, "", nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return false, "", cmd
}

func (e *PropertyEditor) updateValue(msg tea.KeyMsg) (bool, string, tea.Cmd) {
	switch {
	case key.Matches(msg, InputFormKeys.Cancel):
		if e.applied != rawValue(e.original) {
			if err := e.session.SetProperty(e.elementID, e.path, e.original); err != nil {
				return true, err.Error(), nil
			}
		}
		return true, fmt.Sprintf("Restored %s", e.path), nil
	case key.Matches(msg, InputFormKeys.Submit):
		if e.err != nil {
			return false, "", nil
		}
		if e.applied == rawValue(e.original) {
			return true, fmt.Sprintf("%s unchanged", e.path), nil
		}
		value := application.ParseValue(e.applied)
		return true, fmt.Sprintf("%s = %s", e.path, application.FormatValue(value)), nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	if text := e.input.Value(); text != e.applied {
		e.err = e.session.SetProperty(e.elementID, e.path, application.ParseValue(text))
		e.applied = text
	}
	return false, "", cmd
}

// View renders the input with its label
func (e *PropertyEditor) View() string {
	label := "Property"
	if e.stage == stageValue {
		label = e.path
	}
	out := styles.InputLabel.Render(label) + "\n" + styles.InputFocused.Render(e.input.View())
	if e.err != nil {
		out += "\n" + styles.ErrorMsg.Render(e.err.Error())
	}
	return out
}

// rawValue renders a property value the way it is typed
func rawValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		if application.ParseValue(t) != any(t) {
			return `"` + t + `"`
		}
		return t
	default:
		return cast.ToString(v)
	}
}

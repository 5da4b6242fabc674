package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pagecraft/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit   key.Binding
	Cancel   key.Binding
	Next     key.Binding
	Previous key.Binding
}

var InputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
}

// InputField is a labelled text input
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates an input field with a label and placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{Label: label, Input: input}
}

// InputForm manages several text inputs and which one has focus
type InputForm struct {
	Fields  []InputField
	Focused int
}

// NewInputForm creates a form and focuses its first field
func NewInputForm(fields ...InputField) *InputForm {
	f := &InputForm{Fields: fields}
	f.focus(0)
	return f
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves focus on tab/shift+tab and passes everything else to the
// focused input
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, InputFormKeys.Next):
			f.focus((f.Focused + 1) % len(f.Fields))
			return nil
		case key.Matches(msg, InputFormKeys.Previous):
			f.focus((f.Focused + len(f.Fields) - 1) % len(f.Fields))
			return nil
		}
	}

	if f.Focused < 0 || f.Focused >= len(f.Fields) {
		return nil
	}
	var cmd tea.Cmd
	f.Fields[f.Focused].Input, cmd = f.Fields[f.Focused].Input.Update(msg)
	return cmd
}

func (f *InputForm) focus(index int) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	for i := range f.Fields {
		f.Fields[i].Input.Blur()
	}
	f.Focused = index
	f.Fields[index].Input.Focus()
}

// Value returns the trimmed value of a field
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

// SetValue sets the value of a field
func (f *InputForm) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	f.Fields[index].Input.SetValue(value)
}

// Reset clears all fields and focuses the first one
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
	}
	f.focus(0)
}

// View renders every field, the focused one highlighted
func (f *InputForm) View() string {
	var b strings.Builder
	for i, field := range f.Fields {
		b.WriteString(styles.InputLabel.Render(field.Label))
		b.WriteString("\n")
		if i == f.Focused {
			b.WriteString(styles.InputFocused.Render(field.Input.View()))
		} else {
			b.WriteString(styles.InputField.Render(field.Input.View()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	submit := InputFormKeys.Submit
	submit.SetHelp("enter", submitText)

	bindings := []key.Binding{submit, InputFormKeys.Cancel}
	if len(f.Fields) > 1 {
		bindings = append([]key.Binding{InputFormKeys.Next}, bindings...)
	}
	return RenderHelpLine(bindings...)
}

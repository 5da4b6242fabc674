package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pagecraft/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg {
			return SwitchToEditorMsg{}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Pagecraft Help"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{EditorKeys.Up, EditorKeys.Down, EditorKeys.Pages}},
		{"Structure", []key.Binding{
			EditorKeys.AddChild, EditorKeys.AddSibling, EditorKeys.Remove,
			EditorKeys.MoveUp, EditorKeys.MoveDown, EditorKeys.Indent, EditorKeys.Outdent,
		}},
		{"Properties", []key.Binding{EditorKeys.Edit}},
		{"History", []key.Binding{EditorKeys.Undo, EditorKeys.Redo, EditorKeys.Save}},
		{"General", []key.Binding{EditorKeys.CopyID, EditorKeys.External, EditorKeys.Help, EditorKeys.Quit}},
	}
	for _, s := range sections {
		b.WriteString(styles.InputLabel.Render(s.title))
		b.WriteString("\n")
		for _, binding := range s.bindings {
			help := binding.Help()
			b.WriteString(helpLine(help.Key, help.Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedText.Render("  Editing a property applies every keystroke; a burst of edits to the"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  same property is a single undo step. esc restores the starting value."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 16)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

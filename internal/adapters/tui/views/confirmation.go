package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pagecraft/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmMsg asks the app to show a confirmation. Then is sent when it is
// confirmed and Back when it is cancelled.
type ConfirmMsg struct {
	Question string
	Then     tea.Msg
	Back     tea.Msg
}

// ConfirmationModel asks a yes/no question, used before unsaved changes
// are discarded
type ConfirmationModel struct {
	ViewState
	question string
	then     tea.Msg
	back     tea.Msg
}

// NewConfirmationModel creates an empty confirmation view
func NewConfirmationModel() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Ask sets up the view from a ConfirmMsg
func (m *ConfirmationModel) Ask(msg ConfirmMsg) {
	m.question = msg.Question
	m.then = msg.Then
	m.back = msg.Back
}

// Init initializes the confirmation view
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// Update sends the pending message on confirm and goes back on cancel
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, ConfirmKeys.Confirm):
		then := m.then
		return m, func() tea.Msg { return then }
	case key.Matches(keyMsg, ConfirmKeys.Cancel):
		back := m.back
		return m, func() tea.Msg { return back }
	}
	return m, nil
}

// View renders the question
func (m *ConfirmationModel) View() string {
	return NewViewBuilder().
		Title("Confirm").
		Line(m.question).
		BlankLine().
		Raw(styles.HelpKey.Render("y")).
		Raw(styles.HelpDesc.Render(" to confirm, ")).
		Raw(styles.HelpKey.Render("n")).
		Raw(styles.HelpDesc.Render(" to cancel")).
		String()
}

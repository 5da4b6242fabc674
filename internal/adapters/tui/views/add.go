package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pagecraft/internal/application"
	"pagecraft/internal/application/session"
)

const (
	fieldPattern = iota
	fieldName
)

// AddModel is the form for adding an element next to or under the
// selected one
type AddModel struct {
	ViewState
	session *session.Session
	sibling bool
	form    *InputForm
}

// NewAddModel creates the add form
func NewAddModel(s *session.Session) *AddModel {
	return &AddModel{
		session: s,
		form: NewInputForm(
			NewInputField("Pattern", "section, text, button...", 40),
			NewInputField("Name (optional)", "defaults to the pattern", 80),
		),
	}
}

// Start resets the form. sibling places the new element after the
// selection instead of as its last child.
func (m *AddModel) Start(sibling bool) tea.Cmd {
	m.sibling = sibling
	m.form.Reset()
	m.ClearMessage()
	return m.form.Init()
}

// Init initializes the add form
func (m *AddModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the add form
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, InputFormKeys.Cancel):
		return m, func() tea.Msg { return SwitchToEditorMsg{} }
	case key.Matches(keyMsg, InputFormKeys.Submit):
		return m, m.submit()
	}
	return m, m.form.Update(keyMsg)
}

func (m *AddModel) submit() tea.Cmd {
	selected := m.session.Selected()
	if selected == nil {
		m.SetError(application.ErrNoPage)
		return nil
	}

	pattern, name := m.form.Value(fieldPattern), m.form.Value(fieldName)
	var err error
	if m.sibling {
		_, err = m.session.AddSibling(selected.ID(), pattern, name)
	} else {
		_, err = m.session.AddChild(selected.ID(), pattern, name, application.AppendIndex)
	}
	if err != nil {
		m.SetError(err)
		return nil
	}
	return func() tea.Msg { return SwitchToEditorMsg{} }
}

// View renders the add form
func (m *AddModel) View() string {
	target := ""
	if selected := m.session.Selected(); selected != nil {
		target = selected.Name()
	}

	title := "Add child"
	subtitle := fmt.Sprintf("under %s", target)
	if m.sibling {
		title = "Add sibling"
		subtitle = fmt.Sprintf("after %s", target)
	}

	return NewViewBuilder().
		Title(title).
		Subtitle(subtitle).
		Raw(m.form.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("add")).
		String()
}

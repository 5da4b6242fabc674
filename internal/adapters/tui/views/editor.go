package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pagecraft/internal/adapters/tui/styles"
	"pagecraft/internal/application"
	"pagecraft/internal/application/session"
	"pagecraft/internal/ports"
)

// EditorKeyMap defines key bindings for the page editor
type EditorKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	AddChild   key.Binding
	AddSibling key.Binding
	Remove     key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Indent     key.Binding
	Outdent    key.Binding
	Edit       key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Save       key.Binding
	CopyID     key.Binding
	External   key.Binding
	Pages      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var EditorKeys = EditorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	AddChild: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add child"),
	),
	AddSibling: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "add sibling"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "remove"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move down"),
	),
	Indent: key.NewBinding(
		key.WithKeys(">", "tab"),
		key.WithHelp(">/tab", "indent"),
	),
	Outdent: key.NewBinding(
		key.WithKeys("<", "shift+tab"),
		key.WithHelp("</shift+tab", "outdent"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit property"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u", "ctrl+z"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r", "U"),
		key.WithHelp("ctrl+r", "redo"),
	),
	Save: key.NewBinding(
		key.WithKeys("s", "ctrl+s"),
		key.WithHelp("s", "save"),
	),
	CopyID: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	External: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "open in $EDITOR"),
	),
	Pages: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "pages"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// OpenEditorMsg asks the app to open a page file in the external editor
type OpenEditorMsg struct {
	Path string
}

// EditorModel shows the element tree of the open page and edits it
// through the session
type EditorModel struct {
	ViewState
	session   *session.Session
	rows      []application.PageElement
	paginator *Paginator
	property  *PropertyEditor
}

// NewEditorModel creates an editor for the session's open page
func NewEditorModel(s *session.Session) *EditorModel {
	return &EditorModel{
		session:   s,
		paginator: NewPaginator(20),
	}
}

// Init initializes the editor
func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// Refresh rebuilds the rows from the page and moves the cursor to the
// session's selection
func (m *EditorModel) Refresh() {
	page := m.session.Page()
	if page == nil {
		m.rows = nil
		m.paginator.SetTotal(0)
		return
	}
	m.rows = page.Flatten()
	m.paginator.SetTotal(len(m.rows))

	selected := m.session.Selected()
	for i, row := range m.rows {
		if row.Element == selected {
			m.paginator.SetCursor(i)
			break
		}
	}
}

// Editing reports whether a property edit is in progress
func (m *EditorModel) Editing() bool {
	return m.property != nil
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if err, ok := msg.(errMsg); ok {
			m.SetError(err.err)
		}
		return m, nil
	}

	if m.property != nil {
		done, message, cmd := m.property.Update(keyMsg)
		if done {
			m.property = nil
			m.SetMessage(message, false)
		}
		m.Refresh()
		return m, cmd
	}

	m.ClearMessage()
	selected := m.session.Selected()
	if selected == nil {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, EditorKeys.Quit):
		return m, m.leave("Quit without saving?", tea.QuitMsg{})

	case key.Matches(keyMsg, EditorKeys.Pages):
		return m, m.leave("Close the page without saving?", SwitchToPagesMsg{})

	case key.Matches(keyMsg, EditorKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(keyMsg, EditorKeys.Up):
		m.moveCursor(-1)

	case key.Matches(keyMsg, EditorKeys.Down):
		m.moveCursor(1)

	case key.Matches(keyMsg, EditorKeys.AddChild):
		return m, func() tea.Msg { return SwitchToAddMsg{} }

	case key.Matches(keyMsg, EditorKeys.AddSibling):
		if selected.Parent() == nil {
			m.SetMessage("the page root cannot have siblings", true)
			return m, nil
		}
		return m, func() tea.Msg { return SwitchToAddMsg{Sibling: true} }

	case key.Matches(keyMsg, EditorKeys.Remove):
		m.apply(m.session.Remove(selected.ID()), fmt.Sprintf("Removed %s", selected.Name()))

	case key.Matches(keyMsg, EditorKeys.MoveUp):
		m.apply(m.session.MoveBy(selected.ID(), -1), "")

	case key.Matches(keyMsg, EditorKeys.MoveDown):
		m.apply(m.session.MoveBy(selected.ID(), 1), "")

	case key.Matches(keyMsg, EditorKeys.Indent):
		m.apply(m.session.Indent(selected.ID()), "")

	case key.Matches(keyMsg, EditorKeys.Outdent):
		m.apply(m.session.Outdent(selected.ID()), "")

	case key.Matches(keyMsg, EditorKeys.Edit):
		m.property = NewPropertyEditor(m.session, selected)

	case key.Matches(keyMsg, EditorKeys.Undo):
		m.apply(m.session.Undo(), "Undone")

	case key.Matches(keyMsg, EditorKeys.Redo):
		m.apply(m.session.Redo(), "Redone")

	case key.Matches(keyMsg, EditorKeys.Save):
		m.apply(m.session.Save(), fmt.Sprintf("Saved %s", m.session.Page().Name))

	case key.Matches(keyMsg, EditorKeys.CopyID):
		if err := writeClipboard(selected.ID()); err != nil {
			m.SetError(fmt.Errorf("copy failed: %w", err))
		} else {
			m.SetMessage(fmt.Sprintf("Copied %s", selected.ID()), false)
		}

	case key.Matches(keyMsg, EditorKeys.External):
		return m, m.openExternal()
	}

	return m, nil
}

// leave sends then, asking first when the page has unsaved changes
func (m *EditorModel) leave(question string, then tea.Msg) tea.Cmd {
	if !m.session.Dirty() {
		return func() tea.Msg { return then }
	}
	return func() tea.Msg {
		return ConfirmMsg{Question: question, Then: then, Back: SwitchToEditorMsg{}}
	}
}

func (m *EditorModel) openExternal() tea.Cmd {
	locator, ok := m.session.Repository().(ports.PageFileLocator)
	if !ok {
		m.SetMessage("pages in this store have no files", true)
		return nil
	}
	if m.session.Dirty() {
		m.SetMessage("save the page before editing its file", true)
		return nil
	}
	path, err := locator.PagePath(m.session.Page().ID)
	if err != nil {
		m.SetError(err)
		return nil
	}
	return func() tea.Msg { return OpenEditorMsg{Path: path} }
}

func (m *EditorModel) moveCursor(delta int) {
	m.paginator.SetCursor(m.paginator.Cursor() + delta)
	if row, ok := m.row(m.paginator.Cursor()); ok {
		_ = m.session.Select(row.Element.ID())
	}
}

// apply reports the outcome of a session operation and redraws the tree
func (m *EditorModel) apply(err error, success string) {
	switch {
	case err == nil:
		m.SetMessage(success, false)
	case errors.Is(err, application.ErrRejected):
		m.SetMessage("not possible here", true)
	default:
		m.SetError(err)
	}
	m.Refresh()
}

func (m *EditorModel) row(i int) (application.PageElement, bool) {
	if i < 0 || i >= len(m.rows) {
		return application.PageElement{}, false
	}
	return m.rows[i], true
}

// SetSize updates the view dimensions and the number of visible rows
func (m *EditorModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(height - 8)
}

// View renders the tree next to the selected element's properties
func (m *EditorModel) View() string {
	page := m.session.Page()
	if page == nil {
		return styles.App.Render("No page open")
	}

	var tree strings.Builder
	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		tree.WriteString(m.renderRow(m.rows[i], i == m.paginator.Cursor()))
		tree.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, tree.String(), "  ", m.renderPanel())

	undo, redo := m.session.History()
	v := NewViewBuilder().
		Line(RenderStatus(page.Name, undo, redo, m.session.Dirty())).
		BlankLine().
		Line(body).
		Message(m.Message, m.MessageErr)
	if m.property != nil {
		return v.Help(InputFormKeys.Next, InputFormKeys.Submit, InputFormKeys.Cancel).String()
	}
	return v.Help(
		EditorKeys.AddChild, EditorKeys.AddSibling, EditorKeys.Remove,
		EditorKeys.Edit, EditorKeys.Undo, EditorKeys.Redo, EditorKeys.Save,
		EditorKeys.Help, EditorKeys.Quit,
	).String()
}

func (m *EditorModel) renderRow(row application.PageElement, selected bool) string {
	el := row.Element
	indent := strings.Repeat("  ", row.Depth)

	prefix := styles.TreeLeaf
	if el.ChildCount() > 0 {
		prefix = styles.TreeContainer
	}

	name := el.Name()
	if selected {
		name = styles.ElementSelected.Render(name)
	} else {
		name = styles.ElementStyle(row.Depth, el.ChildCount()).Render(name)
	}

	return fmt.Sprintf("%s%s%s %s", indent, styles.TreeBranch.Render(prefix), name,
		styles.ElementPattern.Render("["+el.Pattern()+"]"))
}

func (m *EditorModel) renderPanel() string {
	el := m.session.Selected()
	if el == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(el.Name()))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(el.ID()))
	b.WriteString("\n\n")

	leaves := application.FlattenProperties(el)
	if len(leaves) == 0 {
		b.WriteString(styles.MutedText.Render("no properties"))
	}
	for _, leaf := range leaves {
		b.WriteString(styles.PropertyPath.Render(leaf.Path))
		b.WriteString(" ")
		b.WriteString(styles.PropertyValue.Render(application.FormatValue(leaf.Value)))
		b.WriteString("\n")
	}

	if m.property != nil {
		b.WriteString("\n")
		b.WriteString(m.property.View())
	}
	return styles.Panel.Render(b.String())
}

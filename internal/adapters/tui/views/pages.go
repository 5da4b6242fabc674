package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pagecraft/internal/adapters/tui/styles"
	"pagecraft/internal/application"
	"pagecraft/internal/ports"
)

// PagesKeyMap defines key bindings for the page list
type PagesKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding
	New      key.Binding
	Delete   key.Binding
	Quit     key.Binding
}

var PagesKeys = PagesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "prev"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "next"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter", "open"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new page"),
	),
	Delete: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Messages sent by the page list
type (
	OpenPageMsg   struct{ ID string }
	NewPageMsg    struct{ Name string }
	DeletePageMsg struct{ ID string }
)

type pagesLoadedMsg struct {
	pages []application.PageSummary
}

type pageDeletedMsg struct {
	id string
}

// PagesModel lists the stored pages
type PagesModel struct {
	ViewState
	repo      ports.PageRepository
	pages     []application.PageSummary
	paginator *Paginator
	loaded    bool

	creating bool
	nameForm *InputForm
}

// NewPagesModel creates a page list backed by repo
func NewPagesModel(repo ports.PageRepository) *PagesModel {
	return &PagesModel{
		repo:      repo,
		paginator: NewPaginator(15),
		nameForm:  NewInputForm(NewInputField("Page name", "Landing page", 80)),
	}
}

// Init loads the page list
func (m *PagesModel) Init() tea.Cmd {
	return m.loadPages
}

// Reload reloads the page list from storage
func (m *PagesModel) Reload() tea.Cmd {
	return m.loadPages
}

func (m *PagesModel) loadPages() tea.Msg {
	pages, err := m.repo.ListPages()
	if err != nil {
		return errMsg{err}
	}
	return pagesLoadedMsg{pages}
}

// Delete removes a page from storage
func (m *PagesModel) Delete(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.repo.DeletePage(id); err != nil {
			return errMsg{err}
		}
		return pageDeletedMsg{id}
	}
}

// Update handles messages for the page list
func (m *PagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pagesLoadedMsg:
		m.pages = msg.pages
		m.loaded = true
		m.paginator.SetTotal(len(m.pages))
		return m, nil

	case pageDeletedMsg:
		m.SetMessage(fmt.Sprintf("Deleted %s", msg.id), false)
		return m, m.loadPages

	case errMsg:
		m.SetError(msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.creating {
			return m, m.updateCreating(msg)
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, PagesKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, PagesKeys.Up):
			m.paginator.CursorUp()
		case key.Matches(msg, PagesKeys.Down):
			m.paginator.CursorDown()
		case key.Matches(msg, PagesKeys.PrevPage):
			m.paginator.PrevPage()
		case key.Matches(msg, PagesKeys.NextPage):
			m.paginator.NextPage()
		case key.Matches(msg, PagesKeys.Open):
			if p, ok := m.selected(); ok {
				return m, func() tea.Msg { return OpenPageMsg{ID: p.ID} }
			}
		case key.Matches(msg, PagesKeys.New):
			m.creating = true
			m.nameForm.Reset()
			return m, m.nameForm.Init()
		case key.Matches(msg, PagesKeys.Delete):
			if p, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return ConfirmMsg{
						Question: fmt.Sprintf("Delete page %q (%d elements)?", p.Name, p.ElementCount),
						Then:     DeletePageMsg{ID: p.ID},
						Back:     SwitchToPagesMsg{},
					}
				}
			}
		}
	}
	return m, nil
}

func (m *PagesModel) updateCreating(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, InputFormKeys.Cancel):
		m.creating = false
		return nil
	case key.Matches(msg, InputFormKeys.Submit):
		name := m.nameForm.Value(0)
		if name == "" {
			m.SetMessage("page name is required", true)
			return nil
		}
		m.creating = false
		return func() tea.Msg { return NewPageMsg{Name: name} }
	}
	return m.nameForm.Update(msg)
}

func (m *PagesModel) selected() (application.PageSummary, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.pages) {
		return application.PageSummary{}, false
	}
	return m.pages[i], true
}

// SetSize updates the view dimensions and the number of visible pages
func (m *PagesModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(height - 10)
}

// View renders the page list
func (m *PagesModel) View() string {
	v := NewViewBuilder().Title("Pagecraft")

	if m.creating {
		return v.Raw(m.nameForm.View()).
			BlankLine().
			Message(m.Message, m.MessageErr).
			Raw(m.nameForm.RenderHelp("create")).
			String()
	}

	switch {
	case !m.loaded:
		v.Muted("Loading...")
	case len(m.pages) == 0:
		v.Muted("No pages yet. Press n to create one.")
	default:
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			p := m.pages[i]
			text := fmt.Sprintf("%s  (%d elements)", p.Name, p.ElementCount)
			if i == m.paginator.Cursor() {
				v.Line(styles.ElementSelected.Render(text))
			} else {
				v.Line(text)
			}
		}
		if m.paginator.TotalPages() > 1 {
			v.Muted(fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages()))
		}
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(PagesKeys.Up, PagesKeys.Down, PagesKeys.Open, PagesKeys.New, PagesKeys.Delete, PagesKeys.Quit).
		String()
}

// Messages for view switching
type (
	SwitchToPagesMsg  struct{}
	SwitchToEditorMsg struct{}
	SwitchToHelpMsg   struct{}
	SwitchToAddMsg    struct{ Sibling bool }
)

type errMsg struct {
	err error
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pagecraft/internal/adapters/tui/views"
	"pagecraft/internal/application/session"
	"pagecraft/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPages ViewState = iota
	ViewEditor
	ViewAdd
	ViewHelp
	ViewConfirm
)

// App is the main TUI application model
type App struct {
	repo    ports.PageRepository
	editor  ports.EditorOpener
	session *session.Session

	state   ViewState
	pages   *views.PagesModel
	page    *views.EditorModel
	add     *views.AddModel
	help    *views.HelpModel
	confirm *views.ConfirmationModel

	width  int
	height int
}

// NewApp creates a new TUI application. ed may be nil, which disables
// opening page files externally.
func NewApp(repo ports.PageRepository, ed ports.EditorOpener, s *session.Session) *App {
	return &App{
		repo:    repo,
		editor:  ed,
		session: s,
		state:   ViewPages,
		pages:   views.NewPagesModel(repo),
		page:    views.NewEditorModel(s),
		add:     views.NewAddModel(s),
		help:    views.NewHelpModel(),
		confirm: views.NewConfirmationModel(),
	}
}

// OpenPage starts the app in the editor for pageID
func (a *App) OpenPage(pageID string) error {
	if err := a.session.Open(pageID); err != nil {
		return err
	}
	a.page.Refresh()
	a.state = ViewEditor
	return nil
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.pages.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.pages.SetSize(msg.Width, msg.Height)
		a.page.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		return a, nil

	// Page list messages
	case views.OpenPageMsg:
		if err := a.OpenPage(msg.ID); err != nil {
			a.pages.SetError(err)
		}
		return a, nil

	case views.NewPageMsg:
		if _, err := a.session.NewPage(msg.Name); err != nil {
			a.pages.SetError(err)
			return a, nil
		}
		a.page.Refresh()
		a.state = ViewEditor
		return a, nil

	case views.DeletePageMsg:
		a.state = ViewPages
		return a, a.pages.Delete(msg.ID)

	// View switching messages
	case views.SwitchToPagesMsg:
		a.session.SetPage(nil)
		a.state = ViewPages
		return a, a.pages.Reload()

	case views.SwitchToEditorMsg:
		if a.session.Page() == nil {
			a.state = ViewPages
			return a, nil
		}
		a.page.Refresh()
		a.state = ViewEditor
		return a, nil

	case views.SwitchToAddMsg:
		a.state = ViewAdd
		return a, a.add.Start(msg.Sibling)

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.ConfirmMsg:
		a.confirm.Ask(msg)
		a.state = ViewConfirm
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		a.state = ViewEditor
		if msg.err != nil {
			a.page.SetError(fmt.Errorf("editor: %w", msg.err))
			return a, nil
		}
		// The file may have changed under the session; its history no
		// longer applies.
		if err := a.OpenPage(a.session.Page().ID); err != nil {
			a.page.SetError(err)
			return a, nil
		}
		a.page.SetMessage("Reloaded from file", false)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPages:
		_, cmd = a.pages.Update(msg)
	case ViewEditor:
		_, cmd = a.page.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEditor:
		return a.page.View()
	case ViewAdd:
		return a.add.View()
	case ViewHelp:
		return a.help.View()
	case ViewConfirm:
		return a.confirm.View()
	default:
		return a.pages.View()
	}
}

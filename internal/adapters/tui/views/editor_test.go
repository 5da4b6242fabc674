package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pagecraft/internal/adapters/filesystem"
	"pagecraft/internal/application/session"
	"pagecraft/internal/domain"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

type model interface {
	Update(tea.Msg) (tea.Model, tea.Cmd)
}

func press(m model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func typeText(m model, text string) {
	for _, r := range text {
		m.Update(keyRunes(string(r)))
	}
}

// setupEditor opens a saved page with root > a, b, c
func setupEditor(t *testing.T) (*EditorModel, *session.Session) {
	t.Helper()

	repo := filesystem.NewRepository(t.TempDir())
	page := &domain.Page{
		ID:   "home",
		Name: "Home",
		Root: domain.NewElementWithID("root", domain.RootPattern, "Home"),
	}
	for _, id := range []string{"a", "b", "c"} {
		if err := domain.NewElementWithID(id, "text", id).SetParent(page.Root, domain.AppendIndex); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.SavePage(page); err != nil {
		t.Fatal(err)
	}

	s := session.New(repo)
	if err := s.Open("home"); err != nil {
		t.Fatal(err)
	}
	m := NewEditorModel(s)
	m.Refresh()
	return m, s
}

func selectElement(t *testing.T, m *EditorModel, s *session.Session, id string) {
	t.Helper()
	if err := s.Select(id); err != nil {
		t.Fatal(err)
	}
	m.Refresh()
}

func childIDs(el *domain.Element) []string {
	var ids []string
	for _, c := range el.Children() {
		ids = append(ids, c.ID())
	}
	return ids
}

func TestEditor_CursorFollowsSelection(t *testing.T) {
	m, s := setupEditor(t)

	if s.Selected().ID() != "root" {
		t.Fatalf("expected root selected, got %s", s.Selected().ID())
	}
	press(m, keyRunes("j"), keyRunes("j"))
	if s.Selected().ID() != "b" {
		t.Errorf("expected b after two downs, got %s", s.Selected().ID())
	}
	press(m, keyRunes("k"), keyRunes("k"), keyRunes("k"))
	if s.Selected().ID() != "root" {
		t.Errorf("expected cursor clamped at root, got %s", s.Selected().ID())
	}
}

func TestEditor_StructureKeys(t *testing.T) {
	m, s := setupEditor(t)
	root := s.Page().Root
	selectElement(t, m, s, "b")

	tests := []struct {
		key  string
		want []string
	}{
		{"K", []string{"b", "a", "c"}},
		{"J", []string{"a", "b", "c"}},
		{">", []string{"a", "c"}},
		{"<", []string{"a", "b", "c"}},
		{"x", []string{"a", "c"}},
		{"u", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			press(m, keyRunes(tt.key))
			if got := childIDs(root); !equalIDs(got, tt.want) {
				t.Errorf("after %q children = %v, want %v (message %q)", tt.key, got, tt.want, m.Message)
			}
		})
	}

	a, _ := s.Element("a")
	if a.ChildCount() != 0 {
		t.Errorf("expected outdent to empty a, got %v", childIDs(a))
	}
}

func TestEditor_RejectedMoveKeepsHistory(t *testing.T) {
	m, s := setupEditor(t)
	selectElement(t, m, s, "a")

	press(m, keyRunes("K"))
	if !m.MessageErr {
		t.Error("expected moving the first child up to be refused")
	}
	if undo, _ := s.History(); undo != 0 {
		t.Errorf("expected empty history, got %d", undo)
	}
}

func TestEditor_LivePropertyEditMerges(t *testing.T) {
	m, s := setupEditor(t)
	selectElement(t, m, s, "a")
	a, _ := s.Element("a")

	press(m, keyRunes("e"))
	typeText(m, "label")
	press(m, keyEnter)
	if !m.Editing() {
		t.Fatal("expected value stage after choosing the path")
	}

	typeText(m, "ABC")
	if got := a.PropertyValue("label", ""); got != "ABC" {
		t.Errorf("label = %v, want ABC", got)
	}
	if undo, _ := s.History(); undo != 1 {
		t.Errorf("expected keystrokes merged into one entry, got %d", undo)
	}

	press(m, keyEnter)
	if m.Editing() {
		t.Fatal("expected edit to finish on enter")
	}

	press(m, keyRunes("u"))
	if got := a.PropertyValue("label", ""); got != nil {
		t.Errorf("expected label absent after undo, got %v", got)
	}
}

func TestEditor_EscRestoresProperty(t *testing.T) {
	m, s := setupEditor(t)
	selectElement(t, m, s, "a")
	if err := s.SetProperty("a", "style.color", "red"); err != nil {
		t.Fatal(err)
	}
	a, _ := s.Element("a")

	press(m, keyRunes("e"), keyTab, keyEnter)
	typeText(m, "dish")
	if got := a.PropertyValue("style", "color"); got != "reddish" {
		t.Fatalf("color = %v, want reddish", got)
	}

	press(m, keyEsc)
	if got := a.PropertyValue("style", "color"); got != "red" {
		t.Errorf("expected esc to restore red, got %v", got)
	}
	if undo, _ := s.History(); undo != 1 {
		t.Errorf("expected a single merged entry, got %d", undo)
	}
}

func TestEditor_TypedValues(t *testing.T) {
	m, s := setupEditor(t)
	selectElement(t, m, s, "c")
	c, _ := s.Element("c")

	press(m, keyRunes("e"))
	typeText(m, "columns")
	press(m, keyEnter)
	typeText(m, "12")
	press(m, keyEnter)

	if got := c.PropertyValue("columns", ""); got != 12 {
		t.Errorf("columns = %#v, want int 12", got)
	}
}

func TestEditor_CopyID(t *testing.T) {
	m, s := setupEditor(t)
	selectElement(t, m, s, "c")

	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	press(m, keyRunes("y"))
	if copied != "c" {
		t.Errorf("copied %q, want c", copied)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	press(m, keyRunes("y"))
	if !m.MessageErr {
		t.Error("expected clipboard failure to be reported")
	}
}

func TestEditor_LeaveAsksWhenDirty(t *testing.T) {
	m, s := setupEditor(t)

	if _, ok := press(m, keyRunes("q"))().(tea.QuitMsg); !ok {
		t.Error("expected clean page to quit directly")
	}

	selectElement(t, m, s, "a")
	press(m, keyRunes("x"))

	confirm, ok := press(m, keyRunes("q"))().(ConfirmMsg)
	if !ok {
		t.Fatal("expected confirmation for unsaved changes")
	}
	if _, ok := confirm.Then.(tea.QuitMsg); !ok {
		t.Errorf("expected confirmation to lead to quit, got %T", confirm.Then)
	}

	press(m, keyRunes("s"))
	if s.Dirty() {
		t.Error("expected save to clear the dirty flag")
	}
	if _, ok := press(m, keyEsc)().(SwitchToPagesMsg); !ok {
		t.Error("expected saved page to close directly")
	}
}

func TestEditor_OpenExternal(t *testing.T) {
	m, _ := setupEditor(t)

	msg, ok := press(m, keyRunes("E"))().(OpenEditorMsg)
	if !ok {
		t.Fatal("expected OpenEditorMsg")
	}
	if msg.Path == "" {
		t.Error("expected page file path")
	}
}

func TestAddModel(t *testing.T) {
	m, s := setupEditor(t)
	selectElement(t, m, s, "b")
	add := NewAddModel(s)

	add.Start(false)
	typeText(add, "button")
	press(add, keyTab)
	typeText(add, "Buy")
	cmd := press(add, keyEnter)
	if _, ok := cmd().(SwitchToEditorMsg); !ok {
		t.Fatalf("expected return to editor, message %q", add.Message)
	}

	b, _ := s.Element("b")
	if b.ChildCount() != 1 || b.Child(0).Name() != "Buy" || b.Child(0).Pattern() != "button" {
		t.Fatalf("expected Buy button under b")
	}

	add.Start(true)
	typeText(add, "text")
	press(add, keyEnter)
	if got := b.ChildCount(); got != 2 {
		t.Errorf("expected sibling next to the new button, got %d children", got)
	}

	add.Start(false)
	if cmd := press(add, keyEnter); cmd != nil || !add.MessageErr {
		t.Error("expected missing pattern to be reported")
	}
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

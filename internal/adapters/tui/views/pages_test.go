package views

import (
	"strings"
	"testing"

	"pagecraft/internal/adapters/filesystem"
	"pagecraft/internal/domain"
)

func TestPagesModel(t *testing.T) {
	repo := filesystem.NewRepository(t.TempDir())
	for _, name := range []string{"Beta", "Alpha"} {
		page := domain.NewPage(name)
		page.ID = strings.ToLower(name)
		if err := repo.SavePage(page); err != nil {
			t.Fatal(err)
		}
	}

	m := NewPagesModel(repo)
	m.Update(m.Init()())
	if !strings.Contains(m.View(), "Alpha  (1 elements)") {
		t.Fatalf("expected Alpha in view:\n%s", m.View())
	}

	press(m, keyRunes("j"))
	open, ok := press(m, keyEnter)().(OpenPageMsg)
	if !ok || open.ID != "beta" {
		t.Errorf("expected to open beta, got %+v", open)
	}

	confirm, ok := press(m, keyRunes("D"))().(ConfirmMsg)
	if !ok {
		t.Fatal("expected delete confirmation")
	}
	if del, ok := confirm.Then.(DeletePageMsg); !ok || del.ID != "beta" {
		t.Errorf("unexpected confirm target %+v", confirm.Then)
	}

	// The app runs the delete once confirmed
	m.Update(m.Delete("beta")())
	m.Update(m.Reload()())
	if strings.Contains(m.View(), "Beta") {
		t.Errorf("expected Beta gone:\n%s", m.View())
	}
}

func TestPagesModel_NewPage(t *testing.T) {
	m := NewPagesModel(filesystem.NewRepository(t.TempDir()))
	m.Update(m.Init()())

	press(m, keyRunes("n"))
	if cmd := press(m, keyEnter); cmd != nil || !m.MessageErr {
		t.Error("expected empty name to be refused")
	}

	typeText(m, "Landing")
	msg, ok := press(m, keyEnter)().(NewPageMsg)
	if !ok || msg.Name != "Landing" {
		t.Errorf("expected NewPageMsg for Landing, got %+v", msg)
	}
}

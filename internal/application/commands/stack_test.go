package commands

import (
	"testing"

	"pagecraft/internal/domain"
)

// fakeCommand reports scripted results and counts calls
type fakeCommand struct {
	NoMerge
	execResult Result
	undoResult Result
	executed   int
	undone     int
}

func (c *fakeCommand) Execute() Result {
	c.executed++
	return c.execResult
}

func (c *fakeCommand) Undo() Result {
	c.undone++
	return c.undoResult
}

func (c *fakeCommand) Type() string { return "fake" }

func okCommand() *fakeCommand {
	return &fakeCommand{execResult: Applied, undoResult: Applied}
}

func assertHistory(t *testing.T, s *Stack, undo, redo int) {
	t.Helper()
	if s.UndoLen() != undo || s.RedoLen() != redo {
		t.Fatalf("history = undo %d / redo %d, want %d / %d", s.UndoLen(), s.RedoLen(), undo, redo)
	}
}

func TestStack_ExecuteUndoRedo(t *testing.T) {
	s := NewStack()
	a, b := okCommand(), okCommand()

	if res := s.Execute(a); res != Applied {
		t.Fatalf("Execute = %v", res)
	}
	s.Execute(b)
	assertHistory(t, s, 2, 0)

	if res := s.Undo(); res != Applied {
		t.Fatalf("Undo = %v", res)
	}
	if b.undone != 1 || a.undone != 0 {
		t.Errorf("expected the most recent command to be undone first")
	}
	assertHistory(t, s, 1, 1)
	if s.PeekRedo() != Command(b) {
		t.Error("expected b on top of the redo history")
	}

	if res := s.Redo(); res != Applied {
		t.Fatalf("Redo = %v", res)
	}
	if b.executed != 2 {
		t.Errorf("expected redo to execute b again, executed %d times", b.executed)
	}
	assertHistory(t, s, 2, 0)
	if s.PeekUndo() != Command(b) {
		t.Error("expected b back on top of the undo history")
	}
}

func TestStack_EmptyHistoriesAreNoops(t *testing.T) {
	s := NewStack()

	if res := s.Undo(); res != Rejected {
		t.Errorf("Undo on empty stack = %v, want Rejected", res)
	}
	if res := s.Redo(); res != Rejected {
		t.Errorf("Redo on empty stack = %v, want Rejected", res)
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("empty stack cannot undo or redo")
	}
	if s.PeekUndo() != nil || s.PeekRedo() != nil {
		t.Error("expected nil peeks on empty stack")
	}
}

func TestStack_NewCommandClearsRedo(t *testing.T) {
	s := NewStack()
	s.Execute(okCommand())
	s.Execute(okCommand())
	s.Undo()
	s.Undo()
	assertHistory(t, s, 0, 2)

	s.Execute(okCommand())
	assertHistory(t, s, 1, 0)
}

func TestStack_FailurePolicy(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Stack) Result
	}{
		{
			name: "execute fails",
			run: func(s *Stack) Result {
				return s.Execute(&fakeCommand{execResult: UnknownState})
			},
		},
		{
			name: "undo fails",
			run: func(s *Stack) Result {
				s.Execute(&fakeCommand{execResult: Applied, undoResult: UnknownState})
				return s.Undo()
			},
		},
		{
			name: "redo fails",
			run: func(s *Stack) Result {
				bad := &fakeCommand{execResult: Applied, undoResult: Applied}
				s.Execute(bad)
				s.Undo()
				bad.execResult = UnknownState
				return s.Redo()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			// Pre-existing history on both sides
			s.Execute(okCommand())
			s.Execute(okCommand())
			s.Execute(okCommand())
			s.Undo()

			if res := tt.run(s); res != UnknownState {
				t.Fatalf("result = %v, want UnknownState", res)
			}
			assertHistory(t, s, 0, 0)
		})
	}
}

func TestStack_RejectedKeepsHistory(t *testing.T) {
	s := NewStack()
	s.Execute(okCommand())
	s.Execute(okCommand())
	s.Undo()

	if res := s.Execute(&fakeCommand{execResult: Rejected}); res != Rejected {
		t.Fatalf("Execute = %v, want Rejected", res)
	}
	assertHistory(t, s, 1, 1)
}

func TestStack_PropertyEditsCoalesce(t *testing.T) {
	el := domain.NewElementWithID("e", "text", "")
	if err := el.SetPropertyValue("label", "A", ""); err != nil {
		t.Fatal(err)
	}

	s := NewStack()
	s.Execute(NewPropertyValueCommand(el, "label", "B", ""))
	s.Execute(NewPropertyValueCommand(el, "label", "C", ""))

	assertHistory(t, s, 1, 0)
	if got := el.PropertyValue("label", ""); got != "C" {
		t.Fatalf("label = %v, want C", got)
	}

	s.Undo()
	if got := el.PropertyValue("label", ""); got != "A" {
		t.Fatalf("label after undo = %v, want A", got)
	}

	s.Redo()
	if got := el.PropertyValue("label", ""); got != "C" {
		t.Fatalf("label after redo = %v, want C", got)
	}
}

func TestStack_PropertyEditsOnDifferentElementsDoNotCoalesce(t *testing.T) {
	first := domain.NewElementWithID("e1", "text", "")
	second := domain.NewElementWithID("e2", "text", "")

	s := NewStack()
	s.Execute(NewPropertyValueCommand(first, "label", "B", ""))
	s.Execute(NewPropertyValueCommand(second, "label", "C", ""))
	assertHistory(t, s, 2, 0)
}

func TestStack_MergeOnlyWithTopOfHistory(t *testing.T) {
	el := domain.NewElementWithID("e", "text", "")
	parent := domain.NewElementWithID("p", "box", "")

	s := NewStack()
	s.Execute(NewPropertyValueCommand(el, "label", "B", ""))
	s.Execute(AddChild(parent, el, domain.AppendIndex))
	s.Execute(NewPropertyValueCommand(el, "label", "C", ""))
	assertHistory(t, s, 3, 0)
}

func TestStack_MergeClearsRedo(t *testing.T) {
	el := domain.NewElementWithID("e", "text", "")

	s := NewStack()
	s.Execute(NewPropertyValueCommand(el, "label", "B", ""))
	s.Execute(NewPropertyValueCommand(el, "title", "T", ""))
	s.Undo()
	assertHistory(t, s, 1, 1)

	s.Execute(NewPropertyValueCommand(el, "label", "C", ""))
	assertHistory(t, s, 1, 0)
}

func TestStack_RemoveThenUndoScenario(t *testing.T) {
	parent := domain.NewElementWithID("P", "box", "")
	var e *domain.Element
	for i := 0; i < 4; i++ {
		kid := domain.NewElement("text", "")
		if err := kid.SetParent(parent, domain.AppendIndex); err != nil {
			t.Fatal(err)
		}
		if i == 2 {
			e = kid
		}
	}

	s := NewStack()
	s.Execute(Remove(e))
	if e.ParentNode() != nil {
		t.Fatal("expected element to be detached")
	}

	s.Undo()
	if e.Parent() != parent || e.Index() != 2 {
		t.Fatalf("after undo: parent %v index %d", e.Parent(), e.Index())
	}
}

func TestStack_Clear(t *testing.T) {
	s := NewStack()
	s.Execute(okCommand())
	s.Execute(okCommand())
	s.Undo()
	s.Clear()
	assertHistory(t, s, 0, 0)
}

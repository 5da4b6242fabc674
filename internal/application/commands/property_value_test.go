package commands

import (
	"reflect"
	"testing"

	"pagecraft/internal/domain"
)

func TestPropertyValueCommand_ExecuteAndUndo(t *testing.T) {
	tests := []struct {
		name    string
		initial any
		path    string
		value   any
	}{
		{name: "string", initial: "A", value: "B"},
		{name: "bool", initial: false, value: true},
		{name: "from absent", initial: nil, value: "new"},
		{name: "nested", initial: "red", path: "color", value: "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := domain.NewElement("button", "")
			if tt.initial != nil {
				if err := el.SetPropertyValue("prop", tt.initial, tt.path); err != nil {
					t.Fatal(err)
				}
			}

			cmd := NewPropertyValueCommand(el, "prop", tt.value, tt.path)
			if res := cmd.Execute(); res != Applied {
				t.Fatalf("Execute = %v", res)
			}
			if got := el.PropertyValue("prop", tt.path); got != tt.value {
				t.Errorf("after execute = %v, want %v", got, tt.value)
			}

			if res := cmd.Undo(); res != Applied {
				t.Fatalf("Undo = %v", res)
			}
			if got := el.PropertyValue("prop", tt.path); got != tt.initial {
				t.Errorf("after undo = %v, want %v", got, tt.initial)
			}
		})
	}
}

func TestPropertyValueCommand_UndoOfFirstWriteRemovesProperty(t *testing.T) {
	el := domain.NewElement("button", "")

	cmd := NewPropertyValueCommand(el, "style", "bold", "font.weight")
	cmd.Execute()
	cmd.Undo()

	if ids := el.PropertyIDs(); len(ids) != 0 {
		t.Errorf("expected no properties after undo, got %v", ids)
	}
}

func TestPropertyValueCommand_UndoRestoresParentObject(t *testing.T) {
	tests := []struct {
		name    string
		initial map[string]any
		path    string
	}{
		{name: "empty object", initial: map[string]any{}, path: "color"},
		{name: "empty nested object", initial: map[string]any{"font": map[string]any{}}, path: "font.weight"},
		{name: "sibling keys", initial: map[string]any{"size": 2}, path: "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := domain.NewElement("button", "")
			if err := el.SetPropertyValue("style", tt.initial, ""); err != nil {
				t.Fatal(err)
			}
			before := el.PropertyValue("style", "")

			cmd := NewPropertyValueCommand(el, "style", "red", tt.path)
			if res := cmd.Execute(); res != Applied {
				t.Fatalf("Execute = %v", res)
			}
			if res := cmd.Undo(); res != Applied {
				t.Fatalf("Undo = %v", res)
			}

			if after := el.PropertyValue("style", ""); !reflect.DeepEqual(after, before) {
				t.Errorf("after undo = %#v, want %#v", after, before)
			}

			if res := cmd.Execute(); res != Applied {
				t.Fatalf("redo Execute = %v", res)
			}
			if got := el.PropertyValue("style", tt.path); got != "red" {
				t.Errorf("after redo = %v, want red", got)
			}
		})
	}
}

func TestPropertyValueCommand_CapturedObjectIsNotMutated(t *testing.T) {
	el := domain.NewElement("button", "")
	if err := el.SetPropertyValue("style", map[string]any{"color": "red"}, ""); err != nil {
		t.Fatal(err)
	}

	whole := NewPropertyValueCommand(el, "style", map[string]any{"color": "green"}, "")
	nested := NewPropertyValueCommand(el, "style", "blue", "color")
	nested.Execute()

	if !reflect.DeepEqual(whole.PreviousValue(), map[string]any{"color": "red"}) {
		t.Errorf("captured previous value changed: %v", whole.PreviousValue())
	}
}

func TestPropertyValueCommand_MaybeMergeWith(t *testing.T) {
	el := domain.NewElementWithID("e1", "button", "")
	other := domain.NewElementWithID("e2", "button", "")

	tests := []struct {
		name     string
		previous Command
		current  *PropertyValueCommand
		want     bool
	}{
		{
			name:     "same element and property",
			previous: NewPropertyValueCommand(el, "label", "B", ""),
			current:  NewPropertyValueCommand(el, "label", "C", ""),
			want:     true,
		},
		{
			name:     "different element",
			previous: NewPropertyValueCommand(el, "label", "B", ""),
			current:  NewPropertyValueCommand(other, "label", "C", ""),
			want:     false,
		},
		{
			name:     "different property",
			previous: NewPropertyValueCommand(el, "label", "B", ""),
			current:  NewPropertyValueCommand(el, "title", "C", ""),
			want:     false,
		},
		{
			name:     "different nested path",
			previous: NewPropertyValueCommand(el, "style", "red", "color"),
			current:  NewPropertyValueCommand(el, "style", "bold", "weight"),
			want:     false,
		},
		{
			name:     "same nested path",
			previous: NewPropertyValueCommand(el, "style", "red", "color"),
			current:  NewPropertyValueCommand(el, "style", "blue", "color"),
			want:     true,
		},
		{
			name:     "different command type",
			previous: Remove(el),
			current:  NewPropertyValueCommand(el, "label", "C", ""),
			want:     false,
		},
		{
			name:     "no previous command",
			previous: nil,
			current:  NewPropertyValueCommand(el, "label", "C", ""),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.current.MaybeMergeWith(tt.previous); got != tt.want {
				t.Errorf("MaybeMergeWith = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertyValueCommand_MergeAdoptsNewValueKeepsPrevious(t *testing.T) {
	el := domain.NewElement("text", "")
	if err := el.SetPropertyValue("label", "A", ""); err != nil {
		t.Fatal(err)
	}

	first := NewPropertyValueCommand(el, "label", "B", "")
	first.Execute()
	second := NewPropertyValueCommand(el, "label", "C", "")
	second.Execute()

	if !second.MaybeMergeWith(first) {
		t.Fatal("expected merge")
	}
	if first.Value() != "C" {
		t.Errorf("merged value = %v, want C", first.Value())
	}
	if first.PreviousValue() != "A" {
		t.Errorf("merged previous value = %v, want A", first.PreviousValue())
	}
}

// staleNode is a node whose backing element went away
type staleNode struct {
	id string
}

func (n *staleNode) ID() string                                 { return n.id }
func (n *staleNode) ParentNode() domain.Node                    { return nil }
func (n *staleNode) Index() int                                 { return -1 }
func (n *staleNode) SetParentNode(domain.Node, int) error       { return domain.ErrDisposed }
func (n *staleNode) PropertyValue(string, string) any           { return nil }
func (n *staleNode) SetPropertyValue(string, any, string) error { return domain.ErrDisposed }

func TestPropertyValueCommand_StaleElement(t *testing.T) {
	cmd := NewPropertyValueCommand(&staleNode{id: "gone"}, "label", "x", "")

	if res := cmd.Execute(); res != UnknownState {
		t.Errorf("Execute = %v, want UnknownState", res)
	}
	if res := cmd.Undo(); res != UnknownState {
		t.Errorf("Undo = %v, want UnknownState", res)
	}
}

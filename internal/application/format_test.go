package application

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"pagecraft/internal/domain"
)

func TestFlattenProperties(t *testing.T) {
	el := domain.NewElementWithID("btn", "button", "")
	for _, set := range []struct {
		id    string
		value any
		path  string
	}{
		{"label", "Go", ""},
		{"style", "red", "color.fg"},
		{"style", 2, "border"},
	} {
		if err := el.SetPropertyValue(set.id, set.value, set.path); err != nil {
			t.Fatal(err)
		}
	}

	want := []PropertyLeaf{
		{Path: "label", Value: "Go"},
		{Path: "style.border", Value: 2},
		{Path: "style.color.fg", Value: "red"},
	}
	if got := FlattenProperties(el); !reflect.DeepEqual(got, want) {
		t.Errorf("FlattenProperties() = %v, want %v", got, want)
	}
}

func TestWriteTree(t *testing.T) {
	page := &domain.Page{ID: "p", Name: "P", Root: domain.NewElementWithID("root", domain.RootPattern, "P")}
	header := domain.NewElementWithID("header", "header", "")
	title := domain.NewElementWithID("title", "text", "Title")
	if err := header.SetParent(page.Root, domain.AppendIndex); err != nil {
		t.Fatal(err)
	}
	if err := title.SetParent(header, domain.AppendIndex); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteTree(&buf, page); err != nil {
		t.Fatalf("WriteTree failed: %v", err)
	}

	want := "root  [page] P\n  header  [header] header\n    title  [text] Title\n"
	if buf.String() != want {
		t.Errorf("WriteTree() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteElement(t *testing.T) {
	root := domain.NewElementWithID("root", domain.RootPattern, "")
	el := domain.NewElementWithID("cta", "button", "Buy")
	if err := el.SetParent(root, domain.AppendIndex); err != nil {
		t.Fatal(err)
	}
	if err := el.SetPropertyValue("disabled", true, ""); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteElement(&buf, el); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"ID:      cta", "Parent:  root (index 0)", "disabled = true"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, buf.String())
		}
	}
}

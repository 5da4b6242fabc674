package filesystem

import (
	"fmt"

	"pagecraft/internal/domain"
)

// pageDocument is the on-disk YAML shape of a page
type pageDocument struct {
	ID   string          `yaml:"id"`
	Name string          `yaml:"name"`
	Root elementDocument `yaml:"root"`
}

type elementDocument struct {
	ID         string            `yaml:"id"`
	Pattern    string            `yaml:"pattern"`
	Name       string            `yaml:"name,omitempty"`
	Properties map[string]any    `yaml:"properties,omitempty"`
	Children   []elementDocument `yaml:"children,omitempty"`
}

func encodePage(page *domain.Page) pageDocument {
	return pageDocument{
		ID:   page.ID,
		Name: page.Name,
		Root: encodeElement(page.Root),
	}
}

func encodeElement(el *domain.Element) elementDocument {
	doc := elementDocument{
		ID:      el.ID(),
		Pattern: el.Pattern(),
	}
	if el.Name() != el.Pattern() {
		doc.Name = el.Name()
	}
	if props := el.Properties(); len(props) > 0 {
		doc.Properties = props
	}
	for _, child := range el.Children() {
		doc.Children = append(doc.Children, encodeElement(child))
	}
	return doc
}

func decodePage(doc pageDocument) (*domain.Page, error) {
	if doc.ID == "" {
		return nil, fmt.Errorf("page has no id")
	}
	seen := make(map[string]bool)
	root, err := decodeElement(doc.Root, seen)
	if err != nil {
		return nil, err
	}
	return &domain.Page{ID: doc.ID, Name: doc.Name, Root: root}, nil
}

func decodeElement(doc elementDocument, seen map[string]bool) (*domain.Element, error) {
	el := domain.NewElementWithID(doc.ID, doc.Pattern, doc.Name)
	if seen[el.ID()] {
		return nil, fmt.Errorf("duplicate element id %s", el.ID())
	}
	seen[el.ID()] = true

	for id, value := range doc.Properties {
		if err := el.SetPropertyValue(id, normalizeValue(value), ""); err != nil {
			return nil, err
		}
	}
	for _, childDoc := range doc.Children {
		child, err := decodeElement(childDoc, seen)
		if err != nil {
			return nil, err
		}
		if err := child.SetParent(el, domain.AppendIndex); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// normalizeValue converts nested maps decoded with non-string keys into
// map[string]any so they can be addressed with property paths
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = normalizeValue(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[fmt.Sprint(k)] = normalizeValue(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = normalizeValue(child)
		}
		return out
	default:
		return v
	}
}

package domain

import (
	"github.com/google/uuid"
)

// RootPattern is the pattern of a page's root element
const RootPattern = "page"

// Page is an editable document: a named tree of elements under one root
type Page struct {
	ID   string
	Name string
	Root *Element
}

// NewPage creates an empty page with a fresh ID
func NewPage(name string) *Page {
	return &Page{
		ID:   uuid.NewString(),
		Name: name,
		Root: NewElement(RootPattern, name),
	}
}

// Find returns the attached element with the given ID
func (p *Page) Find(id string) (*Element, bool) {
	var found *Element
	p.Root.Walk(func(el *Element, _ int) bool {
		if found != nil {
			return false
		}
		if el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found, found != nil
}

// PageElement is an element with its depth below the root
type PageElement struct {
	Element *Element
	Depth   int
}

// Flatten returns all attached elements in depth-first order (for list rendering)
func (p *Page) Flatten() []PageElement {
	var result []PageElement
	p.Root.Walk(func(el *Element, depth int) bool {
		result = append(result, PageElement{Element: el, Depth: depth})
		return true
	})
	return result
}

// Count returns the number of attached elements, including the root
func (p *Page) Count() int {
	n := 0
	p.Root.Walk(func(*Element, int) bool {
		n++
		return true
	})
	return n
}

// PageSummary describes a stored page without loading its tree
type PageSummary struct {
	ID           string
	Name         string
	ElementCount int
}

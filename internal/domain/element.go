package domain

import (
	"errors"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// AppendIndex places a child after its current last sibling
const AppendIndex = -1

// Errors reported by element mutations
var (
	ErrCycle       = errors.New("element cannot be placed inside itself")
	ErrDisposed    = errors.New("element has been disposed")
	ErrForeignNode = errors.New("node does not belong to this element tree")
)

// Node is the contract the command layer needs from a tree element.
// ParentNode returns nil for roots and detached elements.
type Node interface {
	ID() string
	ParentNode() Node
	Index() int
	SetParentNode(parent Node, index int) error
	PropertyValue(propertyID, path string) any
	SetPropertyValue(propertyID string, value any, path string) error
}

// Element is a node of a page tree (e.g., a "button" pattern instance).
// An element has at most one parent; its index always matches its position
// in the parent's children.
type Element struct {
	id         string
	pattern    string
	name       string
	parent     *Element
	children   []*Element
	properties map[string]any
	disposed   bool
}

// Ensure Element implements Node
var _ Node = (*Element)(nil)

// NewElement creates a detached element with a fresh ID
func NewElement(pattern, name string) *Element {
	return NewElementWithID(uuid.NewString(), pattern, name)
}

// NewElementWithID creates a detached element with a known ID (used by loaders)
func NewElementWithID(id, pattern, name string) *Element {
	if id == "" {
		id = uuid.NewString()
	}
	return &Element{
		id:         id,
		pattern:    pattern,
		name:       name,
		properties: make(map[string]any),
	}
}

// ID returns the stable identity of the element
func (e *Element) ID() string { return e.id }

// Pattern returns the pattern the element instantiates
func (e *Element) Pattern() string { return e.pattern }

// Name returns the display name, falling back to the pattern
func (e *Element) Name() string {
	if e.name == "" {
		return e.pattern
	}
	return e.name
}

// Parent returns the parent element, or nil when detached
func (e *Element) Parent() *Element { return e.parent }

// ParentNode implements Node
func (e *Element) ParentNode() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Index returns the 0-based position among siblings, or -1 when detached
func (e *Element) Index() int {
	if e.parent == nil {
		return -1
	}
	return slices.Index(e.parent.children, e)
}

// Children returns a copy of the ordered child list
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// ChildCount returns the number of direct children
func (e *Element) ChildCount() int { return len(e.children) }

// Child returns the child at index, or nil when out of range
func (e *Element) Child(index int) *Element {
	if index < 0 || index >= len(e.children) {
		return nil
	}
	return e.children[index]
}

// IsDisposed reports whether Dispose was called
func (e *Element) IsDisposed() bool { return e.disposed }

// Contains reports whether other is e or one of its descendants
func (e *Element) Contains(other *Element) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == e {
			return true
		}
	}
	return false
}

// SetParent moves the element under parent at index, removing it from its
// current parent first. A nil parent detaches the element. An index outside
// the child range (including AppendIndex) appends.
func (e *Element) SetParent(parent *Element, index int) error {
	if e.disposed || (parent != nil && parent.disposed) {
		return ErrDisposed
	}
	if parent != nil && e.Contains(parent) {
		return ErrCycle
	}

	if e.parent != nil {
		old := e.parent
		if i := slices.Index(old.children, e); i >= 0 {
			old.children = slices.Delete(old.children, i, i+1)
		}
		e.parent = nil
	}

	if parent == nil {
		return nil
	}

	if index < 0 || index > len(parent.children) {
		index = len(parent.children)
	}
	parent.children = slices.Insert(parent.children, index, e)
	e.parent = parent
	return nil
}

// SetParentNode implements Node
func (e *Element) SetParentNode(parent Node, index int) error {
	if parent == nil {
		return e.SetParent(nil, index)
	}
	p, ok := parent.(*Element)
	if !ok {
		return ErrForeignNode
	}
	return e.SetParent(p, index)
}

// PropertyValue returns the value stored under propertyID, descending into
// nested values along the dot-separated path. Missing values yield nil.
// Nested maps are returned as copies.
func (e *Element) PropertyValue(propertyID, path string) any {
	return CloneValue(getPath(e.properties[propertyID], SplitPath(path)))
}

// SetPropertyValue stores value under propertyID at the dot-separated path,
// creating intermediate maps as needed. A nil value removes the entry.
// Nested maps are copied on write, so values previously returned by
// PropertyValue are never modified.
func (e *Element) SetPropertyValue(propertyID string, value any, path string) error {
	if e.disposed {
		return ErrDisposed
	}
	next := setPath(e.properties[propertyID], SplitPath(path), CloneValue(value))
	if next == nil {
		delete(e.properties, propertyID)
	} else {
		e.properties[propertyID] = next
	}
	return nil
}

// PropertyIDs returns the IDs of all set properties, sorted
func (e *Element) PropertyIDs() []string {
	ids := make([]string, 0, len(e.properties))
	for id := range e.properties {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Properties returns a deep copy of the property mapping
func (e *Element) Properties() map[string]any {
	out := make(map[string]any, len(e.properties))
	for id, v := range e.properties {
		out[id] = CloneValue(v)
	}
	return out
}

// Dispose detaches the element and marks it and its subtree as unusable.
// Commands still holding a disposed element fail on execution.
func (e *Element) Dispose() {
	if e.parent != nil {
		_ = e.SetParent(nil, AppendIndex)
	}
	e.disposeSubtree()
}

func (e *Element) disposeSubtree() {
	e.disposed = true
	for _, c := range e.children {
		c.disposeSubtree()
	}
}

// Walk visits the element and its descendants depth-first. Returning false
// from fn skips the children of that element.
func (e *Element) Walk(fn func(el *Element, depth int) bool) {
	e.walk(fn, 0)
}

func (e *Element) walk(fn func(el *Element, depth int) bool, depth int) {
	if !fn(e, depth) {
		return
	}
	for _, c := range e.children {
		c.walk(fn, depth+1)
	}
}

// Depth returns the number of ancestors
func (e *Element) Depth() int {
	depth := 0
	for cur := e.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

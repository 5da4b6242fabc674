package commands

import (
	"errors"

	"pagecraft/internal/domain"
)

// ElementCommandType is shared by all element relocations
const ElementCommandType = "element-location"

// ElementCommand adds a child to a parent, removes it, or relocates it.
// Relocations never merge: every structural move is its own undo step.
type ElementCommand struct {
	NoMerge

	child  domain.Node
	parent domain.Node
	index  int

	previousParent domain.Node
	previousIndex  int
}

// NewElementCommand creates a command placing child under parent at index.
// A nil parent detaches the child; domain.AppendIndex appends it.
// The child's current placement is captured immediately.
func NewElementCommand(child, parent domain.Node, index int) *ElementCommand {
	c := &ElementCommand{
		child:         child,
		parent:        parent,
		index:         index,
		previousIndex: domain.AppendIndex,
	}
	c.previousParent = child.ParentNode()
	if c.previousParent != nil {
		c.previousIndex = child.Index()
	}
	return c
}

// AddChild creates a command adding child to parent at index (and removing
// it from any other parent). Use domain.AppendIndex to add it at the end.
func AddChild(parent, child domain.Node, index int) *ElementCommand {
	return NewElementCommand(child, parent, index)
}

// AddSibling creates a command placing newSibling directly after location,
// under location's parent. If location is detached, newSibling is detached.
func AddSibling(newSibling, location domain.Node) *ElementCommand {
	parent := location.ParentNode()
	if parent == nil {
		return NewElementCommand(newSibling, nil, domain.AppendIndex)
	}
	return NewElementCommand(newSibling, parent, location.Index()+1)
}

// Remove creates a command detaching element from its parent.
// It can be re-added later with AddChild or SetParent.
func Remove(element domain.Node) *ElementCommand {
	return NewElementCommand(element, nil, domain.AppendIndex)
}

// SetParent creates a command moving child under parent at index. If parent
// is nil the child is only removed from its current parent.
func SetParent(child, parent domain.Node, index int) *ElementCommand {
	return NewElementCommand(child, parent, index)
}

// Execute places the child at the target location
func (c *ElementCommand) Execute() Result {
	return relocate(c.child, c.parent, c.index)
}

// Undo restores the child's previous location
func (c *ElementCommand) Undo() Result {
	return relocate(c.child, c.previousParent, c.previousIndex)
}

// Type returns ElementCommandType
func (c *ElementCommand) Type() string {
	return ElementCommandType
}

// Child returns the element being relocated
func (c *ElementCommand) Child() domain.Node { return c.child }

// Target returns the parent and index the child is moved to
func (c *ElementCommand) Target() (domain.Node, int) { return c.parent, c.index }

// Previous returns the parent and index captured at construction
func (c *ElementCommand) Previous() (domain.Node, int) { return c.previousParent, c.previousIndex }

func relocate(child, parent domain.Node, index int) Result {
	err := child.SetParentNode(parent, index)
	switch {
	case err == nil:
		return Applied
	case errors.Is(err, domain.ErrCycle):
		return Rejected
	default:
		return UnknownState
	}
}

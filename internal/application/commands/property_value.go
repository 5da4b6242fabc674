package commands

import (
	"pagecraft/internal/domain"
)

// PropertyValueCommandType identifies property value commands
const PropertyValueCommandType = "set-property-value"

// PropertyValueCommand sets the value of an element property, optionally
// below a dot-separated path inside an object property.
//
// Consecutive edits of the same element property and path merge into one
// undo step whose Undo restores the value from before the first edit.
type PropertyValueCommand struct {
	element    domain.Node
	propertyID string
	path       string

	value         any
	previousValue any
	// whole property before the first write, restored by Undo so that
	// intermediate maps come back exactly as they were
	previousRoot any
}

// NewPropertyValueCommand creates a command writing value to propertyID at
// path. The current value is captured immediately.
func NewPropertyValueCommand(element domain.Node, propertyID string, value any, path string) *PropertyValueCommand {
	c := &PropertyValueCommand{
		element:       element,
		propertyID:    propertyID,
		path:          path,
		value:         value,
		previousValue: element.PropertyValue(propertyID, path),
	}
	c.previousRoot = c.previousValue
	if path != "" {
		c.previousRoot = element.PropertyValue(propertyID, "")
	}
	return c
}

// Execute writes the new value
func (c *PropertyValueCommand) Execute() Result {
	return c.write(c.value, c.path)
}

// Undo writes back the property as it was at construction
func (c *PropertyValueCommand) Undo() Result {
	return c.write(c.previousRoot, "")
}

func (c *PropertyValueCommand) write(value any, path string) Result {
	if err := c.element.SetPropertyValue(c.propertyID, value, path); err != nil {
		return UnknownState
	}
	return Applied
}

// Type returns PropertyValueCommandType
func (c *PropertyValueCommand) Type() string {
	return PropertyValueCommandType
}

// MaybeMergeWith folds this command into previous if both target the same
// element, property and path. previous keeps its captured previous value.
func (c *PropertyValueCommand) MaybeMergeWith(previous Command) bool {
	if previous == nil || previous.Type() != c.Type() {
		return false
	}

	prev, ok := previous.(*PropertyValueCommand)
	if !ok {
		return false
	}

	if prev.element.ID() != c.element.ID() ||
		prev.propertyID != c.propertyID ||
		prev.path != c.path {
		return false
	}

	prev.value = c.value
	return true
}

// Element returns the target element
func (c *PropertyValueCommand) Element() domain.Node { return c.element }

// PropertyID returns the top-level property ID
func (c *PropertyValueCommand) PropertyID() string { return c.propertyID }

// Path returns the nested path below the property ID
func (c *PropertyValueCommand) Path() string { return c.path }

// Value returns the value the command writes
func (c *PropertyValueCommand) Value() any { return c.value }

// PreviousValue returns the value captured at construction
func (c *PropertyValueCommand) PreviousValue() any { return c.previousValue }

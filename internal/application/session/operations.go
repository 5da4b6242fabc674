package session

import (
	"fmt"

	"pagecraft/internal/application"
	"pagecraft/internal/application/commands"
	"pagecraft/internal/domain"
)

// AddChild creates a new element and adds it to the parent at index
func (s *Session) AddChild(parentID, pattern, name string, index int) (*domain.Element, error) {
	if err := application.ValidateRequired("pattern", pattern); err != nil {
		return nil, err
	}
	parent, err := s.Element(parentID)
	if err != nil {
		return nil, err
	}

	el := domain.NewElement(pattern, name)
	if err := s.Execute(commands.AddChild(parent, el, index)); err != nil {
		return nil, err
	}
	s.selected = el
	return el, nil
}

// AddSibling creates a new element directly after the location element
func (s *Session) AddSibling(locationID, pattern, name string) (*domain.Element, error) {
	if err := application.ValidateRequired("pattern", pattern); err != nil {
		return nil, err
	}
	location, err := s.Element(locationID)
	if err != nil {
		return nil, err
	}
	if location.Parent() == nil {
		return nil, &application.ValidationError{
			Field:   "locationID",
			Message: "the page root cannot have siblings",
		}
	}

	el := domain.NewElement(pattern, name)
	if err := s.Execute(commands.AddSibling(el, location)); err != nil {
		return nil, err
	}
	s.selected = el
	return el, nil
}

// Move relocates an element under parent at index
func (s *Session) Move(elementID, parentID string, index int) error {
	el, err := s.Element(elementID)
	if err != nil {
		return err
	}
	parent, err := s.Element(parentID)
	if err != nil {
		return err
	}
	return s.Execute(commands.SetParent(el, parent, index))
}

// MoveBy shifts an element among its siblings by delta positions
func (s *Session) MoveBy(elementID string, delta int) error {
	el, err := s.Element(elementID)
	if err != nil {
		return err
	}
	parent := el.Parent()
	if parent == nil {
		return fmt.Errorf("move %s: %w", elementID, application.ErrInvalidOperation)
	}

	target := el.Index() + delta
	if target < 0 || target >= parent.ChildCount() {
		return &application.CommandError{Op: "execute", CommandType: commands.ElementCommandType, Err: application.ErrRejected}
	}
	return s.Execute(commands.SetParent(el, parent, target))
}

// Indent moves an element into its previous sibling, as its last child
func (s *Session) Indent(elementID string) error {
	el, err := s.Element(elementID)
	if err != nil {
		return err
	}
	parent := el.Parent()
	if parent == nil || el.Index() == 0 {
		return &application.CommandError{Op: "execute", CommandType: commands.ElementCommandType, Err: application.ErrRejected}
	}
	return s.Execute(commands.SetParent(el, parent.Child(el.Index()-1), domain.AppendIndex))
}

// Outdent moves an element out of its parent, directly after it
func (s *Session) Outdent(elementID string) error {
	el, err := s.Element(elementID)
	if err != nil {
		return err
	}
	parent := el.Parent()
	if parent == nil || parent.Parent() == nil {
		return &application.CommandError{Op: "execute", CommandType: commands.ElementCommandType, Err: application.ErrRejected}
	}
	return s.Execute(commands.AddSibling(el, parent))
}

// Remove detaches an element from the page. It stays reachable through
// Undo.
func (s *Session) Remove(elementID string) error {
	el, err := s.Element(elementID)
	if err != nil {
		return err
	}
	if el == s.page.Root {
		return &application.ValidationError{
			Field:   "elementID",
			Message: "the page root cannot be removed",
		}
	}
	return s.Execute(commands.Remove(el))
}

// SetProperty writes value at a full property path such as "style.color"
func (s *Session) SetProperty(elementID, propertyPath string, value any) error {
	if err := application.ValidatePropertyPath("propertyID", propertyPath); err != nil {
		return err
	}
	el, err := s.Element(elementID)
	if err != nil {
		return err
	}
	propertyID, path := domain.SplitPropertyPath(propertyPath)
	return s.Execute(commands.NewPropertyValueCommand(el, propertyID, value, path))
}

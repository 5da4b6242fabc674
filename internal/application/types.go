package application

import "pagecraft/internal/domain"

// Re-export domain types for use by adapters
type (
	Element     = domain.Element
	Page        = domain.Page
	PageElement = domain.PageElement
	PageSummary = domain.PageSummary
)

// AppendIndex places an element after its last sibling
const AppendIndex = domain.AppendIndex

// SplitPropertyPath splits "style.color" into "style" and "color"
func SplitPropertyPath(full string) (propertyID, path string) {
	return domain.SplitPropertyPath(full)
}

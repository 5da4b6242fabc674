package application

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"pagecraft/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "elementID" -> "element ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"elementID":  "element ID",
		"parentID":   "parent ID",
		"locationID": "location ID",
		"pageID":     "page ID",
		"propertyID": "property ID",
		"pattern":    "pattern",
		"name":       "name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidatePropertyPath checks that a full property path such as
// "style.color" has no empty segments
func ValidatePropertyPath(fieldName, path string) error {
	if err := ValidateRequired(fieldName, path); err != nil {
		return err
	}
	for _, part := range domain.SplitPath(path) {
		if strings.TrimSpace(part) == "" {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("invalid property path: %q", path),
			}
		}
	}
	return nil
}

var (
	integerPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
	decimalPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)\.[0-9]+$`)
)

// ParseValue turns a textual value from a CLI flag or tool argument into a
// property value. "true"/"false" become booleans, integers and decimals
// become numbers, "null" clears the property and anything else stays a
// string. Quoting with double quotes forces a string.
func ParseValue(raw string) any {
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return raw[1 : len(raw)-1]
	}
	switch strings.ToLower(raw) {
	case "null", "nil":
		return nil
	case "true", "false":
		return cast.ToBool(raw)
	}
	switch {
	case integerPattern.MatchString(raw):
		return cast.ToInt(raw)
	case decimalPattern.MatchString(raw):
		return cast.ToFloat64(raw)
	}
	return raw
}

// FormatValue renders a property value for display
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "∅"
	case string:
		return fmt.Sprintf("%q", t)
	case map[string]any:
		return fmt.Sprintf("{%d fields}", len(t))
	default:
		return cast.ToString(v)
	}
}

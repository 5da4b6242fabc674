package domain

import "strings"

// PathSeparator separates nested property IDs in a property path
const PathSeparator = "."

// SplitPath splits a dot-separated property path. The empty path yields nil.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, PathSeparator)
}

// JoinPath joins nested property IDs into a dot-separated path
func JoinPath(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, PathSeparator)
}

// SplitPropertyPath splits a full path such as "style.color" into its root
// property ID ("style") and the nested path below it ("color").
func SplitPropertyPath(full string) (propertyID, path string) {
	propertyID, path, _ = strings.Cut(full, PathSeparator)
	return propertyID, path
}

// CloneValue returns a deep copy of nested maps and slices. Scalars are
// returned as-is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = CloneValue(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = CloneValue(child)
		}
		return out
	default:
		return v
	}
}

func getPath(value any, parts []string) any {
	for _, part := range parts {
		m, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		value = m[part]
	}
	return value
}

// setPath returns a copy of current with value stored at parts. Maps along
// the path are cloned; maps that end up empty collapse to nil.
func setPath(current any, parts []string, value any) any {
	if len(parts) == 0 {
		return value
	}

	m := make(map[string]any)
	if existing, ok := current.(map[string]any); ok {
		for k, v := range existing {
			m[k] = v
		}
	}

	child := setPath(m[parts[0]], parts[1:], value)
	if child == nil {
		delete(m, parts[0])
	} else {
		m[parts[0]] = child
	}

	if len(m) == 0 {
		return nil
	}
	return m
}

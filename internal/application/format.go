package application

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"pagecraft/internal/domain"
)

// PropertyLeaf is one scalar property value addressed by its full path
type PropertyLeaf struct {
	Path  string
	Value any
}

// FlattenProperties lists the scalar values of an element, nested maps
// expanded into dot paths, sorted by path
func FlattenProperties(el *domain.Element) []PropertyLeaf {
	var leaves []PropertyLeaf
	var walk func(prefix string, v any)
	walk = func(prefix string, v any) {
		m, ok := v.(map[string]any)
		if !ok {
			leaves = append(leaves, PropertyLeaf{Path: prefix, Value: v})
			return
		}
		for k, child := range m {
			walk(domain.JoinPath(prefix, k), child)
		}
	}
	for id, v := range el.Properties() {
		walk(id, v)
	}

	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Path < leaves[j].Path })
	return leaves
}

// WriteTree prints the element tree of a page, one element per line
// indented by depth
func WriteTree(w io.Writer, page *domain.Page) error {
	for _, pe := range page.Flatten() {
		el := pe.Element
		if _, err := fmt.Fprintf(w, "%s%s  [%s] %s\n", strings.Repeat("  ", pe.Depth), el.ID(), el.Pattern(), el.Name()); err != nil {
			return err
		}
	}
	return nil
}

// WriteElement prints the location and properties of an element
func WriteElement(w io.Writer, el *domain.Element) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID:      %s\n", el.ID())
	fmt.Fprintf(&sb, "Pattern: %s\n", el.Pattern())
	fmt.Fprintf(&sb, "Name:    %s\n", el.Name())
	if parent := el.Parent(); parent != nil {
		fmt.Fprintf(&sb, "Parent:  %s (index %d)\n", parent.ID(), el.Index())
	}
	fmt.Fprintf(&sb, "Children: %d\n", el.ChildCount())

	leaves := FlattenProperties(el)
	if len(leaves) > 0 {
		sb.WriteString("Properties:\n")
	}
	for _, leaf := range leaves {
		fmt.Fprintf(&sb, "  %s = %s\n", leaf.Path, FormatValue(leaf.Value))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

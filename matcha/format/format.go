// Package format renders arbitrary values for assertion diagnostics.
//
// Rendering never fails: a value whose own String method panics falls back
// to a fixed placeholder, so an assertion always produces a description.
package format

import (
	"fmt"
	"strings"
)

// placeholder for values that cannot render themselves
const unknownType = "<unknown-type>"

// Value renders v for diagnostics. Strings are quoted, nils render as <nil>,
// and values implementing [fmt.Stringer] or error render themselves.
func Value(v any) (s string) {
	defer func() {
		if recover() != nil {
			s = unknownType
		}
	}()
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Slice renders items as a bracketed, comma-separated sequence:
// [1, 2, 3] or ["a", "b"].
func Slice[E any](items []E) string {
	parts := make([]string, 0, len(items))
	for _, e := range items {
		parts = append(parts, Value(e))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Package theme implements spec.md §4.3: resolving a static dotted path
// (theme.colors.primary) against an externally supplied, read-only nested
// tree of strings/numbers/objects.
package theme

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"

	"github.com/cssxtract/compiler/internal/model"
)

// Tree is the decoded shape of the theme JSON: nested maps/slices bottoming
// out at string or float64 leaves, matching encoding/json's generic "any"
// decode shape.
type Tree map[string]any

// Parse decodes the theme's JSON serialization (spec.md §6: "theme is a
// JSON serialization of the theme tree"). go-json-experiment/json is the
// teacher's own (go.mod-declared but, in the example pack, never exercised)
// JSON dependency — this is the one job this spec gives it, see
// SPEC_FULL.md §4.
func Parse(themeJSON string) (Tree, error) {
	var tree Tree
	if err := json.Unmarshal([]byte(themeJSON), &tree); err != nil {
		return nil, fmt.Errorf("invalid theme JSON: %w", err)
	}
	return tree, nil
}

// NotFoundError and NonScalarError distinguish the two resolve failure
// shapes named in spec.md §4.3 so callers can build the exact "theme.<path>
// does not exist" / "resolves to a non-scalar value" messages.
type NotFoundError struct{ Path string }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme.%s does not exist", e.Path)
}

type NonScalarError struct{ Path string }

func (e *NonScalarError) Error() string {
	return fmt.Sprintf("theme.%s resolves to a non-scalar value", e.Path)
}

// Resolve descends tree by the dotted path segments, returning a
// model.StaticValue for a string/number leaf. Non-finite numbers
// (NaN/±Inf, which JSON cannot even encode, but a decoded float64 computed
// downstream might produce) map to 0.0, matching a best-effort numeric
// read.
func Resolve(tree Tree, path []string) (model.StaticValue, error) {
	var cur any = map[string]any(tree)
	for i, seg := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return model.StaticValue{}, &NotFoundError{Path: strings.Join(path[:i+1], ".")}
		}
		next, ok := m[seg]
		if !ok {
			return model.StaticValue{}, &NotFoundError{Path: strings.Join(path[:i+1], ".")}
		}
		cur = next
	}
	switch v := cur.(type) {
	case string:
		return model.String(v), nil
	case float64:
		if isNonFinite(v) {
			return model.Number(0), nil
		}
		return model.Number(v), nil
	default:
		return model.StaticValue{}, &NonScalarError{Path: strings.Join(path, ".")}
	}
}

func isNonFinite(f float64) bool {
	return f != f || f > maxFinite || f < -maxFinite
}

const maxFinite = 1.7976931348623157e+308

// Package variables rebuilds the nested variable structure a template
// expects from the flat keyed values a host collects, and merges in the
// legacy free-form JSON variable blob under dynamic-wins precedence.
package variables

import (
	"encoding/json"
	"strings"
)

// Reconstruct inverts the compiled form: it scans flat for keys carrying
// prefix, rebuilds the nested/array variable tree encoded in their paths,
// and shallow-merges the result over the tree parsed from legacyJSON.
//
// Values that are nil or the empty string are treated as "not provided",
// never as "clear this field". Reconstruct itself never fails; malformed
// legacy input degrades through ParseLegacy. The returned Tree is always
// non-nil.
func Reconstruct(flat map[string]any, legacyJSON, prefix string) Tree {
	legacy := ParseLegacy(legacyJSON)

	dynamic := Tree{}
	for key, value := range flat {
		path, ok := SplitKey(key, prefix)
		if !ok {
			continue
		}
		if skippable(value) {
			continue
		}
		dynamic.assign(path, value)
	}

	return Merge(legacy, dynamic)
}

// ParseLegacy parses the free-form variable blob. Strict JSON is attempted
// first; on failure it falls back to a permissive "key=value,key=value"
// parse splitting each pair on the first "=" with whitespace trimmed on both
// sides. Malformed pairs are silently skipped. Absence, emptiness, or a blob
// with no recoverable pairs all yield an empty Tree.
func ParseLegacy(s string) Tree {
	if strings.TrimSpace(s) == "" {
		return Tree{}
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(s), &parsed); err == nil {
		return Tree(parsed)
	}

	tree := Tree{}
	for _, pair := range strings.Split(s, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		tree[key] = value
	}
	return tree
}

// Flatten is the inverse of Reconstruct for a single tree: it renders every
// leaf under its delimiter-encoded key with prefix applied. Record lists
// emit index segments between the list key and each child key. Hosts use
// this to pre-render sample values; tests use it to check round-trip
// fidelity.
func Flatten(tree Tree, prefix string) map[string]any {
	flat := map[string]any{}
	flattenInto(flat, tree, Path{}, prefix)
	return flat
}

func flattenInto(flat map[string]any, tree Tree, at Path, prefix string) {
	for key, value := range tree {
		path := at.child(key)
		switch v := value.(type) {
		case Tree:
			flattenInto(flat, v, path, prefix)
		case map[string]any:
			flattenInto(flat, Tree(v), path, prefix)
		case []Tree:
			for i, row := range v {
				flattenInto(flat, row, path.index(i), prefix)
			}
		default:
			flat[path.Key(prefix)] = value
		}
	}
}

// skippable reports whether a flat value counts as "not provided".
func skippable(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

package variables

import "strconv"

// Tree is the nested variable structure the Rynko API expects: string keys
// mapping to scalars, nested Trees, or lists of Trees (line-item rows). The
// legacy JSON variable blob already has this shape.
type Tree map[string]any

// assign walks or creates the nodes addressed by path and sets value at the
// final segment. Repeated assignments sharing a path prefix converge on the
// same nested node. A numeric segment in a non-terminal, non-leading
// position selects a record-list entry; the list is padded with empty
// records so assignment order does not matter. A numeric final segment is
// treated as an ordinary map key, matching the compiled-form convention
// where indexes only ever stand between a list key and a child key.
func (t Tree) assign(path Path, value any) {
	current := t
	i := 0
	for i < len(path)-1 {
		segment := path[i]

		if i+2 < len(path) && isIndex(path[i+1]) {
			idx, _ := strconv.Atoi(path[i+1])
			list, _ := current[segment].([]Tree)
			for len(list) <= idx {
				list = append(list, Tree{})
			}
			current[segment] = list
			current = list[idx]
			i += 2
			continue
		}

		child, ok := current[segment].(Tree)
		if !ok {
			child = Tree{}
			current[segment] = child
		}
		current = child
		i++
	}
	current[path[len(path)-1]] = value
}

// Merge shallow-merges dynamic over legacy at the top level only: dynamic
// keys replace same-named legacy keys, keys unique to either side are kept.
// Dynamic-wins precedence is a hard invariant; it lets users keep the legacy
// JSON box for fields the template schema does not expose yet while
// structured fields always take priority on conflict.
func Merge(legacy, dynamic Tree) Tree {
	merged := make(Tree, len(legacy)+len(dynamic))
	for k, v := range legacy {
		merged[k] = v
	}
	for k, v := range dynamic {
		merged[k] = v
	}
	return merged
}

package variables

import (
	"strconv"
	"strings"
)

// DefaultPrefix namespaces template variable keys in the host's flat input
// so they cannot collide with control keys like templateId.
const DefaultPrefix = "var_"

// delimiter separates path segments inside a flattened variable key. The
// encoding lives entirely in this file; Tree logic works on Path values and
// never splits strings itself.
const delimiter = "__"

// Path is an ordered list of segments addressing a node in a Tree. A numeric
// segment in a non-terminal position selects an entry of a repeating record
// list (line-item table rows).
type Path []string

// SplitKey tokenizes a flat input key into a Path. It reports false when the
// key does not carry the prefix and therefore belongs to another concern.
func SplitKey(key, prefix string) (Path, bool) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if !strings.HasPrefix(key, prefix) {
		return nil, false
	}
	return Path(strings.Split(strings.TrimPrefix(key, prefix), delimiter)), true
}

// Key renders the Path back into its flat-input form under prefix.
func (p Path) Key(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + strings.Join(p, delimiter)
}

// child returns a new Path extended by one segment.
func (p Path) child(segment string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, segment)
}

// index returns a new Path extended by a list index segment.
func (p Path) index(i int) Path {
	return p.child(strconv.Itoa(i))
}

// isIndex reports whether a segment is a list index.
func isIndex(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

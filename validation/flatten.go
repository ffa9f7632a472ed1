package validation

import (
	"errors"
	"sort"
	"strings"
)

// ErrConflictingPath is matched by ConflictingPathError via errors.Is.
var ErrConflictingPath = errors.New("conflicting path")

// ConflictingPathError reports a dotted key whose prefix already holds a
// leaf value, or a leaf key that is also used as a prefix of another key.
type ConflictingPathError struct {
	// Key is the flat key being placed.
	Key string
	// Segment is the path prefix that holds the conflicting value.
	Segment string
}

// Error returns a human-readable error message.
func (e *ConflictingPathError) Error() string {
	return "validation: conflicting path " + e.Segment + " while placing " + e.Key
}

// Is reports whether target matches this error type.
func (e *ConflictingPathError) Is(target error) bool {
	return target == ErrConflictingPath
}

// Deflatten rebuilds a nested mapping from keys written in dotted path
// notation. Every segment but the last addresses a nested map[string]any.
// Values are placed as-is, including values that are themselves maps.
//
// A segment that would have to be both a leaf and a nested map yields a
// *ConflictingPathError. The result depends only on the set of key/value
// pairs, never on iteration order.
func Deflatten(flat map[string]any) (map[string]any, error) {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(flat))
	// branches records maps created here, so that a caller-supplied map
	// value at a prefix is still a conflict.
	branches := make(map[string]bool)

	for _, key := range keys {
		segments := strings.Split(key, ".")
		node := out
		for i, seg := range segments[:len(segments)-1] {
			prefix := strings.Join(segments[:i+1], ".")
			next, ok := node[seg]
			if !ok {
				child := make(map[string]any)
				node[seg] = child
				branches[prefix] = true
				node = child
				continue
			}
			child, isMap := next.(map[string]any)
			if !isMap || !branches[prefix] {
				return nil, &ConflictingPathError{Key: key, Segment: prefix}
			}
			node = child
		}

		leaf := segments[len(segments)-1]
		if _, ok := node[leaf]; ok {
			return nil, &ConflictingPathError{Key: key, Segment: key}
		}
		node[leaf] = flat[key]
	}

	return out, nil
}

// Flatten joins nested map[string]any keys with dots. Values of any other
// type are leaves, and so are empty nested maps, which Deflatten places
// back as-is.
func Flatten(nested map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", nested)
	return out
}

func flattenInto(dst map[string]any, prefix string, nested map[string]any) {
	for k, v := range nested {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok && len(child) > 0 {
			flattenInto(dst, key, child)
			continue
		}
		dst[key] = v
	}
}

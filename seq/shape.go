package seq

import (
	"fmt"
	"reflect"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// Flatten concatenates one level of nested sequences.
//
//	seq.Flatten([]any{1, []any{2, []any{3}}}) // → [1 2 [3]]
func Flatten(items []any) []any {
	return FlattenDepth(items, 1)
}

// FlattenDeep recursively concatenates nested sequences of arbitrary depth.
func FlattenDeep(items []any) []any {
	return FlattenDepth(items, -1)
}

// FlattenDepth concatenates up to depth levels of nested sequences.
// A negative depth flattens fully; depth 0 returns a copy.
// Any slice or array element counts as a nested sequence, not just []any.
func FlattenDepth(items []any, depth int) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		sub, ok := asSequence(item)
		if ok && depth != 0 {
			out = append(out, FlattenDepth(sub, depth-1)...)
			continue
		}
		out = append(out, item)
	}
	return out
}

// asSequence views slice and array values of any element type as []any.
// Strings are scalars, not sequences.
func asSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Transposition
// ─────────────────────────────────────────────────────────────────────────────

// Zip transposes the given lists: the i-th output group holds the i-th
// element of every input. Ragged inputs are padded with the element type's
// zero value up to the longest list.
//
//	seq.Zip([]any{1, 2}, []any{"a", "b"}) // → [[1 a] [2 b]]
func Zip[T any](lists ...[]T) [][]T {
	longest := 0
	for _, l := range lists {
		if len(l) > longest {
			longest = len(l)
		}
	}
	out := make([][]T, longest)
	for i := range out {
		group := make([]T, len(lists))
		for j, l := range lists {
			if i < len(l) {
				group[j] = l[i]
			}
		}
		out[i] = group
	}
	return out
}

// Unzip is the inverse view of [Zip]: it transposes a list of groups back
// into per-position lists. Unzip(Zip(a, b)) reproduces a and b for
// equal-length inputs.
func Unzip[T any](groups [][]T) [][]T {
	return Zip(groups...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Pluck
// ─────────────────────────────────────────────────────────────────────────────

// Pluck collects the value at key from every map in items, skipping
// elements that are not maps or do not contain the key. The key may be a
// dot-separated path into nested maps:
//
//	users := []any{
//	    map[string]any{"user": map[string]any{"name": "moe"}},
//	    map[string]any{"user": map[string]any{"name": "curly"}},
//	    map[string]any{"other": 1},
//	}
//	seq.Pluck(users, "user.name") // → [moe curly]
func Pluck(items []any, key string) []any {
	segments := strings.Split(key, ".")
	out := make([]any, 0, len(items))
	for _, item := range items {
		if v, ok := pathGet(item, segments); ok {
			out = append(out, v)
		}
	}
	return out
}

// pathGet walks a dot-path through nested map[string]any values.
func pathGet(v any, segments []string) (any, bool) {
	current := v
	for _, segment := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Pair
// ─────────────────────────────────────────────────────────────────────────────

// Pair holds two values of possibly different types. It is the result type
// of funcs.Partition and the decoration record used by funcs.SortBy.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

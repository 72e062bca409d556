package seq

import "github.com/hasbyte1/go-lodash-utils/internal/fingerprint"

// Set operations compare elements by canonical structural digest (see
// internal/fingerprint), so they work across nested sequences, maps and
// mixed numeric widths.

// Uniq returns items with duplicates removed, keeping the first occurrence
// of each element and preserving order.
func Uniq[T any](items []T) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fingerprint.Key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Union merges the given lists and removes duplicates, first-seen-wins.
func Union[T any](lists ...[]T) []T {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	merged := make([]T, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	return Uniq(merged)
}

// Intersection returns the elements present in every supplied list after
// per-list deduplication. The output order follows the first list's
// deduplicated order. With no lists the result is empty.
func Intersection[T any](lists ...[]T) []T {
	if len(lists) == 0 {
		return []T{}
	}
	first := Uniq(lists[0])
	if len(lists) == 1 {
		return first
	}

	// Membership sets of the remaining lists.
	sets := make([]map[string]struct{}, len(lists)-1)
	for i, l := range lists[1:] {
		set := make(map[string]struct{}, len(l))
		for _, item := range l {
			set[fingerprint.Key(item)] = struct{}{}
		}
		sets[i] = set
	}

	out := make([]T, 0, len(first))
	for _, item := range first {
		k := fingerprint.Key(item)
		everywhere := true
		for _, set := range sets {
			if _, ok := set[k]; !ok {
				everywhere = false
				break
			}
		}
		if everywhere {
			out = append(out, item)
		}
	}
	return out
}

// Difference merges the given lists and returns the elements that occur
// exactly once in the merged result, in merged order.
//
// This is symmetric-difference-like: an element duplicated across inputs,
// or even twice within one input, is excluded entirely, not reduced to a
// single copy. That is the contract, not a bug; funcs.Remove relies on it
// to report removed elements.
func Difference[T any](lists ...[]T) []T {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	merged := make([]T, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}

	counts := make(map[string]int, len(merged))
	for _, item := range merged {
		counts[fingerprint.Key(item)]++
	}

	out := make([]T, 0, len(merged))
	for _, item := range merged {
		if counts[fingerprint.Key(item)] == 1 {
			out = append(out, item)
		}
	}
	return out
}

// IndexOf returns the index of the first element structurally equal to
// value at or after the optional start index (negative counts from the
// end, clamping to 0), or -1.
func IndexOf[T any](items []T, value T, from ...int) int {
	start := 0
	if len(from) > 0 {
		start = from[0]
		if start < 0 {
			start = len(items) + start
		}
		if start < 0 {
			start = 0
		}
	}
	k := fingerprint.Key(value)
	for i := start; i < len(items); i++ {
		if fingerprint.Key(items[i]) == k {
			return i
		}
	}
	return -1
}

// Contains reports whether items holds an element structurally equal to
// value.
func Contains[T any](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

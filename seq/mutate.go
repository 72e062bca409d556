package seq

import "github.com/hasbyte1/go-lodash-utils/internal/fingerprint"

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutators
//
// Every function in this file acts on a caller-owned binding: the caller
// passes a pointer to its slice variable and the operation commits the
// updated sequence back through it before returning. Out-of-range
// arguments clamp; mutators never fail.
// ─────────────────────────────────────────────────────────────────────────────

// Push appends values to the end of the list and returns the new length.
func Push[T any](list *[]T, values ...T) int {
	*list = append(*list, values...)
	return len(*list)
}

// Pop removes and returns the last element.
// Returns the zero value and false when the list is empty.
func Pop[T any](list *[]T) (T, bool) {
	var zero T
	n := len(*list)
	if n == 0 {
		return zero, false
	}
	last := (*list)[n-1]
	*list = (*list)[:n-1]
	return last, true
}

// Shift removes and returns the first element.
// Returns the zero value and false when the list is empty.
func Shift[T any](list *[]T) (T, bool) {
	var zero T
	if len(*list) == 0 {
		return zero, false
	}
	first := (*list)[0]
	*list = append([]T(nil), (*list)[1:]...)
	return first, true
}

// Unshift inserts values at the front of the list and returns the new
// length.
func Unshift[T any](list *[]T, values ...T) int {
	out := make([]T, 0, len(values)+len(*list))
	out = append(out, values...)
	out = append(out, *list...)
	*list = out
	return len(out)
}

// Splice removes deleteCount elements starting at start (negative counts
// from the end) and inserts the given values in their place, returning the
// removed elements. Both start and deleteCount clamp to the available
// range.
func Splice[T any](list *[]T, start, deleteCount int, inserts ...T) []T {
	n := len(*list)
	if start < 0 {
		start = n + start
	}
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if start+deleteCount > n {
		deleteCount = n - start
	}

	removed := make([]T, deleteCount)
	copy(removed, (*list)[start:start+deleteCount])

	out := make([]T, 0, n-deleteCount+len(inserts))
	out = append(out, (*list)[:start]...)
	out = append(out, inserts...)
	out = append(out, (*list)[start+deleteCount:]...)
	*list = out
	return removed
}

// Fill overwrites the list with value over the window [start, stop) under
// [BaseSlice] normalization. With no bounds the whole list is filled; with
// one bound, from start through the end.
func Fill[T any](list *[]T, value T, bounds ...int) {
	n := len(*list)
	start, stop := 0, n
	if len(bounds) > 0 {
		start = bounds[0]
		if start < 0 {
			start = n + start
		}
		if start < 0 {
			start = 0
		}
	}
	if len(bounds) > 1 {
		stop = bounds[1]
		if stop <= 0 {
			stop = n + stop
		}
		if stop > n {
			stop = n
		}
	}
	for i := start; i < stop && i < n; i++ {
		(*list)[i] = value
	}
}

// Pull removes every occurrence of the given values from the list,
// comparing by structural equality. Returns the number of elements
// removed.
func Pull[T any](list *[]T, values ...T) int {
	drop := make(map[string]struct{}, len(values))
	for _, v := range values {
		drop[fingerprint.Key(v)] = struct{}{}
	}
	out := make([]T, 0, len(*list))
	removed := 0
	for _, item := range *list {
		if _, gone := drop[fingerprint.Key(item)]; gone {
			removed++
			continue
		}
		out = append(out, item)
	}
	*list = out
	return removed
}

// PullAt removes the elements at the given indices (negative indices count
// from the end; out-of-range indices are ignored) and returns the pulled
// elements in the order the indices were given.
func PullAt[T any](list *[]T, indices ...int) []T {
	n := len(*list)
	drop := make(map[int]struct{}, len(indices))
	pulled := make([]T, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 {
			idx = n + idx
		}
		if idx < 0 || idx >= n {
			continue
		}
		if _, dup := drop[idx]; dup {
			continue
		}
		drop[idx] = struct{}{}
		pulled = append(pulled, (*list)[idx])
	}

	out := make([]T, 0, n-len(drop))
	for i, item := range *list {
		if _, gone := drop[i]; !gone {
			out = append(out, item)
		}
	}
	*list = out
	return pulled
}

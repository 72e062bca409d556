package seq

// ─────────────────────────────────────────────────────────────────────────────
// Normalization
// ─────────────────────────────────────────────────────────────────────────────

// BaseSlice is the single normalization routine every slicing helper in
// this package derives from. It returns a copy of items[start:stop) after
// normalizing the bounds:
//
//   - a negative start counts from the end, clamping to 0 when it
//     overflows;
//   - a non-positive stop is an offset from the end (stop ≤ 0 means
//     len(items)+stop, so 0 selects through the last element);
//   - a stop past the end clamps to the end.
//
// An inverted or out-of-range window yields an empty slice; BaseSlice
// never fails.
func BaseSlice[T any](items []T, start, stop int) []T {
	n := len(items)
	if start < 0 {
		start = n + start
		if start < 0 {
			start = 0
		}
	}
	if stop <= 0 {
		stop = n + stop
	}
	if stop > n {
		stop = n
	}
	if start >= stop {
		return []T{}
	}
	out := make([]T, stop-start)
	copy(out, items[start:stop])
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Derived slicing helpers
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Head is an alias for [First].
func Head[T any](items []T) (T, bool) { return First(items) }

// Initial returns every element but the last.
func Initial[T any](items []T) []T {
	return BaseSlice(items, 0, -1)
}

// Rest returns every element but the first.
func Rest[T any](items []T) []T {
	return BaseSlice(items, 1, 0)
}

// Tail is an alias for [Rest].
func Tail[T any](items []T) []T { return Rest(items) }

// Drop returns items with the first n elements removed.
// n ≤ 0 returns a copy of the whole sequence.
func Drop[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	return BaseSlice(items, n, 0)
}

// DropRight returns items with the last n elements removed.
// n ≤ 0 returns a copy of the whole sequence.
func DropRight[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	return BaseSlice(items, 0, -n)
}

// Take returns the first n elements. n ≤ 0 yields an empty slice; n past
// the end yields the whole sequence.
func Take[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	return BaseSlice(items, 0, n)
}

// TakeRight returns the last n elements. n ≤ 0 yields an empty slice; n
// past the end yields the whole sequence.
func TakeRight[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	return BaseSlice(items, -n, 0)
}

// Slice returns items[start:stop) under BaseSlice normalization. The stop
// bound is optional and defaults to the end of the sequence:
//
//	seq.Slice(s, -2)    // last two elements
//	seq.Slice(s, 1, -1) // s[1 : len(s)-1]
func Slice[T any](items []T, start int, stop ...int) []T {
	end := 0
	if len(stop) > 0 {
		end = stop[0]
	}
	return BaseSlice(items, start, end)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reordering & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Chunk splits items into consecutive runs of size elements.
// The last run may contain fewer than size elements.
// Returns an empty [][]T when size <= 0 or items is empty.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

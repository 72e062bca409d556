// Package seq provides pure sequence algebra: index-arithmetic slicing,
// set operations over deep value identity, shape operations
// (flatten/zip/unzip/pluck) and explicit in-place mutators for caller-owned
// slices.
//
// # Slicing
//
// Every slicing helper is derived from a single normalization routine,
// [BaseSlice], so negative indices and end-relative bounds behave
// identically across the whole family:
//
//	seq.Take([]int{1, 2, 3, 4, 5}, 2)      // → [1 2]
//	seq.TakeRight([]int{1, 2, 3, 4, 5}, 2) // → [4 5]
//	seq.Slice([]int{1, 2, 3, 4, 5}, 1, -1) // → [2 3 4]
//
// Out-of-range arguments clamp or yield empty results; slicing never fails.
//
// # Deep value identity
//
// Sequences in this library are loosely typed ([]any with nested sequences
// and maps), so the set operations ([Uniq], [Union], [Intersection],
// [Difference], [IndexOf]) compare elements by a canonical structural
// digest rather than ==. Two values are the same element exactly when they
// are structurally equal; numeric values compare across widths, so 2,
// int64(2) and 2.0 are one element.
//
// Note that [Difference] is symmetric-difference-like: it keeps the
// elements that occur exactly once across all merged inputs, so a value
// duplicated anywhere (even within a single input) is excluded entirely.
// This is the documented contract, not an accident.
//
// # Mutators
//
// Operations documented as mutating ([Push], [Pop], [Shift], [Unshift],
// [Splice], [Fill], [Pull], [PullAt]) take a pointer to the caller's slice
// binding and commit the result back through it before returning.
// Everything else returns a fresh slice and never observably alters its
// input.
package seq

package funcs

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/block"
	"github.com/hasbyte1/go-lodash-utils/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// All reports whether fn is truthy for every element, short-circuiting on
// the first falsey result. A nil fn treats the element itself as the
// predicate result. Returns Normal(bool); non-normal outcomes from fn
// propagate.
func All(items []any, fn *block.Callable) block.Outcome {
	for _, item := range items {
		truthy, out := predicate(item, fn)
		if out != nil {
			return out
		}
		if !truthy {
			return block.Normal{Value: false}
		}
	}
	return block.Normal{Value: true}
}

// Any reports whether fn is truthy for at least one element,
// short-circuiting on the first truthy result. A nil fn treats the element
// itself as the predicate result.
func Any(items []any, fn *block.Callable) block.Outcome {
	for _, item := range items {
		truthy, out := predicate(item, fn)
		if out != nil {
			return out
		}
		if truthy {
			return block.Normal{Value: true}
		}
	}
	return block.Normal{Value: false}
}

// predicate evaluates fn (or the element itself when fn is nil) as a
// boolean. A non-normal outcome is returned for propagation.
func predicate(item any, fn *block.Callable) (bool, block.Outcome) {
	if fn == nil {
		return Truthy(item), nil
	}
	switch o := block.Invoke(fn, item).(type) {
	case block.Normal:
		return Truthy(o.Value), nil
	default:
		return false, o
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Detect returns Normal with the first element for which fn is truthy,
// scanning forward from the optional start index (negative counts from the
// end, clamping to 0). No match yields Normal(nil).
func Detect(items []any, fn *block.Callable, from ...int) block.Outcome {
	for i := startIndex(len(items), from); i < len(items); i++ {
		truthy, out := predicate(items[i], fn)
		if out != nil {
			return out
		}
		if truthy {
			return block.Normal{Value: items[i]}
		}
	}
	return block.Normal{Value: nil}
}

// FindIndex returns Normal with the index of the first element for which
// fn is truthy, scanning forward from the optional start index. No match
// yields Normal(-1).
func FindIndex(items []any, fn *block.Callable, from ...int) block.Outcome {
	for i := startIndex(len(items), from); i < len(items); i++ {
		truthy, out := predicate(items[i], fn)
		if out != nil {
			return out
		}
		if truthy {
			return block.Normal{Value: i}
		}
	}
	return block.Normal{Value: -1}
}

// FindIndexes returns Normal([]int) with every index for which fn is
// truthy, in order.
func FindIndexes(items []any, fn *block.Callable) block.Outcome {
	indexes := make([]int, 0)
	for i, item := range items {
		truthy, out := predicate(item, fn)
		if out != nil {
			return out
		}
		if truthy {
			indexes = append(indexes, i)
		}
	}
	return block.Normal{Value: indexes}
}

func startIndex(n int, from []int) int {
	if len(from) == 0 {
		return 0
	}
	start := from[0]
	if start < 0 {
		start = n + start
	}
	if start < 0 {
		start = 0
	}
	return start
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Select returns Normal with a copy holding the elements for which fn is
// truthy, preserving order.
func Select(items []any, fn *block.Callable) block.Outcome {
	out := make([]any, 0, len(items))
	for _, item := range items {
		truthy, o := predicate(item, fn)
		if o != nil {
			return o
		}
		if truthy {
			out = append(out, item)
		}
	}
	return block.Normal{Value: out}
}

// Filter is an alias for [Select].
func Filter(items []any, fn *block.Callable) block.Outcome {
	return Select(items, fn)
}

// Reject is the complement of [Select]: it keeps the elements for which fn
// is falsey.
func Reject(items []any, fn *block.Callable) block.Outcome {
	out := make([]any, 0, len(items))
	for _, item := range items {
		truthy, o := predicate(item, fn)
		if o != nil {
			return o
		}
		if !truthy {
			out = append(out, item)
		}
	}
	return block.Normal{Value: out}
}

// Remove mutates the caller's binding to the elements for which fn is
// falsey (the complement of the matches) and returns Normal with the
// removed elements.
//
// The removed list is computed as seq.Difference(original, remaining), not
// by re-scanning matches positionally. With duplicate values this can
// under-report: an element that still occurs in the post-removal list is
// excluded from the reported removals entirely (Difference's
// exactly-once contract). This is the documented behavior.
//
// A non-normal outcome from fn propagates and leaves the binding
// untouched.
func Remove(items *[]any, fn *block.Callable) block.Outcome {
	original := *items
	remaining := make([]any, 0, len(original))
	for _, item := range original {
		truthy, o := predicate(item, fn)
		if o != nil {
			return o
		}
		if !truthy {
			remaining = append(remaining, item)
		}
	}
	*items = remaining
	return block.Normal{Value: seq.Difference(original, remaining)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Prefix / suffix scans
// ─────────────────────────────────────────────────────────────────────────────

// TakeWhile collects the longest prefix for which fn stays truthy,
// stopping at the first falsey result or the end of the sequence.
func TakeWhile(items []any, fn *block.Callable) block.Outcome {
	out := make([]any, 0, len(items))
	for _, item := range items {
		truthy, o := predicate(item, fn)
		if o != nil {
			return o
		}
		if !truthy {
			break
		}
		out = append(out, item)
	}
	return block.Normal{Value: out}
}

// TakeWhileRight collects the longest suffix for which fn stays truthy,
// scanning from the end. The result keeps the original left-to-right
// order.
func TakeWhileRight(items []any, fn *block.Callable) block.Outcome {
	start := len(items)
	for i := len(items) - 1; i >= 0; i-- {
		truthy, o := predicate(items[i], fn)
		if o != nil {
			return o
		}
		if !truthy {
			break
		}
		start = i
	}
	out := make([]any, len(items)-start)
	copy(out, items[start:])
	return block.Normal{Value: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Extrema
// ─────────────────────────────────────────────────────────────────────────────

// Min returns Normal with the element whose key (invoke(fn, elem), or the
// element itself when fn is nil) orders lowest under SortBy's comparison.
// An empty sequence yields the optional default, or
// Failure(ErrEmptyInput) when none was given.
func Min(items []any, fn *block.Callable, dflt ...any) block.Outcome {
	return extremum(items, fn, dflt, -1)
}

// Max is [Min] with the ordering inverted.
func Max(items []any, fn *block.Callable, dflt ...any) block.Outcome {
	return extremum(items, fn, dflt, 1)
}

func extremum(items []any, fn *block.Callable, dflt []any, sign int) block.Outcome {
	if len(items) == 0 {
		if len(dflt) > 0 {
			return block.Normal{Value: dflt[0]}
		}
		return block.Fail(fmt.Errorf("%w: min/max", ErrEmptyInput))
	}

	best := items[0]
	bestKey, out := iterKey(best, fn)
	if out != nil {
		return out
	}
	for _, item := range items[1:] {
		key, out := iterKey(item, fn)
		if out != nil {
			return out
		}
		if compareKeys(key, bestKey)*sign > 0 {
			best, bestKey = item, key
		}
	}
	return block.Normal{Value: best}
}

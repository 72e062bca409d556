package funcs

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/hasbyte1/go-lodash-utils/block"
	"github.com/hasbyte1/go-lodash-utils/internal/fingerprint"
	"github.com/hasbyte1/go-lodash-utils/seq"
)

// Map invokes fn per element and returns Normal with the sequence of
// results.
//
// A LoopBreak from fn short-circuits: Map returns Normal with the break's
// carried value in place of the accumulated sequence, discarding the
// partial results. That is an intentional early exit, not an error. Every
// other non-normal outcome propagates unchanged, including LoopContinue,
// which is not Map's signal to absorb.
func Map(items []any, fn *block.Callable) block.Outcome {
	out := make([]any, 0, len(items))
	for _, item := range items {
		switch o := block.Invoke(fn, item).(type) {
		case block.Normal:
			out = append(out, o.Value)
		case block.LoopBreak:
			return block.Normal{Value: o.Value}
		default:
			return o
		}
	}
	return block.Normal{Value: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds items left to right: acc = invoke(fn, acc, elem). With no
// seed the first element becomes the accumulator and folding starts at the
// second; an empty sequence with no seed yields Failure(ErrEmptyInput).
func Reduce(items []any, fn *block.Callable, seed ...any) block.Outcome {
	acc, rest, out := foldSetup(items, seed)
	if out != nil {
		return out
	}
	for _, item := range rest {
		switch o := block.Invoke(fn, acc, item).(type) {
		case block.Normal:
			acc = o.Value
		default:
			return o
		}
	}
	return block.Normal{Value: acc}
}

// ReduceRight folds items right to left. With no seed the last element
// becomes the accumulator and folding starts at the second-to-last.
func ReduceRight(items []any, fn *block.Callable, seed ...any) block.Outcome {
	return Reduce(seq.Reverse(items), fn, seed...)
}

func foldSetup(items []any, seed []any) (acc any, rest []any, fail block.Outcome) {
	if len(seed) > 0 {
		return seed[0], items, nil
	}
	if len(items) == 0 {
		return nil, nil, block.Fail(fmt.Errorf("%w: reduce", ErrEmptyInput))
	}
	return items[0], items[1:], nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// SortBy sorts items by the key fn computes per element
// (decorate-sort-undecorate). Keys compare numerically when both sides
// parse as numbers, lexicographically otherwise. The sort is stable: equal
// keys preserve the elements' original relative order. Passing desc=true
// reverses the sorted sequence.
//
// A nil fn sorts the elements by themselves. Non-normal outcomes from fn
// propagate before any reordering happens.
func SortBy(items []any, fn *block.Callable, desc ...bool) block.Outcome {
	decorated := make([]seq.Pair[any, any], len(items))
	for i, item := range items {
		key, out := iterKey(item, fn)
		if out != nil {
			return out
		}
		decorated[i] = seq.Pair[any, any]{First: key, Second: item}
	}

	sort.SliceStable(decorated, func(i, j int) bool {
		return compareKeys(decorated[i].First, decorated[j].First) < 0
	})

	out := make([]any, len(decorated))
	for i, p := range decorated {
		out[i] = p.Second
	}
	if len(desc) > 0 && desc[0] {
		out = seq.Reverse(out)
	}
	return block.Normal{Value: out}
}

// iterKey computes the sort/extremum key for item: invoke(fn, item), or
// the item itself when fn is nil. A non-normal outcome is returned to be
// propagated.
func iterKey(item any, fn *block.Callable) (any, block.Outcome) {
	if fn == nil {
		return item, nil
	}
	switch o := block.Invoke(fn, item).(type) {
	case block.Normal:
		return o.Value, nil
	default:
		return nil, o
	}
}

// compareKeys orders two keys: numerically when both parse as numbers,
// else lexicographically over their string forms.
func compareKeys(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & partitioning
// ─────────────────────────────────────────────────────────────────────────────

// Groups is an insertion-ordered key→elements mapping built by [GroupBy].
// Keys are identified structurally, so two invocations of the iterator
// producing equal nested values land in the same group.
type Groups struct {
	keys   []any
	groups map[string][]any
}

// Keys returns the group keys in first-appearance order.
func (g *Groups) Keys() []any {
	out := make([]any, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the elements grouped under key and whether the key exists.
func (g *Groups) Get(key any) ([]any, bool) {
	members, ok := g.groups[fingerprint.Key(key)]
	return members, ok
}

// Len returns the number of distinct keys.
func (g *Groups) Len() int { return len(g.keys) }

// GroupBy appends each element to the group keyed by invoke(fn, elem) and
// returns Normal(*Groups). Keys keep first-appearance order; duplicates
// within a group are kept. Non-normal outcomes from fn propagate.
func GroupBy(items []any, fn *block.Callable) block.Outcome {
	g := &Groups{groups: make(map[string][]any)}
	for _, item := range items {
		key, out := iterKey(item, fn)
		if out != nil {
			return out
		}
		id := fingerprint.Key(key)
		if _, seen := g.groups[id]; !seen {
			g.keys = append(g.keys, key)
		}
		g.groups[id] = append(g.groups[id], item)
	}
	return block.Normal{Value: g}
}

// Partition splits items into the elements for which fn is truthy and all
// others, preserving relative order within each side, and returns
// Normal(seq.Pair[[]any, []any]{truthy, falsey}).
func Partition(items []any, fn *block.Callable) block.Outcome {
	pass := make([]any, 0)
	fail := make([]any, 0)
	for _, item := range items {
		switch o := block.Invoke(fn, item).(type) {
		case block.Normal:
			if Truthy(o.Value) {
				pass = append(pass, item)
			} else {
				fail = append(fail, item)
			}
		default:
			return o
		}
	}
	return block.Normal{Value: seq.Pair[[]any, []any]{First: pass, Second: fail}}
}

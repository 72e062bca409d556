package funcs

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/block"
	"github.com/hasbyte1/go-lodash-utils/seq"
)

// Each invokes fn once per element, left to right, and returns
// Normal(items), the original sequence unchanged, for chaining,
// regardless of what fn produces.
//
// Each is an iteration construct: a LoopBreak from fn stops the pass at
// that element and a LoopContinue skips to the next one. EarlyReturn and
// Failure abort the remaining iterations and propagate unchanged.
func Each(items []any, fn *block.Callable) block.Outcome {
	for _, item := range items {
		switch out := block.Invoke(fn, item).(type) {
		case block.Normal, block.LoopContinue:
			// next element
		case block.LoopBreak:
			return block.Normal{Value: items}
		default:
			return out
		}
	}
	return block.Normal{Value: items}
}

// EachIndex is Each with the element's index passed as the second
// argument: fn(elem, index).
func EachIndex(items []any, fn *block.Callable) block.Outcome {
	for i, item := range items {
		switch out := block.Invoke(fn, item, i).(type) {
		case block.Normal, block.LoopContinue:
		case block.LoopBreak:
			return block.Normal{Value: items}
		default:
			return out
		}
	}
	return block.Normal{Value: items}
}

// EachSlice partitions items into contiguous runs of size elements (the
// last run may be shorter) and invokes fn once per run with the run as a
// single sequence argument. Returns Normal(items) under the same
// loop-control contract as Each. A size below 1 yields
// Failure(ErrInvalidArgument).
func EachSlice(items []any, size int, fn *block.Callable) block.Outcome {
	if size < 1 {
		return block.Fail(fmt.Errorf("%w: slice size %d, need at least 1", ErrInvalidArgument, size))
	}
	for _, run := range seq.Chunk(items, size) {
		switch out := block.Invoke(fn, run).(type) {
		case block.Normal, block.LoopContinue:
		case block.LoopBreak:
			return block.Normal{Value: items}
		default:
			return out
		}
	}
	return block.Normal{Value: items}
}

// Do runs body, then evaluates cond and repeats according to keyword:
// "while" keeps looping as long as cond is truthy, "until" loops until it
// becomes truthy. The body always runs at least once. Any other keyword
// yields Failure(ErrInvalidArgument).
//
// Do is an iteration construct: LoopBreak from the body (or the condition)
// stops the loop, LoopContinue from the body proceeds to the condition
// check, and LoopContinue from the condition skips the check and starts the
// next iteration. On normal termination Do returns Normal(nil).
func Do(body *block.Callable, keyword string, cond *block.Callable) block.Outcome {
	if keyword != "while" && keyword != "until" {
		return block.Fail(fmt.Errorf("%w: do-loop keyword %q, need \"while\" or \"until\"", ErrInvalidArgument, keyword))
	}
	for {
		switch out := block.Invoke(body).(type) {
		case block.Normal, block.LoopContinue:
		case block.LoopBreak:
			return block.Normal{Value: nil}
		default:
			return out
		}

		switch out := block.Invoke(cond).(type) {
		case block.Normal:
			truthy := Truthy(out.Value)
			if keyword == "while" && !truthy {
				return block.Normal{Value: nil}
			}
			if keyword == "until" && truthy {
				return block.Normal{Value: nil}
			}
		case block.LoopBreak:
			return block.Normal{Value: nil}
		case block.LoopContinue:
			// skip the check, next iteration
		default:
			return out
		}
	}
}

// Package funcs implements the higher-order collection operations
// (each/map/reduce, the predicate and search family, sorting, grouping and
// partitioning) over loosely typed sequences ([]any), yielding to a
// caller-supplied block.Callable once per element.
//
// Every operation returns a block.Outcome and obeys one propagation
// contract:
//
//   - block.EarlyReturn and block.Failure from the callable abort the
//     remaining iterations and propagate unchanged, through any nesting
//     depth of operations, until a block.Call boundary absorbs them.
//   - block.LoopBreak and block.LoopContinue act on the nearest enclosing
//     iteration construct. [Each], [EachIndex], [EachSlice] and [Do] are
//     iteration constructs: break stops them, continue skips the current
//     element. [Map] is special-cased per its contract: a break's carried
//     value becomes Map's entire result. All other operations pass
//     loop-control outcomes through untouched.
//
// A typical pipeline:
//
//	double := block.Func("double", func(args []any) block.Outcome {
//	    return block.Return(args[0].(int) * 2)
//	})
//	out := funcs.Map([]any{1, 2, 3}, double)
//	doubled, _ := block.Unwrap(out) // → [2 4 6]
//
// Operations that can fail do so with Failure outcomes wrapping the
// package's sentinel errors: ErrInvalidArgument (malformed size or loop
// keyword) and ErrEmptyInput (reduce/min/max on an empty sequence without
// a seed or default).
package funcs

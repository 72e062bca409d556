// Package block implements the callable-invocation protocol underneath the
// higher-order operations in package funcs: callers hand an operation a
// Callable, either a named procedure or an anonymous block with a captured
// scope, and the operation yields to it once per element via [Invoke].
//
// # Callables
//
// A Callable is tagged at construction as either a procedure or a block and
// is never reclassified afterwards:
//
//	double := block.Func("double", func(args []any) block.Outcome {
//	    return block.Return(args[0].(int) * 2)
//	})
//
//	scope := block.NewScope(nil)
//	scope.Define("total", 0)
//	add := block.Bind(scope, []string{"n"}, func(s *block.Scope) block.Outcome {
//	    n, _ := s.Get("n")
//	    total, _ := s.Get("total")
//	    _ = s.Set("total", total.(int)+n.(int))
//	    return block.Return(nil)
//	})
//
// A block's body runs in a fresh child of its captured scope: it never sees
// the invoker's own locals, and it reaches the defining scope's variables
// only by explicit name lookup (Get/Set), as the `add` example above does
// with "total".
//
// # Outcomes
//
// Every invocation produces an [Outcome], one of five tagged variants:
//
//   - [Normal]: ordinary completion with a value.
//   - [EarlyReturn]: the callable asks the enclosing host function to
//     return; it unwinds past every intermediate operation unchanged and is
//     absorbed only at a [Call] boundary.
//   - [LoopBreak], [LoopContinue]: act on the nearest enclosing iteration
//     construct (funcs.Each, funcs.Do, …), passing through [Invoke]
//     unchanged.
//   - [Failure]: an error with its message preserved verbatim; each
//     [Invoke] hop increments its frame depth by exactly one so that a
//     failure surfaced N operations deep reports how far it travelled.
//
// # Named procedures
//
// Procedures can be registered process-wide under a name and referenced
// with [Proc]; the name is resolved at invoke time:
//
//	block.Register("upper", func(args []any) block.Outcome {
//	    return block.Return(strings.ToUpper(args[0].(string)))
//	})
//	out := block.Invoke(block.Proc("upper"), "go")
package block

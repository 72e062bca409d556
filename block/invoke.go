package block

import "fmt"

// Invoke executes a Callable with positional arguments and relays its
// outcome to the direct caller.
//
// Blocks run in a fresh child of their captured scope holding the bound
// parameters, so the body never sees the invoker's locals. Arguments bind
// to the parameter list in order; a mismatch yields
// Failure(ErrArityMismatch) unless the block was built with [BindVariadic],
// in which case the last parameter collects the argument tail as a []any.
//
// The outcome crosses exactly one frame on the way out: a Failure has its
// Depth incremented by one with its message intact, while Normal,
// EarlyReturn, LoopBreak and LoopContinue pass through unchanged. Nested
// invocations therefore unwind one level at a time, and loop-control or
// early-return signals keep acting on the *calling* function's loop or
// frame rather than being absorbed here. Failures raised by Invoke itself
// (nil callable, unknown procedure name, arity mismatch) originate in this
// frame and cross the same boundary, so they too arrive at depth 1.
func Invoke(c *Callable, args ...any) Outcome {
	if c == nil {
		return propagate(Fail(ErrNilCallable))
	}
	switch c.kind {
	case kindProcedure:
		fn := c.fn
		if fn == nil {
			var ok bool
			fn, ok = lookup(c.name)
			if !ok {
				return propagate(Fail(fmt.Errorf("%w: %q", ErrUnknownProcedure, c.name)))
			}
		}
		return propagate(fn(args))

	case kindBlock:
		s, err := bindParams(c, args)
		if err != nil {
			return propagate(Fail(err))
		}
		return propagate(c.body(s))

	default:
		return propagate(Failf("block: invalid callable kind %d", c.kind))
	}
}

// Call invokes c as a host-level function: it is the boundary at which an
// EarlyReturn stops unwinding and becomes the function's ordinary result.
//
//	Normal, EarlyReturn → (value, nil)
//	LoopBreak, LoopContinue → (nil, ErrControlOutsideLoop)
//	Failure → (nil, the failure's error)
func Call(c *Callable, args ...any) (any, error) {
	switch out := Invoke(c, args...).(type) {
	case Normal:
		return out.Value, nil
	case EarlyReturn:
		return out.Value, nil
	case LoopBreak, LoopContinue:
		return nil, ErrControlOutsideLoop
	case Failure:
		return nil, out.Err
	default:
		return nil, fmt.Errorf("block: unknown outcome %T", out)
	}
}

// bindParams builds the block's evaluation scope: a fresh child of the
// captured scope with each parameter defined from the argument list.
func bindParams(c *Callable, args []any) (*Scope, error) {
	s := NewScope(c.captured)
	if c.variadic {
		if len(c.params) == 0 {
			return nil, fmt.Errorf("%w: variadic block declares no parameters", ErrArityMismatch)
		}
		fixed := len(c.params) - 1
		if len(args) < fixed {
			return nil, arityErr(c, len(args))
		}
		for i, name := range c.params[:fixed] {
			s.Define(name, args[i])
		}
		tail := make([]any, len(args)-fixed)
		copy(tail, args[fixed:])
		s.Define(c.params[fixed], tail)
		return s, nil
	}
	if len(args) != len(c.params) {
		return nil, arityErr(c, len(args))
	}
	for i, name := range c.params {
		s.Define(name, args[i])
	}
	return s, nil
}

func arityErr(c *Callable, got int) error {
	return fmt.Errorf("%w: got %d argument(s) for parameters %v",
		ErrArityMismatch, got, c.params)
}

package block

import "fmt"

// Outcome is the tagged completion result of invoking a Callable.
//
// The five variants, [Normal], [EarlyReturn], [LoopBreak], [LoopContinue]
// and [Failure], form a closed set: the interface is sealed by an
// unexported marker method so that every consumer can type-switch
// exhaustively. Collapsing the tags (for example treating EarlyReturn as a
// Normal) would lose the "block that returns out of the caller" contract,
// so operations must preserve the concrete variant at every hop.
type Outcome interface {
	isOutcome()
}

// Normal is ordinary completion carrying the produced value.
type Normal struct{ Value any }

func (Normal) isOutcome() {}

// EarlyReturn asks the enclosing host function to return Value. It unwinds
// through every intermediate operation and Invoke hop unchanged and is
// converted to a plain value only at a [Call] boundary.
type EarlyReturn struct{ Value any }

func (EarlyReturn) isOutcome() {}

// LoopBreak aborts the nearest enclosing iteration construct, optionally
// carrying a value (funcs.Map returns it in place of the mapped sequence).
type LoopBreak struct{ Value any }

func (LoopBreak) isOutcome() {}

// LoopContinue skips to the next iteration of the nearest enclosing
// iteration construct.
type LoopContinue struct{}

func (LoopContinue) isOutcome() {}

// Failure is an error outcome. Err keeps the original message verbatim;
// Depth counts the Invoke hops the failure has crossed since it was raised
// (0 at the origin frame, incremented by exactly one per hop).
type Failure struct {
	Err   error
	Depth int
}

func (Failure) isOutcome() {}

// Error implements the error interface so a Failure can be returned or
// wrapped directly. The message is Err's, untouched.
func (f Failure) Error() string { return f.Err.Error() }

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (f Failure) Unwrap() error { return f.Err }

// Return builds a Normal outcome. It is the usual last line of a callable
// body.
func Return(v any) Outcome { return Normal{Value: v} }

// Fail builds a Failure outcome at depth 0 (the origin frame).
func Fail(err error) Outcome { return Failure{Err: err} }

// Failf builds a Failure from a format string, like fmt.Errorf.
func Failf(format string, args ...any) Outcome {
	return Failure{Err: fmt.Errorf(format, args...)}
}

// Unwrap converts an Outcome to Go's (value, error) convention:
//
//	Normal, EarlyReturn, LoopBreak → carried value, nil error
//	LoopContinue                   → nil, nil
//	Failure                        → nil, the failure's error
//
// It deliberately flattens the control tags; use it only at points where
// propagation is finished (tests, terminal call sites). Operations that sit
// between an invocation and its origin frame must switch on the concrete
// variant instead.
func Unwrap(o Outcome) (any, error) {
	switch out := o.(type) {
	case Normal:
		return out.Value, nil
	case EarlyReturn:
		return out.Value, nil
	case LoopBreak:
		return out.Value, nil
	case LoopContinue:
		return nil, nil
	case Failure:
		return nil, out.Err
	default:
		return nil, fmt.Errorf("block: unknown outcome %T", o)
	}
}

// propagate applies the per-hop adjustment of the invocation protocol:
// Failure gains one frame of depth with its message intact; every other
// variant passes through unchanged.
func propagate(o Outcome) Outcome {
	if f, ok := o.(Failure); ok {
		f.Depth++
		return f
	}
	return o
}

package block

import "errors"

// Sentinel errors returned by Scope lookups and surfaced as Failure
// outcomes by Invoke and Call.
var (
	// ErrArityMismatch is returned when the number of arguments does not
	// match a block's parameter list (and the block has no variadic tail).
	ErrArityMismatch = errors.New("block: argument count does not match parameter list")

	// ErrUnknownProcedure is returned when a Callable built with Proc
	// references a name that is not in the registry at invoke time.
	ErrUnknownProcedure = errors.New("block: procedure not registered")

	// ErrUndefinedVariable is returned by Scope.Get and Scope.Set when no
	// visible frame binds the requested name.
	ErrUndefinedVariable = errors.New("block: undefined variable")

	// ErrControlOutsideLoop is returned by Call when a LoopBreak or
	// LoopContinue outcome reaches the host-function boundary without an
	// enclosing iteration construct having absorbed it.
	ErrControlOutsideLoop = errors.New("block: break/continue outside of a loop")

	// ErrNilCallable is returned when Invoke or Call is given a nil Callable.
	ErrNilCallable = errors.New("block: nil callable")
)

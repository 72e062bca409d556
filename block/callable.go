package block

import "sync"

// ProcFunc is the implementation signature of a procedure: it receives the
// positional arguments as passed and produces an Outcome.
type ProcFunc func(args []any) Outcome

// BodyFunc is the implementation signature of a block body. The scope holds
// the block's parameters (bound by Invoke) and chains to the captured
// defining scope; the body reads and writes enclosing variables through it
// by explicit name.
type BodyFunc func(s *Scope) Outcome

// kind discriminates the two Callable variants. It is fixed at
// construction and never re-derived from the value's runtime shape, so a
// Callable cannot flicker between "procedure" and "block" across
// invocations.
type kind uint8

const (
	kindProcedure kind = iota
	kindBlock
)

// Callable is an invocable value: either a procedure (named or directly
// bound) or an anonymous block with a parameter list and a captured scope.
// Both variants are invoked uniformly by [Invoke].
//
// Construct with [Func], [Proc], [Bind] or [BindVariadic]; the zero value
// is not usable.
type Callable struct {
	kind kind

	// Procedure variant.
	name string   // registry name; empty for directly bound procedures
	fn   ProcFunc // non-nil when bound directly via Func

	// Block variant.
	params   []string
	variadic bool // last param collects the argument tail as []any
	body     BodyFunc
	captured *Scope
}

// Func builds a procedure Callable directly bound to fn. The name is
// informational only (error messages); it is not looked up in the registry.
func Func(name string, fn ProcFunc) *Callable {
	return &Callable{kind: kindProcedure, name: name, fn: fn}
}

// Proc builds a procedure Callable that resolves name in the process-wide
// registry at each invocation. Invoking it while the name is unregistered
// yields Failure(ErrUnknownProcedure).
func Proc(name string) *Callable {
	return &Callable{kind: kindProcedure, name: name}
}

// Bind builds an anonymous block: params bind positionally, body runs in a
// fresh child of captured. A nil captured scope is allowed for blocks that
// do not touch enclosing variables.
func Bind(captured *Scope, params []string, body BodyFunc) *Callable {
	return &Callable{
		kind:     kindBlock,
		params:   append([]string(nil), params...),
		body:     body,
		captured: captured,
	}
}

// BindVariadic is Bind with a variadic tail: the last parameter receives
// every remaining argument as a []any (possibly empty).
func BindVariadic(captured *Scope, params []string, body BodyFunc) *Callable {
	c := Bind(captured, params, body)
	c.variadic = true
	return c
}

// Name returns the callable's procedure name, or "" for anonymous blocks
// and unnamed procedures.
func (c *Callable) Name() string { return c.name }

// IsBlock reports whether c is an anonymous block (as opposed to a
// procedure).
func (c *Callable) IsBlock() bool { return c.kind == kindBlock }

// ─────────────────────────────────────────────────────────────────────────────
// Named-procedure registry
// ─────────────────────────────────────────────────────────────────────────────

// registry is the package-level, goroutine-safe procedure store.
var registry struct {
	mu    sync.RWMutex
	procs map[string]ProcFunc
}

func init() {
	registry.procs = make(map[string]ProcFunc)
}

// Register adds a named procedure to the global registry. If a procedure
// with that name already exists it is replaced. Safe to call from multiple
// goroutines.
//
// Example – register and invoke a doubling procedure:
//
//	block.Register("double", func(args []any) block.Outcome {
//	    return block.Return(args[0].(int) * 2)
//	})
//	out := block.Invoke(block.Proc("double"), 21) // Normal{42}
func Register(name string, fn ProcFunc) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.procs[name] = fn
}

// HasProcedure reports whether a procedure with the given name is
// registered.
func HasProcedure(name string) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.procs[name]
	return ok
}

// FlushProcedures removes all registered procedures.
// Intended for use in tests.
func FlushProcedures() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.procs = make(map[string]ProcFunc)
}

// lookup resolves name in the registry.
func lookup(name string) (ProcFunc, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	fn, ok := registry.procs[name]
	return fn, ok
}

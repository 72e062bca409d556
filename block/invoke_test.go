package block_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-lodash-utils/block"
)

// ─────────────────────────────────────────────────────────────────────────────
// Procedures
// ─────────────────────────────────────────────────────────────────────────────

func TestInvokeBoundProcedure(t *testing.T) {
	double := block.Func("double", func(args []any) block.Outcome {
		return block.Return(args[0].(int) * 2)
	})
	out, ok := block.Invoke(double, 21).(block.Normal)
	if !ok || out.Value != 42 {
		t.Fatalf("Invoke(double, 21) = %#v, want Normal{42}", out)
	}
}

func TestInvokeRegisteredProcedure(t *testing.T) {
	defer block.FlushProcedures()
	block.Register("triple", func(args []any) block.Outcome {
		return block.Return(args[0].(int) * 3)
	})
	if !block.HasProcedure("triple") {
		t.Fatal("HasProcedure(triple) = false after Register")
	}
	out, ok := block.Invoke(block.Proc("triple"), 5).(block.Normal)
	if !ok || out.Value != 15 {
		t.Fatalf("Invoke(Proc(triple), 5) = %#v, want Normal{15}", out)
	}
}

func TestInvokeUnknownProcedure(t *testing.T) {
	defer block.FlushProcedures()
	block.FlushProcedures()
	f, ok := block.Invoke(block.Proc("ghost")).(block.Failure)
	if !ok {
		t.Fatal("invoking an unregistered name should fail")
	}
	if !errors.Is(f.Err, block.ErrUnknownProcedure) {
		t.Fatalf("err = %v, want ErrUnknownProcedure", f.Err)
	}
}

func TestInvokeNilCallable(t *testing.T) {
	f, ok := block.Invoke(nil).(block.Failure)
	if !ok || !errors.Is(f.Err, block.ErrNilCallable) {
		t.Fatalf("Invoke(nil) = %#v, want Failure(ErrNilCallable)", f)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Blocks: parameter binding and scope isolation
// ─────────────────────────────────────────────────────────────────────────────

func TestInvokeBlockBindsParams(t *testing.T) {
	b := block.Bind(nil, []string{"a", "b"}, func(s *block.Scope) block.Outcome {
		a, _ := s.Get("a")
		bb, _ := s.Get("b")
		return block.Return(a.(int) + bb.(int))
	})
	out, ok := block.Invoke(b, 2, 3).(block.Normal)
	if !ok || out.Value != 5 {
		t.Fatalf("Invoke = %#v, want Normal{5}", out)
	}
}

func TestInvokeBlockArityMismatch(t *testing.T) {
	b := block.Bind(nil, []string{"a"}, func(s *block.Scope) block.Outcome {
		return block.Return(nil)
	})
	for _, args := range [][]any{{}, {1, 2}} {
		f, ok := block.Invoke(b, args...).(block.Failure)
		if !ok || !errors.Is(f.Err, block.ErrArityMismatch) {
			t.Fatalf("Invoke with %d args = %#v, want Failure(ErrArityMismatch)", len(args), f)
		}
	}
}

func TestInvokeVariadicTail(t *testing.T) {
	b := block.BindVariadic(nil, []string{"first", "rest"}, func(s *block.Scope) block.Outcome {
		rest, _ := s.Get("rest")
		return block.Return(len(rest.([]any)))
	})

	out, _ := block.Invoke(b, "x", 1, 2, 3).(block.Normal)
	if out.Value != 3 {
		t.Fatalf("variadic tail length = %v, want 3", out.Value)
	}
	out, _ = block.Invoke(b, "x").(block.Normal)
	if out.Value != 0 {
		t.Fatalf("empty variadic tail length = %v, want 0", out.Value)
	}
	if f, ok := block.Invoke(b).(block.Failure); !ok || !errors.Is(f.Err, block.ErrArityMismatch) {
		t.Fatal("missing fixed argument should fail with ErrArityMismatch")
	}
}

func TestBlockReadsAndWritesCapturedScope(t *testing.T) {
	scope := block.NewScope(nil)
	scope.Define("total", 0)

	add := block.Bind(scope, []string{"n"}, func(s *block.Scope) block.Outcome {
		n, _ := s.Get("n")
		total, _ := s.Get("total")
		if err := s.Set("total", total.(int)+n.(int)); err != nil {
			return block.Fail(err)
		}
		return block.Return(nil)
	})

	for _, n := range []int{1, 2, 3} {
		if f, ok := block.Invoke(add, n).(block.Failure); ok {
			t.Fatal(f.Err)
		}
	}
	if v, _ := scope.Get("total"); v != 6 {
		t.Fatalf("total = %v, want 6", v)
	}
}

func TestBlockParamsDoNotLeakIntoCapturedScope(t *testing.T) {
	scope := block.NewScope(nil)
	b := block.Bind(scope, []string{"tmp"}, func(s *block.Scope) block.Outcome {
		return block.Return(nil)
	})
	block.Invoke(b, 1)
	if scope.Has("tmp") {
		t.Fatal("parameters must bind in a fresh child frame, not the captured scope")
	}
}

func TestBlockInvocationsGetFreshScopes(t *testing.T) {
	b := block.Bind(nil, []string{"n"}, func(s *block.Scope) block.Outcome {
		if s.Has("leak") {
			return block.Failf("scope reused across invocations")
		}
		s.Define("leak", true)
		return block.Return(nil)
	})
	for i := 0; i < 3; i++ {
		if f, ok := block.Invoke(b, i).(block.Failure); ok {
			t.Fatal(f.Err)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Outcome propagation
// ─────────────────────────────────────────────────────────────────────────────

func constOutcome(o block.Outcome) *block.Callable {
	return block.Func("const", func([]any) block.Outcome { return o })
}

func TestInvokePassesControlSignalsUnchanged(t *testing.T) {
	cases := []struct {
		name string
		out  block.Outcome
	}{
		{"early return", block.EarlyReturn{Value: "v"}},
		{"loop break", block.LoopBreak{Value: 7}},
		{"loop continue", block.LoopContinue{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := block.Invoke(constOutcome(tc.out))
			if got != tc.out {
				t.Fatalf("Invoke = %#v, want %#v unchanged", got, tc.out)
			}
		})
	}
}

func TestInvokeAdjustsFailureDepthByOne(t *testing.T) {
	boom := errors.New("boom")
	inner := constOutcome(block.Fail(boom))

	// Each nested Invoke hop must add exactly one frame.
	hop1 := block.Invoke(inner)
	f1, ok := hop1.(block.Failure)
	if !ok || f1.Depth != 1 {
		t.Fatalf("after one hop: %#v, want Failure depth 1", hop1)
	}

	outer := block.Func("outer", func([]any) block.Outcome {
		return block.Invoke(inner)
	})
	f2 := block.Invoke(outer).(block.Failure)
	if f2.Depth != 2 {
		t.Fatalf("after two hops: depth %d, want 2", f2.Depth)
	}
	if f2.Err.Error() != "boom" {
		t.Fatalf("message altered in flight: %q", f2.Err.Error())
	}
}

// Failures Invoke raises itself (nil callable, unknown name, bad arity)
// cross the same boundary as body failures: they arrive at depth 1, not 0.
func TestSetupFailuresCrossOneFrame(t *testing.T) {
	defer block.FlushProcedures()
	block.FlushProcedures()

	oneParam := block.Bind(nil, []string{"a"}, func(s *block.Scope) block.Outcome {
		return block.Return(nil)
	})
	cases := []struct {
		name string
		out  block.Outcome
	}{
		{"nil callable", block.Invoke(nil)},
		{"unknown procedure", block.Invoke(block.Proc("ghost"))},
		{"arity mismatch", block.Invoke(oneParam)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, ok := tc.out.(block.Failure)
			if !ok {
				t.Fatalf("outcome = %#v, want Failure", tc.out)
			}
			if f.Depth != 1 {
				t.Fatalf("depth = %d, want 1", f.Depth)
			}
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Call boundary
// ─────────────────────────────────────────────────────────────────────────────

func TestCallAbsorbsEarlyReturn(t *testing.T) {
	v, err := block.Call(constOutcome(block.EarlyReturn{Value: 99}))
	if err != nil || v != 99 {
		t.Fatalf("Call = %v, %v; want 99, nil", v, err)
	}
}

func TestCallRejectsLooseLoopControl(t *testing.T) {
	for _, o := range []block.Outcome{block.LoopBreak{}, block.LoopContinue{}} {
		_, err := block.Call(constOutcome(o))
		if !errors.Is(err, block.ErrControlOutsideLoop) {
			t.Fatalf("Call(%#v) err = %v, want ErrControlOutsideLoop", o, err)
		}
	}
}

func TestCallSurfacesFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := block.Call(constOutcome(block.Fail(boom)))
	if !errors.Is(err, boom) {
		t.Fatalf("Call err = %v, want boom", err)
	}
}

func TestUnwrap(t *testing.T) {
	if v, err := block.Unwrap(block.Normal{Value: 1}); v != 1 || err != nil {
		t.Fatal("Unwrap(Normal) should yield the value")
	}
	boom := errors.New("boom")
	if _, err := block.Unwrap(block.Failure{Err: boom}); !errors.Is(err, boom) {
		t.Fatal("Unwrap(Failure) should yield the error")
	}
}

package block_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-lodash-utils/block"
)

func ExampleInvoke() {
	upper := block.Func("upper", func(args []any) block.Outcome {
		return block.Return(strings.ToUpper(args[0].(string)))
	})
	out, _ := block.Unwrap(block.Invoke(upper, "go"))
	fmt.Println(out)
	// Output: GO
}

func ExampleBind() {
	scope := block.NewScope(nil)
	scope.Define("seen", 0)

	count := block.Bind(scope, []string{"item"}, func(s *block.Scope) block.Outcome {
		seen, _ := s.Get("seen")
		_ = s.Set("seen", seen.(int)+1)
		return block.Return(nil)
	})

	for _, item := range []string{"a", "b", "c"} {
		block.Invoke(count, item)
	}
	seen, _ := scope.Get("seen")
	fmt.Println(seen)
	// Output: 3
}

func ExampleRegister() {
	defer block.FlushProcedures()
	block.Register("add", func(args []any) block.Outcome {
		return block.Return(args[0].(int) + args[1].(int))
	})
	out, _ := block.Call(block.Proc("add"), 2, 3)
	fmt.Println(out)
	// Output: 5
}

func ExampleCall() {
	// EarlyReturn unwinds to the Call boundary and becomes the result.
	bail := block.Func("bail", func([]any) block.Outcome {
		return block.EarlyReturn{Value: "stopped early"}
	})
	out, err := block.Call(bail)
	fmt.Println(out, err)
	// Output: stopped early <nil>
}

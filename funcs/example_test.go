package funcs_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/block"
	"github.com/hasbyte1/go-lodash-utils/funcs"
	"github.com/hasbyte1/go-lodash-utils/seq"
)

func ExampleMap() {
	square := block.Func("square", func(args []any) block.Outcome {
		n := args[0].(int)
		return block.Return(n * n)
	})
	out, _ := block.Unwrap(funcs.Map([]any{1, 2, 3}, square))
	fmt.Println(out)
	// Output: [1 4 9]
}

func ExampleReduce() {
	add := block.Func("add", func(args []any) block.Outcome {
		return block.Return(args[0].(int) + args[1].(int))
	})
	out, _ := block.Unwrap(funcs.Reduce([]any{2, 4, 6, 8, 10}, add))
	fmt.Println(out)
	// Output: 30
}

func ExamplePartition() {
	isEven := block.Func("isEven", func(args []any) block.Outcome {
		return block.Return(args[0].(int)%2 == 0)
	})
	v, _ := block.Unwrap(funcs.Partition([]any{1, 2, 3, 4, 5, 6}, isEven))
	split := v.(seq.Pair[[]any, []any])
	fmt.Println(split.First, split.Second)
	// Output: [2 4 6] [1 3 5]
}

func ExampleSortBy() {
	length := block.Func("length", func(args []any) block.Outcome {
		return block.Return(len(args[0].(string)))
	})
	items := []any{"testings", "len", "of", "strings", "sort"}
	out, _ := block.Unwrap(funcs.SortBy(items, length))
	fmt.Println(out)
	// Output: [of len sort strings testings]
}

func ExampleGroupBy() {
	firstLetter := block.Func("firstLetter", func(args []any) block.Outcome {
		return block.Return(args[0].(string)[:1])
	})
	v, _ := block.Unwrap(funcs.GroupBy([]any{"apple", "banana", "avocado"}, firstLetter))
	groups := v.(*funcs.Groups)
	for _, key := range groups.Keys() {
		members, _ := groups.Get(key)
		fmt.Println(key, members)
	}
	// Output:
	// a [apple avocado]
	// b [banana]
}

func ExampleEach() {
	// A block may break the loop: iteration stops at that element.
	printUntilNegative := block.Func("printUntilNegative", func(args []any) block.Outcome {
		n := args[0].(int)
		if n < 0 {
			return block.LoopBreak{}
		}
		fmt.Println(n)
		return block.Return(nil)
	})
	funcs.Each([]any{1, 2, -1, 3}, printUntilNegative)
	// Output:
	// 1
	// 2
}

package funcs

import "github.com/hasbyte1/go-lodash-utils/block"

// Convenience aliases following the underscore naming variants.

// Collect is an alias for [Map].
func Collect(items []any, fn *block.Callable) block.Outcome { return Map(items, fn) }

// Inject is an alias for [Reduce].
func Inject(items []any, fn *block.Callable, seed ...any) block.Outcome {
	return Reduce(items, fn, seed...)
}

// Find is an alias for [Detect].
func Find(items []any, fn *block.Callable, from ...int) block.Outcome {
	return Detect(items, fn, from...)
}

// Every is an alias for [All].
func Every(items []any, fn *block.Callable) block.Outcome { return All(items, fn) }

// Some is an alias for [Any].
func Some(items []any, fn *block.Callable) block.Outcome { return Any(items, fn) }

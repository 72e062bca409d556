package seq

import "math/rand"

// Shuffle returns a randomly reordered copy of items, drawn from the
// process-wide random source.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns n randomly selected elements without replacement.
// If n >= len(items), a shuffled copy of the whole sequence is returned.
func Sample[T any](items []T, n int) []T {
	s := Shuffle(items)
	if n >= len(s) {
		return s
	}
	if n < 0 {
		n = 0
	}
	return s[:n]
}

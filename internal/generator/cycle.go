package generator

import "iter"

// Cycle is a finite sequence of length n that repeats a fixed pattern,
// truncating the final partial repetition. It holds no iteration state, so
// All can be ranged over any number of times.
type Cycle[T any] struct {
	pattern []T
	n       int
}

// NewCycle returns a Cycle of length n over pattern. The pattern is copied.
// It panics if pattern is empty and n > 0.
func NewCycle[T any](n int, pattern ...T) Cycle[T] {
	if n < 0 {
		n = 0
	}
	if len(pattern) == 0 && n > 0 {
		panic("generator: empty cycle pattern")
	}
	p := make([]T, len(pattern))
	copy(p, pattern)
	return Cycle[T]{pattern: p, n: n}
}

// Len returns the sequence length.
func (c Cycle[T]) Len() int {
	return c.n
}

// At returns element i. i must be in [0, Len()).
func (c Cycle[T]) At(i int) T {
	if i < 0 || i >= c.n {
		panic("generator: cycle index out of range")
	}
	return c.pattern[i%len(c.pattern)]
}

// All yields (index, element) pairs in order.
func (c Cycle[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < c.n; i++ {
			if !yield(i, c.pattern[i%len(c.pattern)]) {
				return
			}
		}
	}
}

// Slice materializes the sequence.
func (c Cycle[T]) Slice() []T {
	out := make([]T, 0, c.n)
	for _, v := range c.All() {
		out = append(out, v)
	}
	return out
}

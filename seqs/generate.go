package seqs

import (
	"iter"
	"math/rand/v2"
)

// RandomInts generates a sequence of random integers of the specified size.
func RandomInts(size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(rand.Int()) {
				return
			}
		}
	}
}

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields value count times. A negative count repeats forever.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; count < 0 || i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Iterate yields x, f(x), f(f(x)), ... without end. Every traversal starts again
// from x.
func Iterate[T any](f func(T) T, x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := x; ; v = f(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Cycle yields the elements of seq over and over. The first pass is streamed and
// remembered; later passes replay the remembered elements, so seq is traversed once.
// An empty seq yields nothing.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var saved []T
		for v := range seq {
			saved = append(saved, v)
			if !yield(v) {
				return
			}
		}
		if len(saved) == 0 {
			return
		}
		for {
			for _, v := range saved {
				if !yield(v) {
					return
				}
			}
		}
	}
}

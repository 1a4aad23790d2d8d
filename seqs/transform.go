package seqs

import (
	"fmt"
	"iter"
)

func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func TryFlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for s := range source {
			for t, err := range f(s) {
				if !yield(t, err) {
					return
				}
			}
		}
	}
}

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Cons yields head followed by the elements of seq.
func Cons[T any](head T, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(head) {
			return
		}
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

// ZipLongest zips two sequences together.
// When one sequence is exhausted, it continues with the fill values.
// use fill1 and fill2 to fill in the missing values from seq1 and seq2 respectively.
func ZipLongest[T1, T2 any](
	seq1 iter.Seq[T1],
	seq2 iter.Seq[T2],
	fill1 T1,
	fill2 T2,
) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next1, stop1 := iter.Pull(seq1)
		defer stop1()
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for {
			v1, ok1 := next1()
			v2, ok2 := next2()

			if !ok1 && !ok2 {
				return
			}
			if !ok1 {
				v1 = fill1
			}
			if !ok2 {
				v2 = fill2
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Interpose yields sep between each pair of consecutive elements of seq.
func Interpose[T any](sep T, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range seq {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

// Unique yields only the first occurrence of each value.
// It keeps every distinct value seen so far, so memory grows with the number of
// distinct values; avoid it on unbounded high-cardinality input.
func Unique[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniqueBy(seq, func(v T) T { return v })
}

// UniqueBy yields the first element seen for each distinct key(element).
func UniqueBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Tap performs the provided action on each element of the sequence without modifying it.
// It is useful for debugging (e.g., logging) or side effects.
func Tap[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
// The initial value itself is not yielded.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}

// Accumulate yields initial followed by every running result of binop,
// so an empty seq yields just initial.
//
//	Accumulate(Of(1, 2, 3), -1, add) => -1, 0, 2, 5
func Accumulate[T, R any](seq iter.Seq[T], initial R, binop func(R, T) R) iter.Seq[R] {
	return Cons(initial, Scan(seq, initial, binop))
}

// AccumulateFirst is Accumulate seeded with the first element of seq.
//
//	AccumulateFirst(Of(1, 2, 3, 4, 5), add) => 1, 3, 6, 10, 15
func AccumulateFirst[T any](seq iter.Seq[T], binop func(T, T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var acc T
		started := false
		for v := range seq {
			if started {
				acc = binop(acc, v)
			} else {
				acc, started = v, true
			}
			if !yield(acc) {
				return
			}
		}
	}
}

// Diff zips the sequences and yields the rows whose keys are not all equal.
// It stops at the shortest sequence.
//
//	Diff(identity, Of(1, 2, 3), Of(1, 2, 10, 100)) => [3 10]
func Diff[T any, K comparable](key func(T) K, seqs ...iter.Seq[T]) (iter.Seq[[]T], error) {
	if len(seqs) < 2 {
		return nil, fmt.Errorf("seqs.Diff: %d sequences given, need at least 2: %w", len(seqs), ErrInvalidArgument)
	}
	return func(yield func([]T) bool) {
		iters := make([]*Iterator[T], len(seqs))
		for i, s := range seqs {
			iters[i] = Pull(s)
		}
		defer func() {
			for _, it := range iters {
				it.Stop()
			}
		}()

		for {
			row := make([]T, len(iters))
			for i, it := range iters {
				v, ok := it.Next()
				if !ok {
					return
				}
				row[i] = v
			}
			first := key(row[0])
			for _, v := range row[1:] {
				if key(v) != first {
					if !yield(row) {
						return
					}
					break
				}
			}
		}
	}, nil
}

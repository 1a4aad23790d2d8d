package seqs

import (
	"iter"
	"math/rand/v2"
)

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Remove is the complement of Filter: it drops the elements that satisfy predicate.
func Remove[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return Filter(seq, func(v T) bool { return !predicate(v) })
}

// TryFilter returns a sequence of elements that satisfy the predicate.
// The predicate function can return an error.
//
// The resulting sequence yields pairs of (element, error).
// If the predicate returns an error:
//   - The error is yielded to the consumer along with the element 'v' that caused it.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}

			if keep {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed elements.
// The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with a zero-value of type R.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if err != nil {
				var zero R
				res = zero
			}
			if !yield(res, err) {
				return
			}
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// TryReduce aggregates the elements of seq using the reducer function, starting from the initial value.
// If reducer returns an error, the accumulator reached so far is returned with it.
func TryReduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	for v := range seq {
		next, err := reducer(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

// RandomSample yields each element of seq independently with probability prob.
// A nil r uses the global source; pass a seeded *rand.Rand for reproducible samples.
func RandomSample[T any](seq iter.Seq[T], prob float64, r *rand.Rand) iter.Seq[T] {
	draw := rand.Float64
	if r != nil {
		draw = r.Float64
	}
	return Filter(seq, func(T) bool { return draw() < prob })
}

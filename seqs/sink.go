package seqs

import "iter"

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

func Second[T any](seq iter.Seq[T]) (T, bool) {
	return Nth(seq, 1)
}

// Nth returns the element at zero-based index n, consuming seq only up to it.
func Nth[T any](seq iter.Seq[T], n int) (T, bool) {
	var zero T
	if n < 0 {
		return zero, false
	}
	i := 0
	for v := range seq {
		if i == n {
			return v, true
		}
		i++
	}
	return zero, false
}

func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// IsDistinct reports whether no value occurs twice. It stops at the first repeat.
func IsDistinct[T comparable](seq iter.Seq[T]) bool {
	seen := make(map[T]struct{})
	for v := range seq {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

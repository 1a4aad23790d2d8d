package seqs

import (
	"iter"
	"pipekit/logging"
)

// BuildIndex groups left by key so it can be probed by several JoinWithIndex calls.
func BuildIndex[L any, K comparable](left iter.Seq[L], key func(L) K) *Groups[K, []L] {
	index := GroupBy(left, key)
	logging.Default().Debug("seqs: join index built", "keys", index.Len())
	return index
}

// Join is an inner equi-join of left and right on leftKey(l) == rightKey(r).
//
// When traversal begins, left is read completely into an index; right is then streamed
// once and, for each right element, one pair is yielded per matching left element, in
// left order. Memory is O(len(left)) and right may be unbounded, so put the smaller or
// bounded input on the left. Nothing is read before the result is ranged over.
//
//	Join(name, friends, name, cities) yields Pair{friend, city} for every shared name
func Join[L, R any, K comparable](
	leftKey func(L) K,
	left iter.Seq[L],
	rightKey func(R) K,
	right iter.Seq[R],
) iter.Seq[Pair[L, R]] {
	return func(yield func(Pair[L, R]) bool) {
		index := BuildIndex(left, leftKey)
		for p := range JoinWithIndex(index, rightKey, right) {
			if !yield(p) {
				return
			}
		}
	}
}

// JoinWithIndex streams right against a prebuilt left index.
// Right elements without a match produce nothing.
func JoinWithIndex[L, R any, K comparable](
	index *Groups[K, []L],
	rightKey func(R) K,
	right iter.Seq[R],
) iter.Seq[Pair[L, R]] {
	return func(yield func(Pair[L, R]) bool) {
		if index.Len() == 0 {
			return
		}
		for r := range right {
			matches, ok := index.Get(rightKey(r))
			if !ok {
				continue
			}
			for _, l := range matches {
				if !yield(Pair[L, R]{V1: l, V2: r}) {
					return
				}
			}
		}
	}
}

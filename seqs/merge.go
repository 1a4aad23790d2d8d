package seqs

import (
	"cmp"
	"iter"
	"pipekit/queues"
)

// mergeHead is the current front element of one merge input.
type mergeHead[T any] struct {
	v   T
	src int // position of the input in the argument list
	it  *Iterator[T]
}

// MergeSorted merges already sorted sequences into one sorted sequence.
// Equal elements come out in the order of the inputs that hold them, so the merge is
// stable. Each step costs O(log k) for k inputs, and only one element per input is
// buffered.
//
// The inputs must be sorted ascending; unsorted input is not detected and produces
// output in no particular order.
func MergeSorted[T cmp.Ordered](seqs ...iter.Seq[T]) iter.Seq[T] {
	return MergeSortedFunc(cmp.Compare[T], seqs...)
}

// MergeSortedBy merges sequences sorted by key.
func MergeSortedBy[T any, K cmp.Ordered](key func(T) K, seqs ...iter.Seq[T]) iter.Seq[T] {
	return MergeSortedFunc(func(a, b T) int { return cmp.Compare(key(a), key(b)) }, seqs...)
}

// MergeSortedFunc merges sequences sorted according to compare.
func MergeSortedFunc[T any](compare func(a, b T) int, seqs ...iter.Seq[T]) iter.Seq[T] {
	switch len(seqs) {
	case 0:
		return Empty[T]()
	case 1:
		return seqs[0]
	}

	return func(yield func(T) bool) {
		pq := queues.NewPriorityQueue(len(seqs), func(a, b mergeHead[T]) bool {
			if c := compare(a.v, b.v); c != 0 {
				return c < 0
			}
			return a.src < b.src
		})
		defer func() {
			for !pq.IsEmpty() {
				h, _ := pq.Dequeue()
				h.it.Stop()
			}
		}()

		for i, s := range seqs {
			it := Pull(s)
			if v, ok := it.Next(); ok {
				pq.Enqueue(mergeHead[T]{v: v, src: i, it: it})
			}
		}

		for !pq.IsEmpty() {
			head := pq.PeekItem()
			if !yield(head.Value.v) {
				return
			}
			if v, ok := head.Value.it.Next(); ok {
				head.Value.v = v
				pq.UpdateItem(head)
			} else {
				pq.RemoveItem(head)
			}
		}
	}
}

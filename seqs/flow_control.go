package seqs

import (
	"iter"
	"pipekit/queues"
)

// Take yields at most the first n elements. It stops pulling from seq as soon as
// the n-th element has been yielded.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Drop skips the first n elements and yields the rest.
func Drop[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Rest yields every element but the first.
func Rest[T any](seq iter.Seq[T]) iter.Seq[T] {
	return Drop(seq, 1)
}

// TakeNth yields every n-th element starting with the first.
// A non-positive n yields nothing.
//
//	TakeNth(Of(10, 20, 30, 40, 50), 2) => 10, 30, 50
func TakeNth[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if i%n == 0 && !yield(v) {
				return
			}
			i++
		}
	}
}

// Tail yields the last n elements. It must exhaust seq before yielding anything and
// keeps only n elements while doing so.
func Tail[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		ring := queues.NewArrayQueue[T](n)
		for v := range seq {
			if ring.Size() == n {
				ring.Dequeue()
			}
			ring.Enqueue(v)
		}
		for v := range ring.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile continues to yield elements from the sequence
// as long as the predicate returns true.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !predicate(v) {
				return // Condition not met, terminate the stream
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements from the sequence
// as long as the predicate returns true, then yields the rest.
func DropWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

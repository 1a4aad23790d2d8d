package seqs

import (
	"iter"
	"slices"
	"sync/atomic"
)

// Iterator is a single-step handle over a sequence: each Next call produces one element
// or reports exhaustion. It is not safe for concurrent use.
//
// An Iterator owns a coroutine created by iter.Pull. Callers that stop before exhaustion
// must call Stop; an exhausted Iterator releases it on its own.
type Iterator[T any] struct {
	next func() (T, bool)
	stop func()

	// lookahead filled by Peek and PeekN
	buffered []T
	done     bool
}

// Pull converts seq into an Iterator.
func Pull[T any](seq iter.Seq[T]) *Iterator[T] {
	next, stop := iter.Pull(seq)
	return &Iterator[T]{next: next, stop: stop}
}

// Next returns the next element. ok is false once the sequence is exhausted,
// and stays false on every later call.
func (it *Iterator[T]) Next() (v T, ok bool) {
	if len(it.buffered) > 0 {
		v = it.buffered[0]
		it.buffered = it.buffered[1:]
		return v, true
	}
	if it.done {
		return v, false
	}
	v, ok = it.next()
	if !ok {
		it.release()
	}
	return v, ok
}

// Peek returns the next element without consuming it.
func (it *Iterator[T]) Peek() (v T, ok bool) {
	if len(it.buffered) > 0 {
		return it.buffered[0], true
	}
	v, ok = it.Next()
	if ok {
		it.buffered = append(it.buffered, v)
	}
	return v, ok
}

// PeekN returns up to n upcoming elements without consuming them.
// Fewer than n are returned when the sequence ends first.
func (it *Iterator[T]) PeekN(n int) []T {
	if n <= 0 {
		return nil
	}
	for len(it.buffered) < n && !it.done {
		v, ok := it.next()
		if !ok {
			it.release()
			break
		}
		it.buffered = append(it.buffered, v)
	}
	return slices.Clone(it.buffered[:min(n, len(it.buffered))])
}

// Stop releases the underlying sequence. Buffered lookahead is discarded.
// It is safe to call Stop more than once.
func (it *Iterator[T]) Stop() {
	it.buffered = nil
	it.release()
}

func (it *Iterator[T]) release() {
	if it.done {
		return
	}
	it.done = true
	it.stop()
}

// Rest returns the remaining elements as a sequence. Breaking out of a range over Rest
// leaves the Iterator positioned after the last element received, so a later range
// resumes from there.
func (it *Iterator[T]) Rest() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Once returns a single-pass view of seq. The first traversal streams seq;
// every later traversal yields nothing instead of replaying it.
func Once[T any](seq iter.Seq[T]) iter.Seq[T] {
	var used atomic.Bool
	return func(yield func(T) bool) {
		if used.Swap(true) {
			return
		}
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Of returns a restartable sequence over the given values.
func Of[T any](vs ...T) iter.Seq[T] {
	return slices.Values(vs)
}

// FromSlice returns a restartable sequence over s. Later changes to s are visible
// to later traversals.
func FromSlice[S ~[]T, T any](s S) iter.Seq[T] {
	return slices.Values(s)
}

// Peek returns the first element of seq together with a sequence that still yields it
// followed by the rest. ok is false when seq is empty.
//
// The returned sequence is single-pass and owns a pulled coroutine; traverse it (even
// partially) to release it.
func Peek[T any](seq iter.Seq[T]) (head T, rest iter.Seq[T], ok bool) {
	it := Pull(seq)
	head, ok = it.Peek()
	if !ok {
		return head, Empty[T](), false
	}
	return head, drain(it), true
}

// PeekN is Peek for up to n leading elements.
func PeekN[T any](seq iter.Seq[T], n int) ([]T, iter.Seq[T]) {
	it := Pull(seq)
	return it.PeekN(n), drain(it)
}

func drain[T any](it *Iterator[T]) iter.Seq[T] {
	return Once(func(yield func(T) bool) {
		defer it.Stop()
		for v := range it.Rest() {
			if !yield(v) {
				return
			}
		}
	})
}

// FromNext adapts a producer function. next reports false on exhaustion and is not
// called again afterwards.
func FromNext[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Empty returns a sequence with no elements.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

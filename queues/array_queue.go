package queues

import (
	"iter"
	"math/bits"
)

// ArrayQueue is a generic FIFO queue implemented as a circular array (ring buffer).
// Enqueue and Dequeue run in amortized O(1) time. It backs the fixed-size windows
// and round-robin schedules of the seqs package.
type ArrayQueue[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the queue
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// NewArrayQueue creates a new ArrayQueue with the specified initial capacity.
// The capacity is rounded up to the next power of two.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}

	capacity := 1
	if initialCapacity > 1 {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}

	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// grow doubles the backing array until it can hold size+extra elements.
func (aq *ArrayQueue[T]) grow(extra int) {
	newCapacity := 1 << uint(bits.Len(uint(aq.size+extra-1)))
	newBuf := make([]T, newCapacity)
	aq.copyTo(newBuf)

	clear(aq.buf)
	aq.buf = newBuf
	aq.head = 0
	aq.mask = newCapacity - 1
}

// copyTo copies the queued elements, oldest first, into dst and returns the count.
func (aq *ArrayQueue[T]) copyTo(dst []T) int {
	if aq.head+aq.size <= len(aq.buf) {
		return copy(dst, aq.buf[aq.head:aq.head+aq.size])
	}
	// wrapped around
	n := copy(dst, aq.buf[aq.head:])
	tailPos := (aq.head + aq.size) & aq.mask
	return n + copy(dst[n:], aq.buf[:tailPos])
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow(1)
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // clear reference
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

// Snapshot returns a newly allocated slice holding the queued elements, oldest first.
func (aq *ArrayQueue[T]) Snapshot() []T {
	out := make([]T, aq.size)
	aq.copyTo(out)
	return out
}

// All iterates over the queued elements, oldest first, without removing them.
// The queue must not be modified during iteration.
func (aq *ArrayQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < aq.size; i++ {
			if !yield(aq.buf[(aq.head+i)&aq.mask]) {
				return
			}
		}
	}
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

package queues

import (
	"container/heap"
)

// PriorityItem is a handle to an element stored in a PriorityQueue.
// It stays valid until the element is dequeued or removed.
type PriorityItem[T any] struct {
	Value T
	index int
}

type internalHeap[T any] struct {
	data []*PriorityItem[T]
	less func(a, b T) bool
}

func (ih *internalHeap[T]) Len() int {
	return len(ih.data)
}

func (ih *internalHeap[T]) Less(i, j int) bool {
	return ih.less(ih.data[i].Value, ih.data[j].Value)
}

func (ih *internalHeap[T]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
	ih.data[i].index = i
	ih.data[j].index = j
}

func (ih *internalHeap[T]) Push(x any) {
	idx := len(ih.data)
	item := x.(*PriorityItem[T])
	ih.data = append(ih.data, item)
	ih.data[idx].index = idx
}

func (ih *internalHeap[T]) Pop() any {
	old := ih.data
	n := len(old)
	lastItem := old[n-1]

	// avoid memory leak
	lastItem.index = -1
	old[n-1] = nil

	ih.data = old[0 : n-1]
	return lastItem
}

// PriorityQueue is a binary heap ordered by a caller supplied less function.
// The element for which less reports true against every other element is dequeued first,
// so passing a "<" comparison yields a min-heap and ">" a max-heap.
type PriorityQueue[T any] struct {
	heap *internalHeap[T]
}

// NewPriorityQueue creates a new PriorityQueue with the specified initial capacity.
// less must be a strict weak ordering; it panics if less is nil.
func NewPriorityQueue[T any](initCapacity int, less func(a, b T) bool) *PriorityQueue[T] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	if less == nil {
		panic("pipekit.PriorityQueue: less function cannot be nil")
	}
	innerHeap := internalHeap[T]{
		data: make([]*PriorityItem[T], 0, initCapacity),
		less: less,
	}
	heap.Init(&innerHeap)

	return &PriorityQueue[T]{
		heap: &innerHeap,
	}
}

func (pq *PriorityQueue[T]) Enqueue(value T) *PriorityItem[T] {
	item := PriorityItem[T]{Value: value}
	heap.Push(pq.heap, &item)
	return &item
}

func (pq *PriorityQueue[T]) Dequeue() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(pq.heap).(*PriorityItem[T]).Value, true
}

func (pq *PriorityQueue[T]) Peek() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return pq.heap.data[0].Value, true
}

// PeekItem returns the handle of the head element, or nil when the queue is empty.
// Replacing item.Value and calling UpdateItem is cheaper than Dequeue followed by Enqueue.
func (pq *PriorityQueue[T]) PeekItem() *PriorityItem[T] {
	if pq.heap.Len() == 0 {
		return nil
	}
	return pq.heap.data[0]
}

// UpdateItem restores heap order after item.Value has been modified in place.
func (pq *PriorityQueue[T]) UpdateItem(item *PriorityItem[T]) {
	if item.index < 0 || item.index >= pq.heap.Len() || pq.heap.data[item.index] != item {
		panic("pipekit.PriorityQueue: UpdateItem called with invalid PriorityItem")
	}
	heap.Fix(pq.heap, item.index)
}

func (pq *PriorityQueue[T]) RemoveItem(item *PriorityItem[T]) {
	if item.index < 0 || item.index >= pq.heap.Len() || pq.heap.data[item.index] != item {
		panic("pipekit.PriorityQueue: RemoveItem called with invalid PriorityItem")
	}
	heap.Remove(pq.heap, item.index)
}

func (pq *PriorityQueue[T]) Size() int {
	return pq.heap.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.heap.Len() == 0
}

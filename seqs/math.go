package seqs

import (
	"cmp"
	"iter"
	"pipekit/queues"
)

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

func Min[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range seq {
		if first {
			min = v
			first = false
			continue
		}
		if v < min {
			min = v
		}
	}
	return min, !first
}

func Max[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range seq {
		if first {
			max = v
			first = false
			continue
		}
		if v > max {
			max = v
		}
	}
	return max, !first
}

// TopK returns the k largest elements in descending order. Equal elements keep
// their input order. Memory is O(k) regardless of the length of seq.
func TopK[T cmp.Ordered](seq iter.Seq[T], k int) []T {
	return TopKFunc(seq, k, cmp.Compare[T])
}

// TopKFunc is TopK with a caller supplied comparison.
func TopKFunc[T any](seq iter.Seq[T], k int, compare func(a, b T) int) []T {
	if k <= 0 {
		return nil
	}

	type ranked struct {
		v   T
		pos int
	}
	// min-heap whose head is the weakest kept element; on ties the later one is weaker
	weaker := func(a, b ranked) bool {
		if c := compare(a.v, b.v); c != 0 {
			return c < 0
		}
		return a.pos > b.pos
	}
	pq := queues.NewPriorityQueue(k, weaker)

	pos := 0
	for v := range seq {
		r := ranked{v: v, pos: pos}
		pos++
		if pq.Size() < k {
			pq.Enqueue(r)
			continue
		}
		head := pq.PeekItem()
		if compare(v, head.Value.v) > 0 {
			head.Value = r
			pq.UpdateItem(head)
		}
	}

	out := make([]T, pq.Size())
	for i := len(out) - 1; i >= 0; i-- {
		r, _ := pq.Dequeue()
		out[i] = r.v
	}
	return out
}

package seqs

import (
	"fmt"
	"iter"
	"pipekit/queues"
)

// SlidingWindow yields every run of n consecutive elements, advancing one element at a
// time. A sequence shorter than n yields no windows. Each window is a new slice that
// the consumer may keep.
//
//	SlidingWindow(Of(1, 2, 3, 4), 2) => [1 2] [2 3] [3 4]
//
// It returns ErrInvalidWindowSize when n < 1.
func SlidingWindow[T any](seq iter.Seq[T], n int) (iter.Seq[[]T], error) {
	if n < 1 {
		return nil, fmt.Errorf("seqs.SlidingWindow: n=%d: %w", n, ErrInvalidWindowSize)
	}
	return func(yield func([]T) bool) {
		ring := queues.NewArrayQueue[T](n)
		for v := range seq {
			ring.Enqueue(v)
			if ring.Size() > n {
				ring.Dequeue()
			}
			if ring.Size() == n && !yield(ring.Snapshot()) {
				return
			}
		}
	}, nil
}

// Window creates a sliding window over the input sequence.
// size: window size.
// step: step size for each slide.
//
// Scenario 1 (step < size): overlapping windows. For example, [1,2,3], [2,3,4] (size=3, step=1)
// Scenario 2 (step == size): equivalent to Partition.
// Scenario 3 (step > size): gapped windows (some data is skipped in between).
//
// It returns ErrInvalidWindowSize when size or step is below one.
func Window[T any](seq iter.Seq[T], size, step int) (iter.Seq[[]T], error) {
	if size < 1 || step < 1 {
		return nil, fmt.Errorf("seqs.Window: size=%d step=%d: %w", size, step, ErrInvalidWindowSize)
	}
	return func(yield func([]T) bool) {
		buffer := make([]T, 0, size)

		// when step > size, we need to skip some elements after yielding
		skipCount := 0

		for v := range seq {
			if skipCount > 0 {
				skipCount--
				continue
			}

			buffer = append(buffer, v)
			if len(buffer) < size {
				continue
			}

			output := make([]T, size)
			copy(output, buffer)
			if !yield(output) {
				return
			}

			if step < size {
				// overlapping mode: keep the latter part
				// e.g. [1,2,3,4,5], step=2 => copy([1...], [3,4,5]) => [3,4,5,4,5]
				copy(buffer, buffer[step:])
				buffer = buffer[:size-step]
			} else {
				// gap mode: clear and set skip count
				buffer = buffer[:0]
				skipCount = step - size
			}
		}
	}, nil
}

// PartitionAll splits the input sequence into chunks of n elements.
// The last chunk may be smaller if there are not enough elements.
func PartitionAll[T any](seq iter.Seq[T], n int) (iter.Seq[[]T], error) {
	if n < 1 {
		return nil, fmt.Errorf("seqs.PartitionAll: n=%d: %w", n, ErrInvalidWindowSize)
	}
	return func(yield func([]T) bool) {
		batch := make([]T, 0, n)
		for v := range seq {
			batch = append(batch, v)
			if len(batch) == n {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, n)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}, nil
}

// Partition splits the input sequence into chunks of exactly n elements
// and drops a trailing incomplete chunk.
func Partition[T any](seq iter.Seq[T], n int) (iter.Seq[[]T], error) {
	all, err := PartitionAll(seq, n)
	if err != nil {
		return nil, fmt.Errorf("seqs.Partition: n=%d: %w", n, ErrInvalidWindowSize)
	}
	return Filter(all, func(chunk []T) bool { return len(chunk) == n }), nil
}

// PartitionPad is Partition that fills a trailing incomplete chunk with pad.
func PartitionPad[T any](seq iter.Seq[T], n int, pad T) (iter.Seq[[]T], error) {
	all, err := PartitionAll(seq, n)
	if err != nil {
		return nil, fmt.Errorf("seqs.PartitionPad: n=%d: %w", n, ErrInvalidWindowSize)
	}
	return Map(all, func(chunk []T) []T {
		for len(chunk) < n {
			chunk = append(chunk, pad)
		}
		return chunk
	}), nil
}

// Interleave takes one element from each input in turn. An exhausted input drops out
// of the rotation while the others continue, so the result is as long as all inputs
// together (unlike Zip, which stops at the shortest).
//
//	Interleave(Of(1, 2, 3), Of(10), Of(20, 21)) => 1, 10, 20, 2, 21, 3
func Interleave[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		rotation := queues.NewArrayQueue[*Iterator[T]](len(seqs))
		for _, s := range seqs {
			rotation.Enqueue(Pull(s))
		}
		defer func() {
			for it := range rotation.All() {
				it.Stop()
			}
		}()

		for {
			it, ok := rotation.Dequeue()
			if !ok {
				return
			}
			v, ok := it.Next()
			if !ok {
				continue
			}
			if !yield(v) {
				it.Stop()
				return
			}
			rotation.Enqueue(it)
		}
	}
}

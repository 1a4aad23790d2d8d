package seqs_test

import (
	"pipekit/seqs"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Run("NextUntilExhausted", func(t *testing.T) {
		it := seqs.Pull(seqs.Of(1, 2))
		defer it.Stop()

		v, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		v, ok = it.Next()
		assert.True(t, ok)
		assert.Equal(t, 2, v)

		for range 3 {
			_, ok = it.Next()
			assert.False(t, ok, "exhaustion is sticky")
		}
	})

	t.Run("Peek", func(t *testing.T) {
		it := seqs.Pull(seqs.Of("a", "b"))
		defer it.Stop()

		v, ok := it.Peek()
		require.True(t, ok)
		assert.Equal(t, "a", v)
		v, _ = it.Peek()
		assert.Equal(t, "a", v, "peek does not consume")

		assert.Equal(t, []string{"a", "b"}, slices.Collect(it.Rest()))
	})

	t.Run("PeekN", func(t *testing.T) {
		it := seqs.Pull(seqs.Of(1, 2, 3))
		defer it.Stop()

		assert.Nil(t, it.PeekN(0))
		assert.Equal(t, []int{1, 2}, it.PeekN(2))
		assert.Equal(t, []int{1, 2, 3}, it.PeekN(10), "short input returns what exists")

		v, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, []int{2, 3}, slices.Collect(it.Rest()))
	})

	t.Run("RestResumes", func(t *testing.T) {
		it := seqs.Pull(seqs.Range(0, 5, 1))
		defer it.Stop()

		for v := range it.Rest() {
			if v == 1 {
				break
			}
		}
		assert.Equal(t, []int{2, 3, 4}, slices.Collect(it.Rest()))
	})

	t.Run("StopReleasesUpstream", func(t *testing.T) {
		released := false
		src := func(yield func(int) bool) {
			defer func() { released = true }()
			for i := 0; ; i++ {
				if !yield(i) {
					return
				}
			}
		}
		it := seqs.Pull(src)
		it.Next()
		it.Stop()
		it.Stop()
		assert.True(t, released)
		_, ok := it.Next()
		assert.False(t, ok)
	})
}

func TestOnce(t *testing.T) {
	pulls := 0
	src := seqs.Once(seqs.Map(seqs.Of(1, 2, 3), func(v int) int {
		pulls++
		return v
	}))

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(src))
	assert.Empty(t, slices.Collect(src), "second traversal yields nothing")
	assert.Equal(t, 3, pulls, "upstream is never replayed")
}

func TestOfAndFromSlice(t *testing.T) {
	s := seqs.Of(1, 2)
	assert.Equal(t, slices.Collect(s), slices.Collect(s), "slice-backed sequences restart")

	type ids []int
	assert.Equal(t, []int{7, 8}, slices.Collect(seqs.FromSlice(ids{7, 8})))
}

func TestFromNext(t *testing.T) {
	n := 0
	seq := seqs.FromNext(func() (int, bool) {
		n++
		return n, n <= 3
	})
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
}

func TestPeekFunc(t *testing.T) {
	t.Run("NonEmpty", func(t *testing.T) {
		head, rest, ok := seqs.Peek(seqs.Of(4, 5, 6))
		require.True(t, ok)
		assert.Equal(t, 4, head)
		assert.Equal(t, []int{4, 5, 6}, slices.Collect(rest))
		assert.Empty(t, slices.Collect(rest), "rest is single-pass")
	})

	t.Run("Empty", func(t *testing.T) {
		_, rest, ok := seqs.Peek(seqs.Empty[int]())
		assert.False(t, ok)
		assert.Empty(t, slices.Collect(rest))
	})

	t.Run("PeekN", func(t *testing.T) {
		head, rest := seqs.PeekN(seqs.Of(1, 2, 3), 2)
		assert.Equal(t, []int{1, 2}, head)
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(rest))
	})
}

package seqs_test

import (
	"pipekit/seqs"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindow(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		n     int
		want  [][]int
	}{
		{"Pairs", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {2, 3}, {3, 4}}},
		{"Triples", []int{1, 2, 3, 4}, 3, [][]int{{1, 2, 3}, {2, 3, 4}}},
		{"ExactLength", []int{1, 2, 3}, 3, [][]int{{1, 2, 3}}},
		{"ShorterThanWindow", []int{1, 2}, 3, nil},
		{"One", []int{5, 6}, 1, [][]int{{5}, {6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := seqs.SlidingWindow(slices.Values(tt.input), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slices.Collect(windows))
		})
	}

	t.Run("InvalidSize", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			_, err := seqs.SlidingWindow(seqs.Of(1), n)
			assert.ErrorIs(t, err, seqs.ErrInvalidWindowSize)
		}
	})

	t.Run("WindowsAreIndependent", func(t *testing.T) {
		windows, err := seqs.SlidingWindow(seqs.Range(0, 5, 1), 2)
		require.NoError(t, err)
		got := slices.Collect(windows)
		got[0][0] = 100
		assert.Equal(t, []int{1, 2}, got[1])
	})

	t.Run("InfiniteInput", func(t *testing.T) {
		windows, err := seqs.SlidingWindow(seqs.Iterate(func(v int) int { return v + 1 }, 0), 3)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 1, 2}, {1, 2, 3}}, slices.Collect(seqs.Take(windows, 2)))
	})
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		size, step int
		want       [][]int
	}{
		{"Overlapping", 3, 1, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}},
		{"OverlapStepTwo", 3, 2, [][]int{{1, 2, 3}, {3, 4, 5}}},
		{"Tumbling", 2, 2, [][]int{{1, 2}, {3, 4}}},
		{"Gapped", 2, 3, [][]int{{1, 2}, {4, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := seqs.Window(seqs.Range(1, 6, 1), tt.size, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slices.Collect(windows))
		})
	}

	_, err := seqs.Window(seqs.Of(1), 2, 0)
	assert.ErrorIs(t, err, seqs.ErrInvalidWindowSize)
}

func TestPartition(t *testing.T) {
	input := seqs.Range(1, 6, 1)

	all, err := seqs.PartitionAll(input, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, slices.Collect(all))

	exact, err := seqs.Partition(input, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, slices.Collect(exact))

	padded, err := seqs.PartitionPad(input, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 0}}, slices.Collect(padded))

	for _, f := range []func(n int) error{
		func(n int) error { _, err := seqs.PartitionAll(input, n); return err },
		func(n int) error { _, err := seqs.Partition(input, n); return err },
		func(n int) error { _, err := seqs.PartitionPad(input, n, 0); return err },
	} {
		assert.ErrorIs(t, f(0), seqs.ErrInvalidWindowSize)
	}
}

func TestInterleave(t *testing.T) {
	t.Run("RoundRobin", func(t *testing.T) {
		got := slices.Collect(seqs.Interleave(seqs.Of(1, 2, 3), seqs.Of(10), seqs.Of(20, 21)))
		assert.Equal(t, []int{1, 10, 20, 2, 21, 3}, got)
	})

	t.Run("NotAZip", func(t *testing.T) {
		got := slices.Collect(seqs.Interleave(seqs.Empty[int](), seqs.Of(1, 2)))
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("NoInputs", func(t *testing.T) {
		assert.Empty(t, slices.Collect(seqs.Interleave[int]()))
	})

	t.Run("InfiniteInputs", func(t *testing.T) {
		zeros := seqs.Repeat(0, -1)
		ones := seqs.Repeat(1, -1)
		got := slices.Collect(seqs.Take(seqs.Interleave(zeros, ones), 4))
		assert.Equal(t, []int{0, 1, 0, 1}, got)
	})
}

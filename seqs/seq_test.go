package seqs_test

import (
	"errors"
	"math/rand/v2"
	"pipekit/seqs"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(v int) bool { return v%2 == 0 }

func add(a, b int) int { return a + b }

func TestFilterRemove(t *testing.T) {
	input := seqs.Of(1, 2, 3, 4, 5, 6)

	assert.Equal(t, []int{2, 4, 6}, slices.Collect(seqs.Filter(input, isEven)))
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(seqs.Remove(input, isEven)))
}

func TestMapIsLazy(t *testing.T) {
	calls := 0
	mapped := seqs.Map(seqs.Range(0, 100, 1), func(v int) int {
		calls++
		return v * v
	})
	require.Zero(t, calls, "building the pipeline must not pull")

	got := slices.Collect(seqs.Take(mapped, 3))
	assert.Equal(t, []int{0, 1, 4}, got)
	assert.Equal(t, 3, calls)
}

func TestTryMap(t *testing.T) {
	input := []int{1, 2, 3, 4}
	expectedErr := errors.New("fail")

	t.Run("Success", func(t *testing.T) {
		seq := seqs.TryMap(slices.Values(input), func(x int) (int, error) {
			return x * 2, nil
		})

		var result []int
		for v, err := range seq {
			require.NoError(t, err)
			result = append(result, v)
		}
		assert.Equal(t, []int{2, 4, 6, 8}, result)
	})

	t.Run("Error", func(t *testing.T) {
		seqErr := seqs.TryMap(slices.Values(input), func(x int) (int, error) {
			if x == 3 {
				return -1, expectedErr
			}
			return x * 2, nil
		})

		var result []int
		var gotErr error
		for v, err := range seqErr {
			if err != nil {
				assert.Zero(t, v)
				gotErr = err
				break
			}
			result = append(result, v)
		}

		assert.ErrorIs(t, gotErr, expectedErr)
		// stops at 3, so we get results for 1 and 2
		assert.Equal(t, []int{2, 4}, result)
	})
}

func TestTryFilter(t *testing.T) {
	boom := errors.New("boom")
	seq := seqs.TryFilter(seqs.Of(1, 2, 3, 4), func(v int) (bool, error) {
		if v == 3 {
			return false, boom
		}
		return isEven(v), nil
	})

	var kept []int
	var errs int
	for v, err := range seq {
		if err != nil {
			assert.Equal(t, 3, v)
			errs++
			continue
		}
		kept = append(kept, v)
	}
	assert.Equal(t, []int{2, 4}, kept)
	assert.Equal(t, 1, errs)
}

func TestReduce(t *testing.T) {
	assert.Equal(t, 15, seqs.Reduce(seqs.Range(1, 6, 1), 0, add))
	assert.Equal(t, 7, seqs.Reduce(seqs.Empty[int](), 7, add))
}

func TestTryReduce(t *testing.T) {
	boom := errors.New("boom")
	got, err := seqs.TryReduce(seqs.Of(1, 2, 3, 4), 0, func(acc, v int) (int, error) {
		if v == 3 {
			return 0, boom
		}
		return acc + v, nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, got, "accumulator reached before the failure")

	got, err = seqs.TryReduce(seqs.Of(1, 2, 3, 4), 0, func(acc, v int) (int, error) {
		return acc + v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestRandomSample(t *testing.T) {
	input := seqs.Range(0, 1000, 1)

	assert.Empty(t, slices.Collect(seqs.RandomSample(input, 0, nil)))
	assert.Len(t, slices.Collect(seqs.RandomSample(input, 1, nil)), 1000)

	a := slices.Collect(seqs.RandomSample(input, 0.3, rand.New(rand.NewPCG(1, 2))))
	b := slices.Collect(seqs.RandomSample(input, 0.3, rand.New(rand.NewPCG(1, 2))))
	assert.Equal(t, a, b, "same seed, same sample")
	assert.True(t, slices.IsSorted(a))
	assert.InDelta(t, 300, len(a), 100)
}

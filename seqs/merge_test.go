package seqs_test

import (
	"cmp"
	"iter"
	"pipekit/seqs"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type tagged struct {
	key int
	src string
}

func TestMergeSorted(t *testing.T) {
	tests := []struct {
		name   string
		inputs [][]int
		want   []int
	}{
		{"NoInputs", nil, nil},
		{"OneInput", [][]int{{1, 2}}, []int{1, 2}},
		{"Two", [][]int{{1, 3, 5}, {2, 4, 6}}, []int{1, 2, 3, 4, 5, 6}},
		{"Uneven", [][]int{{1, 10}, {}, {2, 3, 4, 11, 12}}, []int{1, 2, 3, 4, 10, 11, 12}},
		{"Duplicates", [][]int{{1, 1, 2}, {1, 2}}, []int{1, 1, 1, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []iter.Seq[int]
			for _, s := range tt.inputs {
				in = append(in, slices.Values(s))
			}
			assert.Equal(t, tt.want, slices.Collect(seqs.MergeSorted(in...)))
		})
	}
}

func TestMergeSortedStable(t *testing.T) {
	a := seqs.Of(tagged{1, "a"}, tagged{2, "a"}, tagged{2, "a"})
	b := seqs.Of(tagged{1, "b"}, tagged{2, "b"})
	c := seqs.Of(tagged{0, "c"}, tagged{2, "c"})

	got := slices.Collect(seqs.MergeSortedBy(func(v tagged) int { return v.key }, a, b, c))
	want := []tagged{
		{0, "c"},
		{1, "a"}, {1, "b"},
		{2, "a"}, {2, "a"}, {2, "b"}, {2, "c"},
	}
	assert.Equal(t, want, got)
}

func TestMergeSortedFuncDescending(t *testing.T) {
	desc := func(a, b int) int { return cmp.Compare(b, a) }
	got := slices.Collect(seqs.MergeSortedFunc(desc, seqs.Of(9, 4, 1), seqs.Of(8, 5)))
	assert.Equal(t, []int{9, 8, 5, 4, 1}, got)
}

func TestMergeSortedIsLazy(t *testing.T) {
	evens := seqs.Iterate(func(v int) int { return v + 2 }, 0)
	odds := seqs.Iterate(func(v int) int { return v + 2 }, 1)

	got := slices.Collect(seqs.Take(seqs.MergeSorted(evens, odds), 5))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

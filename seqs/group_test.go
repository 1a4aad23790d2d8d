package seqs_test

import (
	"pipekit/seqs"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectGroups[K comparable, V any](g *seqs.Groups[K, V]) ([]K, []V) {
	var keys []K
	var vals []V
	for k, v := range g.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return keys, vals
}

func TestGroupBy(t *testing.T) {
	names := seqs.Of("Alice", "Bob", "Charlie", "Dan", "Edith", "Frank")
	g := seqs.GroupBy(names, func(s string) int { return len(s) })

	keys, vals := collectGroups(g)
	assert.Equal(t, []int{5, 3, 7}, keys, "first-occurrence order")
	assert.Equal(t, [][]string{{"Alice", "Edith", "Frank"}, {"Bob", "Dan"}, {"Charlie"}}, vals)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, keys, slices.Collect(g.Keys()))

	bob, ok := g.Get(3)
	require.True(t, ok)
	assert.Equal(t, []string{"Bob", "Dan"}, bob)
	_, ok = g.Get(4)
	assert.False(t, ok)

	assert.Equal(t, map[int][]string{
		5: {"Alice", "Edith", "Frank"},
		3: {"Bob", "Dan"},
		7: {"Charlie"},
	}, g.ToMap())
}

func TestGroupByEmpty(t *testing.T) {
	g := seqs.GroupBy(seqs.Empty[int](), isEven)
	assert.Zero(t, g.Len())
	assert.Empty(t, g.ToMap())
}

func TestReduceBy(t *testing.T) {
	t.Run("WithInit", func(t *testing.T) {
		g := seqs.ReduceBy(seqs.Range(1, 6, 1), isEven, add, 0)
		assert.Equal(t, map[bool]int{false: 9, true: 6}, g.ToMap())
		keys, _ := collectGroups(g)
		assert.Equal(t, []bool{false, true}, keys)
	})

	t.Run("FirstAsSeed", func(t *testing.T) {
		mul := func(a, b int) int { return a * b }
		g := seqs.ReduceByFirst(seqs.Range(1, 6, 1), isEven, mul)
		assert.Equal(t, map[bool]int{false: 15, true: 8}, g.ToMap())
	})

	t.Run("FreshAccumulator", func(t *testing.T) {
		appendTo := func(acc []int, v int) []int { return append(acc, v) }
		g := seqs.ReduceByFunc(seqs.Range(0, 6, 1), isEven, appendTo, func() []int {
			return make([]int, 0, 4)
		})
		assert.Equal(t, map[bool][]int{true: {0, 2, 4}, false: {1, 3, 5}}, g.ToMap())
	})

	t.Run("Lazy", func(t *testing.T) {
		pulled := 0
		src := seqs.Tap(seqs.Range(0, 4, 1), func(int) { pulled++ })
		reduced := seqs.ReduceBySeq(src, isEven, add, 0)
		require.Zero(t, pulled)

		got := map[bool]int{}
		for k, v := range reduced {
			got[k] = v
		}
		assert.Equal(t, map[bool]int{true: 2, false: 4}, got)
		assert.Equal(t, 4, pulled)
	})
}

func TestReduceByMatchesGroupBy(t *testing.T) {
	key := func(v int) int { return v % 7 }
	input := seqs.Map(seqs.Range(0, 500, 1), func(v int) int { return (v * 131) % 97 })

	grouped := seqs.MapValues(seqs.GroupBy(input, key), func(group []int) int {
		return seqs.Reduce(slices.Values(group), 0, add)
	})
	reduced := seqs.ReduceBy(input, key, add, 0)

	gk, gv := collectGroups(grouped)
	rk, rv := collectGroups(reduced)
	assert.Equal(t, gk, rk)
	assert.Equal(t, gv, rv)
}

func TestReduceByOnceInput(t *testing.T) {
	src := seqs.Once(seqs.Of("a", "b", "a"))
	g := seqs.CountBy(src, func(s string) string { return s })
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, g.ToMap())
}

func TestFrequencies(t *testing.T) {
	g := seqs.Frequencies(seqs.Of("cat", "cat", "ox", "pig", "pig", "cat"))
	keys, counts := collectGroups(g)
	assert.Equal(t, []string{"cat", "ox", "pig"}, keys)
	assert.Equal(t, []int{3, 1, 2}, counts)
}

func TestPartitionBy(t *testing.T) {
	big := func(v int) bool { return v > 9 }
	got := slices.Collect(seqs.PartitionBy(seqs.Of(1, 2, 3, 10, 11, 4), big))
	assert.Equal(t, [][]int{{1, 2, 3}, {10, 11}, {4}}, got)

	assert.Empty(t, slices.Collect(seqs.PartitionBy(seqs.Empty[int](), big)))

	words := seqs.Of("I", "have", "space")
	runs := slices.Collect(seqs.PartitionBy(words, func(s string) bool { return len(s) > 1 }))
	assert.Equal(t, [][]string{{"I"}, {"have", "space"}}, runs)
}

func TestMergeAndMergeWith(t *testing.T) {
	first := seqs.Frequencies(seqs.Of("a", "b", "b"))
	second := seqs.Frequencies(seqs.Of("b", "c", "c", "c", "c"))

	keys, vals := collectGroups(seqs.Merge(first, second))
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []int{1, 1, 4}, vals, "the last value wins")

	total := func(vs []int) int { return seqs.Sum(slices.Values(vs)) }
	keys, vals = collectGroups(seqs.MergeWith(total, first, second))
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []int{1, 3, 4}, vals)

	assert.Zero(t, seqs.Merge[string, int]().Len())
}

func TestPluck(t *testing.T) {
	rows := seqs.Of(
		map[string]int{"id": 1, "age": 30},
		map[string]int{"id": 2},
	)
	assert.Equal(t, []int{1, 2}, slices.Collect(seqs.Pluck(rows, "id")))
	assert.Equal(t, []int{30, 0}, slices.Collect(seqs.Pluck(rows, "age")))

	pairs := seqs.Of([]string{"a", "b"}, []string{"c"}, []string{"d", "e"})
	assert.Equal(t, []string{"b", "e"}, slices.Collect(seqs.PluckIndex(pairs, 1)))
	assert.Empty(t, slices.Collect(seqs.PluckIndex(pairs, -1)))
}

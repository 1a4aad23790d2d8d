package seqs

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Groups maps each key to a value and remembers the order in which keys first
// appeared. It is the result of the grouping and reducing operations in this package.
type Groups[K comparable, V any] struct {
	m *orderedmap.OrderedMap[K, V]
}

func newGroups[K comparable, V any]() *Groups[K, V] {
	return &Groups[K, V]{m: orderedmap.New[K, V]()}
}

// Get returns the value of key and whether the key is present.
func (g *Groups[K, V]) Get(key K) (V, bool) {
	return g.m.Get(key)
}

// Len is the number of distinct keys.
func (g *Groups[K, V]) Len() int {
	return g.m.Len()
}

// Keys yields the keys in first-occurrence order.
func (g *Groups[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := g.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// All yields the key/value pairs in first-occurrence order.
func (g *Groups[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := g.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// ToMap copies the groups into a plain map, dropping the key order.
func (g *Groups[K, V]) ToMap() map[K]V {
	out := make(map[K]V, g.m.Len())
	for k, v := range g.All() {
		out[k] = v
	}
	return out
}

// GroupBy collects the elements of seq into groups by key. Within a group elements keep
// their input order. The whole input is held in memory.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, []T] {
	g := newGroups[K, []T]()
	for v := range seq {
		k := key(v)
		group, _ := g.m.Get(k)
		g.m.Set(k, append(group, v))
	}
	return g
}

// ReduceBy folds each group with binop starting from init, in one pass and without
// materializing the groups. Memory is proportional to the number of distinct keys.
//
// It is equivalent to reducing every GroupBy group from init, but never builds the
// groups. init is copied into each group, so it must not be a value with shared state
// such as a slice or map that binop mutates; use ReduceByFunc for those.
func ReduceBy[T any, K comparable, A any](seq iter.Seq[T], key func(T) K, binop func(A, T) A, init A) *Groups[K, A] {
	return ReduceByFunc(seq, key, binop, func() A { return init })
}

// ReduceByFunc is ReduceBy with a fresh accumulator per group, obtained from init.
func ReduceByFunc[T any, K comparable, A any](seq iter.Seq[T], key func(T) K, binop func(A, T) A, init func() A) *Groups[K, A] {
	g := newGroups[K, A]()
	for v := range seq {
		k := key(v)
		acc, ok := g.m.Get(k)
		if !ok {
			acc = init()
		}
		g.m.Set(k, binop(acc, v))
	}
	return g
}

// ReduceByFirst is ReduceBy seeded with the first element of each group.
//
//	ReduceByFirst(Of(1, 2, 3, 4, 5), isEven, add) => {false: 9, true: 6}
func ReduceByFirst[T any, K comparable](seq iter.Seq[T], key func(T) K, binop func(T, T) T) *Groups[K, T] {
	g := newGroups[K, T]()
	for v := range seq {
		k := key(v)
		if acc, ok := g.m.Get(k); ok {
			g.m.Set(k, binop(acc, v))
		} else {
			g.m.Set(k, v)
		}
	}
	return g
}

// ReduceBySeq is a lazy ReduceBy: nothing is consumed until the result is ranged over,
// and every traversal reduces seq again.
func ReduceBySeq[T any, K comparable, A any](seq iter.Seq[T], key func(T) K, binop func(A, T) A, init A) iter.Seq2[K, A] {
	return func(yield func(K, A) bool) {
		for k, acc := range ReduceBy(seq, key, binop, init).All() {
			if !yield(k, acc) {
				return
			}
		}
	}
}

// MapValues applies f to every value, keeping keys and their order.
func MapValues[K comparable, V, W any](g *Groups[K, V], f func(V) W) *Groups[K, W] {
	out := newGroups[K, W]()
	for k, v := range g.All() {
		out.m.Set(k, f(v))
	}
	return out
}

// Merge combines several Groups into one. When a key appears more than once the
// last value wins; keys keep the order in which they were first seen.
func Merge[K comparable, V any](gs ...*Groups[K, V]) *Groups[K, V] {
	out := newGroups[K, V]()
	for _, g := range gs {
		for k, v := range g.All() {
			out.m.Set(k, v)
		}
	}
	return out
}

// MergeWith combines several Groups, passing every value of a key, in argument
// order, to f.
//
//	MergeWith(sum, {a: 1, b: 2}, {b: 3, c: 4}) => {a: 1, b: 5, c: 4}
func MergeWith[K comparable, V, W any](f func([]V) W, gs ...*Groups[K, V]) *Groups[K, W] {
	collected := newGroups[K, []V]()
	for _, g := range gs {
		for k, v := range g.All() {
			vs, _ := collected.m.Get(k)
			collected.m.Set(k, append(vs, v))
		}
	}
	return MapValues(collected, f)
}

// Pluck yields m[key] for every map m of seq. A missing key yields the zero value.
func Pluck[M ~map[K]V, K comparable, V any](seq iter.Seq[M], key K) iter.Seq[V] {
	return Map(seq, func(m M) V { return m[key] })
}

// PluckIndex yields s[i] for every slice s of seq, skipping slices too short to
// have one.
func PluckIndex[S ~[]V, V any](seq iter.Seq[S], i int) iter.Seq[V] {
	return func(yield func(V) bool) {
		for s := range seq {
			if i < 0 || i >= len(s) {
				continue
			}
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Frequencies counts the occurrences of each distinct value.
func Frequencies[T comparable](seq iter.Seq[T]) *Groups[T, int] {
	return CountBy(seq, func(v T) T { return v })
}

// CountBy counts the elements of each group.
func CountBy[T any, K comparable](seq iter.Seq[T], key func(T) K) *Groups[K, int] {
	return ReduceBy(seq, key, func(n int, _ T) int { return n + 1 }, 0)
}

// PartitionBy splits seq into runs of consecutive elements for which f returns the
// same value. It is lazy and keeps only the current run.
//
//	PartitionBy(Of(1, 2, 3, 10, 11, 4), func(v int) bool { return v > 9 }) => [1 2 3] [10 11] [4]
func PartitionBy[T any, K comparable](seq iter.Seq[T], f func(T) K) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var (
			run  []T
			last K
		)
		for v := range seq {
			k := f(v)
			if len(run) > 0 && k != last {
				if !yield(run) {
					return
				}
				run = nil
			}
			run = append(run, v)
			last = k
		}
		if len(run) > 0 {
			yield(run)
		}
	}
}

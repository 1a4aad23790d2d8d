package memo

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"pipekit/logging"
)

// Stats counts the calls of a memoized function. Misses is the number of times the
// wrapped function ran; Hits counts calls answered with a result without running
// it, including calls that waited for a successful concurrent computation.
type Stats struct {
	Hits   uint64
	Misses uint64
}

type counters struct {
	hits, misses atomic.Uint64
}

func (c *counters) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

type flight[V any] struct {
	wg  sync.WaitGroup
	v   V
	err error
}

// Memoized wraps a function of T so that each distinct key is computed once.
// Results that come with an error are returned but not cached, so a later call retries.
//
// The wrapped function must be pure: memoizing a function with side effects or
// time-dependent results changes program behavior.
type Memoized[T any, K comparable, V any] struct {
	counters
	f      func(T) (V, error)
	key    func(T) K
	cache  Cache[K, V]
	logger logging.Logger

	mu       sync.Mutex
	inflight map[K]*flight[V]

	// checkKey is set when K can hold a value that panics on hashing.
	checkKey bool
}

func newMemoized[T any, K comparable, V any](f func(T) (V, error), key func(T) K, opts []Option) *Memoized[T, K, V] {
	s := newSettings(opts)
	return &Memoized[T, K, V]{
		f:        f,
		key:      key,
		cache:    cacheFor[K, V](s),
		logger:   s.logger,
		inflight: make(map[K]*flight[V]),
		checkKey: !strictlyComparable(reflect.TypeFor[K]()),
	}
}

// strictlyComparable reports whether every value of t can be used as a map key
// without panicking. Interfaces, and types embedding them, can hold slices or maps.
func strictlyComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return strictlyComparable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !strictlyComparable(t.Field(i).Type) {
				return false
			}
		}
	}
	return t.Comparable()
}

// Memoize caches f by its argument.
//
//	fib := memo.Memoize(slowFib)
//	fib.Call(40)
func Memoize[K comparable, V any](f func(K) V, opts ...Option) *Memoized[K, K, V] {
	return newMemoized(func(k K) (V, error) { return f(k), nil }, identity[K], opts)
}

// MemoizeErr caches the successful results of f.
func MemoizeErr[K comparable, V any](f func(K) (V, error), opts ...Option) *Memoized[K, K, V] {
	return newMemoized(f, identity[K], opts)
}

// MemoizeBy caches f under key(arg), for arguments that are not comparable or when
// several arguments should share a result.
func MemoizeBy[T any, K comparable, V any](f func(T) V, key func(T) K, opts ...Option) *Memoized[T, K, V] {
	return newMemoized(func(v T) (V, error) { return f(v), nil }, key, opts)
}

func identity[K any](k K) K { return k }

// Call returns the cached result for arg, computing it first if needed.
// It drops errors and returns the zero V instead: after a failed or panicked
// computation, or for a key that cannot be hashed. Use TryCall to see them.
func (m *Memoized[T, K, V]) Call(arg T) V {
	v, _ := m.TryCall(arg)
	return v
}

// TryCall is Call that also reports the error of the wrapped function.
// Concurrent calls with the same key share one computation. A key holding a
// non-comparable value, such as a slice in an interface key, fails with
// ErrUnhashableArguments.
func (m *Memoized[T, K, V]) TryCall(arg T) (V, error) {
	k := m.key(arg)
	if m.checkKey {
		if kv := reflect.ValueOf(k); kv.IsValid() && !kv.Comparable() {
			var zero V
			return zero, fmt.Errorf("%w: key of type %s", ErrUnhashableArguments, kv.Type())
		}
	}
	if v, ok := m.cache.Get(k); ok {
		m.hits.Add(1)
		return v, nil
	}

	m.mu.Lock()
	if v, ok := m.cache.Get(k); ok {
		m.mu.Unlock()
		m.hits.Add(1)
		return v, nil
	}
	if fl, ok := m.inflight[k]; ok {
		m.mu.Unlock()
		fl.wg.Wait()
		if fl.err == nil {
			m.hits.Add(1)
		}
		return fl.v, fl.err
	}
	fl := &flight[V]{}
	fl.wg.Add(1)
	m.inflight[k] = fl
	m.mu.Unlock()

	m.compute(k, arg, fl)
	return fl.v, fl.err
}

func (m *Memoized[T, K, V]) compute(k K, arg T, fl *flight[V]) {
	finished := false
	defer func() {
		if !finished {
			fl.err = ErrComputationPanicked
		}
		m.mu.Lock()
		delete(m.inflight, k)
		m.mu.Unlock()
		fl.wg.Done()
	}()

	m.misses.Add(1)
	fl.v, fl.err = m.f(arg)
	if fl.err == nil {
		m.cache.Set(k, fl.v)
	} else {
		m.logger.Debug("memo: result not cached", "key", k, "err", fl.err)
	}
	finished = true
}

// Func returns Call as a plain function value.
func (m *Memoized[T, K, V]) Func() func(T) V {
	return m.Call
}

// Args2 is the cache key of a memoized two-argument function.
type Args2[A, B comparable] struct {
	A A
	B B
}

// Memoized2 is a memoized two-argument function.
type Memoized2[A, B comparable, V any] struct {
	*Memoized[Args2[A, B], Args2[A, B], V]
}

// Memoize2 caches f by its argument pair.
func Memoize2[A, B comparable, V any](f func(A, B) V, opts ...Option) *Memoized2[A, B, V] {
	m := Memoize(func(args Args2[A, B]) V { return f(args.A, args.B) }, opts...)
	return &Memoized2[A, B, V]{Memoized: m}
}

func (m *Memoized2[A, B, V]) Call(a A, b B) V {
	return m.Memoized.Call(Args2[A, B]{a, b})
}

func (m *Memoized2[A, B, V]) Func() func(A, B) V {
	return m.Call
}

func (m *Memoized[T, K, V]) String() string {
	s := m.Stats()
	return fmt.Sprintf("memoized(hits=%d, misses=%d)", s.Hits, s.Misses)
}

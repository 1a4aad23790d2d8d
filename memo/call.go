package memo

import (
	"errors"
	"fmt"
	"pipekit/fn"
	"pipekit/logging"

	"golang.org/x/sync/singleflight"
)

// Func is a memoized fn.Callable. Calls are keyed by their normalized arguments
// (see ArgsKey), and concurrent calls with equal arguments run the wrapped Callable
// once.
type Func struct {
	counters
	c       fn.Callable
	argsKey KeyFunc
	cache   Cache[string, any]
	logger  logging.Logger
	group   singleflight.Group
}

// MemoizeCall memoizes a Callable taking dynamic arguments, such as a *fn.Curried.
// Keyword arguments given with fn.Kw take part in the key regardless of their order.
func MemoizeCall(c fn.Callable, opts ...Option) *Func {
	s := newSettings(opts)
	argsKey := s.argsKey
	if argsKey == nil {
		argsKey = ArgsKey
	}
	return &Func{
		c:       c,
		argsKey: argsKey,
		cache:   cacheFor[string, any](s),
		logger:  s.logger,
	}
}

// Call returns the cached result for args, calling the wrapped Callable on a miss.
// Arguments that cannot be normalized fail with ErrUnhashableArguments before the
// cache is consulted.
func (f *Func) Call(args ...any) (any, error) {
	key, err := f.argsKey(fn.SplitArgs(args))
	if err != nil {
		f.logger.Debug("memo: arguments not normalized", "func", f.Name(), "err", err)
		if !errors.Is(err, ErrUnhashableArguments) {
			err = fmt.Errorf("%w: %w", ErrUnhashableArguments, err)
		}
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}
	if v, ok := f.cache.Get(key); ok {
		f.hits.Add(1)
		return v, nil
	}

	ran := false
	v, err, _ := f.group.Do(key, func() (any, error) {
		if v, ok := f.cache.Get(key); ok {
			return v, nil
		}
		ran = true
		f.misses.Add(1)
		v, err := f.c.Call(args...)
		if err != nil {
			f.logger.Debug("memo: result not cached", "func", f.Name(), "err", err)
			return nil, err
		}
		f.cache.Set(key, v)
		return v, nil
	})
	if !ran && err == nil {
		f.hits.Add(1)
	}
	return v, err
}

// Name reports the name of the wrapped Callable when it has one.
func (f *Func) Name() string {
	if n, ok := f.c.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", f.c)
}

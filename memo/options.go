package memo

import "pipekit/logging"

type settings struct {
	cache   any
	argsKey KeyFunc
	logger  logging.Logger
}

// Option configures a memoized function.
type Option func(*settings)

// WithCache stores results in c instead of a fresh MapCache. Its key and value types
// must match the memoized function: the argument type (or the MemoizeBy key type) and
// the result type, or string and any for MemoizeCall.
func WithCache[K comparable, V any](c Cache[K, V]) Option {
	return func(s *settings) {
		s.cache = c
	}
}

// WithArgsKey replaces the argument normalization used by MemoizeCall.
func WithArgsKey(f KeyFunc) Option {
	return func(s *settings) {
		s.argsKey = f
	}
}

// WithLogger sets the logger for debug output. The package default is used otherwise.
func WithLogger(l logging.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.Or(s.logger)
	return s
}

func cacheFor[K comparable, V any](s *settings) Cache[K, V] {
	if s.cache == nil {
		return NewMapCache[K, V]()
	}
	c, ok := s.cache.(Cache[K, V])
	if !ok {
		panic("memo: WithCache type does not match the memoized function")
	}
	return c
}

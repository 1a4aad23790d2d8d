package memo

import "errors"

var (
	// ErrUnhashableArguments is returned when call arguments cannot be turned into a
	// cache key. The wrapped function is not called and the cache is not touched.
	ErrUnhashableArguments = errors.New("memo: unhashable arguments")
	// ErrComputationPanicked is returned to callers that waited on a computation
	// that panicked in another goroutine.
	ErrComputationPanicked = errors.New("memo: computation panicked")
)

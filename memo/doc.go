/*
Package memo caches the results of pure functions.

Memoize, MemoizeBy, MemoizeErr and Memoize2 wrap typed functions and key the cache by
the argument (or a derived key). MemoizeCall wraps any fn.Callable, such as a curried
function, and keys the cache by a normalized form of its dynamic arguments:

	area := memo.MemoizeCall(curriedArea)
	area.Call(3, fn.Kw("h", 4), fn.Kw("unit", "m"))
	area.Call(3, fn.Kw("unit", "m"), fn.Kw("h", 4)) // cached: keyword order is ignored

Positional and keyword forms of the same argument produce different keys. Arguments
are keyed by value and dynamic type; an argument whose value cannot be keyed
faithfully, such as a struct with unexported fields, fails with
ErrUnhashableArguments unless it implements Keyer.

Caches are safe for concurrent use, and concurrent calls with equal keys run the
wrapped function once. Errors are returned to the caller and never cached.

No cache in this package evicts entries. Supply a Cache with an eviction policy through
WithCache when the key space is unbounded.
*/
package memo

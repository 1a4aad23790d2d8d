// Package fn composes functions and applies them partially.
//
// Typed helpers (Compose, Pipe, Curry2, Partial1, Juxt, ...) cover functions whose
// types are known at compile time. Curried and Composition handle dynamic calls
// through the Callable interface: arguments are passed as ...any, with keyword
// arguments given by Kw.
//
// A Curried runs its function as soon as every required parameter is bound and returns
// a new partial application otherwise. Go cannot recover parameter names from a
// function value, so arity comes from an explicit Signature, or from reflection with
// positional names when using CurryFunc.
package fn

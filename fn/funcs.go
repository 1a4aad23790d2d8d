package fn

import "errors"

func Identity[T any](v T) T {
	return v
}

// Complement returns the logical negation of pred.
func Complement[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// Juxt returns a function that calls every f with the same argument and collects the
// results in order.
//
//	fn.Juxt(inc, double)(10) => [11 20]
func Juxt[T, R any](fs ...func(T) R) func(T) []R {
	return func(v T) []R {
		out := make([]R, len(fs))
		for i, f := range fs {
			out[i] = f(v)
		}
		return out
	}
}

// Do returns a function that runs f for its side effect and passes its argument through.
func Do[T any](f func(T)) func(T) T {
	return func(v T) T {
		f(v)
		return v
	}
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R { return f(a, b) }
}

// Excepts calls f and turns the errors matching one of targets (any error when no
// targets are given) into a value via handler. Other errors are returned unchanged.
//
//	first := fn.Excepts(parseFirst, func(error) int { return -1 }, ErrEmpty)
func Excepts[T, R any](f func(T) (R, error), handler func(error) R, targets ...error) func(T) (R, error) {
	return func(v T) (R, error) {
		r, err := f(v)
		if err == nil {
			return r, nil
		}
		if len(targets) == 0 {
			return handler(err), nil
		}
		for _, target := range targets {
			if errors.Is(err, target) {
				return handler(err), nil
			}
		}
		return r, err
	}
}

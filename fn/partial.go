package fn

// Curry2 turns a two-argument function into a chain of one-argument functions.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R { return f(a, b, c) }
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R { return f(a)(b) }
}

// Partial1 fixes the first argument of f.
func Partial1[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Partial2 fixes the first two arguments of f.
func Partial2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R { return f(a, b, c) }
}

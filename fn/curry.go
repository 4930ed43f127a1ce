package fn

// Curry converts a two-argument function into a chain of single-argument
// functions: Curry(f)(a)(b) == f(a, b).
//
// Each link of the chain is a partial application, so intermediate results
// can be stored and reused:
//
//	onLocalhost := fn.Curry(formatURL)("localhost")
//	onLocalhost(8080)
//	onLocalhost(9090)
func Curry[A any, B any, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}
}

// Uncurry is the inverse of Curry: Uncurry(Curry(f)) behaves as f.
func Uncurry[A any, B any, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C { return f(a)(b) }
}

// Curry3 converts a three-argument function into a chain of single-argument
// functions.
func Curry3[A any, B any, C any, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return f(a, b, c) }
		}
	}
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A any, B any, C any, D any](f func(A) func(B) func(C) D) func(A, B, C) D {
	return func(a A, b B, c C) D { return f(a)(b)(c) }
}

// Flip reverses the argument order of a two-argument function.
func Flip[A any, B any, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return f(a, b) }
}

// Swap reverses the argument order of a curried chain:
// Swap(f)(b)(a) == f(a)(b).
//
// It is Flip for curried functions; Swap(Curry(f)) == Curry(Flip(f))
// observationally.
func Swap[A any, B any, C any](f func(A) func(B) C) func(B) func(A) C {
	return func(b B) func(A) C {
		return func(a A) C { return f(a)(b) }
	}
}

package fn

// Compose combines two functions in mathematical order ("f after g"):
// Compose(f, g)(x) == f(g(x)). The second argument runs first.
//
//	square := func(n int) int { return n * n }
//	increment := func(n int) int { return n + 1 }
//
//	fn.Compose(square, increment)(3) // square(increment(3)) == 16
//	fn.Compose(increment, square)(3) // increment(square(3)) == 10
func Compose[A any, B any, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}

// AndThen combines two functions in pipeline order ("f then g"):
// AndThen(f, g)(x) == g(f(x)). The first argument runs first.
//
// AndThen(f, g) and Compose(g, f) are the same function; the two exist so
// call sites can read in either direction.
//
//	fn.AndThen(increment, square)(3) // square(increment(3)) == 16
//	fn.AndThen(square, increment)(3) // increment(square(3)) == 10
func AndThen[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Pipe chains any number of same-type functions in pipeline order:
// Pipe(f, g, h)(x) == h(g(f(x))).
//
// With no functions Pipe behaves as Identity. Nil entries are skipped, so
// optional steps can be wired conditionally without guards at the call site.
func Pipe[A any](fns ...func(A) A) func(A) A {
	return func(a A) A {
		for _, f := range fns {
			if f == nil {
				continue
			}
			a = f(a)
		}
		return a
	}
}

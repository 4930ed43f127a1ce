package fn

// Partial pre-binds the first argument of a two-argument function.
//
// The bound value is captured when Partial is called, not when the returned
// function runs:
//
//	formatURL := func(host string, port int) string { ... }
//	onLocalhost := fn.Partial(formatURL, "localhost")
//	onLocalhost(8080) // formatURL("localhost", 8080)
func Partial[A any, B any, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C { return f(a, b) }
}

// PartialRight pre-binds the second argument of a two-argument function.
func PartialRight[A any, B any, C any](f func(A, B) C, b B) func(A) C {
	return func(a A) C { return f(a, b) }
}

// Partial3 pre-binds the first argument of a three-argument function,
// leaving a two-argument function.
func Partial3[A any, B any, C any, D any](f func(A, B, C) D, a A) func(B, C) D {
	return func(b B, c C) D { return f(a, b, c) }
}

// PartialRight3 pre-binds the last argument of a three-argument function,
// leaving a two-argument function.
func PartialRight3[A any, B any, C any, D any](f func(A, B, C) D, c C) func(A, B) D {
	return func(a A, b B) D { return f(a, b, c) }
}

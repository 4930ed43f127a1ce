package fn

// Identity returns its argument unchanged.
//
// It is the unit of composition: Compose(f, Identity) and
// Compose(Identity, f) both behave as f.
func Identity[A any](a A) A { return a }

// Const builds a function that ignores its argument and always returns b.
//
// The returned closure captures b once; every call yields the same value.
func Const[A any, B any](b B) func(A) B {
	return func(A) B { return b }
}

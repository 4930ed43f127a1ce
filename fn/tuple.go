package fn

//go:generate go run ../cmd/fngen -spec ./arity.fngen.yaml -out ./arity.gen.go

// Pair groups two values of independent types.
//
// Fields are exported so pairs destructure without accessors; a Pair is a
// plain value and copies freely.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// NewPair builds a Pair from two values.
func NewPair[A any, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Swap returns the Pair with its fields exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// Triple groups three values of independent types.
type Triple[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}

// NewTriple builds a Triple from three values.
func NewTriple[A any, B any, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Tupled converts a two-argument function into one taking a single Pair:
// Tupled(f)(NewPair(a, b)) == f(a, b).
//
// Tupling lets multi-argument functions flow through code that traffics in
// single values (channels, slices, further combinators).
func Tupled[A any, B any, C any](f func(A, B) C) func(Pair[A, B]) C {
	return func(p Pair[A, B]) C { return f(p.First, p.Second) }
}

// Untupled is the inverse of Tupled.
func Untupled[A any, B any, C any](f func(Pair[A, B]) C) func(A, B) C {
	return func(a A, b B) C { return f(NewPair(a, b)) }
}

// Tupled3 converts a three-argument function into one taking a single Triple.
func Tupled3[A any, B any, C any, D any](f func(A, B, C) D) func(Triple[A, B, C]) D {
	return func(t Triple[A, B, C]) D { return f(t.First, t.Second, t.Third) }
}

// Untupled3 is the inverse of Tupled3.
func Untupled3[A any, B any, C any, D any](f func(Triple[A, B, C]) D) func(A, B, C) D {
	return func(a A, b B, c C) D { return f(NewTriple(a, b, c)) }
}

// Fanout applies two functions to one input and pairs the results:
// Fanout(f, g)(a) == NewPair(f(a), g(a)).
func Fanout[A any, B any, C any](f func(A) B, g func(A) C) func(A) Pair[B, C] {
	return func(a A) Pair[B, C] {
		return NewPair(f(a), g(a))
	}
}

// MapFirst lifts a function over the first element of a Pair, leaving the
// second untouched.
func MapFirst[A any, B any, C any](f func(A) C) func(Pair[A, B]) Pair[C, B] {
	return func(p Pair[A, B]) Pair[C, B] {
		return NewPair(f(p.First), p.Second)
	}
}

// MapSecond lifts a function over the second element of a Pair, leaving the
// first untouched.
func MapSecond[A any, B any, C any](f func(B) C) func(Pair[A, B]) Pair[A, C] {
	return func(p Pair[A, B]) Pair[A, C] {
		return NewPair(p.First, f(p.Second))
	}
}

package fn

// Predicate is a boolean function over A.
//
// Predicates compose with And/Or/Negate, so filtering rules can be assembled
// from named parts instead of inlined boolean expressions.
type Predicate[A any] func(A) bool

// And returns a predicate that is true when both p and q are true.
//
// q is not evaluated when p is false.
func (p Predicate[A]) And(q Predicate[A]) Predicate[A] {
	return func(a A) bool { return p(a) && q(a) }
}

// Or returns a predicate that is true when either p or q is true.
//
// q is not evaluated when p is true.
func (p Predicate[A]) Or(q Predicate[A]) Predicate[A] {
	return func(a A) bool { return p(a) || q(a) }
}

// Negate returns the logical inverse of p.
func (p Predicate[A]) Negate() Predicate[A] {
	return func(a A) bool { return !p(a) }
}

// Eq builds a predicate that is true for values equal to want.
func Eq[A comparable](want A) Predicate[A] {
	return func(a A) bool { return a == want }
}

// Neq builds a predicate that is true for values not equal to want.
func Neq[A comparable](want A) Predicate[A] {
	return func(a A) bool { return a != want }
}

// Package fn provides small, typed function combinators built on generics.
//
// The package groups combinators by the mechanic they express:
//
//   - partial application (Partial, PartialRight, Partial3, ...): pre-bind a
//     subset of a function's arguments and get back the remainder.
//   - currying (Curry, Uncurry, Flip, Swap): convert between multi-argument
//     functions and chains of single-argument functions, and reorder arguments.
//   - tupling (Pair, Triple, Tupled, Untupled, Fanout): convert between
//     argument lists and tuple values so functions can flow through code that
//     traffics in single values.
//   - composition (Compose, AndThen, Pipe): combine two functions into one
//     that applies them in a fixed sequence.
//   - predicates (Predicate, Eq, Neq): boolean functions with And/Or/Negate.
//   - panic/error bridging (Catch, Must): move between panicking and
//     error-returning function shapes at a boundary.
//
// Quick guidance
//
// Compose and AndThen sequence identically and differ only in the argument
// order of combination:
//
//	Compose(f, g)(x) == f(g(x))   // g runs first (mathematical order)
//	AndThen(f, g)(x) == g(f(x))   // f runs first (pipeline order)
//
// Use Compose when you read right to left ("f after g"), AndThen when you
// read left to right ("f then g"). Pipe chains any number of same-type steps
// in pipeline order.
//
// Arity-2 and arity-3 combinators are hand-written below. The arity-4 and
// arity-5 families (Tuple4, Curry4, ...) are generated by cmd/fngen from
// arity.fngen.yaml; see arity.gen.go.
//
// Combinators never validate their inputs: constructing one cannot fail, and
// a nil function value panics at invocation time exactly as it would when
// called directly. Wrap a call with Catch where that panic must become an
// error instead.
//
// Import
//
//	"github.com/nigelhp/fnfun/fn"
package fn

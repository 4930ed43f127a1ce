// Package fnfun provides typed function combinators for Go.
//
// This repository packages the classic first-class-function mechanics as a
// small, generics-based API:
//
//   - partial application: pre-binding a subset of a function's arguments
//   - currying / uncurrying: multi-argument functions <-> chains of single-argument functions
//   - tupling / untupling: argument lists <-> tuple values (Pair, Triple, ...)
//   - composition: Compose (mathematical order) and AndThen (pipeline order)
//
// Every combinator is an ordinary closure over ordinary functions. There is no
// graph, no registry, and no runtime pipeline representation; the surface area
// is intentionally small.
//
// Start with the examples in the repo for end-to-end usage.
//
// See subpackages:
//   - fn: the library package (all combinators live here)
//   - cmd/fngen: code generator for the repetitive arity-4+ families
//   - examples/*: runnable walkthroughs (v1 partial/curry, v2 tuple/compose,
//     v3 config-driven endpoint building)
package fnfun

// Command fngen generates the arity-N combinator families for the fn package.
//
// The fn package hand-writes its arity-2 and arity-3 combinators because they
// carry the documentation and the examples. From arity 4 upward the
// declarations are purely mechanical: the same six shapes repeated with one
// more type parameter each time. fngen writes that tail:
//
//   - TupleN: a struct of N independently typed values, with NewTupleN
//   - CurryN / UncurryN: N-argument function <-> chain of N single-argument
//     functions
//   - PartialN: pre-bind the first argument, leaving an (N-1)-argument
//     function
//   - TupledN / UntupledN: N-argument function <-> function over one TupleN
//
// There is no reflection and no runtime component; the output is plain Go
// source, formatted with go/format and written atomically.
//
// Manifest format
//
// The manifest is JSON or YAML, selected by file extension. Minimal example:
//
//	package: fn
//	arities: [4, 5]
//
// Fields:
//
//   - package: target package name. Optional when the output directory already
//     contains Go files; the package clause found there wins over this field.
//   - arities: required; each in [4, 9], ascending, no duplicates.
//   - families: optional subset of tuple, curry, partial, tupled. Empty means
//     all. The tupled family references the TupleN types, so select tuple
//     alongside tupled unless the destination package already declares them.
//
// Typical go:generate usage
//
// Put this in a hand-written file of the destination package:
//
//	//go:generate go run ../cmd/fngen -spec ./arity.fngen.yaml -out ./arity.gen.go
//
// Then:
//
//	go generate ./...
//
// Collision safety
//
// Before writing, fngen parses the destination package's hand-written files
// (test files and .gen.go files excluded) and refuses to generate any
// identifier that is already declared. Regenerating over a previous output is
// always safe; shadowing a hand-written Curry4 is an error, not a silent
// overwrite.
//
// Exit codes
//
// 0 on success; 2 on flag or usage errors. Invalid manifests and I/O failures
// panic with the underlying error, which go:generate surfaces verbatim.
package main

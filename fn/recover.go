package fn

import (
	"errors"
	"fmt"
)

// ErrCallPanicked is the sentinel wrapped by Catch when the underlying
// function panics. Match it with errors.Is.
var ErrCallPanicked = errors.New("fn: panic during call")

// Catch converts a panicking function into an error-returning one.
//
// The returned function invokes f and recovers any panic, including the
// runtime panic from a nil f, returning the zero value of B together with an
// error wrapping ErrCallPanicked. On success the error is nil.
//
//	safe := fn.Catch(mustParsePort)
//	port, err := safe("not-a-port")
//	if errors.Is(err, fn.ErrCallPanicked) { ... }
func Catch[A any, B any](f func(A) B) func(A) (B, error) {
	return func(a A) (b B, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				var zero B
				b = zero
				err = fmt.Errorf("%w: %v", ErrCallPanicked, rec)
			}
		}()

		return f(a), nil
	}
}

// Must converts an error-returning function into a panicking one.
//
// The returned function invokes f and panics with the returned error when it
// is non-nil. Useful in examples and tests where a failure should fail fast.
//
// Must is the dual of Catch: Must(Catch(f)) behaves as f on the success path.
func Must[A any, B any](f func(A) (B, error)) func(A) B {
	return func(a A) B {
		b, err := f(a)
		if err != nil {
			panic(err)
		}
		return b
	}
}

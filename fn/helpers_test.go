package fn_test

import "fmt"

// Shared fixtures used across the fn test files.
//
// formatURL is the canonical two-argument function and increment/square the
// canonical pipeline steps; composing the latter in the two possible orders
// yields 16 and 10 on input 3.

func formatURL(host string, port int) string {
	return fmt.Sprintf("http://%s:%d", host, port)
}

func formatEndpoint(scheme string, host string, port int) string {
	return fmt.Sprintf("%s://%s:%d", scheme, host, port)
}

func increment(n int) int { return n + 1 }

func square(n int) int { return n * n }

func concat(a string, b string) string { return a + b }

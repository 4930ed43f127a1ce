package fn_test

import (
	"strings"
	"testing"

	"github.com/nigelhp/fnfun/fn"
	"github.com/stretchr/testify/assert"
)

//
// -----------------------------------------------------------------------------
// Pair / Triple
// -----------------------------------------------------------------------------

// TestNewPair_FieldOrder verifies NewPair assigns arguments in order.
func TestNewPair_FieldOrder(t *testing.T) {
	t.Parallel()

	p := fn.NewPair("localhost", 8080)
	assert.Equal(t, "localhost", p.First)
	assert.Equal(t, 8080, p.Second)
}

// TestPairSwap_ExchangesFields verifies Swap exchanges the fields and that a
// double Swap restores the original pair.
func TestPairSwap_ExchangesFields(t *testing.T) {
	t.Parallel()

	p := fn.NewPair("localhost", 8080)
	s := p.Swap()

	assert.Equal(t, 8080, s.First)
	assert.Equal(t, "localhost", s.Second)
	assert.Equal(t, p, s.Swap())
}

// TestNewTriple_FieldOrder verifies NewTriple assigns arguments in order.
func TestNewTriple_FieldOrder(t *testing.T) {
	t.Parallel()

	tr := fn.NewTriple("https", "localhost", 8443)
	assert.Equal(t, "https", tr.First)
	assert.Equal(t, "localhost", tr.Second)
	assert.Equal(t, 8443, tr.Third)
}

//
// -----------------------------------------------------------------------------
// Tupled / Untupled
// -----------------------------------------------------------------------------

// TestTupled_AppliesPairElements verifies Tupled(f)(NewPair(a, b)) == f(a, b).
func TestTupled_AppliesPairElements(t *testing.T) {
	t.Parallel()

	tupled := fn.Tupled(formatURL)

	assert.Equal(t, "http://localhost:8080", tupled(fn.NewPair("localhost", 8080)))
	assert.Equal(t, formatURL("example.com", 443), tupled(fn.NewPair("example.com", 443)))
}

// TestUntupled_InvertsTupled verifies Untupled(Tupled(f)) behaves as f.
func TestUntupled_InvertsTupled(t *testing.T) {
	t.Parallel()

	restored := fn.Untupled(fn.Tupled(formatURL))

	assert.Equal(t, formatURL("example.com", 443), restored("example.com", 443))
}

// TestTupled3_AppliesTripleElements verifies the three-argument variant.
func TestTupled3_AppliesTripleElements(t *testing.T) {
	t.Parallel()

	tupled := fn.Tupled3(formatEndpoint)

	assert.Equal(t, "https://localhost:8443", tupled(fn.NewTriple("https", "localhost", 8443)))
}

// TestUntupled3_InvertsTupled3 verifies Untupled3(Tupled3(f)) behaves as f.
func TestUntupled3_InvertsTupled3(t *testing.T) {
	t.Parallel()

	restored := fn.Untupled3(fn.Tupled3(formatEndpoint))

	assert.Equal(t, formatEndpoint("http", "localhost", 80), restored("http", "localhost", 80))
}

// TestTupled_ComposesWithSingleValueCombinators verifies a tupled function
// flows through the single-value composition combinators.
func TestTupled_ComposesWithSingleValueCombinators(t *testing.T) {
	t.Parallel()

	describe := fn.AndThen(fn.Tupled(formatURL), strings.ToUpper)

	assert.Equal(t, "HTTP://LOCALHOST:8080", describe(fn.NewPair("localhost", 8080)))
}

//
// -----------------------------------------------------------------------------
// Fanout / MapFirst / MapSecond
// -----------------------------------------------------------------------------

// TestFanout_PairsBothResults verifies Fanout(f, g)(a) == NewPair(f(a), g(a)).
func TestFanout_PairsBothResults(t *testing.T) {
	t.Parallel()

	both := fn.Fanout(increment, square)

	assert.Equal(t, fn.NewPair(4, 9), both(3))
	assert.Equal(t, fn.NewPair(1, 0), both(0))
}

// TestMapFirst_TransformsOnlyFirst verifies the second element is untouched.
func TestMapFirst_TransformsOnlyFirst(t *testing.T) {
	t.Parallel()

	upperHost := fn.MapFirst[string, int](strings.ToUpper)

	assert.Equal(t, fn.NewPair("LOCALHOST", 8080), upperHost(fn.NewPair("localhost", 8080)))
}

// TestMapSecond_TransformsOnlySecond verifies the first element is untouched.
func TestMapSecond_TransformsOnlySecond(t *testing.T) {
	t.Parallel()

	nextPort := fn.MapSecond[string](increment)

	assert.Equal(t, fn.NewPair("localhost", 8081), nextPort(fn.NewPair("localhost", 8080)))
}

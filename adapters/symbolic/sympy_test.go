package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAntiderivativePolynomial(t *testing.T) {
	eng := New()

	res, ok := eng.Antiderivative("x^2", "x")
	require.True(t, ok)
	assert.Contains(t, res, "x^{3}")

	res, ok = eng.Antiderivative("2*x+1", "x")
	require.True(t, ok)
	assert.Contains(t, res, "x^{2}")
}

func TestAntiderivativeExponential(t *testing.T) {
	eng := New()

	res, ok := eng.Antiderivative("exp(-2*x)", "x")
	require.True(t, ok)
	assert.NotEmpty(t, res)
}

func TestAntiderivativeFailsClosed(t *testing.T) {
	eng := New()

	// Unparsable input.
	_, ok := eng.Antiderivative("((", "x")
	assert.False(t, ok)

	// Parsable but outside the integrator's rule set.
	_, ok = eng.Antiderivative("fact(x)", "x")
	assert.False(t, ok)
}

package stddist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distlab/domain/core"
)

func TestBinomial(t *testing.T) {
	b, err := NewBinomial(10, 0.5)
	require.NoError(t, err)

	// C(10,5) * 0.5^10
	assert.InDelta(t, 0.24609, b.At(5), 1e-4)
	assert.InDelta(t, 0.62305, b.CDF(5), 1e-4)
	assert.InDelta(t, 1-0.62305, b.Survival(5), 1e-4)
	assert.InDelta(t, 5.0, b.Mean(), 1e-12)
	assert.InDelta(t, 2.5, b.Variance(), 1e-12)

	// Mass sits only on the integer support.
	assert.Zero(t, b.At(5.5))
	assert.Zero(t, b.At(-1))
	assert.Zero(t, b.At(11))

	assert.NotEmpty(t, b.MGF())
	assert.NotEmpty(t, b.PGF())
	assert.Len(t, b.Points(0), 11)
}

func TestBinomialParameterValidation(t *testing.T) {
	_, err := NewBinomial(0, 0.5)
	assert.True(t, core.IsParameterError(err))

	_, err = NewBinomial(10, 1.5)
	assert.True(t, core.IsParameterError(err))
}

func TestNormal(t *testing.T) {
	n, err := NewNormal(0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.9750, n.CDF(1.96), 1e-3)
	assert.InDelta(t, 0.5, n.CDF(0), 1e-12)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), n.At(0), 1e-9)

	q, err := n.InvCDF(0.975)
	require.NoError(t, err)
	assert.InDelta(t, 1.96, q, 1e-2)

	// Quantile round-trips through the CDF.
	assert.InDelta(t, 0.31, n.CDF(mustInv(t, n, 0.31)), 1e-6)

	_, err = n.InvCDF(0)
	assert.True(t, core.IsParameterError(err))

	_, err = NewNormal(0, -1)
	assert.True(t, core.IsParameterError(err))

	assert.Empty(t, n.PGF())
}

func mustInv(t *testing.T, n *Normal, p float64) float64 {
	t.Helper()
	x, err := n.InvCDF(p)
	require.NoError(t, err)
	return x
}

func TestNormalShifted(t *testing.T) {
	n, err := NewNormal(100, 15)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, n.Mean(), 1e-12)
	assert.InDelta(t, 225.0, n.Variance(), 1e-12)
	assert.InDelta(t, 0.5, n.CDF(100), 1e-12)

	pts := n.Points(50)
	require.Len(t, pts, 50)
	assert.InDelta(t, 40.0, float64(pts[0].X), 1e-9)
	assert.InDelta(t, 160.0, float64(pts[49].X), 1e-9)
}

func TestPoisson(t *testing.T) {
	p, err := NewPoisson(2)
	require.NoError(t, err)

	// e^-2 * 2^3 / 3!
	assert.InDelta(t, math.Exp(-2)*8/6, p.At(3), 1e-9)
	assert.InDelta(t, 2.0, p.Mean(), 1e-12)
	assert.InDelta(t, 2.0, p.Variance(), 1e-12)

	// CDF accumulates to ~1 far into the tail.
	assert.InDelta(t, 1.0, p.CDF(50), 1e-9)
	assert.Zero(t, p.At(2.5))

	_, err = NewPoisson(0)
	assert.True(t, core.IsParameterError(err))
}

func TestExponential(t *testing.T) {
	e, err := NewExponential(2)
	require.NoError(t, err)

	assert.InDelta(t, 1-math.Exp(-2), e.CDF(1), 1e-12)
	assert.InDelta(t, 0.5, e.Mean(), 1e-12)
	assert.InDelta(t, 0.25, e.Variance(), 1e-12)
	assert.Zero(t, e.At(-1))

	q, err := e.InvCDF(0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2/2, q, 1e-9)

	_, err = NewExponential(-1)
	assert.True(t, core.IsParameterError(err))
}

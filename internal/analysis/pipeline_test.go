package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distlab/adapters/symbolic"
	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/internal/config"
)

func newPipeline() *Pipeline {
	return New(config.DefaultEngine(), symbolic.New(), nil)
}

func TestAnalyzeUnnormalizedDensity(t *testing.T) {
	// f(x)=x on [0,2]: mass 2, so the engine renormalizes to x/2 and the
	// mean lands at 4/3.
	p := newPipeline()
	a, err := p.Analyze(context.Background(), "x", "0<x<2")
	require.NoError(t, err)

	assert.False(t, a.Validation.Valid)
	assert.InDelta(t, 2.0, float64(a.Validation.TotalMass), 1e-6)
	assert.InDelta(t, 4.0/3.0, float64(a.Moments.Mean), 1e-3)
	assert.False(t, a.ID.String() == "")
	assert.Equal(t, "x", a.Function)
}

func TestAnalyzeRecognizesExponential(t *testing.T) {
	p := newPipeline()
	a, err := p.Analyze(context.Background(), "2e^(-2x)", "0<x<infinity")
	require.NoError(t, err)

	assert.True(t, a.Validation.Valid)
	require.NotNil(t, a.Match)
	assert.Equal(t, "exponential", a.Match.Family)
	assert.InDelta(t, 0.5, float64(a.Moments.Mean), 1e-3)
	assert.InDelta(t, 0.25, float64(a.Moments.Variance), 1e-3)
}

func TestAnalyzeSymbolicCDF(t *testing.T) {
	p := newPipeline()
	a, err := p.Analyze(context.Background(), "x/2", "0<x<2")
	require.NoError(t, err)
	assert.NotEmpty(t, a.SymbolicCDF)

	// Without the collaborator the same analysis is numeric-only.
	bare := New(config.DefaultEngine(), nil, nil)
	a, err = bare.Analyze(context.Background(), "x/2", "0<x<2")
	require.NoError(t, err)
	assert.Empty(t, a.SymbolicCDF)
}

func TestAnalyzeDiscreteSupport(t *testing.T) {
	p := newPipeline()
	a, err := p.Analyze(context.Background(), "1.0/6.0", "1,2,3,4,5,6")
	require.NoError(t, err)

	assert.True(t, a.Range.IsDiscrete())
	assert.True(t, a.Validation.Valid)
	assert.InDelta(t, 3.5, float64(a.Moments.Mean), 1e-9)
	require.NotNil(t, a.Support)
	assert.Equal(t, 6, a.Support.Count)
	assert.Equal(t, dist.Real(1), a.Support.Min)
	assert.Equal(t, dist.Real(6), a.Support.Max)
	assert.InDelta(t, 3.5, float64(a.Support.Median), 1e-9)
}

func TestAnalyzeDivergenceGuidance(t *testing.T) {
	p := newPipeline()

	_, err := p.Analyze(context.Background(), "e^(-x)", "-inf<x<inf")
	require.Error(t, err)
	assert.True(t, core.IsDivergenceError(err))

	// Same shape on a domain bounded below is fine.
	_, err = p.Analyze(context.Background(), "e^(-x)", "0<x<inf")
	assert.NoError(t, err)

	// Squared-argument decay converges on the whole line.
	_, err = p.Analyze(context.Background(), "e^(-x^2/2)", "-inf<x<inf")
	assert.NoError(t, err)
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	p := newPipeline()

	_, err := p.Analyze(context.Background(), "  ", "0<x<1")
	assert.ErrorIs(t, err, core.ErrEmptyFunction)

	_, err = p.Analyze(context.Background(), "x", "")
	assert.ErrorIs(t, err, core.ErrEmptyRange)
}

func TestCustomMoment(t *testing.T) {
	p := newPipeline()

	// E[X^3] for Uniform(0,1) is 1/4.
	m, err := p.CustomMoment("1", "0<x<1", 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, m, 1e-6)
}

func TestProbability(t *testing.T) {
	p := newPipeline()

	// Continuous: P(X<=1) for Exp(2) is 1-e^-2.
	pr, err := p.Probability("2e^(-2x)", "0<x<infinity", 1)
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-2), float64(pr.Cumulative), 1e-3)
	assert.InDelta(t, 2*math.Exp(-2), float64(pr.At), 1e-9)

	// Discrete: fair die, P(X<=3) = 0.5.
	pr, err = p.Probability("1.0/6.0", "1,2,3,4,5,6", 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, float64(pr.Cumulative), 1e-9)
	assert.InDelta(t, 0.5, float64(pr.Survival), 1e-9)
}

func TestProbabilityOutsideSupport(t *testing.T) {
	p := newPipeline()

	// Past the upper bound the cumulative saturates at the total mass; it
	// must not keep integrating over x where the density is undefined.
	pr, err := p.Probability("0.2", "0<x<5", 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, float64(pr.Cumulative), 1e-3)
	assert.InDelta(t, 0.0, float64(pr.Survival), 1e-3)
	assert.Equal(t, dist.Real(0), pr.At)

	// Below the lower bound nothing has accumulated yet.
	pr, err = p.Probability("0.2", "0<x<5", -1)
	require.NoError(t, err)
	assert.Equal(t, dist.Real(0), pr.Cumulative)
	assert.Equal(t, dist.Real(1), pr.Survival)
	assert.Equal(t, dist.Real(0), pr.At)

	// Discrete: a k off the support has zero point mass, and the cumulative
	// counts only the values at or below it.
	pr, err = p.Probability("1.0/6.0", "1,2,3,4,5,6", 2.5)
	require.NoError(t, err)
	assert.Equal(t, dist.Real(0), pr.At)
	assert.InDelta(t, 2.0/6.0, float64(pr.Cumulative), 1e-9)

	pr, err = p.Probability("1.0/6.0", "1,2,3,4,5,6", 100)
	require.NoError(t, err)
	assert.Equal(t, dist.Real(0), pr.At)
	assert.InDelta(t, 1.0, float64(pr.Cumulative), 1e-9)
}

func TestCurve(t *testing.T) {
	p := newPipeline()

	pts, err := p.Curve("x", "0<x<2", 5)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	assert.Equal(t, dist.Point{X: 0, Y: 0}, pts[0])
	assert.InDelta(t, 2.0, float64(pts[4].X), 1e-12)
	assert.InDelta(t, 2.0, float64(pts[4].Y), 1e-12)

	pts, err = p.Curve("x", "1,2,3", 0)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, 2.0, float64(pts[1].Y))
}

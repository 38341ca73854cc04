package stddist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"distlab/domain/core"
	"distlab/domain/dist"
)

// Binomial is the B(n, p) calculator.
type Binomial struct {
	N    int
	P    float64
	impl distuv.Binomial
}

// NewBinomial validates the parameters and builds the model.
func NewBinomial(n int, p float64) (*Binomial, error) {
	if n < 1 {
		return nil, core.NewParameterError("n", float64(n), "trial count must be at least 1")
	}
	if p < 0 || p > 1 {
		return nil, core.NewParameterError("p", p, "success probability must lie in [0,1]")
	}
	return &Binomial{
		N:    n,
		P:    p,
		impl: distuv.Binomial{N: float64(n), P: p},
	}, nil
}

// At returns P(X = k) for integer k; non-integers and out-of-support values
// get zero mass.
func (b *Binomial) At(x float64) float64 {
	if x != math.Trunc(x) || x < 0 || x > float64(b.N) {
		return 0
	}
	return b.impl.Prob(x)
}

// CDF accumulates the PMF directly; with n at classroom scale there is no
// reason to reach for the regularized incomplete beta function.
func (b *Binomial) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	total := 0.0
	for k := 0; float64(k) <= math.Min(x, float64(b.N)); k++ {
		total += b.impl.Prob(float64(k))
	}
	return total
}

func (b *Binomial) Survival(x float64) float64 { return 1 - b.CDF(x) }

func (b *Binomial) Mean() float64     { return b.impl.Mean() }
func (b *Binomial) Variance() float64 { return b.impl.Variance() }

func (b *Binomial) MGF() string {
	return fmt.Sprintf(`(%s + %s e^t)^{%d}`, trim(1-b.P), trim(b.P), b.N)
}

func (b *Binomial) PGF() string {
	return fmt.Sprintf(`(%s + %s t)^{%d}`, trim(1-b.P), trim(b.P), b.N)
}

// Points returns the full PMF; n is ignored since the support is finite.
func (b *Binomial) Points(n int) []dist.Point {
	pts := make([]dist.Point, 0, b.N+1)
	for k := 0; k <= b.N; k++ {
		pts = append(pts, dist.Point{X: dist.Real(k), Y: dist.Real(b.impl.Prob(float64(k)))})
	}
	return pts
}

package stddist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"distlab/domain/core"
	"distlab/domain/dist"
)

// Poisson is the Poisson(lambda) calculator.
type Poisson struct {
	Lambda float64
	impl   distuv.Poisson
}

// NewPoisson validates the rate and builds the model.
func NewPoisson(lambda float64) (*Poisson, error) {
	if lambda <= 0 {
		return nil, core.NewParameterError("lambda", lambda, "rate must be positive")
	}
	return &Poisson{Lambda: lambda, impl: distuv.Poisson{Lambda: lambda}}, nil
}

// At returns P(X = k) for integer k >= 0.
func (p *Poisson) At(x float64) float64 {
	if x != math.Trunc(x) || x < 0 {
		return 0
	}
	return p.impl.Prob(x)
}

// CDF accumulates the PMF up to floor(x).
func (p *Poisson) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	total := 0.0
	for k := 0.0; k <= math.Floor(x); k++ {
		total += p.impl.Prob(k)
	}
	return total
}

func (p *Poisson) Survival(x float64) float64 { return 1 - p.CDF(x) }

func (p *Poisson) Mean() float64     { return p.Lambda }
func (p *Poisson) Variance() float64 { return p.Lambda }

func (p *Poisson) MGF() string {
	return fmt.Sprintf(`e^{%s(e^t - 1)}`, trim(p.Lambda))
}

func (p *Poisson) PGF() string {
	return fmt.Sprintf(`e^{%s(t - 1)}`, trim(p.Lambda))
}

// Points samples the PMF from 0 out to where the upper tail is negligible,
// capped at n values when n is positive.
func (p *Poisson) Points(n int) []dist.Point {
	limit := int(math.Ceil(p.Lambda + 6*math.Sqrt(p.Lambda)))
	if n > 0 && n < limit {
		limit = n
	}
	pts := make([]dist.Point, 0, limit+1)
	for k := 0; k <= limit; k++ {
		pts = append(pts, dist.Point{X: dist.Real(k), Y: dist.Real(p.impl.Prob(float64(k)))})
	}
	return pts
}

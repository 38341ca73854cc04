package stddist

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"distlab/domain/core"
	"distlab/domain/dist"
)

// Exponential is the Exp(lambda) calculator.
type Exponential struct {
	Rate float64
	impl distuv.Exponential
}

// NewExponential validates the rate and builds the model.
func NewExponential(rate float64) (*Exponential, error) {
	if rate <= 0 {
		return nil, core.NewParameterError("rate", rate, "rate must be positive")
	}
	return &Exponential{Rate: rate, impl: distuv.Exponential{Rate: rate}}, nil
}

func (e *Exponential) At(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.impl.Prob(x)
}

func (e *Exponential) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.impl.CDF(x)
}

func (e *Exponential) Survival(x float64) float64 { return 1 - e.CDF(x) }

// InvCDF returns the quantile for probability p in (0,1).
func (e *Exponential) InvCDF(p float64) (float64, error) {
	if p <= 0 || p >= 1 {
		return 0, core.NewParameterError("p", p, "probability must lie strictly in (0,1)")
	}
	return e.impl.Quantile(p), nil
}

func (e *Exponential) Mean() float64     { return 1 / e.Rate }
func (e *Exponential) Variance() float64 { return 1 / (e.Rate * e.Rate) }

func (e *Exponential) MGF() string {
	return fmt.Sprintf(`\frac{%s}{%s - t}`, trim(e.Rate), trim(e.Rate))
}

func (e *Exponential) PGF() string { return "" }

// Points samples the density from 0 out to six mean lifetimes.
func (e *Exponential) Points(count int) []dist.Point {
	if count < 2 {
		count = 100
	}
	hi := 6 / e.Rate
	step := hi / float64(count-1)
	pts := make([]dist.Point, 0, count)
	for i := 0; i < count; i++ {
		x := float64(i) * step
		pts = append(pts, dist.Point{X: dist.Real(x), Y: dist.Real(e.impl.Prob(x))})
	}
	return pts
}

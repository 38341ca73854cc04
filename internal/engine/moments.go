package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"distlab/domain/dist"
)

// Moments computes E[X], E[X^2] and the variance of the density/mass
// function src over r. The two raw moments are independent quadratures, so
// they run concurrently. When the validation found total mass away from 1,
// each raw moment is divided by that mass - the user's function is treated
// as a valid but unnormalized density. A zero or negative mass then yields
// NaN through ordinary float semantics; that edge is deliberate, not guarded.
func (e *Evaluator) Moments(ctx context.Context, src string, r dist.Range, v dist.Validation) dist.Moments {
	var mean, second float64
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		mean = e.Mass(fmt.Sprintf("x*(%s)", src), r)
		return nil
	})
	g.Go(func() error {
		second = e.Mass(fmt.Sprintf("x^2*(%s)", src), r)
		return nil
	})
	_ = g.Wait()

	if !v.Valid {
		mean /= float64(v.TotalMass)
		second /= float64(v.TotalMass)
	}
	return dist.Moments{
		Mean:         dist.Real(mean),
		SecondMoment: dist.Real(second),
		Variance:     dist.Real(second - mean*mean),
	}
}

// CustomMoment computes E[X^r] with the same renormalization convention as
// Moments.
func (e *Evaluator) CustomMoment(src string, r dist.Range, v dist.Validation, exponent int) float64 {
	raw := e.Mass(fmt.Sprintf("x^%d*(%s)", exponent, src), r)
	if !v.Valid {
		raw /= float64(v.TotalMass)
	}
	return raw
}

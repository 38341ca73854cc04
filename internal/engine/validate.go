package engine

import (
	"math"

	"distlab/domain/dist"
)

// Validate checks whether src carries total probability mass 1 over the
// range, within the configured tolerance. The expression is never rejected
// or mutated here; an invalid result just carries the measured mass so the
// moment engine can renormalize by it.
func (e *Evaluator) Validate(src string, r dist.Range) dist.Validation {
	mass := e.Mass(src, r)
	return dist.Validation{
		TotalMass: dist.Real(mass),
		Valid:     math.Abs(mass-1) < e.cfg.MassTolerance,
	}
}

// Package stddist holds the pre-built calculators for standard distribution
// families. Each model is parameterized directly by the user (never inferred
// by the recognizer) and owns its closed-form PMF/PDF, CDF, survival and
// generating-function formulas. The numeric heavy lifting is delegated to
// gonum's distuv implementations.
package stddist

import (
	"distlab/domain/dist"
)

// Model is the common surface of every parameterized calculator.
type Model interface {
	// At returns the PMF (discrete) or PDF (continuous) at x.
	At(x float64) float64

	// CDF returns P(X <= x).
	CDF(x float64) float64

	// Survival returns P(X > x).
	Survival(x float64) float64

	// Mean and Variance are the closed-form moments.
	Mean() float64
	Variance() float64

	// MGF returns the family's moment generating function with the user's
	// parameters substituted. PGF returns the probability generating
	// function, or "" for continuous families.
	MGF() string
	PGF() string

	// Points samples the mass/density for charting.
	Points(n int) []dist.Point
}

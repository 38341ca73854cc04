package dist

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"distlab/domain/core"
)

// Real is a float that marshals non-finite values as null; JSON has no
// representation for NaN or the infinities, and the engine's failure
// sentinel is NaN by design.
type Real float64

// MarshalJSON implements json.Marshaler.
func (r Real) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// ============================================================================
// RANGE DESCRIPTORS
// ============================================================================

// RangeKind discriminates the two support shapes a user domain can take.
type RangeKind string

const (
	// Discrete is an explicit, ordered value set ("0,1,2,...").
	Discrete RangeKind = "discrete"
	// Continuous is an interval, possibly unbounded on either side.
	Continuous RangeKind = "continuous"
)

// Range is the normalized descriptor for a user-entered domain.
// INVARIANTS:
// - Kind is always exactly one of Discrete or Continuous
// - Discrete: Values holds at least one number, insertion order preserved
// - Continuous: Min <= Max whenever both are finite
type Range struct {
	Kind   RangeKind
	Values []float64
	Min    float64
	Max    float64
}

// NewDiscrete builds a discrete range from parsed values (order preserved).
func NewDiscrete(values []float64) Range {
	return Range{Kind: Discrete, Values: values}
}

// NewContinuous builds a continuous range, swapping finite bounds if needed
// so the Min <= Max invariant holds.
func NewContinuous(min, max float64) Range {
	if !math.IsInf(min, 0) && !math.IsInf(max, 0) && min > max {
		min, max = max, min
	}
	return Range{Kind: Continuous, Min: min, Max: max}
}

// Unbounded is the permissive fallback: the whole real line.
func Unbounded() Range {
	return NewContinuous(math.Inf(-1), math.Inf(1))
}

// IsDiscrete reports whether the range is an explicit value set.
func (r Range) IsDiscrete() bool { return r.Kind == Discrete }

// Bounded reports whether both endpoints of a continuous range are finite.
func (r Range) Bounded() bool {
	return r.Kind == Continuous && !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0)
}

// First returns the first discrete value, or NaN for continuous ranges.
func (r Range) First() float64 {
	if r.Kind != Discrete || len(r.Values) == 0 {
		return math.NaN()
	}
	return r.Values[0]
}

// MarshalJSON keeps unbounded endpoints encodable: infinite bounds become
// null rather than an encoding error.
func (r Range) MarshalJSON() ([]byte, error) {
	if r.Kind == Discrete {
		return json.Marshal(struct {
			Kind   RangeKind `json:"kind"`
			Values []float64 `json:"values"`
		}{r.Kind, r.Values})
	}
	return json.Marshal(struct {
		Kind RangeKind `json:"kind"`
		Min  Real      `json:"min"`
		Max  Real      `json:"max"`
	}{r.Kind, Real(r.Min), Real(r.Max)})
}

// String renders the range for logs and display fallbacks.
func (r Range) String() string {
	if r.Kind == Discrete {
		parts := make([]string, len(r.Values))
		for i, v := range r.Values {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return "{" + strings.Join(parts, ",") + "}"
	}
	lo, hi := "-inf", "inf"
	if !math.IsInf(r.Min, 0) {
		lo = strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	if !math.IsInf(r.Max, 0) {
		hi = strconv.FormatFloat(r.Max, 'g', -1, 64)
	}
	return fmt.Sprintf("%s < x < %s", lo, hi)
}

// ============================================================================
// ANALYSIS RESULTS
// ============================================================================

// Validation records the total probability mass check.
// Valid iff |TotalMass - 1| is inside the configured tolerance; the tolerance
// absorbs quadrature error, it is not an exactness claim.
type Validation struct {
	TotalMass Real `json:"total_mass"`
	Valid     bool `json:"valid"`
}

// Moments holds numerically derived moments. Variance is always
// SecondMoment - Mean^2 (population semantics, no sample correction).
type Moments struct {
	Mean         Real `json:"mean"`
	SecondMoment Real `json:"second_moment"`
	Variance     Real `json:"variance"`
}

// Match is the outcome of distribution recognition: a named family with its
// closed-form generating functions. PGF is empty for continuous families.
// Parameters that could not be extracted stay symbolic in the formula text.
type Match struct {
	Name     string `json:"name"`
	Notation string `json:"notation"`
	Family   string `json:"family"`
	PDF      string `json:"pdf"`
	MGF      string `json:"mgf"`
	PGF      string `json:"pgf,omitempty"`
}

// SupportSummary describes a discrete support for display purposes.
type SupportSummary struct {
	Count  int  `json:"count"`
	Min    Real `json:"min"`
	Max    Real `json:"max"`
	Mean   Real `json:"mean"`
	Median Real `json:"median"`
}

// Point is one sample of a plotted function; the presentation layer draws
// the chart, the engine only supplies the numbers.
type Point struct {
	X Real `json:"x"`
	Y Real `json:"y"`
}

// Analysis is the structured bundle handed to the presentation layer for one
// analyze request. All fields are recomputed per request; nothing is shared
// across analyses.
type Analysis struct {
	ID          core.AnalysisID `json:"id"`
	Function    string          `json:"function"`
	Display     string          `json:"display"`
	Range       Range           `json:"range"`
	Validation  Validation      `json:"validation"`
	Moments     Moments         `json:"moments"`
	Match       *Match          `json:"match,omitempty"`
	SymbolicCDF string          `json:"symbolic_cdf,omitempty"`
	Support     *SupportSummary `json:"support,omitempty"`
	CreatedAt   core.Timestamp  `json:"created_at"`
}

// Probability is the answer to a point/cumulative query at target k.
type Probability struct {
	K          Real `json:"k"`
	At         Real `json:"at"`         // P(X=k) discrete, f(k) continuous
	Cumulative Real `json:"cumulative"` // P(X<=k)
	Survival   Real `json:"survival"`   // 1 - Cumulative
}

// Package recognize is a rule-based classifier that maps a normalized
// density/mass expression plus its range descriptor to a known distribution
// family. Matching is on surface syntax, not algebraic equivalence: a valid
// density written in an unusual form can and will go unrecognized, which is
// an accepted property of the tool, not a defect. Rules are consulted in a
// fixed priority order and the first one whose range precondition and
// structural signal both hold wins.
package recognize

import (
	"math"
	"strings"

	"distlab/domain/dist"
	"distlab/internal/config"
	"distlab/internal/expression"
)

// rule pairs a range-shape precondition with a structural matcher. The
// matcher may still return nil when the expression lacks the family's
// signal; the scan then moves on to the next rule.
type rule struct {
	family  string
	applies func(r dist.Range) bool
	match   func(src string, r dist.Range) *dist.Match
}

// Recognizer holds the ordered rule table. Stateless across calls.
type Recognizer struct {
	cfg   config.EngineConfig
	rules []rule
}

// New builds the recognizer with its fixed rule priority: Poisson, Binomial,
// Geometric, Beta, Exponential, Gamma, Normal, Uniform.
func New(cfg config.EngineConfig) *Recognizer {
	rc := &Recognizer{cfg: cfg}
	rc.rules = []rule{
		{"poisson", appliesPoisson, matchPoisson},
		{"binomial", appliesBinomial, matchBinomial},
		{"geometric", appliesGeometric, matchGeometric},
		{"beta", appliesBeta, matchBeta},
		{"exponential", appliesExponential, matchExponential},
		{"gamma", appliesGamma, matchGamma},
		{"normal", appliesNormal, matchNormal},
		{"uniform", appliesUniform, rc.matchUniform},
	}
	return rc
}

// Identify returns the first matching family, or nil when no rule fires.
// A nil result is an expected outcome, not an error; callers fall back to
// generic integral/sum presentation.
func (rc *Recognizer) Identify(src string, r dist.Range) *dist.Match {
	for _, rl := range rc.rules {
		if !rl.applies(r) {
			continue
		}
		if m := rl.match(src, r); m != nil {
			return m
		}
	}
	return nil
}

// ---- range preconditions ----

func appliesPoisson(r dist.Range) bool {
	return r.IsDiscrete() && len(r.Values) >= 11 && r.First() == 0
}

func appliesBinomial(r dist.Range) bool {
	return r.IsDiscrete() && len(r.Values) > 1 && r.First() == 0
}

func appliesGeometric(r dist.Range) bool {
	return r.IsDiscrete() && r.First() == 1
}

func appliesBeta(r dist.Range) bool {
	return r.Kind == dist.Continuous && r.Min == 0 && r.Max == 1
}

func appliesHalfLine(r dist.Range) bool {
	return r.Kind == dist.Continuous && r.Min == 0 && math.IsInf(r.Max, 1)
}

func appliesExponential(r dist.Range) bool { return appliesHalfLine(r) }
func appliesGamma(r dist.Range) bool       { return appliesHalfLine(r) }

func appliesNormal(r dist.Range) bool {
	return r.Kind == dist.Continuous && math.IsInf(r.Min, -1) && math.IsInf(r.Max, 1)
}

func appliesUniform(r dist.Range) bool {
	return r.Bounded()
}

// ---- structural signals ----

func matchPoisson(src string, r dist.Range) *dist.Match {
	if !strings.Contains(src, "fact(") || !strings.Contains(src, "exp(") {
		return nil
	}
	return poissonMatch(src)
}

func matchBinomial(src string, r dist.Range) *dist.Match {
	if !strings.Contains(src, "^") || !strings.Contains(src, "(1-") {
		return nil
	}
	return binomialMatch(src, r)
}

func matchGeometric(src string, r dist.Range) *dist.Match {
	if !strings.Contains(src, "^") {
		return nil
	}
	if !strings.Contains(src, "(x-1") && !strings.Contains(src, "^x") {
		return nil
	}
	return geometricMatch(src)
}

func matchBeta(src string, r dist.Range) *dist.Match {
	if !strings.Contains(src, "x^") || !strings.Contains(src, "(1-x)") {
		return nil
	}
	return betaMatch(src)
}

func matchExponential(src string, r dist.Range) *dist.Match {
	if !strings.Contains(src, "exp(") {
		return nil
	}
	// A power of x or an x*e^ product means Gamma, handled by the next rule.
	if strings.Contains(src, "x*exp") || strings.Contains(src, "x^") {
		return nil
	}
	return exponentialMatch(src)
}

func matchGamma(src string, r dist.Range) *dist.Match {
	if !strings.Contains(src, "exp(") {
		return nil
	}
	if !strings.Contains(src, "x^") && !strings.Contains(src, "x*exp") {
		return nil
	}
	return gammaMatch(src)
}

func matchNormal(src string, r dist.Range) *dist.Match {
	if !strings.Contains(src, "exp(") || !strings.Contains(src, "x^2") {
		return nil
	}
	return normalMatch(src)
}

// matchUniform is the only numeric rule: the interval midpoint must evaluate
// to 1/(b-a) within the configured tolerance.
func (rc *Recognizer) matchUniform(src string, r dist.Range) *dist.Match {
	f, err := expression.Compile(src)
	if err != nil {
		return nil
	}
	mid := f((r.Min + r.Max) / 2)
	want := 1 / (r.Max - r.Min)
	if math.IsNaN(mid) || math.Abs(mid-want) >= rc.cfg.MidpointTolerance {
		return nil
	}
	return uniformMatch(r)
}

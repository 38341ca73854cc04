// Package analysis wires the full analyze pipeline: normalization, range
// parsing, the divergence precondition, validation, moments, recognition
// and the optional symbolic derivation. Each call is self-contained; no
// state is shared across analyses.
package analysis

import (
	"context"
	"math"
	"strings"

	"github.com/montanaflynn/stats"

	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/internal"
	"distlab/internal/config"
	"distlab/internal/engine"
	"distlab/internal/expression"
	"distlab/internal/rangetext"
	"distlab/internal/recognize"
	"distlab/ports"
)

// Pipeline runs analyses. The symbolic port is optional; a nil port means
// every analysis is numeric-only.
type Pipeline struct {
	cfg  config.EngineConfig
	eval *engine.Evaluator
	rec  *recognize.Recognizer
	sym  ports.Symbolic
	log  *internal.Logger
}

// New builds a pipeline with the given engine knobs and optional symbolic
// collaborator.
func New(cfg config.EngineConfig, sym ports.Symbolic, logger *internal.Logger) *Pipeline {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Pipeline{
		cfg:  cfg,
		eval: engine.New(cfg),
		rec:  recognize.New(cfg),
		sym:  sym,
		log:  logger,
	}
}

// Analyze runs the whole pipeline for one function/range pair and returns
// the structured bundle the presentation layer renders.
func (p *Pipeline) Analyze(ctx context.Context, fn, rng string) (*dist.Analysis, error) {
	src, display, r, err := p.prepare(fn, rng)
	if err != nil {
		return nil, err
	}

	id := core.NewAnalysisID()
	p.log.Debug("analysis %s: src=%q range=%s", id, src, r)

	validation := p.eval.Validate(src, r)
	moments := p.eval.Moments(ctx, src, r, validation)
	match := p.rec.Identify(src, r)

	a := &dist.Analysis{
		ID:         id,
		Function:   src,
		Display:    display,
		Range:      r,
		Validation: validation,
		Moments:    moments,
		Match:      match,
		CreatedAt:  core.Now(),
	}

	if r.IsDiscrete() {
		a.Support = supportSummary(r.Values)
	} else if p.sym != nil {
		if anti, ok := p.sym.Antiderivative(src, "x"); ok {
			a.SymbolicCDF = anti
		} else {
			p.log.Debug("analysis %s: no symbolic antiderivative", id)
		}
	}
	return a, nil
}

// CustomMoment computes E[X^r] through the same validate-then-renormalize
// path Analyze uses.
func (p *Pipeline) CustomMoment(fn, rng string, exponent int) (float64, error) {
	src, _, r, err := p.prepare(fn, rng)
	if err != nil {
		return math.NaN(), err
	}
	validation := p.eval.Validate(src, r)
	return p.eval.CustomMoment(src, r, validation, exponent), nil
}

// Probability answers a point/cumulative query at target k.
func (p *Pipeline) Probability(fn, rng string, k float64) (*dist.Probability, error) {
	src, _, r, err := p.prepare(fn, rng)
	if err != nil {
		return nil, err
	}
	f, cerr := expression.Compile(src)

	// Outside the support the mass/density is zero regardless of what the
	// expression evaluates to, and the cumulative saturates at the ends.
	// A compile failure still surfaces as the NaN sentinel.
	at := 0.0
	if cerr != nil {
		at = math.NaN()
	}
	var cumulative float64
	if r.IsDiscrete() {
		var upTo []float64
		for _, v := range r.Values {
			if v <= k {
				upTo = append(upTo, v)
			}
			if v == k && cerr == nil {
				at = f(k)
			}
		}
		cumulative = p.eval.Summate(src, upTo)
	} else {
		if k >= r.Min && k <= r.Max && cerr == nil {
			at = f(k)
		}
		cumulative = p.eval.Integrate(src, r.Min, math.Min(k, r.Max))
		if k < r.Min {
			cumulative = 0
		}
	}
	return &dist.Probability{
		K:          dist.Real(k),
		At:         dist.Real(at),
		Cumulative: dist.Real(cumulative),
		Survival:   dist.Real(1 - cumulative),
	}, nil
}

// Curve samples the user's function for charting: one point per discrete
// support value, or n evenly spaced points over the (surrogate-clamped)
// interval for continuous ranges.
func (p *Pipeline) Curve(fn, rng string, n int) ([]dist.Point, error) {
	src, _, r, err := p.prepare(fn, rng)
	if err != nil {
		return nil, err
	}
	f, cerr := expression.Compile(src)
	if cerr != nil {
		return nil, cerr
	}

	if r.IsDiscrete() {
		pts := make([]dist.Point, 0, len(r.Values))
		for _, v := range r.Values {
			pts = append(pts, dist.Point{X: dist.Real(v), Y: dist.Real(f(v))})
		}
		return pts, nil
	}

	if n < 2 {
		n = 100
	}
	lo, hi := r.Min, r.Max
	if math.IsInf(lo, -1) {
		lo = -p.cfg.IntegrationBound
	}
	if math.IsInf(hi, 1) {
		hi = p.cfg.IntegrationBound
	}
	step := (hi - lo) / float64(n-1)
	pts := make([]dist.Point, 0, n)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		pts = append(pts, dist.Point{X: dist.Real(x), Y: dist.Real(f(x))})
	}
	return pts, nil
}

// prepare normalizes both input strings and applies the divergence
// precondition shared by every pipeline entry point.
func (p *Pipeline) prepare(fn, rng string) (src, display string, r dist.Range, err error) {
	if strings.TrimSpace(fn) == "" {
		return "", "", dist.Range{}, core.ErrEmptyFunction
	}
	if strings.TrimSpace(rng) == "" {
		return "", "", dist.Range{}, core.ErrEmptyRange
	}
	src = expression.ForEval(fn)
	display = expression.ForDisplay(fn)
	r = rangetext.Parse(rng)
	if divergesBelow(src, r) {
		return "", "", dist.Range{}, core.NewDivergenceError(fn, rng)
	}
	return src, display, r, nil
}

// divergesBelow flags an exponential-decay expression on a domain unbounded
// below: e^{-cx} blows up as x -> -inf, so the integral cannot converge and
// running the quadrature would only produce a huge meaningless number.
// Squared-argument exponentials (e^{-x^2}) decay in both directions and are
// exempt, which keeps normal densities analyzable on the whole real line.
func divergesBelow(src string, r dist.Range) bool {
	if r.Kind != dist.Continuous || !math.IsInf(r.Min, -1) {
		return false
	}
	return strings.Contains(src, "exp(-") && !strings.Contains(src, "x^2")
}

func supportSummary(values []float64) *dist.SupportSummary {
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	return &dist.SupportSummary{
		Count:  len(values),
		Min:    dist.Real(min),
		Max:    dist.Real(max),
		Mean:   dist.Real(mean),
		Median: dist.Real(median),
	}
}

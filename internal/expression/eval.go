package expression

import (
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Evaluand is a compiled single-variable function ready for repeated
// numeric evaluation. Runtime failures surface as NaN, never as panics.
type Evaluand func(x float64) float64

// Compile turns a normalized evaluable string into an Evaluand. The
// environment supplies the free variable x plus the calculator's function
// vocabulary (exp, fact, ln, sqrt, ...) and the constants e and pi.
func Compile(src string) (Evaluand, error) {
	program, err := expr.Compile(src, expr.Env(env(0)), expr.AsFloat64())
	if err != nil {
		return nil, err
	}
	return func(x float64) float64 {
		return run(program, x)
	}, nil
}

func run(program *vm.Program, x float64) float64 {
	out, err := expr.Run(program, env(x))
	if err != nil {
		return math.NaN()
	}
	f, ok := out.(float64)
	if !ok {
		return math.NaN()
	}
	return f
}

func env(x float64) map[string]interface{} {
	return map[string]interface{}{
		"x":  x,
		"e":  math.E,
		"pi": math.Pi,
		"exp": func(v float64) float64 { return math.Exp(v) },
		"ln":  func(v float64) float64 { return math.Log(v) },
		"log": func(v float64) float64 { return math.Log10(v) },
		"sqrt": func(v float64) float64 {
			return math.Sqrt(v)
		},
		"abs": func(v float64) float64 { return math.Abs(v) },
		"sin": func(v float64) float64 { return math.Sin(v) },
		"cos": func(v float64) float64 { return math.Cos(v) },
		"tan": func(v float64) float64 { return math.Tan(v) },
		// Gamma(v+1) extends the factorial off the integers, which keeps
		// quadrature over factorial-bearing expressions finite.
		"fact": func(v float64) float64 { return math.Gamma(v + 1) },
	}
}

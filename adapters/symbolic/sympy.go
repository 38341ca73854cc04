// Package symbolic adapts the gosymbol computer-algebra kernel to the
// engine's ports.Symbolic interface. The kernel is treated as an external
// collaborator that may fail on any input: every failure path, including a
// panic inside the kernel, collapses to (_, false) so the analysis pipeline
// degrades to numeric-only output.
package symbolic

import (
	gosymbol "github.com/njchilds90/gosymbol"

	"distlab/ports"
)

// Engine wraps gosymbol's rule-based integrator.
type Engine struct{}

// New returns the symbolic engine adapter.
func New() *Engine {
	return &Engine{}
}

var _ ports.Symbolic = (*Engine)(nil)

// Antiderivative parses the normalized evaluable expression, integrates it
// with respect to variable, and returns the LaTeX form of the result.
func (e *Engine) Antiderivative(expr, variable string) (result string, ok bool) {
	defer func() {
		if recover() != nil {
			result, ok = "", false
		}
	}()

	ast, err := parse(expr)
	if err != nil {
		return "", false
	}
	anti, ok := gosymbol.Integrate(ast, variable)
	if !ok || anti == nil {
		return "", false
	}
	return gosymbol.LaTeX(gosymbol.Simplify(anti)), true
}

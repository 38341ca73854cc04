// Package ports defines the interfaces the engine needs from external
// collaborators, keeping the pipeline decoupled from any particular
// implementation.
package ports

// Symbolic is the optional computer-algebra collaborator. Implementations
// take the engine's normalized evaluable expression and the integration
// variable and return a typeset antiderivative, or ok=false when no
// closed form could be derived. Callers must treat absence (a nil port) and
// failure identically: the analysis simply carries no symbolic result.
type Symbolic interface {
	Antiderivative(expr, variable string) (result string, ok bool)
}

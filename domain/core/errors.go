package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrEmptyFunction = errors.New("function expression is empty")
	ErrEmptyRange    = errors.New("range text is empty")

	// Pipeline precondition errors
	ErrDivergentDomain = errors.New("integral diverges on this domain")

	// Parameter errors for the standard distribution models
	ErrInvalidParameter = errors.New("invalid distribution parameter")
)

// NewDivergenceError builds the user-facing guidance message for an
// expression/domain pairing whose integral cannot converge.
func NewDivergenceError(fn, rng string) error {
	return fmt.Errorf("%w: %q grows without bound as x decreases; pair it with a domain bounded below (got %q)", ErrDivergentDomain, fn, rng)
}

func NewParameterError(name string, value float64, reason string) error {
	return fmt.Errorf("%w: %s=%v (%s)", ErrInvalidParameter, name, value, reason)
}

// Error checking helpers
func IsDivergenceError(err error) bool {
	return errors.Is(err, ErrDivergentDomain)
}

func IsParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

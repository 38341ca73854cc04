package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Engine EngineConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// EngineConfig holds the tuning knobs of the numerical engine. The defaults
// match heuristics tuned for rapidly-decaying classroom densities; heavy
// tails may need a larger bound or looser tolerance.
type EngineConfig struct {
	// MassTolerance is how far total probability mass may sit from 1.0
	// before a density is treated as unnormalized.
	MassTolerance float64
	// IntegrationBound is the finite surrogate substituted for infinite
	// integration limits.
	IntegrationBound float64
	// Steps is the Simpson's-rule subdivision count.
	Steps int
	// MidpointTolerance is the closeness required between the midpoint value
	// and 1/(b-a) for the uniform recognition rule.
	MidpointTolerance float64
}

// Load builds configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: envString("PORT", "8080"),
		},
		Engine: EngineConfig{
			MassTolerance:     envFloat("ENGINE_MASS_TOLERANCE", 0.05),
			IntegrationBound:  envFloat("ENGINE_INTEGRATION_BOUND", 100),
			Steps:             envInt("ENGINE_STEPS", 10000),
			MidpointTolerance: envFloat("ENGINE_MIDPOINT_TOLERANCE", 0.01),
		},
	}
}

// DefaultEngine returns the engine knobs with stock defaults, for callers
// that embed the engine without environment configuration.
func DefaultEngine() EngineConfig {
	return EngineConfig{
		MassTolerance:     0.05,
		IntegrationBound:  100,
		Steps:             10000,
		MidpointTolerance: 0.01,
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

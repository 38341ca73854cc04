// Package rangetext classifies a free-form domain string as a discrete value
// set or a continuous interval. Student input is messy, so every rule here
// recovers rather than rejects: the worst outcome is the unbounded
// continuous fallback, never an error.
package rangetext

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"distlab/domain/dist"
)

var (
	whitespace  = regexp.MustCompile(`\s+`)
	nonDiscrete = regexp.MustCompile(`[^0-9,.\-]`)
)

// hasInfinity reports whether the text mentions an infinity token.
func hasInfinity(s string) bool {
	return strings.Contains(s, "inf") || strings.Contains(s, "∞")
}

// Parse turns a raw domain string into a normalized range descriptor.
// Rules run in order, first match wins:
//
//	"a<x<b"          -> bounded interval (either bound may be an infinity token)
//	"x>a"            -> [a, +inf)
//	"x<b"            -> (-inf, b]
//	"0 ... infinity" -> [0, +inf) textual shorthand
//	other inequality/infinity text -> whole real line
//	"v1,v2,..."      -> discrete value set, order and duplicates preserved
//
// A discrete candidate with no parseable values falls back to the whole
// real line.
func Parse(raw string) dist.Range {
	s := strings.ToLower(whitespace.ReplaceAllString(raw, ""))
	s = strings.ReplaceAll(s, "<=", "<")
	s = strings.ReplaceAll(s, ">=", ">")

	if strings.ContainsAny(s, "<>") || hasInfinity(s) {
		return parseContinuous(s)
	}
	return parseDiscrete(s)
}

func parseContinuous(s string) dist.Range {
	switch {
	case strings.Contains(s, "<x<"):
		parts := strings.SplitN(s, "<x<", 2)
		return dist.NewContinuous(
			parseBound(parts[0], math.Inf(-1)),
			parseBound(parts[1], math.Inf(1)),
		)
	case strings.Contains(s, "x>"):
		bound := s[strings.Index(s, "x>")+2:]
		return dist.NewContinuous(parseBound(bound, math.Inf(-1)), math.Inf(1))
	case strings.Contains(s, "x<"):
		bound := s[strings.Index(s, "x<")+2:]
		return dist.NewContinuous(math.Inf(-1), parseBound(bound, math.Inf(1)))
	case hasInfinity(s) && strings.Contains(s, "0"):
		// "0 to infinity" written out in words.
		return dist.NewContinuous(0, math.Inf(1))
	default:
		return dist.Unbounded()
	}
}

// parseBound reads one interval endpoint: a finite number, an infinity token
// (signed by the fallback side), or the fallback when unparsable.
func parseBound(tok string, fallback float64) float64 {
	if hasInfinity(tok) {
		switch {
		case strings.HasPrefix(tok, "-"):
			return math.Inf(-1)
		case strings.HasPrefix(tok, "+"):
			return math.Inf(1)
		default:
			// Unsigned infinity takes the sign of its side of the interval.
			return math.Inf(int(math.Copysign(1, fallback)))
		}
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v
	}
	return fallback
}

func parseDiscrete(s string) dist.Range {
	cleaned := nonDiscrete.ReplaceAllString(s, "")
	var values []float64
	for _, tok := range strings.Split(cleaned, ",") {
		if tok == "" {
			continue
		}
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return dist.Unbounded()
	}
	return dist.NewDiscrete(values)
}

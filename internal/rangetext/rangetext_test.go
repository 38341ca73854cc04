package rangetext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"distlab/domain/dist"
)

func TestParseDiscrete(t *testing.T) {
	r := Parse("1, 2, 3")
	assert.Equal(t, dist.Discrete, r.Kind)
	assert.Equal(t, []float64{1, 2, 3}, r.Values)

	// Order and duplicates preserved, junk tokens dropped.
	r = Parse("5, banana, 2, 2, -1.5")
	assert.Equal(t, []float64{5, 2, 2, -1.5}, r.Values)
}

func TestParseContinuous(t *testing.T) {
	r := Parse("0 < x < 5")
	assert.Equal(t, dist.Continuous, r.Kind)
	assert.Equal(t, 0.0, r.Min)
	assert.Equal(t, 5.0, r.Max)

	r = Parse("2<=x<=7")
	assert.Equal(t, 2.0, r.Min)
	assert.Equal(t, 7.0, r.Max)

	r = Parse("x > 3")
	assert.Equal(t, 3.0, r.Min)
	assert.True(t, math.IsInf(r.Max, 1))

	r = Parse("x < -1")
	assert.True(t, math.IsInf(r.Min, -1))
	assert.Equal(t, -1.0, r.Max)

	r = Parse("-inf < x < inf")
	assert.True(t, math.IsInf(r.Min, -1))
	assert.True(t, math.IsInf(r.Max, 1))

	r = Parse("0<x<infinity")
	assert.Equal(t, 0.0, r.Min)
	assert.True(t, math.IsInf(r.Max, 1))
}

func TestParseTextualShorthand(t *testing.T) {
	r := Parse("from 0 to infinity")
	assert.Equal(t, dist.Continuous, r.Kind)
	assert.Equal(t, 0.0, r.Min)
	assert.True(t, math.IsInf(r.Max, 1))
}

func TestParseFallbacks(t *testing.T) {
	// No parseable content at all falls back to the whole real line.
	for _, raw := range []string{"whatever", "", "x is positive-ish"} {
		r := Parse(raw)
		assert.Equal(t, dist.Continuous, r.Kind, "input %q", raw)
		assert.True(t, math.IsInf(r.Min, -1), "input %q", raw)
		assert.True(t, math.IsInf(r.Max, 1), "input %q", raw)
	}

	// Unparsable bounds default to the widest interval.
	r := Parse("a<x<b")
	assert.True(t, math.IsInf(r.Min, -1))
	assert.True(t, math.IsInf(r.Max, 1))
}

func TestBoundsSwapped(t *testing.T) {
	r := Parse("5<x<2")
	assert.Equal(t, 2.0, r.Min)
	assert.Equal(t, 5.0, r.Max)
}

package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertUnitRange checks that every value is finite and within [0, 1].
func AssertUnitRange(t *testing.T, values []float64, msgAndArgs ...interface{}) {
	t.Helper()

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			assert.Failf(t, "value is not finite", "index %d: %v", i, v)
			assert.Fail(t, "field check failed", msgAndArgs...)
			return
		}
		if v < 0 || v > 1 {
			assert.Failf(t, "value outside [0,1]", "index %d: %v", i, v)
			assert.Fail(t, "field check failed", msgAndArgs...)
			return
		}
	}
}

// AssertNormalized checks that values span exactly [0, 1].
func AssertNormalized(t *testing.T, values []float64, msgAndArgs ...interface{}) {
	t.Helper()

	AssertUnitRange(t, values, msgAndArgs...)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	assert.InDelta(t, 0.0, lo, 1e-12, msgAndArgs...)
	assert.InDelta(t, 1.0, hi, 1e-12, msgAndArgs...)
}

// AssertAllEqual checks that every value equals want within delta.
func AssertAllEqual(t *testing.T, want float64, values []float64, delta float64) {
	t.Helper()

	for i, v := range values {
		if !assert.InDelta(t, want, v, delta, "index %d", i) {
			return
		}
	}
}

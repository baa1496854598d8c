package sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustAlpha(t *testing.T) {
	tests := []struct {
		name     string
		variants int
		c        Correction
		want     float64
	}{
		{"two variants ignore correction", 2, Bonferroni, 0.05},
		{"no correction", 5, NoCorrection, 0.05},
		{"bonferroni divides by comparisons", 5, Bonferroni, 0.0125},
		{"sidak", 3, Sidak, 1 - math.Sqrt(0.95)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, AdjustAlpha(0.05, tc.variants, tc.c), 1e-15)
		})
	}
}

func TestAdjustAlpha_SidakNeverStricterThanBonferroni(t *testing.T) {
	for variants := 3; variants <= 20; variants++ {
		for _, alpha := range []float64{0.001, 0.01, 0.05, 0.1, 0.2} {
			sidak := AdjustAlpha(alpha, variants, Sidak)
			bonf := AdjustAlpha(alpha, variants, Bonferroni)
			assert.GreaterOrEqual(t, sidak, bonf, "alpha=%v variants=%d", alpha, variants)
		}
	}
}

func TestCriticalValues(t *testing.T) {
	// Reference quantiles of the standard normal distribution.
	const (
		z975 = 1.959963984540054
		z95  = 1.6448536269514722
		z90  = 1.2815515655446004
		z80  = 0.8416212335729143
	)
	tests := []struct {
		tt        TestType
		wantAlpha float64
		wantBeta  float64
	}{
		{TwoSided, z975, z80},
		{OneSided, z95, z80},
		{NonInferiority, z95, z80},
		{Equivalence, z95, z90},
	}
	for _, tc := range tests {
		t.Run(tc.tt.String(), func(t *testing.T) {
			za, zb := CriticalValues(tc.tt, 0.05, 0.8)
			assert.InDelta(t, tc.wantAlpha, za, 1e-9)
			assert.InDelta(t, tc.wantBeta, zb, 1e-9)
		})
	}
}

func TestQuantile_OutOfRange_IsNaN(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		assert.True(t, math.IsNaN(quantile(p)), "quantile(%v)", p)
	}
	assert.True(t, math.IsInf(quantile(1), 1))
	assert.True(t, math.IsInf(quantile(0), -1))
}

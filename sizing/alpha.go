package sizing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// AdjustAlpha returns the per-comparison significance level for an experiment
// with the given number of variants (control included). Each treatment is
// compared against the control only, so m = variants-1. With two variants,
// or NoCorrection, alpha is returned unchanged.
func AdjustAlpha(alpha float64, variants int, c Correction) float64 {
	if variants <= 2 {
		return alpha
	}
	m := float64(variants - 1)
	switch c {
	case Bonferroni:
		return alpha / m
	case Sidak:
		return 1.0 - math.Pow(1.0-alpha, 1.0/m)
	default:
		return alpha
	}
}

// CriticalValues returns z_alpha and z_beta for the test type, given the
// already adjusted alpha.
func CriticalValues(tt TestType, alpha, power float64) (zAlpha, zBeta float64) {
	switch tt {
	case Equivalence:
		// TOST: both one-sided tests must reject, so beta is split in two.
		return quantile(1.0 - alpha), quantile((1.0 + power) / 2.0)
	case NonInferiority, OneSided:
		return quantile(1.0 - alpha), quantile(power)
	default:
		return quantile(1.0 - alpha/2.0), quantile(power)
	}
}

// quantile is the standard normal inverse CDF. distuv panics outside [0, 1];
// here such inputs yield NaN so that bad probabilities propagate as
// non-finite sizes.
func quantile(p float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}
	return distuv.UnitNormal.Quantile(p)
}

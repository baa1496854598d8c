package sizing

import "math"

// rateEpsilon bounds clipped rates away from 0 and 1 so that p(1-p) stays positive.
const rateEpsilon = 1e-12

// Params holds the inputs of one sample size calculation.
type Params struct {
	Baseline   float64    `json:"baseline" validate:"gt=0,lte=100"` // fraction in (0, 1], or a percentage in (1, 100]
	Effect     float64    `json:"mde" validate:"ne=0"`              // relative or absolute, per EffectMode
	EffectMode EffectMode `json:"effectMode"`
	Alpha      float64    `json:"alpha" validate:"gt=0,lt=1"`
	Power      float64    `json:"power" validate:"gt=0,lt=1"`
	Variants   int        `json:"variants" validate:"gte=2"` // control included
	BufferPct  float64    `json:"buffer" validate:"gte=0"`
	TestType   TestType   `json:"testType"`
	Correction Correction `json:"correctionMethod"`
}

// DefaultParams returns Params with the conventional statistical settings:
// alpha 0.05, power 0.8, two variants, no buffer, two-sided, no correction,
// relative effect. Baseline and Effect are left zero.
func DefaultParams() Params {
	return Params{
		Alpha:    0.05,
		Power:    0.8,
		Variants: 2,
	}
}

// NormalizeRate reads values above 1 as percentages.
func NormalizeRate(v float64) float64 {
	if v > 1 {
		return v / 100
	}
	return v
}

// Rates returns the normalized baseline rate and the treatment rate implied by
// the effect. Neither is clipped.
func (p Params) Rates() (baseline, treatment float64) {
	baseline = NormalizeRate(p.Baseline)
	return baseline, baseline + p.absoluteEffect(baseline)
}

func (p Params) absoluteEffect(baseline float64) float64 {
	if p.EffectMode == Absolute {
		return p.Effect
	}
	return baseline * p.Effect
}

// RawSampleSize returns the unrounded per-variant sample size, buffer
// included. A zero effect gives +Inf; probabilities outside (0, 1) give NaN
// or nonsensical values.
func RawSampleSize(p Params) float64 {
	baseline, treatment := p.Rates()
	delta := treatment - baseline

	alpha := AdjustAlpha(p.Alpha, p.Variants, p.Correction)
	zAlpha, zBeta := CriticalValues(p.TestType, alpha, p.Power)

	varControl, varTreatment := variances(p.TestType, baseline, treatment)

	n := math.Pow(zAlpha+zBeta, 2) * (varControl + varTreatment) / (delta * delta)
	return n * (1 + p.BufferPct/100)
}

// SampleSize returns the required sample size per variant, rounded up.
// The result is integral, or non-finite for degenerate inputs (see
// RawSampleSize). Use Count to convert it to an integer.
func SampleSize(p Params) float64 {
	return math.Ceil(RawSampleSize(p))
}

// Count converts a SampleSize result to an integer. ok is false for NaN,
// infinities, and values that do not fit in an int64.
func Count(n float64) (count int64, ok bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n >= math.MaxInt64 || n <= math.MinInt64 {
		return 0, false
	}
	return int64(math.Ceil(n)), true
}

func variances(tt TestType, baseline, treatment float64) (varControl, varTreatment float64) {
	b := clipRate(baseline)
	varControl = b * (1 - b)
	if tt.pooledVariance() {
		return varControl, varControl
	}
	t := clipRate(treatment)
	return varControl, t * (1 - t)
}

func clipRate(r float64) float64 {
	return math.Max(rateEpsilon, math.Min(1-rateEpsilon, r))
}

package sizing

import "math"

// Target describes the rates an experiment is sized for, derived from a
// baseline and an MDE given in percent.
type Target struct {
	BaselineRate   float64 // fraction
	TargetRate     float64 // fraction
	RelativeEffect float64 // (target - baseline) / baseline; negative for non-inferiority
}

// NewTarget converts a baseline and an MDE, both in percent, into rates. In
// Relative mode the MDE is a percentage of the baseline; in Absolute mode it
// is in percentage points. Non-inferiority margins are entered as positive
// numbers but describe a decrease, so the target lies below the baseline.
func NewTarget(baselinePct, mdePct float64, mode EffectMode, tt TestType) Target {
	baseline := baselinePct / 100
	mde := mdePct / 100

	direction := 1.0
	if tt == NonInferiority {
		direction = -1.0
	}
	delta := mde
	if mode == Relative {
		delta = baseline * mde
	}
	target := baseline + direction*delta

	var rel float64
	switch {
	case baseline > 0:
		rel = (target - baseline) / baseline
	case target > 0:
		rel = math.Inf(1)
	}
	return Target{BaselineRate: baseline, TargetRate: target, RelativeEffect: rel}
}

// Apply copies the target's rates into base, keeping base's statistical
// settings and effect mode.
func (t Target) Apply(base Params) Params {
	base.Baseline = t.BaselineRate
	if base.EffectMode == Absolute {
		base.Effect = t.TargetRate - t.BaselineRate
	} else {
		base.Effect = t.RelativeEffect
	}
	return base
}

// MDEFromSampleSize returns the smallest effect, in percent, that a test of n
// users per variant can detect under p's statistical settings. p.Baseline
// supplies the baseline rate and p.Effect is ignored. The result is relative
// to the baseline or in percentage points according to p.EffectMode.
//
// One- and two-sided tests solve the unpooled power equation for the
// difference d:
//
//	(n + Z²)·d² + Z²·(2p - 1)·d - 2·Z²·p·(1 - p) = 0
//
// and take the positive root. Non-inferiority and equivalence use the pooled
// closed form d = Z·sqrt(p(1-p))·sqrt(2/n). NaN is returned when no positive
// root exists.
func MDEFromSampleSize(n float64, p Params) float64 {
	unbuffered := n / (1 + p.BufferPct/100)
	baseline := NormalizeRate(p.Baseline)

	alpha := AdjustAlpha(p.Alpha, p.Variants, p.Correction)
	zAlpha, zBeta := CriticalValues(p.TestType, alpha, p.Power)
	z := zAlpha + zBeta

	var d float64
	if p.TestType.pooledVariance() {
		d = z * math.Sqrt(baseline*(1-baseline)) * math.Sqrt(2/unbuffered)
	} else {
		z2 := z * z
		root, ok := SolveQuadratic(unbuffered+z2, z2*(2*baseline-1), -z2*2*baseline*(1-baseline))
		if !ok {
			return math.NaN()
		}
		d = root
	}

	if p.EffectMode == Absolute {
		return d * 100
	}
	return d / baseline * 100
}

// SolveQuadratic returns the first positive root of ax² + bx + c = 0.
// ok is false when the discriminant is negative or neither root is positive.
func SolveQuadratic(a, b, c float64) (root float64, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if r := (-b + sq) / (2 * a); r > 0 {
		return r, true
	}
	if r := (-b - sq) / (2 * a); r > 0 {
		return r, true
	}
	return 0, false
}

package sizing

import "strings"

// TestType selects the critical values and variance rule of the estimator.
// The zero value is TwoSided.
type TestType int

const (
	TwoSided TestType = iota
	OneSided
	NonInferiority
	Equivalence
)

// testTypeNames maps accepted tags to test types. "two-tailed",
// "superiority" and "one-tailed" are aliases used by older scenario files.
var testTypeNames = map[string]TestType{
	"two-sided":       TwoSided,
	"two-tailed":      TwoSided,
	"one-sided":       OneSided,
	"one-tailed":      OneSided,
	"superiority":     OneSided,
	"non-inferiority": NonInferiority,
	"equivalence":     Equivalence,
}

// ParseTestType maps a tag to a TestType. Unrecognized tags return TwoSided
// and ok=false; the caller decides whether that is an error.
func ParseTestType(name string) (tt TestType, ok bool) {
	tt, ok = testTypeNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return TwoSided, false
	}
	return tt, true
}

// IsValidTestType reports whether name is a recognized test type tag.
func IsValidTestType(name string) bool {
	_, ok := ParseTestType(name)
	return ok
}

func (t TestType) String() string {
	switch t {
	case OneSided:
		return "one-sided"
	case NonInferiority:
		return "non-inferiority"
	case Equivalence:
		return "equivalence"
	default:
		return "two-sided"
	}
}

// pooledVariance reports whether both arms use the baseline variance.
// Non-inferiority and equivalence size for the null boundary, where the two
// rates coincide.
func (t TestType) pooledVariance() bool {
	return t == NonInferiority || t == Equivalence
}

// Correction selects the multiple-comparison adjustment applied to alpha when
// more than one treatment is compared against the control.
// The zero value is NoCorrection.
type Correction int

const (
	NoCorrection Correction = iota
	Bonferroni
	Sidak
)

var correctionNames = map[string]Correction{
	"none":       NoCorrection,
	"":           NoCorrection,
	"bonferroni": Bonferroni,
	"sidak":      Sidak,
	"šidák":      Sidak,
}

// ParseCorrection maps a tag to a Correction. Unrecognized tags return
// NoCorrection and ok=false.
func ParseCorrection(name string) (c Correction, ok bool) {
	c, ok = correctionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return NoCorrection, false
	}
	return c, true
}

// IsValidCorrection reports whether name is a recognized correction tag.
func IsValidCorrection(name string) bool {
	_, ok := ParseCorrection(name)
	return ok
}

func (c Correction) String() string {
	switch c {
	case Bonferroni:
		return "bonferroni"
	case Sidak:
		return "sidak"
	default:
		return "none"
	}
}

// EffectMode selects how Params.Effect is read.
// The zero value is Relative.
type EffectMode int

const (
	// Relative: the effect is a fraction of the baseline rate
	// (0.1 on a 5% baseline means 5.5%).
	Relative EffectMode = iota
	// Absolute: the effect is a difference in rate
	// (0.005 on a 5% baseline means 5.5%).
	Absolute
)

// ParseEffectMode maps "relative" or "absolute" to an EffectMode.
// Empty and unrecognized names return Relative; ok is false only for
// unrecognized non-empty names.
func ParseEffectMode(name string) (m EffectMode, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "relative":
		return Relative, true
	case "absolute":
		return Absolute, true
	default:
		return Relative, false
	}
}

func (m EffectMode) String() string {
	if m == Absolute {
		return "absolute"
	}
	return "relative"
}

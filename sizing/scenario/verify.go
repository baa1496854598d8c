package scenario

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/samplesize/sizing"
)

// DefaultTolerance is the relative difference accepted between a computed and
// a reference value.
const DefaultTolerance = 0.01

// Dataset holds reference checks, typically testdata/goldendataset.json.
type Dataset struct {
	Version    string           `json:"version"`
	Tolerance  float64          `json:"tolerance"`
	Regression []RegressionCase `json:"regression"`
	Symmetry   []SymmetryCase   `json:"symmetry"`
}

// RegressionCase is a scenario whose ExpectedSampleSize comes from an external
// reference implementation named by Source.
type RegressionCase struct {
	Scenario
	Source string `json:"source"`
}

// SymmetryCase is an MDE, in percent, that must survive the round trip
// MDE -> sample size -> MDE.
type SymmetryCase struct {
	Name             string  `json:"name"`
	BaselinePct      float64 `json:"baselinePct"`
	MDEPct           float64 `json:"mdePct"`
	EffectMode       string  `json:"effectMode"`
	Alpha            float64 `json:"alpha"`
	Power            float64 `json:"power"`
	Variants         int     `json:"variants"`
	TestType         string  `json:"testType"`
	CorrectionMethod string  `json:"correctionMethod"`
}

// Check kinds.
const (
	KindRegression = "regression"
	KindSymmetry   = "symmetry"
)

// Check is the outcome of one dataset entry.
type Check struct {
	Name   string
	Kind   string
	Want   float64
	Got    float64
	Passed bool
}

// RelDiff returns |want-got| relative to the larger magnitude.
func (c Check) RelDiff() float64 {
	return relDiff(c.Want, c.Got)
}

// Summary aggregates the checks of one Verify call.
type Summary struct {
	Checks []Check
	Passed int
	Failed int
}

// Total returns the number of checks run.
func (s Summary) Total() int { return s.Passed + s.Failed }

// Failures returns the failed checks in dataset order.
func (s Summary) Failures() []Check {
	var out []Check
	for _, c := range s.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// LoadDataset reads a JSON verification dataset.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	for i, rc := range ds.Regression {
		if rc.ExpectedSampleSize == nil {
			return nil, fmt.Errorf("regression[%d] %q: expectedSampleSize is required", i, rc.Name)
		}
	}
	return &ds, nil
}

// Verify recomputes every regression case and every symmetry round trip and
// compares them with the dataset's tolerance (DefaultTolerance when unset).
func Verify(ds *Dataset) Summary {
	tol := ds.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	var sum Summary
	record := func(c Check) {
		if c.Passed {
			sum.Passed++
			logrus.Debugf("%s %q passed: want %v, got %v", c.Kind, c.Name, c.Want, c.Got)
		} else {
			sum.Failed++
			logrus.Warnf("%s %q failed: want %v, got %v (relDiff=%.4f)", c.Kind, c.Name, c.Want, c.Got, c.RelDiff())
		}
		sum.Checks = append(sum.Checks, c)
	}

	for _, rc := range ds.Regression {
		want := math.NaN()
		if rc.ExpectedSampleSize != nil {
			want = float64(*rc.ExpectedSampleSize)
		}
		got := sizing.SampleSize(rc.Params())
		record(Check{Name: rc.Name, Kind: KindRegression, Want: want, Got: got, Passed: AreClose(want, got, tol)})
	}

	for _, sc := range ds.Symmetry {
		got := sc.roundTrip()
		record(Check{Name: sc.Name, Kind: KindSymmetry, Want: sc.MDEPct, Got: got, Passed: AreClose(sc.MDEPct, got, tol)})
	}
	return sum
}

func (sc SymmetryCase) roundTrip() float64 {
	tt, _ := sizing.ParseTestType(sc.TestType)
	c, _ := sizing.ParseCorrection(sc.CorrectionMethod)
	mode, _ := sizing.ParseEffectMode(sc.EffectMode)
	p := sizing.Params{
		EffectMode: mode,
		Alpha:      sc.Alpha,
		Power:      sc.Power,
		Variants:   sc.Variants,
		TestType:   tt,
		Correction: c,
	}
	p = sizing.NewTarget(sc.BaselinePct, sc.MDEPct, mode, tt).Apply(p)
	return sizing.MDEFromSampleSize(sizing.SampleSize(p), p)
}

// AreClose reports whether a and b differ by at most tol relative to the
// larger magnitude. NaN is never close to anything.
func AreClose(a, b, tol float64) bool {
	if a == 0 && b == 0 {
		return true
	}
	d := relDiff(a, b)
	return !math.IsNaN(d) && d <= tol
}

func relDiff(a, b float64) float64 {
	if a == b {
		return 0
	}
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}

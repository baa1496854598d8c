// Package simulate checks a sample size empirically: it draws binomial
// conversion counts for every arm of an experiment, runs the planned test on
// each draw and reports how often the test rejects its null hypothesis.
//
// Control and treatment arms draw from isolated, seeded streams (see
// PartitionedSource), so a run is reproducible from its seed.
package simulate

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/inference-sim/samplesize/sizing"
)

// DefaultTrials is the number of simulated experiments used when Config.Trials is zero.
const DefaultTrials = 2000

// Config describes one power simulation.
type Config struct {
	Params     sizing.Params // design; Effect is the effect the test is sized for
	SampleSize int64         // users per variant
	Trials     int           // simulated experiments; DefaultTrials when zero
	Seed       int64
}

// Result is the outcome of a power simulation.
type Result struct {
	Trials      int     `json:"trials"`
	Comparisons int     `json:"comparisons"` // trials × treatment arms
	Rejections  int     `json:"rejections"`
	Power       float64 `json:"power"`  // Rejections / Comparisons
	StdErr      float64 `json:"stdErr"` // binomial standard error of Power
}

// Run simulates cfg.Trials experiments and returns the empirical power of each
// treatment-versus-control comparison.
//
// One- and two-sided tests draw treatment arms at the target rate. For
// non-inferiority and equivalence the true rates are equal and the test must
// establish that the difference lies within the margin |effect|.
func Run(cfg Config) (Result, error) {
	p := cfg.Params
	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid design: %w", err)
	}
	if cfg.SampleSize <= 0 {
		return Result{}, errors.New("sample size must be > 0")
	}
	trials := cfg.Trials
	if trials == 0 {
		trials = DefaultTrials
	}
	if trials < 0 {
		return Result{}, fmt.Errorf("trials must be > 0 (got %d)", trials)
	}

	baseline, treatment := p.Rates()
	delta := treatment - baseline
	margin := math.Abs(delta)
	trueTreatment := treatment
	if p.TestType == sizing.NonInferiority || p.TestType == sizing.Equivalence {
		trueTreatment = baseline
	}

	alpha := sizing.AdjustAlpha(p.Alpha, p.Variants, p.Correction)
	crit := criticalValue(p.TestType, alpha)
	n := float64(cfg.SampleSize)

	src := NewPartitionedSource(NewKey(cfg.Seed))
	control := distuv.Binomial{N: n, P: baseline, Src: src.ForStream(StreamControl)}
	arms := make([]distuv.Binomial, p.Variants-1)
	for i := range arms {
		arms[i] = distuv.Binomial{N: n, P: trueTreatment, Src: src.ForStream(StreamVariant(i + 1))}
	}

	res := Result{Trials: trials}
	for trial := 0; trial < trials; trial++ {
		pc := control.Rand() / n
		for i := range arms {
			pt := arms[i].Rand() / n
			res.Comparisons++
			if rejects(p.TestType, pc, pt, n, delta, margin, crit) {
				res.Rejections++
			}
		}
	}
	res.Power = float64(res.Rejections) / float64(res.Comparisons)
	res.StdErr = math.Sqrt(res.Power * (1 - res.Power) / float64(res.Comparisons))

	logrus.Debugf("simulated %d trials (%d comparisons) at n=%d: power=%.4f±%.4f",
		trials, res.Comparisons, cfg.SampleSize, res.Power, res.StdErr)
	return res, nil
}

// criticalValue returns the rejection threshold for the test statistic.
func criticalValue(tt sizing.TestType, alpha float64) float64 {
	normal := distuv.UnitNormal
	if tt == sizing.TwoSided {
		return normal.Quantile(1 - alpha/2)
	}
	return normal.Quantile(1 - alpha)
}

// rejects runs one test on observed rates pc (control) and pt (treatment),
// using the unpooled standard error of the difference.
func rejects(tt sizing.TestType, pc, pt, n, delta, margin, crit float64) bool {
	se := math.Sqrt(pc*(1-pc)/n + pt*(1-pt)/n)
	if se == 0 {
		return false
	}
	diff := pt - pc
	switch tt {
	case sizing.OneSided:
		if delta < 0 {
			return -diff/se > crit
		}
		return diff/se > crit
	case sizing.NonInferiority:
		return (diff+margin)/se > crit
	case sizing.Equivalence:
		return (diff+margin)/se > crit && (diff-margin)/se < -crit
	default:
		return math.Abs(diff)/se > crit
	}
}

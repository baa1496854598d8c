// Package scenario evaluates named sample size scenarios and reports them.
//
// A Scenario is the record form of sizing.Params: it keeps the tags exactly
// as written (so reports echo their input) and gains an ExpectedSampleSize
// once Run has computed it.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/samplesize/sizing"
)

// Scenario is one named set of experiment parameters. Baseline is a fraction
// or a percentage (values above 1); MDE is relative to the baseline unless
// EffectMode is "absolute".
type Scenario struct {
	Name               string  `yaml:"name" json:"name"`
	Baseline           float64 `yaml:"baseline" json:"baseline"`
	MDE                float64 `yaml:"mde" json:"mde"`
	EffectMode         string  `yaml:"effectMode,omitempty" json:"effectMode,omitempty"`
	Alpha              float64 `yaml:"alpha" json:"alpha"`
	Power              float64 `yaml:"power" json:"power"`
	Variants           int     `yaml:"variants" json:"variants"`
	Buffer             float64 `yaml:"buffer" json:"buffer"`
	TestType           string  `yaml:"testType" json:"testType"`
	CorrectionMethod   string  `yaml:"correctionMethod" json:"correctionMethod"`
	ExpectedSampleSize *int64  `yaml:"expectedSampleSize" json:"expectedSampleSize"`
}

// File is the top-level structure of a scenario YAML file.
type File struct {
	Version   string     `yaml:"version"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Params converts the scenario to estimator inputs. Unrecognized tags fall
// back to two-sided, no correction and relative effect.
func (s Scenario) Params() sizing.Params {
	tt, _ := sizing.ParseTestType(s.TestType)
	c, _ := sizing.ParseCorrection(s.CorrectionMethod)
	mode, _ := sizing.ParseEffectMode(s.EffectMode)
	return sizing.Params{
		Baseline:   s.Baseline,
		Effect:     s.MDE,
		EffectMode: mode,
		Alpha:      s.Alpha,
		Power:      s.Power,
		Variants:   s.Variants,
		BufferPct:  s.Buffer,
		TestType:   tt,
		Correction: c,
	}
}

// Validate checks the tags and the numeric ranges of the scenario.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !sizing.IsValidTestType(s.TestType) {
		return fmt.Errorf("unknown testType %q; valid: two-sided, one-sided, non-inferiority, equivalence", s.TestType)
	}
	if !sizing.IsValidCorrection(s.CorrectionMethod) {
		return fmt.Errorf("unknown correctionMethod %q; valid: none, bonferroni, sidak", s.CorrectionMethod)
	}
	if _, ok := sizing.ParseEffectMode(s.EffectMode); !ok {
		return fmt.Errorf("unknown effectMode %q; valid: relative, absolute", s.EffectMode)
	}
	return s.Params().Validate()
}

// deprecatedTestTypes are accepted aliases that reports should not spread.
var deprecatedTestTypes = map[string]string{
	"two-tailed":  "two-sided",
	"one-tailed":  "one-sided",
	"superiority": "one-sided",
}

// ValidateAll validates every scenario, naming the first failing one.
// Deprecated test type aliases are accepted with a warning.
func ValidateAll(scenarios []Scenario) error {
	for i, s := range scenarios {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario[%d] %q: %w", i, s.Name, err)
		}
		if canonical, ok := deprecatedTestTypes[strings.ToLower(strings.TrimSpace(s.TestType))]; ok {
			logrus.Warnf("scenario %q: testType %q is an alias; prefer %q", s.Name, s.TestType, canonical)
		}
	}
	return nil
}

// LoadScenarios reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s lists no scenarios", path)
	}
	if err := ValidateAll(f.Scenarios); err != nil {
		return nil, err
	}
	return f.Scenarios, nil
}

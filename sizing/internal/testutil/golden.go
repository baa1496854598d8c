// Package testutil provides shared test infrastructure for the sizing
// packages. It loads the golden dataset and holds the tolerance assertions
// used by sizing/ and sizing/scenario/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Version    string               `json:"version"`
	Tolerance  float64              `json:"tolerance"`
	Regression []GoldenSizeCase     `json:"regression"`
	Symmetry   []GoldenSymmetryCase `json:"symmetry"`
}

// GoldenSizeCase is a sample size computed by an external reference
// implementation (R TrialSize or epiR). Baseline is a fraction and MDE is
// relative to it.
type GoldenSizeCase struct {
	Name               string  `json:"name"`
	Source             string  `json:"source"`
	Baseline           float64 `json:"baseline"`
	MDE                float64 `json:"mde"`
	Alpha              float64 `json:"alpha"`
	Power              float64 `json:"power"`
	Variants           int     `json:"variants"`
	Buffer             float64 `json:"buffer"`
	TestType           string  `json:"testType"`
	CorrectionMethod   string  `json:"correctionMethod"`
	ExpectedSampleSize int64   `json:"expectedSampleSize"`
}

// GoldenSymmetryCase is an MDE that must survive the MDE -> size -> MDE
// round trip. Baseline and MDE are in percent.
type GoldenSymmetryCase struct {
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

// GoldenDatasetPath returns the absolute path of testdata/goldendataset.json.
// The path is resolved relative to this source file: sizing/internal/testutil/ → testdata/.
func GoldenDatasetPath(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	data, err := os.ReadFile(GoldenDatasetPath(t))
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Regression) == 0 {
		t.Fatal("golden dataset has no regression cases")
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

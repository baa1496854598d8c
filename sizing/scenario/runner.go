package scenario

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/samplesize/sizing"
)

// Report formats accepted by WriteReport.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IsValidFormat reports whether name is a supported report format.
func IsValidFormat(name string) bool {
	return name == FormatJSON || name == FormatYAML
}

// Run sizes every scenario and returns copies with ExpectedSampleSize set.
// The input slice is not modified. Scenarios whose size is not finite keep a
// nil ExpectedSampleSize and are logged.
func Run(scenarios []Scenario) []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		size := sizing.SampleSize(s.Params())
		if n, ok := sizing.Count(size); ok {
			s.ExpectedSampleSize = &n
			logrus.Debugf("scenario %q: %d per variant", s.Name, n)
		} else {
			s.ExpectedSampleSize = nil
			logrus.Warnf("scenario %q: sample size is not finite (%v)", s.Name, size)
		}
		out[i] = s
	}
	return out
}

// WriteReport serializes scenarios as indented JSON or YAML. Field order
// follows the Scenario struct, so output is byte-stable for equal input.
func WriteReport(w io.Writer, scenarios []Scenario, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scenarios); err != nil {
			return fmt.Errorf("encoding JSON report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(scenarios); err != nil {
			return fmt.Errorf("encoding YAML report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding YAML report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q; valid: json, yaml", format)
	}
}

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version  string           `yaml:"version"`
	Advanced AdvancedDefaults `yaml:"advanced"`
	Tables   TableDefaults    `yaml:"tables"`
}

// AdvancedDefaults are the statistical settings used when a flag is not set.
// Nil pointers mean "not set in YAML".
type AdvancedDefaults struct {
	Alpha       *float64 `yaml:"alpha"`
	Power       *float64 `yaml:"power"`
	TestType    string   `yaml:"test_type"`
	Correction  string   `yaml:"correction"`
	TrafficFlow *float64 `yaml:"traffic_flow"`
	Buffer      *float64 `yaml:"buffer"`
}

// TableDefaults lists the default rows of the planning tables.
type TableDefaults struct {
	MDEs []float64 `yaml:"mdes"`
	Days []float64 `yaml:"days"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	return &cfg, nil
}

// loadDefaultsIfPresent returns nil without error when the file does not exist,
// so the CLI works from any directory with its built-in flag defaults.
func loadDefaultsIfPresent(path string) (*Config, error) {
	cfg, err := loadDefaultsConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("defaults file %s not found; using flag defaults", path)
		return nil, nil
	}
	return cfg, err
}

// applyAdvancedDefaults copies file defaults into the flag variables the user
// did not set explicitly. Flags the user set always win.
func applyAdvancedDefaults(cmd *cobra.Command, cfg *Config) {
	if cfg == nil {
		return
	}
	adv := cfg.Advanced
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f == nil || f.Changed
	}
	if adv.Alpha != nil && !changed("alpha") {
		alpha = *adv.Alpha
	}
	if adv.Power != nil && !changed("power") {
		power = *adv.Power
	}
	if adv.TestType != "" && !changed("test-type") {
		testType = adv.TestType
	}
	if adv.Correction != "" && !changed("correction") {
		correction = adv.Correction
	}
	if adv.TrafficFlow != nil && !changed("traffic-flow") {
		trafficFlow = *adv.TrafficFlow
	}
	if adv.Buffer != nil && !changed("buffer") {
		bufferPct = *adv.Buffer
	}
	logrus.Debugf("applied defaults: alpha=%v power=%v test-type=%s correction=%s traffic-flow=%v buffer=%v",
		alpha, power, testType, correction, trafficFlow, bufferPct)
}

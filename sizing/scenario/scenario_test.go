package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/samplesize/sizing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarios_ExampleFile(t *testing.T) {
	// GIVEN the shipped example
	path := filepath.Join("..", "..", "examples", "scenarios.yaml")

	// WHEN loaded
	scenarios, err := LoadScenarios(path)
	require.NoError(t, err)

	// THEN every scenario is present and sizes to a finite value
	require.Len(t, scenarios, 4)
	assert.Equal(t, "absolute", scenarios[3].EffectMode)
	for _, s := range Run(scenarios) {
		require.NotNil(t, s.ExpectedSampleSize, s.Name)
		assert.Positive(t, *s.ExpectedSampleSize, s.Name)
	}
}

func TestLoadScenarios_UnknownKey_Rejected(t *testing.T) {
	path := writeFile(t, `
scenarios:
  - name: typo
    baseline: 0.05
    mde: 0.1
    alpah: 0.05
    power: 0.8
    variants: 2
    testType: two-sided
    correctionMethod: none
`)
	_, err := LoadScenarios(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpah")
}

func TestLoadScenarios_InvalidValues_NameTheScenario(t *testing.T) {
	path := writeFile(t, `
scenarios:
  - name: fine
    baseline: 0.05
    mde: 0.1
    alpha: 0.05
    power: 0.8
    variants: 2
    testType: two-sided
    correctionMethod: none
  - name: bad power
    baseline: 0.05
    mde: 0.1
    alpha: 0.05
    power: 1.2
    variants: 2
    testType: two-sided
    correctionMethod: none
`)
	_, err := LoadScenarios(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario[1] "bad power"`)
	assert.Contains(t, err.Error(), "power")
}

func TestLoadScenarios_Empty(t *testing.T) {
	_, err := LoadScenarios(writeFile(t, "version: \"1\"\nscenarios: []\n"))
	require.Error(t, err)
}

func TestLoadScenarios_MissingFile(t *testing.T) {
	_, err := LoadScenarios(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scenario file")
}

func TestScenario_Validate_Tags(t *testing.T) {
	base := Builtin()[0]

	bad := base
	bad.TestType = "three-sided"
	assert.ErrorContains(t, bad.Validate(), "testType")

	bad = base
	bad.CorrectionMethod = "holm"
	assert.ErrorContains(t, bad.Validate(), "correctionMethod")

	bad = base
	bad.EffectMode = "percent"
	assert.ErrorContains(t, bad.Validate(), "effectMode")

	bad = base
	bad.Name = ""
	assert.ErrorContains(t, bad.Validate(), "name")

	alias := base
	alias.TestType = "two-tailed"
	assert.NoError(t, alias.Validate())
}

func TestScenario_Params_FallsBackOnUnknownTags(t *testing.T) {
	s := Scenario{Name: "x", Baseline: 0.05, MDE: 0.1, Alpha: 0.05, Power: 0.8, Variants: 3,
		TestType: "bayesian", CorrectionMethod: "holm", EffectMode: "weird"}
	p := s.Params()
	assert.Equal(t, sizing.TwoSided, p.TestType)
	assert.Equal(t, sizing.NoCorrection, p.Correction)
	assert.Equal(t, sizing.Relative, p.EffectMode)
}

func TestValidateAll_AliasWarning_IgnoresCase(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	// GIVEN scenarios using deprecated aliases in mixed case and padding
	base := Builtin()[0]
	upper, padded, canonical := base, base, base
	upper.TestType = "Superiority"
	padded.TestType = " two-tailed "
	canonical.TestType = "one-sided"

	// WHEN validated
	require.NoError(t, ValidateAll([]Scenario{upper, padded, canonical}))

	// THEN both aliases are reported and the canonical name is not
	var warnings []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings = append(warnings, e.Message)
		}
	}
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], `"Superiority"`)
	assert.Contains(t, warnings[0], `prefer "one-sided"`)
	assert.Contains(t, warnings[1], `prefer "two-sided"`)
}

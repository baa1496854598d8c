package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSimulate(t *testing.T, args ...string) simulateResult {
	t.Helper()
	out, err := runCLI(t, append([]string{"simulate", "--output", "json"}, args...)...)
	require.NoError(t, err)
	var res simulateResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	return res
}

func TestSimulate_ComputedSizeReachesPower(t *testing.T) {
	// GIVEN the computed size for a 5% baseline and 10% MDE
	res := runSimulate(t, "--baseline", "5", "--mde", "10", "--trials", "1000")

	// THEN the simulated power is near the 80% target
	assert.Equal(t, int64(31231), res.SampleSizePerVariant)
	assert.Equal(t, 1000, res.Trials)
	assert.InDelta(t, 0.8, res.Power, 0.06)
	assert.Equal(t, int64(42), res.Seed)
}

func TestSimulate_SameSeed_SameResult(t *testing.T) {
	// GIVEN two runs with the same --seed
	r1 := runSimulate(t, "--baseline", "5", "--mde", "10", "--trials", "200", "--seed", "100")
	r2 := runSimulate(t, "--baseline", "5", "--mde", "10", "--trials", "200", "--seed", "100")

	// THEN the simulated experiments are identical
	assert.Equal(t, r1, r2)
}

func TestSimulate_ExplicitSampleSize(t *testing.T) {
	res := runSimulate(t, "--baseline", "5", "--mde", "10", "--sample-size", "5000", "--trials", "500")
	assert.Equal(t, int64(5000), res.SampleSizePerVariant)
	assert.Less(t, res.Power, 0.5)
}

func TestSimulate_InvalidTrials(t *testing.T) {
	_, err := runCLI(t, "simulate", "--baseline", "5", "--trials", "-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trials")
}

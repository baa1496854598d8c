package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate_Accepts(t *testing.T) {
	require.NoError(t, params(0.05, 0.1).Validate())
	require.NoError(t, params(5, 0.1).Validate(), "percentage baseline")
	require.NoError(t, params(0.1, -0.1, func(p *Params) { p.TestType = NonInferiority }).Validate())
}

func TestParams_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		p       Params
		wantMsg string
	}{
		{"zero baseline", params(0, 0.1), "baseline"},
		{"baseline above 100%", params(120, 0.1), "baseline"},
		{"zero effect", params(0.05, 0), "mde"},
		{"alpha of 1", params(0.05, 0.1, func(p *Params) { p.Alpha = 1 }), "alpha"},
		{"power of 0", params(0.05, 0.1, func(p *Params) { p.Power = 0 }), "power"},
		{"one variant", params(0.05, 0.1, func(p *Params) { p.Variants = 1 }), "variants"},
		{"negative buffer", params(0.05, 0.1, func(p *Params) { p.BufferPct = -5 }), "buffer"},
		{"treatment above 1", params(0.8, 0.5), "treatment rate"},
		{"treatment below 0", params(0.05, -0.1, func(p *Params) { p.EffectMode = Absolute }), "treatment rate"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestParams_Validate_ReportsEveryField(t *testing.T) {
	p := params(0.05, 0.1, func(p *Params) {
		p.Alpha = 2
		p.Power = -1
	})
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha: must satisfy < 1")
	assert.Contains(t, err.Error(), "power: must satisfy > 0")
}

func TestParams_ValidateSettings_IgnoresEffect(t *testing.T) {
	// GIVEN a design whose effect is missing or implies a rate above 1
	for _, effect := range []float64{0, 5} {
		p := params(0.5, effect)

		// THEN only the statistical settings are checked
		assert.NoError(t, p.ValidateSettings())
		assert.Error(t, p.Validate())
	}

	bad := params(0.5, 0, func(p *Params) { p.Variants = 1 })
	assert.ErrorContains(t, bad.ValidateSettings(), "variants")
}

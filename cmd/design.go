package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/samplesize/sizing"
)

// design is the experiment described by the command-line flags after
// defaults.yaml has been applied.
type design struct {
	params  sizing.Params
	target  sizing.Target
	traffic sizing.Traffic
	config  *Config
}

// resolveDesign applies defaults.yaml to unset flags, then turns the flags into
// validated estimator inputs. Unknown enum names are rejected here rather than
// falling back, so a typo on the command line never changes the test silently.
// withEffect is false for commands that solve for the effect; --mde is then
// not checked.
func resolveDesign(cmd *cobra.Command, withEffect bool) (*design, error) {
	if baselinePct <= 0 || baselinePct > 100 {
		return nil, fmt.Errorf("--baseline must be a percentage in (0, 100] (got %v)", baselinePct)
	}
	allocationPct, err := cmd.Flags().GetFloat64Slice("allocation")
	if err != nil {
		return nil, err
	}

	cfg, err := loadDefaultsIfPresent(defaultsFilePath)
	if err != nil {
		return nil, err
	}
	applyAdvancedDefaults(cmd, cfg)

	tt, ok := sizing.ParseTestType(testType)
	if !ok {
		return nil, fmt.Errorf("unknown --test-type %q; valid options: two-sided, one-sided, non-inferiority, equivalence", testType)
	}
	corr, ok := sizing.ParseCorrection(correction)
	if !ok {
		return nil, fmt.Errorf("unknown --correction %q; valid options: none, bonferroni, sidak", correction)
	}
	mode, ok := sizing.ParseEffectMode(mdeMode)
	if !ok {
		return nil, fmt.Errorf("unknown --mde-mode %q; valid options: relative, absolute", mdeMode)
	}

	params := sizing.DefaultParams()
	params.EffectMode = mode
	params.Alpha = alpha
	params.Power = power
	params.Variants = variants
	params.BufferPct = bufferPct
	params.TestType = tt
	params.Correction = corr

	target := sizing.NewTarget(baselinePct, mdePct, mode, tt)
	if withEffect && (target.TargetRate < 0 || target.TargetRate > 1) {
		return nil, fmt.Errorf("--mde %v moves the %v%% baseline to a target rate of %.4g%%, outside [0, 100]",
			mdePct, baselinePct, target.TargetRate*100)
	}
	params = target.Apply(params)
	validate := params.Validate
	if !withEffect {
		validate = params.ValidateSettings
	}
	if err := validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment design: %w", err)
	}

	traffic := sizing.Traffic{DailyVisitors: visitors, FlowPct: trafficFlow}
	for _, share := range allocationPct {
		traffic.Allocation = append(traffic.Allocation, share/100)
	}
	if err := traffic.Validate(variants); err != nil {
		return nil, fmt.Errorf("invalid traffic settings: %w", err)
	}

	logrus.Debugf("design: %+v traffic: %+v", params, traffic)
	return &design{params: params, target: target, traffic: traffic, config: cfg}, nil
}

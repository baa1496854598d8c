package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/samplesize/sizing"
)

var (
	mdeSampleSize float64 // Users per variant for `mde`
	mdeDays       float64 // Experiment length in days for `mde`
)

type mdeResult struct {
	BaselineRate         float64 `json:"baselineRate"`
	SampleSizePerVariant float64 `json:"sampleSizePerVariant"`
	Days                 float64 `json:"days,omitempty"`
	MDEPct               float64 `json:"mdePct"`
	EffectMode           string  `json:"effectMode"`
	TestType             string  `json:"testType"`
}

// mdeCmd inverts the estimator: given a sample size, or a number of days of
// traffic, it reports the smallest detectable effect
var mdeCmd = &cobra.Command{
	Use:   "mde",
	Short: "Compute the minimum detectable effect for a sample size or duration",
	Example: `  samplesize mde --baseline 5 --sample-size 30000
  samplesize mde --baseline 5 --days 14 --visitors 10000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bySize := cmd.Flags().Changed("sample-size")
		byDays := cmd.Flags().Changed("days")
		if bySize == byDays {
			return errors.New("exactly one of --sample-size or --days is required")
		}

		d, err := resolveDesign(cmd, false)
		if err != nil {
			return err
		}

		n := mdeSampleSize
		if byDays {
			if mdeDays <= 0 {
				return fmt.Errorf("--days must be > 0 (got %v)", mdeDays)
			}
			if d.traffic.Effective() <= 0 {
				return errors.New("--days needs --visitors > 0")
			}
			n = sizing.SampleSizeForDays(mdeDays, d.params.Variants, d.traffic)
		}
		if n <= 0 {
			return fmt.Errorf("sample size must be > 0 (got %v)", n)
		}

		mde := sizing.MDEFromSampleSize(n, d.params)
		if math.IsNaN(mde) || math.IsInf(mde, 0) {
			return fmt.Errorf("no detectable effect exists for %v users per variant", n)
		}
		logrus.Infof("MDE for n=%.0f at baseline %.4f: %.4f%%", n, d.target.BaselineRate, mde)

		res := mdeResult{
			BaselineRate:         d.target.BaselineRate,
			SampleSizePerVariant: n,
			MDEPct:               mde,
			EffectMode:           d.params.EffectMode.String(),
			TestType:             d.params.TestType.String(),
		}
		if byDays {
			res.Days = mdeDays
		}

		out := cmd.OutOrStdout()
		if outputFormat == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		unit := "% relative to baseline"
		if d.params.EffectMode == sizing.Absolute {
			unit = " percentage points"
		}
		fmt.Fprintf(out, "Minimum detectable effect: %.2f%s\n", mde, unit)
		fmt.Fprintf(out, "Sample size per variant:   %s\n", humanize.Comma(int64(math.Round(n))))
		if byDays {
			fmt.Fprintf(out, "Duration:                  %s\n", sizing.FormatDuration(int64(math.Ceil(mdeDays))))
		}
		return nil
	},
}

func init() {
	addDesignFlags(mdeCmd)
	mdeCmd.Flags().Float64Var(&mdeSampleSize, "sample-size", 0, "Users per variant")
	mdeCmd.Flags().Float64Var(&mdeDays, "days", 0, "Experiment length in days (requires --visitors)")
	mdeCmd.Flags().StringVar(&outputFormat, "output", "text", "Output format: text or json")

	rootCmd.AddCommand(mdeCmd)
}

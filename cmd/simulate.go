package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/inference-sim/samplesize/sizing"
	"github.com/inference-sim/samplesize/sizing/simulate"
)

var (
	simSampleSize int64 // Users per variant; computed when unset
	simTrials     int   // Number of simulated experiments
	seed          int64 // Seed for the binomial draws
)

type simulateResult struct {
	SampleSizePerVariant int64   `json:"sampleSizePerVariant"`
	TargetPower          float64 `json:"targetPower"`
	Seed                 int64   `json:"seed"`
	simulate.Result
}

// simulateCmd checks the computed (or a given) sample size by simulation
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Estimate the power of a design by simulating experiments",
	Example: `  samplesize simulate --baseline 5 --mde 10
  samplesize simulate --baseline 5 --mde 10 --sample-size 20000 --trials 5000 --seed 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDesign(cmd, true)
		if err != nil {
			return err
		}

		n := simSampleSize
		if !cmd.Flags().Changed("sample-size") {
			var ok bool
			n, ok = sizing.Count(sizing.SampleSize(d.params))
			if !ok {
				return fmt.Errorf("sample size is not finite; check the baseline and MDE")
			}
		}

		res, err := simulate.Run(simulate.Config{Params: d.params, SampleSize: n, Trials: simTrials, Seed: seed})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if outputFormat == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(simulateResult{SampleSizePerVariant: n, TargetPower: d.params.Power, Seed: seed, Result: res})
		}
		fmt.Fprintf(out, "Sample size per variant: %s\n", humanize.Comma(n))
		fmt.Fprintf(out, "Simulated power:         %.1f%% ± %.1f%% (target %.0f%%)\n", res.Power*100, res.StdErr*100, d.params.Power*100)
		fmt.Fprintf(out, "Comparisons:             %s rejected of %s\n", humanize.Comma(int64(res.Rejections)), humanize.Comma(int64(res.Comparisons)))
		return nil
	},
}

func init() {
	addDesignFlags(simulateCmd)
	simulateCmd.Flags().Int64Var(&simSampleSize, "sample-size", 0, "Users per variant (default: the computed sample size)")
	simulateCmd.Flags().IntVar(&simTrials, "trials", simulate.DefaultTrials, "Number of simulated experiments")
	simulateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the simulated conversions")
	simulateCmd.Flags().StringVar(&outputFormat, "output", "text", "Output format: text or json")

	rootCmd.AddCommand(simulateCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/samplesize/sizing"
)

var (
	logLevel         string // Log verbosity level
	defaultsFilePath string // Path to defaults.yaml

	// Experiment design flags shared by size, mde and table
	baselinePct   float64   // Baseline conversion rate, percent
	mdePct        float64   // Minimum detectable effect, percent
	mdeMode       string    // "relative" or "absolute"
	alpha         float64   // Significance level
	power         float64   // Statistical power
	variants      int       // Number of variants, control included
	bufferPct     float64   // Sample size inflation, percent
	testType      string    // two-sided, one-sided, non-inferiority, equivalence
	correction    string    // none, bonferroni, sidak
	visitors      float64   // Daily visitors
	trafficFlow   float64   // Share of visitors entering the experiment, percent

	outputFormat string // text or json
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:          "samplesize",
	Short:        "Sample size and duration calculator for A/B tests on conversion rates",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// sizeResult is the JSON form of the size command's output.
type sizeResult struct {
	BaselineRate         float64 `json:"baselineRate"`
	TargetRate           float64 `json:"targetRate"`
	TestType             string  `json:"testType"`
	CorrectionMethod     string  `json:"correctionMethod"`
	AdjustedAlpha        float64 `json:"adjustedAlpha"`
	Power                float64 `json:"power"`
	Variants             int     `json:"variants"`
	SampleSizePerVariant int64   `json:"sampleSizePerVariant"`
	TotalSampleSize      int64   `json:"totalSampleSize"`
	DurationDays         int64   `json:"durationDays,omitempty"`
	Duration             string  `json:"duration,omitempty"`
}

// sizeCmd computes the sample size for the experiment described by the flags
var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Compute the required sample size per variant",
	Example: `  samplesize size --baseline 5 --mde 10
  samplesize size --baseline 12 --mde 1 --mde-mode absolute --variants 3 --correction sidak --visitors 20000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDesign(cmd, true)
		if err != nil {
			return err
		}

		size := sizing.SampleSize(d.params)
		n, ok := sizing.Count(size)
		if !ok {
			return fmt.Errorf("sample size is not finite (%v); check the baseline and MDE", size)
		}
		logrus.Infof("Sized %s test: baseline=%.4f target=%.4f n=%d", d.params.TestType, d.target.BaselineRate, d.target.TargetRate, n)

		res := sizeResult{
			BaselineRate:         d.target.BaselineRate,
			TargetRate:           d.target.TargetRate,
			TestType:             d.params.TestType.String(),
			CorrectionMethod:     d.params.Correction.String(),
			AdjustedAlpha:        sizing.AdjustAlpha(d.params.Alpha, d.params.Variants, d.params.Correction),
			Power:                d.params.Power,
			Variants:             d.params.Variants,
			SampleSizePerVariant: n,
			TotalSampleSize:      n * int64(d.params.Variants),
		}
		if d.traffic.Effective() > 0 {
			res.DurationDays = sizing.Duration(size, d.params.Variants, d.traffic)
			res.Duration = sizing.FormatDuration(res.DurationDays)
		}
		return writeSizeResult(cmd, res)
	},
}

func writeSizeResult(cmd *cobra.Command, res sizeResult) error {
	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(out, "Sample size per variant: %s\n", humanize.Comma(res.SampleSizePerVariant))
	fmt.Fprintf(out, "Total sample size:       %s (%d variants)\n", humanize.Comma(res.TotalSampleSize), res.Variants)
	fmt.Fprintf(out, "Baseline rate:           %.2f%%\n", res.BaselineRate*100)
	fmt.Fprintf(out, "Target rate:             %.2f%%\n", res.TargetRate*100)
	fmt.Fprintf(out, "Test:                    %s, correction %s, adjusted alpha %.4g, power %.2f\n",
		res.TestType, res.CorrectionMethod, res.AdjustedAlpha, res.Power)
	if res.Duration != "" {
		fmt.Fprintf(out, "Duration:                %s days (%s)\n", humanize.Comma(res.DurationDays), res.Duration)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addDesignFlags registers the experiment design flags on c.
func addDesignFlags(c *cobra.Command) {
	c.Flags().Float64Var(&baselinePct, "baseline", 0, "Baseline conversion rate in percent (e.g. 5 for 5%)")
	c.Flags().Float64Var(&mdePct, "mde", 10, "Minimum detectable effect in percent (relative to baseline, or points with --mde-mode absolute)")
	c.Flags().StringVar(&mdeMode, "mde-mode", "relative", "How --mde is read: relative or absolute")
	c.Flags().Float64Var(&alpha, "alpha", 0.05, "Significance level")
	c.Flags().Float64Var(&power, "power", 0.8, "Statistical power")
	c.Flags().IntVar(&variants, "variants", 2, "Number of variants, control included")
	c.Flags().Float64Var(&bufferPct, "buffer", 0, "Inflate the sample size by this percentage")
	c.Flags().StringVar(&testType, "test-type", "two-sided", "Test type: two-sided, one-sided, non-inferiority, equivalence")
	c.Flags().StringVar(&correction, "correction", "none", "Multiple comparison correction: none, bonferroni, sidak")
	c.Flags().Float64Var(&visitors, "visitors", 0, "Daily visitors (0 = skip duration)")
	c.Flags().Float64Var(&trafficFlow, "traffic-flow", 100, "Percentage of visitors entering the experiment")
	c.Flags().Float64Slice("allocation", nil, "Comma-separated per-variant traffic shares in percent (default: equal split)")
	c.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")
	_ = c.MarkFlagRequired("baseline")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addDesignFlags(sizeCmd)
	sizeCmd.Flags().StringVar(&outputFormat, "output", "text", "Output format: text or json")

	// Attach `size` as a subcommand to `root`
	rootCmd.AddCommand(sizeCmd)
}

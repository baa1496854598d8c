package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inference-sim/samplesize/sizing/scenario"
)

var verifyDataset string // Path to the reference dataset

// verifyCmd checks the estimator against a reference dataset and exits
// non-zero when any check fails
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check computed sample sizes and MDE round trips against a reference dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := scenario.LoadDataset(verifyDataset)
		if err != nil {
			return err
		}
		sum := scenario.Verify(ds)

		out := cmd.OutOrStdout()
		for _, c := range sum.Failures() {
			fmt.Fprintf(out, "FAIL %-10s %-50q want %-12.6g got %-12.6g relDiff %.4f\n", c.Kind, c.Name, c.Want, c.Got, c.RelDiff())
		}
		fmt.Fprintf(out, "%d/%d checks passed\n", sum.Passed, sum.Total())
		if sum.Failed > 0 {
			return fmt.Errorf("%d of %d checks failed", sum.Failed, sum.Total())
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDataset, "dataset", "testdata/goldendataset.json", "Reference dataset (JSON)")

	rootCmd.AddCommand(verifyCmd)
}

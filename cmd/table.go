package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/samplesize/sizing"
)

var tableFormat string // table or csv

// tableCmd groups the planning tables
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print planning tables over a range of MDEs or durations",
}

// tableMDECmd prints sample size and duration for each MDE
var tableMDECmd = &cobra.Command{
	Use:     "mde",
	Short:   "Sample size and duration for a range of MDEs",
	Example: `  samplesize table mde --baseline 5 --visitors 10000 --mdes 5,10,20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDesign(cmd, false)
		if err != nil {
			return err
		}
		mdes, err := cmd.Flags().GetFloat64Slice("mdes")
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("mdes") && d.config != nil && len(d.config.Tables.MDEs) > 0 {
			mdes = d.config.Tables.MDEs
		}
		return writeGrid(cmd.OutOrStdout(), mdeTable(d, mdes), tableFormat)
	},
}

// tableDaysCmd prints the sample size collected and the MDE reachable for each duration
var tableDaysCmd = &cobra.Command{
	Use:     "days",
	Short:   "Sample size and MDE for a range of experiment durations",
	Example: `  samplesize table days --baseline 5 --visitors 10000 --days 7,14,28`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDesign(cmd, false)
		if err != nil {
			return err
		}
		if d.traffic.Effective() <= 0 {
			return errors.New("table days needs --visitors > 0")
		}
		days, err := cmd.Flags().GetFloat64Slice("days")
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("days") && d.config != nil && len(d.config.Tables.Days) > 0 {
			days = d.config.Tables.Days
		}
		return writeGrid(cmd.OutOrStdout(), daysTable(d, days), tableFormat)
	},
}

// mdeTable builds one row per MDE. Rows whose design is invalid or whose size
// is not finite show n/a.
func mdeTable(d *design, mdes []float64) grid {
	g := grid{headers: []string{"MDE", "Target rate", "Per variant", "Total"}}
	withDuration := d.traffic.Effective() > 0
	if withDuration {
		g.headers = append(g.headers, "Days", "Duration")
	}
	for _, m := range mdes {
		target := sizing.NewTarget(baselinePct, m, d.params.EffectMode, d.params.TestType)
		p := target.Apply(d.params)
		row := []string{formatMDE(m, p.EffectMode), formatPct(target.TargetRate * 100)}

		size := sizing.SampleSize(p)
		n, ok := sizing.Count(size)
		if err := p.Validate(); err != nil || !ok {
			logrus.Debugf("table row mde=%v skipped: valid=%v finite=%v", m, err == nil, ok)
			row = append(row, notAvailable, notAvailable)
			if withDuration {
				row = append(row, notAvailable, notAvailable)
			}
			g.rows = append(g.rows, row)
			continue
		}
		row = append(row, humanize.Comma(n), humanize.Comma(n*int64(p.Variants)))
		if withDuration {
			days := sizing.Duration(size, p.Variants, d.traffic)
			row = append(row, humanize.Comma(days), sizing.FormatDuration(days))
		}
		g.rows = append(g.rows, row)
	}
	return g
}

// daysTable builds one row per duration.
func daysTable(d *design, days []float64) grid {
	g := grid{headers: []string{"Days", "Duration", "Per variant", "Total", "MDE"}}
	for _, length := range days {
		n := sizing.SampleSizeForDays(length, d.params.Variants, d.traffic)
		row := []string{
			strconv.FormatFloat(length, 'f', -1, 64),
			sizing.FormatDuration(int64(math.Ceil(length))),
			humanize.Comma(int64(math.Floor(n))),
			humanize.Comma(int64(math.Floor(n)) * int64(d.params.Variants)),
		}
		mde := sizing.MDEFromSampleSize(n, d.params)
		if n <= 0 || math.IsNaN(mde) || math.IsInf(mde, 0) {
			row = append(row, notAvailable)
		} else {
			row = append(row, formatMDE(mde, d.params.EffectMode))
		}
		g.rows = append(g.rows, row)
	}
	return g
}

func formatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func formatMDE(v float64, mode sizing.EffectMode) string {
	if mode == sizing.Absolute {
		return fmt.Sprintf("%.2f pp", v)
	}
	return formatPct(v)
}

func init() {
	for _, c := range []*cobra.Command{tableMDECmd, tableDaysCmd} {
		addDesignFlags(c)
		c.Flags().StringVar(&tableFormat, "format", tableFormatText, "Output format: table or csv")
	}
	// Slice flags are read with GetFloat64Slice rather than bound to package variables.
	tableMDECmd.Flags().Float64Slice("mdes", []float64{5, 10, 15, 20, 25}, "Comma-separated MDEs in percent")
	tableDaysCmd.Flags().Float64Slice("days", []float64{7, 14, 30, 60, 90}, "Comma-separated experiment lengths in days")

	tableCmd.AddCommand(tableMDECmd, tableDaysCmd)
	rootCmd.AddCommand(tableCmd)
}

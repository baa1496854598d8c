package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/samplesize/sizing/scenario"
)

var (
	scenariosFrom   string // Optional scenario YAML replacing the built-in set
	scenariosFormat string // Report format: json or yaml
)

// scenariosCmd sizes a fixed set of named scenarios and prints the report
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Size the built-in (or a YAML-defined) set of scenarios and print a report",
	Example: `  samplesize scenarios
  samplesize scenarios --format yaml
  samplesize scenarios --from examples/scenarios.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !scenario.IsValidFormat(scenariosFormat) {
			return fmt.Errorf("unknown --format %q; valid options: json, yaml", scenariosFormat)
		}

		set := scenario.Builtin()
		if scenariosFrom != "" {
			loaded, err := scenario.LoadScenarios(scenariosFrom)
			if err != nil {
				return err
			}
			set = loaded
			logrus.Infof("Loaded %d scenarios from %s", len(set), scenariosFrom)
		}

		report := scenario.Run(set)
		return scenario.WriteReport(cmd.OutOrStdout(), report, scenariosFormat)
	},
}

func init() {
	scenariosCmd.Flags().StringVar(&scenariosFrom, "from", "", "Scenario YAML file (default: built-in scenarios)")
	scenariosCmd.Flags().StringVar(&scenariosFormat, "format", scenario.FormatJSON, "Report format: json or yaml")

	rootCmd.AddCommand(scenariosCmd)
}

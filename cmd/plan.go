package cmd

import (
	"github.com/flavoris/genomancer/internal/plan"
	"github.com/spf13/cobra"
)

// planCmd is for searching out a sequence of digests and ligations that
// assembles a target construct
var planCmd = &cobra.Command{
	Use:                        "plan [spec]",
	Short:                      "Plan the cloning steps that assemble a target construct",
	Run:                        plan.PlanCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Search for the cheapest series of digests and ligations that turns a
vector and its inserts into the target construct. The cloning spec is a
JSON or YAML file naming the vector, inserts, target part order and any
enzyme constraints.

Plans are ranked by a complexity score. Lower is better.`,
	Example: "  genomancer plan cloning.json --protocol --out plan.json",
}

// set flags
func init() {
	RootCmd.AddCommand(planCmd)

	planCmd.Flags().StringP("spec", "p", "", "cloning spec file <JSON/YAML>")
	planCmd.Flags().BoolP("protocol", "r", false, "print a step-by-step bench protocol")
	planCmd.Flags().StringP("out", "o", "", "output file name for the plan <JSON>")
	planCmd.Flags().IntP("design-overhangs", "n", 0, "design Golden Gate overhangs for this many junctions")
}

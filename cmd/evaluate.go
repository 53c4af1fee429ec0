package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/prioritize/core"
)

// evaluateCmd runs the full evaluation pipeline over options and scenarios.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [input-path]",
	Short: "Score and rank options using the computed priority weights.",
	Long: `Run the full pipeline: calculate the priority weights, rescale the raw
quantification results onto the shared score range, weigh them per
standpoint and overall, and place the summed option totals into rating
bins.

The input must carry the scoring and score_range tables alongside the
comparison tables.

Examples:
  # Rank options across all scenarios and standpoints
  prioritize evaluate inputs.xlsx

  # Show the scored results too
  prioritize evaluate inputs.xlsx --detail

  # Five bins spanning zero to the best total
  prioritize evaluate inputs.xlsx --bins 5 --bin-labels e,d,c,b,a --zero-floor`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		executePipeline(core.ExecuteEvaluate, "Cannot evaluate options")
	},
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/prioritize/core"
	"github.com/huangsam/prioritize/internal/contract"
)

// executePipeline runs a pipeline mode and exits on failure.
func executePipeline(executeFunc core.ExecutorFunc, failure string) {
	if err := executeFunc(rootCtx, cfg); err != nil {
		contract.LogFatal(failure, err)
	}
}

// weightsCmd calculates priority weights from pairwise comparison tables.
var weightsCmd = &cobra.Command{
	Use:   "weights [input-path]",
	Short: "Calculate priority weights from pairwise comparison tables.",
	Long: `Process every comparison table in the input, check each matrix for
rating consistency, and compile the per-standpoint and overall priority
weights across the three hierarchy levels.

The input is either an .xlsx workbook with one sheet per table or a
directory of CSV files with one file per table.

Examples:
  # Weights from a workbook
  prioritize weights inputs.xlsx

  # Weights from a directory of CSV tables, with scores shown
  prioritize weights ./tables --detail

  # Loosen the consistency threshold and export as JSON
  prioritize weights inputs.xlsx --threshold 0.6 --output json

  # Persist the computed weights in a local SQLite store
  prioritize weights inputs.xlsx --store-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		executePipeline(core.ExecuteWeights, "Cannot calculate weights")
	},
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/prioritize/internal/contract"
	"github.com/huangsam/prioritize/internal/parquet"
	"github.com/huangsam/prioritize/schema"
)

// PrintEvaluation outputs the evaluation results, dispatching based on the output format configured.
func PrintEvaluation(result *schema.EvaluationResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEvaluationCSV(w, result, fmtFloat)
		}, "CSV")
	case schema.ParquetOut:
		return parquet.WriteEvaluationFile(cfg.OutputFile, result)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEvaluationTables(w, result, cfg, fmtFloat, duration)
		}, "table")
	}
}

// writeEvaluationCSV writes every ranked option in long form. Overall rows
// carry an empty standpoint.
func writeEvaluationCSV(w io.Writer, result *schema.EvaluationResult, fmtFloat func(float64) string) error {
	cats := result.Weights.Categories
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{"Scenario", cats.Level2, "Option", "Weighted Score", "Bin"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rows := range [][]schema.RankedOption{result.PerStandpoint, result.Overall} {
		for _, r := range rows {
			row := []string{r.Scenario, r.Standpoint, r.Option, fmtFloat(r.Total), r.Bin}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}
	return nil
}

// writeEvaluationTables generates and writes the human-readable tables.
func writeEvaluationTables(w io.Writer, result *schema.EvaluationResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	cats := result.Weights.Categories

	if cfg.Detail {
		if _, err := fmt.Fprintf(w, "Scored results\n"); err != nil {
			return err
		}
		if err := writeScoredTable(w, result.Scored, cfg, fmtFloat); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Ranked options per %s\n", cats.Level2); err != nil {
		return err
	}
	if err := writeRankedTable(w, result.PerStandpoint, cats.Level2, cfg, fmtFloat); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nRanked options overall\n"); err != nil {
		return err
	}
	if err := writeRankedTable(w, result.Overall, "", cfg, fmtFloat); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Evaluated %d options in %v with %d workers\n",
		len(result.Overall), duration, cfg.Workers)
	return err
}

// writeRankedTable writes one ranked-option table. An empty standpointHeader
// means the overall view, which has no standpoint column.
func writeRankedTable(w io.Writer, ranked []schema.RankedOption, standpointHeader string, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Scenario"}
	if standpointHeader != "" {
		headers = append(headers, standpointHeader)
	}
	headers = append(headers, "Option", "Weighted Score", "Bin")
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	labelWidth := maxLabelWidth(cfg, 2)
	var data [][]string
	for _, r := range ranked {
		row := []string{truncateLabel(r.Scenario, labelWidth)}
		if standpointHeader != "" {
			row = append(row, truncateLabel(r.Standpoint, labelWidth))
		}
		bin := r.Bin
		if cfg.UseColors {
			bin = contract.GetColorBinLabel(bin)
		}
		row = append(row, truncateLabel(r.Option, labelWidth), fmtFloat(r.Total), bin)
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeScoredTable writes the long-form scored results.
func writeScoredTable(w io.Writer, scored []schema.ScoredResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Scenario", "Entity", "Option", "Result", "Linear Score", "Final Score"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	labelWidth := maxLabelWidth(cfg, 3)
	var data [][]string
	for _, s := range scored {
		data = append(data, []string{
			truncateLabel(s.Scenario, labelWidth),
			truncateLabel(s.Entity, labelWidth),
			truncateLabel(s.Option, labelWidth),
			fmtFloat(s.Result),
			fmtFloat(s.LinearScore),
			fmtFloat(s.FinalScore),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

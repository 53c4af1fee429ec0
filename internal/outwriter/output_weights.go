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

// PrintWeights outputs the weight results, dispatching based on the output format configured.
func PrintWeights(result *schema.WeightsResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightsCSV(w, result, fmtFloat)
		}, "CSV")
	case schema.ParquetOut:
		return parquet.WriteWeightsFile(cfg.OutputFile, result)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightsTables(w, result, cfg, fmtFloat, duration)
		}, "table")
	}
}

// writeWeightsCSV writes every weight row in long form. Overall rows carry an
// empty standpoint and group, mirroring how they aggregate across both.
func writeWeightsCSV(w io.Writer, result *schema.WeightsResult, fmtFloat func(float64) string) error {
	cats := result.Categories
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{cats.Level2, cats.Level1, cats.Level0, "Priority Score", "Priority Weight", "Weight"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, sw := range result.PerStandpoint {
		row := []string{sw.Standpoint, sw.Group, sw.Entity, fmtFloat(sw.EntityScore), fmtFloat(sw.EntityWeight), fmtFloat(sw.Weight)}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	for _, ow := range result.Overall {
		row := []string{"", "", ow.Entity, "", "", fmtFloat(ow.Weight)}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}

// writeWeightsTables generates and writes the human-readable tables.
func writeWeightsTables(w io.Writer, result *schema.WeightsResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	cats := result.Categories

	if _, err := fmt.Fprintf(w, "Weights per %s\n", cats.Level2); err != nil {
		return err
	}
	if err := writeStandpointTable(w, result, cfg, fmtFloat); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nOverall weights\n"); err != nil {
		return err
	}
	if err := writeOverallTable(w, result, cfg, fmtFloat); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Processed %d weight rows in %v with %d workers (threshold %.2f)\n",
		len(result.PerStandpoint), duration, cfg.Workers, cfg.Threshold)
	return err
}

// writeStandpointTable writes the per-standpoint weight table.
func writeStandpointTable(w io.Writer, result *schema.WeightsResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	cats := result.Categories
	table := tablewriter.NewWriter(w)

	numericCols := 1
	headers := []string{cats.Level2, cats.Level1, cats.Level0, "Weight"}
	if cfg.Detail {
		headers = append(headers, "Score", "Entity Weight", "Group Weight")
		numericCols = 4
	}
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	labelWidth := maxLabelWidth(cfg, numericCols)
	var data [][]string
	for _, sw := range result.PerStandpoint {
		row := []string{
			truncateLabel(sw.Standpoint, labelWidth),
			truncateLabel(sw.Group, labelWidth),
			truncateLabel(sw.Entity, labelWidth),
			fmtFloat(sw.Weight),
		}
		if cfg.Detail {
			row = append(row, fmtFloat(sw.EntityScore), fmtFloat(sw.EntityWeight), fmtFloat(sw.GroupWeight))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeOverallTable writes the standpoint-combined weight table.
func writeOverallTable(w io.Writer, result *schema.WeightsResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	cats := result.Categories
	table := tablewriter.NewWriter(w)
	table.Header([]string{cats.Level0, "Weight"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	labelWidth := maxLabelWidth(cfg, 1)
	var data [][]string
	for _, ow := range result.Overall {
		data = append(data, []string{truncateLabel(ow.Entity, labelWidth), fmtFloat(ow.Weight)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

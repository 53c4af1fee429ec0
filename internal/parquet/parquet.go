// Package parquet provides data structures and functions for exporting
// priority weights and evaluation results to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/prioritize/schema"
)

// StandpointWeightRow represents the weight of one entity in the view of one
// standpoint. This struct maps to the prioritize_standpoint_weights database table.
type StandpointWeightRow struct {
	// Standpoint is the level-2 entity label
	Standpoint string `parquet:"standpoint,snappy"`

	// Group is the level-1 entity label
	Group string `parquet:"entity_group,snappy"`

	// Entity is the level-0 entity label
	Entity string `parquet:"entity,snappy"`

	// EntityScore is the geometric-mean priority score within the entity's table
	EntityScore float64 `parquet:"entity_score,snappy"`

	// EntityWeight is the normalized priority weight within the entity's table
	EntityWeight float64 `parquet:"entity_weight,snappy"`

	// GroupScore is the priority score of the entity's group
	GroupScore float64 `parquet:"group_score,snappy"`

	// GroupWeight is the priority weight of the entity's group
	GroupWeight float64 `parquet:"group_weight,snappy"`

	// Weight is the entity weight in the standpoint's view
	Weight float64 `parquet:"weight,snappy"`
}

// OverallWeightRow represents the standpoint-combined weight of one entity.
// This struct maps to the prioritize_overall_weights database table.
type OverallWeightRow struct {
	// Entity is the level-0 entity label
	Entity string `parquet:"entity,snappy"`

	// Weight is the standpoint-combined priority weight
	Weight float64 `parquet:"weight,snappy"`
}

// RankedOptionRow represents one summed and binned option total.
// This struct maps to the prioritize_ranked_options database table.
type RankedOptionRow struct {
	// Scenario is the evaluation scenario
	Scenario string `parquet:"scenario,snappy"`

	// Standpoint is the level-2 entity label; empty in the overall view
	Standpoint string `parquet:"standpoint,snappy"`

	// Option is the evaluated option name
	Option string `parquet:"option_name,snappy"`

	// Total is the summed weighted score
	Total float64 `parquet:"total,snappy"`

	// Bin is the assigned rating bin label
	Bin string `parquet:"bin,snappy"`
}

// ConvertStandpointWeights converts weight rows into their Parquet form.
func ConvertStandpointWeights(rows []schema.StandpointWeight) []StandpointWeightRow {
	out := make([]StandpointWeightRow, len(rows))
	for i, sw := range rows {
		out[i] = StandpointWeightRow{
			Standpoint:   sw.Standpoint,
			Group:        sw.Group,
			Entity:       sw.Entity,
			EntityScore:  sw.EntityScore,
			EntityWeight: sw.EntityWeight,
			GroupScore:   sw.GroupScore,
			GroupWeight:  sw.GroupWeight,
			Weight:       sw.Weight,
		}
	}
	return out
}

// ConvertOverallWeights converts overall weight rows into their Parquet form.
func ConvertOverallWeights(rows []schema.OverallWeight) []OverallWeightRow {
	out := make([]OverallWeightRow, len(rows))
	for i, ow := range rows {
		out[i] = OverallWeightRow{Entity: ow.Entity, Weight: ow.Weight}
	}
	return out
}

// ConvertRankedOptions converts ranked option rows into their Parquet form.
func ConvertRankedOptions(rows []schema.RankedOption) []RankedOptionRow {
	out := make([]RankedOptionRow, len(rows))
	for i, r := range rows {
		out[i] = RankedOptionRow{
			Scenario:   r.Scenario,
			Standpoint: r.Standpoint,
			Option:     r.Option,
			Total:      r.Total,
			Bin:        r.Bin,
		}
	}
	return out
}

// writeParquet writes records to a Parquet file using struct schema inference.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the struct tags
	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteWeightsFile exports a weight result as two Parquet files: the
// per-standpoint rows at the given path and the overall rows next to it with
// an .overall.parquet suffix.
func WriteWeightsFile(outputPath string, result *schema.WeightsResult) error {
	if err := writeParquet(ConvertStandpointWeights(result.PerStandpoint), outputPath); err != nil {
		return err
	}
	return writeParquet(ConvertOverallWeights(result.Overall), overallPath(outputPath))
}

// WriteEvaluationFile exports the ranked options of an evaluation as two
// Parquet files, per-standpoint and overall.
func WriteEvaluationFile(outputPath string, result *schema.EvaluationResult) error {
	if err := writeParquet(ConvertRankedOptions(result.PerStandpoint), outputPath); err != nil {
		return err
	}
	return writeParquet(ConvertRankedOptions(result.Overall), overallPath(outputPath))
}

// overallPath derives the companion file path for overall rows.
func overallPath(outputPath string) string {
	const ext = ".parquet"
	if len(outputPath) > len(ext) && outputPath[len(outputPath)-len(ext):] == ext {
		return outputPath[:len(outputPath)-len(ext)] + ".overall" + ext
	}
	return outputPath + ".overall"
}

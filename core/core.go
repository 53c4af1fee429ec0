package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/prioritize/core/algo"
	"github.com/huangsam/prioritize/internal/contract"
	"github.com/huangsam/prioritize/internal/ingest"
	"github.com/huangsam/prioritize/internal/outwriter"
	"github.com/huangsam/prioritize/internal/resultdb"
	"github.com/huangsam/prioritize/schema"
)

// ExecutorFunc defines the function signature for executing different run modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// GetWeightsResult runs the priority-weight calculation and returns its
// result along with the loaded input set.
func GetWeightsResult(ctx context.Context, cfg *contract.Config) (*schema.WeightsResult, *schema.InputSet, error) {
	source, err := ingest.NewSource(cfg.InputPath)
	if err != nil {
		return nil, nil, err
	}
	input, err := source.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	result, err := CalculateWeights(input, cfg)
	if err != nil {
		return nil, nil, err
	}
	return result, input, nil
}

// GetEvaluationResult runs the full evaluation pipeline and returns its
// result along with the loaded input set.
func GetEvaluationResult(ctx context.Context, cfg *contract.Config) (*schema.EvaluationResult, *schema.InputSet, error) {
	weights, input, err := GetWeightsResult(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if input.Scoring == nil {
		return nil, nil, fmt.Errorf("input %q has no scoring tables; evaluation needs %q and %q",
			cfg.InputPath, schema.ScoringTable, schema.ScoreRangeTable)
	}

	scored := algo.ScoreResults(input.Scoring, cfg.Precision)
	perStandpoint, overall, err := algo.Evaluate(weights, scored)
	if err != nil {
		return nil, nil, err
	}
	if err := algo.AssignBins(perStandpoint, cfg.Bins, cfg.BinLabels, cfg.ZeroFloor); err != nil {
		return nil, nil, err
	}
	if err := algo.AssignBins(overall, cfg.Bins, cfg.BinLabels, cfg.ZeroFloor); err != nil {
		return nil, nil, err
	}

	return &schema.EvaluationResult{
		Weights:       weights,
		Scored:        scored,
		PerStandpoint: perStandpoint,
		Overall:       overall,
	}, input, nil
}

// ExecuteWeights runs the priority-weight calculation and prints the
// per-standpoint and overall weight tables.
// It serves as the main entry point for the 'weights' mode.
func ExecuteWeights(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, input, err := GetWeightsResult(ctx, cfg)
	if err != nil {
		return err
	}
	persistRun(cfg, start, len(input.Tables), result, nil)
	duration := time.Since(start)
	return outwriter.PrintWeights(result, cfg, duration)
}

// ExecuteEvaluate runs the full evaluation pipeline: priority weights,
// scoring of the quantification results, weighted-score composition, and
// ranking into rating bins.
// It serves as the main entry point for the 'evaluate' mode.
func ExecuteEvaluate(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, input, err := GetEvaluationResult(ctx, cfg)
	if err != nil {
		return err
	}
	persistRun(cfg, start, len(input.Tables), result.Weights, result)
	duration := time.Since(start)
	return outwriter.PrintEvaluation(result, cfg, duration)
}

// persistRun records a completed run in the configured result store. Storage
// failures degrade to warnings: the computed output is still printed, which
// matters more than the audit trail.
func persistRun(cfg *contract.Config, start time.Time, totalTables int, weights *schema.WeightsResult, eval *schema.EvaluationResult) {
	if cfg.StoreBackend == schema.NoneBackend {
		return
	}
	store, err := resultdb.NewStore(cfg)
	if err != nil {
		contract.LogWarn("opening result store", err)
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			contract.LogWarn("closing result store", err)
		}
	}()

	runID, err := store.BeginRun(start, map[string]any{
		"input":     cfg.InputPath,
		"threshold": cfg.Threshold,
		"workers":   cfg.Workers,
	})
	if err != nil {
		contract.LogWarn("recording run", err)
		return
	}
	if err := store.RecordWeights(runID, weights); err != nil {
		contract.LogWarn("recording weights", err)
		return
	}
	if eval != nil {
		if err := store.RecordRankings(runID, eval.PerStandpoint, eval.Overall); err != nil {
			contract.LogWarn("recording rankings", err)
			return
		}
	}
	if err := store.EndRun(runID, time.Now(), totalTables); err != nil {
		contract.LogWarn("finishing run", err)
	}
}

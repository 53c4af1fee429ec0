// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/prioritize/schema"
)

// TableSource loads the input table set for a run. Implementations exist for
// xlsx workbooks and for directories of CSV files, and tests supply their own.
type TableSource interface {
	// Load reads every recognized table from the input.
	Load(ctx context.Context) (*schema.InputSet, error)
}

// ResultStore persists computed weights and evaluation results across runs.
type ResultStore interface {
	// BeginRun records a new run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, totalTables int) error

	// RecordWeights stores the per-standpoint and overall weight rows.
	RecordWeights(runID int64, result *schema.WeightsResult) error

	// RecordRankings stores the ranked and binned option rows.
	RecordRankings(runID int64, perStandpoint, overall []schema.RankedOption) error

	// GetStatus returns status information about the result store.
	GetStatus() (schema.StoreStatus, error)

	// Clear removes all stored runs and their rows.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

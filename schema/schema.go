// Package schema has configs, models and global variables for all parts of prioritize.
package schema

import "time"

// StoreStatus reports the state of the result store.
type StoreStatus struct {
	Backend    StoreBackend
	TotalRuns  int64
	LatestRun  time.Time // zero when no runs are stored
	WeightRows int64
	RankedRows int64
}

// ComparisonTable is one pairwise-comparison rating table read from the input
// workbook. The entity labels are ordered; the upper triangle and diagonal of
// the ratio matrix come from input while the lower triangle is always derived.
type ComparisonTable struct {
	Name      string      // Input table name, e.g. "layer_0a"
	Corner    string      // Upper-left corner label encoding the hierarchy position
	RowLabels []string    // Entity labels from the first column, in input order
	ColLabels []string    // Entity labels from the header row, in input order
	Ratios    [][]float64 // n×n ratio matrix; cells below the diagonal may be unset
}

// Order returns the order of the comparison matrix.
func (t *ComparisonTable) Order() int {
	return len(t.ColLabels)
}

// HierarchyPath is the resolved position of a comparison table in the
// three-level hierarchy. It is produced once when the table is processed and
// carried as typed data thereafter; nothing downstream re-parses the corner
// label.
type HierarchyPath struct {
	Level      Level  // Level the table's entities live at
	Category   string // Category name of the table's own level, e.g. "Characteristic"
	Group      string // Level-1 ancestor entity label; empty above level 0
	Standpoint string // Level-2 ancestor entity label; empty for the level-2 table
}

// CategoryNames holds the attribute names of the three hierarchy levels as
// discovered from the input table headers. They are data, not constants: the
// input decides whether level 0 is called "Characteristic", "Metric" or
// anything else.
type CategoryNames struct {
	Level0 string
	Level1 string
	Level2 string
}

// ForLevel returns the category name for the given level.
func (c CategoryNames) ForLevel(l Level) string {
	switch l {
	case Level0:
		return c.Level0
	case Level1:
		return c.Level1
	default:
		return c.Level2
	}
}

// WeightEntry is the priority score and weight of a single entity within one
// comparison table.
type WeightEntry struct {
	Label  string  // Entity label
	Score  float64 // Geometric mean of the entity's ratio row; always positive
	Weight float64 // Score normalized over the table; sums to 1 per table
}

// TableWeights is the processed output of one comparison table.
type TableWeights struct {
	Table   string        // Input table name, kept for error reporting
	Corner  string        // Corner label, tracked for hierarchy-wide uniqueness
	Path    HierarchyPath // Resolved hierarchy position
	Entries []WeightEntry // One entry per entity, in table order
}

// StandpointWeight is one row of the per-standpoint weight table: the weight
// of a level-0 entity in the view of a single level-2 standpoint.
type StandpointWeight struct {
	Standpoint   string  // Level-2 entity label
	Group        string  // Level-1 entity label
	Entity       string  // Level-0 entity label
	EntityScore  float64 // Level-0 priority score
	EntityWeight float64 // Level-0 priority weight within its sibling table
	GroupScore   float64 // Level-1 priority score
	GroupWeight  float64 // Level-1 priority weight within its sibling table
	Weight       float64 // EntityWeight × GroupWeight; sums to 1 per standpoint
}

// OverallWeight is one row of the overall weight table: the standpoint-combined
// weight of a level-0 entity. Weights sum to 1 across all rows.
type OverallWeight struct {
	Entity string
	Weight float64
}

// WeightsResult holds the full output of the AHP weight calculation.
type WeightsResult struct {
	PerStandpoint []StandpointWeight // One row per (entity, group, standpoint)
	Overall       []OverallWeight    // One row per level-0 entity
	Categories    CategoryNames      // Level names as discovered from input headers
}

// InputSet is everything a single run reads from the input workbook or
// directory: the comparison tables keyed by table name, the random-index
// reference rows, and the optional scoring sheets for option evaluation.
type InputSet struct {
	Tables      map[string]*ComparisonTable
	RandomIndex RandomIndex
	Scoring     *ScoringInput
}

// RandomIndex maps a comparison-matrix order to its tabulated average
// consistency index. The values come from the input workbook, not from code.
type RandomIndex map[int]float64

// Lookup returns the average consistency index for the given matrix order.
func (ri RandomIndex) Lookup(order int) (float64, bool) {
	v, ok := ri[order]
	return v, ok
}

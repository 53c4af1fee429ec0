package schema

import "fmt"

// Every validation failure in the weight pipeline is terminal: the run aborts
// and the caller receives one of the typed errors below, identifying the
// offending table, entity or level. There is no logging-only downgrade and no
// partial output.

// MalformedTableError reports a comparison table whose column labels do not
// equal its row labels in the same order.
type MalformedTableError struct {
	Table string
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("table %q: columns and rows must carry the same labels, transposed", e.Table)
}

// InvalidDiagonalError reports a comparison table with a diagonal cell that
// does not equal 1.
type InvalidDiagonalError struct {
	Table string
	Row   int
	Value float64
}

func (e *InvalidDiagonalError) Error() string {
	return fmt.Sprintf("table %q: diagonal cell %d holds %v, want 1", e.Table, e.Row, e.Value)
}

// InconsistentMatrixError reports a comparison matrix whose inconsistency
// ratio exceeds the configured threshold. The pipeline never repairs ratings;
// the judgments themselves must be revised.
type InconsistentMatrixError struct {
	Table     string
	Ratio     float64
	Threshold float64
}

func (e *InconsistentMatrixError) Error() string {
	return fmt.Sprintf("table %q: inconsistency ratio %.4f exceeds threshold %.4f; revise the ratings", e.Table, e.Ratio, e.Threshold)
}

// MissingReferenceIndexError reports a matrix order with no row in the
// random-index reference table.
type MissingReferenceIndexError struct {
	Table string
	Order int
}

func (e *MissingReferenceIndexError) Error() string {
	return fmt.Sprintf("table %q: no average consistency index tabulated for matrix order %d", e.Table, e.Order)
}

// UnrecognizedHierarchyPathError reports a corner-label segment that matches
// neither the table's own category name nor any ancestor category name.
type UnrecognizedHierarchyPathError struct {
	Table   string
	Segment string
}

func (e *UnrecognizedHierarchyPathError) Error() string {
	return fmt.Sprintf("table %q: corner segment %q matches no known hierarchy category", e.Table, e.Segment)
}

// DuplicateHierarchyPositionError reports two tables claiming the same corner
// label, i.e. the same slot in the hierarchy.
type DuplicateHierarchyPositionError struct {
	Table  string
	Corner string
}

func (e *DuplicateHierarchyPositionError) Error() string {
	return fmt.Sprintf("table %q: corner label %q is already claimed by another table", e.Table, e.Corner)
}

// IncompleteHierarchyError reports a level-0 table referencing a
// (group, standpoint) combination with no matching higher-level comparison
// table.
type IncompleteHierarchyError struct {
	Entity     string
	Group      string
	Standpoint string
}

func (e *IncompleteHierarchyError) Error() string {
	return fmt.Sprintf("entity %q references group %q under standpoint %q with no matching comparison table", e.Entity, e.Group, e.Standpoint)
}

// WeightSumInvariantError reports aggregated weights that do not sum to 1
// within tolerance. This is a correctness violation, not a warning: the whole
// value of the method is that weights form valid distributions.
type WeightSumInvariantError struct {
	Scope string
	Sum   float64
}

func (e *WeightSumInvariantError) Error() string {
	return fmt.Sprintf("weights for %s sum to %v, want 1", e.Scope, e.Sum)
}

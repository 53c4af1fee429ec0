// Package core has core logic for priority weight calculation.
package core

import (
	"math"
	"strings"

	"github.com/huangsam/prioritize/internal/contract"
	"github.com/huangsam/prioritize/schema"
)

// validateTable checks the structural invariants of a comparison table: the
// header labels must equal the first-column labels in the same order, and
// every diagonal cell must hold exactly 1. Anything else means the input is
// not a symmetric comparison table about one sibling set.
func validateTable(t *schema.ComparisonTable) error {
	if len(t.RowLabels) != len(t.ColLabels) {
		return &schema.MalformedTableError{Table: t.Name}
	}
	for i := range t.ColLabels {
		if t.RowLabels[i] != t.ColLabels[i] {
			return &schema.MalformedTableError{Table: t.Name}
		}
	}
	for i := range t.Ratios {
		if t.Ratios[i][i] != 1 {
			return &schema.InvalidDiagonalError{Table: t.Name, Row: i, Value: t.Ratios[i][i]}
		}
	}
	return nil
}

// fillReciprocal derives every cell below the diagonal as the reciprocal of
// its mirror cell. The lower triangle is never trusted from input, even when
// populated: this overwrite is unconditional.
func fillReciprocal(t *schema.ComparisonTable) {
	for r := range t.Ratios {
		for c := 0; c < r; c++ {
			t.Ratios[r][c] = 1 / t.Ratios[c][r]
		}
	}
}

// geometricMean returns the geometric mean of a row of positive ratios,
// computed in log space so that long rows of large ratios cannot overflow.
func geometricMean(row []float64) float64 {
	var logSum float64
	for _, v := range row {
		logSum += math.Log(v)
	}
	return math.Exp(logSum / float64(len(row)))
}

// resolveHierarchyPath parses a table's corner label into its typed hierarchy
// position. The segment count fixes the table's own level; the segment equal
// to the own-level category name marks the table itself, and the remaining
// segments fill the ancestor slots in order, nearest ancestor first.
func resolveHierarchyPath(t *schema.ComparisonTable, cats schema.CategoryNames) (schema.HierarchyPath, error) {
	segments := strings.Split(t.Corner, schema.PathSeparator)

	level, ok := schema.LevelFromSegments(len(segments))
	if !ok {
		return schema.HierarchyPath{}, &schema.UnrecognizedHierarchyPathError{Table: t.Name, Segment: t.Corner}
	}
	if named, ok := schema.LevelForTableName(t.Name); ok && named != level {
		// The name says one level, the corner says another.
		return schema.HierarchyPath{}, &schema.UnrecognizedHierarchyPathError{Table: t.Name, Segment: t.Corner}
	}

	path := schema.HierarchyPath{Level: level, Category: cats.ForLevel(level)}

	next := level + 1 // nearest unfilled ancestor slot
	for _, seg := range segments {
		if seg == path.Category {
			continue
		}
		switch next {
		case schema.Level1:
			path.Group = seg
		case schema.Level2:
			path.Standpoint = seg
		default:
			// More parent labels than ancestor levels above this table.
			return schema.HierarchyPath{}, &schema.UnrecognizedHierarchyPathError{Table: t.Name, Segment: seg}
		}
		next++
	}

	return path, nil
}

// processTable turns one comparison table into per-entity priority scores and
// weights. Validation and the reciprocal fill run first; the consistency
// check is a precondition of accepting the scores: an inconsistent matrix
// invalidates its own derived weights.
func processTable(t *schema.ComparisonTable, cats schema.CategoryNames, ri schema.RandomIndex, cfg *contract.Config) (*schema.TableWeights, error) {
	if err := validateTable(t); err != nil {
		return nil, err
	}
	fillReciprocal(t)

	// A single-entity comparison set is trivially consistent.
	if t.Order() > 1 {
		if err := checkConsistency(t, ri, cfg.Threshold); err != nil {
			return nil, err
		}
	}

	path, err := resolveHierarchyPath(t, cats)
	if err != nil {
		return nil, err
	}

	entries := make([]schema.WeightEntry, t.Order())
	var scoreSum float64
	for i, label := range t.ColLabels {
		score := geometricMean(t.Ratios[i])
		entries[i] = schema.WeightEntry{Label: label, Score: score}
		scoreSum += score
	}
	for i := range entries {
		entries[i].Weight = entries[i].Score / scoreSum
	}

	return &schema.TableWeights{
		Table:   t.Name,
		Corner:  t.Corner,
		Path:    path,
		Entries: entries,
	}, nil
}

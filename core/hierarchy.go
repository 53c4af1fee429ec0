package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/huangsam/prioritize/schema"
)

// weightSumTolerance is the slack allowed when checking that an aggregated
// weight column sums to 1.
const weightSumTolerance = 1e-5

// compiledLevels holds the processed tables of each hierarchy level. The
// three slots are fixed; derived level indexes outside them are rejected
// during path resolution, so indexing here never guards.
type compiledLevels struct {
	tables [3][]*schema.TableWeights
}

// compile sorts processed tables into their level slots and rejects corner
// labels claimed by more than one table. The per-slot order follows the input
// table name so that aggregation output is deterministic regardless of how
// the tables were produced.
func compile(tables []*schema.TableWeights) (*compiledLevels, error) {
	seen := make(map[string]string, len(tables))
	levels := &compiledLevels{}
	for _, tw := range tables {
		if _, ok := seen[tw.Corner]; ok {
			return nil, &schema.DuplicateHierarchyPositionError{Table: tw.Table, Corner: tw.Corner}
		}
		seen[tw.Corner] = tw.Table
		levels.tables[tw.Path.Level] = append(levels.tables[tw.Path.Level], tw)
	}
	for _, slot := range levels.tables {
		sort.Slice(slot, func(i, j int) bool { return slot[i].Table < slot[j].Table })
	}
	return levels, nil
}

// aggregateHierarchy joins the processed tables of all three levels into the
// per-standpoint and overall weight sets.
//
// Every level-0 entity row must find its group in a level-1 table for the
// same standpoint, and that standpoint in the level-2 table. A missing parent
// aborts the run: a partially connected hierarchy has no meaningful weights.
func aggregateHierarchy(tables []*schema.TableWeights, cats schema.CategoryNames) (*schema.WeightsResult, error) {
	levels, err := compile(tables)
	if err != nil {
		return nil, err
	}

	// Group weights by (standpoint, group), from the level-1 tables.
	groupEntries := make(map[string]map[string]schema.WeightEntry)
	for _, tw := range levels.tables[schema.Level1] {
		byGroup := groupEntries[tw.Path.Standpoint]
		if byGroup == nil {
			byGroup = make(map[string]schema.WeightEntry, len(tw.Entries))
			groupEntries[tw.Path.Standpoint] = byGroup
		}
		for _, e := range tw.Entries {
			byGroup[e.Label] = e
		}
	}

	// Standpoint weights, from the single level-2 table.
	standpointEntries := make(map[string]schema.WeightEntry)
	for _, tw := range levels.tables[schema.Level2] {
		for _, e := range tw.Entries {
			standpointEntries[e.Label] = e
		}
	}

	var perStandpoint []schema.StandpointWeight
	standpointSums := make(map[string]float64)
	for _, tw := range levels.tables[schema.Level0] {
		byGroup, ok := groupEntries[tw.Path.Standpoint]
		if !ok {
			return nil, &schema.IncompleteHierarchyError{
				Entity:     tw.Entries[0].Label,
				Group:      tw.Path.Group,
				Standpoint: tw.Path.Standpoint,
			}
		}
		group, ok := byGroup[tw.Path.Group]
		if !ok {
			return nil, &schema.IncompleteHierarchyError{
				Entity:     tw.Entries[0].Label,
				Group:      tw.Path.Group,
				Standpoint: tw.Path.Standpoint,
			}
		}
		if _, ok := standpointEntries[tw.Path.Standpoint]; !ok {
			return nil, &schema.IncompleteHierarchyError{
				Entity:     tw.Entries[0].Label,
				Group:      tw.Path.Group,
				Standpoint: tw.Path.Standpoint,
			}
		}
		for _, e := range tw.Entries {
			weight := e.Weight * group.Weight
			perStandpoint = append(perStandpoint, schema.StandpointWeight{
				Standpoint:   tw.Path.Standpoint,
				Group:        tw.Path.Group,
				Entity:       e.Label,
				EntityScore:  e.Score,
				EntityWeight: e.Weight,
				GroupScore:   group.Score,
				GroupWeight:  group.Weight,
				Weight:       weight,
			})
			standpointSums[tw.Path.Standpoint] += weight
		}
	}

	for standpoint, sum := range standpointSums {
		if math.Abs(sum-1) > weightSumTolerance {
			return nil, &schema.WeightSumInvariantError{
				Scope: fmt.Sprintf("standpoint %q", standpoint),
				Sum:   sum,
			}
		}
	}

	overall, err := combineStandpoints(perStandpoint, standpointEntries)
	if err != nil {
		return nil, err
	}

	return &schema.WeightsResult{
		PerStandpoint: perStandpoint,
		Overall:       overall,
		Categories:    cats,
	}, nil
}

// combineStandpoints collapses the per-standpoint weight rows into one weight
// per entity, scaling each row by its standpoint's own weight. Entities keep
// their first-appearance order.
func combineStandpoints(rows []schema.StandpointWeight, standpoints map[string]schema.WeightEntry) ([]schema.OverallWeight, error) {
	var order []string
	sums := make(map[string]float64)
	for _, row := range rows {
		if _, ok := sums[row.Entity]; !ok {
			order = append(order, row.Entity)
		}
		sums[row.Entity] += row.Weight * standpoints[row.Standpoint].Weight
	}

	overall := make([]schema.OverallWeight, 0, len(order))
	var total float64
	for _, entity := range order {
		overall = append(overall, schema.OverallWeight{Entity: entity, Weight: sums[entity]})
		total += sums[entity]
	}
	if math.Abs(total-1) > weightSumTolerance {
		return nil, &schema.WeightSumInvariantError{Scope: "overall", Sum: total}
	}
	return overall, nil
}

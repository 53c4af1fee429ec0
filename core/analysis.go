package core

import (
	"sort"
	"strings"
	"sync"

	"github.com/huangsam/prioritize/internal/contract"
	"github.com/huangsam/prioritize/schema"
)

// discoverCategories reads the three level category names off the corner
// labels. The names are data, not constants: each level's name comes from
// the lexicographically first table of that level. A corner mixes the
// table's own category name with ancestor entity labels, so walking from
// level 2 down, the category is the one segment that is not an entity of a
// higher level.
func discoverCategories(tables map[string]*schema.ComparisonTable) schema.CategoryNames {
	first := [3]*schema.ComparisonTable{}
	ancestors := make(map[string]struct{})
	for _, name := range sortedTableNames(tables) {
		t := tables[name]
		level, ok := schema.LevelFromSegments(strings.Count(t.Corner, schema.PathSeparator) + 1)
		if !ok {
			continue
		}
		if first[level] == nil {
			first[level] = t
		}
		if level > schema.Level0 {
			for _, label := range t.ColLabels {
				ancestors[label] = struct{}{}
			}
		}
	}

	var cats schema.CategoryNames
	for level := schema.Level2; level >= schema.Level0; level-- {
		t := first[level]
		if t == nil {
			continue
		}
		for _, seg := range strings.Split(t.Corner, schema.PathSeparator) {
			if _, ok := ancestors[seg]; ok {
				continue
			}
			switch level {
			case schema.Level0:
				cats.Level0 = seg
			case schema.Level1:
				cats.Level1 = seg
			case schema.Level2:
				cats.Level2 = seg
			}
			break
		}
	}
	return cats
}

// sortedTableNames returns the comparison-table names in ascending order.
func sortedTableNames(tables map[string]*schema.ComparisonTable) []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tableResult pairs a processed table with its terminal error for collection
// across the worker pool.
type tableResult struct {
	name    string
	weights *schema.TableWeights
	err     error
}

// CalculateWeights runs the full weight pipeline over a set of comparison
// tables: per-table processing across a worker pool, then hierarchy-wide
// aggregation. Tables are independent until aggregation, so they fan out to
// cfg.Workers goroutines; failures are surfaced in table-name order so that
// the reported error does not depend on worker scheduling.
func CalculateWeights(input *schema.InputSet, cfg *contract.Config) (*schema.WeightsResult, error) {
	names := sortedTableNames(input.Tables)
	cats := discoverCategories(input.Tables)

	nameCh := make(chan string, len(names))
	resultCh := make(chan tableResult, len(names))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for name := range nameCh {
				weights, err := processTable(input.Tables[name], cats, input.RandomIndex, cfg)
				resultCh <- tableResult{name: name, weights: weights, err: err}
			}
		})
	}

	for _, name := range names {
		nameCh <- name
	}
	close(nameCh)

	wg.Wait()
	close(resultCh)

	byName := make(map[string]tableResult, len(names))
	for r := range resultCh {
		byName[r.name] = r
	}

	processed := make([]*schema.TableWeights, 0, len(names))
	for _, name := range names {
		r := byName[name]
		if r.err != nil {
			return nil, r.err
		}
		processed = append(processed, r.weights)
	}

	return aggregateHierarchy(processed, cats)
}

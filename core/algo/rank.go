package algo

import (
	"fmt"
	"sort"

	"github.com/huangsam/prioritize/schema"
)

// Evaluate weighs the scored results with the priority weights and sums them
// into ranked option totals, once per standpoint view and once overall.
//
// Each scored row joins every per-standpoint weight row of its entity, so an
// entity's score counts once per standpoint. The overall total divides by the
// standpoint count to undo that replication: summed across standpoints it
// contributes exactly overall weight times final score.
func Evaluate(weights *schema.WeightsResult, scored []schema.ScoredResult) (perStandpoint, overall []schema.RankedOption, err error) {
	byEntity := make(map[string][]schema.StandpointWeight)
	standpoints := make(map[string]struct{})
	for _, sw := range weights.PerStandpoint {
		byEntity[sw.Entity] = append(byEntity[sw.Entity], sw)
		standpoints[sw.Standpoint] = struct{}{}
	}
	overallWeights := make(map[string]float64, len(weights.Overall))
	for _, ow := range weights.Overall {
		overallWeights[ow.Entity] = ow.Weight
	}
	numStandpoints := float64(len(standpoints))

	standpointTotals := make(map[rankKey]float64)
	overallTotals := make(map[rankKey]float64)

	for _, s := range scored {
		rows, ok := byEntity[s.Entity]
		if !ok {
			return nil, nil, fmt.Errorf("scoring entity %q has no priority weight", s.Entity)
		}
		for _, sw := range rows {
			standpointTotals[rankKey{s.Scenario, sw.Standpoint, s.Option}] += sw.Weight * s.FinalScore
			overallTotals[rankKey{s.Scenario, "", s.Option}] += overallWeights[s.Entity] * s.FinalScore / numStandpoints
		}
	}

	perStandpoint = collectRanked(standpointTotals)
	overall = collectRanked(overallTotals)
	return perStandpoint, overall, nil
}

// rankKey identifies one summed total; standpoint is empty in the overall
// view.
type rankKey struct {
	scenario, standpoint, option string
}

// collectRanked flattens summed totals into rows ordered by scenario, then
// standpoint, then descending total, so that the best option of each view
// comes first.
func collectRanked(totals map[rankKey]float64) []schema.RankedOption {
	ranked := make([]schema.RankedOption, 0, len(totals))
	for k, total := range totals {
		ranked = append(ranked, schema.RankedOption{
			Scenario:   k.scenario,
			Standpoint: k.standpoint,
			Option:     k.option,
			Total:      total,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Scenario != b.Scenario {
			return a.Scenario < b.Scenario
		}
		if a.Standpoint != b.Standpoint {
			return a.Standpoint < b.Standpoint
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Option < b.Option
	})
	return ranked
}

// AssignBins places each ranked option into one of bins equidistant rating
// bins spanning the observed totals, labelled worst to best. With zeroFloor
// set, the span starts at zero instead of the lowest total, so a crowded
// field of strong options still spreads across ratings relative to an empty
// score.
func AssignBins(ranked []schema.RankedOption, bins int, labels []string, zeroFloor bool) error {
	if len(labels) != bins {
		return fmt.Errorf("have %d rating bins but %d bin labels", bins, len(labels))
	}
	if len(ranked) == 0 {
		return nil
	}

	low, high := ranked[0].Total, ranked[0].Total
	for _, r := range ranked[1:] {
		if r.Total < low {
			low = r.Total
		}
		if r.Total > high {
			high = r.Total
		}
	}
	if zeroFloor {
		low = 0
	}

	width := (high - low) / float64(bins)
	for i := range ranked {
		idx := bins - 1
		if width > 0 {
			idx = int((ranked[i].Total - low) / width)
			if idx >= bins {
				idx = bins - 1
			}
			if idx < 0 {
				idx = 0
			}
		}
		ranked[i].Bin = labels[idx]
	}
	return nil
}

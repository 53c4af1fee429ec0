// Package algo has scoring and ranking helpers for option evaluation.
package algo

import (
	"math"

	"github.com/huangsam/prioritize/schema"
)

// resolveBounds turns the two filter bounds of a scoring row into concrete
// numbers. Bounds in min/max tracking mode resolve to the entity's observed
// extremes across all scenarios, which the caller supplies.
func resolveBounds(row schema.ScoringRow, observed schema.ScoreRange) (low, high float64) {
	low = row.Low.Value
	if row.Low.Mode == schema.TrackMin {
		low = observed.Min
	}
	high = row.High.Value
	if row.High.Mode == schema.TrackMax {
		high = observed.Max
	}
	return low, high
}

// observedRanges computes each entity's minimum and maximum quantification
// result across every scenario and option.
func observedRanges(rows []schema.ScoringRow) map[string]schema.ScoreRange {
	ranges := make(map[string]schema.ScoreRange)
	for _, row := range rows {
		r, ok := ranges[row.Entity]
		if !ok {
			r = schema.ScoreRange{Min: math.Inf(1), Max: math.Inf(-1)}
		}
		for _, v := range row.Results {
			r.Min = math.Min(r.Min, v)
			r.Max = math.Max(r.Max, v)
		}
		ranges[row.Entity] = r
	}
	return ranges
}

// linearMap scores a value linearly between the low and high filter, onto the
// minScore..maxScore scale. Values outside the filter window clamp to its
// edges. A collapsed window maps everything to the minimum score rather than
// dividing by zero.
func linearMap(low, high, value, minScore, maxScore float64) float64 {
	if high == low {
		return minScore
	}
	value = math.Min(high, value)
	value = math.Max(low, value)
	return minScore + (maxScore-minScore)*(value-low)/(high-low)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// ScoreResults rescales every quantification result onto the shared score
// range and applies the per-entity global weight. Rows come out in input
// order, one per (scenario, entity, option), with options in input column
// order.
func ScoreResults(input *schema.ScoringInput, precision int) []schema.ScoredResult {
	ranges := observedRanges(input.Rows)

	scored := make([]schema.ScoredResult, 0, len(input.Rows)*len(input.Options))
	for _, row := range input.Rows {
		low, high := resolveBounds(row, ranges[row.Entity])
		for _, option := range input.Options {
			result := row.Results[option]
			linear := roundTo(linearMap(low, high, result, input.Range.Min, input.Range.Max), precision)
			scored = append(scored, schema.ScoredResult{
				Scenario:    row.Scenario,
				Entity:      row.Entity,
				Option:      option,
				Result:      result,
				LinearScore: linear,
				FinalScore:  linear * row.GlobalWeight,
			})
		}
	}
	return scored
}

package schema

// BoundMode says how a scoring filter bound is resolved.
type BoundMode int

// All bound modes supported.
const (
	FixedBound BoundMode = iota // numeric value supplied by input
	TrackMin                    // resolve to the entity's minimum result across scenarios
	TrackMax                    // resolve to the entity's maximum result across scenarios
)

// FilterBound is one end of the linear scoring window for an entity. Input
// cells either carry a number or the literal strings "min"/"max", which defer
// the bound to the observed extremes.
type FilterBound struct {
	Mode  BoundMode
	Value float64 // meaningful only when Mode == FixedBound
}

// ScoringRow holds the quantification results of one (scenario, entity) pair
// for every option, plus the filters and global weight applied when scoring.
type ScoringRow struct {
	Scenario     string
	Entity       string // level-0 entity label
	Low          FilterBound
	High         FilterBound
	GlobalWeight float64
	Results      map[string]float64 // option name → quantification result
}

// ScoreRange is the overall score scale shared by all entities.
type ScoreRange struct {
	Min float64
	Max float64
}

// ScoringInput is the full scoring table set read from the input workbook.
type ScoringInput struct {
	Rows    []ScoringRow
	Options []string // option names in input column order
	Range   ScoreRange
}

// ScoredResult is one scored quantification result in long form.
type ScoredResult struct {
	Scenario    string
	Entity      string
	Option      string
	Result      float64 // raw quantification result
	LinearScore float64 // result mapped linearly onto the score range
	FinalScore  float64 // LinearScore × the entity's global weight
}

// RankedOption is the summed weighted score of one option, either in the view
// of a single standpoint or overall, with its assigned rating bin.
type RankedOption struct {
	Scenario   string
	Standpoint string // empty in the overall ranking
	Option     string
	Total      float64
	Bin        string
}

// EvaluationResult holds the output of the full evaluation pipeline: the
// priority weights, the scored results, and the ranked and binned options.
type EvaluationResult struct {
	Weights       *WeightsResult
	Scored        []ScoredResult
	PerStandpoint []RankedOption // summed per (scenario, standpoint, option)
	Overall       []RankedOption // summed per (scenario, option)
}

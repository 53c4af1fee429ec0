package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/prioritize/schema"
)

// Mandatory scoring-table column labels.
const (
	scenarioLabel     = "Scenario"
	lowFilterLabel    = "Low Filter"
	highFilterLabel   = "High Filter"
	globalWeightLabel = "Global Weights"
	minScoreLabel     = "Min Score"
	maxScoreLabel     = "Max Score"
	trackMinLiteral   = "min"
	trackMaxLiteral   = "max"
)

// parseGrids turns raw string grids into the typed input set. Grids whose
// names match no recognized table are skipped, so workbooks may carry
// documentation sheets alongside the data.
func parseGrids(grids map[string][][]string) (*schema.InputSet, error) {
	input := &schema.InputSet{Tables: make(map[string]*schema.ComparisonTable)}
	var scoringGrid, rangeGrid [][]string

	for name, grid := range grids {
		switch {
		case schema.IsComparisonTable(name):
			table, err := parseComparison(name, grid)
			if err != nil {
				return nil, err
			}
			input.Tables[name] = table
		case name == schema.RandomIndexTable:
			ri, err := parseRandomIndex(grid)
			if err != nil {
				return nil, err
			}
			input.RandomIndex = ri
		case name == schema.ScoringTable:
			scoringGrid = grid
		case name == schema.ScoreRangeTable:
			rangeGrid = grid
		}
	}

	if len(input.Tables) == 0 {
		return nil, fmt.Errorf("no %s* comparison tables found in input", schema.LayerTablePrefix)
	}
	if input.RandomIndex == nil {
		return nil, fmt.Errorf("no %q table found in input", schema.RandomIndexTable)
	}

	if (scoringGrid == nil) != (rangeGrid == nil) {
		return nil, fmt.Errorf("tables %q and %q must be provided together", schema.ScoringTable, schema.ScoreRangeTable)
	}
	if scoringGrid != nil {
		scoring, err := parseScoring(scoringGrid)
		if err != nil {
			return nil, err
		}
		scoring.Range, err = parseScoreRange(rangeGrid)
		if err != nil {
			return nil, err
		}
		input.Scoring = scoring
	}
	return input, nil
}

// parseComparison reads a pairwise comparison table. The corner cell holds
// the hierarchy path label; lower-triangle cells may be blank or missing and
// parse as unset, since the pipeline derives them as reciprocals.
func parseComparison(name string, grid [][]string) (*schema.ComparisonTable, error) {
	if len(grid) < 2 || len(grid[0]) < 2 {
		return nil, fmt.Errorf("table %q: want a corner label, entity labels and at least one rating row", name)
	}

	corner := strings.TrimSpace(grid[0][0])
	colLabels := trimLabels(grid[0][1:])
	n := len(colLabels)
	if len(grid)-1 != n {
		return nil, fmt.Errorf("table %q: have %d rating rows for %d entities", name, len(grid)-1, n)
	}

	rowLabels := make([]string, n)
	ratios := make([][]float64, n)
	for r, row := range grid[1:] {
		if len(row) == 0 {
			return nil, fmt.Errorf("table %q: rating row %d is empty", name, r)
		}
		rowLabels[r] = strings.TrimSpace(row[0])
		ratios[r] = make([]float64, n)
		for c := range n {
			var cell string
			if c+1 < len(row) {
				cell = strings.TrimSpace(row[c+1])
			}
			if cell == "" {
				if c < r {
					continue // derived as a reciprocal later
				}
				return nil, fmt.Errorf("table %q: cell (%d,%d) is blank", name, r, c)
			}
			v, err := parseRatio(cell)
			if err != nil {
				return nil, fmt.Errorf("table %q: cell (%d,%d): %w", name, r, c, err)
			}
			ratios[r][c] = v
		}
	}

	return &schema.ComparisonTable{
		Name:      name,
		Corner:    corner,
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Ratios:    ratios,
	}, nil
}

// parseRatio parses a rating cell. Cells carry either a number or a fraction
// like "1/3", the usual way reciprocal judgments are written down.
func parseRatio(cell string) (float64, error) {
	if num, den, ok := strings.Cut(cell, "/"); ok {
		a, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("bad fraction %q", cell)
		}
		b, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || b == 0 {
			return 0, fmt.Errorf("bad fraction %q", cell)
		}
		return a / b, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("bad ratio %q", cell)
	}
	return v, nil
}

// parseRandomIndex reads the matrix order to average consistency index table.
// The first row is a header.
func parseRandomIndex(grid [][]string) (schema.RandomIndex, error) {
	if len(grid) < 2 {
		return nil, fmt.Errorf("table %q: want a header and at least one row", schema.RandomIndexTable)
	}
	ri := make(schema.RandomIndex, len(grid)-1)
	for i, row := range grid[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("table %q: row %d: want an order and an index", schema.RandomIndexTable, i)
		}
		order, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("table %q: row %d: bad matrix order %q", schema.RandomIndexTable, i, row[0])
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("table %q: row %d: bad index %q", schema.RandomIndexTable, i, row[1])
		}
		ri[order] = value
	}
	return ri, nil
}

// parseScoring reads the quantification-result table. Four columns are found
// by their header labels, the first remaining column carries the level-0
// entity, and every further column is an option.
func parseScoring(grid [][]string) (*schema.ScoringInput, error) {
	if len(grid) < 2 {
		return nil, fmt.Errorf("table %q: want a header and at least one row", schema.ScoringTable)
	}

	header := trimLabels(grid[0])
	mandatory := map[string]int{
		scenarioLabel:     -1,
		lowFilterLabel:    -1,
		highFilterLabel:   -1,
		globalWeightLabel: -1,
	}
	entityCol := -1
	var options []string
	var optionCols []int
	for i, label := range header {
		if _, ok := mandatory[label]; ok {
			mandatory[label] = i
			continue
		}
		if entityCol < 0 {
			entityCol = i
			continue
		}
		options = append(options, label)
		optionCols = append(optionCols, i)
	}
	for label, col := range mandatory {
		if col < 0 {
			return nil, fmt.Errorf("table %q: missing column %q", schema.ScoringTable, label)
		}
	}
	if entityCol < 0 || len(options) == 0 {
		return nil, fmt.Errorf("table %q: want an entity column and at least one option column", schema.ScoringTable)
	}

	rows := make([]schema.ScoringRow, 0, len(grid)-1)
	for i, raw := range grid[1:] {
		cell := func(col int) string {
			if col < len(raw) {
				return strings.TrimSpace(raw[col])
			}
			return ""
		}

		low, err := parseBound(cell(mandatory[lowFilterLabel]), schema.TrackMin)
		if err != nil {
			return nil, fmt.Errorf("table %q: row %d: low filter: %w", schema.ScoringTable, i, err)
		}
		high, err := parseBound(cell(mandatory[highFilterLabel]), schema.TrackMax)
		if err != nil {
			return nil, fmt.Errorf("table %q: row %d: high filter: %w", schema.ScoringTable, i, err)
		}
		weight, err := strconv.ParseFloat(cell(mandatory[globalWeightLabel]), 64)
		if err != nil {
			return nil, fmt.Errorf("table %q: row %d: bad global weight %q", schema.ScoringTable, i, cell(mandatory[globalWeightLabel]))
		}

		results := make(map[string]float64, len(options))
		for j, col := range optionCols {
			v, err := strconv.ParseFloat(cell(col), 64)
			if err != nil {
				return nil, fmt.Errorf("table %q: row %d: bad result %q for option %q", schema.ScoringTable, i, cell(col), options[j])
			}
			results[options[j]] = v
		}

		rows = append(rows, schema.ScoringRow{
			Scenario:     cell(mandatory[scenarioLabel]),
			Entity:       cell(entityCol),
			Low:          low,
			High:         high,
			GlobalWeight: weight,
			Results:      results,
		})
	}
	return &schema.ScoringInput{Rows: rows, Options: options}, nil
}

// parseBound reads a filter cell: a number, or the literal "min"/"max"
// deferring the bound to the observed extremes.
func parseBound(cell string, track schema.BoundMode) (schema.FilterBound, error) {
	literal := trackMinLiteral
	if track == schema.TrackMax {
		literal = trackMaxLiteral
	}
	if strings.EqualFold(cell, literal) {
		return schema.FilterBound{Mode: track}, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return schema.FilterBound{}, fmt.Errorf("want a number or %q, got %q", literal, cell)
	}
	return schema.FilterBound{Mode: schema.FixedBound, Value: v}, nil
}

// parseScoreRange reads the shared score scale, a header plus one row.
func parseScoreRange(grid [][]string) (schema.ScoreRange, error) {
	if len(grid) < 2 {
		return schema.ScoreRange{}, fmt.Errorf("table %q: want a header and one row", schema.ScoreRangeTable)
	}
	header := trimLabels(grid[0])
	minCol, maxCol := -1, -1
	for i, label := range header {
		switch label {
		case minScoreLabel:
			minCol = i
		case maxScoreLabel:
			maxCol = i
		}
	}
	if minCol < 0 || maxCol < 0 {
		return schema.ScoreRange{}, fmt.Errorf("table %q: want columns %q and %q", schema.ScoreRangeTable, minScoreLabel, maxScoreLabel)
	}
	row := grid[1]
	if len(row) <= minCol || len(row) <= maxCol {
		return schema.ScoreRange{}, fmt.Errorf("table %q: row is shorter than its header", schema.ScoreRangeTable)
	}
	minScore, err := strconv.ParseFloat(strings.TrimSpace(row[minCol]), 64)
	if err != nil {
		return schema.ScoreRange{}, fmt.Errorf("table %q: bad %s %q", schema.ScoreRangeTable, minScoreLabel, row[minCol])
	}
	maxScore, err := strconv.ParseFloat(strings.TrimSpace(row[maxCol]), 64)
	if err != nil {
		return schema.ScoreRange{}, fmt.Errorf("table %q: bad %s %q", schema.ScoreRangeTable, maxScoreLabel, row[maxCol])
	}
	if maxScore <= minScore {
		return schema.ScoreRange{}, fmt.Errorf("table %q: %s %v is not above %s %v", schema.ScoreRangeTable, maxScoreLabel, maxScore, minScoreLabel, minScore)
	}
	return schema.ScoreRange{Min: minScore, Max: maxScore}, nil
}

// trimLabels trims every label and drops trailing empties.
func trimLabels(row []string) []string {
	labels := make([]string, len(row))
	for i, label := range row {
		labels[i] = strings.TrimSpace(label)
	}
	for len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}
	return labels
}

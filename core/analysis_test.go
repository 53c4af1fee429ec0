package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/prioritize/internal/contract"
	"github.com/huangsam/prioritize/schema"
)

// fixtureInput builds the raw comparison tables matching fixtureTables, with
// the lower triangles left unset the way input leaves them.
func fixtureInput() *schema.InputSet {
	table := func(name, corner string, labels []string, ratios [][]float64) *schema.ComparisonTable {
		return &schema.ComparisonTable{
			Name:      name,
			Corner:    corner,
			RowLabels: labels,
			ColLabels: append([]string{}, labels...),
			Ratios:    ratios,
		}
	}
	even := func() [][]float64 { return [][]float64{{1, 1}, {0, 1}} }
	skewed := func() [][]float64 { return [][]float64{{1, 3}, {0, 1}} }

	return &schema.InputSet{
		Tables: map[string]*schema.ComparisonTable{
			"layer_2":  table("layer_2", "Standpoint", []string{"Cost", "Value"}, even()),
			"layer_1a": table("layer_1a", "Group/Cost", []string{"Fit", "Ease"}, skewed()),
			"layer_1b": table("layer_1b", "Group/Value", []string{"Fit", "Ease"}, even()),
			"layer_0a": table("layer_0a", "Characteristic/Fit/Cost", []string{"Speed", "Safety"}, even()),
			"layer_0b": table("layer_0b", "Characteristic/Ease/Cost", []string{"Range", "Style"}, skewed()),
			"layer_0c": table("layer_0c", "Characteristic/Fit/Value", []string{"Speed", "Safety"}, even()),
			"layer_0d": table("layer_0d", "Characteristic/Ease/Value", []string{"Range", "Style"}, even()),
		},
		RandomIndex: schema.RandomIndex{3: 0.58, 4: 0.9},
	}
}

func TestDiscoverCategories(t *testing.T) {
	cats := discoverCategories(fixtureInput().Tables)

	assert.Equal(t, "Characteristic", cats.Level0)
	assert.Equal(t, "Group", cats.Level1)
	assert.Equal(t, "Standpoint", cats.Level2)
}

func TestSortedTableNames(t *testing.T) {
	names := sortedTableNames(fixtureInput().Tables)
	assert.Equal(t, []string{
		"layer_0a", "layer_0b", "layer_0c", "layer_0d",
		"layer_1a", "layer_1b", "layer_2",
	}, names)
}

func TestCalculateWeights(t *testing.T) {
	cfg := &contract.Config{Threshold: contract.DefaultThreshold, Workers: 2}

	result, err := CalculateWeights(fixtureInput(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "Standpoint", result.Categories.Level2)
	require.Len(t, result.PerStandpoint, 8)
	require.Len(t, result.Overall, 4)

	wantOverall := map[string]float64{
		"Speed":  0.3125,
		"Safety": 0.3125,
		"Range":  0.21875,
		"Style":  0.15625,
	}
	for _, ow := range result.Overall {
		assert.InDelta(t, wantOverall[ow.Entity], ow.Weight, 1e-9, "entity %s", ow.Entity)
	}
}

func TestCalculateWeightsSurfacesFirstError(t *testing.T) {
	// With several bad tables, the error reported is the one from the
	// first table by name, regardless of worker scheduling.
	input := fixtureInput()
	input.Tables["layer_0b"].Ratios[1][1] = 5
	input.Tables["layer_0d"].Ratios[0][0] = 5
	cfg := &contract.Config{Threshold: contract.DefaultThreshold, Workers: 4}

	_, err := CalculateWeights(input, cfg)

	var diagErr *schema.InvalidDiagonalError
	require.ErrorAs(t, err, &diagErr)
	assert.Equal(t, "layer_0b", diagErr.Table)
}

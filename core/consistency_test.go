package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/prioritize/schema"
)

// cyclicTable returns a filled 3x3 reciprocal matrix with a preference cycle
// A>B, B>C, C>A. Its largest eigenvalue is 3.5, so CI = 0.25 and the
// consistency ratio against RI(3) = 0.58 is about 0.431.
func cyclicTable() *schema.ComparisonTable {
	return &schema.ComparisonTable{
		Name:      "layer_0a",
		RowLabels: []string{"A", "B", "C"},
		ColLabels: []string{"A", "B", "C"},
		Ratios: [][]float64{
			{1, 2, 0.5},
			{0.5, 1, 2},
			{2, 0.5, 1},
		},
	}
}

func TestCheckConsistencyPerfectMatrix(t *testing.T) {
	// A transitive matrix has CI = 0 and passes without a random-index
	// entry for its order.
	table := &schema.ComparisonTable{
		Name:      "layer_0a",
		RowLabels: []string{"A", "B", "C"},
		ColLabels: []string{"A", "B", "C"},
		Ratios: [][]float64{
			{1, 2, 4},
			{0.5, 1, 2},
			{0.25, 0.5, 1},
		},
	}

	err := checkConsistency(table, schema.RandomIndex{}, 0.5)
	assert.NoError(t, err)
}

func TestCheckConsistencyWithinThreshold(t *testing.T) {
	ri := schema.RandomIndex{3: 0.58}

	err := checkConsistency(cyclicTable(), ri, 0.5)
	assert.NoError(t, err)
}

func TestCheckConsistencyOverThreshold(t *testing.T) {
	ri := schema.RandomIndex{3: 0.58}

	err := checkConsistency(cyclicTable(), ri, 0.1)

	var incErr *schema.InconsistentMatrixError
	require.ErrorAs(t, err, &incErr)
	assert.Equal(t, "layer_0a", incErr.Table)
	assert.InDelta(t, 0.431, incErr.Ratio, 0.001)
	assert.Equal(t, 0.1, incErr.Threshold)
}

func TestCheckConsistencyMissingReferenceIndex(t *testing.T) {
	// A nonzero CI needs the random index for its order; without a
	// tabulated value the matrix cannot be judged.
	err := checkConsistency(cyclicTable(), schema.RandomIndex{4: 0.9}, 0.5)

	var missErr *schema.MissingReferenceIndexError
	require.ErrorAs(t, err, &missErr)
	assert.Equal(t, 3, missErr.Order)
}

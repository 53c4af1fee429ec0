package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/prioritize/internal/contract"
	"github.com/huangsam/prioritize/schema"
)

var testCategories = schema.CategoryNames{
	Level0: "Characteristic",
	Level1: "Group",
	Level2: "Standpoint",
}

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name    string
		table   *schema.ComparisonTable
		wantErr error
	}{
		{
			name: "valid table",
			table: &schema.ComparisonTable{
				Name:      "layer_1",
				RowLabels: []string{"A", "B"},
				ColLabels: []string{"A", "B"},
				Ratios:    [][]float64{{1, 3}, {0, 1}},
			},
		},
		{
			name: "label count mismatch",
			table: &schema.ComparisonTable{
				Name:      "layer_1",
				RowLabels: []string{"A"},
				ColLabels: []string{"A", "B"},
				Ratios:    [][]float64{{1, 3}, {0, 1}},
			},
			wantErr: &schema.MalformedTableError{},
		},
		{
			name: "label order mismatch",
			table: &schema.ComparisonTable{
				Name:      "layer_1",
				RowLabels: []string{"B", "A"},
				ColLabels: []string{"A", "B"},
				Ratios:    [][]float64{{1, 3}, {0, 1}},
			},
			wantErr: &schema.MalformedTableError{},
		},
		{
			name: "diagonal not one",
			table: &schema.ComparisonTable{
				Name:      "layer_1",
				RowLabels: []string{"A", "B"},
				ColLabels: []string{"A", "B"},
				Ratios:    [][]float64{{1, 3}, {0, 2}},
			},
			wantErr: &schema.InvalidDiagonalError{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTable(tt.table)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.IsType(t, tt.wantErr, err)
		})
	}
}

func TestFillReciprocal(t *testing.T) {
	table := &schema.ComparisonTable{
		Name:      "layer_0a",
		RowLabels: []string{"A", "B", "C"},
		ColLabels: []string{"A", "B", "C"},
		Ratios: [][]float64{
			{1, 2, 4},
			{99, 1, 2}, // stale lower-triangle input gets overwritten
			{0, 0, 1},
		},
	}

	fillReciprocal(table)

	assert.InDelta(t, 0.5, table.Ratios[1][0], 1e-12)
	assert.InDelta(t, 0.25, table.Ratios[2][0], 1e-12)
	assert.InDelta(t, 0.5, table.Ratios[2][1], 1e-12)
	// Upper triangle and diagonal stay untouched
	assert.Equal(t, 2.0, table.Ratios[0][1])
	assert.Equal(t, 1.0, table.Ratios[1][1])
}

func TestGeometricMean(t *testing.T) {
	assert.InDelta(t, 2.0, geometricMean([]float64{1, 2, 4}), 1e-12)
	assert.InDelta(t, 1.0, geometricMean([]float64{1, 1, 1}), 1e-12)
	assert.InDelta(t, math.Sqrt(3), geometricMean([]float64{1, 3}), 1e-12)
}

func TestResolveHierarchyPath(t *testing.T) {
	tests := []struct {
		name   string
		corner string
		want   schema.HierarchyPath
	}{
		{
			name:   "top table",
			corner: "Standpoint",
			want: schema.HierarchyPath{
				Level:    schema.Level2,
				Category: "Standpoint",
			},
		},
		{
			name:   "middle table",
			corner: "Group/Cost",
			want: schema.HierarchyPath{
				Level:      schema.Level1,
				Category:   "Group",
				Standpoint: "Cost",
			},
		},
		{
			name:   "bottom table",
			corner: "Characteristic/Fit/Cost",
			want: schema.HierarchyPath{
				Level:      schema.Level0,
				Category:   "Characteristic",
				Group:      "Fit",
				Standpoint: "Cost",
			},
		},
		{
			name:   "category segment not first",
			corner: "Fit/Characteristic/Cost",
			want: schema.HierarchyPath{
				Level:      schema.Level0,
				Category:   "Characteristic",
				Group:      "Fit",
				Standpoint: "Cost",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &schema.ComparisonTable{Name: "layer_x", Corner: tt.corner}
			got, err := resolveHierarchyPath(table, testCategories)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveHierarchyPathTooManyAncestors(t *testing.T) {
	// Two non-category segments on a level-1 table overflow its one
	// ancestor slot.
	table := &schema.ComparisonTable{Name: "layer_1", Corner: "Fit/Cost"}
	cats := schema.CategoryNames{Level0: "Characteristic", Level1: "Group", Level2: "Standpoint"}

	_, err := resolveHierarchyPath(table, cats)

	var pathErr *schema.UnrecognizedHierarchyPathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "layer_1", pathErr.Table)
}

func TestResolveHierarchyPathNameLevelMismatch(t *testing.T) {
	// A layer_0 name with a two-segment corner cannot be placed.
	table := &schema.ComparisonTable{Name: "layer_0a", Corner: "Group/Cost"}

	_, err := resolveHierarchyPath(table, testCategories)

	var pathErr *schema.UnrecognizedHierarchyPathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "layer_0a", pathErr.Table)
}

func TestProcessTable(t *testing.T) {
	cfg := &contract.Config{Threshold: contract.DefaultThreshold}
	ri := schema.RandomIndex{3: 0.58}
	table := &schema.ComparisonTable{
		Name:      "layer_1a",
		Corner:    "Group/Cost",
		RowLabels: []string{"Fit", "Ease"},
		ColLabels: []string{"Fit", "Ease"},
		Ratios:    [][]float64{{1, 3}, {0, 1}},
	}

	weights, err := processTable(table, testCategories, ri, cfg)
	require.NoError(t, err)

	assert.Equal(t, "layer_1a", weights.Table)
	assert.Equal(t, schema.Level1, weights.Path.Level)
	assert.Equal(t, "Cost", weights.Path.Standpoint)
	require.Len(t, weights.Entries, 2)
	assert.Equal(t, "Fit", weights.Entries[0].Label)
	assert.InDelta(t, math.Sqrt(3), weights.Entries[0].Score, 1e-9)
	assert.InDelta(t, 0.75, weights.Entries[0].Weight, 1e-9)
	assert.InDelta(t, 0.25, weights.Entries[1].Weight, 1e-9)
}

func TestProcessTableSingleEntity(t *testing.T) {
	// An order-1 matrix needs no consistency check and no random index.
	cfg := &contract.Config{Threshold: contract.DefaultThreshold}
	table := &schema.ComparisonTable{
		Name:      "layer_1b",
		Corner:    "Group/Value",
		RowLabels: []string{"Fit"},
		ColLabels: []string{"Fit"},
		Ratios:    [][]float64{{1}},
	}

	weights, err := processTable(table, testCategories, schema.RandomIndex{}, cfg)
	require.NoError(t, err)
	require.Len(t, weights.Entries, 1)
	assert.InDelta(t, 1.0, weights.Entries[0].Weight, 1e-12)
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsComparisonTable(t *testing.T) {
	assert.True(t, IsComparisonTable("layer_0a"))
	assert.True(t, IsComparisonTable("layer_2"))
	assert.False(t, IsComparisonTable("random_index"))
	assert.False(t, IsComparisonTable("scoring"))
}

func TestLevelForTableName(t *testing.T) {
	tests := []struct {
		name   string
		table  string
		want   Level
		wantOK bool
	}{
		{"level zero with suffix", "layer_0b", Level0, true},
		{"level one", "layer_1", Level1, true},
		{"level two", "layer_2", Level2, true},
		{"not a layer table", "score_range", Level0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LevelForTableName(tt.table)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

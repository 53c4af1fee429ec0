package schema

import "strings"

// IsComparisonTable reports whether an input table name denotes a
// pairwise-comparison table.
func IsComparisonTable(name string) bool {
	return strings.Contains(name, LayerTablePrefix)
}

// LevelForTableName returns the hierarchy level encoded in an input table
// name. Names carry the substring "layer_0", "layer_1" or "layer_2" plus an
// optional distinguishing suffix letter, e.g. "layer_0b".
func LevelForTableName(name string) (Level, bool) {
	switch {
	case strings.Contains(name, LayerTablePrefix+"0"):
		return Level0, true
	case strings.Contains(name, LayerTablePrefix+"1"):
		return Level1, true
	case strings.Contains(name, LayerTablePrefix+"2"):
		return Level2, true
	default:
		return Level0, false
	}
}

package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for result persistence.
	StoreBackend string
)

// Level identifies one tier of the three-tier prioritization hierarchy.
// The aggregator keys its compiled record sets by Level, never by the
// runtime-discovered category strings.
type Level int

// All hierarchy levels, finest first.
const (
	Level0 Level = iota // Option characteristics / quantifiers
	Level1              // Characteristic groups
	Level2              // Stakeholder standpoints
)

// String returns the input-table naming for the level, e.g. "layer_0".
func (l Level) String() string {
	switch l {
	case Level0:
		return "layer_0"
	case Level1:
		return "layer_1"
	case Level2:
		return "layer_2"
	default:
		return "layer_?"
	}
}

// LevelFromSegments derives the level of a comparison table from the number
// of slash-separated segments in its corner label: one segment is the
// parentless level-2 table, three segments is a level-0 table.
func LevelFromSegments(count int) (Level, bool) {
	if count < 1 || count > 3 {
		return Level0, false
	}
	return Level(3 - count), true
}

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Reserved input table names and name substrings.
const (
	LayerTablePrefix = "layer_"       // comparison tables: layer_2, layer_1a, layer_0b, ...
	RandomIndexTable = "random_index" // matrix order → average consistency index
	ScoringTable     = "scoring"      // scenario × entity quantification results
	ScoreRangeTable  = "score_range"  // overall min and max score
)

// PathSeparator splits the segments of a corner label.
const PathSeparator = "/"

// DefaultBinLabels are the rating bins assigned to ranked options, worst
// first.
var DefaultBinLabels = []string{"red", "yellow", "green"}

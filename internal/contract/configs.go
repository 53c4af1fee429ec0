package contract

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/huangsam/prioritize/schema"
)

// Default values for configuration.
const (
	// DefaultThreshold is the consistency-ratio limit. It is a deployment
	// policy choice, deliberately looser than the 0.1 often cited in the
	// literature, and overridable per run.
	DefaultThreshold = 0.5
	DefaultPrecision = 4
	DefaultBins      = 3
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath string

	Threshold float64
	Workers   int
	Precision int

	Output     schema.OutputMode
	OutputFile string
	Detail     bool

	Bins      int
	BinLabels []string
	ZeroFloor bool

	StoreBackend   schema.StoreBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored bin labels in table output
	Width     int  // Terminal width override (0 = auto-detect)
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.BinLabels != nil {
		clone.BinLabels = make([]string, len(c.BinLabels))
		copy(clone.BinLabels, c.BinLabels)
	}
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Threshold      float64 `mapstructure:"threshold"`
	Workers        int     `mapstructure:"workers"`
	Precision      int     `mapstructure:"precision"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Detail         bool    `mapstructure:"detail"`
	StoreBackend   string  `mapstructure:"store-backend"`
	StoreDBConnect string  `mapstructure:"store-db-connect"`
	Color          string  `mapstructure:"color"`
	Width          int     `mapstructure:"width"`

	// --- Fields from evaluateCmd.Flags() ---
	Bins      int    `mapstructure:"bins"`
	BinLabels string `mapstructure:"bin-labels"`
	ZeroFloor bool   `mapstructure:"zero-floor"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processBins(cfg, input); err != nil {
		return err
	}
	if err := validateStoreBackend(cfg, input); err != nil {
		return err
	}
	return resolveInputPath(cfg, input)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", input.Threshold)
	}
	cfg.Threshold = input.Threshold

	cfg.Workers = input.Workers
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}

	if input.Precision < 0 || input.Precision > 10 {
		return fmt.Errorf("precision must be between 0 and 10, got %d", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	return nil
}

// processBins validates the rating-bin settings for option evaluation.
func processBins(cfg *Config, input *ConfigRawInput) error {
	cfg.Bins = input.Bins
	if cfg.Bins == 0 {
		cfg.Bins = DefaultBins
	}
	if cfg.Bins < 1 {
		return fmt.Errorf("bins must be at least 1, got %d", input.Bins)
	}

	if input.BinLabels == "" {
		if cfg.Bins == DefaultBins {
			cfg.BinLabels = schema.DefaultBinLabels
			cfg.ZeroFloor = input.ZeroFloor
			return nil
		}
		return fmt.Errorf("bin-labels is required when bins is not %d", DefaultBins)
	}

	labels := strings.Split(input.BinLabels, ",")
	for i := range labels {
		labels[i] = strings.TrimSpace(labels[i])
		if labels[i] == "" {
			return fmt.Errorf("bin-labels contains an empty label")
		}
	}
	if len(labels) != cfg.Bins {
		return fmt.Errorf("have %d bins but %d bin labels", cfg.Bins, len(labels))
	}
	cfg.BinLabels = labels
	cfg.ZeroFloor = input.ZeroFloor
	return nil
}

// validateStoreBackend validates the result-store configuration.
func validateStoreBackend(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// resolveInputPath checks that the input path exists. Whether it is a
// workbook or a directory of CSV files is decided by the ingestion layer.
func resolveInputPath(cfg *Config, input *ConfigRawInput) error {
	if input.InputPathStr == "" {
		return fmt.Errorf("input path is required")
	}
	if _, err := os.Stat(input.InputPathStr); err != nil {
		return fmt.Errorf("input path %q: %w", input.InputPathStr, err)
	}
	cfg.InputPath = input.InputPathStr
	return nil
}

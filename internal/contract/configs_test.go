package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/prioritize/schema"
)

// validRawInput returns a raw input that passes every validation step.
func validRawInput(t *testing.T) *ConfigRawInput {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "layer_2.csv"), []byte("x"), 0o644))
	return &ConfigRawInput{
		InputPathStr: dir,
		Threshold:    0.5,
		Workers:      2,
		Precision:    4,
		Output:       "text",
		StoreBackend: "none",
		Color:        "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	cfg := &Config{}
	input := validRawInput(t)

	err := ProcessAndValidate(cfg, input)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Threshold)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.NoneBackend, cfg.StoreBackend)
	assert.Equal(t, schema.DefaultBinLabels, cfg.BinLabels)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, input.InputPathStr, cfg.InputPath)
}

func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
		want   string
	}{
		{"zero threshold", func(i *ConfigRawInput) { i.Threshold = 0 }, "threshold"},
		{"negative precision", func(i *ConfigRawInput) { i.Precision = -1 }, "precision"},
		{"huge precision", func(i *ConfigRawInput) { i.Precision = 11 }, "precision"},
		{"bad output mode", func(i *ConfigRawInput) { i.Output = "yaml" }, "output mode"},
		{"parquet needs a file", func(i *ConfigRawInput) { i.Output = "parquet" }, "output-file"},
		{"bad color", func(i *ConfigRawInput) { i.Color = "maybe" }, "color"},
		{"bad store backend", func(i *ConfigRawInput) { i.StoreBackend = "redis" }, "store backend"},
		{"missing input path", func(i *ConfigRawInput) { i.InputPathStr = "" }, "input path"},
		{"nonexistent input path", func(i *ConfigRawInput) { i.InputPathStr = "/no/such/path" }, "input path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput(t)
			tt.mutate(input)

			err := ProcessAndValidate(&Config{}, input)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProcessAndValidateWorkersFallback(t *testing.T) {
	cfg := &Config{}
	input := validRawInput(t)
	input.Workers = 0

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestProcessBins(t *testing.T) {
	tests := []struct {
		name       string
		bins       int
		labels     string
		wantErr    string
		wantLabels []string
	}{
		{"defaults", 0, "", "", schema.DefaultBinLabels},
		{"default count without labels", 3, "", "", schema.DefaultBinLabels},
		{"custom labels", 2, "bad, good", "", []string{"bad", "good"}},
		{"custom count needs labels", 5, "", "bin-labels is required", nil},
		{"count mismatch", 2, "a,b,c", "2 bins but 3 bin labels", nil},
		{"empty label", 2, "a,", "empty label", nil},
		{"zero with labels", -1, "a", "at least 1", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			input := &ConfigRawInput{Bins: tt.bins, BinLabels: tt.labels}

			err := processBins(cfg, input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabels, cfg.BinLabels)
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.StoreBackend
		connStr string
		wantErr bool
	}{
		{"sqlite needs nothing", schema.SQLiteBackend, "", false},
		{"none needs nothing", schema.NoneBackend, "", false},
		{"valid mysql", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/results", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/results", true},
		{"mysql missing database", schema.MySQLBackend, "user:pass@tcp(localhost:3306)", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"valid postgres", schema.PostgreSQLBackend, "host=localhost dbname=results", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=results", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		Threshold: 0.3,
		BinLabels: []string{"bad", "good"},
	}

	clone := cfg.Clone()
	clone.BinLabels[0] = "worse"
	clone.Threshold = 0.9

	assert.Equal(t, "bad", cfg.BinLabels[0])
	assert.Equal(t, 0.3, cfg.Threshold)
}

package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/prioritize/internal/contract"
	"github.com/huangsam/prioritize/schema"
)

func evaluationFixture() *schema.EvaluationResult {
	return &schema.EvaluationResult{
		Weights: weightsFixture(),
		Scored: []schema.ScoredResult{
			{Scenario: "s1", Entity: "Speed", Option: "X", Result: 120, LinearScore: 6, FinalScore: 3},
		},
		PerStandpoint: []schema.RankedOption{
			{Scenario: "s1", Standpoint: "Cost", Option: "X", Total: 6.8, Bin: "green"},
			{Scenario: "s1", Standpoint: "Cost", Option: "Y", Total: 5.6, Bin: "yellow"},
		},
		Overall: []schema.RankedOption{
			{Scenario: "s1", Option: "Y", Total: 6.4, Bin: "green"},
			{Scenario: "s1", Option: "X", Total: 5.2, Bin: "yellow"},
		},
	}
}

func TestWriteEvaluationCSV(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat := createFormatter(2)

	err := writeEvaluationCSV(&buf, evaluationFixture(), fmtFloat)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5) // header + 2 standpoint rows + 2 overall rows

	assert.Equal(t, []string{"Scenario", "Standpoint", "Option", "Weighted Score", "Bin"}, records[0])
	assert.Equal(t, []string{"s1", "Cost", "X", "6.80", "green"}, records[1])
	assert.Equal(t, []string{"s1", "", "Y", "6.40", "green"}, records[3])
}

func TestWriteEvaluationTables(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Precision: 2, Workers: 2, Width: 120}
	fmtFloat := createFormatter(cfg.Precision)

	err := writeEvaluationTables(&buf, evaluationFixture(), cfg, fmtFloat, 7*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Ranked options per Standpoint")
	assert.Contains(t, out, "Ranked options overall")
	assert.Contains(t, out, "6.80")
	assert.Contains(t, out, "6.40")
	assert.Contains(t, out, "Evaluated 2 options")
	// Scored results stay hidden without the detail flag
	assert.NotContains(t, out, "Scored results")
}

func TestWriteEvaluationTablesDetail(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Precision: 2, Workers: 2, Width: 160, Detail: true}
	fmtFloat := createFormatter(cfg.Precision)

	err := writeEvaluationTables(&buf, evaluationFixture(), cfg, fmtFloat, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Scored results")
	assert.Contains(t, out, "120.00") // raw quantification result
}

func TestWriteRankedTableColors(t *testing.T) {
	// Colored labels keep the label text even when escapes are added.
	var buf bytes.Buffer
	cfg := &contract.Config{Precision: 2, Width: 120, UseColors: true}
	fmtFloat := createFormatter(cfg.Precision)

	err := writeRankedTable(&buf, evaluationFixture().PerStandpoint, "Standpoint", cfg, fmtFloat)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "green")
}

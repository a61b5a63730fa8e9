package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/core/table"
)

func sampleComparison() table.Comparison {
	return table.Comparison{
		Header: []string{"", "Acme", "Globex"},
		Rows: [][]string{
			{"Vendor", "Acme", "Globex"},
			{"Amount", "$1200", "$900"},
		},
	}
}

func TestComparisonFilename(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 15, 0, 0, time.FixedZone("EST", -5*3600))

	got := ComparisonFilename(now)

	assert.Equal(t, "comparison_2026-10-19T151500Z.xlsx", got)
	assert.NotContains(t, got, ":")
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, sampleComparison()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{ComparisonSheet}, f.GetSheetList())

	rows, err := f.GetRows(ComparisonSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"", "Acme", "Globex"},
		{"Vendor", "Acme", "Globex"},
		{"Amount", "$1200", "$900"},
	}, rows)
}

func TestWriteComparison_EmptyDoesNotBuildWorkbook(t *testing.T) {
	var buf bytes.Buffer

	err := WriteComparison(&buf, table.Comparison{})

	require.ErrorIs(t, err, ErrNothingSelected)
	assert.Zero(t, buf.Len())
}

func TestSaveComparison(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	path, err := SaveComparison(dir, sampleComparison(), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "comparison_2026-01-02T030405Z.xlsx"), path)
	assert.FileExists(t, path)

	_, err = SaveComparison(dir, table.Comparison{}, now)
	require.ErrorIs(t, err, ErrNothingSelected)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteActivityCSV(t *testing.T) {
	ts := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	entries := []activity.Entry{
		{Timestamp: ts, User: "ana@example.com", Action: activity.ActionCreate, Details: `Created "Cloud Migration"`},
		{Timestamp: ts.Add(time.Minute), User: "ben@example.com", Action: activity.ActionExport, Details: "Exported, twice"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteActivityCSV(&buf, entries))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"SL NO","Timestamp","User","Action","Details"`, lines[0])
	assert.Equal(t, `"1","2026-10-19 09:30:00","ana@example.com","create","Created ""Cloud Migration"""`, lines[1])

	// Round-trips through a standard CSV reader.
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Exported, twice", records[2][4])
	assert.Equal(t, "2", records[2][0])
}

func TestWriteActivityCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteActivityCSV(&buf, nil))
	assert.Equal(t, "\"SL NO\",\"Timestamp\",\"User\",\"Action\",\"Details\"\n", buf.String())
}

func TestSaveActivityCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	path, err := SaveActivityCSV(dir, nil)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ActivityFilename), path)
	assert.FileExists(t, path)
}

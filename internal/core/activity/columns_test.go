package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/core/table"
)

func TestColumns(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: "a", Timestamp: now.Add(-2 * time.Hour), User: "ana@example.com", Action: ActionCreate, Details: "Created RFP", RFPID: "RFP-006"},
		{ID: "b", Timestamp: now.Add(-30 * time.Minute), User: "ben@example.com", Action: ActionExport, Details: "Exported comparison"},
	}

	p := table.NewPresenter(Columns(func() time.Time { return now }), RowID, 10)
	p.SetRows(entries)

	when, ok := table.ColumnByKey(p.Columns(), "when")
	require.True(t, ok)
	assert.Equal(t, "2 hours ago", p.Cell(p.Entries()[0], when))

	require.True(t, p.ToggleSort("when"))
	require.True(t, p.ToggleSort("when"))
	assert.Equal(t, "b", p.Entries()[0].ID, "descending puts the newest first")

	require.NoError(t, p.SetFilter("export*"))
	assert.Equal(t, 1, p.Len())
}

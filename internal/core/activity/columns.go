package activity

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/colonyops/tender/internal/core/table"
)

// Columns describes the activity log table. now anchors the relative
// "When" column.
func Columns(now func() time.Time) []table.Column[Entry] {
	return []table.Column[Entry]{
		{
			Key: "when", Label: "When", Sortable: true,
			Value: func(e Entry) any { return e.Timestamp },
			Render: func(v any, _ Entry, _ int) string {
				return humanize.RelTime(v.(time.Time), now(), "ago", "from now")
			},
		},
		{Key: "user", Label: "User", Sortable: true, Value: func(e Entry) any { return e.User }},
		{Key: "action", Label: "Action", Sortable: true, Value: func(e Entry) any { return e.Action }},
		{Key: "rfp", Label: "RFP", Sortable: true, Value: func(e Entry) any { return e.RFPID }},
		{Key: "details", Label: "Details", Value: func(e Entry) any { return e.Details }},
	}
}

// RowID identifies activity rows.
func RowID(e Entry) string { return e.ID }

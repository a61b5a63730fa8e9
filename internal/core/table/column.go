// Package table provides a generic tabular presenter: pagination, row
// selection, sorting, filtering and side-by-side comparison of rows.
//
// The presenter holds no rendering code. Views (TUI, CLI) ask it for the
// visible page and turn entries into cells through the column descriptors.
package table

import (
	"fmt"
	"strconv"
	"time"
)

// Column describes one field of R shown in a table.
type Column[R any] struct {
	Key      string
	Label    string
	Sortable bool

	// Value extracts the raw field value from a row. A nil Value yields nil.
	Value func(R) any

	// Render optionally formats the value for display. index is the row's
	// position in the full collection, not in the current page.
	Render func(value any, row R, index int) string
}

// Raw returns the unformatted field value for row.
func (c Column[R]) Raw(row R) any {
	if c.Value == nil {
		return nil
	}
	return c.Value(row)
}

// Cell returns the display text for row, using Render when set.
func (c Column[R]) Cell(row R, index int) string {
	v := c.Raw(row)
	if c.Render != nil {
		return c.Render(v, row, index)
	}
	return FormatValue(v)
}

// FormatValue converts a raw field value into display text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// ColumnByKey returns the column with the given key.
func ColumnByKey[R any](columns []Column[R], key string) (Column[R], bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}

package table

// FieldLabel captions the label column when a comparison is shown on
// screen. The matrix header itself leaves that corner cell blank.
const FieldLabel = "Field"

// Comparison is a transposed view of selected rows: one matrix row per
// column descriptor and one matrix column per selected item.
type Comparison struct {
	// Header holds an empty corner cell followed by one name per selected item.
	Header []string
	// Rows holds, per column descriptor, the label followed by each item's
	// rendered value.
	Rows [][]string
}

// BuildComparison renders selected entries against columns. Cells are
// rendered exactly as on screen, so Render receives each entry's index in
// the full collection. Item names come from the first column.
func BuildComparison[R any](columns []Column[R], selected []Entry[R]) Comparison {
	if len(selected) == 0 || len(columns) == 0 {
		return Comparison{}
	}

	header := make([]string, 0, len(selected)+1)
	header = append(header, "")
	for _, e := range selected {
		name := columns[0].Cell(e.Row, e.Index)
		if name == "" {
			name = e.ID
		}
		header = append(header, name)
	}

	rows := make([][]string, 0, len(columns))
	for _, col := range columns {
		row := make([]string, 0, len(selected)+1)
		row = append(row, col.Label)
		for _, e := range selected {
			row = append(row, col.Cell(e.Row, e.Index))
		}
		rows = append(rows, row)
	}

	return Comparison{Header: header, Rows: rows}
}

// Empty reports whether the comparison has no items.
func (c Comparison) Empty() bool { return len(c.Header) < 2 }

// Items returns the number of compared items.
func (c Comparison) Items() int {
	if c.Empty() {
		return 0
	}
	return len(c.Header) - 1
}

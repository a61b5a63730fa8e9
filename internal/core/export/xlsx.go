// Package export writes table data to spreadsheet and CSV files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/colonyops/tender/internal/core/table"
)

// ComparisonSheet is the name of the single sheet in a comparison workbook.
const ComparisonSheet = "Comparison"

// ErrNothingSelected is returned when exporting an empty comparison.
var ErrNothingSelected = errors.New("no rows selected for comparison")

// ComparisonFilename returns the download name for a comparison exported at
// now, e.g. comparison_2026-10-19T101500Z.xlsx.
func ComparisonFilename(now time.Time) string {
	return "comparison_" + now.UTC().Format("2006-01-02T150405Z") + ".xlsx"
}

// NewComparisonWorkbook builds a single-sheet workbook: the header row
// first, then one row per compared field.
func NewComparisonWorkbook(c table.Comparison) (*excelize.File, error) {
	if c.Empty() {
		return nil, ErrNothingSelected
	}

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, ComparisonSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rows := make([][]string, 0, len(c.Rows)+1)
	rows = append(rows, c.Header)
	rows = append(rows, c.Rows...)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("cell name: %w", err)
		}

		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(ComparisonSheet, cell, &values); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return f, nil
}

// WriteComparison serializes the comparison workbook to w.
func WriteComparison(w io.Writer, c table.Comparison) error {
	f, err := NewComparisonWorkbook(c)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveComparison writes the workbook into dir under ComparisonFilename and
// returns the full path.
func SaveComparison(dir string, c table.Comparison, now time.Time) (string, error) {
	if c.Empty() {
		return "", ErrNothingSelected
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, ComparisonFilename(now))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteComparison(file, c); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}

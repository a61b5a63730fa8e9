package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/colonyops/tender/internal/core/activity"
)

// ActivityFilename is the file name used for activity log exports.
const ActivityFilename = "activity_log.csv"

// ActivityTimeFormat is the timestamp layout used in activity exports.
const ActivityTimeFormat = "2006-01-02 15:04:05"

var activityHeader = []string{"SL NO", "Timestamp", "User", "Action", "Details"}

// WriteActivityCSV writes entries as CSV with every field double-quoted.
// SL NO is the 1-based position of the entry in the slice.
func WriteActivityCSV(w io.Writer, entries []activity.Entry) error {
	bw := bufio.NewWriter(w)

	if err := writeQuotedRow(bw, activityHeader); err != nil {
		return err
	}

	for i, e := range entries {
		row := []string{
			strconv.Itoa(i + 1),
			e.Timestamp.Format(ActivityTimeFormat),
			e.User,
			e.Action,
			e.Details,
		}
		if err := writeQuotedRow(bw, row); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// SaveActivityCSV writes entries to dir/activity_log.csv and returns the path.
func SaveActivityCSV(dir string, entries []activity.Entry) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, ActivityFilename)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteActivityCSV(file, entries); err != nil {
		return "", err
	}
	return path, nil
}

// writeQuotedRow always quotes; encoding/csv only quotes when required.
func writeQuotedRow(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		}
		quoted := `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		if _, err := w.WriteString(quoted); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	if _, err := w.WriteString("\n"); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

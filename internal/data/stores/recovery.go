package stores

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/colonyops/tender/internal/data/db"
)

// IsCorruptionError reports whether err means the database file cannot be
// read as SQLite.
func IsCorruptionError(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB:
			return true
		}
	}

	msg := err.Error()
	return strings.Contains(msg, "database disk image is malformed") ||
		strings.Contains(msg, "file is not a database")
}

// OpenDB opens the database in dataDir. When the file is corrupt it is moved
// aside and a fresh database is created; backup is then the path the old
// file was moved to, and empty otherwise.
func OpenDB(dataDir string, opts db.OpenOptions) (database *db.DB, backup string, err error) {
	database, err = db.Open(dataDir, opts)
	if err == nil {
		return database, "", nil
	}
	if !IsCorruptionError(err) {
		return nil, "", err
	}

	backup, rerr := RecoverFromCorruption(dataDir, time.Now())
	if rerr != nil {
		return nil, "", fmt.Errorf("recover database after %q: %w", err, rerr)
	}

	database, err = db.Open(dataDir, opts)
	if err != nil {
		return nil, "", fmt.Errorf("open recovered database: %w", err)
	}
	return database, backup, nil
}

// RecoverFromCorruption moves the database file and its WAL/SHM sidecars to
// <file>.corrupt.<timestamp> so the next db.Open starts from an empty schema.
// It returns the backup path, or "" when there was no database file.
func RecoverFromCorruption(dataDir string, now time.Time) (string, error) {
	dbPath := filepath.Join(dataDir, db.FileName)
	backupPath := fmt.Sprintf("%s.corrupt.%s", dbPath, now.Format("20060102-150405"))

	moved := false
	for _, suffix := range []string{"", "-wal", "-shm"} {
		err := os.Rename(dbPath+suffix, backupPath+suffix)
		switch {
		case err == nil:
			moved = moved || suffix == ""
		case errors.Is(err, os.ErrNotExist):
		default:
			// A stale sidecar must not sit next to the fresh database.
			if suffix != "" && os.Remove(dbPath+suffix) == nil {
				continue
			}
			return "", fmt.Errorf("move %s aside: %w", filepath.Base(dbPath+suffix), err)
		}
	}

	if !moved {
		return "", nil
	}
	return backupPath, nil
}

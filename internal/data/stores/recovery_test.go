package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/data/db"
)

func TestIsCorruptionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not a database", errors.New("file is not a database (26)"), true},
		{"wrapped malformed", fmt.Errorf("open: %w", errors.New("database disk image is malformed")), true},
		{"other", errors.New("disk I/O error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorruptionError(tt.err))
		})
	}
}

func TestOpenDB_RecoversCorruptFile(t *testing.T) {
	dir := t.TempDir()
	garbage := bytes.Repeat([]byte("these are not the pages you are looking for "), 200)
	require.NoError(t, os.WriteFile(filepath.Join(dir, db.FileName), garbage, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, db.FileName+"-shm"), []byte("stale"), 0o644))

	database, backup, err := OpenDB(dir, db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NotEmpty(t, backup)
	assert.Equal(t, dir, filepath.Dir(backup))

	moved, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, garbage, moved)
	assert.FileExists(t, backup+"-shm")

	// The fresh database is migrated and usable.
	ctx := context.Background()
	store := NewActivityStore(database)
	require.NoError(t, store.Save(ctx, activity.Entry{User: "ana@example.com", Action: activity.ActionCreate}))
	items, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestOpenDB_HealthyDatabase(t *testing.T) {
	dir := t.TempDir()

	first, backup, err := OpenDB(dir, db.DefaultOpenOptions())
	require.NoError(t, err)
	assert.Empty(t, backup)
	require.NoError(t, NewActivityStore(first).Save(context.Background(), activity.Entry{User: "ana@example.com", Action: activity.ActionCreate}))
	require.NoError(t, first.Close())

	second, backup, err := OpenDB(dir, db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	assert.Empty(t, backup)

	items, err := NewActivityStore(second).List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, items, 1, "a healthy database is never moved aside")
}

func TestRecoverFromCorruption(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 15, 0, 0, time.UTC)

	t.Run("missing file", func(t *testing.T) {
		backup, err := RecoverFromCorruption(t.TempDir(), now)
		require.NoError(t, err)
		assert.Empty(t, backup)
	})

	t.Run("moves database and sidecars", func(t *testing.T) {
		dir := t.TempDir()
		for _, suffix := range []string{"", "-wal", "-shm"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, db.FileName+suffix), []byte("x"), 0o644))
		}

		backup, err := RecoverFromCorruption(dir, now)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "tender.db.corrupt.20261019-101500"), backup)

		for _, suffix := range []string{"", "-wal", "-shm"} {
			assert.FileExists(t, backup+suffix)
			assert.NoFileExists(t, filepath.Join(dir, db.FileName+suffix))
		}
	})

	t.Run("sidecar without database", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, db.FileName+"-wal"), []byte("x"), 0o644))

		backup, err := RecoverFromCorruption(dir, now)
		require.NoError(t, err)
		assert.Empty(t, backup)
		assert.NoFileExists(t, filepath.Join(dir, db.FileName+"-wal"))
	})
}

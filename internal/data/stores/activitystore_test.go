package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/core/activity"
)

func TestActivityStore(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, store *ActivityStore) {
		t.Helper()
		entries := []activity.Entry{
			{User: "ana@example.com", Action: activity.ActionCreate, Details: "Created RFP", RFPID: "RFP-001", Timestamp: base},
			{User: "ben@example.com", Action: activity.ActionExport, Details: "Exported comparison", Timestamp: base.Add(time.Minute)},
			{User: "ana@example.com", Action: activity.ActionUpdate, Details: "Changed budget", RFPID: "RFP-001", Timestamp: base.Add(2 * time.Minute)},
		}
		for _, e := range entries {
			require.NoError(t, store.Save(ctx, e))
		}
	}

	t.Run("list newest first with generated ids", func(t *testing.T) {
		store := NewActivityStore(openDB(t))
		seed(t, store)

		items, err := store.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, activity.ActionUpdate, items[0].Action)
		assert.Equal(t, activity.ActionCreate, items[2].Action)
		assert.True(t, items[0].Timestamp.Equal(base.Add(2*time.Minute)))
		for _, e := range items {
			assert.NotEmpty(t, e.ID)
		}
	})

	t.Run("limit", func(t *testing.T) {
		store := NewActivityStore(openDB(t))
		seed(t, store)

		items, err := store.List(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("list by rfp", func(t *testing.T) {
		store := NewActivityStore(openDB(t))
		seed(t, store)

		items, err := store.ListByRFP(ctx, "rfp-001")
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, e := range items {
			assert.Equal(t, "RFP-001", e.RFPID)
		}

		none, err := store.ListByRFP(ctx, "RFP-404")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("clear", func(t *testing.T) {
		store := NewActivityStore(openDB(t))
		seed(t, store)

		require.NoError(t, store.Clear(ctx))
		items, err := store.List(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("clear with cancelled context keeps entries", func(t *testing.T) {
		store := NewActivityStore(openDB(t))
		seed(t, store)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		require.Error(t, store.Clear(cancelled))

		items, err := store.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})
}

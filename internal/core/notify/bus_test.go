package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for testing.
type memStore struct {
	items  []Notification
	nextID int64
	err    error
}

func (m *memStore) Save(_ context.Context, n Notification) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	n.ID = m.nextID
	m.items = append(m.items, n)
	return n.ID, nil
}

func (m *memStore) List(_ context.Context) ([]Notification, error) {
	out := make([]Notification, len(m.items))
	for i, n := range m.items {
		out[len(m.items)-1-i] = n
	}
	return out, nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.items = nil
	return nil
}

func (m *memStore) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func TestBus_Publish_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus(&memStore{})

	var received []Notification
	bus.Subscribe(func(n Notification) {
		received = append(received, n)
	})

	bus.Success("Link created", "Document link saved")
	bus.Info("Coming soon", "Approve is not available yet")
	bus.Warn("Nothing to compare", "Select at least two rows")
	bus.Error("Export failed", errors.New("disk full"))

	require.Len(t, received, 4)
	assert.Equal(t, LevelSuccess, received[0].Level)
	assert.Equal(t, "Link created: Document link saved", received[0].Message())
	assert.Equal(t, LevelInfo, received[1].Level)
	assert.Equal(t, LevelWarning, received[2].Level)
	assert.Equal(t, LevelError, received[3].Level)
	assert.Equal(t, "disk full", received[3].Description)
}

func TestBus_Publish_assigns_id_and_timestamp(t *testing.T) {
	store := &memStore{}
	bus := NewBus(store)

	var got Notification
	bus.Subscribe(func(n Notification) { got = n })
	bus.Success("Saved", "")

	assert.Equal(t, int64(1), got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "Saved", got.Message())

	history, err := bus.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, 1)

	require.NoError(t, bus.Clear(context.Background()))
	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBus_Publish_store_failure_still_dispatches(t *testing.T) {
	bus := NewBus(&memStore{err: errors.New("locked")})

	called := false
	bus.Subscribe(func(n Notification) {
		called = true
		assert.Zero(t, n.ID)
	})
	bus.Info("hello", "")

	assert.True(t, called)
}

func TestBus_nil_store(t *testing.T) {
	bus := NewBus(nil)
	bus.Info("no store", "")

	history, err := bus.History(context.Background())
	require.NoError(t, err)
	assert.Nil(t, history)
	require.NoError(t, bus.Clear(context.Background()))
}

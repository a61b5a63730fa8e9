package tui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/core/notify"
)

func TestNotificationBuffer_DrainEmpty(t *testing.T) {
	assert.Nil(t, NewNotificationBuffer().Drain())
}

func TestNotificationBuffer_AttachedToBus(t *testing.T) {
	b := NewNotificationBuffer()
	bus := notify.NewBus(nil)
	b.Attach(bus)

	bus.Success("RFP created", "RFP-006")
	bus.Warn("Nothing to export", "No rows selected for comparison")

	items := b.Drain()
	require.Len(t, items, 2)
	assert.Equal(t, notify.LevelSuccess, items[0].Level)
	assert.Equal(t, "Nothing to export", items[1].Title)
	assert.Nil(t, b.Drain())
}

func TestNotificationBuffer_SignalCoalesces(t *testing.T) {
	b := NewNotificationBuffer()
	b.Push(info("one"))
	b.Push(info("two"))

	msg := b.WaitForSignal()()
	_, ok := msg.(drainNotificationsMsg)
	require.True(t, ok)
	assert.Len(t, b.Drain(), 2)
	assert.Empty(t, b.signal, "second push must not queue another signal")
}

func TestNotificationBuffer_ConcurrentPush(t *testing.T) {
	b := NewNotificationBuffer()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Push(info("concurrent"))
		}()
	}
	wg.Wait()

	assert.Len(t, b.Drain(), 50)
}

package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/core/notify"
)

func info(title string) notify.Notification {
	return notify.Notification{Level: notify.LevelInfo, Title: title}
}

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(info("RFP created"))

	require.True(t, c.HasToasts())
	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "RFP created", c.Toasts()[0].notification.Title)
	assert.Equal(t, toastTTL, c.Toasts()[0].remaining)
}

func TestToastController_ErrorsStayLonger(t *testing.T) {
	c := NewToastController()

	c.Push(notify.Notification{Level: notify.LevelError, Title: "Export failed"})

	assert.Equal(t, errorToastTTL, c.Toasts()[0].remaining)
}

func TestToastController_EvictsOldest(t *testing.T) {
	c := NewToastController()

	for i := range maxToasts + 2 {
		c.Push(info(fmt.Sprintf("toast %d", i)))
	}

	require.Len(t, c.Toasts(), maxToasts)
	assert.Equal(t, "toast 2", c.Toasts()[0].notification.Title)
}

func TestToastController_RepeatRefreshesNewest(t *testing.T) {
	c := NewToastController()
	c.Push(info("Coming soon"))
	c.Tick(3 * time.Second)

	c.Push(info("Coming soon"))

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, 1, c.Toasts()[0].repeats)
	assert.Equal(t, toastTTL, c.Toasts()[0].remaining)
}

func TestToastController_Tick(t *testing.T) {
	c := NewToastController()
	c.Push(info("expires"))
	c.Push(info("survives"))
	c.toasts[0].remaining = 50 * time.Millisecond

	c.Tick(100 * time.Millisecond)

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Title)
	assert.Equal(t, toastTTL-100*time.Millisecond, c.Toasts()[0].remaining)
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController()
	c.Push(info("first"))
	c.Push(info("second"))

	c.Dismiss()

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].notification.Title)

	c.Dismiss()
	c.Dismiss()
	assert.False(t, c.HasToasts())
}

package tui

import (
	"time"

	"github.com/colonyops/tender/internal/core/notify"
)

const (
	toastTTL          = 5 * time.Second
	errorToastTTL     = 8 * time.Second
	maxToasts         = 5
	toastTickInterval = 100 * time.Millisecond
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
	repeats      int
}

func ttlFor(level notify.Level) time.Duration {
	if level == notify.LevelError {
		return errorToastTTL
	}
	return toastTTL
}

// ToastController owns the stack of visible toasts: push, TTL countdown,
// eviction and dismissal. A toast identical to the newest one refreshes it
// instead of stacking.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push shows n. The oldest toast is evicted beyond maxToasts.
func (c *ToastController) Push(n notify.Notification) {
	if last := len(c.toasts) - 1; last >= 0 && sameToast(c.toasts[last].notification, n) {
		c.toasts[last].remaining = ttlFor(n.Level)
		c.toasts[last].repeats++
		return
	}

	c.toasts = append(c.toasts, toast{notification: n, remaining: ttlFor(n.Level)})
	if len(c.toasts) > maxToasts {
		c.toasts = c.toasts[len(c.toasts)-maxToasts:]
	}
}

func sameToast(a, b notify.Notification) bool {
	return a.Level == b.Level && a.Title == b.Title && a.Description == b.Description
}

// Tick counts every toast down by d and drops the expired ones.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

func (c *ToastController) HasToasts() bool { return len(c.toasts) > 0 }

// Toasts returns the visible toasts, oldest first.
func (c *ToastController) Toasts() []toast { return c.toasts }

// Ticking reports whether a tick command is in flight.
func (c *ToastController) Ticking() bool { return c.ticking }

func (c *ToastController) SetTicking(v bool) { c.ticking = v }

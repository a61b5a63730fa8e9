package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/tender/internal/core/notify"
)

type drainNotificationsMsg struct{}

// NotificationBuffer carries bus notifications into the bubbletea loop.
// Services publish from command goroutines; the buffer queues them and
// raises a single coalesced signal until the model drains it.
type NotificationBuffer struct {
	mu      sync.Mutex
	pending []notify.Notification
	signal  chan struct{}
}

func NewNotificationBuffer() *NotificationBuffer {
	return &NotificationBuffer{signal: make(chan struct{}, 1)}
}

// Attach subscribes the buffer to bus.
func (b *NotificationBuffer) Attach(bus *notify.Bus) {
	bus.Subscribe(b.Push)
}

// Push queues n without blocking.
func (b *NotificationBuffer) Push(n notify.Notification) {
	b.mu.Lock()
	b.pending = append(b.pending, n)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns the queued notifications in publish order, or nil.
func (b *NotificationBuffer) Drain() []notify.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.pending) == 0 {
		return nil
	}
	out := b.pending
	b.pending = nil
	return out
}

// WaitForSignal blocks until notifications are queued.
func (b *NotificationBuffer) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return drainNotificationsMsg{}
	}
}

// Package notify defines user-facing toast notifications and the bus that
// dispatches them.
package notify

import (
	"context"
	"time"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a transient toast with a title and a description.
type Notification struct {
	ID          int64
	Level       Level
	Title       string
	Description string
	CreatedAt   time.Time
}

// Message returns the single-line form "Title: Description".
func (n Notification) Message() string {
	if n.Description == "" {
		return n.Title
	}
	if n.Title == "" {
		return n.Description
	}
	return n.Title + ": " + n.Description
}

// Store persists notifications to durable storage.
type Store interface {
	Save(ctx context.Context, n Notification) (int64, error)
	List(ctx context.Context) ([]Notification, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// Package activity defines the audit trail of user operations.
package activity

import (
	"context"
	"time"
)

// Action names recorded in the log.
const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionExport  = "export"
	ActionLogin   = "login"
	ActionLogout  = "logout"
	ActionCompare = "compare"
	ActionQuery   = "query"
)

// Entry is a single recorded operation.
type Entry struct {
	ID        string
	Timestamp time.Time
	User      string
	Action    string
	Details   string
	RFPID     string
}

// Store persists activity entries.
type Store interface {
	Save(ctx context.Context, e Entry) error
	// List returns entries newest first. limit <= 0 returns everything.
	List(ctx context.Context, limit int) ([]Entry, error)
	ListByRFP(ctx context.Context, rfpID string) ([]Entry, error)
	Clear(ctx context.Context) error
}

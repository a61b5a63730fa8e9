package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/data/db"
)

// ActivityStore implements activity.Store using SQLite.
type ActivityStore struct {
	db *db.DB
}

var _ activity.Store = (*ActivityStore)(nil)

// NewActivityStore creates a new SQLite-backed activity log.
func NewActivityStore(db *db.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

const activityColumns = `id, created_at, user, action, details, rfp_id`

// Save appends an entry. Missing IDs and timestamps are filled in.
func (s *ActivityStore) Save(ctx context.Context, e activity.Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	_, err := s.db.Conn().ExecContext(ctx,
		`INSERT INTO activity_log (`+activityColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Timestamp.UnixNano(), e.User, e.Action, e.Details, e.RFPID,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// List returns entries newest first. limit <= 0 returns everything.
func (s *ActivityStore) List(ctx context.Context, limit int) ([]activity.Entry, error) {
	query := `SELECT ` + activityColumns + ` FROM activity_log ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return scanActivity(rows)
}

// ListByRFP returns the entries recorded against one RFP, newest first.
func (s *ActivityStore) ListByRFP(ctx context.Context, rfpID string) ([]activity.Entry, error) {
	rows, err := s.db.Conn().QueryContext(ctx,
		`SELECT `+activityColumns+` FROM activity_log WHERE rfp_id = ? COLLATE NOCASE ORDER BY created_at DESC, id`,
		rfpID,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity for %s: %w", rfpID, err)
	}
	return scanActivity(rows)
}

// Clear deletes every entry in one transaction.
func (s *ActivityStore) Clear(ctx context.Context) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM activity_log`); err != nil {
			return fmt.Errorf("clear activity: %w", err)
		}
		return nil
	})
}

func scanActivity(rows *sql.Rows) ([]activity.Entry, error) {
	defer func() { _ = rows.Close() }()

	out := []activity.Entry{}
	for rows.Next() {
		var (
			e       activity.Entry
			created int64
		)
		if err := rows.Scan(&e.ID, &created, &e.User, &e.Action, &e.Details, &e.RFPID); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		e.Timestamp = time.Unix(0, created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan activity: %w", err)
	}
	return out, nil
}

package activity

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/releasedrop/internal/client/models"
	"github.com/dmitrijs2005/releasedrop/internal/dbx"
)

// SQLiteStore keeps the log in the activity_log table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ReadAll(ctx context.Context) ([]models.ActivityLogEntry, error) {
	return readAll(ctx, s.db)
}

// Overwrite swaps the table contents in a single transaction.
func (s *SQLiteStore) Overwrite(ctx context.Context, entries []models.ActivityLogEntry) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM activity_log`); err != nil {
			return fmt.Errorf("failed to clear activity log: %w", err)
		}

		query := `INSERT INTO activity_log (id, file_name, release_name, created_at, user_tag) VALUES (?, ?, ?, ?, ?)`
		for _, e := range entries {
			_, err := tx.ExecContext(ctx, query, e.ID, e.FileName, e.Release, e.TimestampISO(), e.UserTag)
			if err != nil {
				return fmt.Errorf("failed to insert activity entry: %w", err)
			}
		}
		return nil
	})
}

func readAll(ctx context.Context, db dbx.DBTX) ([]models.ActivityLogEntry, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, file_name, release_name, created_at, user_tag FROM activity_log ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("error selecting activity log: %w", err)
	}
	defer rows.Close()

	result := make([]models.ActivityLogEntry, 0)
	for rows.Next() {
		var e models.ActivityLogEntry
		var ts string
		if err := rows.Scan(&e.ID, &e.FileName, &e.Release, &ts, &e.UserTag); err != nil {
			return nil, err
		}
		e.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("bad timestamp %q in activity log: %w", ts, err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

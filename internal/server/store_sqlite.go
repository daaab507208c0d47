package server

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"guestwall/internal/shared"
)

// SQLiteStore is the local-file Store backend. Mongo assigns document ids;
// here the application mints them.
type SQLiteStore struct {
	DB *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

func (s *SQLiteStore) Insert(ctx context.Context, e *shared.Entry) (string, error) {
	id := uuid.NewString()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO entries (id, text, created_at, user_id)
		 VALUES (?, ?, ?, ?)`,
		id, e.Text, e.CreatedAt.UnixMilli(), e.UserID,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *SQLiteStore) ListAll(ctx context.Context) ([]shared.Entry, error) {
	// rowid breaks ties for entries created in the same millisecond
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, text, created_at, user_id
		 FROM entries
		 ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []shared.Entry{}
	for rows.Next() {
		var e shared.Entry
		var createdMs int64
		if err := rows.Scan(&e.ID, &e.Text, &createdMs, &e.UserID); err != nil {
			return nil, err
		}
		e.CreatedAt = time.UnixMilli(createdMs).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

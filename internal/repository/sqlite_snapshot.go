package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/wellow/internal/db"
)

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

func (r *SQLiteSnapshotRepo) Create(ctx context.Context, s *Snapshot) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, started_at, exported_at) VALUES (?, ?, ?)`,
		s.ID, formatTime(s.StartedAt), formatTime(s.ExportedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) GetByID(ctx context.Context, id string) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, started_at, exported_at FROM snapshots WHERE id = ?`, id)

	var s Snapshot
	var startedAt, exportedAt string
	if err := row.Scan(&s.ID, &startedAt, &exportedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}
	s.StartedAt = parseTime(startedAt)
	s.ExportedAt = parseTime(exportedAt)
	return &s, nil
}

func (r *SQLiteSnapshotRepo) List(ctx context.Context) ([]*Snapshot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, started_at, exported_at FROM snapshots ORDER BY exported_at`)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var out []*Snapshot
	for rows.Next() {
		var s Snapshot
		var startedAt, exportedAt string
		if err := rows.Scan(&s.ID, &startedAt, &exportedAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		s.StartedAt = parseTime(startedAt)
		s.ExportedAt = parseTime(exportedAt)
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Delete removes a snapshot and, by cascade, everything exported with it.
func (r *SQLiteSnapshotRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	return nil
}

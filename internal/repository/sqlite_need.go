package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/wellow/internal/db"
	"github.com/alexanderramin/wellow/internal/domain"
)

// SQLiteNeedRepo implements NeedRepo using a SQLite database.
type SQLiteNeedRepo struct {
	db db.DBTX
}

func NewSQLiteNeedRepo(conn db.DBTX) *SQLiteNeedRepo {
	return &SQLiteNeedRepo{db: conn}
}

func (r *SQLiteNeedRepo) Create(ctx context.Context, snapshotID string, n *domain.Need) error {
	query := `INSERT INTO needs (snapshot_id, id, label, category, priority, neighborhood, identified_date, impact_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		snapshotID,
		n.ID,
		n.Label,
		string(n.Category),
		string(n.Priority),
		n.Neighborhood,
		n.IdentifiedDate.Format(dateLayout),
		n.ImpactScore,
	)
	if err != nil {
		return fmt.Errorf("inserting need %d: %w", n.ID, err)
	}
	return nil
}

func (r *SQLiteNeedRepo) List(ctx context.Context, snapshotID string) ([]domain.Need, error) {
	query := `SELECT id, label, category, priority, neighborhood, identified_date, impact_score
		FROM needs WHERE snapshot_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing needs: %w", err)
	}
	defer rows.Close()

	var needs []domain.Need
	for rows.Next() {
		var n domain.Need
		var category, priority, identified string
		if err := rows.Scan(&n.ID, &n.Label, &category, &priority, &n.Neighborhood, &identified, &n.ImpactScore); err != nil {
			return nil, fmt.Errorf("scanning need: %w", err)
		}
		n.Category = domain.Category(category)
		n.Priority = domain.Priority(priority)
		if t, err := time.Parse(dateLayout, identified); err == nil {
			n.IdentifiedDate = t
		}
		needs = append(needs, n)
	}
	return needs, rows.Err()
}

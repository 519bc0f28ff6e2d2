package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wellow/internal/db"
	"github.com/alexanderramin/wellow/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, snapshotID string, seq int, a *domain.Activity) error {
	query := `INSERT INTO activities (snapshot_id, seq, need_id, partner_id, need, category, partner_name,
		description, estimated_impact, estimated_effort, feasibility_score, neighborhood)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		snapshotID,
		seq,
		a.NeedID,
		a.PartnerID,
		a.Need,
		string(a.Category),
		a.PartnerName,
		a.Description,
		a.EstimatedImpact,
		a.EstimatedEffort,
		a.FeasibilityScore,
		a.Neighborhood,
	)
	if err != nil {
		return fmt.Errorf("inserting activity %d: %w", seq, err)
	}
	return nil
}

func (r *SQLiteActivityRepo) List(ctx context.Context, snapshotID string) ([]domain.Activity, error) {
	query := `SELECT need_id, partner_id, need, category, partner_name, description,
		estimated_impact, estimated_effort, feasibility_score, neighborhood
		FROM activities WHERE snapshot_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		var category string
		err := rows.Scan(&a.NeedID, &a.PartnerID, &a.Need, &category, &a.PartnerName, &a.Description,
			&a.EstimatedImpact, &a.EstimatedEffort, &a.FeasibilityScore, &a.Neighborhood)
		if err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.Category = domain.Category(category)
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

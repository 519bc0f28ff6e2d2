package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wellow/internal/db"
	"github.com/alexanderramin/wellow/internal/domain"
)

// SQLitePartnerRepo implements PartnerRepo using a SQLite database.
type SQLitePartnerRepo struct {
	db db.DBTX
}

func NewSQLitePartnerRepo(conn db.DBTX) *SQLitePartnerRepo {
	return &SQLitePartnerRepo{db: conn}
}

func (r *SQLitePartnerRepo) Create(ctx context.Context, snapshotID string, p *domain.Partner) error {
	query := `INSERT INTO partners (snapshot_id, id, name, type, focus_area, address, website,
		contact_person, latitude, longitude, previous_engagements)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		snapshotID,
		p.ID,
		p.Name,
		string(p.Type),
		string(p.FocusArea),
		p.Address,
		p.Website,
		p.ContactPerson,
		p.Latitude,
		p.Longitude,
		p.PreviousEngagements,
	)
	if err != nil {
		return fmt.Errorf("inserting partner %d: %w", p.ID, err)
	}
	return nil
}

func (r *SQLitePartnerRepo) List(ctx context.Context, snapshotID string) ([]domain.Partner, error) {
	query := `SELECT id, name, type, focus_area, address, website, contact_person,
		latitude, longitude, previous_engagements
		FROM partners WHERE snapshot_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing partners: %w", err)
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		var p domain.Partner
		var typ, focus string
		err := rows.Scan(&p.ID, &p.Name, &typ, &focus, &p.Address, &p.Website, &p.ContactPerson,
			&p.Latitude, &p.Longitude, &p.PreviousEngagements)
		if err != nil {
			return nil, fmt.Errorf("scanning partner: %w", err)
		}
		p.Type = domain.PartnerType(typ)
		p.FocusArea = domain.FocusArea(focus)
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wellow/internal/db"
	"github.com/alexanderramin/wellow/internal/domain"
)

// SnapshotContents is everything written for one session.
type SnapshotContents struct {
	Snapshot   Snapshot
	Needs      []domain.Need
	Partners   []domain.Partner
	Activities []domain.Activity
}

// SnapshotCounts reports row counts for one stored snapshot.
type SnapshotCounts struct {
	Needs      int
	Partners   int
	Activities int
}

// ExportSnapshot writes a session into the database in one transaction.
// An earlier snapshot with the same ID is replaced.
func ExportSnapshot(ctx context.Context, uow db.UnitOfWork, c *SnapshotContents) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		snapshots := NewSQLiteSnapshotRepo(tx)
		needs := NewSQLiteNeedRepo(tx)
		partners := NewSQLitePartnerRepo(tx)
		activities := NewSQLiteActivityRepo(tx)

		if err := snapshots.Delete(ctx, c.Snapshot.ID); err != nil {
			return err
		}
		if err := snapshots.Create(ctx, &c.Snapshot); err != nil {
			return err
		}
		for i := range c.Needs {
			if err := needs.Create(ctx, c.Snapshot.ID, &c.Needs[i]); err != nil {
				return err
			}
		}
		for i := range c.Partners {
			if err := partners.Create(ctx, c.Snapshot.ID, &c.Partners[i]); err != nil {
				return err
			}
		}
		for i := range c.Activities {
			if err := activities.Create(ctx, c.Snapshot.ID, i+1, &c.Activities[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// CountSnapshot reads back the row counts of a stored snapshot.
func CountSnapshot(ctx context.Context, conn db.DBTX, snapshotID string) (SnapshotCounts, error) {
	if _, err := NewSQLiteSnapshotRepo(conn).GetByID(ctx, snapshotID); err != nil {
		return SnapshotCounts{}, err
	}
	needs, err := NewSQLiteNeedRepo(conn).List(ctx, snapshotID)
	if err != nil {
		return SnapshotCounts{}, fmt.Errorf("counting needs: %w", err)
	}
	partners, err := NewSQLitePartnerRepo(conn).List(ctx, snapshotID)
	if err != nil {
		return SnapshotCounts{}, fmt.Errorf("counting partners: %w", err)
	}
	activities, err := NewSQLiteActivityRepo(conn).List(ctx, snapshotID)
	if err != nil {
		return SnapshotCounts{}, fmt.Errorf("counting activities: %w", err)
	}
	return SnapshotCounts{Needs: len(needs), Partners: len(partners), Activities: len(activities)}, nil
}

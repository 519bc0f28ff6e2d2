package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/wellow/internal/domain"
)

var ErrNotFound = errors.New("not found")

// Snapshot is the header row of one exported session.
type Snapshot struct {
	ID         string
	StartedAt  time.Time
	ExportedAt time.Time
}

type SnapshotRepo interface {
	Create(ctx context.Context, s *Snapshot) error
	GetByID(ctx context.Context, id string) (*Snapshot, error)
	List(ctx context.Context) ([]*Snapshot, error)
	Delete(ctx context.Context, id string) error
}

type NeedRepo interface {
	Create(ctx context.Context, snapshotID string, n *domain.Need) error
	List(ctx context.Context, snapshotID string) ([]domain.Need, error)
}

type PartnerRepo interface {
	Create(ctx context.Context, snapshotID string, p *domain.Partner) error
	List(ctx context.Context, snapshotID string) ([]domain.Partner, error)
}

// ActivityRepo stores activities in suggestion order; seq is that order.
type ActivityRepo interface {
	Create(ctx context.Context, snapshotID string, seq int, a *domain.Activity) error
	List(ctx context.Context, snapshotID string) ([]domain.Activity, error)
}

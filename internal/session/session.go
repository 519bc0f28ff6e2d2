// Package session holds the entity data generated once per dashboard
// session. Data is built lazily on first access and never regenerated for
// the life of the session.
package session

import (
	"sync"
	"time"

	"github.com/alexanderramin/wellow/internal/catalog"
	"github.com/alexanderramin/wellow/internal/domain"
	"github.com/alexanderramin/wellow/internal/generation"
	"github.com/alexanderramin/wellow/internal/matching"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Data is one session's needs, partners and activities. It must be treated
// as read-only once returned.
type Data struct {
	ID         uuid.UUID
	StartedAt  time.Time
	Needs      []domain.Need
	Partners   []domain.Partner
	Activities []domain.Activity
}

// Partner looks up a partner by ID.
func (d *Data) Partner(id int) (domain.Partner, bool) {
	for _, p := range d.Partners {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Partner{}, false
}

// Need looks up a need by ID.
func (d *Data) Need(id int) (domain.Need, bool) {
	for _, n := range d.Needs {
		if n.ID == id {
			return n, true
		}
	}
	return domain.Need{}, false
}

// Builder generates session data from a catalog and a random source. The
// source is shared by Build and ImpactMetrics, so both hold mu.
type Builder struct {
	mu  sync.Mutex
	cat *catalog.Catalog
	gen *generation.Generator
	rng generation.Rand
	now func() time.Time
	log *zap.Logger
}

// NewBuilder creates a Builder. now defaults to time.Now, log to a no-op.
func NewBuilder(cat *catalog.Catalog, rng generation.Rand, now func() time.Time, log *zap.Logger) *Builder {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		cat: cat,
		gen: generation.NewGenerator(cat, rng, now),
		rng: rng,
		now: now,
		log: log,
	}
}

// Build generates needs, partners and the activities matched between them
// in one step.
func (b *Builder) Build(id uuid.UUID) *Data {
	b.mu.Lock()
	defer b.mu.Unlock()

	needs := b.gen.GenerateNeeds()
	partners := b.gen.GeneratePartners()
	activities := matching.SuggestActivities(needs, partners, b.cat.ActivityPhrases, b.rng)

	b.log.Info("session generated",
		zap.String("session_id", id.String()),
		zap.Int("needs", len(needs)),
		zap.Int("partners", len(partners)),
		zap.Int("activities", len(activities)),
	)

	return &Data{
		ID:         id,
		StartedAt:  b.now(),
		Needs:      needs,
		Partners:   partners,
		Activities: activities,
	}
}

// ImpactMetrics draws fresh mock dashboard numbers. Called on every render
// of the impact view; the result is deliberately not stored on Data.
func (b *Builder) ImpactMetrics() domain.ImpactMetrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gen.ImpactMetrics()
}

// Store maps session IDs to their data.
type Store struct {
	mu       sync.Mutex
	builder  *Builder
	sessions map[uuid.UUID]*Data
}

func NewStore(b *Builder) *Store {
	return &Store{builder: b, sessions: make(map[uuid.UUID]*Data)}
}

// GetOrCreate returns the data for id, generating it on first access only.
// Later calls return the same *Data.
func (s *Store) GetOrCreate(id uuid.UUID) *Data {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.sessions[id]; ok {
		return d
	}
	d := s.builder.Build(id)
	s.sessions[id] = d
	return d
}

// Get returns the data for id without creating it.
func (s *Store) Get(id uuid.UUID) (*Data, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.sessions[id]
	return d, ok
}

// Builder returns the builder backing the store.
func (s *Store) Builder() *Builder {
	return s.builder
}

package ports

import (
	"context"

	"github.com/maheshmahi224/backtobase/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	// RecomputeStats rebuilds the event's derived rollup counters from the
	// participants table and returns the fresh snapshot.
	RecomputeStats(ctx context.Context, eventID string) (*domain.EventStats, error)
	// ReconcileActiveStats recomputes rollups for every active event and
	// returns how many were touched.
	ReconcileActiveStats(ctx context.Context) (int64, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		EventDate:   input.EventDate,
		EventTime:   input.EventTime,
		Venue:       input.Venue,
		CoverImage:  input.CoverImage,
		Status:      domain.EventStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// Get refreshes the derived counters before returning the event, so the
// dashboard always sees stats consistent with the participant table even if
// an async recompute was lost.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	if _, err := s.repo.RecomputeStats(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// ReconcileStats refreshes the counters of every active event in one pass.
// The background scheduler calls it on a fixed interval.
func (s *EventService) ReconcileStats(ctx context.Context) (int64, error) {
	return s.repo.ReconcileActiveStats(ctx)
}

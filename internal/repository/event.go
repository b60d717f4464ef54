package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, name, description, event_date, event_time, venue, cover_image, status,
		total_invited, total_checked_in, total_shortlisted, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.EventDate, &e.EventTime, &e.Venue,
		&e.CoverImage, &e.Status,
		&e.Stats.TotalInvited, &e.Stats.TotalCheckedIn, &e.Stats.TotalShortlisted,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, description, event_date, event_time, venue, cover_image, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.EventDate, e.EventTime,
		e.Venue, e.CoverImage, e.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// RecomputeStats rebuilds the rollup counters from the participants table in
// one statement. The counters are snapshots derived from the source of truth,
// never incrementally maintained, so missed increments cannot make them drift.
func (r *EventRepository) RecomputeStats(ctx context.Context, eventID string) (*domain.EventStats, error) {
	query := `
		UPDATE events e SET
			total_invited     = (SELECT COUNT(*) FROM participants p WHERE p.event_id = e.id AND p.invited),
			total_checked_in  = (SELECT COUNT(*) FROM participants p WHERE p.event_id = e.id AND p.checked_in),
			total_shortlisted = (SELECT COUNT(*) FROM participants p WHERE p.event_id = e.id AND p.shortlisted),
			updated_at = now()
		WHERE e.id = $1
		RETURNING total_invited, total_checked_in, total_shortlisted`

	var s domain.EventStats
	err := r.db.Master.QueryRowContext(ctx, query, eventID).
		Scan(&s.TotalInvited, &s.TotalCheckedIn, &s.TotalShortlisted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("recompute stats: %w", err)
	}

	return &s, nil
}

func (r *EventRepository) ReconcileActiveStats(ctx context.Context) (int64, error) {
	query := `
		UPDATE events e SET
			total_invited     = (SELECT COUNT(*) FROM participants p WHERE p.event_id = e.id AND p.invited),
			total_checked_in  = (SELECT COUNT(*) FROM participants p WHERE p.event_id = e.id AND p.checked_in),
			total_shortlisted = (SELECT COUNT(*) FROM participants p WHERE p.event_id = e.id AND p.shortlisted),
			updated_at = now()
		WHERE e.status = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, domain.EventStatusActive)
	if err != nil {
		return 0, fmt.Errorf("reconcile stats: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reconcile rows affected: %w", err)
	}

	return rows, nil
}

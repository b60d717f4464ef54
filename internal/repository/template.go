package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TemplateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTemplateRepo(db *dbpg.DB) *TemplateRepository {
	return &TemplateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const templateColumns = `id, name, type, subject, html_content, text_content, placeholders, event_id, is_default, created_at, updated_at`

func scanTemplate(row interface{ Scan(...any) error }) (*domain.EmailTemplate, error) {
	var t domain.EmailTemplate
	err := row.Scan(
		&t.ID, &t.Name, &t.Type, &t.Subject, &t.HTMLContent, &t.TextContent,
		pq.Array(&t.Placeholders), &t.EventID, &t.IsDefault, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.EmailTemplate) error {
	query := `INSERT INTO email_templates (id, name, type, subject, html_content, text_content, placeholders, event_id, is_default, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.Name, t.Type, t.Subject, t.HTMLContent, t.TextContent,
		pq.Array(t.Placeholders), t.EventID, t.IsDefault, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	query := `SELECT ` + templateColumns + `
			  FROM email_templates
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("scan template: %w", err)
	}

	return t, nil
}

// ListByEvent returns the event's own templates plus the global ones
// (event_id IS NULL), event-scoped first.
func (r *TemplateRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.EmailTemplate, error) {
	query := `SELECT ` + templateColumns + `
			  FROM email_templates
			  WHERE event_id = $1 OR event_id IS NULL
			  ORDER BY event_id NULLS LAST, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var res []*domain.EmailTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

package ports

import (
	"context"

	"github.com/maheshmahi224/backtobase/internal/domain"
)

type TemplateRepo interface {
	Create(ctx context.Context, t *domain.EmailTemplate) error
	GetByID(ctx context.Context, id string) (*domain.EmailTemplate, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EmailTemplate, error)
}

package ports

import (
	"context"

	"github.com/maheshmahi224/backtobase/internal/domain"
)

type ParticipantRepo interface {
	Create(ctx context.Context, p *domain.Participant) error
	GetByID(ctx context.Context, id string) (*domain.Participant, error)
	GetByToken(ctx context.Context, token string) (*domain.Participant, error)
	GetByEmailAndEvent(ctx context.Context, email, eventID string) (*domain.Participant, error)
	ListByEvent(ctx context.Context, eventID string, f domain.ParticipantFilter) ([]*domain.Participant, error)
	// ListUninvited returns the invitation targets: participants of the event
	// not yet invited, or exactly the given ids when ids is non-empty.
	ListUninvited(ctx context.Context, eventID string, ids []string) ([]*domain.Participant, error)
	// ListShortlisted returns the confirmation targets: shortlisted
	// participants of the event, narrowed to ids when ids is non-empty.
	ListShortlisted(ctx context.Context, eventID string, ids []string) ([]*domain.Participant, error)

	// SetCheckedIn atomically flips checked_in for the participant with this
	// token. The second return is true when the flag was already set; the
	// returned participant then carries the original timestamp.
	SetCheckedIn(ctx context.Context, token string) (*domain.Participant, bool, error)
	// SetAttended is SetCheckedIn's twin for the QR scan flag.
	SetAttended(ctx context.Context, token string) (*domain.Participant, bool, error)

	MarkInvited(ctx context.Context, ids []string) error
	MarkConfirmationSent(ctx context.Context, ids []string) error
	MarkEmailFailed(ctx context.Context, id string, sendErr string) error
	SetShortlisted(ctx context.Context, ids []string, shortlisted bool) (int64, error)
}

package ports

import (
	"context"

	"github.com/maheshmahi224/backtobase/internal/domain"
)

// Mailer is the delivery engine behind every email the system sends. Dispatch
// never returns an error: per-unit outcomes land in the report's ledger and
// the call itself always completes.
type Mailer interface {
	Send(ctx context.Context, unit domain.SendUnit) (string, error)
	SendWithRetry(ctx context.Context, unit domain.SendUnit) (string, error)
	Dispatch(ctx context.Context, units []domain.SendUnit, batchSize int) *domain.DispatchReport
}

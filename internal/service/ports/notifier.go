package ports

import (
	"context"

	"github.com/maheshmahi224/backtobase/internal/domain"
)

// DispatchNotifier pushes an out-of-band summary of a completed bulk send to
// the operator. Best effort; failures are logged, never propagated.
type DispatchNotifier interface {
	NotifyDispatchComplete(ctx context.Context, event *domain.Event, kind string, report *domain.DispatchReport)
}

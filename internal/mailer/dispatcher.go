package mailer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const DefaultBatchSize = 100

// Dispatcher is the bulk delivery engine: it fans a batch of units out over
// the transport concurrently, waits for every unit to resolve, pauses between
// batches to stay under provider rate limits, and accounts for each unit in a
// ledger. It persists nothing; callers own status bookkeeping.
type Dispatcher struct {
	transport  Transport
	batchDelay time.Duration
	strategy   retry.Strategy
	log        logger.Logger

	// sleep is swapped out in tests to observe pacing.
	sleep func(ctx context.Context, d time.Duration)
}

func NewDispatcher(transport Transport, batchDelay time.Duration, strategy retry.Strategy, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		transport:  transport,
		batchDelay: batchDelay,
		strategy:   strategy,
		log:        log,
		sleep:      sleepContext,
	}
}

// Dispatch delivers units in consecutive batches of batchSize. Units within a
// batch run concurrently; batch k+1 does not start until batch k fully
// resolves and the inter-batch delay elapses. The delay is skipped after the
// last batch. The returned report covers exactly the input units: one ledger
// entry per unit, success or failure, never both.
func (d *Dispatcher) Dispatch(ctx context.Context, units []domain.SendUnit, batchSize int) *domain.DispatchReport {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	report := &domain.DispatchReport{}
	totalBatches := (len(units) + batchSize - 1) / batchSize

	for start := 0; start < len(units); start += batchSize {
		end := start + batchSize
		if end > len(units) {
			end = len(units)
		}
		batch := units[start:end]

		d.log.LogAttrs(ctx, logger.InfoLevel, "dispatching batch",
			logger.Int("batch", start/batchSize+1),
			logger.Int("total_batches", totalBatches),
			logger.Int("units", len(batch)),
		)

		d.dispatchBatch(ctx, batch, report)

		if end < len(units) {
			d.sleep(ctx, d.batchDelay)
		}
	}

	d.log.LogAttrs(ctx, logger.InfoLevel, "bulk dispatch complete",
		logger.Int("successful", len(report.Successful)),
		logger.Int("failed", len(report.Failed)),
	)

	return report
}

// dispatchBatch fans out one batch and blocks until every unit has resolved.
// A unit's failure is converted to a ledger entry locally; it never reaches
// sibling units or the batch driver.
func (d *Dispatcher) dispatchBatch(ctx context.Context, batch []domain.SendUnit, report *domain.DispatchReport) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, unit := range batch {
		wg.Add(1)
		go func(unit domain.SendUnit) {
			defer wg.Done()

			_, err := d.transport.Send(ctx, unit)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed = append(report.Failed, domain.SendFailure{
					CorrelationID: unit.CorrelationID,
					Email:         unit.To,
					Error:         err.Error(),
				})
				return
			}
			report.Successful = append(report.Successful, unit.CorrelationID)
		}(unit)
	}

	wg.Wait()
}

// Send delivers one unit synchronously with a single attempt.
func (d *Dispatcher) Send(ctx context.Context, unit domain.SendUnit) (string, error) {
	return d.transport.Send(ctx, unit)
}

// SendWithRetry is the best-effort single-send path: bounded attempts with
// exponential backoff, surfacing a terminal failure once they are exhausted.
func (d *Dispatcher) SendWithRetry(ctx context.Context, unit domain.SendUnit) (string, error) {
	var id string
	err := retry.Do(func() error {
		var sendErr error
		id, sendErr = d.transport.Send(ctx, unit)
		return sendErr
	}, d.strategy)
	if err != nil {
		return "", fmt.Errorf("send to %s after %d attempts: %w", unit.To, d.strategy.Attempts, err)
	}
	return id, nil
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/mailer/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestDispatcher(t *testing.T, transport Transport) *Dispatcher {
	t.Helper()
	return NewDispatcher(transport, 10*time.Second, retry.Strategy{
		Attempts: 3,
		Delay:    time.Millisecond,
		Backoff:  2,
	}, newTestLogger(t))
}

func makeUnits(n int) []domain.SendUnit {
	units := make([]domain.SendUnit, n)
	for i := range units {
		units[i] = domain.SendUnit{
			CorrelationID: fmt.Sprintf("p%d", i),
			To:            fmt.Sprintf("user%d@example.com", i),
			Subject:       "Hello",
			HTML:          "<p>Hello</p>",
		}
	}
	return units
}

func TestDispatcher_Dispatch_AllSucceed(t *testing.T) {
	transport := mocks.NewMockTransport(t)
	d := newTestDispatcher(t, transport)

	transport.EXPECT().Send(mock.Anything, mock.Anything).Return("msg-id", nil).Times(5)

	report := d.Dispatch(context.Background(), makeUnits(5), 100)

	assert.Len(t, report.Successful, 5)
	assert.Empty(t, report.Failed)
}

func TestDispatcher_Dispatch_LedgerCoversEveryUnit(t *testing.T) {
	transport := mocks.NewMockTransport(t)
	d := newTestDispatcher(t, transport)

	// Every odd recipient fails deterministically.
	transport.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, unit domain.SendUnit) (string, error) {
			if strings.HasSuffix(unit.CorrelationID, "1") ||
				strings.HasSuffix(unit.CorrelationID, "3") ||
				strings.HasSuffix(unit.CorrelationID, "5") ||
				strings.HasSuffix(unit.CorrelationID, "7") ||
				strings.HasSuffix(unit.CorrelationID, "9") {
				return "", errors.New("550 mailbox unavailable")
			}
			return "msg-id", nil
		})

	units := makeUnits(10)
	report := d.Dispatch(context.Background(), units, 100)

	assert.Equal(t, len(units), len(report.Successful)+len(report.Failed))
	assert.Len(t, report.Failed, 5)
	for _, f := range report.Failed {
		assert.NotEmpty(t, f.Error)
		assert.NotEmpty(t, f.Email)
	}

	seen := make(map[string]bool, len(units))
	for _, id := range report.Successful {
		seen[id] = true
	}
	for _, f := range report.Failed {
		assert.False(t, seen[f.CorrelationID], "unit %s in both ledgers", f.CorrelationID)
		seen[f.CorrelationID] = true
	}
	assert.Len(t, seen, len(units))
}

func TestDispatcher_Dispatch_FailureDoesNotAbortSiblings(t *testing.T) {
	transport := mocks.NewMockTransport(t)
	d := newTestDispatcher(t, transport)

	transport.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, unit domain.SendUnit) (string, error) {
			if unit.CorrelationID == "p0" {
				return "", errors.New("connection refused")
			}
			return "msg-id", nil
		})

	report := d.Dispatch(context.Background(), makeUnits(4), 4)

	assert.Len(t, report.Successful, 3)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "p0", report.Failed[0].CorrelationID)
}

func TestDispatcher_Dispatch_BatchPacing(t *testing.T) {
	transport := mocks.NewMockTransport(t)
	d := newTestDispatcher(t, transport)

	var (
		mu          sync.Mutex
		delays      int
		batchOfUnit = make(map[string]int)
	)
	d.sleep = func(_ context.Context, dur time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 10*time.Second, dur)
		delays++
	}
	transport.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, unit domain.SendUnit) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			batchOfUnit[unit.CorrelationID] = delays
			return "msg-id", nil
		})

	report := d.Dispatch(context.Background(), makeUnits(250), 100)

	// 250 units at batchSize 100: 3 batches, delays only between them.
	assert.Equal(t, 2, delays)
	assert.Len(t, report.Successful, 250)

	perBatch := make(map[int]int)
	for _, b := range batchOfUnit {
		perBatch[b]++
	}
	assert.Equal(t, map[int]int{0: 100, 1: 100, 2: 50}, perBatch)
}

func TestDispatcher_Dispatch_SingleBatchNoDelay(t *testing.T) {
	transport := mocks.NewMockTransport(t)
	d := newTestDispatcher(t, transport)

	delays := 0
	d.sleep = func(context.Context, time.Duration) { delays++ }
	transport.EXPECT().Send(mock.Anything, mock.Anything).Return("msg-id", nil).Times(10)

	d.Dispatch(context.Background(), makeUnits(10), 100)

	assert.Zero(t, delays)
}

func TestDispatcher_Dispatch_DefaultBatchSize(t *testing.T) {
	transport := mocks.NewMockTransport(t)
	d := newTestDispatcher(t, transport)

	delays := 0
	d.sleep = func(context.Context, time.Duration) { delays++ }
	transport.EXPECT().Send(mock.Anything, mock.Anything).Return("msg-id", nil).Times(150)

	report := d.Dispatch(context.Background(), makeUnits(150), 0)

	assert.Equal(t, 1, delays)
	assert.Len(t, report.Successful, 150)
}

func TestDispatcher_Dispatch_Empty(t *testing.T) {
	transport := mocks.NewMockTransport(t)
	d := newTestDispatcher(t, transport)

	report := d.Dispatch(context.Background(), nil, 100)

	assert.Empty(t, report.Successful)
	assert.Empty(t, report.Failed)
}

func TestDispatcher_SendWithRetry_RecoversAfterFailures(t *testing.T) {
	transport := mocks.NewMockTransport(t)
	d := newTestDispatcher(t, transport)

	attempts := 0
	transport.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(
		func(context.Context, domain.SendUnit) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("transient")
			}
			return "msg-id", nil
		})

	id, err := d.SendWithRetry(context.Background(), makeUnits(1)[0])

	require.NoError(t, err)
	assert.Equal(t, "msg-id", id)
	assert.Equal(t, 3, attempts)
}

func TestDispatcher_SendWithRetry_TerminalFailure(t *testing.T) {
	transport := mocks.NewMockTransport(t)
	d := newTestDispatcher(t, transport)

	attempts := 0
	transport.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(
		func(context.Context, domain.SendUnit) (string, error) {
			attempts++
			return "", errors.New("hard bounce")
		})

	_, err := d.SendWithRetry(context.Background(), makeUnits(1)[0])

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, attempts)
}

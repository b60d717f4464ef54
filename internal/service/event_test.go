package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestEventService_Create(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	var created *domain.Event
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *domain.Event) { created = e }).
		Return(nil)

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		Name:      "Launch Night",
		EventDate: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		EventTime: "19:00",
		Venue:     "Main Hall",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusActive, event.Status)
	assert.Equal(t, created, event)
}

func TestEventService_Create_Validation(t *testing.T) {
	svc := NewEventService(mocks.NewMockEventRepo(t))

	cases := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"missing name", domain.CreateEventInput{EventDate: time.Now()}},
		{"missing date", domain.CreateEventInput{Name: "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Get_RefreshesStats(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	stats := domain.EventStats{TotalInvited: 40, TotalCheckedIn: 12, TotalShortlisted: 25}
	event := &domain.Event{ID: "e1", Name: "Launch Night", Stats: stats}

	repo.EXPECT().RecomputeStats(mock.Anything, "e1").Return(&stats, nil)
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	got, err := svc.Get(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, stats, got.Stats)
}

func TestEventService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().RecomputeStats(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	events := []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	repo.EXPECT().List(mock.Anything).Return(events, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestEventService_List_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.List(context.Background())

	assert.Error(t, err)
}

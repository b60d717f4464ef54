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
)

func newParticipantService(t *testing.T) (*ParticipantService, *mocks.MockParticipantRepo, *mocks.MockEventRepo) {
	t.Helper()
	repo := mocks.NewMockParticipantRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewParticipantService(repo, eventRepo, newTestLogger(t))
	return svc, repo, eventRepo
}

func TestParticipantService_BulkAdd(t *testing.T) {
	svc, repo, eventRepo := newParticipantService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)

	var created []*domain.Participant
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *domain.Participant) { created = append(created, p) }).
		Return(nil).Twice()
	eventRepo.EXPECT().RecomputeStats(mock.Anything, "e1").Return(&domain.EventStats{}, nil)

	report, err := svc.BulkAdd(context.Background(), "e1", []domain.ParticipantInput{
		{Name: "Alice", Email: " Alice@Example.COM ", CustomFields: map[string]string{"company": "Acme"}},
		{Name: "Bob", Email: "bob@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Inserted)
	assert.Empty(t, report.Duplicates)
	assert.Empty(t, report.Errors)
	assert.Len(t, report.Created, 2)

	require.Len(t, created, 2)
	assert.Equal(t, "alice@example.com", created[0].Email)
	assert.Equal(t, "Acme", created[0].CustomFields["company"])
	assert.Equal(t, domain.SourceUpload, created[0].Source)
	assert.Equal(t, domain.EmailStatusPending, created[0].EmailStatus)
	assert.NotEmpty(t, created[0].Token)
	assert.NotEqual(t, created[0].Token, created[1].Token)

	time.Sleep(50 * time.Millisecond) // goroutine stats recompute
}

func TestParticipantService_BulkAdd_BadRowsDoNotAbortTheRest(t *testing.T) {
	svc, repo, eventRepo := newParticipantService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Participant) bool {
		return p.Email == "dupe@example.com"
	})).Return(domain.ErrParticipantExists)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Participant) bool {
		return p.Email == "ok@example.com"
	})).Return(nil)
	eventRepo.EXPECT().RecomputeStats(mock.Anything, "e1").Return(&domain.EventStats{}, nil)

	report, err := svc.BulkAdd(context.Background(), "e1", []domain.ParticipantInput{
		{Name: "Dupe", Email: "dupe@example.com"},
		{Name: "", Email: "noname@example.com"},
		{Name: "Ok", Email: "ok@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)
	require.Len(t, report.Duplicates, 1)
	assert.Equal(t, 1, report.Duplicates[0].Row)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Row)

	time.Sleep(50 * time.Millisecond)
}

func TestParticipantService_BulkAdd_UnknownEvent(t *testing.T) {
	svc, _, eventRepo := newParticipantService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.BulkAdd(context.Background(), "missing", nil)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestParticipantService_List_UnknownEvent(t *testing.T) {
	svc, _, eventRepo := newParticipantService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.List(context.Background(), "missing", domain.ParticipantFilter{})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestParticipantService_Shortlist(t *testing.T) {
	svc, repo, eventRepo := newParticipantService(t)

	ids := []string{"p1", "p2", "p3"}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Participant{ID: "p1", EventID: "e1"}, nil)
	repo.EXPECT().SetShortlisted(mock.Anything, ids, true).Return(2, nil)
	eventRepo.EXPECT().RecomputeStats(mock.Anything, "e1").Return(&domain.EventStats{}, nil)

	updated, err := svc.Shortlist(context.Background(), ids)

	require.NoError(t, err)
	// one of the three was already shortlisted
	assert.Equal(t, int64(2), updated)

	time.Sleep(50 * time.Millisecond)
}

func TestParticipantService_Shortlist_EmptyIDs(t *testing.T) {
	svc, _, _ := newParticipantService(t)

	_, err := svc.Shortlist(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParticipantService_RemoveFromShortlist(t *testing.T) {
	svc, repo, eventRepo := newParticipantService(t)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Participant{ID: "p1", EventID: "e1"}, nil)
	repo.EXPECT().SetShortlisted(mock.Anything, []string{"p1"}, false).Return(1, nil)
	eventRepo.EXPECT().RecomputeStats(mock.Anything, "e1").Return(&domain.EventStats{}, nil)

	updated, err := svc.RemoveFromShortlist(context.Background(), []string{"p1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	time.Sleep(50 * time.Millisecond)
}

func TestParticipantService_Shortlist_RepoError(t *testing.T) {
	svc, repo, _ := newParticipantService(t)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Participant{ID: "p1", EventID: "e1"}, nil)
	repo.EXPECT().SetShortlisted(mock.Anything, []string{"p1"}, true).Return(0, errors.New("db down"))

	_, err := svc.Shortlist(context.Background(), []string{"p1"})

	assert.Error(t, err)
}

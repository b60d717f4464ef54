package service

import (
	"context"
	"testing"
	"time"

	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "3f1c9a7e-10b4-4e6d-8a32-7cf02d1b9f55"

func newAttendanceService(t *testing.T) (*AttendanceService, *mocks.MockParticipantRepo, *mocks.MockEventRepo, *mocks.MockQRResolver) {
	t.Helper()
	repo := mocks.NewMockParticipantRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	resolver := mocks.NewMockQRResolver(t)
	svc := NewAttendanceService(repo, eventRepo, resolver, newTestLogger(t))
	return svc, repo, eventRepo, resolver
}

func TestAttendanceService_Verify(t *testing.T) {
	svc, repo, eventRepo, _ := newAttendanceService(t)

	p := &domain.Participant{ID: "p1", EventID: "e1", Token: testToken}
	event := &domain.Event{ID: "e1", Name: "Launch Night"}

	repo.EXPECT().GetByToken(mock.Anything, testToken).Return(p, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	info, err := svc.Verify(context.Background(), testToken)

	require.NoError(t, err)
	assert.Equal(t, p, info.Participant)
	assert.Equal(t, event, info.Event)
}

func TestAttendanceService_Verify_UnknownToken(t *testing.T) {
	svc, repo, _, _ := newAttendanceService(t)

	repo.EXPECT().GetByToken(mock.Anything, testToken).Return(nil, domain.ErrParticipantNotFound)

	_, err := svc.Verify(context.Background(), testToken)

	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestAttendanceService_Confirm_FirstTime(t *testing.T) {
	svc, repo, eventRepo, _ := newAttendanceService(t)

	now := time.Now().UTC()
	p := &domain.Participant{ID: "p1", EventID: "e1", Token: testToken, CheckedIn: true, CheckedInAt: &now}
	event := &domain.Event{ID: "e1"}

	repo.EXPECT().SetCheckedIn(mock.Anything, testToken).Return(p, false, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().RecomputeStats(mock.Anything, "e1").Return(&domain.EventStats{TotalCheckedIn: 1}, nil)

	res, err := svc.Confirm(context.Background(), testToken)

	require.NoError(t, err)
	assert.False(t, res.Already)
	assert.True(t, res.Participant.CheckedIn)

	time.Sleep(50 * time.Millisecond) // goroutine stats recompute
}

func TestAttendanceService_Confirm_Repeated(t *testing.T) {
	svc, repo, eventRepo, _ := newAttendanceService(t)

	earlier := time.Now().UTC().Add(-time.Hour)
	p := &domain.Participant{ID: "p1", EventID: "e1", Token: testToken, CheckedIn: true, CheckedInAt: &earlier}

	repo.EXPECT().SetCheckedIn(mock.Anything, testToken).Return(p, true, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)

	res, err := svc.Confirm(context.Background(), testToken)

	require.NoError(t, err)
	assert.True(t, res.Already)
	// repeated confirmation keeps the original timestamp and recomputes nothing
	assert.Equal(t, &earlier, res.Participant.CheckedInAt)
}

func TestAttendanceService_Confirm_UnknownToken(t *testing.T) {
	svc, repo, _, _ := newAttendanceService(t)

	repo.EXPECT().SetCheckedIn(mock.Anything, testToken).Return(nil, false, domain.ErrParticipantNotFound)

	_, err := svc.Confirm(context.Background(), testToken)

	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestAttendanceService_Manual_ExistingParticipant(t *testing.T) {
	svc, repo, eventRepo, _ := newAttendanceService(t)

	event := &domain.Event{ID: "e1"}
	existing := &domain.Participant{ID: "p1", EventID: "e1", Email: "alice@example.com", Token: testToken}
	flipped := &domain.Participant{ID: "p1", EventID: "e1", Email: "alice@example.com", Token: testToken, CheckedIn: true}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().GetByEmailAndEvent(mock.Anything, "alice@example.com", "e1").Return(existing, nil)
	repo.EXPECT().SetCheckedIn(mock.Anything, testToken).Return(flipped, false, nil)
	eventRepo.EXPECT().RecomputeStats(mock.Anything, "e1").Return(&domain.EventStats{}, nil)

	res, err := svc.Manual(context.Background(), domain.ManualCheckinInput{
		Name:    "Alice",
		Email:   "Alice@Example.com", // normalized before lookup
		EventID: "e1",
	})

	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.False(t, res.Already)
	assert.True(t, res.Participant.CheckedIn)

	time.Sleep(50 * time.Millisecond)
}

func TestAttendanceService_Manual_WalkIn(t *testing.T) {
	svc, repo, eventRepo, _ := newAttendanceService(t)

	event := &domain.Event{ID: "e1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().GetByEmailAndEvent(mock.Anything, "bob@example.com", "e1").
		Return(nil, domain.ErrParticipantNotFound)

	var created *domain.Participant
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *domain.Participant) { created = p }).
		Return(nil)
	eventRepo.EXPECT().RecomputeStats(mock.Anything, "e1").Return(&domain.EventStats{}, nil)

	res, err := svc.Manual(context.Background(), domain.ManualCheckinInput{
		Name:    "Bob",
		Email:   "bob@example.com",
		EventID: "e1",
	})

	require.NoError(t, err)
	assert.True(t, res.Created)

	require.NotNil(t, created)
	assert.True(t, created.CheckedIn)
	assert.NotNil(t, created.CheckedInAt)
	assert.Equal(t, domain.SourceOnspot, created.Source)
	assert.NotEmpty(t, created.Token)

	time.Sleep(50 * time.Millisecond)
}

func TestAttendanceService_Manual_MissingFields(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)

	_, err := svc.Manual(context.Background(), domain.ManualCheckinInput{EventID: "e1"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttendanceService_Scan_MarksAttended(t *testing.T) {
	svc, repo, eventRepo, _ := newAttendanceService(t)

	p := &domain.Participant{ID: "p1", EventID: "e1", Token: testToken, Attended: true}

	repo.EXPECT().SetAttended(mock.Anything, testToken).Return(p, false, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	eventRepo.EXPECT().RecomputeStats(mock.Anything, "e1").Return(&domain.EventStats{}, nil)

	res, err := svc.Scan(context.Background(), "  "+testToken+"  ")

	require.NoError(t, err)
	assert.False(t, res.Already)
	assert.True(t, res.Participant.Attended)

	time.Sleep(50 * time.Millisecond)
}

func TestAttendanceService_Scan_Repeated(t *testing.T) {
	svc, repo, eventRepo, _ := newAttendanceService(t)

	earlier := time.Now().UTC().Add(-time.Hour)
	p := &domain.Participant{ID: "p1", EventID: "e1", Token: testToken, Attended: true, AttendedAt: &earlier}

	repo.EXPECT().SetAttended(mock.Anything, testToken).Return(p, true, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)

	res, err := svc.Scan(context.Background(), testToken)

	require.NoError(t, err)
	assert.True(t, res.Already)
	// a repeated scan keeps the original timestamp and recomputes nothing
	assert.Equal(t, &earlier, res.Participant.AttendedAt)
}

func TestAttendanceService_Scan_ShortPayloadRejectedBeforeLookup(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)

	_, err := svc.Scan(context.Background(), "short")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAttendanceService_VerifyQR_ShortPayloadRejectedBeforeLookup(t *testing.T) {
	svc, _, _, _ := newAttendanceService(t)

	_, err := svc.VerifyQR(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAttendanceService_GenerateQR(t *testing.T) {
	svc, repo, _, resolver := newAttendanceService(t)

	p := &domain.Participant{ID: "p1", Token: testToken}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(p, nil)
	resolver.EXPECT().ImageURL(testToken).Return("https://quickchart.io/qr?text="+testToken, nil)

	got, imageURL, err := svc.GenerateQR(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Contains(t, imageURL, testToken)
}

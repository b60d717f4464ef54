package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/qr"
	"github.com/maheshmahi224/backtobase/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AttendanceService owns the check-in state machine. Every mutation here is
// an idempotent one-way flag flip: repeating a request returns the original
// outcome instead of an error, because gate staff retry without looking.
type AttendanceService struct {
	repo      ports.ParticipantRepo
	eventRepo ports.EventRepo
	resolver  ports.QRResolver
	logger    logger.Logger
}

func NewAttendanceService(
	repo ports.ParticipantRepo,
	eventRepo ports.EventRepo,
	resolver ports.QRResolver,
	logger logger.Logger,
) *AttendanceService {
	return &AttendanceService{
		repo:      repo,
		eventRepo: eventRepo,
		resolver:  resolver,
		logger:    logger,
	}
}

// Verify resolves a check-in token to its participant and event without
// touching any state. It backs the landing page behind the emailed link.
func (s *AttendanceService) Verify(ctx context.Context, token string) (*domain.CheckinInfo, error) {
	p, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, p.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return &domain.CheckinInfo{Participant: p, Event: event}, nil
}

// Confirm flips checked_in for the token's participant. The second and every
// later call reports Already without writing anything.
func (s *AttendanceService) Confirm(ctx context.Context, token string) (*domain.CheckinResult, error) {
	p, already, err := s.repo.SetCheckedIn(ctx, token)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, p.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if !already {
		s.logger.Info("participant checked in",
			logger.String("participant_id", p.ID),
			logger.String("event_id", p.EventID),
		)
		s.recomputeStatsAsync(ctx, p.EventID)
	}

	return &domain.CheckinResult{Participant: p, Event: event, Already: already}, nil
}

// Manual handles the walk-in desk: an existing participant gets checked in by
// email, an unknown one is registered on the spot already checked in.
func (s *AttendanceService) Manual(ctx context.Context, input domain.ManualCheckinInput) (*domain.CheckinResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	existing, err := s.repo.GetByEmailAndEvent(ctx, email, input.EventID)
	if err != nil && !errors.Is(err, domain.ErrParticipantNotFound) {
		return nil, fmt.Errorf("lookup participant: %w", err)
	}

	if existing != nil {
		p, already, err := s.repo.SetCheckedIn(ctx, existing.Token)
		if err != nil {
			return nil, err
		}
		if !already {
			s.recomputeStatsAsync(ctx, input.EventID)
		}
		return &domain.CheckinResult{Participant: p, Event: event, Already: already}, nil
	}

	now := time.Now().UTC()
	p := &domain.Participant{
		ID:          uuid.New().String(),
		EventID:     input.EventID,
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(input.Phone),
		Token:       uuid.New().String(),
		CheckedIn:   true,
		CheckedInAt: &now,
		EmailStatus: domain.EmailStatusPending,
		Source:      domain.SourceOnspot,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create walk-in: %w", err)
	}

	s.logger.Info("walk-in registered",
		logger.String("participant_id", p.ID),
		logger.String("event_id", input.EventID),
	)
	s.recomputeStatsAsync(ctx, input.EventID)

	return &domain.CheckinResult{Participant: p, Event: event, Created: true}, nil
}

// VerifyQR is Verify for raw scanner payloads, which may be a bare token or a
// full check-in URL.
func (s *AttendanceService) VerifyQR(ctx context.Context, qrData string) (*domain.CheckinInfo, error) {
	token, err := qr.ExtractToken(qrData)
	if err != nil {
		return nil, err
	}
	return s.Verify(ctx, token)
}

// Scan marks attendance from a QR scan. Attended is tracked separately from
// checked_in: the link flow and the door scan are different touchpoints.
func (s *AttendanceService) Scan(ctx context.Context, qrData string) (*domain.CheckinResult, error) {
	token, err := qr.ExtractToken(qrData)
	if err != nil {
		return nil, err
	}

	p, already, err := s.repo.SetAttended(ctx, token)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, p.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if !already {
		s.logger.Info("attendance scanned",
			logger.String("participant_id", p.ID),
			logger.String("event_id", p.EventID),
		)
		s.recomputeStatsAsync(ctx, p.EventID)
	}

	return &domain.CheckinResult{Participant: p, Event: event, Already: already}, nil
}

// GenerateQR returns the participant together with a rendering URL for their
// badge QR image.
func (s *AttendanceService) GenerateQR(ctx context.Context, participantID string) (*domain.Participant, string, error) {
	p, err := s.repo.GetByID(ctx, participantID)
	if err != nil {
		return nil, "", err
	}

	imageURL, err := s.resolver.ImageURL(p.Token)
	if err != nil {
		return nil, "", fmt.Errorf("resolve qr image: %w", err)
	}

	return p, imageURL, nil
}

func (s *AttendanceService) recomputeStatsAsync(ctx context.Context, eventID string) {
	go func(ctx context.Context) {
		if _, err := s.eventRepo.RecomputeStats(ctx, eventID); err != nil {
			s.logger.Error("failed to recompute event stats",
				logger.String("event_id", eventID),
				logger.Any("error", err),
			)
		}
	}(context.WithoutCancel(ctx))
}

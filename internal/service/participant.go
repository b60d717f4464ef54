package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ParticipantService struct {
	repo      ports.ParticipantRepo
	eventRepo ports.EventRepo
	logger    logger.Logger
}

func NewParticipantService(repo ports.ParticipantRepo, eventRepo ports.EventRepo, logger logger.Logger) *ParticipantService {
	return &ParticipantService{
		repo:      repo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// BulkAdd imports a parsed upload row by row. A bad or duplicate row never
// aborts the rest of the file; it is reported in the returned summary
// instead, keyed by its position in the upload.
func (s *ParticipantService) BulkAdd(ctx context.Context, eventID string, rows []domain.ParticipantInput) (*domain.UploadReport, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	report := &domain.UploadReport{}
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		email := strings.ToLower(strings.TrimSpace(row.Email))
		if name == "" || email == "" {
			report.Errors = append(report.Errors, domain.RowIssue{
				Row:     i + 1,
				Email:   email,
				Message: "name and email are required",
			})
			continue
		}

		now := time.Now().UTC()
		p := &domain.Participant{
			ID:           uuid.New().String(),
			EventID:      eventID,
			Name:         name,
			Email:        email,
			Phone:        strings.TrimSpace(row.Phone),
			CustomFields: row.CustomFields,
			Token:        uuid.New().String(),
			EmailStatus:  domain.EmailStatusPending,
			Source:       domain.SourceUpload,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := s.repo.Create(ctx, p); err != nil {
			if errors.Is(err, domain.ErrParticipantExists) {
				report.Duplicates = append(report.Duplicates, domain.RowIssue{
					Row:     i + 1,
					Email:   email,
					Message: "participant already exists for this event",
				})
				continue
			}
			report.Errors = append(report.Errors, domain.RowIssue{
				Row:     i + 1,
				Email:   email,
				Message: err.Error(),
			})
			continue
		}

		report.Inserted++
		report.Created = append(report.Created, *p)
	}

	s.logger.Info("participants imported",
		logger.String("event_id", eventID),
		logger.Int("inserted", report.Inserted),
		logger.Int("duplicates", len(report.Duplicates)),
		logger.Int("errors", len(report.Errors)),
	)

	s.recomputeStatsAsync(ctx, eventID)

	return report, nil
}

func (s *ParticipantService) List(ctx context.Context, eventID string, f domain.ParticipantFilter) ([]*domain.Participant, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	return s.repo.ListByEvent(ctx, eventID, f)
}

func (s *ParticipantService) Shortlist(ctx context.Context, ids []string) (int64, error) {
	return s.setShortlisted(ctx, ids, true)
}

func (s *ParticipantService) RemoveFromShortlist(ctx context.Context, ids []string) (int64, error) {
	return s.setShortlisted(ctx, ids, false)
}

func (s *ParticipantService) setShortlisted(ctx context.Context, ids []string, shortlisted bool) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: participant_ids are required", domain.ErrValidation)
	}

	first, err := s.repo.GetByID(ctx, ids[0])
	if err != nil {
		return 0, err
	}

	updated, err := s.repo.SetShortlisted(ctx, ids, shortlisted)
	if err != nil {
		return 0, fmt.Errorf("set shortlisted: %w", err)
	}

	s.logger.Info("shortlist updated",
		logger.String("event_id", first.EventID),
		logger.Any("shortlisted", shortlisted),
		logger.Int64("updated", updated),
	)

	s.recomputeStatsAsync(ctx, first.EventID)

	return updated, nil
}

func (s *ParticipantService) recomputeStatsAsync(ctx context.Context, eventID string) {
	go func(ctx context.Context) {
		if _, err := s.eventRepo.RecomputeStats(ctx, eventID); err != nil {
			s.logger.Error("failed to recompute event stats",
				logger.String("event_id", eventID),
				logger.Any("error", err),
			)
		}
	}(context.WithoutCancel(ctx))
}

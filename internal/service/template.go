package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/service/ports"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

type TemplateService struct {
	repo      ports.TemplateRepo
	eventRepo ports.EventRepo
}

func NewTemplateService(repo ports.TemplateRepo, eventRepo ports.EventRepo) *TemplateService {
	return &TemplateService{repo: repo, eventRepo: eventRepo}
}

func (s *TemplateService) Create(ctx context.Context, input domain.CreateTemplateInput) (*domain.EmailTemplate, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Subject == "" || input.HTMLContent == "" {
		return nil, fmt.Errorf("%w: subject and html_content are required", domain.ErrValidation)
	}

	t := input.Type
	if t == "" {
		t = domain.TemplateTypeCustom
	}
	switch t {
	case domain.TemplateTypeInvitation, domain.TemplateTypeConfirmation,
		domain.TemplateTypeReminder, domain.TemplateTypeCustom:
	default:
		return nil, fmt.Errorf("%w: unknown template type %q", domain.ErrValidation, t)
	}

	now := time.Now().UTC()
	tmpl := &domain.EmailTemplate{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Type:         t,
		Subject:      input.Subject,
		HTMLContent:  input.HTMLContent,
		TextContent:  input.TextContent,
		Placeholders: extractPlaceholders(input.Subject, input.HTMLContent, input.TextContent),
		EventID:      input.EventID,
		IsDefault:    input.IsDefault,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	return tmpl, nil
}

func (s *TemplateService) Get(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TemplateService) ListByEvent(ctx context.Context, eventID string) ([]*domain.EmailTemplate, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

// Defaults prepares the built-in invitation and confirmation templates for an
// event. The invitation subject carries the event name directly; everything
// else stays as placeholders so the operator can still edit before sending.
func (s *TemplateService) Defaults(ctx context.Context, eventID string) (*domain.TemplateDefaults, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	invitationSubject := fmt.Sprintf("You're Invited to %s!", event.Name)

	return &domain.TemplateDefaults{
		Invitation: domain.TemplateContent{
			Subject:      invitationSubject,
			HTMLContent:  defaultInvitationHTML,
			Placeholders: extractPlaceholders(invitationSubject, defaultInvitationHTML),
		},
		Confirmation: domain.TemplateContent{
			Subject:      defaultConfirmationSubject,
			HTMLContent:  defaultConfirmationHTML,
			Placeholders: extractPlaceholders(defaultConfirmationSubject, defaultConfirmationHTML),
		},
	}, nil
}

// extractPlaceholders collects the distinct {{key}} names used across the
// template's parts, in first-seen order.
func extractPlaceholders(parts ...string) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, part := range parts {
		for _, m := range placeholderPattern.FindAllStringSubmatch(part, -1) {
			if _, ok := seen[m[1]]; ok {
				continue
			}
			seen[m[1]] = struct{}{}
			keys = append(keys, m[1])
		}
	}
	return keys
}

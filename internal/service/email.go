package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/maheshmahi224/backtobase/internal/render"
	"github.com/maheshmahi224/backtobase/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// EmailService turns a bulk send request into rendered per-recipient units,
// hands them to the dispatcher and writes the outcome ledger back onto the
// participant rows.
type EmailService struct {
	participants     ports.ParticipantRepo
	events           ports.EventRepo
	mailer           ports.Mailer
	resolver         ports.QRResolver
	notifier         ports.DispatchNotifier
	frontendURL      string
	defaultBatchSize int
	logger           logger.Logger
}

func NewEmailService(
	participants ports.ParticipantRepo,
	events ports.EventRepo,
	mailer ports.Mailer,
	resolver ports.QRResolver,
	notifier ports.DispatchNotifier,
	frontendURL string,
	defaultBatchSize int,
	logger logger.Logger,
) *EmailService {
	return &EmailService{
		participants:     participants,
		events:           events,
		mailer:           mailer,
		resolver:         resolver,
		notifier:         notifier,
		frontendURL:      strings.TrimRight(frontendURL, "/"),
		defaultBatchSize: defaultBatchSize,
		logger:           logger,
	}
}

// SendInvitations dispatches the invitation email to the event's uninvited
// participants, or to the explicitly listed ones. Recipients that were
// delivered get invited = TRUE; failed ones keep invited = FALSE with the
// error recorded, so the next run picks them up again.
func (s *EmailService) SendInvitations(ctx context.Context, input domain.BulkSendInput) (*domain.DispatchSummary, error) {
	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	targets, err := s.participants.ListUninvited(ctx, input.EventID, input.ParticipantIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	report, err := s.dispatch(ctx, event, targets, input)
	if err != nil {
		return nil, err
	}

	if len(report.Successful) > 0 {
		if err := s.participants.MarkInvited(ctx, report.Successful); err != nil {
			return nil, fmt.Errorf("mark invited: %w", err)
		}
	}
	s.recordFailures(ctx, report)

	s.recomputeStatsAsync(ctx, event.ID)
	go s.notifier.NotifyDispatchComplete(context.WithoutCancel(ctx), event, "invitation", report)

	return summarize(len(targets), report), nil
}

// SendConfirmations dispatches the confirmation email to the event's
// shortlisted participants. Unlike invitations, delivery failure leaves no
// per-row error: confirmation_sent simply stays FALSE.
func (s *EmailService) SendConfirmations(ctx context.Context, input domain.BulkSendInput) (*domain.DispatchSummary, error) {
	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	targets, err := s.participants.ListShortlisted(ctx, input.EventID, input.ParticipantIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	report, err := s.dispatch(ctx, event, targets, input)
	if err != nil {
		return nil, err
	}

	if len(report.Successful) > 0 {
		if err := s.participants.MarkConfirmationSent(ctx, report.Successful); err != nil {
			return nil, fmt.Errorf("mark confirmation sent: %w", err)
		}
	}

	s.recomputeStatsAsync(ctx, event.ID)
	go s.notifier.NotifyDispatchComplete(context.WithoutCancel(ctx), event, "confirmation", report)

	return summarize(len(targets), report), nil
}

// TestSend delivers a single rendered email to an arbitrary address with
// bounded retries. It exists so an operator can preview a template against a
// real inbox before pulling the bulk trigger.
func (s *EmailService) TestSend(ctx context.Context, to, subject, htmlContent string) (string, error) {
	if to == "" {
		return "", fmt.Errorf("%w: recipient is required", domain.ErrValidation)
	}

	data := map[string]string{
		"name":         "Test Participant",
		"email":        to,
		"eventName":    "Sample Event",
		"venue":        "Sample Venue",
		"date":         time.Now().UTC().Format("Monday, 2 January 2006"),
		"time":         "10:00",
		"checkinLink":  s.checkinLink("sample-token"),
		"calendarLink": "",
	}

	unit := domain.SendUnit{
		To:      to,
		Subject: render.Render(subject, data),
		HTML:    render.Render(htmlContent, data),
	}

	id, err := s.mailer.SendWithRetry(ctx, unit)
	if err != nil {
		return "", fmt.Errorf("test send: %w", err)
	}

	return id, nil
}

func (s *EmailService) dispatch(ctx context.Context, event *domain.Event, targets []*domain.Participant, input domain.BulkSendInput) (*domain.DispatchReport, error) {
	if len(targets) == 0 {
		return nil, domain.ErrNoRecipients
	}
	if input.Subject == "" || input.HTMLContent == "" {
		return nil, fmt.Errorf("%w: subject and html_content are required", domain.ErrValidation)
	}

	batchSize := input.BatchSize
	if batchSize <= 0 {
		batchSize = s.defaultBatchSize
	}

	units := make([]domain.SendUnit, 0, len(targets))
	for _, p := range targets {
		data := s.placeholderData(event, p)
		html := render.RenderWithQR(input.HTMLContent, data, p.Token, s.resolver.ImageURL)
		units = append(units, domain.SendUnit{
			CorrelationID: p.ID,
			To:            p.Email,
			Subject:       render.Render(input.Subject, data),
			HTML:          html,
		})
	}

	s.logger.Info("dispatching bulk email",
		logger.String("event_id", event.ID),
		logger.Int("recipients", len(units)),
	)

	return s.mailer.Dispatch(ctx, units, batchSize), nil
}

// placeholderData is the substitution context for one recipient. Custom
// upload columns come first so the well-known keys always win on collision.
func (s *EmailService) placeholderData(event *domain.Event, p *domain.Participant) map[string]string {
	data := make(map[string]string, len(p.CustomFields)+8)
	for k, v := range p.CustomFields {
		data[k] = v
	}
	data["name"] = p.Name
	data["email"] = p.Email
	data["eventName"] = event.Name
	data["venue"] = event.Venue
	data["date"] = event.EventDate.Format("Monday, 2 January 2006")
	data["time"] = event.EventTime
	data["checkinLink"] = s.checkinLink(p.Token)
	data["calendarLink"] = calendarLink(event)
	return data
}

func (s *EmailService) checkinLink(token string) string {
	return s.frontendURL + "/checkin/" + token
}

func (s *EmailService) recordFailures(ctx context.Context, report *domain.DispatchReport) {
	for _, f := range report.Failed {
		if err := s.participants.MarkEmailFailed(ctx, f.CorrelationID, f.Error); err != nil {
			s.logger.Error("failed to record send failure",
				logger.String("participant_id", f.CorrelationID),
				logger.Any("error", err),
			)
		}
	}
}

func (s *EmailService) recomputeStatsAsync(ctx context.Context, eventID string) {
	go func(ctx context.Context) {
		if _, err := s.events.RecomputeStats(ctx, eventID); err != nil {
			s.logger.Error("failed to recompute event stats",
				logger.String("event_id", eventID),
				logger.Any("error", err),
			)
		}
	}(context.WithoutCancel(ctx))
}

func summarize(total int, report *domain.DispatchReport) *domain.DispatchSummary {
	return &domain.DispatchSummary{
		TotalRecipients: total,
		SuccessCount:    len(report.Successful),
		FailedCount:     len(report.Failed),
		Errors:          report.Failed,
	}
}

// calendarLink builds a Google Calendar prefill URL for the event, assuming a
// two hour slot when only a start time is known.
func calendarLink(event *domain.Event) string {
	start := event.EventDate
	if t, err := time.Parse("15:04", event.EventTime); err == nil {
		start = time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0, time.UTC,
		)
	}
	end := start.Add(2 * time.Hour)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", event.Name)
	q.Set("dates", start.Format("20060102T150405Z")+"/"+end.Format("20060102T150405Z"))
	q.Set("details", event.Description)
	q.Set("location", event.Venue)

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

package dto

import (
	"time"

	"github.com/maheshmahi224/backtobase/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type EventStatsResponse struct {
	TotalInvited     int `json:"total_invited"`
	TotalCheckedIn   int `json:"total_checked_in"`
	TotalShortlisted int `json:"total_shortlisted"`
}

type EventResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	EventDate   string             `json:"event_date"`
	EventTime   string             `json:"event_time,omitempty"`
	Venue       string             `json:"venue,omitempty"`
	CoverImage  string             `json:"cover_image,omitempty"`
	Status      string             `json:"status"`
	Stats       EventStatsResponse `json:"stats"`
	CreatedAt   string             `json:"created_at"`
}

type ParticipantResponse struct {
	ID           string            `json:"id"`
	EventID      string            `json:"event_id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
	Token        string            `json:"token"`

	Invited            bool    `json:"invited"`
	InvitedAt          *string `json:"invited_at,omitempty"`
	CheckedIn          bool    `json:"checked_in"`
	CheckedInAt        *string `json:"checked_in_at,omitempty"`
	Shortlisted        bool    `json:"shortlisted"`
	ShortlistedAt      *string `json:"shortlisted_at,omitempty"`
	ConfirmationSent   bool    `json:"confirmation_sent"`
	ConfirmationSentAt *string `json:"confirmation_sent_at,omitempty"`
	Attended           bool    `json:"attended"`
	AttendedAt         *string `json:"attended_at,omitempty"`

	EmailStatus string `json:"email_status"`
	EmailError  string `json:"email_error,omitempty"`
	Source      string `json:"source"`
	CreatedAt   string `json:"created_at"`
}

type UploadReportResponse struct {
	Inserted     int                   `json:"inserted"`
	Duplicates   []domain.RowIssue     `json:"duplicates"`
	Errors       []domain.RowIssue     `json:"errors"`
	Participants []ParticipantResponse `json:"participants"`
}

type CheckinInfoResponse struct {
	Participant ParticipantResponse `json:"participant"`
	Event       EventResponse       `json:"event"`
}

type CheckinResultResponse struct {
	Participant      ParticipantResponse `json:"participant"`
	Event            EventResponse       `json:"event"`
	AlreadyCheckedIn bool                `json:"already_checked_in"`
	Created          bool                `json:"created,omitempty"`
}

type ShortlistResponse struct {
	Updated int64 `json:"updated"`
}

type QRResponse struct {
	Participant ParticipantResponse `json:"participant"`
	ImageURL    string              `json:"image_url"`
}

type SendFailureResponse struct {
	ParticipantID string `json:"participant_id"`
	Email         string `json:"email"`
	Error         string `json:"error"`
}

type DispatchSummaryResponse struct {
	TotalRecipients int                   `json:"total_recipients"`
	SuccessCount    int                   `json:"success_count"`
	FailedCount     int                   `json:"failed_count"`
	Errors          []SendFailureResponse `json:"errors"`
}

type TestSendResponse struct {
	MessageID string `json:"message_id"`
}

type TemplateResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Subject      string   `json:"subject"`
	HTMLContent  string   `json:"html_content"`
	TextContent  string   `json:"text_content,omitempty"`
	Placeholders []string `json:"placeholders"`
	EventID      *string  `json:"event_id,omitempty"`
	IsDefault    bool     `json:"is_default"`
	CreatedAt    string   `json:"created_at"`
}

type TemplateContentResponse struct {
	Subject      string   `json:"subject"`
	HTMLContent  string   `json:"html_content"`
	Placeholders []string `json:"placeholders"`
}

type TemplateDefaultsResponse struct {
	Invitation   TemplateContentResponse `json:"invitation"`
	Confirmation TemplateContentResponse `json:"confirmation"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		EventDate:   e.EventDate.Format(time.RFC3339),
		EventTime:   e.EventTime,
		Venue:       e.Venue,
		CoverImage:  e.CoverImage,
		Status:      string(e.Status),
		Stats: EventStatsResponse{
			TotalInvited:     e.Stats.TotalInvited,
			TotalCheckedIn:   e.Stats.TotalCheckedIn,
			TotalShortlisted: e.Stats.TotalShortlisted,
		},
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:           p.ID,
		EventID:      p.EventID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		CustomFields: p.CustomFields,
		Token:        p.Token,

		Invited:            p.Invited,
		InvitedAt:          formatTime(p.InvitedAt),
		CheckedIn:          p.CheckedIn,
		CheckedInAt:        formatTime(p.CheckedInAt),
		Shortlisted:        p.Shortlisted,
		ShortlistedAt:      formatTime(p.ShortlistedAt),
		ConfirmationSent:   p.ConfirmationSent,
		ConfirmationSentAt: formatTime(p.ConfirmationSentAt),
		Attended:           p.Attended,
		AttendedAt:         formatTime(p.AttendedAt),

		EmailStatus: string(p.EmailStatus),
		EmailError:  p.EmailError,
		Source:      string(p.Source),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func ToUploadReportResponse(r *domain.UploadReport) UploadReportResponse {
	participants := make([]ParticipantResponse, 0, len(r.Created))
	for i := range r.Created {
		participants = append(participants, ToParticipantResponse(&r.Created[i]))
	}

	return UploadReportResponse{
		Inserted:     r.Inserted,
		Duplicates:   emptyIfNil(r.Duplicates),
		Errors:       emptyIfNil(r.Errors),
		Participants: participants,
	}
}

func ToCheckinInfoResponse(info *domain.CheckinInfo) CheckinInfoResponse {
	return CheckinInfoResponse{
		Participant: ToParticipantResponse(info.Participant),
		Event:       ToEventResponse(info.Event),
	}
}

func ToCheckinResultResponse(res *domain.CheckinResult) CheckinResultResponse {
	return CheckinResultResponse{
		Participant:      ToParticipantResponse(res.Participant),
		Event:            ToEventResponse(res.Event),
		AlreadyCheckedIn: res.Already,
		Created:          res.Created,
	}
}

func ToDispatchSummaryResponse(s *domain.DispatchSummary) DispatchSummaryResponse {
	failures := make([]SendFailureResponse, 0, len(s.Errors))
	for _, f := range s.Errors {
		failures = append(failures, SendFailureResponse{
			ParticipantID: f.CorrelationID,
			Email:         f.Email,
			Error:         f.Error,
		})
	}

	return DispatchSummaryResponse{
		TotalRecipients: s.TotalRecipients,
		SuccessCount:    s.SuccessCount,
		FailedCount:     s.FailedCount,
		Errors:          failures,
	}
}

func ToTemplateResponse(t *domain.EmailTemplate) TemplateResponse {
	return TemplateResponse{
		ID:           t.ID,
		Name:         t.Name,
		Type:         string(t.Type),
		Subject:      t.Subject,
		HTMLContent:  t.HTMLContent,
		TextContent:  t.TextContent,
		Placeholders: t.Placeholders,
		EventID:      t.EventID,
		IsDefault:    t.IsDefault,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
}

func ToTemplateDefaultsResponse(d *domain.TemplateDefaults) TemplateDefaultsResponse {
	return TemplateDefaultsResponse{
		Invitation:   toTemplateContentResponse(d.Invitation),
		Confirmation: toTemplateContentResponse(d.Confirmation),
	}
}

func toTemplateContentResponse(c domain.TemplateContent) TemplateContentResponse {
	return TemplateContentResponse{
		Subject:      c.Subject,
		HTMLContent:  c.HTMLContent,
		Placeholders: c.Placeholders,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func emptyIfNil(issues []domain.RowIssue) []domain.RowIssue {
	if issues == nil {
		return []domain.RowIssue{}
	}
	return issues
}
